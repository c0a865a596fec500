package main

import (
	"log"
	"net/http"

	"ncrtrack/account"
	"ncrtrack/bizerror"
	"ncrtrack/common"
	"ncrtrack/domain"
	"ncrtrack/domain/namespace"
	"ncrtrack/es"
	"ncrtrack/event"
	"ncrtrack/indices"
	"ncrtrack/infra/tracing"
	"ncrtrack/persistence"
	"ncrtrack/servehttp"
	"ncrtrack/session"
	"ncrtrack/sessions"

	"github.com/gin-gonic/gin"
)

func main() {
	log.Println("service start")

	tracingCloser, err := tracing.Bootstrap()
	if err != nil {
		log.Fatalf("tracing bootstrap failed %v\n", err)
	}
	defer tracingCloser.Close()

	dbConfig, err := persistence.ParseDatabaseConfigFromEnv()
	if err != nil {
		log.Fatalf("parse database config failed %v\n", err)
	}

	// create database (no conflict)
	if dbConfig.DriverType == "mysql" {
		if err := persistence.PrepareMysqlDatabase(dbConfig.DriverArgs); err != nil {
			log.Fatalf("failed to prepare database %v\n", err)
		}
	}

	// connect database
	ds := &persistence.DataSourceManager{DatabaseConfig: dbConfig}
	if err := ds.Start(); err != nil {
		log.Fatalf("database connection failed %v\n", err)
	}
	defer ds.Stop()
	persistence.ActiveDataSourceManager = ds

	// database migration (race condition)
	err = ds.GormDB(nil).AutoMigrate(
		&domain.NCR{}, &domain.TransitionRecord{}, &domain.Comment{},
		&account.User{}, &event.EventRecord{}, &namespace.Sequence{}).Error
	if err != nil {
		log.Fatalf("database migration failed %v\n", err)
	}

	if err := es.BootstrapESClient(); err != nil {
		common.Log.Warnf("search index unavailable: %v", err)
	} else {
		indices.Bootstrap()
	}

	engine := gin.New()
	engine.Use(gin.Logger(), bizerror.ErrorHandling(), tracing.TracingIngress())
	engine.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "ncrtrack")
	})

	sessions.RegisterSessionsHandler(engine)
	sessions.RegisterSessionHandler(engine, session.SimpleAuthFilter())

	servehttp.RegisterNcrHandler(engine, session.SimpleAuthFilter())
	servehttp.RegisterWorkflowHandler(engine, session.SimpleAuthFilter())
	servehttp.RegisterCommentHandler(engine, session.SimpleAuthFilter())
	servehttp.RegisterDashboardHandler(engine, session.SimpleAuthFilter())
	servehttp.RegisterAccountHandler(engine, session.SimpleAuthFilter())
	indices.RegisterSearchHandler(engine, session.SimpleAuthFilter())

	servehttp.StartHTTPServer(engine)
}
