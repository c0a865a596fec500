package servehttp

import (
	"net/http"

	"ncrtrack/domain/ncr"
	"ncrtrack/session"

	"github.com/gin-gonic/gin"
)

func RegisterDashboardHandler(r *gin.Engine, middleWares ...gin.HandlerFunc) {
	g := r.Group("/v1/dashboard", middleWares...)
	g.GET("", handleQueryDashboard)
}

func handleQueryDashboard(c *gin.Context) {
	stats, err := ncr.QueryDashboardStatsFunc(session.ExtractSessionFromGinContext(c))
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, stats)
}
