package sessions

import (
	"ncrtrack/bizerror"
	"ncrtrack/session"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

func RegisterSessionHandler(r *gin.Engine, middleWares ...gin.HandlerFunc) {
	g := r.Group("/v1/session", middleWares...)
	g.GET("", DetailSessionSecurityContext)
}

// DetailSessionSecurityContext returns the caller's session and slides its
// expiration window.
func DetailSessionSecurityContext(c *gin.Context) {
	sec := session.ExtractSessionFromGinContext(c)
	if sec.Token == "" {
		panic(bizerror.ErrUnauthenticated)
	}

	now := time.Now()
	ttl := session.TokenExpiration - now.Sub(sec.SigningTime)
	if ttl <= 0 {
		panic(bizerror.ErrUnauthenticated)
	}

	securityContext := session.Session{Token: sec.Token, Identity: sec.Identity, SigningTime: now}
	session.TokenCache.Set(sec.Token, &securityContext, ttl)
	c.JSON(http.StatusOK, &securityContext)
}
