package indices

import (
	"net/http"
	"strings"

	"ncrtrack/bizerror"

	"github.com/gin-gonic/gin"
)

func RegisterSearchHandler(r *gin.Engine, middleWares ...gin.HandlerFunc) {
	g := r.Group("/v1/ncr-search", middleWares...)
	g.GET("", handleSearchNCRs)
}

func handleSearchNCRs(c *gin.Context) {
	keyword := strings.TrimSpace(c.Query("q"))
	if keyword == "" {
		panic(&bizerror.ErrBadParam{})
	}

	records, err := SearchNCRsFunc(keyword)
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, records)
}
