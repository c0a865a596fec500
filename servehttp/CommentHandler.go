package servehttp

import (
	"net/http"

	"ncrtrack/bizerror"
	"ncrtrack/domain/comment"
	"ncrtrack/misc"
	"ncrtrack/session"

	"github.com/fundwit/go-commons/types"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

func RegisterCommentHandler(r *gin.Engine, middleWares ...gin.HandlerFunc) {
	g := r.Group("/v1/comments", middleWares...)
	g.POST("", handleCreateComment)

	ng := r.Group("/v1/ncrs", middleWares...)
	ng.GET(":id/comments", handleListComments)
}

func handleCreateComment(c *gin.Context) {
	creation := comment.CommentCreation{}
	if err := c.ShouldBindBodyWith(&creation, binding.JSON); err != nil {
		panic(&bizerror.ErrBadParam{Cause: err})
	}

	record, err := comment.CreateCommentFunc(creation, session.ExtractSessionFromGinContext(c))
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusCreated, record)
}

func handleListComments(c *gin.Context) {
	id, err := types.ParseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, &misc.ErrorBody{Code: "common.bad_param", Message: "invalid id '" + c.Param("id") + "'"})
		return
	}

	records, err := comment.ListCommentsFunc(id, session.ExtractSessionFromGinContext(c))
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, records)
}
