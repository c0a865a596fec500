package servehttp

import (
	"net/http"

	"ncrtrack/bizerror"
	"ncrtrack/domain"
	"ncrtrack/domain/ncr"
	"ncrtrack/misc"
	"ncrtrack/session"

	"github.com/fundwit/go-commons/types"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

func RegisterNcrHandler(r *gin.Engine, middleWares ...gin.HandlerFunc) {
	g := r.Group("/v1/ncrs", middleWares...)

	handler := &ncrHandler{validator: validator.New()}

	g.POST("", handler.handleCreate)
	g.GET("", handler.handleQuery)
	g.GET(":id", handler.handleDetail)
	g.PUT(":id", handler.handleUpdate)
	g.DELETE(":id", handler.handleDelete)

	mg := r.Group("/v1/my-ncrs", middleWares...)
	mg.GET("", handler.handleQueryMine)
}

type ncrHandler struct {
	validator *validator.Validate
}

func (h *ncrHandler) handleCreate(c *gin.Context) {
	creation := domain.NCRCreation{}
	if err := c.ShouldBindBodyWith(&creation, binding.JSON); err != nil {
		panic(&bizerror.ErrBadParam{Cause: err})
	}

	record, err := ncr.CreateNCRFunc(&creation, session.ExtractSessionFromGinContext(c))
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusCreated, record)
}

func (h *ncrHandler) handleQuery(c *gin.Context) {
	query := domain.NCRQuery{}
	_ = c.MustBindWith(&query, binding.Query)

	records, err := ncr.QueryNCRsFunc(&query, session.ExtractSessionFromGinContext(c))
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, records)
}

func (h *ncrHandler) handleQueryMine(c *gin.Context) {
	records, err := ncr.QueryMyNCRsFunc(session.ExtractSessionFromGinContext(c))
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, records)
}

func (h *ncrHandler) handleDetail(c *gin.Context) {
	id, err := types.ParseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, &misc.ErrorBody{Code: "common.bad_param", Message: "invalid id '" + c.Param("id") + "'"})
		return
	}

	record, err := ncr.DetailNCRFunc(id, session.ExtractSessionFromGinContext(c))
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, record)
}

func (h *ncrHandler) handleUpdate(c *gin.Context) {
	id, err := types.ParseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, &misc.ErrorBody{Code: "common.bad_param", Message: "invalid id '" + c.Param("id") + "'"})
		return
	}

	updating := domain.NCRUpdating{}
	if err := c.ShouldBindBodyWith(&updating, binding.JSON); err != nil {
		panic(&bizerror.ErrBadParam{Cause: err})
	}

	record, err := ncr.UpdateNCRFunc(id, &updating, session.ExtractSessionFromGinContext(c))
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, record)
}

func (h *ncrHandler) handleDelete(c *gin.Context) {
	id, err := types.ParseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, &misc.ErrorBody{Code: "common.bad_param", Message: "invalid id '" + c.Param("id") + "'"})
		return
	}

	if err := ncr.DeleteNCRFunc(id, session.ExtractSessionFromGinContext(c)); err != nil {
		panic(err)
	}
	c.AbortWithStatus(http.StatusNoContent)
}
