package servehttp

import (
	"net/http"

	"ncrtrack/bizerror"
	"ncrtrack/domain/flow"
	"ncrtrack/misc"
	"ncrtrack/session"

	"github.com/fundwit/go-commons/types"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

func RegisterWorkflowHandler(r *gin.Engine, middleWares ...gin.HandlerFunc) {
	g := r.Group("/v1/ncrs", middleWares...)

	handler := &workflowHandler{validator: validator.New()}

	g.POST(":id/actions", handler.handleExecuteAction)
	g.GET(":id/actions", handler.handleQueryActions)
	g.GET(":id/transitions", handler.handleQueryTransitions)

	sg := r.Group("/v1/workflow-scheme", middleWares...)
	sg.GET("", handler.handleDetailScheme)
}

type workflowHandler struct {
	validator *validator.Validate
}

func (h *workflowHandler) handleExecuteAction(c *gin.Context) {
	id, err := types.ParseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, &misc.ErrorBody{Code: "common.bad_param", Message: "invalid id '" + c.Param("id") + "'"})
		return
	}

	request := flow.ActionRequest{}
	if err := c.ShouldBindBodyWith(&request, binding.JSON); err != nil {
		panic(&bizerror.ErrBadParam{Cause: err})
	}
	if err := h.validator.Struct(request); err != nil {
		panic(&bizerror.ErrBadParam{Cause: err})
	}

	record, err := flow.ExecuteActionFunc(id, &request, session.ExtractSessionFromGinContext(c))
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, record)
}

func (h *workflowHandler) handleQueryActions(c *gin.Context) {
	id, err := types.ParseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, &misc.ErrorBody{Code: "common.bad_param", Message: "invalid id '" + c.Param("id") + "'"})
		return
	}

	rules, err := flow.QueryActionsFunc(id, session.ExtractSessionFromGinContext(c))
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, rules)
}

func (h *workflowHandler) handleQueryTransitions(c *gin.Context) {
	id, err := types.ParseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, &misc.ErrorBody{Code: "common.bad_param", Message: "invalid id '" + c.Param("id") + "'"})
		return
	}

	records, err := flow.QueryTransitionsFunc(id, session.ExtractSessionFromGinContext(c))
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, records)
}

func (h *workflowHandler) handleDetailScheme(c *gin.Context) {
	c.JSON(http.StatusOK, flow.Scheme())
}
