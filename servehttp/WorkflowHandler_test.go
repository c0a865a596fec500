package servehttp_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"

	"ncrtrack/bizerror"
	"ncrtrack/domain"
	"ncrtrack/domain/flow"
	"ncrtrack/servehttp"
	"ncrtrack/session"
	"ncrtrack/testinfra"

	"github.com/fundwit/go-commons/types"
	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("WorkflowHandler", func() {
	var router *gin.Engine

	BeforeEach(func() {
		router = gin.Default()
		router.Use(bizerror.ErrorHandling())
		servehttp.RegisterWorkflowHandler(router)
	})

	Describe("handleExecuteAction", func() {
		It("should execute the action and return the updated case", func() {
			flow.ExecuteActionFunc = func(ncrID types.ID, req *flow.ActionRequest, sec *session.Session) (*domain.NCR, error) {
				Expect(ncrID).To(Equal(types.ID(123)))
				Expect(req.Action).To(Equal(domain.ActionSubmit))
				return &domain.NCR{ID: 123, Title: "case", WorkflowStage: domain.StageSubmitted,
					AssignedRole: domain.RoleProductionControl}, nil
			}

			req := httptest.NewRequest(http.MethodPost, "/v1/ncrs/123/actions",
				bytes.NewReader([]byte(`{"action": "submit"}`)))
			status, body, _ := testinfra.ExecuteRequest(req, router)
			Expect(status).To(Equal(http.StatusOK))

			expected, err := json.Marshal(domain.NCR{ID: 123, Title: "case",
				WorkflowStage: domain.StageSubmitted, AssignedRole: domain.RoleProductionControl})
			Expect(err).To(BeNil())
			Expect(body).To(MatchJSON(expected))
		})

		It("should return 400 when id is invalid", func() {
			req := httptest.NewRequest(http.MethodPost, "/v1/ncrs/abc/actions",
				bytes.NewReader([]byte(`{"action": "submit"}`)))
			status, body, _ := testinfra.ExecuteRequest(req, router)
			Expect(status).To(Equal(http.StatusBadRequest))
			Expect(body).To(MatchJSON(`{"code":"common.bad_param","message":"invalid id 'abc'"}`))
		})

		It("should return 400 when the action is missing", func() {
			req := httptest.NewRequest(http.MethodPost, "/v1/ncrs/123/actions",
				bytes.NewReader([]byte(`{"comment": "no action"}`)))
			status, _, _ := testinfra.ExecuteRequest(req, router)
			Expect(status).To(Equal(http.StatusBadRequest))
		})

		expectFailureMapped := func(failure error, status int, code string) {
			flow.ExecuteActionFunc = func(ncrID types.ID, req *flow.ActionRequest, sec *session.Session) (*domain.NCR, error) {
				return nil, failure
			}
			req := httptest.NewRequest(http.MethodPost, "/v1/ncrs/123/actions",
				bytes.NewReader([]byte(`{"action": "submit"}`)))
			gotStatus, body, _ := testinfra.ExecuteRequest(req, router)
			Expect(gotStatus).To(Equal(status))
			Expect(body).To(ContainSubstring(code))
		}

		It("should map workflow errors onto their status codes", func() {
			expectFailureMapped(bizerror.ErrInvalidAction, http.StatusBadRequest, "workflow.invalid_action")
			expectFailureMapped(bizerror.ErrForbidden, http.StatusForbidden, "security.forbidden")
			expectFailureMapped(bizerror.ErrCommentRequired, http.StatusBadRequest, "workflow.comment_required")
			expectFailureMapped(bizerror.ErrStaleCase, http.StatusConflict, "workflow.stale_case")
			expectFailureMapped(gorm.ErrRecordNotFound, http.StatusNotFound, "common.record_not_found")
			expectFailureMapped(errors.New("a mocked error"), http.StatusInternalServerError, "common.internal_server_error")
		})
	})

	Describe("handleQueryActions", func() {
		It("should return the caller's available actions", func() {
			flow.QueryActionsFunc = func(ncrID types.ID, sec *session.Session) ([]flow.TransitionRule, error) {
				Expect(ncrID).To(Equal(types.ID(123)))
				return []flow.TransitionRule{{Action: domain.ActionSubmit, Label: "Submit NCR",
					NextStage: domain.StageSubmitted, NextRole: domain.RoleProductionControl}}, nil
			}

			req := httptest.NewRequest(http.MethodGet, "/v1/ncrs/123/actions", nil)
			status, body, _ := testinfra.ExecuteRequest(req, router)
			Expect(status).To(Equal(http.StatusOK))
			Expect(body).To(MatchJSON(`[{"action":"submit","label":"Submit NCR",
				"nextStage":"submitted","nextRole":"production_control"}]`))
		})

		It("should return 404 when the case is missing", func() {
			flow.QueryActionsFunc = func(ncrID types.ID, sec *session.Session) ([]flow.TransitionRule, error) {
				return nil, gorm.ErrRecordNotFound
			}
			req := httptest.NewRequest(http.MethodGet, "/v1/ncrs/123/actions", nil)
			status, body, _ := testinfra.ExecuteRequest(req, router)
			Expect(status).To(Equal(http.StatusNotFound))
			Expect(body).To(MatchJSON(`{"code":"common.record_not_found","message":"record not found"}`))
		})
	})

	Describe("handleQueryTransitions", func() {
		It("should return the audit trail", func() {
			records := []domain.TransitionRecord{{ID: 2, NcrID: 123, FromStage: domain.StageDraft,
				ToStage: domain.StageSubmitted, NextRole: domain.RoleProductionControl,
				Action: domain.ActionSubmit, CreatorID: 10}}
			flow.QueryTransitionsFunc = func(ncrID types.ID, sec *session.Session) ([]domain.TransitionRecord, error) {
				Expect(ncrID).To(Equal(types.ID(123)))
				return records, nil
			}

			req := httptest.NewRequest(http.MethodGet, "/v1/ncrs/123/transitions", nil)
			status, body, _ := testinfra.ExecuteRequest(req, router)
			Expect(status).To(Equal(http.StatusOK))

			expected, err := json.Marshal(records)
			Expect(err).To(BeNil())
			Expect(body).To(MatchJSON(expected))
		})

		It("should return 400 when id is invalid", func() {
			req := httptest.NewRequest(http.MethodGet, "/v1/ncrs/abc/transitions", nil)
			status, body, _ := testinfra.ExecuteRequest(req, router)
			Expect(status).To(Equal(http.StatusBadRequest))
			Expect(body).To(MatchJSON(`{"code":"common.bad_param","message":"invalid id 'abc'"}`))
		})
	})

	Describe("handleDetailScheme", func() {
		It("should expose the role and transition tables", func() {
			req := httptest.NewRequest(http.MethodGet, "/v1/workflow-scheme", nil)
			status, body, _ := testinfra.ExecuteRequest(req, router)
			Expect(status).To(Equal(http.StatusOK))
			Expect(body).To(ContainSubstring(`"station_supervisor"`))
			Expect(body).To(ContainSubstring(`"pe_review"`))
			Expect(body).To(ContainSubstring(`"Submit NCR"`))
		})
	})
})
