package servehttp_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"ncrtrack/bizerror"
	"ncrtrack/domain"
	"ncrtrack/domain/ncr"
	"ncrtrack/servehttp"
	"ncrtrack/session"
	"ncrtrack/testinfra"

	"github.com/fundwit/go-commons/types"
	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("NcrHandler", func() {
	var router *gin.Engine

	BeforeEach(func() {
		router = gin.Default()
		router.Use(bizerror.ErrorHandling())
		servehttp.RegisterNcrHandler(router)
	})

	Describe("handleCreate", func() {
		It("should create the case and return 201", func() {
			ncr.CreateNCRFunc = func(c *domain.NCRCreation, sec *session.Session) (*domain.NCR, error) {
				Expect(c.Title).To(Equal("dented casing"))
				Expect(c.Priority).To(Equal(domain.PriorityHigh))
				return &domain.NCR{ID: 123, Title: c.Title, Priority: c.Priority,
					WorkflowStage: domain.StageDraft, AssignedRole: domain.RoleStationSupervisor}, nil
			}

			req := httptest.NewRequest(http.MethodPost, "/v1/ncrs",
				bytes.NewReader([]byte(`{"title": "dented casing", "priority": "high"}`)))
			status, body, _ := testinfra.ExecuteRequest(req, router)
			Expect(status).To(Equal(http.StatusCreated))

			expected, err := json.Marshal(domain.NCR{ID: 123, Title: "dented casing",
				Priority: domain.PriorityHigh, WorkflowStage: domain.StageDraft,
				AssignedRole: domain.RoleStationSupervisor})
			Expect(err).To(BeNil())
			Expect(body).To(MatchJSON(expected))
		})

		It("should return 400 when the title is missing", func() {
			req := httptest.NewRequest(http.MethodPost, "/v1/ncrs",
				bytes.NewReader([]byte(`{"description": "no title"}`)))
			status, _, _ := testinfra.ExecuteRequest(req, router)
			Expect(status).To(Equal(http.StatusBadRequest))
		})

		It("should return 400 when the body is missing", func() {
			req := httptest.NewRequest(http.MethodPost, "/v1/ncrs", nil)
			status, body, _ := testinfra.ExecuteRequest(req, router)
			Expect(status).To(Equal(http.StatusBadRequest))
			Expect(body).To(MatchJSON(`{"code":"common.bad_param","message":"EOF"}`))
		})

		It("should return 403 when creation is forbidden", func() {
			ncr.CreateNCRFunc = func(c *domain.NCRCreation, sec *session.Session) (*domain.NCR, error) {
				return nil, bizerror.ErrForbidden
			}
			req := httptest.NewRequest(http.MethodPost, "/v1/ncrs",
				bytes.NewReader([]byte(`{"title": "nope"}`)))
			status, body, _ := testinfra.ExecuteRequest(req, router)
			Expect(status).To(Equal(http.StatusForbidden))
			Expect(body).To(MatchJSON(`{"code":"security.forbidden","message":"access forbidden"}`))
		})
	})

	Describe("handleQuery", func() {
		It("should pass the filters through", func() {
			ncr.QueryNCRsFunc = func(q *domain.NCRQuery, sec *session.Session) (*[]domain.NCR, error) {
				Expect(q.Stage).To(Equal(domain.StagePeReview))
				Expect(q.Priority).To(Equal(domain.PriorityHigh))
				return &[]domain.NCR{{ID: 123, Title: "match", WorkflowStage: domain.StagePeReview}}, nil
			}

			req := httptest.NewRequest(http.MethodGet, "/v1/ncrs?stage=pe_review&priority=high", nil)
			status, body, _ := testinfra.ExecuteRequest(req, router)
			Expect(status).To(Equal(http.StatusOK))

			expected, err := json.Marshal([]domain.NCR{{ID: 123, Title: "match", WorkflowStage: domain.StagePeReview}})
			Expect(err).To(BeNil())
			Expect(body).To(MatchJSON(expected))
		})
	})

	Describe("handleQueryMine", func() {
		It("should return the caller's cases", func() {
			ncr.QueryMyNCRsFunc = func(sec *session.Session) (*[]domain.NCR, error) {
				return &[]domain.NCR{{ID: 123, Title: "mine"}}, nil
			}
			req := httptest.NewRequest(http.MethodGet, "/v1/my-ncrs", nil)
			status, body, _ := testinfra.ExecuteRequest(req, router)
			Expect(status).To(Equal(http.StatusOK))
			Expect(body).To(ContainSubstring(`"mine"`))
		})
	})

	Describe("handleDetail", func() {
		It("should return the case", func() {
			ncr.DetailNCRFunc = func(id types.ID, sec *session.Session) (*domain.NCR, error) {
				Expect(id).To(Equal(types.ID(123)))
				return &domain.NCR{ID: 123, Title: "detail"}, nil
			}
			req := httptest.NewRequest(http.MethodGet, "/v1/ncrs/123", nil)
			status, body, _ := testinfra.ExecuteRequest(req, router)
			Expect(status).To(Equal(http.StatusOK))
			Expect(body).To(ContainSubstring(`"detail"`))
		})

		It("should return 400 when id is invalid", func() {
			req := httptest.NewRequest(http.MethodGet, "/v1/ncrs/abc", nil)
			status, body, _ := testinfra.ExecuteRequest(req, router)
			Expect(status).To(Equal(http.StatusBadRequest))
			Expect(body).To(MatchJSON(`{"code":"common.bad_param","message":"invalid id 'abc'"}`))
		})

		It("should return 404 when the case is missing", func() {
			ncr.DetailNCRFunc = func(id types.ID, sec *session.Session) (*domain.NCR, error) {
				return nil, gorm.ErrRecordNotFound
			}
			req := httptest.NewRequest(http.MethodGet, "/v1/ncrs/123", nil)
			status, body, _ := testinfra.ExecuteRequest(req, router)
			Expect(status).To(Equal(http.StatusNotFound))
			Expect(body).To(MatchJSON(`{"code":"common.record_not_found","message":"record not found"}`))
		})
	})

	Describe("handleUpdate", func() {
		It("should update a draft", func() {
			ncr.UpdateNCRFunc = func(id types.ID, u *domain.NCRUpdating, sec *session.Session) (*domain.NCR, error) {
				Expect(id).To(Equal(types.ID(123)))
				Expect(u.Title).To(Equal("fixed"))
				return &domain.NCR{ID: 123, Title: u.Title}, nil
			}
			req := httptest.NewRequest(http.MethodPut, "/v1/ncrs/123",
				bytes.NewReader([]byte(`{"title": "fixed"}`)))
			status, body, _ := testinfra.ExecuteRequest(req, router)
			Expect(status).To(Equal(http.StatusOK))
			Expect(body).To(ContainSubstring(`"fixed"`))
		})

		It("should refuse edits outside draft", func() {
			ncr.UpdateNCRFunc = func(id types.ID, u *domain.NCRUpdating, sec *session.Session) (*domain.NCR, error) {
				return nil, bizerror.ErrDraftOnly
			}
			req := httptest.NewRequest(http.MethodPut, "/v1/ncrs/123",
				bytes.NewReader([]byte(`{"title": "too late"}`)))
			status, body, _ := testinfra.ExecuteRequest(req, router)
			Expect(status).To(Equal(http.StatusBadRequest))
			Expect(body).To(MatchJSON(`{"code":"ncr.not_draft","message":"case is no longer a draft"}`))
		})
	})

	Describe("handleDelete", func() {
		It("should delete and return 204", func() {
			ncr.DeleteNCRFunc = func(id types.ID, sec *session.Session) error {
				Expect(id).To(Equal(types.ID(123)))
				return nil
			}
			req := httptest.NewRequest(http.MethodDelete, "/v1/ncrs/123", nil)
			status, body, _ := testinfra.ExecuteRequest(req, router)
			Expect(status).To(Equal(http.StatusNoContent))
			Expect(body).To(BeEmpty())
		})

		It("should refuse non-admin callers", func() {
			ncr.DeleteNCRFunc = func(id types.ID, sec *session.Session) error {
				return bizerror.ErrForbidden
			}
			req := httptest.NewRequest(http.MethodDelete, "/v1/ncrs/123", nil)
			status, body, _ := testinfra.ExecuteRequest(req, router)
			Expect(status).To(Equal(http.StatusForbidden))
			Expect(body).To(MatchJSON(`{"code":"security.forbidden","message":"access forbidden"}`))
		})
	})
})
