//go:build unit

package api_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"gift-ledger/internal/domain/certificate"
	"gift-ledger/internal/domain/money"
	"gift-ledger/internal/handler/api"
	resdto "gift-ledger/internal/handler/dto/response"
	"gift-ledger/internal/handler/httperr"
	"gift-ledger/internal/infra"
	"gift-ledger/internal/pkg/clock"
	"gift-ledger/internal/pkg/errs"
	"gift-ledger/internal/usecase/commands"
	"gift-ledger/internal/usecase/queries"
	"gift-ledger/tests/common/builder"
	"gift-ledger/tests/common/httptest"
	"gift-ledger/tests/common/testutil"
	commandsmock "gift-ledger/tests/mock/commands"
	queriesmock "gift-ledger/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var handlerNow = time.Date(2025, 5, 20, 14, 30, 0, 0, time.UTC)

type CertificateHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockIssuance *commandsmock.MockIssuanceCommands
	mockAdmin    *commandsmock.MockAdminCommands
	mockQueries  *queriesmock.MockCertificateQueries
	handler      *api.CertificateHandler
}

func (s *CertificateHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockIssuance = commandsmock.NewMockIssuanceCommands(s.mockCtrl)
	s.mockAdmin = commandsmock.NewMockAdminCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockCertificateQueries(s.mockCtrl)
	s.handler = api.NewCertificateHandler(s.mockIssuance, s.mockAdmin, s.mockQueries, clock.NewMockClock(handlerNow))

	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Next()
	}

	s.router.GET("/certificates/lookup/:code", s.handler.Lookup)
	admin := s.router.Group("/certificates", authMiddleware)
	admin.POST("", s.handler.Issue)
	admin.GET("", s.handler.List)
	admin.GET("/due-for-delivery", s.handler.DueForDelivery)
	admin.GET("/:id", s.handler.Get)
	admin.GET("/:id/transactions", s.handler.Transactions)
	admin.GET("/:id/reconciliation", s.handler.Reconciliation)
	admin.PATCH("/:id", s.handler.UpdateMetadata)
	admin.PUT("/:id/status", s.handler.UpdateStatus)
	admin.POST("/:id/delivered", s.handler.MarkDelivered)
	admin.DELETE("/:id", s.handler.Delete)
}

func (s *CertificateHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCertificateHandlerSuite(t *testing.T) {
	suite.Run(t, new(CertificateHandlerTestSuite))
}

type testCaseCertificate struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

func validationErr(msg string) error {
	return errs.Mark(errors.New(msg), commands.ErrValidation)
}

// ================================================================================
// TestIssue
// ================================================================================

func (s *CertificateHandlerTestSuite) TestIssue() {
	url := "/certificates"
	reqBody := builder.NewCertificateBuilder().BuildIssueRequestDTO()
	result := &commands.IssueResult{CertificateID: uuid.New(), Code: "GCABCD2345", Status: certificate.StatusActive}

	s.Run("success: returns 201 with the issued code", func() {
		s.mockIssuance.EXPECT().Issue(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, req commands.IssueRequest) (*commands.IssueResult, error) {
				s.True(req.Amount.Equal(money.FromInt(50)))
				s.Equal("recipient@example.com", req.RecipientEmail)
				s.Equal("GCABCD2345", *req.Code)
				return result, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body resdto.IssueResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(result.CertificateID.String(), body.ID)
		s.Equal("GCABCD2345", body.Code)
		s.Equal("active", body.Status)
	})

	s.Run("error: 400 Bad Request on malformed input", func() {
		cases := []testCaseCertificate{
			{name: "missing recipient_email", mutate: testutil.Field("recipient_email", nil), expectCode: http.StatusBadRequest},
			{name: "missing recipient_name", mutate: testutil.Field("recipient_name", nil), expectCode: http.StatusBadRequest},
			{name: "missing sender_name", mutate: testutil.Field("sender_name", nil), expectCode: http.StatusBadRequest},
			{name: "amount not a number", mutate: testutil.Field("amount", "fifty"), expectCode: http.StatusBadRequest},
			{name: "message too long", mutate: testutil.Field("message", strings.Repeat("a", 2001)), expectCode: http.StatusBadRequest},
			{name: "delivery date format", mutate: testutil.Field("delivery_date", "12/24/2025"), expectCode: http.StatusBadRequest},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
			})
		}
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{"validation", validationErr("amount must be positive"), http.StatusBadRequest, "Invalid request"},
			{"duplicate code", errs.Mark(errs.Mark(errors.New("code taken"), commands.ErrDuplicateCode), commands.ErrValidation), http.StatusBadRequest, "Certificate code already exists"},
			{"storage", errs.Mark(errors.New("pool closed"), commands.ErrStorage), http.StatusServiceUnavailable, "temporarily unavailable"},
			{"unclassified db failure", infra.WrapRepoErr("insert", errors.New("reset")), http.StatusServiceUnavailable, "temporarily unavailable"},
			{"unexpected", errors.New("boom"), http.StatusInternalServerError, "Internal server error"},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockIssuance.EXPECT().Issue(gomock.Any(), gomock.Any()).Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})

	s.Run("error: validation detail carries the cause", func() {
		s.mockIssuance.EXPECT().Issue(gomock.Any(), gomock.Any()).
			Return(nil, validationErr("recipient_email is invalid")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body httperr.Response
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
		s.Equal("recipient_email is invalid", body.Detail)
	})
}

// ================================================================================
// TestLookup
// ================================================================================

func (s *CertificateHandlerTestSuite) TestLookup() {
	view := builder.NewCertificateBuilder().WithAmount("100").WithBalance("37.5").BuildView()

	s.Run("success: public balance without recipient details", func() {
		s.mockQueries.EXPECT().GetByCode(gomock.Any(), "gc-abcd-2345").Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/certificates/lookup/gc-abcd-2345", nil, "")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("GCABCD2345", body["code"])
		s.Equal("100.00", body["original_amount"])
		s.Equal("37.50", body["current_balance"])
		s.NotContains(body, "recipient_email")
	})

	s.Run("error: statuses", func() {
		testCases := []struct {
			name   string
			err    error
			status int
		}{
			{"bad format", errs.Mark(certificate.ErrInvalidCode, queries.ErrInvalidCode), http.StatusBadRequest},
			{"unknown", queries.ErrCertificateNotFound, http.StatusNotFound},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockQueries.EXPECT().GetByCode(gomock.Any(), "GCNOPE2345").Return(nil, tc.err).Times(1)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/certificates/lookup/GCNOPE2345", nil, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.status, "")
			})
		}
	})
}

// ================================================================================
// TestGet / TestList / TestDueForDelivery
// ================================================================================

func (s *CertificateHandlerTestSuite) TestGet() {
	view := builder.NewCertificateBuilder().WithDeliveryDate(time.Date(2025, 12, 24, 0, 0, 0, 0, time.UTC)).BuildView()

	s.Run("success", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/certificates/"+view.ID.String(), nil, "bearer-token")

		var body resdto.CertificateResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.ID.String(), body.ID)
		s.Equal("50.00", body.CurrentBalance)
		s.Equal("50.0000", body.CurrentBalanceExact)
		s.Require().NotNil(body.DeliveryDate)
		s.Equal("2025-12-24", *body.DeliveryDate)
	})

	s.Run("error: 400 on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/certificates/not-a-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: 404 when missing", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(nil, queries.ErrCertificateNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/certificates/"+view.ID.String(), nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Certificate not found")
	})
}

func (s *CertificateHandlerTestSuite) TestList() {
	items := []*queries.CertificateView{builder.NewCertificateBuilder().BuildView()}

	s.Run("success: forwards filters and returns the next cursor", func() {
		status := "active"
		s.mockQueries.EXPECT().
			List(gomock.Any(), queries.ListFilters{Status: &status}, &queries.Cursor{After: "abc"}, 5).
			Return(items, &queries.Cursor{After: "next-page"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/certificates?status=active&after=abc&limit=5", nil, "bearer-token")

		var body resdto.CertificateListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body.Items, 1)
		s.Require().NotNil(body.NextCursor)
		s.Equal("next-page", *body.NextCursor)
	})

	s.Run("success: default limit", func() {
		s.mockQueries.EXPECT().
			List(gomock.Any(), queries.ListFilters{}, &queries.Cursor{}, queries.DefaultListLimit).
			Return(nil, nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/certificates", nil, "bearer-token")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.NotContains(body, "next_cursor")
	})

	s.Run("error: 400 cases", func() {
		s.Run("limit below one", func() {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/certificates?limit=0", nil, "bearer-token")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid query")
		})
		s.Run("bad cursor", func() {
			s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
				Return(nil, nil, queries.ErrInvalidCursor).Times(1)
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/certificates?after=zzz", nil, "bearer-token")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid cursor")
		})
		s.Run("bad status", func() {
			s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
				Return(nil, nil, errs.Mark(certificate.ErrInvalidStatus, queries.ErrInvalidStatusFilter)).Times(1)
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/certificates?status=archived", nil, "bearer-token")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid status filter")
		})
	})
}

func (s *CertificateHandlerTestSuite) TestDueForDelivery() {
	s.Run("success: defaults to now", func() {
		s.mockQueries.EXPECT().ListDueForDelivery(gomock.Any(), handlerNow, queries.DefaultListLimit).
			Return([]*queries.CertificateView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/certificates/due-for-delivery", nil, "bearer-token")

		var body []resdto.CertificateResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Empty(body)
	})

	s.Run("success: explicit date", func() {
		s.mockQueries.EXPECT().ListDueForDelivery(gomock.Any(), time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), 10).
			Return([]*queries.CertificateView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/certificates/due-for-delivery?as_of=2025-06-01&limit=10", nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 on bad date", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/certificates/due-for-delivery?as_of=tomorrow", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid date")
	})
}

// ================================================================================
// TestTransactions / TestReconciliation
// ================================================================================

func (s *CertificateHandlerTestSuite) TestTransactions() {
	id := uuid.New()
	ref := "sub-9"

	s.Run("success", func() {
		s.mockQueries.EXPECT().ListTransactions(gomock.Any(), id).Return([]*queries.TransactionView{{
			ID:                  uuid.New(),
			CertificateID:       id,
			AmountUsed:          money.MustFromString("12.345"),
			BalanceAfter:        money.MustFromString("37.655"),
			SubmissionReference: &ref,
			CreatedAt:           handlerNow,
		}}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/certificates/"+id.String()+"/transactions", nil, "bearer-token")

		var body []resdto.TransactionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 1)
		s.Equal("12.35", body[0].AmountUsed)
		s.Equal("12.3450", body[0].AmountUsedExact)
		s.Equal(&ref, body[0].SubmissionReference)
	})

	s.Run("error: 404 for unknown certificate", func() {
		s.mockQueries.EXPECT().ListTransactions(gomock.Any(), id).Return(nil, queries.ErrCertificateNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/certificates/"+id.String()+"/transactions", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})
}

func (s *CertificateHandlerTestSuite) TestReconciliation() {
	id := uuid.New()
	s.mockQueries.EXPECT().Reconcile(gomock.Any(), id).Return(&queries.ReconciliationView{
		CertificateID:    id,
		OriginalAmount:   money.FromInt(50),
		TotalRedeemed:    money.FromInt(20),
		ExpectedBalance:  money.FromInt(30),
		CurrentBalance:   money.FromInt(30),
		TransactionCount: 2,
		Balanced:         true,
	}, nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/certificates/"+id.String()+"/reconciliation", nil, "bearer-token")

	var body resdto.ReconciliationResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.True(body.Balanced)
	s.Equal(int64(2), body.TransactionCount)
}

// ================================================================================
// Admin writes
// ================================================================================

func (s *CertificateHandlerTestSuite) TestUpdateMetadata() {
	view := builder.NewCertificateBuilder().BuildView()
	url := "/certificates/" + view.ID.String()

	s.Run("success: returns the refreshed certificate", func() {
		name := "Alex"
		s.mockAdmin.EXPECT().UpdateMetadata(gomock.Any(), view.ID, certificate.Metadata{RecipientName: &name}).Return(nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"recipient_name": "Alex"}, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("success: explicit null clears the optional fields", func() {
		s.mockAdmin.EXPECT().
			UpdateMetadata(gomock.Any(), view.ID, certificate.Metadata{ClearDeliveryDate: true, ClearDesignID: true}).
			Return(nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"delivery_date": nil, "design_id": nil}, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 on oversized design id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"design_id": strings.Repeat("d", 65)}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 400 on bad delivery date without calling the use case", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"delivery_date": "soon"}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid date")
	})

	s.Run("error: statuses", func() {
		testCases := []struct {
			name   string
			err    error
			status int
		}{
			{"nothing to update", validationErr("no fields to update"), http.StatusBadRequest},
			{"duplicate code", errs.Mark(errs.Mark(errors.New("taken"), commands.ErrDuplicateCode), commands.ErrValidation), http.StatusBadRequest},
			{"unknown", errs.Mark(errors.New("missing"), commands.ErrNotFound), http.StatusNotFound},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockAdmin.EXPECT().UpdateMetadata(gomock.Any(), view.ID, gomock.Any()).Return(tc.err).Times(1)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{}, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.status, "")
			})
		}
	})
}

func (s *CertificateHandlerTestSuite) TestUpdateStatus() {
	view := builder.NewCertificateBuilder().WithStatus(certificate.StatusExpired).BuildView()
	url := "/certificates/" + view.ID.String() + "/status"

	s.Run("success", func() {
		s.mockAdmin.EXPECT().UpdateStatus(gomock.Any(), view.ID, "expired").Return(nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"status": "expired"}, "bearer-token")

		var body resdto.CertificateResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("expired", body.Status)
	})

	s.Run("error: 400 when status missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 400 on unknown status", func() {
		s.mockAdmin.EXPECT().UpdateStatus(gomock.Any(), view.ID, "archived").
			Return(errs.Mark(certificate.ErrInvalidStatus, commands.ErrValidation)).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"status": "archived"}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}

func (s *CertificateHandlerTestSuite) TestMarkDelivered() {
	view := builder.NewCertificateBuilder().WithStatus(certificate.StatusDelivered).BuildView()
	url := "/certificates/" + view.ID.String() + "/delivered"

	s.Run("success", func() {
		s.mockAdmin.EXPECT().MarkDelivered(gomock.Any(), view.ID).Return(nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 422 when not pending delivery", func() {
		s.mockAdmin.EXPECT().MarkDelivered(gomock.Any(), view.ID).
			Return(errs.Mark(errors.New("status active"), commands.ErrInvalidTransition)).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "not pending delivery")
	})
}

func (s *CertificateHandlerTestSuite) TestDelete() {
	id := uuid.New()
	url := "/certificates/" + id.String()

	s.Run("success: 204", func() {
		s.mockAdmin.EXPECT().Delete(gomock.Any(), id).Return(nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
		s.Empty(rec.Body.String())
	})

	s.Run("error: 404", func() {
		s.mockAdmin.EXPECT().Delete(gomock.Any(), id).Return(errs.Mark(errors.New("missing"), commands.ErrNotFound)).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Certificate not found")
	})
}
