//go:build e2e

package redemption_test

import (
	"fmt"
	"net/http"
	"sync"
	"testing"

	"gift-ledger/internal/handler/dto/response"
	"gift-ledger/internal/handler/middleware"
	"gift-ledger/internal/usecase/commands"
	"gift-ledger/tests/common/authtest"
	"gift-ledger/tests/common/dbtest"
	"gift-ledger/tests/common/httptest"
	"gift-ledger/tests/e2e"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	redemptionsURL    = "/api/redemptions"
	formWebhookURL    = "/api/webhooks/form-submissions"
	transactionsURL   = "/api/certificates/%s/transactions"
	reconciliationURL = "/api/certificates/%s/reconciliation"
)

type RedemptionSuite struct {
	e2e.SharedSuite
	tokens *authtest.JWTHelper
}

func (s *RedemptionSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.tokens = authtest.NewJWTHelper(s.Config.JWT)
}

func (s *RedemptionSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestRedemptionSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(RedemptionSuite))
}

func (s *RedemptionSuite) redeem(t *testing.T, body map[string]string, headers map[string]string) (int, response.RedemptionResponse) {
	t.Helper()
	w := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, redemptionsURL, body, headers, s.tokens.IntegrationToken(t))
	var res response.RedemptionResponse
	if w.Code == http.StatusOK {
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
	}
	return w.Code, res
}

// =============================================================================
// TestRedeem
// =============================================================================

func (s *RedemptionSuite) TestRedeem() {
	s.Run("Normal case: partial then clamped redemption exhausts the certificate", func() {
		t := s.T()
		id := dbtest.CreateTestCertificate(t, s.DB, "GCREDEEM23", "50", "50", "active")

		code, res := s.redeem(t, map[string]string{"code": "gc-rede-em23", "amount": "30", "order_ref": "ORD-1"}, nil)
		require.Equal(t, http.StatusOK, code)
		assert.Equal(t, "30.00", res.AmountApplied)
		assert.Equal(t, "20.00", res.NewBalance)
		assert.Equal(t, "active", res.Status)

		code, res = s.redeem(t, map[string]string{"code": "GCREDEEM23", "amount": "45.99"}, nil)
		require.Equal(t, http.StatusOK, code)
		assert.Equal(t, "20.00", res.AmountApplied)
		assert.Equal(t, "0.00", res.NewBalance)
		assert.Equal(t, "expired", res.Status)

		balance, status := dbtest.CertificateBalance(t, s.DB, id)
		assert.Equal(t, "0.0000", balance)
		assert.Equal(t, "expired", status)
		assert.Equal(t, 1, dbtest.CountOutboxEvents(t, s.DB, commands.EventKindBalanceExhausted))

		code, _ = s.redeem(t, map[string]string{"code": "GCREDEEM23", "amount": "1"}, nil)
		assert.Equal(t, http.StatusUnprocessableEntity, code)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(reconciliationURL, id), nil, s.tokens.AdminToken(t))
		require.Equal(t, http.StatusOK, w.Code)
		var rec response.ReconciliationResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &rec))
		assert.True(t, rec.Balanced)
		assert.Equal(t, int64(2), rec.TransactionCount)
	})

	s.Run("Normal case: repeated submission reference is applied once", func() {
		t := s.T()
		id := dbtest.CreateTestCertificate(t, s.DB, "GCIDEMPO23", "50", "50", "active")
		headers := map[string]string{middleware.SubmissionRefHeader: "sub-1"}

		code, first := s.redeem(t, map[string]string{"code": "GCIDEMPO23", "amount": "10"}, headers)
		require.Equal(t, http.StatusOK, code)
		require.False(t, first.Replayed)

		code, second := s.redeem(t, map[string]string{"code": "GCIDEMPO23", "amount": "10"}, headers)
		require.Equal(t, http.StatusOK, code)
		assert.True(t, second.Replayed)
		assert.Equal(t, first.TransactionID, second.TransactionID)
		assert.Equal(t, "40.00", second.NewBalance)

		assert.Equal(t, 1, dbtest.CountTransactions(t, s.DB, id))
		balance, _ := dbtest.CertificateBalance(t, s.DB, id)
		assert.Equal(t, "40.0000", balance)
	})

	s.Run("Normal case: concurrent redemptions never overdraw", func() {
		t := s.T()
		id := dbtest.CreateTestCertificate(t, s.DB, "GCCONCUR23", "50", "50", "active")
		token := s.tokens.IntegrationToken(t)

		const workers = 10
		var wg sync.WaitGroup
		codes := make([]int, workers)
		for i := range workers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				w := httptest.PerformRequest(t, s.Router, http.MethodPost, redemptionsURL,
					map[string]string{"code": "GCCONCUR23", "amount": "8"}, token)
				codes[i] = w.Code
			}()
		}
		wg.Wait()

		balance, _ := dbtest.CertificateBalance(t, s.DB, id)
		ok := 0
		for _, c := range codes {
			require.Contains(t, []int{http.StatusOK, http.StatusConflict, http.StatusUnprocessableEntity}, c)
			if c == http.StatusOK {
				ok++
			}
		}
		require.Equal(t, ok, dbtest.CountTransactions(t, s.DB, id))

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(reconciliationURL, id), nil, s.tokens.AdminToken(t))
		var rec response.ReconciliationResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &rec))
		assert.True(t, rec.Balanced, "stored balance %s diverged from ledger", balance)
		assert.NotEqual(t, "-", balance[:1])
	})

	s.Run("Error case: statuses", func() {
		t := s.T()
		dbtest.CreateTestCertificate(t, s.DB, "GCPENDIN23", "50", "50", "pending_delivery")

		code, _ := s.redeem(t, map[string]string{"code": "bad", "amount": "1"}, nil)
		assert.Equal(t, http.StatusBadRequest, code)
		code, _ = s.redeem(t, map[string]string{"code": "GCUNKNOW23", "amount": "1"}, nil)
		assert.Equal(t, http.StatusNotFound, code)
		code, _ = s.redeem(t, map[string]string{"code": "GCPENDIN23", "amount": "1"}, nil)
		assert.Equal(t, http.StatusUnprocessableEntity, code)
		code, _ = s.redeem(t, map[string]string{"code": "GCPENDIN23", "amount": "0"}, nil)
		assert.Equal(t, http.StatusBadRequest, code)
	})

	s.Run("Error case: redemption needs a token", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, redemptionsURL, map[string]string{"code": "GCABCD2345", "amount": "1"}, "")
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Access token required")
		httptest.AssertHeaders(t, w, map[string]string{"Content-Type": "application/json; charset=utf-8"})
	})
}

// =============================================================================
// TestFormSubmission
// =============================================================================

func (s *RedemptionSuite) TestFormSubmission() {
	s.Run("Normal case: webhook redeems and is idempotent per submission", func() {
		t := s.T()
		id := dbtest.CreateTestCertificate(t, s.DB, "GCFORMSU23", "100", "100", "active")
		body := map[string]any{
			"form_id":       "checkout",
			"submission_id": "fs-1001",
			"fields": map[string]any{
				"gift_certificate_code": "GCFORMSU23",
				"order_total":           "$12.50",
				"order_id":              1001,
			},
		}
		token := s.tokens.IntegrationToken(t)

		for range 2 {
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, formWebhookURL, body, token)
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		}

		balance, _ := dbtest.CertificateBalance(t, s.DB, id)
		assert.Equal(t, "87.5000", balance)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(transactionsURL, id), nil, s.tokens.AdminToken(t))
		require.Equal(t, http.StatusOK, w.Code)
		var txns []*response.TransactionResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &txns))
		require.Len(t, txns, 1)
		require.NotNil(t, txns[0].SubmissionReference)
		assert.Equal(t, "fs-1001", *txns[0].SubmissionReference)
		require.NotNil(t, txns[0].OrderReference)
		assert.Equal(t, "1001", *txns[0].OrderReference)
	})

	s.Run("Normal case: submissions without a code are acknowledged", func() {
		t := s.T()
		body := map[string]any{
			"form_id":       "contact",
			"submission_id": "fs-2000",
			"fields":        map[string]any{"email": "someone@example.com"},
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, formWebhookURL, body, s.tokens.IntegrationToken(t))
		require.Equal(t, http.StatusOK, w.Code)

		var res response.SkippedResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
		assert.Equal(t, "skipped", res.Status)
	})
}
