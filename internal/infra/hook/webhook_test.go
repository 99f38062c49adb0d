//go:build unit

package hook_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gift-ledger/internal/domain/money"
	"gift-ledger/internal/infra/hook"
	"gift-ledger/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type received struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

func TestWebhookHandler_PostsEnvelope(t *testing.T) {
	var got received
	var contentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		contentType = r.Header.Get("Content-Type")
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &got)
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	h := hook.NewWebhookHandler(srv.URL, time.Second)
	id := uuid.New()
	err := h.OnIssued(context.Background(), commands.IssuedEvent{CertificateID: id, Code: "GCABCD2345", Amount: money.FromInt(25)})
	require.NoError(t, err)

	assert.Equal(t, "application/json", contentType)
	assert.Equal(t, commands.EventKindIssued, got.Event)

	var data commands.IssuedEvent
	require.NoError(t, json.Unmarshal(got.Data, &data))
	assert.Equal(t, id, data.CertificateID)
	assert.True(t, data.Amount.Equal(money.FromInt(25)))

	err = h.OnBalanceExhausted(context.Background(), commands.BalanceExhaustedEvent{CertificateID: id, Code: "GCABCD2345"})
	require.NoError(t, err)
	assert.Equal(t, commands.EventKindBalanceExhausted, got.Event)
}

func TestWebhookHandler_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("  upstream down \n"))
	}))
	defer srv.Close()

	err := hook.NewWebhookHandler(srv.URL, time.Second).
		OnBalanceExhausted(context.Background(), commands.BalanceExhaustedEvent{CertificateID: uuid.New()})
	require.Error(t, err)
	assert.Equal(t, "webhook returned 502: upstream down", err.Error())
}

func TestWebhookHandler_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		<-release
	}))
	defer srv.Close()
	defer close(release)

	err := hook.NewWebhookHandler(srv.URL, 20*time.Millisecond).
		OnIssued(context.Background(), commands.IssuedEvent{CertificateID: uuid.New()})
	assert.Error(t, err)
}

func TestLogHandler_NeverFails(t *testing.T) {
	h := hook.NewLogHandler()
	assert.NoError(t, h.OnIssued(context.Background(), commands.IssuedEvent{CertificateID: uuid.New(), Amount: money.FromInt(1)}))
	assert.NoError(t, h.OnBalanceExhausted(context.Background(), commands.BalanceExhaustedEvent{CertificateID: uuid.New()}))
}
