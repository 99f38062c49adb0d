package hook

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"gift-ledger/internal/pkg/errs"
	"gift-ledger/internal/usecase/commands"
)

const maxErrorBodyBytes = 512

// WebhookHandler posts events to the external coupon service so it can create
// or disable the matching coupon on its side.
type WebhookHandler struct {
	url    string
	client *http.Client
}

func NewWebhookHandler(url string, timeout time.Duration) *WebhookHandler {
	return &WebhookHandler{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

type webhookEnvelope struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

func (h *WebhookHandler) OnIssued(ctx context.Context, e commands.IssuedEvent) error {
	return h.post(ctx, commands.EventKindIssued, e)
}

func (h *WebhookHandler) OnBalanceExhausted(ctx context.Context, e commands.BalanceExhaustedEvent) error {
	return h.post(ctx, commands.EventKindBalanceExhausted, e)
}

func (h *WebhookHandler) post(ctx context.Context, kind string, data any) error {
	body, err := json.Marshal(webhookEnvelope{Event: kind, Data: data})
	if err != nil {
		return errs.Wrap(err, "failed to encode webhook payload")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.url, bytes.NewReader(body))
	if err != nil {
		return errs.Wrap(err, "failed to build webhook request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := h.client.Do(req)
	if err != nil {
		return errs.Wrap(err, "webhook request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		return errs.Newf("webhook returned %d: %s", resp.StatusCode, bytes.TrimSpace(snippet))
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}
