package hook

import (
	"context"
	"log/slog"

	"gift-ledger/internal/usecase/commands"
)

// LogHandler records every event. It never fails.
type LogHandler struct{}

func NewLogHandler() *LogHandler {
	return &LogHandler{}
}

func (h *LogHandler) OnIssued(_ context.Context, e commands.IssuedEvent) error {
	slog.Info("event: certificate issued",
		"certificate_id", e.CertificateID.String(),
		"code", e.Code,
		"amount", e.Amount.Display())
	return nil
}

func (h *LogHandler) OnBalanceExhausted(_ context.Context, e commands.BalanceExhaustedEvent) error {
	slog.Info("event: certificate balance exhausted",
		"certificate_id", e.CertificateID.String(),
		"code", e.Code)
	return nil
}
