package bootstrap

import (
	"log/slog"
	"time"

	"gift-ledger/internal/handler/middleware"
	"gift-ledger/internal/pkg/config"

	"go.uber.org/fx"
)

const connectTimeout = 10 * time.Second

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
		NewSlogLogger,
	),
)

func NewLogger(cfg config.Config) *middleware.Logger {
	return middleware.NewLogger(cfg.Log)
}

// NewSlogLogger also installs the request logger's handler as the process default,
// so package-level slog calls share its level and sinks.
func NewSlogLogger(l *middleware.Logger) *slog.Logger {
	logger := l.GetSlogLogger()
	slog.SetDefault(logger)
	return logger
}
