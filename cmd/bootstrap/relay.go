package bootstrap

import (
	"context"
	"log/slog"

	"gift-ledger/internal/infra/hook"
	"gift-ledger/internal/pkg/clock"
	"gift-ledger/internal/pkg/config"
	"gift-ledger/internal/usecase/relay"
	"gift-ledger/internal/usecase/shared"

	"go.uber.org/fx"
)

var RelayModule = fx.Module("relay",
	fx.Provide(
		NewRelay,
	),
	fx.Invoke(startRelay),
)

func NewRelay(uow shared.UnitOfWork, clk clock.Clock, cfg config.Config) *relay.Relay {
	handlers := []relay.EventHandler{hook.NewLogHandler()}
	if cfg.Relay.WebhookURL != "" {
		handlers = append(handlers, hook.NewWebhookHandler(cfg.Relay.WebhookURL, cfg.Relay.WebhookTimeout))
	}
	return relay.New(uow, clk, relay.Options{
		Interval:    cfg.Relay.Interval,
		BatchSize:   cfg.Relay.BatchSize,
		MaxAttempts: cfg.Relay.MaxAttempts,
	}, handlers...)
}

func startRelay(lc fx.Lifecycle, r *relay.Relay, logger *slog.Logger) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			logger.Info("starting outbox relay")
			go func() {
				defer close(done)
				r.Run(ctx)
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
			case <-stopCtx.Done():
				return stopCtx.Err()
			}
			logger.Info("outbox relay stopped")
			return nil
		},
	})
}
