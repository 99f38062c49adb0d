// Package relay delivers outbox events written by the command side to the
// registered handlers. Delivery is at least once; handlers must tolerate repeats.
package relay

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"gift-ledger/internal/pkg/clock"
	"gift-ledger/internal/pkg/errs"
	"gift-ledger/internal/usecase/commands"
	"gift-ledger/internal/usecase/shared"
)

var ErrUnknownEventKind = errs.New("unknown outbox event kind")

type EventHandler interface {
	OnIssued(ctx context.Context, event commands.IssuedEvent) error
	OnBalanceExhausted(ctx context.Context, event commands.BalanceExhaustedEvent) error
}

type Options struct {
	Interval    time.Duration
	BatchSize   int
	MaxAttempts int
}

type Relay struct {
	uow      shared.UnitOfWork
	clock    clock.Clock
	handlers []EventHandler
	opts     Options
}

func New(uow shared.UnitOfWork, clk clock.Clock, opts Options, handlers ...EventHandler) *Relay {
	if opts.Interval <= 0 {
		opts.Interval = 5 * time.Second
	}
	if opts.BatchSize <= 0 {
		opts.BatchSize = 50
	}
	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = 5
	}
	return &Relay{
		uow:      uow,
		clock:    clk,
		handlers: handlers,
		opts:     opts,
	}
}

// Run polls until ctx is cancelled.
func (r *Relay) Run(ctx context.Context) {
	ticker := time.NewTicker(r.opts.Interval)
	defer ticker.Stop()

	for {
		if _, err := r.RunOnce(ctx); err != nil && ctx.Err() == nil {
			slog.Error("outbox relay pass failed", "error", err.Error())
		}
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// RunOnce claims one batch of due events and dispatches it. Rows stay locked
// for the duration so concurrent relays never deliver the same event together.
func (r *Relay) RunOnce(ctx context.Context) (int, error) {
	delivered := 0
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := r.clock.Now()
		events, err := tx.Outbox().ClaimDue(ctx, tx.DB(), now, r.opts.BatchSize)
		if err != nil {
			return err
		}

		for _, event := range events {
			if derr := r.dispatch(ctx, event); derr != nil {
				slog.Warn("outbox event delivery failed",
					"event_id", event.ID.String(),
					"kind", event.Kind,
					"attempt", event.Attempts+1,
					"error", derr.Error())
				next := now.Add(backoff(event.Attempts))
				if err := tx.Outbox().MarkFailed(ctx, tx.DB(), event.ID, derr.Error(), next, r.opts.MaxAttempts); err != nil {
					return err
				}
				continue
			}
			if err := tx.Outbox().MarkSent(ctx, tx.DB(), event.ID); err != nil {
				return err
			}
			delivered++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return delivered, nil
}

func (r *Relay) dispatch(ctx context.Context, event shared.OutboxEvent) error {
	switch event.Kind {
	case commands.EventKindIssued:
		var payload commands.IssuedEvent
		if err := json.Unmarshal(event.Payload, &payload); err != nil {
			return errs.Wrap(err, "failed to decode issued event")
		}
		for _, h := range r.handlers {
			if err := h.OnIssued(ctx, payload); err != nil {
				return err
			}
		}
	case commands.EventKindBalanceExhausted:
		var payload commands.BalanceExhaustedEvent
		if err := json.Unmarshal(event.Payload, &payload); err != nil {
			return errs.Wrap(err, "failed to decode balance exhausted event")
		}
		for _, h := range r.handlers {
			if err := h.OnBalanceExhausted(ctx, payload); err != nil {
				return err
			}
		}
	default:
		return errs.Wrapf(ErrUnknownEventKind, "kind %q", event.Kind)
	}
	return nil
}

func backoff(attempts int) time.Duration {
	if attempts > 6 {
		attempts = 6
	}
	return time.Duration(1<<attempts) * time.Second
}
