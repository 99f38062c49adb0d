package repository

import (
	"context"
	"time"

	"gift-ledger/internal/infra"
	"gift-ledger/internal/infra/query"
	"gift-ledger/internal/pkg/pgconv"
	"gift-ledger/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type OutboxWriteQueries interface {
	CreateOutboxEvent(ctx context.Context, db query.DBTX, arg query.CreateOutboxEventParams) error
	ClaimOutboxEvents(ctx context.Context, db query.DBTX, now pgtype.Timestamptz, limit int32) ([]query.OutboxEvents, error)
	MarkOutboxEventSent(ctx context.Context, db query.DBTX, id uuid.UUID, now pgtype.Timestamptz) error
	MarkOutboxEventFailed(ctx context.Context, db query.DBTX, arg query.MarkOutboxEventFailedParams) error
}

type OutboxRepository struct {
	queries OutboxWriteQueries
	db      query.DBTX
}

func NewOutboxRepository(queries OutboxWriteQueries, db query.DBTX) *OutboxRepository {
	return &OutboxRepository{
		queries: queries,
		db:      db,
	}
}

func (r *OutboxRepository) Enqueue(ctx context.Context, tx query.DBTX, kind, topic string, payload []byte, runAt time.Time) error {
	params := query.CreateOutboxEventParams{
		ID:        uuid.New(),
		Kind:      kind,
		Topic:     topic,
		Payload:   payload,
		RunAt:     pgconv.TimeToPgtype(runAt),
		CreatedAt: pgconv.TimeToPgtype(time.Now()),
	}

	if err := r.queries.CreateOutboxEvent(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to enqueue outbox event", err)
	}
	return nil
}

func (r *OutboxRepository) ClaimDue(ctx context.Context, tx query.DBTX, now time.Time, limit int) ([]shared.OutboxEvent, error) {
	rows, err := r.queries.ClaimOutboxEvents(ctx, tx, pgconv.TimeToPgtype(now), int32(limit)) // #nosec G115 -- limit comes from config
	if err != nil {
		return nil, infra.WrapRepoErr("failed to claim outbox events", err)
	}

	events := make([]shared.OutboxEvent, len(rows))
	for i, row := range rows {
		events[i] = shared.OutboxEvent{
			ID:       row.ID,
			Kind:     row.Kind,
			Topic:    row.Topic,
			Payload:  row.Payload,
			Attempts: int(row.Attempts),
		}
	}
	return events, nil
}

func (r *OutboxRepository) MarkSent(ctx context.Context, tx query.DBTX, id uuid.UUID) error {
	if err := r.queries.MarkOutboxEventSent(ctx, tx, id, pgconv.TimeToPgtype(time.Now())); err != nil {
		return infra.WrapRepoErr("failed to mark outbox event sent", err)
	}
	return nil
}

func (r *OutboxRepository) MarkFailed(ctx context.Context, tx query.DBTX, id uuid.UUID, lastError string, nextRunAt time.Time, maxAttempts int) error {
	params := query.MarkOutboxEventFailedParams{
		ID:          id,
		LastError:   lastError,
		NextRunAt:   pgconv.TimeToPgtype(nextRunAt),
		MaxAttempts: int32(maxAttempts), // #nosec G115 -- maxAttempts comes from config
		UpdatedAt:   pgconv.TimeToPgtype(time.Now()),
	}
	if err := r.queries.MarkOutboxEventFailed(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to mark outbox event failed", err)
	}
	return nil
}
