package query

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const createOutboxEvent = `
INSERT INTO outbox_events (id, kind, topic, payload, run_at, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $6)`

type CreateOutboxEventParams struct {
	ID        uuid.UUID
	Kind      string
	Topic     string
	Payload   []byte
	RunAt     pgtype.Timestamptz
	CreatedAt pgtype.Timestamptz
}

func (q *Queries) CreateOutboxEvent(ctx context.Context, db DBTX, arg CreateOutboxEventParams) error {
	_, err := db.Exec(ctx, createOutboxEvent, arg.ID, arg.Kind, arg.Topic, arg.Payload, arg.RunAt, arg.CreatedAt)
	return err
}

// Concurrent relays skip rows another relay already holds.
const claimOutboxEvents = `
SELECT id, kind, topic, payload, run_at, attempts, status, last_error, created_at, updated_at
FROM outbox_events
WHERE status = 'queued' AND run_at <= $1
ORDER BY run_at, created_at
LIMIT $2
FOR UPDATE SKIP LOCKED`

func (q *Queries) ClaimOutboxEvents(ctx context.Context, db DBTX, now pgtype.Timestamptz, limit int32) ([]OutboxEvents, error) {
	rows, err := db.Query(ctx, claimOutboxEvents, now, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []OutboxEvents
	for rows.Next() {
		var e OutboxEvents
		if err := rows.Scan(
			&e.ID,
			&e.Kind,
			&e.Topic,
			&e.Payload,
			&e.RunAt,
			&e.Attempts,
			&e.Status,
			&e.LastError,
			&e.CreatedAt,
			&e.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const markOutboxEventSent = `
UPDATE outbox_events
SET status = 'sent', attempts = attempts + 1, last_error = NULL, updated_at = $2
WHERE id = $1`

func (q *Queries) MarkOutboxEventSent(ctx context.Context, db DBTX, id uuid.UUID, now pgtype.Timestamptz) error {
	_, err := db.Exec(ctx, markOutboxEventSent, id, now)
	return err
}

// A row whose attempts reach the limit stops being retried.
const markOutboxEventFailed = `
UPDATE outbox_events
SET attempts = attempts + 1,
    last_error = $2,
    run_at = $3,
    status = CASE WHEN attempts + 1 >= $4 THEN 'failed' ELSE 'queued' END,
    updated_at = $5
WHERE id = $1`

type MarkOutboxEventFailedParams struct {
	ID          uuid.UUID
	LastError   string
	NextRunAt   pgtype.Timestamptz
	MaxAttempts int32
	UpdatedAt   pgtype.Timestamptz
}

func (q *Queries) MarkOutboxEventFailed(ctx context.Context, db DBTX, arg MarkOutboxEventFailedParams) error {
	_, err := db.Exec(ctx, markOutboxEventFailed, arg.ID, arg.LastError, arg.NextRunAt, arg.MaxAttempts, arg.UpdatedAt)
	return err
}
