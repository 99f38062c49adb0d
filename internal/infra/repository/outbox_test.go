//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"gift-ledger/internal/infra"
	"gift-ledger/internal/infra/query"
	"gift-ledger/internal/infra/repository"
	repositorymock "gift-ledger/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestOutboxRepository(t *testing.T) {
	ctx := context.Background()
	runAt := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("enqueue", func(t *testing.T) {
		q := repositorymock.NewMockOutboxWriteQueries(gomock.NewController(t))
		q.EXPECT().CreateOutboxEvent(ctx, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ query.DBTX, arg query.CreateOutboxEventParams) error {
				assert.NotEqual(t, uuid.Nil, arg.ID)
				assert.Equal(t, "certificate.issued", arg.Kind)
				assert.Equal(t, "certificates", arg.Topic)
				assert.JSONEq(t, `{"code":"GCABCD2345"}`, string(arg.Payload))
				assert.True(t, arg.RunAt.Time.Equal(runAt))
				return nil
			})

		repo := repository.NewOutboxRepository(q, nil)
		require.NoError(t, repo.Enqueue(ctx, nil, "certificate.issued", "certificates", []byte(`{"code":"GCABCD2345"}`), runAt))
	})

	t.Run("claim maps rows", func(t *testing.T) {
		q := repositorymock.NewMockOutboxWriteQueries(gomock.NewController(t))
		id := uuid.New()
		q.EXPECT().ClaimOutboxEvents(ctx, gomock.Any(), gomock.Any(), int32(10)).
			Return([]query.OutboxEvents{{ID: id, Kind: "k", Topic: "t", Payload: []byte("{}"), Attempts: 2}}, nil)

		events, err := repository.NewOutboxRepository(q, nil).ClaimDue(ctx, nil, runAt, 10)
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, id, events[0].ID)
		assert.Equal(t, 2, events[0].Attempts)
	})

	t.Run("mark failed carries the retry schedule", func(t *testing.T) {
		q := repositorymock.NewMockOutboxWriteQueries(gomock.NewController(t))
		id := uuid.New()
		q.EXPECT().MarkOutboxEventFailed(ctx, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ query.DBTX, arg query.MarkOutboxEventFailedParams) error {
				assert.Equal(t, id, arg.ID)
				assert.Equal(t, "timeout", arg.LastError)
				assert.Equal(t, int32(5), arg.MaxAttempts)
				assert.True(t, arg.NextRunAt.Time.Equal(runAt))
				return nil
			})

		require.NoError(t, repository.NewOutboxRepository(q, nil).MarkFailed(ctx, nil, id, "timeout", runAt, 5))
	})

	t.Run("mark sent failure", func(t *testing.T) {
		q := repositorymock.NewMockOutboxWriteQueries(gomock.NewController(t))
		q.EXPECT().MarkOutboxEventSent(ctx, gomock.Any(), gomock.Any(), gomock.AssignableToTypeOf(pgtype.Timestamptz{})).
			Return(errors.New("broken pipe"))

		err := repository.NewOutboxRepository(q, nil).MarkSent(ctx, nil, uuid.New())
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
