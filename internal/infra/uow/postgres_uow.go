package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"gift-ledger/internal/domain/certificate"
	"gift-ledger/internal/infra/query"
	"gift-ledger/internal/infra/readstore"
	"gift-ledger/internal/infra/repository"
	"gift-ledger/internal/pkg/errs"
	"gift-ledger/internal/usecase/queries"
	"gift-ledger/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool *pgxpool.Pool
	q    *query.Queries
}

func NewPostgresUoW(pool *pgxpool.Pool, q *query.Queries) shared.UnitOfWork {
	return &PostgresUoW{
		pool: pool,
		q:    q,
	}
}

// ReadCommitted is enough here: balance writes are guarded by the version
// compare-and-swap, not by the isolation level.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return &commandReads{uow: u, dbtx: u.pool}
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	const maxRetries = 3
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		tx := &pgTx{
			dbtx: pgxTx,
			uow:  u,
		}

		err = fn(ctx, tx)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !shouldRetry(err, attempt, maxRetries) {
			if attempt == maxRetries && isRetryableError(err) {
				slog.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, base)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// Fallback to a simple calculation if crypto/rand fails
		return 0
	}
	// Safe conversion: mask high bit to ensure positive int64
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- Intentionally safe conversion after masking
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx query.DBTX
	uow  *PostgresUoW

	// Lazy-initialized repositories
	certificateRepo shared.CertificateRepository
	transactionRepo shared.TransactionRepository
	outboxRepo      shared.OutboxRepository
	commandReads    shared.CommandReads
}

func (t *pgTx) DB() query.DBTX {
	return t.dbtx
}

func (t *pgTx) Certificates() shared.CertificateRepository {
	if t.certificateRepo == nil {
		t.certificateRepo = repository.NewCertificateRepository(t.uow.q, t.dbtx)
	}
	return t.certificateRepo
}

func (t *pgTx) Transactions() shared.TransactionRepository {
	if t.transactionRepo == nil {
		t.transactionRepo = repository.NewTransactionRepository(t.uow.q, t.dbtx)
	}
	return t.transactionRepo
}

func (t *pgTx) Outbox() shared.OutboxRepository {
	if t.outboxRepo == nil {
		t.outboxRepo = repository.NewOutboxRepository(t.uow.q, t.dbtx)
	}
	return t.outboxRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{
			uow:  t.uow,
			dbtx: t.dbtx,
		}
	}
	return t.commandReads
}

type commandReads struct {
	uow  *PostgresUoW
	dbtx query.DBTX

	// Lazy-initialized readstores
	certificateStore *readstore.CertificateReadStore
	transactionStore *readstore.TransactionReadStore
}

func (r *commandReads) certificates() *readstore.CertificateReadStore {
	if r.certificateStore == nil {
		r.certificateStore = readstore.NewCertificateReadStore(r.uow.q, r.dbtx)
	}
	return r.certificateStore
}

func (r *commandReads) CertificateByID(ctx context.Context, id uuid.UUID) (*shared.CertificateSnapshot, error) {
	view, err := r.certificates().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toCertificateSnapshot(view), nil
}

func (r *commandReads) CertificateByCode(ctx context.Context, code string) (*shared.CertificateSnapshot, error) {
	view, err := r.certificates().FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	return toCertificateSnapshot(view), nil
}

func (r *commandReads) CodeExists(ctx context.Context, code string) (bool, error) {
	return r.certificates().CodeExists(ctx, code)
}

func (r *commandReads) TransactionBySubmissionRef(ctx context.Context, certificateID uuid.UUID, submissionRef string) (*shared.TransactionSnapshot, error) {
	if r.transactionStore == nil {
		r.transactionStore = readstore.NewTransactionReadStore(r.uow.q, r.dbtx)
	}

	view, err := r.transactionStore.FindBySubmissionRef(ctx, certificateID, submissionRef)
	if err != nil {
		return nil, err
	}

	snapshot := &shared.TransactionSnapshot{
		ID:            view.ID,
		CertificateID: view.CertificateID,
		AmountUsed:    view.AmountUsed,
		BalanceAfter:  view.BalanceAfter,
		CreatedAt:     view.CreatedAt,
	}
	return snapshot, nil
}

func toCertificateSnapshot(view *queries.CertificateView) *shared.CertificateSnapshot {
	return &shared.CertificateSnapshot{
		ID:             view.ID,
		Code:           view.Code,
		OriginalAmount: view.OriginalAmount,
		CurrentBalance: view.CurrentBalance,
		Status:         certificate.Status(view.Status),
		Version:        view.Version,
	}
}
