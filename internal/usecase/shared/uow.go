package shared

import (
	"context"
	"time"

	"gift-ledger/internal/domain/certificate"
	"gift-ledger/internal/domain/money"
	"gift-ledger/internal/infra/query"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Certificates() CertificateRepository
	Transactions() TransactionRepository
	Outbox() OutboxRepository
	Reads() CommandReads
	DB() query.DBTX
}

type CommandReads interface {
	CertificateByID(ctx context.Context, id uuid.UUID) (*CertificateSnapshot, error)
	CertificateByCode(ctx context.Context, code string) (*CertificateSnapshot, error)
	CodeExists(ctx context.Context, code string) (bool, error)
	TransactionBySubmissionRef(ctx context.Context, certificateID uuid.UUID, submissionRef string) (*TransactionSnapshot, error)
}

type CertificateRepository interface {
	Create(ctx context.Context, tx query.DBTX, cert *certificate.Certificate) (uuid.UUID, error)
	// UpdateBalance makes one compare-and-swap attempt; a lost race is KindConflict.
	UpdateBalance(ctx context.Context, tx query.DBTX, id uuid.UUID, delta money.Amount) (*BalanceChange, error)
	UpdateStatus(ctx context.Context, tx query.DBTX, id uuid.UUID, status certificate.Status) error
	UpdateMetadata(ctx context.Context, tx query.DBTX, id uuid.UUID, metadata certificate.Metadata) error
	MarkDelivered(ctx context.Context, tx query.DBTX, id uuid.UUID) (bool, error)
	Delete(ctx context.Context, tx query.DBTX, id uuid.UUID) error
}

type TransactionRepository interface {
	Record(ctx context.Context, tx query.DBTX, t *certificate.Transaction) (uuid.UUID, error)
}

type OutboxRepository interface {
	Enqueue(ctx context.Context, tx query.DBTX, kind, topic string, payload []byte, runAt time.Time) error
	ClaimDue(ctx context.Context, tx query.DBTX, now time.Time, limit int) ([]OutboxEvent, error)
	MarkSent(ctx context.Context, tx query.DBTX, id uuid.UUID) error
	MarkFailed(ctx context.Context, tx query.DBTX, id uuid.UUID, lastError string, nextRunAt time.Time, maxAttempts int) error
}
