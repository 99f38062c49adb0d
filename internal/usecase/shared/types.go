package shared

import (
	"time"

	"gift-ledger/internal/domain/certificate"
	"gift-ledger/internal/domain/money"

	"github.com/google/uuid"
)

// Minimal snapshot for command read operations
type CertificateSnapshot struct {
	ID             uuid.UUID
	Code           string
	OriginalAmount money.Amount
	CurrentBalance money.Amount
	Status         certificate.Status
	Version        int64
}

type TransactionSnapshot struct {
	ID            uuid.UUID
	CertificateID uuid.UUID
	AmountUsed    money.Amount
	BalanceAfter  money.Amount
	CreatedAt     time.Time
}

type BalanceChange struct {
	AmountApplied money.Amount
	NewBalance    money.Amount
	Status        certificate.Status
}

type OutboxEvent struct {
	ID       uuid.UUID
	Kind     string
	Topic    string
	Payload  []byte
	Attempts int
}
