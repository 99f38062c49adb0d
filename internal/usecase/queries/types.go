package queries

import (
	"time"

	"gift-ledger/internal/domain/money"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type CertificateView struct {
	ID             uuid.UUID    `json:"id"`
	Code           string       `json:"code"`
	OriginalAmount money.Amount `json:"original_amount"`
	CurrentBalance money.Amount `json:"current_balance"`
	Status         string       `json:"status"`
	RecipientEmail string       `json:"recipient_email"`
	RecipientName  string       `json:"recipient_name"`
	SenderName     string       `json:"sender_name"`
	Message        string       `json:"message"`
	DeliveryDate   *time.Time   `json:"delivery_date,omitempty"`
	DesignID       *string      `json:"design_id,omitempty"`
	Version        int64        `json:"version"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}

type TransactionView struct {
	ID                  uuid.UUID    `json:"id"`
	CertificateID       uuid.UUID    `json:"certificate_id"`
	AmountUsed          money.Amount `json:"amount_used"`
	BalanceAfter        money.Amount `json:"balance_after"`
	OrderReference      *string      `json:"order_reference,omitempty"`
	SubmissionReference *string      `json:"submission_reference,omitempty"`
	CreatedAt           time.Time    `json:"created_at"`
}

// ReconciliationView compares the stored balance with what the ledger implies.
type ReconciliationView struct {
	CertificateID    uuid.UUID    `json:"certificate_id"`
	OriginalAmount   money.Amount `json:"original_amount"`
	TotalRedeemed    money.Amount `json:"total_redeemed"`
	ExpectedBalance  money.Amount `json:"expected_balance"`
	CurrentBalance   money.Amount `json:"current_balance"`
	TransactionCount int64        `json:"transaction_count"`
	Balanced         bool         `json:"balanced"`
}
