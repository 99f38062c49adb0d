package certificate

import (
	"strings"
	"time"

	"gift-ledger/internal/domain/money"
	"gift-ledger/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrInvalidAmountUsed = errs.New("transaction amount must be greater than zero")

// Transaction is an immutable record of one redemption. AmountUsed is the amount
// actually applied, which may be less than what the caller requested.
type Transaction struct {
	id                  uuid.UUID
	certificateID       uuid.UUID
	amountUsed          money.Amount
	balanceAfter        money.Amount
	orderReference      *string
	submissionReference *string
	createdAt           time.Time
}

func NewTransaction(certificateID uuid.UUID, amountUsed, balanceAfter money.Amount, orderRef, submissionRef *string, now time.Time) (*Transaction, error) {
	if !amountUsed.IsPositive() {
		return nil, ErrInvalidAmountUsed
	}
	return &Transaction{
		id:                  uuid.New(),
		certificateID:       certificateID,
		amountUsed:          amountUsed,
		balanceAfter:        balanceAfter,
		orderReference:      blankToNil(orderRef),
		submissionReference: blankToNil(submissionRef),
		createdAt:           now,
	}, nil
}

func blankToNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func (t *Transaction) ID() uuid.UUID                { return t.id }
func (t *Transaction) CertificateID() uuid.UUID     { return t.certificateID }
func (t *Transaction) AmountUsed() money.Amount     { return t.amountUsed }
func (t *Transaction) BalanceAfter() money.Amount   { return t.balanceAfter }
func (t *Transaction) OrderReference() *string      { return t.orderReference }
func (t *Transaction) SubmissionReference() *string { return t.submissionReference }
func (t *Transaction) CreatedAt() time.Time         { return t.createdAt }
