package commands

import (
	"context"
	"encoding/json"
	"time"

	"gift-ledger/internal/domain/money"
	"gift-ledger/internal/usecase/shared"

	"github.com/google/uuid"
)

// Outbox kinds. The relay dispatches on these.
const (
	EventKindIssued           = "issued"
	EventKindBalanceExhausted = "balance_exhausted"

	eventTopicCertificates = "certificates"
)

type IssuedEvent struct {
	CertificateID uuid.UUID    `json:"certificateId"`
	Code          string       `json:"code"`
	Amount        money.Amount `json:"amount"`
	RecipientName string       `json:"recipientName"`
	DeliveryDate  *time.Time   `json:"deliveryDate,omitempty"`
}

type BalanceExhaustedEvent struct {
	CertificateID uuid.UUID `json:"certificateId"`
	Code          string    `json:"code"`
}

func enqueueEvent(ctx context.Context, tx shared.Tx, kind string, payload any, now time.Time) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return tx.Outbox().Enqueue(ctx, tx.DB(), kind, eventTopicCertificates, body, now)
}
