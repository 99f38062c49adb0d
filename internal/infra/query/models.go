package query

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type Certificates struct {
	ID             uuid.UUID
	Code           string
	OriginalAmount pgtype.Numeric
	CurrentBalance pgtype.Numeric
	Status         string
	RecipientEmail string
	RecipientName  string
	SenderName     string
	Message        string
	DeliveryDate   pgtype.Date
	DesignID       pgtype.Text
	Version        int64
	CreatedAt      pgtype.Timestamptz
	UpdatedAt      pgtype.Timestamptz
}

type Transactions struct {
	ID                  uuid.UUID
	CertificateID       uuid.UUID
	AmountUsed          pgtype.Numeric
	BalanceAfter        pgtype.Numeric
	OrderReference      pgtype.Text
	SubmissionReference pgtype.Text
	CreatedAt           pgtype.Timestamptz
}

type OutboxEvents struct {
	ID        uuid.UUID
	Kind      string
	Topic     string
	Payload   []byte
	RunAt     pgtype.Timestamptz
	Attempts  int32
	Status    string
	LastError pgtype.Text
	CreatedAt pgtype.Timestamptz
	UpdatedAt pgtype.Timestamptz
}
