//go:build unit || e2e

package builder

import (
	"time"

	"gift-ledger/internal/domain/certificate"
	"gift-ledger/internal/domain/money"
	"gift-ledger/internal/handler/dto/request"
	"gift-ledger/internal/infra/query"
	"gift-ledger/internal/pkg/pgconv"
	"gift-ledger/internal/usecase/queries"

	"github.com/google/uuid"
)

type CertificateBuilder struct {
	ID             uuid.UUID
	Code           string
	Amount         money.Amount
	Balance        *money.Amount
	Status         certificate.Status
	RecipientEmail string
	RecipientName  string
	SenderName     string
	Message        string
	DeliveryDate   *time.Time
	DesignID       *string
	Version        int64
	CreatedAt      time.Time
}

func NewCertificateBuilder() *CertificateBuilder {
	return &CertificateBuilder{
		ID:             uuid.New(),
		Code:           "GCABCD2345",
		Amount:         money.FromInt(50),
		Status:         certificate.StatusActive,
		RecipientEmail: "recipient@example.com",
		RecipientName:  "Robin Recipient",
		SenderName:     "Sam Sender",
		Message:        "Happy birthday!",
		CreatedAt:      time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC),
	}
}

func (b *CertificateBuilder) With(mutate func(*CertificateBuilder)) *CertificateBuilder {
	mutate(b)
	return b
}

func (b *CertificateBuilder) WithCode(code string) *CertificateBuilder {
	b.Code = code
	return b
}

func (b *CertificateBuilder) WithAmount(amount string) *CertificateBuilder {
	b.Amount = money.MustFromString(amount)
	return b
}

func (b *CertificateBuilder) WithBalance(balance string) *CertificateBuilder {
	v := money.MustFromString(balance)
	b.Balance = &v
	return b
}

func (b *CertificateBuilder) WithStatus(status certificate.Status) *CertificateBuilder {
	b.Status = status
	return b
}

func (b *CertificateBuilder) WithDeliveryDate(d time.Time) *CertificateBuilder {
	b.DeliveryDate = &d
	return b
}

func (b *CertificateBuilder) balance() money.Amount {
	if b.Balance != nil {
		return *b.Balance
	}
	return b.Amount
}

func (b *CertificateBuilder) IssueParams() certificate.IssueParams {
	return certificate.IssueParams{
		Code:           certificate.Code(b.Code),
		Amount:         b.Amount,
		RecipientEmail: b.RecipientEmail,
		RecipientName:  b.RecipientName,
		SenderName:     b.SenderName,
		Message:        b.Message,
		DeliveryDate:   b.DeliveryDate,
		DesignID:       b.DesignID,
	}
}

// Build methods
func (b *CertificateBuilder) BuildDomain() (*certificate.Certificate, error) {
	return certificate.NewCertificate(b.IssueParams(), b.CreatedAt)
}

func (b *CertificateBuilder) BuildInfra() query.Certificates {
	return query.Certificates{
		ID:             b.ID,
		Code:           b.Code,
		OriginalAmount: pgconv.NumericFromDecimal(b.Amount.Decimal()),
		CurrentBalance: pgconv.NumericFromDecimal(b.balance().Decimal()),
		Status:         b.Status.String(),
		RecipientEmail: b.RecipientEmail,
		RecipientName:  b.RecipientName,
		SenderName:     b.SenderName,
		Message:        b.Message,
		DeliveryDate:   pgconv.DatePtrToPgtype(b.DeliveryDate),
		DesignID:       pgconv.StringPtrToPgtype(b.DesignID),
		Version:        b.Version,
		CreatedAt:      pgconv.TimeToPgtype(b.CreatedAt),
		UpdatedAt:      pgconv.TimeToPgtype(b.CreatedAt),
	}
}

func (b *CertificateBuilder) BuildView() *queries.CertificateView {
	return &queries.CertificateView{
		ID:             b.ID,
		Code:           b.Code,
		OriginalAmount: b.Amount,
		CurrentBalance: b.balance(),
		Status:         b.Status.String(),
		RecipientEmail: b.RecipientEmail,
		RecipientName:  b.RecipientName,
		SenderName:     b.SenderName,
		Message:        b.Message,
		DeliveryDate:   b.DeliveryDate,
		DesignID:       b.DesignID,
		Version:        b.Version,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.CreatedAt,
	}
}

func (b *CertificateBuilder) BuildIssueRequestDTO() request.IssueCertificateRequest {
	code := b.Code
	msg := b.Message
	return request.IssueCertificateRequest{
		Code:           &code,
		Amount:         b.Amount,
		RecipientEmail: b.RecipientEmail,
		RecipientName:  b.RecipientName,
		SenderName:     b.SenderName,
		Message:        &msg,
	}
}
