package certificate

import (
	"strings"
	"time"

	"gift-ledger/internal/domain/money"
	"gift-ledger/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidAmount     = errs.New("certificate amount must be greater than zero")
	ErrBalanceOutOfRange = errs.New("certificate balance must be between zero and the original amount")
	// ErrConflictingMetadata rejects a patch that both sets and clears the same field.
	ErrConflictingMetadata = errs.New("a field cannot be set and cleared together")
)

// Certificate is a stored-value record redeemable up to its balance via a unique code.
type Certificate struct {
	id             uuid.UUID
	code           Code
	originalAmount money.Amount
	currentBalance money.Amount
	status         Status
	recipientEmail Email
	recipientName  Name
	senderName     Name
	message        string
	deliveryDate   *time.Time
	designID       *string
	createdAt      time.Time
	updatedAt      time.Time
}

type IssueParams struct {
	Code           Code
	Amount         money.Amount
	RecipientEmail string
	RecipientName  string
	SenderName     string
	Message        string
	DeliveryDate   *time.Time
	DesignID       *string
}

// Validate checks every field except the code, which issuance may still have to generate.
func (p IssueParams) Validate() error {
	if !p.Amount.IsPositive() {
		return ErrInvalidAmount
	}
	if _, err := NewEmail(p.RecipientEmail); err != nil {
		return err
	}
	if _, err := NewName(p.RecipientName); err != nil {
		return err
	}
	_, err := NewName(p.SenderName)
	return err
}

// NewCertificate builds a freshly issued certificate: the balance equals the
// original amount and the status depends on the delivery date.
func NewCertificate(p IssueParams, now time.Time) (*Certificate, error) {
	if !p.Amount.IsPositive() {
		return nil, ErrInvalidAmount
	}
	if _, err := NewCode(p.Code.String()); err != nil {
		return nil, err
	}
	email, err := NewEmail(p.RecipientEmail)
	if err != nil {
		return nil, err
	}
	recipientName, err := NewName(p.RecipientName)
	if err != nil {
		return nil, err
	}
	senderName, err := NewName(p.SenderName)
	if err != nil {
		return nil, err
	}

	var deliveryDate *time.Time
	if p.DeliveryDate != nil {
		d := dateOnly(*p.DeliveryDate)
		deliveryDate = &d
	}

	return &Certificate{
		id:             uuid.New(),
		code:           p.Code,
		originalAmount: p.Amount,
		currentBalance: p.Amount,
		status:         InitialStatus(deliveryDate, now),
		recipientEmail: email,
		recipientName:  recipientName,
		senderName:     senderName,
		message:        strings.TrimSpace(p.Message),
		deliveryDate:   deliveryDate,
		designID:       p.DesignID,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

// InitialStatus is pending_delivery when delivery is scheduled for a later day, else active.
func InitialStatus(deliveryDate *time.Time, now time.Time) Status {
	if deliveryDate == nil {
		return StatusActive
	}
	if dateOnly(*deliveryDate).After(dateOnly(now)) {
		return StatusPendingDelivery
	}
	return StatusActive
}

// WithCode returns a copy carrying a different code. Used when issuance has to
// regenerate after a collision detected at insert time.
func (c *Certificate) WithCode(code Code) *Certificate {
	cp := *c
	cp.code = code
	return &cp
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (c *Certificate) ID() uuid.UUID                { return c.id }
func (c *Certificate) Code() Code                   { return c.code }
func (c *Certificate) OriginalAmount() money.Amount { return c.originalAmount }
func (c *Certificate) CurrentBalance() money.Amount { return c.currentBalance }
func (c *Certificate) Status() Status               { return c.status }
func (c *Certificate) RecipientEmail() Email        { return c.recipientEmail }
func (c *Certificate) RecipientName() Name          { return c.recipientName }
func (c *Certificate) SenderName() Name             { return c.senderName }
func (c *Certificate) Message() string              { return c.message }
func (c *Certificate) DeliveryDate() *time.Time     { return c.deliveryDate }
func (c *Certificate) DesignID() *string            { return c.designID }
func (c *Certificate) CreatedAt() time.Time         { return c.createdAt }
func (c *Certificate) UpdatedAt() time.Time         { return c.updatedAt }

// Metadata holds the admin-editable fields. Nil means "leave unchanged";
// the Clear flags remove the optional delivery date and design.
type Metadata struct {
	Code              *string
	RecipientEmail    *string
	RecipientName     *string
	SenderName        *string
	Message           *string
	DeliveryDate      *time.Time
	DesignID          *string
	ClearDeliveryDate bool
	ClearDesignID     bool
}

// Validate normalises the provided fields in place.
func (m *Metadata) Validate() error {
	if m.Code != nil {
		code, err := NewCode(*m.Code)
		if err != nil {
			return err
		}
		s := code.String()
		m.Code = &s
	}
	if m.RecipientEmail != nil {
		email, err := NewEmail(*m.RecipientEmail)
		if err != nil {
			return err
		}
		v := email.Value()
		m.RecipientEmail = &v
	}
	for _, name := range []**string{&m.RecipientName, &m.SenderName} {
		if *name == nil {
			continue
		}
		n, err := NewName(**name)
		if err != nil {
			return err
		}
		v := n.Value()
		*name = &v
	}
	if m.DeliveryDate != nil {
		d := dateOnly(*m.DeliveryDate)
		m.DeliveryDate = &d
	}
	if (m.ClearDeliveryDate && m.DeliveryDate != nil) || (m.ClearDesignID && m.DesignID != nil) {
		return ErrConflictingMetadata
	}
	return nil
}

func (m Metadata) IsEmpty() bool {
	return m.Code == nil && m.RecipientEmail == nil && m.RecipientName == nil &&
		m.SenderName == nil && m.Message == nil && m.DeliveryDate == nil && m.DesignID == nil &&
		!m.ClearDeliveryDate && !m.ClearDesignID
}

// CheckBalance enforces 0 <= balance <= original.
func CheckBalance(original, balance money.Amount) error {
	if balance.IsNegative() || balance.GreaterThan(original) {
		return ErrBalanceOutOfRange
	}
	return nil
}
