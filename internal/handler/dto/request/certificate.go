package request

import (
	"time"

	"gift-ledger/internal/domain/certificate"
	"gift-ledger/internal/domain/money"
	"gift-ledger/internal/pkg/errs"
	"gift-ledger/internal/pkg/patch"
	"gift-ledger/internal/usecase/commands"
)

const dateLayout = "2006-01-02"

const maxDesignIDLength = 64

var (
	ErrInvalidDate     = errs.New("dates must use the YYYY-MM-DD format")
	ErrDesignIDTooLong = errs.New("design_id must be at most 64 characters")
)

type IssueCertificateRequest struct {
	Code           *string      `json:"code" binding:"omitempty,max=32"`
	Amount         money.Amount `json:"amount"`
	RecipientEmail string       `json:"recipient_email" binding:"required,max=320"`
	RecipientName  string       `json:"recipient_name" binding:"required,max=255"`
	SenderName     string       `json:"sender_name" binding:"required,max=255"`
	Message        *string      `json:"message" binding:"omitempty,max=2000"`
	DeliveryDate   *string      `json:"delivery_date"`
	DesignID       *string      `json:"design_id" binding:"omitempty,max=64"`
}

func (r *IssueCertificateRequest) ToCommand() (commands.IssueRequest, error) {
	deliveryDate, err := parseDate(r.DeliveryDate)
	if err != nil {
		return commands.IssueRequest{}, err
	}
	return commands.IssueRequest{
		Code:           r.Code,
		Amount:         r.Amount,
		RecipientEmail: r.RecipientEmail,
		RecipientName:  r.RecipientName,
		SenderName:     r.SenderName,
		Message:        patch.Coalesce(r.Message, ""),
		DeliveryDate:   deliveryDate,
		DesignID:       r.DesignID,
	}, nil
}

// UpdateMetadataRequest patches admin-editable fields. delivery_date and
// design_id accept an explicit null to remove the stored value.
type UpdateMetadataRequest struct {
	Code           *string             `json:"code" binding:"omitempty,max=32"`
	RecipientEmail *string             `json:"recipient_email" binding:"omitempty,max=320"`
	RecipientName  *string             `json:"recipient_name" binding:"omitempty,max=255"`
	SenderName     *string             `json:"sender_name" binding:"omitempty,max=255"`
	Message        *string             `json:"message" binding:"omitempty,max=2000"`
	DeliveryDate   patch.Field[string] `json:"delivery_date"`
	DesignID       patch.Field[string] `json:"design_id"`
}

func (r *UpdateMetadataRequest) ToDomain() (certificate.Metadata, error) {
	deliveryDate, err := parseDate(r.DeliveryDate.Ptr())
	if err != nil {
		return certificate.Metadata{}, err
	}
	if len(r.DesignID.Value) > maxDesignIDLength {
		return certificate.Metadata{}, ErrDesignIDTooLong
	}
	return certificate.Metadata{
		Code:              r.Code,
		RecipientEmail:    r.RecipientEmail,
		RecipientName:     r.RecipientName,
		SenderName:        r.SenderName,
		Message:           r.Message,
		DeliveryDate:      deliveryDate,
		DesignID:          r.DesignID.Ptr(),
		ClearDeliveryDate: r.DeliveryDate.Cleared(),
		ClearDesignID:     r.DesignID.Cleared(),
	}, nil
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type ListCertificatesQuery struct {
	Status *string `form:"status"`
	After  string  `form:"after"`
	Limit  *int    `form:"limit" binding:"omitempty,min=1"`
}

type DueForDeliveryQuery struct {
	AsOf  *string `form:"as_of"`
	Limit *int    `form:"limit" binding:"omitempty,min=1"`
}

// AsOfDate defaults to today when no date is given.
func (q *DueForDeliveryQuery) AsOfDate(now time.Time) (time.Time, error) {
	d, err := parseDate(q.AsOf)
	if err != nil {
		return time.Time{}, err
	}
	return patch.Coalesce(d, now), nil
}

func parseDate(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, *s)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidDate)
	}
	return &t, nil
}
