package converter

import (
	"gift-ledger/internal/domain/certificate"
	"gift-ledger/internal/infra/query"
	"gift-ledger/internal/pkg/pgconv"
)

func CertificateToCreateParams(c *certificate.Certificate) query.CreateCertificateParams {
	return query.CreateCertificateParams{
		ID:             c.ID(),
		Code:           c.Code().String(),
		OriginalAmount: pgconv.NumericFromDecimal(c.OriginalAmount().Decimal()),
		Status:         c.Status().String(),
		RecipientEmail: c.RecipientEmail().Value(),
		RecipientName:  c.RecipientName().Value(),
		SenderName:     c.SenderName().Value(),
		Message:        c.Message(),
		DeliveryDate:   pgconv.DatePtrToPgtype(c.DeliveryDate()),
		DesignID:       pgconv.StringPtrToPgtype(c.DesignID()),
		CreatedAt:      pgconv.TimeToPgtype(c.CreatedAt()),
	}
}

func TransactionToInsertParams(t *certificate.Transaction) query.InsertTransactionParams {
	return query.InsertTransactionParams{
		ID:                  t.ID(),
		CertificateID:       t.CertificateID(),
		AmountUsed:          pgconv.NumericFromDecimal(t.AmountUsed().Decimal()),
		BalanceAfter:        pgconv.NumericFromDecimal(t.BalanceAfter().Decimal()),
		OrderReference:      pgconv.StringPtrToPgtype(t.OrderReference()),
		SubmissionReference: pgconv.StringPtrToPgtype(t.SubmissionReference()),
		CreatedAt:           pgconv.TimeToPgtype(t.CreatedAt()),
	}
}

// MetadataToUpdateParams leaves absent fields NULL so the statement keeps the stored value.
// Cleared optional fields travel as flags.
func MetadataToUpdateParams(m certificate.Metadata) query.UpdateCertificateMetadataParams {
	return query.UpdateCertificateMetadataParams{
		Code:              pgconv.StringPtrToPgtype(m.Code),
		RecipientEmail:    pgconv.StringPtrToPgtype(m.RecipientEmail),
		RecipientName:     pgconv.StringPtrToPgtype(m.RecipientName),
		SenderName:        pgconv.StringPtrToPgtype(m.SenderName),
		DeliveryDate:      pgconv.DatePtrToPgtype(m.DeliveryDate),
		Message:           pgconv.StringPtrToPgtype(m.Message),
		DesignID:          pgconv.StringPtrToPgtype(m.DesignID),
		ClearDeliveryDate: m.ClearDeliveryDate,
		ClearDesignID:     m.ClearDesignID,
	}
}
