package response

import (
	"gift-ledger/internal/usecase/commands"
	"gift-ledger/internal/usecase/queries"
)

const dateLayout = "2006-01-02"

// Amounts are shown at two decimals; the *_exact fields carry the stored value.
type CertificateResponse struct {
	ID                  string  `json:"id"`
	Code                string  `json:"code"`
	OriginalAmount      string  `json:"original_amount"`
	OriginalAmountExact string  `json:"original_amount_exact"`
	CurrentBalance      string  `json:"current_balance"`
	CurrentBalanceExact string  `json:"current_balance_exact"`
	Status              string  `json:"status"`
	RecipientEmail      string  `json:"recipient_email"`
	RecipientName       string  `json:"recipient_name"`
	SenderName          string  `json:"sender_name"`
	Message             string  `json:"message"`
	DeliveryDate        *string `json:"delivery_date,omitempty"`
	DesignID            *string `json:"design_id,omitempty"`
	CreatedAt           int64   `json:"created_at"`
	UpdatedAt           int64   `json:"updated_at"`
}

func FromCertificateView(v *queries.CertificateView) *CertificateResponse {
	res := &CertificateResponse{
		ID:                  v.ID.String(),
		Code:                v.Code,
		OriginalAmount:      v.OriginalAmount.Display(),
		OriginalAmountExact: v.OriginalAmount.String(),
		CurrentBalance:      v.CurrentBalance.Display(),
		CurrentBalanceExact: v.CurrentBalance.String(),
		Status:              v.Status,
		RecipientEmail:      v.RecipientEmail,
		RecipientName:       v.RecipientName,
		SenderName:          v.SenderName,
		Message:             v.Message,
		DesignID:            v.DesignID,
		CreatedAt:           v.CreatedAt.Unix(),
		UpdatedAt:           v.UpdatedAt.Unix(),
	}
	if v.DeliveryDate != nil {
		d := v.DeliveryDate.Format(dateLayout)
		res.DeliveryDate = &d
	}
	return res
}

func FromCertificateList(items []*queries.CertificateView) []*CertificateResponse {
	res := make([]*CertificateResponse, len(items))
	for i, it := range items {
		res[i] = FromCertificateView(it)
	}
	return res
}

type CertificateListResponse struct {
	Items      []*CertificateResponse `json:"items"`
	NextCursor *string                `json:"next_cursor,omitempty"`
}

// BalanceResponse is the public lookup view; it leaves out recipient details.
type BalanceResponse struct {
	Code           string `json:"code"`
	OriginalAmount string `json:"original_amount"`
	CurrentBalance string `json:"current_balance"`
	Status         string `json:"status"`
}

func FromCertificateBalance(v *queries.CertificateView) *BalanceResponse {
	return &BalanceResponse{
		Code:           v.Code,
		OriginalAmount: v.OriginalAmount.Display(),
		CurrentBalance: v.CurrentBalance.Display(),
		Status:         v.Status,
	}
}

type IssueResponse struct {
	ID     string `json:"id"`
	Code   string `json:"code"`
	Status string `json:"status"`
}

func FromIssueResult(r *commands.IssueResult) *IssueResponse {
	return &IssueResponse{
		ID:     r.CertificateID.String(),
		Code:   r.Code,
		Status: r.Status.String(),
	}
}

type TransactionResponse struct {
	ID                  string  `json:"id"`
	AmountUsed          string  `json:"amount_used"`
	AmountUsedExact     string  `json:"amount_used_exact"`
	BalanceAfter        string  `json:"balance_after"`
	OrderReference      *string `json:"order_reference,omitempty"`
	SubmissionReference *string `json:"submission_reference,omitempty"`
	CreatedAt           int64   `json:"created_at"`
}

func FromTransactionList(items []*queries.TransactionView) []*TransactionResponse {
	res := make([]*TransactionResponse, len(items))
	for i, it := range items {
		res[i] = &TransactionResponse{
			ID:                  it.ID.String(),
			AmountUsed:          it.AmountUsed.Display(),
			AmountUsedExact:     it.AmountUsed.String(),
			BalanceAfter:        it.BalanceAfter.Display(),
			OrderReference:      it.OrderReference,
			SubmissionReference: it.SubmissionReference,
			CreatedAt:           it.CreatedAt.Unix(),
		}
	}
	return res
}

type ReconciliationResponse struct {
	CertificateID    string `json:"certificate_id"`
	OriginalAmount   string `json:"original_amount"`
	TotalRedeemed    string `json:"total_redeemed"`
	ExpectedBalance  string `json:"expected_balance"`
	CurrentBalance   string `json:"current_balance"`
	TransactionCount int64  `json:"transaction_count"`
	Balanced         bool   `json:"balanced"`
}

func FromReconciliationView(v *queries.ReconciliationView) *ReconciliationResponse {
	return &ReconciliationResponse{
		CertificateID:    v.CertificateID.String(),
		OriginalAmount:   v.OriginalAmount.String(),
		TotalRedeemed:    v.TotalRedeemed.String(),
		ExpectedBalance:  v.ExpectedBalance.String(),
		CurrentBalance:   v.CurrentBalance.String(),
		TransactionCount: v.TransactionCount,
		Balanced:         v.Balanced,
	}
}

type RedemptionResponse struct {
	CertificateID      string `json:"certificate_id"`
	TransactionID      string `json:"transaction_id"`
	AmountApplied      string `json:"amount_applied"`
	AmountAppliedExact string `json:"amount_applied_exact"`
	NewBalance         string `json:"new_balance"`
	NewBalanceExact    string `json:"new_balance_exact"`
	Status             string `json:"status"`
	Replayed           bool   `json:"replayed"`
}

func FromRedemptionResult(r *commands.RedemptionResult) *RedemptionResponse {
	return &RedemptionResponse{
		CertificateID:      r.CertificateID.String(),
		TransactionID:      r.TransactionID.String(),
		AmountApplied:      r.AmountApplied.Display(),
		AmountAppliedExact: r.AmountApplied.String(),
		NewBalance:         r.NewBalance.Display(),
		NewBalanceExact:    r.NewBalance.String(),
		Status:             r.Status.String(),
		Replayed:           r.Replayed,
	}
}

// SkippedResponse acknowledges a form submission that carried no certificate code.
type SkippedResponse struct {
	Status string `json:"status"`
}
