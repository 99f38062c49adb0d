package request

import (
	"gift-ledger/internal/domain/money"
	"gift-ledger/internal/usecase/commands"
)

type RedeemRequest struct {
	Code          string       `json:"code" binding:"required"`
	Amount        money.Amount `json:"amount"`
	OrderRef      *string      `json:"order_ref" binding:"omitempty,max=255"`
	SubmissionRef *string      `json:"submission_ref" binding:"omitempty,max=255"`
	FormID        *string      `json:"form_id" binding:"omitempty,max=255"`
}

// ToCommand prefers the body's submission reference over the header.
func (r *RedeemRequest) ToCommand(headerSubmissionRef string) commands.RedeemRequest {
	submissionRef := r.SubmissionRef
	if submissionRef == nil && headerSubmissionRef != "" {
		submissionRef = &headerSubmissionRef
	}
	var form *commands.FormContext
	if r.FormID != nil {
		form = &commands.FormContext{FormID: *r.FormID}
	}
	return commands.RedeemRequest{
		Code:            r.Code,
		RequestedAmount: r.Amount,
		OrderRef:        r.OrderRef,
		SubmissionRef:   submissionRef,
		Form:            form,
	}
}
