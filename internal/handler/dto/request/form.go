package request

import (
	"encoding/json"
	"strings"

	"gift-ledger/internal/domain/money"
	"gift-ledger/internal/pkg/config"
	"gift-ledger/internal/usecase/commands"
)

// FormSubmissionRequest is the payload a form builder posts after each submission.
// Field values arrive loosely typed, so they are kept raw until mapped.
type FormSubmissionRequest struct {
	FormID       string                     `json:"form_id" binding:"required"`
	SubmissionID string                     `json:"submission_id" binding:"required"`
	Fields       map[string]json.RawMessage `json:"fields" binding:"required"`
}

// ToCommand maps the configured fields onto a redemption. ok is false when the
// submission carries no certificate code, which is the common case.
func (r *FormSubmissionRequest) ToCommand(cfg config.FormConfig) (req commands.RedeemRequest, ok bool) {
	code := fieldText(r.Fields[cfg.CodeField])
	if code == "" {
		return commands.RedeemRequest{}, false
	}

	submissionRef := r.SubmissionID
	req = commands.RedeemRequest{
		Code:            code,
		RequestedAmount: money.Parse(fieldText(r.Fields[cfg.TotalField])),
		SubmissionRef:   &submissionRef,
		Form:            &commands.FormContext{FormID: r.FormID},
	}
	if order := fieldText(r.Fields[cfg.OrderField]); order != "" {
		req.OrderRef = &order
	}
	return req, true
}

// fieldText renders a JSON string or number literal as text. Numbers keep their
// literal digits so no float conversion touches money.
func fieldText(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return strings.TrimSpace(s)
	}
	text := strings.TrimSpace(string(raw))
	if text == "null" {
		return ""
	}
	return text
}
