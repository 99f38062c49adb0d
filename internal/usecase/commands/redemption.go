package commands

import (
	"context"
	"log/slog"
	"strings"

	"gift-ledger/internal/domain/certificate"
	"gift-ledger/internal/domain/money"
	"gift-ledger/internal/infra"
	"gift-ledger/internal/pkg/clock"
	"gift-ledger/internal/pkg/errs"
	"gift-ledger/internal/usecase/shared"

	"github.com/google/uuid"
)

const DefaultRedeemMaxAttempts = 3

type RedeemRequest struct {
	Code            string
	RequestedAmount money.Amount
	OrderRef        *string
	SubmissionRef   *string
	Form            *FormContext
}

type RedemptionResult struct {
	CertificateID uuid.UUID
	TransactionID uuid.UUID
	AmountApplied money.Amount
	NewBalance    money.Amount
	Status        certificate.Status
	// Replayed is set when the submission reference was already recorded and
	// the prior outcome is returned without touching the balance.
	Replayed bool
}

type RedemptionCommands interface {
	Redeem(ctx context.Context, req RedeemRequest) (*RedemptionResult, error)
}

type redemptionUseCaseImpl struct {
	uow         shared.UnitOfWork
	clock       clock.Clock
	policy      RedemptionPolicy
	maxAttempts int
}

func NewRedemptionUseCase(uow shared.UnitOfWork, clk clock.Clock, policy RedemptionPolicy, maxAttempts int) RedemptionCommands {
	if maxAttempts <= 0 {
		maxAttempts = DefaultRedeemMaxAttempts
	}
	return &redemptionUseCaseImpl{
		uow:         uow,
		clock:       clk,
		policy:      policy,
		maxAttempts: maxAttempts,
	}
}

func (uc *redemptionUseCaseImpl) Redeem(ctx context.Context, req RedeemRequest) (*RedemptionResult, error) {
	code, err := certificate.NewCode(req.Code)
	if err != nil {
		return nil, validation(errs.Mark(err, ErrInvalidCodeFormat))
	}
	if !req.RequestedAmount.IsPositive() {
		return nil, validation(errs.New("requested amount must be greater than zero"))
	}
	submissionRef := trimmedOrNil(req.SubmissionRef)

	for attempt := 1; ; attempt++ {
		result, err := uc.redeemOnce(ctx, code, req, submissionRef)
		if err == nil {
			uc.logResult(result)
			return result, nil
		}

		err = classify(err)
		if !errs.Is(err, ErrConflict) {
			return nil, err
		}
		if attempt >= uc.maxAttempts {
			slog.Warn("redemption conflict persisted, giving up",
				"code", code.String(),
				"attempts", attempt)
			return nil, err
		}
		slog.Debug("redemption conflict, retrying", "code", code.String(), "attempt", attempt)
	}
}

// redeemOnce runs every check and the balance update inside one unit of work so
// a rolled-back attempt leaves nothing behind.
func (uc *redemptionUseCaseImpl) redeemOnce(ctx context.Context, code certificate.Code, req RedeemRequest, submissionRef *string) (*RedemptionResult, error) {
	var result *RedemptionResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().CertificateByCode(ctx, code.String())
		if err != nil {
			return classify(err)
		}

		if submissionRef != nil {
			prior, err := tx.Reads().TransactionBySubmissionRef(ctx, snap.ID, *submissionRef)
			if err == nil {
				result = &RedemptionResult{
					CertificateID: snap.ID,
					TransactionID: prior.ID,
					AmountApplied: prior.AmountUsed,
					NewBalance:    prior.BalanceAfter,
					Status:        snap.Status,
					Replayed:      true,
				}
				return nil
			}
			if !infra.IsKind(err, infra.KindNotFound) {
				return classify(err)
			}
		}

		if !snap.Status.IsRedeemable() {
			return ErrInactive
		}
		if !snap.CurrentBalance.IsPositive() {
			return ErrZeroBalance
		}
		if !uc.policy.Allow(ctx, req.Form) {
			return ErrFormNotAllowed
		}

		change, err := tx.Certificates().UpdateBalance(ctx, tx.DB(), snap.ID, req.RequestedAmount)
		if err != nil {
			return classify(err)
		}

		now := uc.clock.Now()
		txn, err := certificate.NewTransaction(snap.ID, change.AmountApplied, change.NewBalance, req.OrderRef, submissionRef, now)
		if err != nil {
			return err
		}
		txID, err := tx.Transactions().Record(ctx, tx.DB(), txn)
		if err != nil {
			// Another request recorded the same submission first; the retry replays it.
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Mark(err, ErrConflict)
			}
			return classify(err)
		}

		if change.NewBalance.IsZero() {
			event := BalanceExhaustedEvent{CertificateID: snap.ID, Code: snap.Code}
			if err := enqueueEvent(ctx, tx, EventKindBalanceExhausted, event, now); err != nil {
				return classify(err)
			}
		}

		result = &RedemptionResult{
			CertificateID: snap.ID,
			TransactionID: txID,
			AmountApplied: change.AmountApplied,
			NewBalance:    change.NewBalance,
			Status:        change.Status,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (uc *redemptionUseCaseImpl) logResult(r *RedemptionResult) {
	slog.Info("certificate redeemed",
		"certificate_id", r.CertificateID.String(),
		"transaction_id", r.TransactionID.String(),
		"amount_applied", r.AmountApplied.String(),
		"new_balance", r.NewBalance.String(),
		"status", r.Status.String(),
		"replayed", r.Replayed)
}

func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
