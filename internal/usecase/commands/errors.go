package commands

import (
	"gift-ledger/internal/infra"
	"gift-ledger/internal/pkg/errs"
)

var (
	ErrValidation        = errs.New("validation failed")
	ErrInvalidCodeFormat = errs.New("invalid certificate code format")
	ErrNotFound          = errs.New("certificate not found")
	ErrInactive          = errs.New("certificate is not active")
	ErrZeroBalance       = errs.New("certificate has no remaining balance")
	ErrFormNotAllowed    = errs.New("form is not permitted to redeem certificates")
	ErrConflict          = errs.New("certificate was modified concurrently, please retry")
	ErrStorage           = errs.New("storage temporarily unavailable")
	ErrInvalidTransition = errs.New("invalid certificate status transition")
	ErrDuplicateCode     = errs.New("certificate code already exists")
)

var domainErrors = []error{
	ErrValidation,
	ErrNotFound,
	ErrInactive,
	ErrZeroBalance,
	ErrFormNotAllowed,
	ErrConflict,
	ErrInvalidTransition,
}

func validation(err error) error {
	return errs.Mark(err, ErrValidation)
}

// classify maps repository errors onto the command taxonomy. Anything that is
// not already a command error is a storage fault; the cause stays in the chain.
func classify(err error) error {
	if err == nil {
		return nil
	}
	for _, target := range domainErrors {
		if errs.Is(err, target) {
			return err
		}
	}
	switch {
	case infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(err, ErrNotFound)
	case infra.IsKind(err, infra.KindConflict):
		return errs.Mark(err, ErrConflict)
	default:
		return errs.Mark(err, ErrStorage)
	}
}
