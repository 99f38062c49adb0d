package commands

import (
	"context"
	"log/slog"

	"gift-ledger/internal/domain/certificate"
	"gift-ledger/internal/infra"
	"gift-ledger/internal/pkg/errs"
	"gift-ledger/internal/usecase/shared"

	"github.com/google/uuid"
)

var errNothingToUpdate = errs.New("no fields to update")

// AdminCommands are the back-office mutations. They are last-write-wins; each
// bumps the row version so an in-flight redemption re-reads before deducting.
type AdminCommands interface {
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
	UpdateMetadata(ctx context.Context, id uuid.UUID, metadata certificate.Metadata) error
	MarkDelivered(ctx context.Context, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type adminUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewAdminUseCase(uow shared.UnitOfWork) AdminCommands {
	return &adminUseCaseImpl{uow: uow}
}

func (uc *adminUseCaseImpl) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	parsed, err := certificate.ParseStatus(status)
	if err != nil {
		return validation(err)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Certificates().UpdateStatus(ctx, tx.DB(), id, parsed)
	})
	if err != nil {
		return classify(err)
	}
	slog.Info("certificate status updated", "certificate_id", id.String(), "status", parsed.String())
	return nil
}

func (uc *adminUseCaseImpl) UpdateMetadata(ctx context.Context, id uuid.UUID, metadata certificate.Metadata) error {
	if metadata.IsEmpty() {
		return validation(errNothingToUpdate)
	}
	if err := metadata.Validate(); err != nil {
		return validation(err)
	}

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Certificates().UpdateMetadata(ctx, tx.DB(), id, metadata)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return validation(errs.Mark(err, ErrDuplicateCode))
		}
		return classify(err)
	}
	return nil
}

func (uc *adminUseCaseImpl) MarkDelivered(ctx context.Context, id uuid.UUID) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Reads().CertificateByID(ctx, id); err != nil {
			return err
		}
		ok, err := tx.Certificates().MarkDelivered(ctx, tx.DB(), id)
		if err != nil {
			return err
		}
		if !ok {
			return ErrInvalidTransition
		}
		return nil
	})
	return classify(err)
}

// Delete removes the certificate and, through the foreign key, its ledger.
func (uc *adminUseCaseImpl) Delete(ctx context.Context, id uuid.UUID) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Certificates().Delete(ctx, tx.DB(), id)
	})
	if err != nil {
		return classify(err)
	}
	slog.Info("certificate deleted", "certificate_id", id.String())
	return nil
}
