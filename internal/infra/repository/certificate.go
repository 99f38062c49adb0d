package repository

import (
	"context"
	"time"

	"gift-ledger/internal/domain/certificate"
	"gift-ledger/internal/domain/money"
	"gift-ledger/internal/infra"
	"gift-ledger/internal/infra/query"
	"gift-ledger/internal/infra/repository/converter"
	"gift-ledger/internal/pkg/pgconv"
	"gift-ledger/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type CertificateWriteQueries interface {
	CreateCertificate(ctx context.Context, db query.DBTX, arg query.CreateCertificateParams) (uuid.UUID, error)
	GetCertificateByID(ctx context.Context, db query.DBTX, id uuid.UUID) (query.Certificates, error)
	CompareAndSwapBalance(ctx context.Context, db query.DBTX, arg query.CompareAndSwapBalanceParams) (query.CompareAndSwapBalanceRow, error)
	UpdateCertificateStatus(ctx context.Context, db query.DBTX, arg query.UpdateCertificateStatusParams) (int64, error)
	UpdateCertificateMetadata(ctx context.Context, db query.DBTX, arg query.UpdateCertificateMetadataParams) (int64, error)
	MarkCertificateDelivered(ctx context.Context, db query.DBTX, id uuid.UUID, updatedAt pgtype.Timestamptz) (int64, error)
	DeleteCertificate(ctx context.Context, db query.DBTX, id uuid.UUID) (int64, error)
}

type CertificateRepository struct {
	queries CertificateWriteQueries
	db      query.DBTX
}

func NewCertificateRepository(queries CertificateWriteQueries, db query.DBTX) *CertificateRepository {
	return &CertificateRepository{
		queries: queries,
		db:      db,
	}
}

func (r *CertificateRepository) Create(ctx context.Context, tx query.DBTX, cert *certificate.Certificate) (uuid.UUID, error) {
	id, err := r.queries.CreateCertificate(ctx, tx, converter.CertificateToCreateParams(cert))
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create certificate", err)
	}
	return id, nil
}

// UpdateBalance deducts min(delta, balance) in one compare-and-swap against the
// version just read. Losing the race, or finding the certificate no longer
// redeemable or already empty, reports KindConflict so the caller can re-read.
func (r *CertificateRepository) UpdateBalance(ctx context.Context, tx query.DBTX, id uuid.UUID, delta money.Amount) (*shared.BalanceChange, error) {
	if !delta.IsPositive() {
		return nil, infra.WrapRepoErr("balance delta must be positive", money.ErrInvalidAmount, infra.KindDBFailure)
	}

	row, err := r.queries.GetCertificateByID(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("certificate not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to read certificate balance", err)
	}

	balanceDec, err := pgconv.DecimalFromNumeric(row.CurrentBalance)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode certificate balance", err)
	}
	balance := money.New(balanceDec)

	if !certificate.Status(row.Status).IsRedeemable() || !balance.IsPositive() {
		return nil, infra.WrapRepoErr("certificate no longer redeemable", nil, infra.KindConflict)
	}

	applied := money.Min(delta, balance)
	updated, err := r.queries.CompareAndSwapBalance(ctx, tx, query.CompareAndSwapBalanceParams{
		ID:              id,
		ExpectedVersion: row.Version,
		Applied:         pgconv.NumericFromDecimal(applied.Decimal()),
		UpdatedAt:       pgconv.TimeToPgtype(time.Now()),
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("certificate changed concurrently", err, infra.KindConflict)
		}
		return nil, infra.WrapRepoErr("failed to update certificate balance", err)
	}

	newBalanceDec, err := pgconv.DecimalFromNumeric(updated.CurrentBalance)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode updated balance", err)
	}

	return &shared.BalanceChange{
		AmountApplied: applied,
		NewBalance:    money.New(newBalanceDec),
		Status:        certificate.Status(updated.Status),
	}, nil
}

func (r *CertificateRepository) UpdateStatus(ctx context.Context, tx query.DBTX, id uuid.UUID, status certificate.Status) error {
	n, err := r.queries.UpdateCertificateStatus(ctx, tx, query.UpdateCertificateStatusParams{
		ID:        id,
		Status:    status.String(),
		UpdatedAt: pgconv.TimeToPgtype(time.Now()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update certificate status", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("certificate not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *CertificateRepository) UpdateMetadata(ctx context.Context, tx query.DBTX, id uuid.UUID, metadata certificate.Metadata) error {
	params := converter.MetadataToUpdateParams(metadata)
	params.ID = id
	params.UpdatedAt = pgconv.TimeToPgtype(time.Now())

	n, err := r.queries.UpdateCertificateMetadata(ctx, tx, params)
	if err != nil {
		return infra.WrapRepoErr("failed to update certificate metadata", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("certificate not found", nil, infra.KindNotFound)
	}
	return nil
}

// MarkDelivered reports false when the certificate was not pending delivery.
func (r *CertificateRepository) MarkDelivered(ctx context.Context, tx query.DBTX, id uuid.UUID) (bool, error) {
	n, err := r.queries.MarkCertificateDelivered(ctx, tx, id, pgconv.TimeToPgtype(time.Now()))
	if err != nil {
		return false, infra.WrapRepoErr("failed to mark certificate delivered", err)
	}
	return n > 0, nil
}

func (r *CertificateRepository) Delete(ctx context.Context, tx query.DBTX, id uuid.UUID) error {
	n, err := r.queries.DeleteCertificate(ctx, tx, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete certificate", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("certificate not found", nil, infra.KindNotFound)
	}
	return nil
}
