package readstore

import (
	"context"
	"time"

	"gift-ledger/internal/domain/money"
	"gift-ledger/internal/infra"
	"gift-ledger/internal/infra/query"
	"gift-ledger/internal/pkg/pgconv"
	"gift-ledger/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type CertificateViewQueries interface {
	GetCertificateByID(ctx context.Context, db query.DBTX, id uuid.UUID) (query.Certificates, error)
	GetCertificateByCode(ctx context.Context, db query.DBTX, code string) (query.Certificates, error)
	CertificateCodeExists(ctx context.Context, db query.DBTX, code string) (bool, error)
	ListCertificatesFirstPage(ctx context.Context, db query.DBTX, status pgtype.Text, limit int32) ([]query.Certificates, error)
	ListCertificatesKeyset(ctx context.Context, db query.DBTX, status pgtype.Text, lastCreatedAt pgtype.Timestamptz, lastID uuid.UUID, limit int32) ([]query.Certificates, error)
	ListCertificatesDueForDelivery(ctx context.Context, db query.DBTX, asOf pgtype.Date, limit int32) ([]query.Certificates, error)
}

type CertificateReadStore struct {
	queries CertificateViewQueries
	db      query.DBTX
}

func NewCertificateReadStore(queries CertificateViewQueries, db query.DBTX) *CertificateReadStore {
	return &CertificateReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *CertificateReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.CertificateView, error) {
	row, err := r.queries.GetCertificateByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("certificate not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get certificate by id", err)
	}
	return toCertificateView(row)
}

func (r *CertificateReadStore) FindByCode(ctx context.Context, code string) (*queries.CertificateView, error) {
	row, err := r.queries.GetCertificateByCode(ctx, r.db, code)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("certificate not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get certificate by code", err)
	}
	return toCertificateView(row)
}

func (r *CertificateReadStore) CodeExists(ctx context.Context, code string) (bool, error) {
	exists, err := r.queries.CertificateCodeExists(ctx, r.db, code)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check certificate code", err)
	}
	return exists, nil
}

func (r *CertificateReadStore) FindFirstPage(ctx context.Context, status *string, limit int32) ([]*queries.CertificateView, error) {
	rows, err := r.queries.ListCertificatesFirstPage(ctx, r.db, pgconv.StringPtrToPgtype(status), limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list certificates first page", err)
	}
	return toCertificateViews(rows)
}

func (r *CertificateReadStore) FindKeyset(ctx context.Context, status *string, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.CertificateView, error) {
	rows, err := r.queries.ListCertificatesKeyset(ctx, r.db, pgconv.StringPtrToPgtype(status), pgconv.TimeToPgtype(lastCreatedAt), lastID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list certificates keyset", err)
	}
	return toCertificateViews(rows)
}

func (r *CertificateReadStore) FindDueForDelivery(ctx context.Context, asOf time.Time, limit int32) ([]*queries.CertificateView, error) {
	rows, err := r.queries.ListCertificatesDueForDelivery(ctx, r.db, pgconv.DatePtrToPgtype(&asOf), limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list certificates due for delivery", err)
	}
	return toCertificateViews(rows)
}

func toCertificateView(row query.Certificates) (*queries.CertificateView, error) {
	original, err := amountFromNumeric(row.OriginalAmount)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode original amount", err)
	}
	balance, err := amountFromNumeric(row.CurrentBalance)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode current balance", err)
	}
	return &queries.CertificateView{
		ID:             row.ID,
		Code:           row.Code,
		OriginalAmount: original,
		CurrentBalance: balance,
		Status:         row.Status,
		RecipientEmail: row.RecipientEmail,
		RecipientName:  row.RecipientName,
		SenderName:     row.SenderName,
		Message:        row.Message,
		DeliveryDate:   pgconv.DatePtrFromPgtype(row.DeliveryDate),
		DesignID:       pgconv.StringPtrFromPgtype(row.DesignID),
		Version:        row.Version,
		CreatedAt:      pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:      pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}

func toCertificateViews(rows []query.Certificates) ([]*queries.CertificateView, error) {
	result := make([]*queries.CertificateView, len(rows))
	for i, row := range rows {
		view, err := toCertificateView(row)
		if err != nil {
			return nil, err
		}
		result[i] = view
	}
	return result, nil
}

func amountFromNumeric(n pgtype.Numeric) (money.Amount, error) {
	d, err := pgconv.DecimalFromNumeric(n)
	if err != nil {
		return money.Zero(), err
	}
	return money.New(d), nil
}
