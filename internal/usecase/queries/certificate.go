package queries

import (
	"context"
	"time"

	"gift-ledger/internal/domain/certificate"
	"gift-ledger/internal/infra"
	"gift-ledger/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrCertificateNotFound = errs.New("certificate not found")
	ErrInvalidCursor       = errs.New("invalid cursor")
	ErrInvalidCode         = errs.New("invalid certificate code format")
	ErrInvalidStatusFilter = errs.New("invalid status filter")
)

type ListFilters struct {
	Status *string
}

type CertificateReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*CertificateView, error)
	FindByCode(ctx context.Context, code string) (*CertificateView, error)
	FindFirstPage(ctx context.Context, status *string, limit int32) ([]*CertificateView, error)
	FindKeyset(ctx context.Context, status *string, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*CertificateView, error)
	FindDueForDelivery(ctx context.Context, asOf time.Time, limit int32) ([]*CertificateView, error)
}

type TransactionReadStore interface {
	FindByCertificate(ctx context.Context, certificateID uuid.UUID) ([]*TransactionView, error)
	FindReconciliation(ctx context.Context, certificateID uuid.UUID) (*ReconciliationView, error)
}

type CertificateQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*CertificateView, error)
	GetByCode(ctx context.Context, rawCode string) (*CertificateView, error)
	List(ctx context.Context, filters ListFilters, cursor *Cursor, limit int) ([]*CertificateView, *Cursor, error)
	ListTransactions(ctx context.Context, certificateID uuid.UUID) ([]*TransactionView, error)
	Reconcile(ctx context.Context, certificateID uuid.UUID) (*ReconciliationView, error)
	ListDueForDelivery(ctx context.Context, asOf time.Time, limit int) ([]*CertificateView, error)
}

type certificateQueriesImpl struct {
	certificates CertificateReadStore
	transactions TransactionReadStore
}

func NewCertificateQueries(certificates CertificateReadStore, transactions TransactionReadStore) CertificateQueries {
	return &certificateQueriesImpl{
		certificates: certificates,
		transactions: transactions,
	}
}

func (q *certificateQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*CertificateView, error) {
	view, err := q.certificates.FindByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return view, nil
}

// GetByCode normalises the code first; a malformed code never reaches storage.
func (q *certificateQueriesImpl) GetByCode(ctx context.Context, rawCode string) (*CertificateView, error) {
	code, err := certificate.NewCode(rawCode)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidCode)
	}
	view, err := q.certificates.FindByCode(ctx, code.String())
	if err != nil {
		return nil, mapNotFound(err)
	}
	return view, nil
}

func (q *certificateQueriesImpl) List(ctx context.Context, filters ListFilters, cursor *Cursor, limit int) ([]*CertificateView, *Cursor, error) {
	if filters.Status != nil {
		if _, err := certificate.ParseStatus(*filters.Status); err != nil {
			return nil, nil, errs.Mark(err, ErrInvalidStatusFilter)
		}
	}

	limit = ValidateLimit(limit)
	var rows []*CertificateView
	var err error
	if cursor == nil || cursor.After == "" {
		rows, err = q.certificates.FindFirstPage(ctx, filters.Status, int32(limit+1)) // #nosec G115 -- bounded by MaxListLimit
	} else {
		lastCreatedAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, ErrInvalidCursor
		}
		rows, err = q.certificates.FindKeyset(ctx, filters.Status, lastCreatedAt, lastID, int32(limit+1)) // #nosec G115 -- bounded by MaxListLimit
	}
	if err != nil {
		return nil, nil, err
	}

	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
		rows = rows[:limit]
	}
	return rows, next, nil
}

// ListTransactions returns the ledger newest first. An unknown certificate is
// reported as not found rather than an empty history.
func (q *certificateQueriesImpl) ListTransactions(ctx context.Context, certificateID uuid.UUID) ([]*TransactionView, error) {
	if _, err := q.certificates.FindByID(ctx, certificateID); err != nil {
		return nil, mapNotFound(err)
	}
	items, err := q.transactions.FindByCertificate(ctx, certificateID)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []*TransactionView{}
	}
	return items, nil
}

func (q *certificateQueriesImpl) Reconcile(ctx context.Context, certificateID uuid.UUID) (*ReconciliationView, error) {
	view, err := q.transactions.FindReconciliation(ctx, certificateID)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return view, nil
}

func (q *certificateQueriesImpl) ListDueForDelivery(ctx context.Context, asOf time.Time, limit int) ([]*CertificateView, error) {
	limit = ValidateLimit(limit)
	items, err := q.certificates.FindDueForDelivery(ctx, asOf, int32(limit)) // #nosec G115 -- bounded by MaxListLimit
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []*CertificateView{}
	}
	return items, nil
}

func mapNotFound(err error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return ErrCertificateNotFound
	}
	return err
}
