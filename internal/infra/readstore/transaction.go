package readstore

import (
	"context"

	"gift-ledger/internal/domain/money"
	"gift-ledger/internal/infra"
	"gift-ledger/internal/infra/query"
	"gift-ledger/internal/pkg/pgconv"
	"gift-ledger/internal/usecase/queries"

	"github.com/google/uuid"
)

type TransactionViewQueries interface {
	GetTransactionBySubmissionRef(ctx context.Context, db query.DBTX, certificateID uuid.UUID, submissionRef string) (query.Transactions, error)
	ListTransactionsByCertificate(ctx context.Context, db query.DBTX, certificateID uuid.UUID) ([]query.Transactions, error)
	GetCertificateReconciliation(ctx context.Context, db query.DBTX, certificateID uuid.UUID) (query.GetCertificateReconciliationRow, error)
}

type TransactionReadStore struct {
	queries TransactionViewQueries
	db      query.DBTX
}

func NewTransactionReadStore(queries TransactionViewQueries, db query.DBTX) *TransactionReadStore {
	return &TransactionReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *TransactionReadStore) FindBySubmissionRef(ctx context.Context, certificateID uuid.UUID, submissionRef string) (*queries.TransactionView, error) {
	row, err := r.queries.GetTransactionBySubmissionRef(ctx, r.db, certificateID, submissionRef)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("transaction not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get transaction by submission reference", err)
	}
	return toTransactionView(row)
}

func (r *TransactionReadStore) FindByCertificate(ctx context.Context, certificateID uuid.UUID) ([]*queries.TransactionView, error) {
	rows, err := r.queries.ListTransactionsByCertificate(ctx, r.db, certificateID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list transactions", err)
	}
	result := make([]*queries.TransactionView, len(rows))
	for i, row := range rows {
		view, err := toTransactionView(row)
		if err != nil {
			return nil, err
		}
		result[i] = view
	}
	return result, nil
}

func (r *TransactionReadStore) FindReconciliation(ctx context.Context, certificateID uuid.UUID) (*queries.ReconciliationView, error) {
	row, err := r.queries.GetCertificateReconciliation(ctx, r.db, certificateID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("certificate not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to reconcile certificate", err)
	}

	original, err := amountFromNumeric(row.OriginalAmount)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode original amount", err)
	}
	balance, err := amountFromNumeric(row.CurrentBalance)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode current balance", err)
	}
	redeemed, err := amountFromNumeric(row.TotalRedeemed)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode redeemed total", err)
	}

	expected := money.Subtract(original, redeemed)
	return &queries.ReconciliationView{
		CertificateID:    row.ID,
		OriginalAmount:   original,
		TotalRedeemed:    redeemed,
		ExpectedBalance:  expected,
		CurrentBalance:   balance,
		TransactionCount: row.TransactionCount,
		Balanced:         expected.Equal(balance),
	}, nil
}

func toTransactionView(row query.Transactions) (*queries.TransactionView, error) {
	used, err := amountFromNumeric(row.AmountUsed)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode amount used", err)
	}
	after, err := amountFromNumeric(row.BalanceAfter)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode balance after", err)
	}
	return &queries.TransactionView{
		ID:                  row.ID,
		CertificateID:       row.CertificateID,
		AmountUsed:          used,
		BalanceAfter:        after,
		OrderReference:      pgconv.StringPtrFromPgtype(row.OrderReference),
		SubmissionReference: pgconv.StringPtrFromPgtype(row.SubmissionReference),
		CreatedAt:           pgconv.TimeFromPgtype(row.CreatedAt),
	}, nil
}
