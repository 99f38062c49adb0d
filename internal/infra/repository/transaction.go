package repository

import (
	"context"

	"gift-ledger/internal/domain/certificate"
	"gift-ledger/internal/infra"
	"gift-ledger/internal/infra/query"
	"gift-ledger/internal/infra/repository/converter"

	"github.com/google/uuid"
)

type TransactionWriteQueries interface {
	InsertTransaction(ctx context.Context, db query.DBTX, arg query.InsertTransactionParams) error
}

// TransactionRepository is the append-only side of the ledger.
type TransactionRepository struct {
	queries TransactionWriteQueries
	db      query.DBTX
}

func NewTransactionRepository(queries TransactionWriteQueries, db query.DBTX) *TransactionRepository {
	return &TransactionRepository{
		queries: queries,
		db:      db,
	}
}

func (r *TransactionRepository) Record(ctx context.Context, tx query.DBTX, t *certificate.Transaction) (uuid.UUID, error) {
	if err := r.queries.InsertTransaction(ctx, tx, converter.TransactionToInsertParams(t)); err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to record transaction", err)
	}
	return t.ID(), nil
}
