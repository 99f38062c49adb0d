package components

import (
	"gift-ledger/internal/infra/query"
	"gift-ledger/internal/infra/readstore"
	"gift-ledger/internal/infra/uow"
	"gift-ledger/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	uowModule,
)

var baseOption = fx.Provide(
	NewQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Certificate
		fx.Annotate(
			NewQueries,
			fx.As(new(readstore.CertificateViewQueries)),
		),
		fx.Annotate(
			readstore.NewCertificateReadStore,
			fx.As(new(queries.CertificateReadStore)),
		),
		// Transaction
		fx.Annotate(
			NewQueries,
			fx.As(new(readstore.TransactionViewQueries)),
		),
		fx.Annotate(
			readstore.NewTransactionReadStore,
			fx.As(new(queries.TransactionReadStore)),
		),
	),
)

// Write-side repositories are bound per transaction inside the unit of work.
var uowModule = fx.Module("persistence/uow",
	fx.Provide(
		uow.NewPostgresUoW,
	),
)

func NewQueries(_ *pgxpool.Pool) *query.Queries {
	return query.New()
}

func NewDBTX(pool *pgxpool.Pool) query.DBTX {
	return pool
}
