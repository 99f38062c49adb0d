//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"

	"gift-ledger/internal/domain/certificate"
	"gift-ledger/internal/domain/money"
	"gift-ledger/internal/infra"
	"gift-ledger/internal/infra/query"
	"gift-ledger/internal/infra/repository"
	"gift-ledger/internal/pkg/pgconv"
	"gift-ledger/tests/common/builder"
	repositorymock "gift-ledger/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newCertificateRepo(t *testing.T) (*repositorymock.MockCertificateWriteQueries, *repository.CertificateRepository) {
	ctrl := gomock.NewController(t)
	q := repositorymock.NewMockCertificateWriteQueries(ctrl)
	return q, repository.NewCertificateRepository(q, nil)
}

func TestCertificateRepository_Create(t *testing.T) {
	ctx := context.Background()
	cert, err := builder.NewCertificateBuilder().BuildDomain()
	require.NoError(t, err)

	t.Run("maps the entity onto insert params", func(t *testing.T) {
		q, repo := newCertificateRepo(t)
		q.EXPECT().CreateCertificate(ctx, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ query.DBTX, arg query.CreateCertificateParams) (uuid.UUID, error) {
				assert.Equal(t, cert.ID(), arg.ID)
				assert.Equal(t, "GCABCD2345", arg.Code)
				assert.Equal(t, "active", arg.Status)
				amount, err := pgconv.DecimalFromNumeric(arg.OriginalAmount)
				require.NoError(t, err)
				assert.True(t, amount.Equal(money.FromInt(50).Decimal()))
				assert.False(t, arg.DeliveryDate.Valid)
				return arg.ID, nil
			})

		id, err := repo.Create(ctx, nil, cert)
		require.NoError(t, err)
		assert.Equal(t, cert.ID(), id)
	})

	t.Run("unique violation is a duplicate key", func(t *testing.T) {
		q, repo := newCertificateRepo(t)
		q.EXPECT().CreateCertificate(ctx, gomock.Any(), gomock.Any()).
			Return(uuid.Nil, &pgconn.PgError{Code: "23505", ConstraintName: "certificates_code_key"})

		_, err := repo.Create(ctx, nil, cert)
		assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
	})
}

func TestCertificateRepository_UpdateBalance(t *testing.T) {
	ctx := context.Background()

	row := func(balance string, status certificate.Status) query.Certificates {
		r := builder.NewCertificateBuilder().WithBalance(balance).WithStatus(status).BuildInfra()
		r.Version = 4
		return r
	}

	t.Run("deducts against the version read", func(t *testing.T) {
		q, repo := newCertificateRepo(t)
		r := row("50", certificate.StatusActive)
		q.EXPECT().GetCertificateByID(ctx, gomock.Any(), r.ID).Return(r, nil)
		q.EXPECT().CompareAndSwapBalance(ctx, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ query.DBTX, arg query.CompareAndSwapBalanceParams) (query.CompareAndSwapBalanceRow, error) {
				assert.Equal(t, int64(4), arg.ExpectedVersion)
				applied, _ := pgconv.DecimalFromNumeric(arg.Applied)
				assert.Equal(t, "30", applied.String())
				return query.CompareAndSwapBalanceRow{
					CurrentBalance: pgconv.NumericFromDecimal(money.FromInt(20).Decimal()),
					Status:         "active",
					Version:        5,
				}, nil
			})

		change, err := repo.UpdateBalance(ctx, nil, r.ID, money.FromInt(30))
		require.NoError(t, err)
		assert.True(t, change.AmountApplied.Equal(money.FromInt(30)))
		assert.True(t, change.NewBalance.Equal(money.FromInt(20)))
		assert.Equal(t, certificate.StatusActive, change.Status)
	})

	t.Run("clamps to the remaining balance", func(t *testing.T) {
		q, repo := newCertificateRepo(t)
		r := row("20", certificate.StatusActive)
		q.EXPECT().GetCertificateByID(ctx, gomock.Any(), r.ID).Return(r, nil)
		q.EXPECT().CompareAndSwapBalance(ctx, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ query.DBTX, arg query.CompareAndSwapBalanceParams) (query.CompareAndSwapBalanceRow, error) {
				applied, _ := pgconv.DecimalFromNumeric(arg.Applied)
				assert.Equal(t, "20", applied.String())
				return query.CompareAndSwapBalanceRow{
					CurrentBalance: pgconv.NumericFromDecimal(money.Zero().Decimal()),
					Status:         "expired",
					Version:        5,
				}, nil
			})

		change, err := repo.UpdateBalance(ctx, nil, r.ID, money.FromInt(100))
		require.NoError(t, err)
		assert.True(t, change.AmountApplied.Equal(money.FromInt(20)))
		assert.True(t, change.NewBalance.IsZero())
		assert.Equal(t, certificate.StatusExpired, change.Status)
	})

	t.Run("unknown certificate", func(t *testing.T) {
		q, repo := newCertificateRepo(t)
		id := uuid.New()
		q.EXPECT().GetCertificateByID(ctx, gomock.Any(), id).Return(query.Certificates{}, pgx.ErrNoRows)

		_, err := repo.UpdateBalance(ctx, nil, id, money.FromInt(1))
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	for name, r := range map[string]query.Certificates{
		"pending delivery": row("50", certificate.StatusPendingDelivery),
		"expired":          row("0", certificate.StatusExpired),
		"empty but active": row("0", certificate.StatusActive),
	} {
		t.Run(name+" is a conflict without a write", func(t *testing.T) {
			q, repo := newCertificateRepo(t)
			q.EXPECT().GetCertificateByID(ctx, gomock.Any(), r.ID).Return(r, nil)

			_, err := repo.UpdateBalance(ctx, nil, r.ID, money.FromInt(1))
			assert.True(t, infra.IsKind(err, infra.KindConflict))
		})
	}

	t.Run("lost race is a conflict", func(t *testing.T) {
		q, repo := newCertificateRepo(t)
		r := row("50", certificate.StatusActive)
		q.EXPECT().GetCertificateByID(ctx, gomock.Any(), r.ID).Return(r, nil)
		q.EXPECT().CompareAndSwapBalance(ctx, gomock.Any(), gomock.Any()).
			Return(query.CompareAndSwapBalanceRow{}, pgx.ErrNoRows)

		_, err := repo.UpdateBalance(ctx, nil, r.ID, money.FromInt(10))
		assert.True(t, infra.IsKind(err, infra.KindConflict))
	})

	t.Run("driver failure", func(t *testing.T) {
		q, repo := newCertificateRepo(t)
		r := row("50", certificate.StatusActive)
		q.EXPECT().GetCertificateByID(ctx, gomock.Any(), r.ID).Return(r, nil)
		q.EXPECT().CompareAndSwapBalance(ctx, gomock.Any(), gomock.Any()).
			Return(query.CompareAndSwapBalanceRow{}, errors.New("connection reset"))

		_, err := repo.UpdateBalance(ctx, nil, r.ID, money.FromInt(10))
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})

	t.Run("non-positive delta never reads", func(t *testing.T) {
		_, repo := newCertificateRepo(t)
		_, err := repo.UpdateBalance(ctx, nil, uuid.New(), money.Zero())
		assert.Error(t, err)
	})
}

func TestCertificateRepository_RowCountedWrites(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("status of unknown certificate", func(t *testing.T) {
		q, repo := newCertificateRepo(t)
		q.EXPECT().UpdateCertificateStatus(ctx, gomock.Any(), gomock.Any()).Return(int64(0), nil)
		err := repo.UpdateStatus(ctx, nil, id, certificate.StatusExpired)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("metadata keeps absent fields null", func(t *testing.T) {
		q, repo := newCertificateRepo(t)
		name := "Alex"
		q.EXPECT().UpdateCertificateMetadata(ctx, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ query.DBTX, arg query.UpdateCertificateMetadataParams) (int64, error) {
				assert.Equal(t, id, arg.ID)
				assert.Equal(t, "Alex", arg.RecipientName.String)
				assert.False(t, arg.Code.Valid)
				assert.False(t, arg.Message.Valid)
				return 1, nil
			})
		require.NoError(t, repo.UpdateMetadata(ctx, nil, id, certificate.Metadata{RecipientName: &name}))
	})

	t.Run("metadata passes clear flags", func(t *testing.T) {
		q, repo := newCertificateRepo(t)
		q.EXPECT().UpdateCertificateMetadata(ctx, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ query.DBTX, arg query.UpdateCertificateMetadataParams) (int64, error) {
				assert.True(t, arg.ClearDeliveryDate)
				assert.True(t, arg.ClearDesignID)
				assert.False(t, arg.DeliveryDate.Valid)
				assert.False(t, arg.DesignID.Valid)
				return 1, nil
			})
		require.NoError(t, repo.UpdateMetadata(ctx, nil, id, certificate.Metadata{ClearDeliveryDate: true, ClearDesignID: true}))
	})

	t.Run("metadata duplicate code", func(t *testing.T) {
		q, repo := newCertificateRepo(t)
		code := "GCTAKEN234"
		q.EXPECT().UpdateCertificateMetadata(ctx, gomock.Any(), gomock.Any()).
			Return(int64(0), &pgconn.PgError{Code: "23505"})
		err := repo.UpdateMetadata(ctx, nil, id, certificate.Metadata{Code: &code})
		assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
	})

	t.Run("mark delivered reports whether it applied", func(t *testing.T) {
		q, repo := newCertificateRepo(t)
		q.EXPECT().MarkCertificateDelivered(ctx, gomock.Any(), id, gomock.Any()).Return(int64(1), nil)
		q.EXPECT().MarkCertificateDelivered(ctx, gomock.Any(), id, gomock.Any()).Return(int64(0), nil)

		ok, err := repo.MarkDelivered(ctx, nil, id)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = repo.MarkDelivered(ctx, nil, id)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("delete unknown certificate", func(t *testing.T) {
		q, repo := newCertificateRepo(t)
		q.EXPECT().DeleteCertificate(ctx, gomock.Any(), id).Return(int64(0), nil)
		err := repo.Delete(ctx, nil, id)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}
