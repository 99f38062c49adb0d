//go:build unit

package queries_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"gift-ledger/internal/domain/certificate"
	"gift-ledger/internal/infra"
	"gift-ledger/internal/usecase/queries"
	"gift-ledger/tests/common/builder"
	"gift-ledger/tests/common/testutil"
	queriesmock "gift-ledger/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func setup(t *testing.T) (*queriesmock.MockCertificateReadStore, *queriesmock.MockTransactionReadStore, queries.CertificateQueries) {
	ctrl := gomock.NewController(t)
	certs := queriesmock.NewMockCertificateReadStore(ctrl)
	txns := queriesmock.NewMockTransactionReadStore(ctrl)
	return certs, txns, queries.NewCertificateQueries(certs, txns)
}

func notFound() error {
	return infra.WrapRepoErr("certificate not found", nil, infra.KindNotFound)
}

func TestGetByCode(t *testing.T) {
	ctx := context.Background()

	t.Run("normalises before lookup", func(t *testing.T) {
		certs, _, q := setup(t)
		view := builder.NewCertificateBuilder().BuildView()
		certs.EXPECT().FindByCode(ctx, "GCABCD2345").Return(view, nil)

		got, err := q.GetByCode(ctx, " gc-abcd-2345 ")
		require.NoError(t, err)
		assert.Equal(t, view, got)
	})

	t.Run("malformed code never reaches the store", func(t *testing.T) {
		_, _, q := setup(t)
		_, err := q.GetByCode(ctx, "nope")
		testutil.AssertIs(t, err, queries.ErrInvalidCode)
	})

	t.Run("unknown code", func(t *testing.T) {
		certs, _, q := setup(t)
		certs.EXPECT().FindByCode(ctx, "GCABCD2345").Return(nil, notFound())

		_, err := q.GetByCode(ctx, "GCABCD2345")
		testutil.AssertIs(t, err, queries.ErrCertificateNotFound)
	})
}

func TestGetByID(t *testing.T) {
	ctx := context.Background()
	certs, _, q := setup(t)
	id := uuid.New()

	certs.EXPECT().FindByID(ctx, id).Return(nil, notFound())
	_, err := q.GetByID(ctx, id)
	testutil.AssertIs(t, err, queries.ErrCertificateNotFound)

	boom := errors.New("db down")
	certs.EXPECT().FindByID(ctx, id).Return(nil, boom)
	_, err = q.GetByID(ctx, id)
	testutil.AssertIs(t, err, boom)
}

func views(n int) []*queries.CertificateView {
	out := make([]*queries.CertificateView, n)
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := range out {
		out[i] = builder.NewCertificateBuilder().With(func(b *builder.CertificateBuilder) {
			b.Code = fmt.Sprintf("GCLIST%04d", i)
			b.CreatedAt = base.Add(-time.Duration(i) * time.Minute)
		}).BuildView()
	}
	return out
}

func TestList(t *testing.T) {
	ctx := context.Background()

	t.Run("first page with more results returns a cursor", func(t *testing.T) {
		certs, _, q := setup(t)
		rows := views(3)
		certs.EXPECT().FindFirstPage(ctx, gomock.Nil(), int32(3)).Return(rows, nil)

		items, next, err := q.List(ctx, queries.ListFilters{}, nil, 2)
		require.NoError(t, err)
		require.Len(t, items, 2)
		require.NotNil(t, next)

		lastCreatedAt, lastID, err := queries.DecodeAfterCursor(next.After)
		require.NoError(t, err)
		assert.Equal(t, rows[1].ID, lastID)
		assert.True(t, rows[1].CreatedAt.Equal(lastCreatedAt))
	})

	t.Run("cursor continues with keyset", func(t *testing.T) {
		certs, _, q := setup(t)
		last := views(1)[0]
		cursor := &queries.Cursor{After: queries.EncodeAfterCursor(last.CreatedAt, last.ID)}
		status := "active"
		certs.EXPECT().FindKeyset(ctx, &status, gomock.Any(), last.ID, int32(queries.DefaultListLimit+1)).Return(views(1), nil)

		items, next, err := q.List(ctx, queries.ListFilters{Status: &status}, cursor, 0)
		require.NoError(t, err)
		assert.Len(t, items, 1)
		assert.Nil(t, next)
	})

	t.Run("limit is capped", func(t *testing.T) {
		certs, _, q := setup(t)
		certs.EXPECT().FindFirstPage(ctx, gomock.Nil(), int32(queries.MaxListLimit+1)).Return(nil, nil)

		_, _, err := q.List(ctx, queries.ListFilters{}, nil, 10_000)
		require.NoError(t, err)
	})

	t.Run("bad cursor", func(t *testing.T) {
		_, _, q := setup(t)
		_, _, err := q.List(ctx, queries.ListFilters{}, &queries.Cursor{After: "%%%"}, 10)
		testutil.AssertIs(t, err, queries.ErrInvalidCursor)
	})

	t.Run("bad status filter", func(t *testing.T) {
		_, _, q := setup(t)
		status := "archived"
		_, _, err := q.List(ctx, queries.ListFilters{Status: &status}, nil, 10)
		testutil.AssertIs(t, err, queries.ErrInvalidStatusFilter)
		testutil.AssertIs(t, err, certificate.ErrInvalidStatus)
	})
}

func TestListTransactions(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("unknown certificate is not an empty list", func(t *testing.T) {
		certs, _, q := setup(t)
		certs.EXPECT().FindByID(ctx, id).Return(nil, notFound())

		_, err := q.ListTransactions(ctx, id)
		testutil.AssertIs(t, err, queries.ErrCertificateNotFound)
	})

	t.Run("certificate without redemptions", func(t *testing.T) {
		certs, txns, q := setup(t)
		certs.EXPECT().FindByID(ctx, id).Return(builder.NewCertificateBuilder().BuildView(), nil)
		txns.EXPECT().FindByCertificate(ctx, id).Return(nil, nil)

		items, err := q.ListTransactions(ctx, id)
		require.NoError(t, err)
		assert.NotNil(t, items)
		assert.Empty(t, items)
	})
}

func TestReconcile(t *testing.T) {
	ctx := context.Background()
	_, txns, q := setup(t)
	id := uuid.New()

	txns.EXPECT().FindReconciliation(ctx, id).Return(nil, notFound())
	_, err := q.Reconcile(ctx, id)
	testutil.AssertIs(t, err, queries.ErrCertificateNotFound)

	want := &queries.ReconciliationView{CertificateID: id, Balanced: true}
	txns.EXPECT().FindReconciliation(ctx, id).Return(want, nil)
	got, err := q.Reconcile(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestListDueForDelivery(t *testing.T) {
	ctx := context.Background()
	certs, _, q := setup(t)
	asOf := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)

	certs.EXPECT().FindDueForDelivery(ctx, asOf, int32(queries.DefaultListLimit)).Return(nil, nil)
	items, err := q.ListDueForDelivery(ctx, asOf, 0)
	require.NoError(t, err)
	assert.NotNil(t, items)
}
