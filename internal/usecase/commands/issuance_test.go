//go:build unit

package commands_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"gift-ledger/internal/domain/certificate"
	"gift-ledger/internal/domain/money"
	"gift-ledger/internal/pkg/clock"
	"gift-ledger/internal/usecase/commands"
	"gift-ledger/tests/common/memstore"
	"gift-ledger/tests/common/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newIssuance(t *testing.T, store *memstore.Store, bodies ...string) commands.IssuanceCommands {
	t.Helper()
	var source func() (string, error)
	if len(bodies) > 0 {
		i := 0
		source = func() (string, error) {
			b := bodies[i%len(bodies)]
			i++
			return b, nil
		}
	}
	g, err := certificate.NewCodeGeneratorWithSource("GC", 3, source)
	require.NoError(t, err)
	return commands.NewIssuanceUseCase(store, clock.NewMockClock(testNow), g)
}

func issueRequest() commands.IssueRequest {
	return commands.IssueRequest{
		Amount:         money.MustFromString("25.00"),
		RecipientEmail: "robin@example.com",
		RecipientName:  "Robin",
		SenderName:     "Sam",
		Message:        "  Enjoy!  ",
	}
}

func TestIssue(t *testing.T) {
	ctx := context.Background()

	t.Run("generates a code and records the issued event", func(t *testing.T) {
		store := memstore.New()
		res, err := newIssuance(t, store, "WXYZ2345").Issue(ctx, issueRequest())
		require.NoError(t, err)

		assert.Equal(t, "GCWXYZ2345", res.Code)
		assert.Equal(t, certificate.StatusActive, res.Status)

		stored, ok := store.Certificate(res.CertificateID)
		require.True(t, ok)
		assert.Equal(t, "25.0000", stored.OriginalAmount.String())
		assert.True(t, stored.CurrentBalance.Equal(stored.OriginalAmount))
		assert.Equal(t, "Enjoy!", stored.Message)

		events := store.Outbox()
		require.Len(t, events, 1)
		assert.Equal(t, commands.EventKindIssued, events[0].Kind)
		var payload commands.IssuedEvent
		require.NoError(t, json.Unmarshal(events[0].Payload, &payload))
		assert.Equal(t, res.CertificateID, payload.CertificateID)
		assert.Equal(t, "25.0000", payload.Amount.String())
	})

	t.Run("keeps a free caller-supplied code after normalising it", func(t *testing.T) {
		store := memstore.New()
		req := issueRequest()
		req.Code = ptr("gc-hello-234")

		res, err := newIssuance(t, store).Issue(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, "GCHELLO234", res.Code)
	})

	t.Run("replaces a caller-supplied code that is taken", func(t *testing.T) {
		store := memstore.New()
		seedCertificate(store, "10", "10", certificate.StatusActive)
		req := issueRequest()
		req.Code = ptr(testCode)

		res, err := newIssuance(t, store, "FRESH234").Issue(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, "GCFRESH234", res.Code)
	})

	t.Run("generator skips codes in use", func(t *testing.T) {
		store := memstore.New()
		seedCertificate(store, "10", "10", certificate.StatusActive)

		res, err := newIssuance(t, store, "ABCD2345", "NEXT2345").Issue(ctx, issueRequest())
		require.NoError(t, err)
		assert.Equal(t, "GCNEXT2345", res.Code)
	})

	t.Run("persistent collision ends in a duplicate code error", func(t *testing.T) {
		store := memstore.New()
		seedCertificate(store, "10", "10", certificate.StatusActive)

		_, err := newIssuance(t, store, "ABCD2345").Issue(ctx, issueRequest())
		testutil.AssertIs(t, err, commands.ErrDuplicateCode)
		testutil.AssertIs(t, err, commands.ErrValidation)
		assert.Empty(t, store.Outbox())
	})

	t.Run("future delivery date starts pending", func(t *testing.T) {
		store := memstore.New()
		req := issueRequest()
		d := testNow.Add(72 * time.Hour)
		req.DeliveryDate = &d

		res, err := newIssuance(t, store).Issue(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, certificate.StatusPendingDelivery, res.Status)
	})

	t.Run("validation", func(t *testing.T) {
		cases := []struct {
			name   string
			mutate func(*commands.IssueRequest)
			errIs  error
		}{
			{name: "zero amount", mutate: func(r *commands.IssueRequest) { r.Amount = money.Zero() }, errIs: certificate.ErrInvalidAmount},
			{name: "negative amount", mutate: func(r *commands.IssueRequest) { r.Amount = money.MustFromString("-1") }, errIs: certificate.ErrInvalidAmount},
			{name: "bad email", mutate: func(r *commands.IssueRequest) { r.RecipientEmail = "robin" }, errIs: certificate.ErrInvalidEmail},
			{name: "blank sender", mutate: func(r *commands.IssueRequest) { r.SenderName = " " }, errIs: certificate.ErrBlankName},
			{name: "malformed requested code", mutate: func(r *commands.IssueRequest) { r.Code = ptr("abc") }, errIs: commands.ErrInvalidCodeFormat},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				store := memstore.New()
				req := issueRequest()
				tc.mutate(&req)

				_, err := newIssuance(t, store).Issue(ctx, req)
				testutil.AssertIs(t, err, tc.errIs)
				testutil.AssertIs(t, err, commands.ErrValidation)
				if tc.errIs != commands.ErrInvalidCodeFormat {
					testutil.AssertNotIs(t, err, commands.ErrInvalidCodeFormat)
				}
				assert.Zero(t, store.Commits())
			})
		}
	})
}
