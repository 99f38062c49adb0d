//go:build unit || e2e

package testutil

import (
	"testing"

	"gift-ledger/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

// AssertIs matches marks as well as wrapped errors, which assert.ErrorIs does not.
func AssertIs(t *testing.T, err, target error) bool {
	t.Helper()
	return assert.True(t, errs.Is(err, target), "expected %v to match %v", err, target)
}

func AssertNotIs(t *testing.T, err, target error) bool {
	t.Helper()
	return assert.False(t, errs.Is(err, target), "expected %v not to match %v", err, target)
}
