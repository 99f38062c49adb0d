//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"gift-ledger/internal/pkg/config"
	"gift-ledger/internal/pkg/jwt"

	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	service *jwt.Service
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{service: jwt.NewService(cfg.Secret)}
}

func (h *JWTHelper) GenerateToken(t *testing.T, subject, role string) string {
	t.Helper()
	token, err := h.service.GenerateToken(subject, role, time.Hour)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) AdminToken(t *testing.T) string {
	t.Helper()
	return h.GenerateToken(t, "back-office", jwt.RoleAdmin)
}

func (h *JWTHelper) IntegrationToken(t *testing.T) string {
	t.Helper()
	return h.GenerateToken(t, "form-builder", jwt.RoleIntegration)
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, subject, role string) string {
	t.Helper()
	token, err := h.service.GenerateToken(subject, role, -time.Minute)
	require.NoError(t, err)
	return token
}
