//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"issuance-engine/internal/domain/actor"
	"issuance-engine/internal/pkg/config"
	"issuance-engine/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

const defaultTTL = time.Hour

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID uuid.UUID, role actor.Role) string {
	t.Helper()
	token, err := jwt.NewService(h.cfg.Secret, h.cfg.Issuer).GenerateToken(userID, role, defaultTTL)
	require.NoError(t, err)
	return token
}

// expiry is placed in the past so no sleeping is needed
func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID, role actor.Role) string {
	t.Helper()
	token, err := jwt.NewService(h.cfg.Secret, h.cfg.Issuer).GenerateToken(userID, role, -time.Minute)
	require.NoError(t, err)
	return token
}
