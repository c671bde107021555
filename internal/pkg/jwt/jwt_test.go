//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"issuance-engine/internal/domain/actor"
	"issuance-engine/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_RoundTrip(t *testing.T) {
	svc := jwt.NewService("secret", "erp")
	id := uuid.New()

	token, err := svc.GenerateToken(id, actor.RoleOperator, time.Minute)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, id, claims.UserID)
	assert.Equal(t, "operator", claims.Role)
}

func TestService_Rejects(t *testing.T) {
	svc := jwt.NewService("secret", "erp")
	id := uuid.New()

	expired, err := svc.GenerateToken(id, actor.RoleAdmin, -time.Minute)
	require.NoError(t, err)
	_, err = svc.ValidateToken(expired)
	assert.ErrorIs(t, err, jwt.ErrExpiredToken)

	foreign, err := jwt.NewService("other", "erp").GenerateToken(id, actor.RoleAdmin, time.Minute)
	require.NoError(t, err)
	_, err = svc.ValidateToken(foreign)
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)

	wrongIssuer, err := jwt.NewService("secret", "someone-else").GenerateToken(id, actor.RoleAdmin, time.Minute)
	require.NoError(t, err)
	_, err = svc.ValidateToken(wrongIssuer)
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)

	_, err = svc.ValidateToken("not-a-token")
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)
}
