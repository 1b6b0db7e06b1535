package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/developer-service/internal/auth"
	"github.com/spec-kit/developer-service/internal/config"
	"github.com/spec-kit/developer-service/internal/domain"
	apperrors "github.com/spec-kit/developer-service/pkg/util/errorutil"
)

func newTestAuthService(t *testing.T, role string) *AuthService {
	t.Helper()
	hash, err := auth.HashPassword("correct-horse", 4)
	require.NoError(t, err)
	return NewAuthService(config.AuthConfig{
		Enabled:               true,
		JWTSecret:             "secret",
		AccessTokenTTLMinutes: 10,
		OperatorUsername:      "ops",
		OperatorPasswordHash:  hash,
		OperatorRole:          role,
	}, nil)
}

func TestAuthServiceLogin(t *testing.T) {
	svc := newTestAuthService(t, "VIEWER")

	operator, token, _, err := svc.Login(context.Background(), "ops", "correct-horse")
	require.NoError(t, err)
	assert.Equal(t, domain.Operator{Username: "ops", Role: domain.OperatorRoleViewer}, operator)

	claims, err := svc.TokenManager().ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, operator, claims.Operator())
}

func TestAuthServiceLoginRejected(t *testing.T) {
	svc := newTestAuthService(t, "")

	_, _, _, err := svc.Login(context.Background(), "ops", "wrong")
	assert.True(t, apperrors.HasCode(err, apperrors.CodeUnauthorized))

	_, _, _, err = svc.Login(context.Background(), "someone", "correct-horse")
	assert.True(t, apperrors.HasCode(err, apperrors.CodeUnauthorized))
}
