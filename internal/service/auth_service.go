package service

import (
	"context"
	"crypto/subtle"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/developer-service/internal/auth"
	"github.com/spec-kit/developer-service/internal/config"
	"github.com/spec-kit/developer-service/internal/domain"
	apperrors "github.com/spec-kit/developer-service/pkg/util/errorutil"
)

// AuthService authenticates the configured operator and issues bearer tokens.
type AuthService struct {
	username     string
	passwordHash string
	role         domain.OperatorRole
	tokenMgr     *auth.TokenManager
	logger       *zap.Logger
}

// NewAuthService builds the service.
func NewAuthService(cfg config.AuthConfig, logger *zap.Logger) *AuthService {
	if logger == nil {
		logger = zap.NewNop()
	}
	role := domain.OperatorRole(cfg.OperatorRole)
	if role == "" {
		role = domain.OperatorRoleAdmin
	}
	return &AuthService{
		username:     cfg.OperatorUsername,
		passwordHash: cfg.OperatorPasswordHash,
		role:         role,
		tokenMgr:     auth.NewTokenManager(cfg.JWTSecret, cfg.AccessTokenTTLMinutes),
		logger:       logger.With(zap.String("component", "auth_service")),
	}
}

// Login verifies operator credentials and returns a signed token.
func (s *AuthService) Login(_ context.Context, username, password string) (domain.Operator, string, time.Time, error) {
	if s.username == "" || subtle.ConstantTimeCompare([]byte(username), []byte(s.username)) != 1 {
		s.logger.Info("login rejected", zap.String("username", username))
		return domain.Operator{}, "", time.Time{}, apperrors.NewUnauthorized("invalid credentials")
	}
	if err := auth.ComparePassword(s.passwordHash, password); err != nil {
		s.logger.Info("login rejected", zap.String("username", username))
		return domain.Operator{}, "", time.Time{}, apperrors.NewUnauthorized("invalid credentials")
	}

	operator := domain.Operator{Username: s.username, Role: s.role}
	token, exp, err := s.tokenMgr.GenerateToken(operator)
	if err != nil {
		return domain.Operator{}, "", time.Time{}, apperrors.NewInternalError(err)
	}
	return operator, token, exp, nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}
