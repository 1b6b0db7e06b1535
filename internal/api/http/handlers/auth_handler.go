package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/developer-service/internal/api/dto"
	"github.com/spec-kit/developer-service/internal/api/validation"
	"github.com/spec-kit/developer-service/internal/service"
)

// AuthHandler issues operator tokens.
type AuthHandler struct {
	service   *service.AuthService
	validator *validation.RequestValidator
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService, validator *validation.RequestValidator) *AuthHandler {
	return &AuthHandler{service: authService, validator: validator}
}

// Login POST /auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := h.validator.BindAndValidate(c, &req); err != nil {
		return err
	}
	operator, token, exp, err := h.service.Login(c.UserContext(), req.Username, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.AuthResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   exp,
		Username:    operator.Username,
		Role:        string(operator.Role),
	}})
}
