package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/office-admin-service/internal/api/dto"
	"github.com/spec-kit/office-admin-service/internal/auth"
	"github.com/spec-kit/office-admin-service/internal/service"
)

// AuthHandler exposes the login and logout endpoints.
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	result, err := h.authService.Login(c.UserContext(), req.Username, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"auth": dto.AuthResponse{Token: result.Token, ExpiresAt: result.ExpiresAt},
			"user": fiber.Map{"username": result.Session.Username},
		},
	})
}

// Logout handles POST /auth/logout.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	sess, err := auth.SessionFromCtx(c)
	if err != nil {
		return err
	}
	h.authService.Logout(c.UserContext(), sess)
	return c.JSON(fiber.Map{"data": fiber.Map{"status": "logged_out"}})
}

// Refresh handles POST /auth/refresh: re-runs the bulk fetches so a revived
// session gets its collections back.
func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	sess, err := auth.SessionFromCtx(c)
	if err != nil {
		return err
	}
	if err := h.authService.Refresh(c.UserContext(), sess); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"status": "refreshed"}})
}
