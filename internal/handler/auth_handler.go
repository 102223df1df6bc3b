package handler

import (
	"interview-prep/internal/domain"
	"interview-prep/internal/dto"
	"interview-prep/internal/middleware"
	"interview-prep/internal/service"

	"github.com/gofiber/fiber/v2"
)

// AuthHandler exposes the authentication endpoints.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new instance of AuthHandler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register handles POST /auth/register.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}

	resp, err := h.authService.Register(c.Context(), req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(dto.NewMessageResponse("User registered successfully", resp))
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}

	resp, err := h.authService.Login(c.Context(), req)
	if err != nil {
		return err
	}

	return c.JSON(dto.NewSuccessResponse(resp))
}

// Refresh handles POST /auth/refresh.
func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	var req dto.RefreshTokenRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}

	resp, err := h.authService.Refresh(c.Context(), req.RefreshToken)
	if err != nil {
		return err
	}

	return c.JSON(dto.NewSuccessResponse(resp))
}

// Profile handles GET /auth/profile.
func (h *AuthHandler) Profile(c *fiber.Ctx) error {
	userID, _ := c.Locals(middleware.UserIDKey).(string)

	resp, err := h.authService.GetProfile(c.Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(dto.NewSuccessResponse(resp))
}

// Logout handles POST /auth/logout. Tokens are stateless, so logout is a
// client-side discard; the endpoint exists so clients have a uniform flow.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	return c.JSON(dto.NewMessageResponse("Logged out successfully", nil))
}
