package handlers

import (
	"context"
	"errors"
	"strings"

	"github.com/aiga-connect/AcademyBack/internal/services"
	"github.com/gofiber/fiber/v2"
)

type authApplicationService interface {
	LoginURL() string
	Login(ctx context.Context, providerSessionID string) (*services.LoginResult, error)
}

type AuthHandler struct {
	service authApplicationService
}

func NewAuthHandler(service authApplicationService) *AuthHandler {
	return &AuthHandler{service: service}
}

type createSessionRequest struct {
	SessionID string `json:"session_id"`
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"auth_url": h.service.LoginURL()})
}

func (h *AuthHandler) CreateSession(c *fiber.Ctx) error {
	var req createSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if strings.TrimSpace(req.SessionID) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Session ID required"})
	}

	result, err := h.service.Login(c.Context(), req.SessionID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Session ID required"})
		case errors.Is(err, services.ErrUpstream):
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid session"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create session"})
		}
	}

	return c.JSON(result)
}
