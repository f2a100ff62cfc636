package handlers

import (
	"context"
	"errors"
	"net/mail"
	"strings"

	"github.com/aiga-connect/AcademyBack/internal/models"
	"github.com/aiga-connect/AcademyBack/internal/repository"
	"github.com/aiga-connect/AcademyBack/internal/services"
	"github.com/gofiber/fiber/v2"
)

type profileApplicationService interface {
	CompleteProfile(ctx context.Context, userID string, req services.CompleteProfileRequest) (*models.User, error)
	GetProfile(ctx context.Context, userID string) (*models.User, error)
}

type ProfileHandler struct {
	service profileApplicationService
}

func NewProfileHandler(service profileApplicationService) *ProfileHandler {
	return &ProfileHandler{service: service}
}

type completeProfileRequest struct {
	Name                  string   `json:"name"`
	Email                 string   `json:"email"`
	Phone                 string   `json:"phone"`
	Age                   *int     `json:"age"`
	Weight                *float64 `json:"weight"`
	Height                *float64 `json:"height"`
	MartialArtsExperience string   `json:"martial_arts_experience"`
	Goals                 string   `json:"goals"`
	MedicalConditions     *string  `json:"medical_conditions"`
	EmergencyContact      string   `json:"emergency_contact"`
	Role                  string   `json:"role"`
}

func (h *ProfileHandler) CompleteProfile(c *fiber.Ctx) error {
	userID, err := actorID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid session token"})
	}

	var req completeProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if validationErr := validateCompleteProfileRequest(req); validationErr != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": validationErr})
	}

	parsedEmail, _ := mail.ParseAddress(strings.TrimSpace(req.Email))
	role := strings.TrimSpace(req.Role)
	if role == "" {
		role = models.RoleStudent
	}

	_, err = h.service.CompleteProfile(c.Context(), userID, services.CompleteProfileRequest{
		Email: strings.ToLower(parsedEmail.Address),
		CompleteProfileInput: repository.CompleteProfileInput{
			Name:                  strings.TrimSpace(req.Name),
			Phone:                 strings.TrimSpace(req.Phone),
			Age:                   *req.Age,
			Weight:                *req.Weight,
			Height:                *req.Height,
			MartialArtsExperience: strings.TrimSpace(req.MartialArtsExperience),
			Goals:                 strings.TrimSpace(req.Goals),
			MedicalConditions:     req.MedicalConditions,
			EmergencyContact:      strings.TrimSpace(req.EmergencyContact),
			Role:                  role,
		},
	})
	if err != nil {
		return mapProfileError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Профиль успешно завершен"})
}

func (h *ProfileHandler) GetProfile(c *fiber.Ctx) error {
	userID, err := actorID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid session token"})
	}

	user, err := h.service.GetProfile(c.Context(), userID)
	if err != nil {
		return mapProfileError(c, err)
	}

	return c.JSON(user)
}

func mapProfileError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	case errors.Is(err, services.ErrEmailImmutable):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Email must match the signed-in account"})
	case errors.Is(err, services.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to process profile request"})
	}
}
