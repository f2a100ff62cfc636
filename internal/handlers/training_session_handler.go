package handlers

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/aiga-connect/AcademyBack/internal/models"
	"github.com/aiga-connect/AcademyBack/internal/repository"
	"github.com/aiga-connect/AcademyBack/internal/services"
	"github.com/gofiber/fiber/v2"
)

const (
	trainingDateLayout = "2006-01-02"
	trainingTimeLayout = "15:04"
)

type catalogApplicationService interface {
	AuthorizePublisher(ctx context.Context, actorID string) (*models.User, error)
	Create(ctx context.Context, actorID string, input repository.CreateTrainingSessionInput) (*models.TrainingSession, error)
	Get(ctx context.Context, sessionID string) (*models.TrainingSession, error)
	ListActive(ctx context.Context) ([]models.TrainingSession, error)
}

type TrainingSessionHandler struct {
	service catalogApplicationService
}

func NewTrainingSessionHandler(service catalogApplicationService) *TrainingSessionHandler {
	return &TrainingSessionHandler{service: service}
}

type createTrainingSessionRequest struct {
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	TrainingType    string  `json:"training_type"`
	CoachName       string  `json:"coach_name"`
	Date            string  `json:"date"`
	Time            string  `json:"time"`
	DurationMinutes int     `json:"duration_minutes"`
	MaxParticipants int     `json:"max_participants"`
	Price           float64 `json:"price"`
	Location        string  `json:"location"`
}

func (h *TrainingSessionHandler) Create(c *fiber.Ctx) error {
	userID, err := actorID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid session token"})
	}

	// Role comes before the body so non-coaches always see 403.
	if _, err := h.service.AuthorizePublisher(c.Context(), userID); err != nil {
		return mapCatalogError(c, err)
	}

	var req createTrainingSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if validationErr := validateCreateTrainingSessionRequest(req); validationErr != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": validationErr})
	}

	session, err := h.service.Create(c.Context(), userID, repository.CreateTrainingSessionInput{
		Title:           strings.TrimSpace(req.Title),
		Description:     strings.TrimSpace(req.Description),
		TrainingType:    strings.TrimSpace(req.TrainingType),
		CoachName:       strings.TrimSpace(req.CoachName),
		Date:            strings.TrimSpace(req.Date),
		Time:            strings.TrimSpace(req.Time),
		DurationMinutes: req.DurationMinutes,
		MaxParticipants: req.MaxParticipants,
		Price:           req.Price,
		Location:        strings.TrimSpace(req.Location),
	})
	if err != nil {
		return mapCatalogError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(session)
}

func (h *TrainingSessionHandler) List(c *fiber.Ctx) error {
	sessions, err := h.service.ListActive(c.Context())
	if err != nil {
		return mapCatalogError(c, err)
	}
	return c.JSON(sessions)
}

func (h *TrainingSessionHandler) Get(c *fiber.Ctx) error {
	sessionID := strings.TrimSpace(c.Params("id"))
	if sessionID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid training session id"})
	}

	session, err := h.service.Get(c.Context(), sessionID)
	if err != nil {
		return mapCatalogError(c, err)
	}
	return c.JSON(session)
}

func validateCreateTrainingSessionRequest(req createTrainingSessionRequest) string {
	if strings.TrimSpace(req.Title) == "" {
		return "title is required"
	}
	if _, err := time.Parse(trainingDateLayout, strings.TrimSpace(req.Date)); err != nil {
		return "date must use the YYYY-MM-DD format"
	}
	if _, err := time.Parse(trainingTimeLayout, strings.TrimSpace(req.Time)); err != nil {
		return "time must use the HH:MM format"
	}
	if req.DurationMinutes < 0 {
		return "duration_minutes must be 0 or greater"
	}
	if req.MaxParticipants <= 0 {
		return "max_participants must be greater than 0"
	}
	if req.Price < 0 {
		return "price must be 0 or greater"
	}
	return ""
}

func mapCatalogError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Only coaches can create training sessions"})
	case errors.Is(err, services.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, services.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Training session not found"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to process training session request"})
	}
}
