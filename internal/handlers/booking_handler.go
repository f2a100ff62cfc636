package handlers

import (
	"context"
	"errors"
	"strings"

	"github.com/aiga-connect/AcademyBack/internal/models"
	"github.com/aiga-connect/AcademyBack/internal/services"
	"github.com/gofiber/fiber/v2"
)

type bookingApplicationService interface {
	Book(ctx context.Context, studentID string, input services.BookInput) (*models.Booking, error)
	ListMine(ctx context.Context, studentID string) ([]models.BookingDetail, error)
}

type BookingHandler struct {
	service bookingApplicationService
}

func NewBookingHandler(service bookingApplicationService) *BookingHandler {
	return &BookingHandler{service: service}
}

// BookingDate is accepted for client compatibility; the server stamps the
// booking time itself.
type createBookingRequest struct {
	SessionID   string `json:"session_id"`
	StudentID   string `json:"student_id"`
	BookingDate string `json:"booking_date"`
}

func (h *BookingHandler) Create(c *fiber.Ctx) error {
	userID, err := actorID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid session token"})
	}

	var req createBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if strings.TrimSpace(req.SessionID) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "session_id is required"})
	}
	if studentID := strings.TrimSpace(req.StudentID); studentID != "" && studentID != userID {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "student_id does not match the authenticated user"})
	}

	booking, err := h.service.Book(c.Context(), userID, services.BookInput{
		SessionID: req.SessionID,
		StudentID: req.StudentID,
	})
	if err != nil {
		return mapBookingError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(booking)
}

func (h *BookingHandler) ListMine(c *fiber.Ctx) error {
	userID, err := actorID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid session token"})
	}

	bookings, err := h.service.ListMine(c.Context(), userID)
	if err != nil {
		return mapBookingError(c, err)
	}
	return c.JSON(bookings)
}

func mapBookingError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid booking request"})
	case errors.Is(err, services.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Training session not found"})
	case errors.Is(err, services.ErrSessionFull):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Session is full"})
	case errors.Is(err, services.ErrAlreadyBooked):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Already booked this session"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to process booking request"})
	}
}
