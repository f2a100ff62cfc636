package handlers

import (
	"context"

	"github.com/aiga-connect/AcademyBack/internal/models"
	"github.com/gofiber/fiber/v2"
)

type statsApplicationService interface {
	GetStats(ctx context.Context) (*models.Stats, error)
}

type StatsHandler struct {
	service statsApplicationService
}

func NewStatsHandler(service statsApplicationService) *StatsHandler {
	return &StatsHandler{service: service}
}

func (h *StatsHandler) GetStats(c *fiber.Ctx) error {
	stats, err := h.service.GetStats(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load stats"})
	}
	return c.JSON(stats)
}
