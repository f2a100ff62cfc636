package services

import (
	"context"

	"github.com/aiga-connect/AcademyBack/internal/models"
)

type statsCounter interface {
	Counts(ctx context.Context) (*models.Stats, error)
}

type StatsService struct {
	counter statsCounter
}

func NewStatsService(counter statsCounter) *StatsService {
	return &StatsService{counter: counter}
}

func (s *StatsService) GetStats(ctx context.Context) (*models.Stats, error) {
	return s.counter.Counts(ctx)
}
