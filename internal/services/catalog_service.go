package services

import (
	"context"
	"errors"
	"strings"

	"github.com/aiga-connect/AcademyBack/internal/models"
	"github.com/aiga-connect/AcademyBack/internal/repository"
	"github.com/jackc/pgx/v5"
)

type catalogStore interface {
	Create(ctx context.Context, input repository.CreateTrainingSessionInput) (*models.TrainingSession, error)
	GetByID(ctx context.Context, sessionID string) (*models.TrainingSession, error)
	ListActive(ctx context.Context) ([]models.TrainingSession, error)
}

type userReader interface {
	GetByID(ctx context.Context, userID string) (*models.User, error)
}

type CatalogService struct {
	sessions catalogStore
	users    userReader
}

func NewCatalogService(sessions catalogStore, users userReader) *CatalogService {
	return &CatalogService{
		sessions: sessions,
		users:    users,
	}
}

// Create publishes a new catalog entry. Only coaches may publish.
func (s *CatalogService) Create(
	ctx context.Context,
	actorID string,
	input repository.CreateTrainingSessionInput,
) (*models.TrainingSession, error) {
	actor, err := s.AuthorizePublisher(ctx, actorID)
	if err != nil {
		return nil, err
	}

	if input.MaxParticipants <= 0 || input.DurationMinutes < 0 || input.Price < 0 {
		return nil, ErrInvalidInput
	}
	if strings.TrimSpace(input.Title) == "" {
		return nil, ErrInvalidInput
	}

	input.CoachID = actor.UserID
	if strings.TrimSpace(input.CoachName) == "" {
		input.CoachName = actor.Name
	}
	if strings.TrimSpace(input.Location) == "" {
		input.Location = models.DefaultTrainingLocation
	}

	return s.sessions.Create(ctx, input)
}

// AuthorizePublisher returns the actor if they may publish catalog entries.
func (s *CatalogService) AuthorizePublisher(ctx context.Context, actorID string) (*models.User, error) {
	actor, err := s.users.GetByID(ctx, actorID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrForbidden
		}
		return nil, err
	}
	if actor.Role != models.RoleCoach {
		return nil, ErrForbidden
	}
	return actor, nil
}

func (s *CatalogService) Get(ctx context.Context, sessionID string) (*models.TrainingSession, error) {
	session, err := s.sessions.GetByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return session, nil
}

func (s *CatalogService) ListActive(ctx context.Context) ([]models.TrainingSession, error) {
	sessions, err := s.sessions.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	if sessions == nil {
		sessions = []models.TrainingSession{}
	}
	return sessions, nil
}
