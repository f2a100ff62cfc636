package services

import (
	"context"
	"errors"
	"strings"

	"github.com/aiga-connect/AcademyBack/internal/models"
	"github.com/aiga-connect/AcademyBack/internal/repository"
	"github.com/jackc/pgx/v5"
)

type ProfileStore interface {
	GetByID(ctx context.Context, userID string) (*models.User, error)
	CompleteProfile(ctx context.Context, userID string, input repository.CompleteProfileInput) (*models.User, error)
}

type ProfileService struct {
	users ProfileStore
}

func NewProfileService(users ProfileStore) *ProfileService {
	return &ProfileService{users: users}
}

// CompleteProfileRequest carries the submitted email alongside the profile
// fields. The email is only checked against the account, never stored.
type CompleteProfileRequest struct {
	Email string
	repository.CompleteProfileInput
}

// CompleteProfile overwrites every profile field and marks the profile
// complete. Repeating the call with the same input is a no-op.
func (s *ProfileService) CompleteProfile(
	ctx context.Context,
	userID string,
	req CompleteProfileRequest,
) (*models.User, error) {
	current, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if email := strings.TrimSpace(req.Email); email != "" && !strings.EqualFold(email, current.Email) {
		return nil, ErrEmailImmutable
	}

	input := req.CompleteProfileInput
	if input.Role == "" {
		input.Role = models.RoleStudent
	}

	user, err := s.users.CompleteProfile(ctx, userID, input)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *ProfileService) GetProfile(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return user, nil
}
