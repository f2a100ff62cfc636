package repository

import (
	"context"
	"time"

	"github.com/aiga-connect/AcademyBack/internal/models"
	"github.com/google/uuid"
)

type AuthSessionRepository struct {
	db DBTX
}

func NewAuthSessionRepository(db DBTX) *AuthSessionRepository {
	return &AuthSessionRepository{db: db}
}

func (r *AuthSessionRepository) Create(
	ctx context.Context,
	userID string,
	createdAt time.Time,
	ttl time.Duration,
) (*models.AuthSession, error) {
	query := `
		INSERT INTO auth_sessions (session_token, user_id, created_at, expires_at)
		VALUES ($1, $2, $3, $4)
		RETURNING session_token, user_id, created_at, expires_at
	`
	var session models.AuthSession
	err := r.db.QueryRow(ctx, query, uuid.NewString(), userID, createdAt, createdAt.Add(ttl)).Scan(
		&session.Token,
		&session.UserID,
		&session.CreatedAt,
		&session.ExpiresAt,
	)
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// GetByToken returns the stored record regardless of expiry.
func (r *AuthSessionRepository) GetByToken(ctx context.Context, token string) (*models.AuthSession, error) {
	query := `
		SELECT session_token, user_id, created_at, expires_at
		FROM auth_sessions
		WHERE session_token = $1
	`
	var session models.AuthSession
	err := r.db.QueryRow(ctx, query, token).Scan(
		&session.Token,
		&session.UserID,
		&session.CreatedAt,
		&session.ExpiresAt,
	)
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *AuthSessionRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM auth_sessions WHERE expires_at <= $1`, now)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
