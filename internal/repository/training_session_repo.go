package repository

import (
	"context"

	"github.com/aiga-connect/AcademyBack/internal/models"
	"github.com/google/uuid"
)

const trainingSessionColumns = `session_id, coach_id, title, description, training_type, coach_name,
	date, time, duration_minutes, max_participants, current_participants, price,
	location, status, created_at`

type CreateTrainingSessionInput struct {
	CoachID         string
	Title           string
	Description     string
	TrainingType    string
	CoachName       string
	Date            string
	Time            string
	DurationMinutes int
	MaxParticipants int
	Price           float64
	Location        string
}

type TrainingSessionRepository struct {
	db DBTX
}

func NewTrainingSessionRepository(db DBTX) *TrainingSessionRepository {
	return &TrainingSessionRepository{db: db}
}

func (r *TrainingSessionRepository) Create(
	ctx context.Context,
	input CreateTrainingSessionInput,
) (*models.TrainingSession, error) {
	query := `
		INSERT INTO training_sessions (
			session_id, coach_id, title, description, training_type, coach_name,
			date, time, duration_minutes, max_participants, current_participants,
			price, location, status
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, 0, $11, $12, 'active')
		RETURNING ` + trainingSessionColumns
	var session models.TrainingSession
	err := r.db.QueryRow(ctx, query,
		uuid.NewString(),
		input.CoachID,
		input.Title,
		input.Description,
		input.TrainingType,
		input.CoachName,
		input.Date,
		input.Time,
		input.DurationMinutes,
		input.MaxParticipants,
		input.Price,
		input.Location,
	).Scan(trainingSessionScanTargets(&session)...)
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *TrainingSessionRepository) GetByID(ctx context.Context, sessionID string) (*models.TrainingSession, error) {
	query := `SELECT ` + trainingSessionColumns + ` FROM training_sessions WHERE session_id = $1`
	var session models.TrainingSession
	if err := r.db.QueryRow(ctx, query, sessionID).Scan(trainingSessionScanTargets(&session)...); err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *TrainingSessionRepository) ListActive(ctx context.Context) ([]models.TrainingSession, error) {
	query := `
		SELECT ` + trainingSessionColumns + `
		FROM training_sessions
		WHERE status = 'active'
		ORDER BY created_at ASC, session_id ASC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sessions := make([]models.TrainingSession, 0)
	for rows.Next() {
		var session models.TrainingSession
		if err := rows.Scan(trainingSessionScanTargets(&session)...); err != nil {
			return nil, err
		}
		sessions = append(sessions, session)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return sessions, nil
}

// IncrementParticipantsIfAvailable takes one seat on an active entry. The
// WHERE clause re-checks capacity at write time, so pgx.ErrNoRows means the
// entry is full, inactive or gone.
func (r *TrainingSessionRepository) IncrementParticipantsIfAvailable(
	ctx context.Context,
	sessionID string,
) (*models.TrainingSession, error) {
	query := `
		UPDATE training_sessions
		SET current_participants = current_participants + 1
		WHERE session_id = $1
		  AND status = 'active'
		  AND current_participants < max_participants
		RETURNING ` + trainingSessionColumns
	var session models.TrainingSession
	if err := r.db.QueryRow(ctx, query, sessionID).Scan(trainingSessionScanTargets(&session)...); err != nil {
		return nil, err
	}
	return &session, nil
}

func trainingSessionScanTargets(session *models.TrainingSession) []any {
	return []any{
		&session.SessionID,
		&session.CoachID,
		&session.Title,
		&session.Description,
		&session.TrainingType,
		&session.CoachName,
		&session.Date,
		&session.Time,
		&session.DurationMinutes,
		&session.MaxParticipants,
		&session.CurrentParticipants,
		&session.Price,
		&session.Location,
		&session.Status,
		&session.CreatedAt,
	}
}
