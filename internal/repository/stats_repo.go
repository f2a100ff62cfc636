package repository

import (
	"context"

	"github.com/aiga-connect/AcademyBack/internal/models"
)

type StatsRepository struct {
	db DBTX
}

func NewStatsRepository(db DBTX) *StatsRepository {
	return &StatsRepository{db: db}
}

func (r *StatsRepository) Counts(ctx context.Context) (*models.Stats, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM users),
			(SELECT COUNT(*) FROM training_sessions WHERE status = 'active'),
			(SELECT COUNT(*) FROM bookings)
	`
	var stats models.Stats
	if err := r.db.QueryRow(ctx, query).Scan(
		&stats.TotalUsers,
		&stats.TotalSessions,
		&stats.TotalBookings,
	); err != nil {
		return nil, err
	}
	return &stats, nil
}
