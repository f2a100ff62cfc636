package repository

import (
	"context"
	"errors"

	"github.com/aiga-connect/AcademyBack/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrNoSeatAvailable  = errors.New("no seat available")
	ErrDuplicateBooking = errors.New("duplicate booking")
)

const uniqueViolationCode = "23505"

type TxStarter interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// ReservationRepository writes a booking and its seat increment as one unit.
type ReservationRepository struct {
	db TxStarter
}

func NewReservationRepository(db TxStarter) *ReservationRepository {
	return &ReservationRepository{db: db}
}

// Reserve takes a seat with a conditional increment and records the
// booking in the same transaction. If either step fails nothing is kept.
func (r *ReservationRepository) Reserve(
	ctx context.Context,
	input CreateBookingInput,
) (*models.Booking, *models.TrainingSession, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, nil, err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	txTrainingRepo := NewTrainingSessionRepository(tx)
	txBookingRepo := NewBookingRepository(tx)

	session, err := txTrainingRepo.IncrementParticipantsIfAvailable(ctx, input.SessionID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, ErrNoSeatAvailable
		}
		return nil, nil, err
	}

	booking, err := txBookingRepo.Create(ctx, input)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return nil, nil, ErrDuplicateBooking
		}
		return nil, nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, nil, err
	}

	return booking, session, nil
}
