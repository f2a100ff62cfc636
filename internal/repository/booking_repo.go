package repository

import (
	"context"
	"time"

	"github.com/aiga-connect/AcademyBack/internal/models"
	"github.com/google/uuid"
)

type CreateBookingInput struct {
	SessionID   string
	StudentID   string
	BookingDate time.Time
}

type BookingRepository struct {
	db DBTX
}

func NewBookingRepository(db DBTX) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) Create(ctx context.Context, input CreateBookingInput) (*models.Booking, error) {
	query := `
		INSERT INTO bookings (booking_id, session_id, student_id, booking_date, status)
		VALUES ($1, $2, $3, $4, 'confirmed')
		RETURNING booking_id, session_id, student_id, booking_date, status
	`
	var booking models.Booking
	err := r.db.QueryRow(ctx, query, uuid.NewString(), input.SessionID, input.StudentID, input.BookingDate).Scan(
		&booking.BookingID,
		&booking.SessionID,
		&booking.StudentID,
		&booking.BookingDate,
		&booking.Status,
	)
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *BookingRepository) ExistsForStudent(ctx context.Context, sessionID, studentID string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1
			FROM bookings
			WHERE session_id = $1 AND student_id = $2
		)
	`
	var exists bool
	if err := r.db.QueryRow(ctx, query, sessionID, studentID).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// ListDetailsByStudent joins each booking with its catalog entry. Bookings
// whose entry no longer exists are skipped.
func (r *BookingRepository) ListDetailsByStudent(ctx context.Context, studentID string) ([]models.BookingDetail, error) {
	query := `
		SELECT b.booking_id, b.session_id, b.booking_date, b.status,
			   ts.title, ts.date, ts.time, ts.coach_id, ts.coach_name, ts.location, ts.price
		FROM bookings b
		JOIN training_sessions ts ON ts.session_id = b.session_id
		WHERE b.student_id = $1
		ORDER BY b.booking_date ASC, b.booking_id ASC
	`
	rows, err := r.db.Query(ctx, query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	details := make([]models.BookingDetail, 0)
	for rows.Next() {
		var detail models.BookingDetail
		if err := rows.Scan(
			&detail.BookingID,
			&detail.SessionID,
			&detail.BookingDate,
			&detail.Status,
			&detail.Session.Title,
			&detail.Session.Date,
			&detail.Session.Time,
			&detail.Session.CoachID,
			&detail.Session.CoachName,
			&detail.Session.Location,
			&detail.Session.Price,
		); err != nil {
			return nil, err
		}
		details = append(details, detail)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return details, nil
}
