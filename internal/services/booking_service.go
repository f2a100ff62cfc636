package services

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/aiga-connect/AcademyBack/internal/events"
	"github.com/aiga-connect/AcademyBack/internal/models"
	"github.com/aiga-connect/AcademyBack/internal/observability"
	"github.com/aiga-connect/AcademyBack/internal/repository"
	"github.com/jackc/pgx/v5"
)

type bookingCatalogReader interface {
	GetByID(ctx context.Context, sessionID string) (*models.TrainingSession, error)
}

type bookingReader interface {
	ExistsForStudent(ctx context.Context, sessionID, studentID string) (bool, error)
	ListDetailsByStudent(ctx context.Context, studentID string) ([]models.BookingDetail, error)
}

type seatReserver interface {
	Reserve(ctx context.Context, input repository.CreateBookingInput) (*models.Booking, *models.TrainingSession, error)
}

// defaultPublishTimeout bounds how long a committed booking waits on the
// event publisher before the response is sent.
const defaultPublishTimeout = 500 * time.Millisecond

type BookingService struct {
	catalog        bookingCatalogReader
	bookings       bookingReader
	reserver       seatReserver
	publisher      events.Publisher
	publishTimeout time.Duration
	now            func() time.Time
}

func NewBookingService(
	catalog bookingCatalogReader,
	bookings bookingReader,
	reserver seatReserver,
	publisher events.Publisher,
) *BookingService {
	if publisher == nil {
		publisher = events.NoopPublisher{}
	}
	return &BookingService{
		catalog:        catalog,
		bookings:       bookings,
		reserver:       reserver,
		publisher:      publisher,
		publishTimeout: defaultPublishTimeout,
		now:            time.Now,
	}
}

type BookInput struct {
	SessionID string
	// StudentID is optional; when set it must match the authenticated student.
	StudentID string
}

// Book reserves one seat on a catalog entry for studentID.
//
// The capacity and duplicate checks below only produce friendly errors early.
// The seat itself is taken by a conditional increment inside the reservation
// transaction, which is what keeps current_participants <= max_participants
// when several students race for the last seat.
func (s *BookingService) Book(ctx context.Context, studentID string, input BookInput) (*models.Booking, error) {
	sessionID := strings.TrimSpace(input.SessionID)
	if studentID == "" || sessionID == "" {
		return nil, ErrInvalidInput
	}
	if claimed := strings.TrimSpace(input.StudentID); claimed != "" && claimed != studentID {
		observability.RecordBooking(observability.OutcomeRejected)
		return nil, ErrInvalidInput
	}

	entry, err := s.catalog.GetByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			observability.RecordBooking(observability.OutcomeNotFound)
			return nil, ErrNotFound
		}
		observability.RecordBooking(observability.OutcomeError)
		return nil, err
	}
	if entry.Status != models.TrainingStatusActive {
		observability.RecordBooking(observability.OutcomeNotFound)
		return nil, ErrNotFound
	}
	if entry.IsFull() {
		observability.RecordBooking(observability.OutcomeSessionFull)
		return nil, ErrSessionFull
	}

	exists, err := s.bookings.ExistsForStudent(ctx, sessionID, studentID)
	if err != nil {
		observability.RecordBooking(observability.OutcomeError)
		return nil, err
	}
	if exists {
		observability.RecordBooking(observability.OutcomeAlreadyBooked)
		return nil, ErrAlreadyBooked
	}

	booking, updated, err := s.reserver.Reserve(ctx, repository.CreateBookingInput{
		SessionID:   sessionID,
		StudentID:   studentID,
		BookingDate: s.now().UTC(),
	})
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNoSeatAvailable):
			observability.RecordBooking(observability.OutcomeSessionFull)
			return nil, ErrSessionFull
		case errors.Is(err, repository.ErrDuplicateBooking):
			observability.RecordBooking(observability.OutcomeAlreadyBooked)
			return nil, ErrAlreadyBooked
		default:
			observability.RecordBooking(observability.OutcomeError)
			return nil, err
		}
	}

	observability.RecordBooking(observability.OutcomeSuccess)
	s.publishConfirmed(ctx, booking, updated)
	return booking, nil
}

func (s *BookingService) publishConfirmed(ctx context.Context, booking *models.Booking, entry *models.TrainingSession) {
	event := events.BookingConfirmed{
		Type:       events.BookingConfirmedType,
		BookingID:  booking.BookingID,
		SessionID:  booking.SessionID,
		StudentID:  booking.StudentID,
		OccurredAt: booking.BookingDate,
	}
	if entry != nil {
		event.CoachID = entry.CoachID
		event.CurrentParticipants = entry.CurrentParticipants
		event.MaxParticipants = entry.MaxParticipants
	}
	publishCtx, cancel := context.WithTimeout(ctx, s.publishTimeout)
	defer cancel()

	if err := s.publisher.PublishBookingConfirmed(publishCtx, event); err != nil {
		observability.RecordEventPublishFailure()
		log.Printf("booking %s: publish confirmed event: %v", booking.BookingID, err)
	}
}

// ListMine returns the student's bookings with a snapshot of each entry.
func (s *BookingService) ListMine(ctx context.Context, studentID string) ([]models.BookingDetail, error) {
	details, err := s.bookings.ListDetailsByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if details == nil {
		details = []models.BookingDetail{}
	}
	return details, nil
}
