// Package events defines booking notifications published to Kafka.
package events

import (
	"context"
	"time"
)

const BookingConfirmedType = "booking.confirmed"

// BookingConfirmed is emitted after a booking and its seat increment commit.
type BookingConfirmed struct {
	Type                string    `json:"type"`
	BookingID           string    `json:"booking_id"`
	SessionID           string    `json:"session_id"`
	StudentID           string    `json:"student_id"`
	CoachID             string    `json:"coach_id"`
	CurrentParticipants int       `json:"current_participants"`
	MaxParticipants     int       `json:"max_participants"`
	OccurredAt          time.Time `json:"occurred_at"`
}

type Publisher interface {
	PublishBookingConfirmed(ctx context.Context, event BookingConfirmed) error
	Close() error
}

// NoopPublisher drops every event. Used when no brokers are configured.
type NoopPublisher struct{}

func (NoopPublisher) PublishBookingConfirmed(context.Context, BookingConfirmed) error { return nil }

func (NoopPublisher) Close() error { return nil }
