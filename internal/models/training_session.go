package models

import "time"

const (
	TrainingStatusActive   = "active"
	TrainingStatusInactive = "inactive"

	DefaultTrainingLocation = "AIGA Academy, г. Астана, ул. Ахмедьярова, 3"
)

// TrainingSession is a bookable catalog entry published by a coach.
// Date and Time are kept as separate strings (YYYY-MM-DD, HH:MM).
type TrainingSession struct {
	SessionID           string    `json:"session_id"`
	CoachID             string    `json:"coach_id"`
	Title               string    `json:"title"`
	Description         string    `json:"description"`
	TrainingType        string    `json:"training_type"`
	CoachName           string    `json:"coach_name"`
	Date                string    `json:"date"`
	Time                string    `json:"time"`
	DurationMinutes     int       `json:"duration_minutes"`
	MaxParticipants     int       `json:"max_participants"`
	CurrentParticipants int       `json:"current_participants"`
	Price               float64   `json:"price"`
	Location            string    `json:"location"`
	Status              string    `json:"status"`
	CreatedAt           time.Time `json:"created_at"`
}

func (s *TrainingSession) IsFull() bool {
	return s.CurrentParticipants >= s.MaxParticipants
}
