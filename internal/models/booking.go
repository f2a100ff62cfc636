package models

import "time"

const BookingStatusConfirmed = "confirmed"

type Booking struct {
	BookingID   string    `json:"booking_id"`
	SessionID   string    `json:"session_id"`
	StudentID   string    `json:"student_id"`
	BookingDate time.Time `json:"booking_date"`
	Status      string    `json:"status"`
}

type BookingSessionSummary struct {
	Title     string  `json:"title"`
	Date      string  `json:"date"`
	Time      string  `json:"time"`
	CoachID   string  `json:"coach_id"`
	CoachName string  `json:"coach_name"`
	Location  string  `json:"location"`
	Price     float64 `json:"price"`
}

type BookingDetail struct {
	BookingID   string                `json:"booking_id"`
	SessionID   string                `json:"session_id"`
	BookingDate time.Time             `json:"booking_date"`
	Status      string                `json:"status"`
	Session     BookingSessionSummary `json:"session"`
}
