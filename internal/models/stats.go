package models

type Stats struct {
	TotalUsers    int64 `json:"total_users"`
	TotalSessions int64 `json:"total_sessions"`
	TotalBookings int64 `json:"total_bookings"`
}
