package models

import "time"

type AuthSession struct {
	Token     string    `json:"session_token"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// ExpiredAt reports whether the session is no longer valid at now.
// A session expiring exactly at now is already expired.
func (s *AuthSession) ExpiredAt(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
