package models

import "time"

const (
	RoleStudent = "student"
	RoleCoach   = "coach"
	RoleParent  = "parent"
)

type User struct {
	UserID                string    `json:"user_id"`
	Email                 string    `json:"email"`
	Name                  string    `json:"name"`
	Picture               string    `json:"picture"`
	Phone                 *string   `json:"phone"`
	Age                   *int      `json:"age"`
	Weight                *float64  `json:"weight"`
	Height                *float64  `json:"height"`
	MartialArtsExperience *string   `json:"martial_arts_experience"`
	Goals                 *string   `json:"goals"`
	MedicalConditions     *string   `json:"medical_conditions"`
	EmergencyContact      *string   `json:"emergency_contact"`
	Role                  string    `json:"role"`
	ProfileCompleted      bool      `json:"profile_completed"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}

// ExternalIdentity is the verified profile returned by the identity provider.
type ExternalIdentity struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}
