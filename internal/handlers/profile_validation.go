package handlers

import (
	"net/mail"
	"strings"

	"github.com/aiga-connect/AcademyBack/internal/models"
)

const (
	maxAge    = 120
	maxWeight = 400.0
	maxHeight = 300.0
)

var allowedRoles = map[string]struct{}{
	models.RoleStudent: {},
	models.RoleCoach:   {},
	models.RoleParent:  {},
}

func validateCompleteProfileRequest(req completeProfileRequest) string {
	if strings.TrimSpace(req.Name) == "" {
		return "name is required"
	}
	if _, err := mail.ParseAddress(strings.TrimSpace(req.Email)); err != nil {
		return "email must be a valid email address"
	}
	if strings.TrimSpace(req.Phone) == "" {
		return "phone is required"
	}
	if req.Age == nil {
		return "age is required"
	}
	if *req.Age < 0 || *req.Age > maxAge {
		return "age must be between 0 and 120"
	}
	if req.Weight == nil {
		return "weight is required"
	}
	if *req.Weight < 0 || *req.Weight > maxWeight {
		return "weight must be between 0 and 400"
	}
	if req.Height == nil {
		return "height is required"
	}
	if *req.Height < 0 || *req.Height > maxHeight {
		return "height must be between 0 and 300"
	}
	if strings.TrimSpace(req.MartialArtsExperience) == "" {
		return "martial_arts_experience is required"
	}
	if strings.TrimSpace(req.Goals) == "" {
		return "goals is required"
	}
	if req.MedicalConditions != nil && strings.TrimSpace(*req.MedicalConditions) == "" {
		return "medical_conditions must not be empty"
	}
	if strings.TrimSpace(req.EmergencyContact) == "" {
		return "emergency_contact is required"
	}
	if err := validateRole(req.Role); err != "" {
		return err
	}
	return ""
}

func validateRole(role string) string {
	role = strings.TrimSpace(role)
	if role == "" {
		return ""
	}
	if _, ok := allowedRoles[role]; !ok {
		return "role must be one of: student, coach, parent"
	}
	return ""
}
