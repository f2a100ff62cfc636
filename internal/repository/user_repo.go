package repository

import (
	"context"

	"github.com/aiga-connect/AcademyBack/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const userColumns = `user_id, email, name, picture, phone, age, weight, height,
	martial_arts_experience, goals, medical_conditions, emergency_contact,
	role, profile_completed, created_at, updated_at`

type UserRepository struct {
	db DBTX
}

func NewUserRepository(db DBTX) *UserRepository {
	return &UserRepository{db: db}
}

// UpsertFromIdentity returns the user owning identity.Email, creating it on
// first login. Existing users keep their id and profile.
func (r *UserRepository) UpsertFromIdentity(
	ctx context.Context,
	identity models.ExternalIdentity,
) (*models.User, bool, error) {
	query := `
		INSERT INTO users (user_id, email, name, picture)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (email) DO UPDATE SET email = EXCLUDED.email
		RETURNING ` + userColumns + `, (xmax = 0) AS inserted
	`
	var user models.User
	var inserted bool
	err := r.db.QueryRow(ctx, query, uuid.NewString(), identity.Email, identity.Name, identity.Picture).
		Scan(append(userScanTargets(&user), &inserted)...)
	if err != nil {
		return nil, false, err
	}
	return &user, inserted, nil
}

func (r *UserRepository) GetByID(ctx context.Context, userID string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE user_id = $1`
	var user models.User
	if err := r.db.QueryRow(ctx, query, userID).Scan(userScanTargets(&user)...); err != nil {
		return nil, err
	}
	return &user, nil
}

// CompleteProfileInput holds the profile fields a user may overwrite. The
// email stays owned by the identity provider.
type CompleteProfileInput struct {
	Name                  string
	Phone                 string
	Age                   int
	Weight                float64
	Height                float64
	MartialArtsExperience string
	Goals                 string
	MedicalConditions     *string
	EmergencyContact      string
	Role                  string
}

func (r *UserRepository) CompleteProfile(
	ctx context.Context,
	userID string,
	input CompleteProfileInput,
) (*models.User, error) {
	query := `
		UPDATE users
		SET name = $1,
			phone = $2,
			age = $3,
			weight = $4,
			height = $5,
			martial_arts_experience = $6,
			goals = $7,
			medical_conditions = $8,
			emergency_contact = $9,
			role = $10,
			profile_completed = TRUE,
			updated_at = NOW()
		WHERE user_id = $11
		RETURNING ` + userColumns
	var user models.User
	err := r.db.QueryRow(ctx, query,
		input.Name,
		input.Phone,
		input.Age,
		input.Weight,
		input.Height,
		input.MartialArtsExperience,
		input.Goals,
		input.MedicalConditions,
		input.EmergencyContact,
		input.Role,
		userID,
	).Scan(userScanTargets(&user)...)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func userScanTargets(user *models.User) []any {
	return []any{
		&user.UserID,
		&user.Email,
		&user.Name,
		&user.Picture,
		&user.Phone,
		&user.Age,
		&user.Weight,
		&user.Height,
		&user.MartialArtsExperience,
		&user.Goals,
		&user.MedicalConditions,
		&user.EmergencyContact,
		&user.Role,
		&user.ProfileCompleted,
		&user.CreatedAt,
		&user.UpdatedAt,
	}
}
