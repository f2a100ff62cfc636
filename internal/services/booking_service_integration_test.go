//go:build integration

package services

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/aiga-connect/AcademyBack/internal/database"
	"github.com/aiga-connect/AcademyBack/internal/models"
	"github.com/aiga-connect/AcademyBack/internal/repository"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	postgrescontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
)

var (
	testDBOnce sync.Once
	testDBPool *pgxpool.Pool
	testDBErr  error
)

func integrationTestPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	testDBOnce.Do(func() {
		ctx := context.Background()
		container, err := postgrescontainer.Run(ctx, "postgres:16-alpine",
			postgrescontainer.WithDatabase("academy"),
			postgrescontainer.WithUsername("academy"),
			postgrescontainer.WithPassword("academy"),
			postgrescontainer.BasicWaitStrategies(),
		)
		if err != nil {
			testDBErr = err
			return
		}

		dbURL, err := container.ConnectionString(ctx, "sslmode=disable")
		if err != nil {
			testDBErr = err
			return
		}
		if err := database.Migrate(dbURL, database.MigrateUp); err != nil {
			testDBErr = err
			return
		}
		testDBPool, testDBErr = database.Connect(ctx, dbURL)
	})

	if testDBErr != nil {
		t.Skipf("skipping integration test: %v", testDBErr)
	}
	return testDBPool
}

func createIntegrationUser(t *testing.T, ctx context.Context, pool *pgxpool.Pool, role string) *models.User {
	t.Helper()

	users := repository.NewUserRepository(pool)
	user, inserted, err := users.UpsertFromIdentity(ctx, models.ExternalIdentity{
		Email: fmt.Sprintf("%s-%s@example.com", role, uuid.NewString()),
		Name:  role,
	})
	require.NoError(t, err)
	require.True(t, inserted)

	if role != models.RoleStudent {
		_, err = pool.Exec(ctx, `UPDATE users SET role = $2 WHERE user_id = $1`, user.UserID, role)
		require.NoError(t, err)
		user.Role = role
	}
	return user
}

func createIntegrationTrainingSession(
	t *testing.T,
	ctx context.Context,
	pool *pgxpool.Pool,
	coach *models.User,
	capacity int,
) *models.TrainingSession {
	t.Helper()

	catalog := NewCatalogService(repository.NewTrainingSessionRepository(pool), repository.NewUserRepository(pool))
	session, err := catalog.Create(ctx, coach.UserID, repository.CreateTrainingSessionInput{
		Title:           "Sparring night",
		Date:            "2030-03-15",
		Time:            "19:00",
		DurationMinutes: 90,
		MaxParticipants: capacity,
		Price:           4000,
	})
	require.NoError(t, err)
	return session
}

func newIntegrationBookingService(pool *pgxpool.Pool) *BookingService {
	return NewBookingService(
		repository.NewTrainingSessionRepository(pool),
		repository.NewBookingRepository(pool),
		repository.NewReservationRepository(pool),
		nil,
	)
}

func TestConcurrentBookingsNeverOverfillTrainingSession(t *testing.T) {
	ctx := context.Background()
	pool := integrationTestPool(t)
	service := newIntegrationBookingService(pool)

	coach := createIntegrationUser(t, ctx, pool, models.RoleCoach)
	entry := createIntegrationTrainingSession(t, ctx, pool, coach, 1)

	const students = 12
	studentIDs := make([]string, students)
	for i := range studentIDs {
		studentIDs[i] = createIntegrationUser(t, ctx, pool, models.RoleStudent).UserID
	}

	var (
		wg    sync.WaitGroup
		mu    sync.Mutex
		start = make(chan struct{})
		errs  []error
	)
	for _, studentID := range studentIDs {
		wg.Add(1)
		go func(studentID string) {
			defer wg.Done()
			<-start
			_, err := service.Book(ctx, studentID, BookInput{SessionID: entry.SessionID})
			mu.Lock()
			errs = append(errs, err)
			mu.Unlock()
		}(studentID)
	}
	close(start)
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		require.ErrorIs(t, err, ErrSessionFull)
	}
	require.Equal(t, 1, succeeded)

	stored, err := repository.NewTrainingSessionRepository(pool).GetByID(ctx, entry.SessionID)
	require.NoError(t, err)
	require.Equal(t, 1, stored.CurrentParticipants)

	var bookings int
	require.NoError(t, pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM bookings WHERE session_id = $1`, entry.SessionID,
	).Scan(&bookings))
	require.Equal(t, 1, bookings)
}

func TestBookingRetryAndListMineAgainstPostgres(t *testing.T) {
	ctx := context.Background()
	pool := integrationTestPool(t)
	service := newIntegrationBookingService(pool)

	coach := createIntegrationUser(t, ctx, pool, models.RoleCoach)
	student := createIntegrationUser(t, ctx, pool, models.RoleStudent)
	entry := createIntegrationTrainingSession(t, ctx, pool, coach, 5)

	booking, err := service.Book(ctx, student.UserID, BookInput{SessionID: entry.SessionID})
	require.NoError(t, err)

	_, err = service.Book(ctx, student.UserID, BookInput{SessionID: entry.SessionID})
	require.ErrorIs(t, err, ErrAlreadyBooked)

	// Skip the friendly pre-check and hit the unique constraint directly.
	_, _, err = repository.NewReservationRepository(pool).Reserve(ctx, repository.CreateBookingInput{
		SessionID:   entry.SessionID,
		StudentID:   student.UserID,
		BookingDate: time.Now().UTC(),
	})
	require.ErrorIs(t, err, repository.ErrDuplicateBooking)

	stored, err := repository.NewTrainingSessionRepository(pool).GetByID(ctx, entry.SessionID)
	require.NoError(t, err)
	require.Equal(t, 1, stored.CurrentParticipants)

	mine, err := service.ListMine(ctx, student.UserID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	require.Equal(t, booking.BookingID, mine[0].BookingID)
	require.Equal(t, entry.Title, mine[0].Session.Title)
	require.Equal(t, coach.Name, mine[0].Session.CoachName)
	require.Equal(t, models.DefaultTrainingLocation, mine[0].Session.Location)
}

func TestExpiredAuthSessionRejectedBeforeSweep(t *testing.T) {
	ctx := context.Background()
	pool := integrationTestPool(t)
	sessions := repository.NewAuthSessionRepository(pool)

	user := createIntegrationUser(t, ctx, pool, models.RoleStudent)
	expired, err := sessions.Create(ctx, user.UserID, time.Now().UTC().Add(-2*time.Hour), time.Hour)
	require.NoError(t, err)

	auth := NewAuthService(&stubIdentityProvider{}, repository.NewUserRepository(pool), sessions, AuthConfig{SessionTTL: time.Hour})

	_, err = auth.Authenticate(ctx, expired.Token)
	require.ErrorIs(t, err, ErrUnauthenticated)

	_, err = sessions.GetByToken(ctx, expired.Token)
	require.NoError(t, err, "expired session should stay in storage until swept")

	removed, err := NewSessionSweeper(sessions).Sweep(ctx)
	require.NoError(t, err)
	require.GreaterOrEqual(t, removed, int64(1))

	_, err = auth.Authenticate(ctx, expired.Token)
	require.ErrorIs(t, err, ErrUnauthenticated)
}

func TestLoginIsIdempotentPerEmail(t *testing.T) {
	ctx := context.Background()
	pool := integrationTestPool(t)

	email := fmt.Sprintf("login-%s@example.com", uuid.NewString())
	provider := &stubIdentityProvider{identity: &models.ExternalIdentity{Email: email, Name: "First"}}
	auth := NewAuthService(provider, repository.NewUserRepository(pool), repository.NewAuthSessionRepository(pool), AuthConfig{
		SessionTTL: 7 * 24 * time.Hour,
	})

	first, err := auth.Login(ctx, "provider-a")
	require.NoError(t, err)
	require.True(t, first.NewUser)

	provider.identity.Name = "Second"
	second, err := auth.Login(ctx, "provider-b")
	require.NoError(t, err)
	require.False(t, second.NewUser)
	require.Equal(t, first.User.UserID, second.User.UserID)

	userID, err := auth.Authenticate(ctx, second.SessionToken)
	require.NoError(t, err)
	require.Equal(t, first.User.UserID, userID)

	stored, err := repository.NewUserRepository(pool).GetByID(ctx, first.User.UserID)
	require.NoError(t, err)
	require.Equal(t, "First", stored.Name)
}

func TestLoginAfterCompleteProfileKeepsSameUser(t *testing.T) {
	ctx := context.Background()
	pool := integrationTestPool(t)
	users := repository.NewUserRepository(pool)

	email := fmt.Sprintf("profile-%s@example.com", uuid.NewString())
	provider := &stubIdentityProvider{identity: &models.ExternalIdentity{Email: email, Name: "Dana"}}
	auth := NewAuthService(provider, users, repository.NewAuthSessionRepository(pool), AuthConfig{SessionTTL: time.Hour})

	first, err := auth.Login(ctx, "provider-a")
	require.NoError(t, err)

	profiles := NewProfileService(users)
	_, err = profiles.CompleteProfile(ctx, first.User.UserID, CompleteProfileRequest{
		Email: "other-" + email,
		CompleteProfileInput: repository.CompleteProfileInput{
			Name: "Dana", Phone: "+7701", Age: 14, Weight: 48, Height: 160,
			MartialArtsExperience: "none", Goals: "fitness", EmergencyContact: "+7702",
		},
	})
	require.ErrorIs(t, err, ErrEmailImmutable)

	completed, err := profiles.CompleteProfile(ctx, first.User.UserID, CompleteProfileRequest{
		Email: email,
		CompleteProfileInput: repository.CompleteProfileInput{
			Name: "Dana K.", Phone: "+7701", Age: 14, Weight: 48, Height: 160,
			MartialArtsExperience: "none", Goals: "fitness", EmergencyContact: "+7702",
		},
	})
	require.NoError(t, err)
	require.True(t, completed.ProfileCompleted)
	require.Equal(t, email, completed.Email)

	second, err := auth.Login(ctx, "provider-b")
	require.NoError(t, err)
	require.False(t, second.NewUser)
	require.Equal(t, first.User.UserID, second.User.UserID)
}

func TestStatsCountActiveCatalogOnly(t *testing.T) {
	ctx := context.Background()
	pool := integrationTestPool(t)
	stats := NewStatsService(repository.NewStatsRepository(pool))

	before, err := stats.GetStats(ctx)
	require.NoError(t, err)

	coach := createIntegrationUser(t, ctx, pool, models.RoleCoach)
	active := createIntegrationTrainingSession(t, ctx, pool, coach, 3)
	retired := createIntegrationTrainingSession(t, ctx, pool, coach, 3)
	_, err = pool.Exec(ctx, `UPDATE training_sessions SET status = 'inactive' WHERE session_id = $1`, retired.SessionID)
	require.NoError(t, err)

	student := createIntegrationUser(t, ctx, pool, models.RoleStudent)
	_, err = newIntegrationBookingService(pool).Book(ctx, student.UserID, BookInput{SessionID: active.SessionID})
	require.NoError(t, err)

	after, err := stats.GetStats(ctx)
	require.NoError(t, err)
	require.Equal(t, before.TotalUsers+2, after.TotalUsers)
	require.Equal(t, before.TotalSessions+1, after.TotalSessions)
	require.Equal(t, before.TotalBookings+1, after.TotalBookings)
}
