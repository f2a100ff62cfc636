package routes

import (
	"log"

	"github.com/aiga-connect/AcademyBack/internal/config"
	"github.com/aiga-connect/AcademyBack/internal/events"
	"github.com/aiga-connect/AcademyBack/internal/handlers"
	"github.com/aiga-connect/AcademyBack/internal/middleware"
	"github.com/aiga-connect/AcademyBack/internal/repository"
	"github.com/aiga-connect/AcademyBack/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func RegisterRoutes(app *fiber.App, cfg *config.Config, db *pgxpool.Pool, publisher events.Publisher) {
	userRepo := repository.NewUserRepository(db)
	authSessionRepo := repository.NewAuthSessionRepository(db)
	trainingSessionRepo := repository.NewTrainingSessionRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	reservationRepo := repository.NewReservationRepository(db)
	statsRepo := repository.NewStatsRepository(db)

	identityProvider := services.NewHTTPIdentityProvider(cfg.IdentityProviderURL)
	authService := services.NewAuthService(identityProvider, userRepo, authSessionRepo, services.AuthConfig{
		PortalURL:   cfg.AuthPortalURL,
		RedirectURL: cfg.AuthRedirectURL,
		SessionTTL:  cfg.SessionTTL,
	})
	profileService := services.NewProfileService(userRepo)
	catalogService := services.NewCatalogService(trainingSessionRepo, userRepo)
	bookingService := services.NewBookingService(trainingSessionRepo, bookingRepo, reservationRepo, publisher)
	statsService := services.NewStatsService(statsRepo)

	authHandler := handlers.NewAuthHandler(authService)
	profileHandler := handlers.NewProfileHandler(profileService)
	trainingSessionHandler := handlers.NewTrainingSessionHandler(catalogService)
	bookingHandler := handlers.NewBookingHandler(bookingService)
	statsHandler := handlers.NewStatsHandler(statsService)

	authRequired := middleware.AuthRequired(authService)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "AIGA Connect API",
			"status":  "active",
		})
	})
	if cfg.EnableMetrics {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	}

	if err := registerDocsRoutes(app, cfg); err != nil {
		log.Printf("API docs unavailable: %v", err)
	}

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Get("/login", authHandler.Login)
	auth.Post("/session", authHandler.CreateSession)

	users := api.Group("/users", authRequired)
	users.Post("/complete-profile", profileHandler.CompleteProfile)
	users.Get("/profile", profileHandler.GetProfile)

	trainingSessions := api.Group("/training-sessions")
	trainingSessions.Get("", trainingSessionHandler.List)
	trainingSessions.Get("/:id", trainingSessionHandler.Get)
	trainingSessions.Post("", authRequired, trainingSessionHandler.Create)

	bookings := api.Group("/bookings", authRequired)
	bookings.Post("", bookingHandler.Create)
	bookings.Get("/my", bookingHandler.ListMine)

	api.Get("/stats", statsHandler.GetStats)
}
