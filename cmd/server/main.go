package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/aiga-connect/AcademyBack/internal/config"
	"github.com/aiga-connect/AcademyBack/internal/database"
	"github.com/aiga-connect/AcademyBack/internal/events"
	"github.com/aiga-connect/AcademyBack/internal/repository"
	"github.com/aiga-connect/AcademyBack/internal/routes"
	"github.com/aiga-connect/AcademyBack/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Connect to Database
	db, err := database.Connect(ctx, cfg.DBUrl)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()
	log.Println("Connected to PostgreSQL successfully")

	// 3. Booking events
	var publisher events.Publisher = events.NoopPublisher{}
	if cfg.EventsEnabled() {
		publisher = events.NewKafkaPublisher(cfg.KafkaBrokers, cfg.BookingEventsTopic)
		log.Printf("Publishing booking events to %s", cfg.BookingEventsTopic)
	}
	defer publisher.Close()

	// 4. Expired session sweep
	if cfg.SessionSweepInterval > 0 {
		sweeper := services.NewSessionSweeper(repository.NewAuthSessionRepository(db))
		go sweeper.Run(ctx, cfg.SessionSweepInterval)
	}

	// 5. Setup Fiber
	app := fiber.New()

	// Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSAllowOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(logger.New())
	app.Use(recover.New())

	// Routes
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
		})
	})
	routes.RegisterRoutes(app, cfg, db, publisher)

	go func() {
		<-ctx.Done()
		if err := app.Shutdown(); err != nil {
			log.Printf("Server shutdown failed: %v", err)
		}
	}()

	// 6. Start Server
	log.Printf("Server starting on port %s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
