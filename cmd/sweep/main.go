// Command sweep deletes expired auth sessions once and exits. It is meant to
// be scheduled externally (cron, Kubernetes CronJob).
package main

import (
	"context"
	"log"
	"time"

	"github.com/aiga-connect/AcademyBack/internal/config"
	"github.com/aiga-connect/AcademyBack/internal/database"
	"github.com/aiga-connect/AcademyBack/internal/repository"
	"github.com/aiga-connect/AcademyBack/internal/services"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	db, err := database.Connect(ctx, cfg.DBUrl)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	removed, err := services.NewSessionSweeper(repository.NewAuthSessionRepository(db)).Sweep(ctx)
	if err != nil {
		log.Fatalf("Sweep failed: %v", err)
	}
	log.Printf("Removed %d expired sessions", removed)
}
