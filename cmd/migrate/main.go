package main

import (
	"log"
	"os"

	"github.com/aiga-connect/AcademyBack/internal/database"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	dbUrl := os.Getenv("DB_URL")
	if dbUrl == "" {
		log.Fatal("DB_URL environment variable is required")
	}

	cmd := database.MigrateUp
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}

	if err := database.Migrate(dbUrl, cmd); err != nil {
		log.Fatalf("Migration %s failed: %v", cmd, err)
	}
	log.Printf("Migration %s successful", cmd)
}
