package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/clientforge/agencymail-backend/internal/config"
	"github.com/clientforge/agencymail-backend/internal/db"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, relying on OS environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("failed to load config:", err)
	}

	if err := db.Migrate(cfg.DB.DSN()); err != nil {
		log.Fatal("migration failed:", err)
	}
	log.Println("migrations applied")
}
