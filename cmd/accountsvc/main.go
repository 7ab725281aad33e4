package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/vaibhavpawarsdet/Developer-Space-LMS/internal/app"
	"github.com/vaibhavpawarsdet/Developer-Space-LMS/internal/config"
)

func main() {
	// secrets and connection strings come from .env in development
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if err := app.Run(cfg); err != nil {
		log.Fatalf("app: %v", err)
	}
}
