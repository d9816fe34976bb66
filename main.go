package main

import (
	"log"

	"github.com/joho/godotenv"

	"easeinvo/cmd"
	"easeinvo/internal/config"
	"easeinvo/internal/logger"
)

func main() {
	// Environment overrides are optional; a missing .env is a normal state.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Printf("Warning: Could not load configuration: %v", err)
		if err := logger.Setup(logger.DefaultConfig()); err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
	} else {
		if err := logger.Setup(cfg.GetLoggerConfig()); err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
	}

	cmd.Execute()
}
