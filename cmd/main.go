package main

import (
	"context"
	"log"
	"time"

	"onestop-backend/internal/api"
	"onestop-backend/internal/api/routes"
	"onestop-backend/internal/config"
	llmHandlers "onestop-backend/internal/llm_handlers"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Connect to database
	if err := config.ConnectDB(cfg.DatabaseURL); err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Run migrations
	if err := config.MigrateAllModels(cfg.AutoMigrate); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Build the model gateway; the model is fixed for the process lifetime
	llmClient, err := llmHandlers.NewClient(cfg)
	if err != nil {
		log.Fatal("Failed to create llm client:", err)
	}

	// Warm the model in the background so the first ask is not slow.
	// A failed warm-up never blocks startup; the first request loads it.
	if cfg.WarmOnStart {
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
			defer cancel()
			if err := llmClient.Warm(ctx); err != nil {
				log.Printf("model warm-up failed: %v", err)
			}
		}()
	}

	// Create and configure Fiber app
	app := api.NewServer()

	// Register routes
	routes.Register(app, cfg, llmClient)

	// Start server
	if err := api.StartServer(app, cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
