package main

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"studytutor/backend/config"
	"studytutor/backend/middleware"
	"studytutor/backend/routes"
	"studytutor/backend/store"
	"studytutor/backend/tutor"
	"studytutor/backend/utils"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// Initialize database
	db, err := utils.InitDB(cfg)
	if err != nil {
		log.Fatalf("Error initializing database: %v", err)
	}

	// Initialize logger
	logger := utils.InitLogger()

	// Content provider
	provider, err := tutor.NewGeminiProvider(context.Background(), tutor.GeminiConfig{
		APIKey:    cfg.GeminiAPIKey,
		QuizModel: cfg.GeminiQuizModel,
		ChatModel: cfg.GeminiChatModel,
	})
	if err != nil {
		log.Fatalf("Error initializing content provider: %v", err)
	}
	engine := tutor.NewEngine(provider, logger, cfg.ProviderTimeout)

	// Create Fiber app
	app := fiber.New()

	// Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(middleware.LoggingMiddleware(logger))

	// Setup routes
	routes.SetupRoutes(app, store.New(db), cfg, engine, tutor.NewSessionStore())

	// Start server
	log.Fatal(app.Listen(":" + cfg.ServerPort))
}
