package routes

import (
	"github.com/gofiber/fiber/v2"

	"studytutor/backend/config"
	"studytutor/backend/controllers"
	"studytutor/backend/middleware"
	"studytutor/backend/progress"
	"studytutor/backend/store"
	"studytutor/backend/tutor"
)

func SetupRoutes(app *fiber.App, s *store.Store, cfg *config.Config, engine *tutor.Engine, sessions *tutor.SessionStore) {
	tracker := progress.NewTracker(s)
	authMiddleware := middleware.AuthMiddleware(cfg)

	// Auth routes
	authController := controllers.NewAuthController(s, cfg, sessions)
	app.Post("/api/auth/register", authController.Register)
	app.Post("/api/auth/login", authController.Login)
	app.Post("/api/auth/logout", authMiddleware, authController.Logout)

	// User routes
	userController := controllers.NewUserController(s, cfg)
	app.Get("/api/user/profile", authMiddleware, userController.GetProfile)
	app.Put("/api/user/profile", authMiddleware, userController.UpdateProfile)

	// Subject catalog
	subjectsController := controllers.NewSubjectsController()
	app.Get("/api/subjects", authMiddleware, subjectsController.ListSubjects)
	app.Get("/api/subjects/:subject/topics", authMiddleware, subjectsController.ListTopics)

	// Tutor chat routes
	chatController := controllers.NewChatController(cfg, engine, tracker, sessions)
	chat := app.Group("/api/chat", authMiddleware)
	chat.Post("/message", chatController.SendMessage)
	chat.Delete("/session", chatController.ClearSession)
	chat.Post("/tips", chatController.LearningTips)
	chat.Post("/practice", chatController.PracticeProblem)
	chat.Post("/explain", chatController.ExplainConcept)

	// Quiz routes
	quizController := controllers.NewQuizController(cfg, engine, tracker)
	quizzes := app.Group("/api/quiz", authMiddleware)
	quizzes.Post("/generate", quizController.Generate)
	quizzes.Post("/submit", quizController.Submit)
	quizzes.Get("/history", quizController.History)

	// Progress routes
	progressController := controllers.NewProgressController(cfg, tracker)
	prog := app.Group("/api/progress", authMiddleware)
	prog.Get("/streak", progressController.LearningStreak)
	prog.Get("/:subject", progressController.GetProgress)
	prog.Get("/:subject/recommendations", progressController.Recommendations)
	prog.Get("/:subject/achievements", progressController.Achievements)
	prog.Get("/:subject/suggestions", progressController.StudySuggestions)
	prog.Get("/:subject/export", progressController.Export)
}
