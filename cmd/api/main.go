// @title Health Quiz API
// @version 1.0
// @description REST API for health education quizzes, topics and research lookups.
// @host localhost:8090
// @BasePath /api
// @schemes http https
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"healthquiz/internal/adapter"
	"healthquiz/internal/adapter/research"
	"healthquiz/internal/cache"
	"healthquiz/internal/config"
	"healthquiz/internal/content"
	"healthquiz/internal/database"
	"healthquiz/internal/domain"
	"healthquiz/internal/handler"
	"healthquiz/internal/logger"
	"healthquiz/internal/middleware"
	"healthquiz/internal/repository"
	"healthquiz/internal/service"
	"healthquiz/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// requestLogger is a middleware that logs HTTP requests
func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		path := c.Path()
		method := c.Method()

		err := c.Next()

		duration := time.Since(start)
		status := c.Response().StatusCode()

		logger.Get().Info("HTTP Request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
			zap.Duration("duration", duration),
			zap.String("ip", c.IP()),
			zap.String("user_agent", c.Get("User-Agent")),
		)

		return err
	}
}

func main() {
	// Optional .env for local development
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	// Question bank
	var questionRepo domain.QuestionRepository
	switch cfg.Quiz.BankSource {
	case "sqlite":
		appLogger.Info("Loading question bank from SQLite", zap.String("path", cfg.Database.Path))
		db, err := database.NewSQLXSQLiteDB(cfg.Database.Path)
		if err != nil {
			appLogger.Fatal("Failed to connect to database", zap.Error(err))
		}
		defer db.Close()
		questionRepo = repository.NewQuestionDatabaseAdapter(db)
	case "embedded", "":
		appLogger.Info("Loading embedded question bank", zap.Int("questions", len(content.Questions())))
		questionRepo, err = repository.NewEmbeddedBank(content.Questions())
		if err != nil {
			appLogger.Fatal("Embedded question bank is invalid", zap.Error(err))
		}
	default:
		appLogger.Fatal("Unsupported bank source", zap.String("source", cfg.Quiz.BankSource))
	}

	// Session store
	var sessionStore service.SessionStore
	switch cfg.Quiz.SessionStore {
	case "redis":
		redisClient, err := cache.NewRedisClient(cfg.Redis)
		if err != nil {
			appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		appLogger.Info("Successfully connected to Redis")
		cacheAdapter := adapter.NewRedisCacheAdapter(redisClient)
		sessionStore = service.NewRedisSessionStore(cacheAdapter, cfg.Quiz.SessionTTL)
	case "memory", "":
		sessionStore = service.NewMemorySessionStore(cfg.Quiz.SessionTTL)
	default:
		appLogger.Fatal("Unsupported session store", zap.String("store", cfg.Quiz.SessionStore))
	}

	// Research sources
	pubmedClient := research.NewPubMedClient(cfg.Research.PubMedBaseURL, cfg.Research.Timeout)
	cdcSource := research.NewCDCSource()
	nihSource := research.NewNIHSource()

	// Initialize services
	quizService := service.NewQuizService(questionRepo, sessionStore, cfg)
	topicService := service.NewTopicService(content.Topics(), content.Myths())
	researchService := service.NewResearchService(pubmedClient, cdcSource, nihSource, cfg)

	// Initialize handlers
	validator := validation.NewValidator(cfg.Quiz.MaxSessionSize)
	validationMiddleware := middleware.NewValidationMiddleware(validator)
	sessionHandler := handler.NewSessionHandler(quizService, validator)
	topicHandler := handler.NewTopicHandler(topicService)
	researchHandler := handler.NewResearchHandler(researchService, validator)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(requestLogger())
	app.Use(cors.New(cors.Config{AllowOrigins: "*", AllowMethods: "GET,POST,PUT,DELETE,OPTIONS", AllowHeaders: "Origin,Content-Type,Accept", MaxAge: 300}))
	app.Use(recover.New())

	// API group
	apiGroup := app.Group("/api")

	// Quiz session routes
	apiGroup.Post("/quiz/sessions", sessionHandler.StartSession)
	apiGroup.Get("/quiz/sessions/:sessionID", validationMiddleware.ValidateSessionID(), sessionHandler.GetSession)
	apiGroup.Post("/quiz/sessions/:sessionID/answers", validationMiddleware.ValidateSessionID(), sessionHandler.SubmitAnswer)
	apiGroup.Get("/quiz/sessions/:sessionID/summary", validationMiddleware.ValidateSessionID(), sessionHandler.GetSummary)
	apiGroup.Delete("/quiz/sessions/:sessionID", validationMiddleware.ValidateSessionID(), sessionHandler.EndSession)
	apiGroup.Get("/quiz/categories", sessionHandler.ListCategories)

	// Education content routes
	apiGroup.Get("/topics", topicHandler.ListTopics)
	apiGroup.Get("/topics/:topicID", topicHandler.GetTopic)
	apiGroup.Get("/myths", topicHandler.ListMyths)
	apiGroup.Get("/myths/:mythID", topicHandler.GetMyth)

	// Research routes
	apiGroup.Get("/research", researchHandler.Lookup)

	// Start server
	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", os.Getenv("ENV")))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		appLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
