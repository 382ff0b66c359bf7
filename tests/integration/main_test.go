package integration

import (
	"fmt"
	"os"
	"testing"
	"time"

	"healthquiz/internal/config"
	"healthquiz/internal/content"
	"healthquiz/internal/handler"
	"healthquiz/internal/logger"
	"healthquiz/internal/middleware"
	"healthquiz/internal/repository"
	"healthquiz/internal/service"
	"healthquiz/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

var (
	app *fiber.App
	cfg *config.Config
)

// newTestApp wires the full API surface over the embedded question bank
// and an in-memory session store, the same way cmd/api does minus the
// network listeners and external services.
func newTestApp(cfg *config.Config) (*fiber.App, error) {
	questionRepo, err := repository.NewEmbeddedBank(content.Questions())
	if err != nil {
		return nil, err
	}
	sessionStore := service.NewMemorySessionStore(cfg.Quiz.SessionTTL)

	quizService := service.NewQuizService(questionRepo, sessionStore, cfg)
	topicService := service.NewTopicService(content.Topics(), content.Myths())

	validator := validation.NewValidator(cfg.Quiz.MaxSessionSize)
	validationMiddleware := middleware.NewValidationMiddleware(validator)
	sessionHandler := handler.NewSessionHandler(quizService, validator)
	topicHandler := handler.NewTopicHandler(topicService)

	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler(),
	})
	app.Use(recover.New())

	apiGroup := app.Group("/api")
	apiGroup.Post("/quiz/sessions", sessionHandler.StartSession)
	apiGroup.Get("/quiz/sessions/:sessionID", validationMiddleware.ValidateSessionID(), sessionHandler.GetSession)
	apiGroup.Post("/quiz/sessions/:sessionID/answers", validationMiddleware.ValidateSessionID(), sessionHandler.SubmitAnswer)
	apiGroup.Get("/quiz/sessions/:sessionID/summary", validationMiddleware.ValidateSessionID(), sessionHandler.GetSummary)
	apiGroup.Delete("/quiz/sessions/:sessionID", validationMiddleware.ValidateSessionID(), sessionHandler.EndSession)
	apiGroup.Get("/quiz/categories", sessionHandler.ListCategories)
	apiGroup.Get("/topics", topicHandler.ListTopics)
	apiGroup.Get("/topics/:topicID", topicHandler.GetTopic)
	apiGroup.Get("/myths", topicHandler.ListMyths)
	apiGroup.Get("/myths/:mythID", topicHandler.GetMyth)

	return app, nil
}

func TestMain(m *testing.M) {
	cfg = &config.Config{
		Logger: config.LoggerConfig{Level: "info", Env: "test"},
		Quiz: config.QuizConfig{
			DefaultSessionSize: 5,
			MaxSessionSize:     50,
			SessionTTL:         time.Hour,
		},
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Sync()

	var err error
	app, err = newTestApp(cfg)
	if err != nil {
		logger.Get().Fatal("Failed to build test app", zap.Error(err))
	}

	os.Exit(m.Run())
}
