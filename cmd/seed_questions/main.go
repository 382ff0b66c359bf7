package main

import (
	"fmt"
	"os"

	"healthquiz/internal/config"
	"healthquiz/internal/content"
	"healthquiz/internal/database"
	"healthquiz/internal/logger"
	"healthquiz/internal/repository"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// Seeds the SQLite question bank from the embedded question set. Safe to
// run repeatedly: a non-empty bank is left alone.
func main() {
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	log := logger.Get()

	log.Info("Starting question bank seeding", zap.String("path", cfg.Database.Path))
	db, err := database.NewSQLXSQLiteDB(cfg.Database.Path)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	adapter := repository.NewQuestionDatabaseAdapter(db)

	count, err := adapter.Count()
	if err != nil {
		log.Fatal("Failed to count existing questions", zap.Error(err))
	}
	if count > 0 {
		log.Info("Question bank already seeded, nothing to do", zap.Int("existing", count))
		return
	}

	seeded := 0
	for _, question := range content.Questions() {
		q := question
		if err := adapter.SaveQuestion(&q); err != nil {
			log.Fatal("Failed to save question",
				zap.String("id", q.ID),
				zap.Error(err))
		}
		seeded++
	}

	log.Info("Question bank seeded", zap.Int("questions", seeded))
}
