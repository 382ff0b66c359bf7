package main

import (
	"flag"
	"log"

	"healthquiz/internal/config"
	"healthquiz/internal/database"
	"healthquiz/internal/logger"

	"github.com/joho/godotenv"
)

func main() {
	migrationsDir := flag.String("dir", "database/migrations", "directory holding .up.sql files")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Logger)
	l := logger.Get()
	defer l.Sync()

	db, err := database.NewMigrateSQLiteDB(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := database.RunMigrations(db, *migrationsDir); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
}
