package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Logger   LoggerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Quiz     QuizConfig
	Research ResearchConfig
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type LoggerConfig struct {
	Level string
	Env   string
}

type DatabaseConfig struct {
	// Path is the SQLite database file holding the question bank.
	Path string
}

type RedisConfig struct {
	Address  string `yaml:"address"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type QuizConfig struct {
	// BankSource selects where the question bank is loaded from:
	// "embedded" (default) or "sqlite".
	BankSource string
	// DefaultSessionSize is used when a start request omits the size.
	DefaultSessionSize int
	MaxSessionSize     int
	// SessionStore selects where active sessions are parked: "memory"
	// (default) or "redis".
	SessionStore string
	SessionTTL   time.Duration
}

type ResearchConfig struct {
	PubMedBaseURL string
	Timeout       time.Duration
	MaxResults    int
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Add config paths based on environment
	if os.Getenv("ENV") == "test" {
		viper.AddConfigPath("../../config")
		viper.AddConfigPath("../../")
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath("./config")
	}

	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		// A missing config file is fine; defaults plus env cover everything.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	config := &Config{
		Server: ServerConfig{
			Port:         viper.GetInt("server.port"),
			ReadTimeout:  viper.GetDuration("server.read_timeout") * time.Second,
			WriteTimeout: viper.GetDuration("server.write_timeout") * time.Second,
			IdleTimeout:  viper.GetDuration("server.idle_timeout") * time.Second,
		},
		Logger: LoggerConfig{
			Level: viper.GetString("logger.level"),
			Env:   viper.GetString("logger.env"),
		},
		Database: DatabaseConfig{
			Path: viper.GetString("database.path"),
		},
		Redis: RedisConfig{
			Address:  viper.GetString("redis.address"),
			Password: viper.GetString("redis.password"),
			DB:       viper.GetInt("redis.db"),
		},
		Quiz: QuizConfig{
			BankSource:         viper.GetString("quiz.bank_source"),
			DefaultSessionSize: viper.GetInt("quiz.default_session_size"),
			MaxSessionSize:     viper.GetInt("quiz.max_session_size"),
			SessionStore:       viper.GetString("quiz.session_store"),
			SessionTTL:         viper.GetDuration("quiz.session_ttl") * time.Second,
		},
		Research: ResearchConfig{
			PubMedBaseURL: viper.GetString("research.pubmed_base_url"),
			Timeout:       viper.GetDuration("research.timeout") * time.Second,
			MaxResults:    viper.GetInt("research.max_results"),
		},
	}

	// Override with environment variables if set
	if port := os.Getenv("SERVER_PORT"); port != "" {
		viper.Set("server.port", port)
		config.Server.Port = viper.GetInt("server.port")
	}
	if env := os.Getenv("APP_ENV"); env != "" {
		config.Logger.Env = env
	}
	if dbPath := os.Getenv("DATABASE_PATH"); dbPath != "" {
		config.Database.Path = dbPath
	}
	if redisAddress := os.Getenv("REDIS_ADDRESS"); redisAddress != "" {
		config.Redis.Address = redisAddress
	}
	if redisPassword := os.Getenv("REDIS_PASSWORD"); redisPassword != "" {
		config.Redis.Password = redisPassword
	}
	if bankSource := os.Getenv("QUIZ_BANK_SOURCE"); bankSource != "" {
		config.Quiz.BankSource = bankSource
	}
	if sessionStore := os.Getenv("QUIZ_SESSION_STORE"); sessionStore != "" {
		config.Quiz.SessionStore = sessionStore
	}

	return config, nil
}

func setDefaults() {
	viper.SetDefault("server.port", 8090)
	viper.SetDefault("server.read_timeout", 20)
	viper.SetDefault("server.write_timeout", 20)
	viper.SetDefault("server.idle_timeout", 20)
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.env", "development")
	viper.SetDefault("database.path", "healthquiz.db")
	viper.SetDefault("redis.address", "")
	viper.SetDefault("redis.db", 0)
	viper.SetDefault("quiz.bank_source", "embedded")
	viper.SetDefault("quiz.default_session_size", 10)
	viper.SetDefault("quiz.max_session_size", 50)
	viper.SetDefault("quiz.session_store", "memory")
	viper.SetDefault("quiz.session_ttl", 3600)
	viper.SetDefault("research.pubmed_base_url", "https://eutils.ncbi.nlm.nih.gov/entrez/eutils")
	viper.SetDefault("research.timeout", 10)
	viper.SetDefault("research.max_results", 5)
}
