package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"food-ordering-api/auth"
	"food-ordering-api/models"
)

// Config holds runtime configuration sourced from env vars, read once at
// process startup.
type Config struct {
	Port        string
	DatabaseURL string
	JWTSecret   string
	TokenTTL    time.Duration
	Environment string
}

// Load reads configuration from the environment, filling in development
// defaults where values are missing.
func Load() Config {
	cfg := Config{
		Port:        getEnv("PORT", "8080"),
		DatabaseURL: getEnv("DATABASE_URL", "food_ordering.db"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		TokenTTL:    auth.DefaultTTL,
		Environment: getEnv("ENVIRONMENT", "development"),
	}

	if hours := os.Getenv("TOKEN_TTL_HOURS"); hours != "" {
		if n, err := strconv.Atoi(hours); err == nil && n > 0 {
			cfg.TokenTTL = time.Duration(n) * time.Hour
		} else {
			slog.Warn("invalid TOKEN_TTL_HOURS, using default", "value", hours)
		}
	}

	if cfg.JWTSecret == "" {
		slog.Warn("JWT_SECRET not set, using development default. Set JWT_SECRET in production!")
		cfg.JWTSecret = "food_ordering_dev_secret"
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// InitDB opens the database and migrates the schema. A failed migration is
// logged but does not abort startup, so the server can come up before the
// database is fully available.
func InitDB(cfg Config) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(cfg.DatabaseURL), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Restaurant{},
		&models.MenuItem{},
	); err != nil {
		slog.Warn("database migration failed, continuing without schema guarantee", "error", err)
	}

	return db, nil
}
