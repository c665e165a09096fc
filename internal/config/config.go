package config

import (
	"os"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Config carries the environment-backed settings.
type Config struct {
	Port           string
	DatabaseURL    string
	SessionSecret  string
	SenderEmail    string
	SenderPassword string
	AdminUsername  string
	AdminPassword  string
}

func Load() *Config {
	return &Config{
		Port:           getenv("PORT", "8080"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		SessionSecret:  getenv("SESSION_SECRET", "dev-secret-change-me"),
		SenderEmail:    os.Getenv("SENDER_EMAIL"),
		SenderPassword: os.Getenv("SENDER_PASSWORD"),
		AdminUsername:  getenv("ADMIN_USERNAME", "admin"),
		AdminPassword:  getenv("ADMIN_PASSWORD", "admin123"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// InitDB opens the backing store. A nil return is a valid degraded state:
// the repositories treat it as "store unavailable" and the app keeps serving
// with empty data.
func InitDB(cfg *Config, log *zap.Logger) *gorm.DB {
	if cfg.DatabaseURL == "" {
		log.Warn("DATABASE_URL not set, running without a backing store")
		return nil
	}
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		log.Error("connecting to database failed, running without a backing store", zap.Error(err))
		return nil
	}
	return db
}
