package main

import (
	"os"
	"time"

	"invoicing-backend/internal/config"
	"invoicing-backend/internal/logger"
	"invoicing-backend/internal/models"
	"invoicing-backend/internal/routes"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// Load .env
	dotenvErr := godotenv.Load()

	log := logger.New(os.Getenv("APP_ENV"))
	defer log.Sync()

	if dotenvErr != nil {
		log.Info("no .env file found, relying on system env")
	}

	cfg := config.Load()
	db := config.InitDB(cfg, log)

	if db != nil {
		err := db.AutoMigrate(
			&models.Invoice{},
			&models.Client{},
			&models.UserProfile{},
			&models.User{},
		)
		if err != nil {
			log.Error("automigrate failed", zap.Error(err))
		}
	}

	r := gin.Default()
	r.LoadHTMLGlob("web/templates/*.html")

	// CORS config for the dev frontend
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r, db, cfg, log)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("server exited", zap.Error(err))
	}
}
