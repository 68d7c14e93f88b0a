package main

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"food-ordering-api/auth"
	"food-ordering-api/config"
	"food-ordering-api/handlers"
	"food-ordering-api/logging"
	"food-ordering-api/middleware"
	"food-ordering-api/routes"
	"food-ordering-api/store"
)

func main() {
	// No .env is fine; rely on the process environment.
	_ = godotenv.Load()

	logging.Setup()

	if mode := os.Getenv("GIN_MODE"); mode == "" {
		gin.SetMode(gin.DebugMode)
	}

	cfg := config.Load()

	db, err := config.InitDB(cfg)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	userStore := store.NewUserStore(db)
	catalog := store.NewCatalogStore(db)
	tokens := auth.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger())

	// CORS middleware for frontend integration
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	r.GET("/health", healthCheck(db, cfg))

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "UP",
			"message":   "Food Ordering Backend is running",
			"timestamp": time.Now().Unix(),
		})
	})

	routes.SetupRoutes(r,
		handlers.NewUserHandler(userStore, tokens),
		handlers.NewRestaurantHandler(catalog),
		handlers.NewMenuHandler(catalog),
		tokens,
	)

	slog.Info("server listening", "port", cfg.Port, "environment", cfg.Environment)
	if err := r.Run(":" + cfg.Port); err != nil {
		slog.Error("failed to start server", "error", err)
		os.Exit(1)
	}
}

// healthCheck reports service status along with a live database probe.
func healthCheck(db *gorm.DB, cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		dbStatus := "UP"
		if sqlDB, err := db.DB(); err != nil {
			dbStatus = "DOWN: " + err.Error()
		} else if err := sqlDB.Ping(); err != nil {
			dbStatus = "DOWN: " + err.Error()
		}

		c.JSON(http.StatusOK, gin.H{
			"status":      "UP",
			"service":     "Food Ordering Backend",
			"database":    dbStatus,
			"environment": cfg.Environment,
			"timestamp":   time.Now().Unix(),
			"version":     "1.0.0",
		})
	}
}
