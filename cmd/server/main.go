package main

import (
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"brasiliaimoveis/server/config"
	"brasiliaimoveis/server/internal/api"
	"brasiliaimoveis/server/internal/database"
	"brasiliaimoveis/server/internal/notify"
	"brasiliaimoveis/server/internal/storage"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)

	// Load .env when present; real deployments set the environment directly
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logger.WithError(err).Warn("Failed to load .env file")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.WithError(err).Fatal("Failed to load configuration")
	}

	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0o755); err != nil {
		logger.WithError(err).Fatal("Failed to create database directory")
	}
	logger.Infof("Using database at: %s", cfg.DBPath)

	db, err := database.NewDatabase(cfg.DBPath)
	if err != nil {
		logger.WithError(err).Fatal("Failed to initialize database")
	}
	defer db.Close()

	logger.Info("Running database migrations...")
	if err := db.RunMigrations(); err != nil {
		logger.WithError(err).Fatal("Failed to run database migrations")
	}

	if err := os.MkdirAll(cfg.StorageDir, 0o755); err != nil {
		logger.WithError(err).Fatal("Failed to create storage directory")
	}
	store := storage.NewImageStore(cfg.StorageDir, cfg.PublicBaseURL, logger)

	notifier := notify.NewService(cfg.TelegramBotToken, cfg.TelegramChatID, logger)
	if notifier.Enabled() {
		logger.Info("Telegram lead notifications enabled")
	}
	notifier.Start()
	defer notifier.Stop()

	router := gin.New()
	router.Use(gin.Recovery())
	api.SetupRoutes(router, db, store, notifier, cfg, logger)

	logger.Infof("Starting server on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.WithError(err).Fatal("Server failed to start")
	}
}
