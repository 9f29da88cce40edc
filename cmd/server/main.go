package main

import (
	"net/http"
	"time"

	"github.com/Snehagupta00/TrueGrit/config"
	"github.com/Snehagupta00/TrueGrit/database"
	"github.com/Snehagupta00/TrueGrit/logger"
	"github.com/Snehagupta00/TrueGrit/routes"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	logger.Init()
	defer logger.Close()

	if err := godotenv.Load(); err != nil {
		logger.Warn("No .env file found, using system env vars")
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("invalid configuration", zap.Error(err))
	}

	db, err := database.Connect(cfg)
	if err != nil {
		logger.Fatal("database connection failed", zap.Error(err))
	}
	defer database.Close(db)

	r := routes.SetupRouter(cfg, db)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.Info("server starting", zap.String("port", cfg.Port), zap.String("env", cfg.Env))
	if err := srv.ListenAndServe(); err != nil {
		logger.Fatal("server failed", zap.Error(err))
	}
}
