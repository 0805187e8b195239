package main

import (
	"context"
	"time"

	"meetingrooms/internal/config"
	"meetingrooms/internal/database"
	"meetingrooms/internal/pkg/logger"
	"meetingrooms/internal/repository"
)

// Redis expires its sessions on its own; this only sweeps the database store.
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	log := logger.New(cfg.AppEnv, cfg.LogLevel)

	db, err := database.Connect(cfg.DatabaseURL, log)
	if err != nil {
		log.WithError(err).Fatal("db connect failed")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	n, err := repository.NewSessionRepository(db).DeleteExpired(ctx, time.Now())
	if err != nil {
		log.WithError(err).Fatal("cleanup sessions failed")
	}
	log.WithField("sessions", n).Info("session cleanup completed")
}
