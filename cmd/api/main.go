package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"meetingrooms/internal/config"
	"meetingrooms/internal/database"
	"meetingrooms/internal/modules/events"
	"meetingrooms/internal/pkg/jwt"
	"meetingrooms/internal/pkg/logger"
	"meetingrooms/internal/pkg/response"
	"meetingrooms/internal/pkg/validator"
	"meetingrooms/internal/repository"
	"meetingrooms/internal/server"
	"meetingrooms/internal/session"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New(cfg.AppEnv, cfg.LogLevel)
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	response.ExposeInternalErrors(!cfg.IsProduction())
	validator.UseJSONNames()

	db, err := database.Connect(cfg.DatabaseURL, log)
	if err != nil {
		log.WithError(err).Fatal("db connect failed")
	}
	if err := database.Migrate(db); err != nil {
		log.WithError(err).Fatal("migrate failed")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var store session.Store = repository.NewSessionRepository(db)
	if cfg.RedisAddr != "" {
		rdb, err := session.ConnectRedis(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			log.WithError(err).Fatal("redis connect failed")
		}
		defer rdb.Close()
		store = session.NewRedisStore(rdb)
		log.WithField("addr", cfg.RedisAddr).Info("sessions stored in Redis")
	}

	sessions := session.NewManager(store, jwt.New(cfg.SessionSecret), cfg.SessionTTL, session.CookieConfig{
		Name:     cfg.CookieName,
		Path:     cfg.CookiePath,
		Secure:   cfg.CookieSecure,
		SameSite: session.ParseSameSite(cfg.CookieSameSite),
	})

	hub := events.NewHub()
	defer hub.Close()

	handler := server.NewRouter(server.Deps{
		DB:          db,
		Sessions:    sessions,
		Hub:         hub,
		Log:         log,
		Location:    cfg.Location,
		CORSOrigins: cfg.CORSOrigins,
	})

	srv := server.New(cfg.Addr(), handler, log, cfg.ShutdownTimeout)
	if err := srv.Run(ctx); err != nil {
		log.WithError(err).Fatal("server failed")
	}
	log.Info("server stopped")
}
