package main

import (
	"context"

	"meetingrooms/internal/config"
	"meetingrooms/internal/database"
	"meetingrooms/internal/domain"
	"meetingrooms/internal/pkg/logger"
	"meetingrooms/internal/repository"
)

var rooms = []domain.RoomFields{
	{
		Name:        "Meeting Room A",
		Capacity:    10,
		Location:    "Floor 1",
		WiFi:        true,
		Projector:   true,
		Equipment:   []string{"wifi", "projector"},
		Description: "Small meeting room for 10 people with WiFi and a projector",
	},
	{
		Name:        "Meeting Room B",
		Capacity:    20,
		Location:    "Floor 2",
		WiFi:        true,
		Projector:   true,
		Equipment:   []string{"wifi", "projector"},
		Description: "Medium meeting room for 20 people with WiFi and a projector",
	},
	{
		Name:        "Meeting Room C",
		Capacity:    5,
		Location:    "Floor 1",
		WiFi:        true,
		Equipment:   []string{"wifi"},
		Description: "Small meeting room for 5 people with WiFi",
	},
	{
		Name:        "Meeting Room D",
		Capacity:    15,
		Location:    "Floor 3",
		WiFi:        true,
		Projector:   true,
		Equipment:   []string{"wifi", "projector"},
		Description: "Medium meeting room for 15 people with WiFi and a projector",
	},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	log := logger.New(cfg.AppEnv, cfg.LogLevel)

	db, err := database.Connect(cfg.DatabaseURL, log)
	if err != nil {
		log.WithError(err).Fatal("DB connection failed")
	}

	log.Info("running migrations")
	if err := database.Migrate(db); err != nil {
		log.WithError(err).Fatal("migrate failed")
	}

	log.Info("cleaning old data")
	for _, table := range []string{"sessions", "bookings", "rooms", "users"} {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			log.WithError(err).WithField("table", table).Fatal("cleanup failed")
		}
	}

	ctx := context.Background()

	roomRepo := repository.NewRoomRepository(db)
	for _, f := range rooms {
		room := domain.NewRoom(f)
		if err := roomRepo.Create(ctx, room); err != nil {
			log.WithError(err).WithField("room", f.Name).Fatal("create room failed")
		}
	}
	log.WithField("count", len(rooms)).Info("rooms created")

	admin, err := domain.NewUser("admin", "admin@example.com", "admin123", domain.RoleAdmin)
	if err != nil {
		log.WithError(err).Fatal("hash admin password failed")
	}
	if err := repository.NewUserRepository(db).Create(ctx, admin); err != nil {
		log.WithError(err).Fatal("create admin failed")
	}
	log.Info("admin created: admin@example.com / admin123")
}
