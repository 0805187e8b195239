package database

import (
	"fmt"
	"strings"

	"meetingrooms/internal/domain"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"
)

// bookingsNoOverlap rejects overlapping [start, end) intervals for one room
// at the storage level, so two concurrent inserts cannot both succeed.
const bookingsNoOverlap = "bookings_no_overlap"

func IsPostgres(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}

func Connect(dsn string, log *logrus.Logger) (*gorm.DB, error) {
	cfg := &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)}

	if IsPostgres(dsn) {
		log.Info("connecting to PostgreSQL")
		return gorm.Open(postgres.Open(dsn), cfg)
	}

	log.WithField("dsn", dsn).Info("using SQLite")

	db, err := gorm.Open(
		gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite",
			DSN:        dsn,
		}),
		cfg,
	)
	if err != nil {
		return nil, err
	}

	// SQLite has no row locks. A single connection serializes every
	// transaction, which keeps the booking check-and-insert atomic.
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	return db, nil
}

// Migrate creates or updates the schema.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Room{},
		&domain.Booking{},
		&domain.Session{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	if db.Dialector.Name() == "postgres" {
		return migratePostgres(db)
	}
	return nil
}

func migratePostgres(db *gorm.DB) error {
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS btree_gist`).Error; err != nil {
		return fmt.Errorf("create btree_gist: %w", err)
	}

	var exists bool
	if err := db.Raw(`SELECT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = ?)`, bookingsNoOverlap).
		Scan(&exists).Error; err != nil {
		return err
	}
	if exists {
		return nil
	}

	q := fmt.Sprintf(`
ALTER TABLE bookings
  ADD CONSTRAINT %s
  EXCLUDE USING gist (room_id WITH =, tstzrange(start_time, end_time, '[)') WITH &&)`, bookingsNoOverlap)
	if err := db.Exec(q).Error; err != nil {
		return fmt.Errorf("add %s: %w", bookingsNoOverlap, err)
	}
	return nil
}
