package repository

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	// ErrOverlap means the booking interval intersects another booking of
	// the same room.
	ErrOverlap = errors.New("booking overlaps an existing booking")
	// ErrDuplicate means a unique column already holds the value.
	ErrDuplicate = errors.New("duplicate value")
)

const (
	pgUniqueViolation    = "23505"
	pgExclusionViolation = "23P01"
)

// translate maps driver errors onto the package's sentinel errors.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrOverlap) || errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgExclusionViolation:
			return ErrOverlap
		case pgUniqueViolation:
			return ErrDuplicate
		}
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return ErrDuplicate
	}
	return err
}
