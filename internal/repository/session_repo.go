package repository

import (
	"context"
	"errors"
	"time"

	"meetingrooms/internal/domain"
	"meetingrooms/internal/session"

	"gorm.io/gorm"
)

// SessionRepository is the database-backed session.Store.
type SessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

func (r *SessionRepository) Save(ctx context.Context, s *domain.Session) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *SessionRepository) Get(ctx context.Context, id string) (*domain.Session, error) {
	var s domain.Session
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, session.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SessionRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Session{}).Error
}

func (r *SessionRepository) DeleteByUser(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&domain.Session{}).Error
}

// DeleteExpired removes sessions that expired before now.
func (r *SessionRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	res := r.db.WithContext(ctx).Where("expires_at <= ?", now.UTC()).Delete(&domain.Session{})
	return res.RowsAffected, res.Error
}
