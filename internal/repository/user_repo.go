package repository

import (
	"context"

	"meetingrooms/internal/domain"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	return translate(r.db.WithContext(ctx).Create(u).Error)
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	var u domain.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var u domain.User
	err := r.db.WithContext(ctx).
		Where("LOWER(email) = ?", domain.NormalizeEmail(email)).
		First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// FindTaken returns a user other than excludeID that already holds the
// username or the (case-insensitive) email, or nil.
func (r *UserRepository) FindTaken(ctx context.Context, username, email, excludeID string) (*domain.User, error) {
	q := r.db.WithContext(ctx).
		Where("(username = ? OR LOWER(email) = ?)", username, domain.NormalizeEmail(email))
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}

	var users []domain.User
	if err := q.Limit(1).Find(&users).Error; err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, nil
	}
	return &users[0], nil
}

func (r *UserRepository) List(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserRepository) Update(ctx context.Context, u *domain.User) error {
	return translate(r.db.WithContext(ctx).Save(u).Error)
}

// Delete removes the user together with their bookings and sessions.
func (r *UserRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", id).Delete(&domain.Booking{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&domain.Session{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&domain.User{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&domain.User{}).Count(&n).Error
	return n, err
}
