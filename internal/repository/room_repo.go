package repository

import (
	"context"

	"meetingrooms/internal/domain"

	"gorm.io/gorm"
)

type RoomRepository struct {
	db *gorm.DB
}

func NewRoomRepository(db *gorm.DB) *RoomRepository {
	return &RoomRepository{db: db}
}

func (r *RoomRepository) Create(ctx context.Context, room *domain.Room) error {
	return translate(r.db.WithContext(ctx).Create(room).Error)
}

func (r *RoomRepository) GetByID(ctx context.Context, id string) (*domain.Room, error) {
	var room domain.Room
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&room).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

// NameTaken reports whether a room other than excludeID uses name.
func (r *RoomRepository) NameTaken(ctx context.Context, name, excludeID string) (bool, error) {
	q := r.db.WithContext(ctx).Model(&domain.Room{}).Where("name = ?", name)
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}
	var n int64
	if err := q.Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *RoomRepository) List(ctx context.Context) ([]domain.Room, error) {
	var rooms []domain.Room
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&rooms).Error; err != nil {
		return nil, err
	}
	return rooms, nil
}

func (r *RoomRepository) Update(ctx context.Context, room *domain.Room) error {
	return translate(r.db.WithContext(ctx).Save(room).Error)
}

// Delete removes the room and every booking made for it.
func (r *RoomRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("room_id = ?", id).Delete(&domain.Booking{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&domain.Room{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *RoomRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&domain.Room{}).Count(&n).Error
	return n, err
}
