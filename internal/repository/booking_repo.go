package repository

import (
	"context"
	"time"

	"meetingrooms/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

// bookingRow is one booking joined with its room and user columns.
type bookingRow struct {
	ID           string
	Title        string
	RoomID       string
	UserID       string
	StartTime    time.Time
	EndTime      time.Time
	CreatedAt    time.Time
	RoomName     *string
	RoomCapacity *int
	RoomLocation *string
	Username     *string
	UserEmail    *string
}

const bookingRowSelect = `bookings.id, bookings.title, bookings.room_id, bookings.user_id,
bookings.start_time, bookings.end_time, bookings.created_at,
rooms.name AS room_name, rooms.capacity AS room_capacity, rooms.location AS room_location,
users.username AS username, users.email AS user_email`

func (r bookingRow) view(withCapacity, withUser bool) domain.BookingView {
	v := domain.BookingView{Booking: domain.Booking{
		ID:        r.ID,
		Title:     r.Title,
		RoomID:    r.RoomID,
		UserID:    r.UserID,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
		CreatedAt: r.CreatedAt,
	}}
	if r.RoomName != nil {
		v.Room = &domain.BookingRoom{ID: r.RoomID, Name: *r.RoomName}
		if r.RoomLocation != nil {
			v.Room.Location = *r.RoomLocation
		}
		if withCapacity && r.RoomCapacity != nil {
			v.Room.Capacity = *r.RoomCapacity
		}
	}
	if withUser && r.Username != nil {
		v.User = &domain.BookingUser{ID: r.UserID, Username: *r.Username}
		if r.UserEmail != nil {
			v.User.Email = *r.UserEmail
		}
	}
	return v
}

func (r *BookingRepository) joined(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("bookings").
		Select(bookingRowSelect).
		Joins("LEFT JOIN rooms ON rooms.id = bookings.room_id").
		Joins("LEFT JOIN users ON users.id = bookings.user_id")
}

func (r *BookingRepository) scanViews(q *gorm.DB, withCapacity, withUser bool) ([]domain.BookingView, error) {
	var rows []bookingRow
	if err := q.Scan(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]domain.BookingView, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.view(withCapacity, withUser))
	}
	return out, nil
}

func overlapping(q *gorm.DB, roomID string, start, end time.Time, excludeID string) *gorm.DB {
	q = q.Where("room_id = ? AND start_time < ? AND end_time > ?", roomID, end, start)
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}
	return q
}

// HasConflict reports whether a booking of roomID other than excludeID
// intersects [start, end).
func (r *BookingRepository) HasConflict(ctx context.Context, roomID string, start, end time.Time, excludeID string) (bool, error) {
	return hasConflict(r.db.WithContext(ctx), roomID, start, end, excludeID)
}

func hasConflict(db *gorm.DB, roomID string, start, end time.Time, excludeID string) (bool, error) {
	var n int64
	if err := overlapping(db.Model(&domain.Booking{}), roomID, start, end, excludeID).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

// FindConflicts lists the bookings of roomID that intersect [start, end).
func (r *BookingRepository) FindConflicts(ctx context.Context, roomID string, start, end time.Time, excludeID string) ([]domain.Booking, error) {
	var out []domain.Booking
	err := overlapping(r.db.WithContext(ctx), roomID, start, end, excludeID).
		Order("start_time ASC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

// lockRoom takes a row lock on the room so that concurrent writers for the
// same room queue behind each other. It fails with gorm.ErrRecordNotFound
// when the room is gone.
func lockRoom(tx *gorm.DB, roomID string) error {
	var room domain.Room
	return tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Select("id").
		Where("id = ?", roomID).
		First(&room).Error
}

// CreateExclusive inserts b unless it overlaps another booking of its room.
// The overlap check and the insert share one transaction.
func (r *BookingRepository) CreateExclusive(ctx context.Context, b *domain.Booking) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockRoom(tx, b.RoomID); err != nil {
			return err
		}
		conflict, err := hasConflict(tx, b.RoomID, b.StartTime, b.EndTime, "")
		if err != nil {
			return err
		}
		if conflict {
			return ErrOverlap
		}
		return tx.Create(b).Error
	})
	return translate(err)
}

// UpdateExclusive saves b unless its new interval overlaps another booking.
func (r *BookingRepository) UpdateExclusive(ctx context.Context, b *domain.Booking) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockRoom(tx, b.RoomID); err != nil {
			return err
		}
		conflict, err := hasConflict(tx, b.RoomID, b.StartTime, b.EndTime, b.ID)
		if err != nil {
			return err
		}
		if conflict {
			return ErrOverlap
		}
		res := tx.Model(&domain.Booking{}).Where("id = ?", b.ID).Updates(map[string]any{
			"title":      b.Title,
			"room_id":    b.RoomID,
			"user_id":    b.UserID,
			"start_time": b.StartTime,
			"end_time":   b.EndTime,
		})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	return translate(err)
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	var b domain.Booking
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&b).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

// GetView returns one booking with room and user.
func (r *BookingRepository) GetView(ctx context.Context, id string) (*domain.BookingView, error) {
	views, err := r.scanViews(r.joined(ctx).Where("bookings.id = ?", id), true, true)
	if err != nil {
		return nil, err
	}
	if len(views) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &views[0], nil
}

func (r *BookingRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Booking{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ListByUser returns the user's bookings, latest start first, with room
// id, name, capacity and location.
func (r *BookingRepository) ListByUser(ctx context.Context, userID string) ([]domain.BookingView, error) {
	q := r.joined(ctx).
		Where("bookings.user_id = ?", userID).
		Order("bookings.start_time DESC")
	return r.scanViews(q, true, false)
}

// ListAll returns every booking with room and user, latest start first.
func (r *BookingRepository) ListAll(ctx context.Context) ([]domain.BookingView, error) {
	return r.scanViews(r.joined(ctx).Order("bookings.start_time DESC"), true, true)
}

// ListRecent returns the limit latest bookings by start time with room
// id, name and location and user id, username and email.
func (r *BookingRepository) ListRecent(ctx context.Context, limit int) ([]domain.BookingView, error) {
	q := r.joined(ctx).Order("bookings.start_time DESC").Limit(limit)
	return r.scanViews(q, false, true)
}

func (r *BookingRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&domain.Booking{}).Count(&n).Error
	return n, err
}

// CountStartingBetween counts bookings with from <= start_time < to.
func (r *BookingRepository) CountStartingBetween(ctx context.Context, from, to time.Time) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&domain.Booking{}).
		Where("start_time >= ? AND start_time < ?", from, to).
		Count(&n).Error
	return n, err
}
