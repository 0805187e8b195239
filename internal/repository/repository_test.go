package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"meetingrooms/internal/database"
	"meetingrooms/internal/domain"
	"meetingrooms/internal/pkg/logger"
	"meetingrooms/internal/session"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:repo_%s?mode=memory&cache=shared", uuid.NewString())
	db, err := database.Connect(dsn, logger.Discard())
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func at(hour, minute int) time.Time {
	return time.Date(2026, 3, 2, hour, minute, 0, 0, time.UTC)
}

func seedRoomAndUser(t *testing.T, db *gorm.DB) (*domain.Room, *domain.User) {
	t.Helper()
	ctx := context.Background()

	room := domain.NewRoom(domain.RoomFields{Name: "Room A", Capacity: 10, Location: "Floor 1", Equipment: []string{"tv"}})
	require.NoError(t, NewRoomRepository(db).Create(ctx, room))

	u, err := domain.NewUser("alice", "alice@example.com", "secret1", domain.RoleUser)
	require.NoError(t, err)
	require.NoError(t, NewUserRepository(db).Create(ctx, u))
	return room, u
}

func TestBookingRepository_Exclusive(t *testing.T) {
	db := setupDB(t)
	room, user := seedRoomAndUser(t, db)
	repo := NewBookingRepository(db)
	ctx := context.Background()

	first := domain.NewBooking(user.ID, room.ID, "first", at(9, 0), at(10, 0))
	require.NoError(t, repo.CreateExclusive(ctx, first))

	overlap := domain.NewBooking(user.ID, room.ID, "overlap", at(9, 30), at(10, 30))
	assert.ErrorIs(t, repo.CreateExclusive(ctx, overlap), ErrOverlap)

	touching := domain.NewBooking(user.ID, room.ID, "touching", at(10, 0), at(11, 0))
	require.NoError(t, repo.CreateExclusive(ctx, touching))

	conflict, err := repo.HasConflict(ctx, room.ID, at(9, 0), at(10, 0), first.ID)
	require.NoError(t, err)
	assert.False(t, conflict)

	conflicts, err := repo.FindConflicts(ctx, room.ID, at(9, 45), at(10, 15), "")
	require.NoError(t, err)
	require.Len(t, conflicts, 2)
	assert.Equal(t, first.ID, conflicts[0].ID)

	require.NoError(t, repo.Delete(ctx, first.ID))
	conflict, err = repo.HasConflict(ctx, room.ID, at(9, 0), at(10, 0), "")
	require.NoError(t, err)
	assert.False(t, conflict)

	assert.ErrorIs(t, repo.Delete(ctx, first.ID), gorm.ErrRecordNotFound)
}

func TestBookingRepository_ConcurrentOverlapsAdmitOne(t *testing.T) {
	db := setupDB(t)
	room, user := seedRoomAndUser(t, db)
	repo := NewBookingRepository(db)
	ctx := context.Background()

	const n = 20
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		ok      int
		overlap int
		other   []error
	)
	start := make(chan struct{})
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			// Every interval covers 09:20-10:00, so at most one fits.
			b := domain.NewBooking(user.ID, room.ID, fmt.Sprintf("b%d", i), at(9, i), at(10, i))
			err := repo.CreateExclusive(ctx, b)

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				ok++
			case errors.Is(err, ErrOverlap):
				overlap++
			default:
				other = append(other, err)
			}
		}(i)
	}
	close(start)
	wg.Wait()

	assert.Empty(t, other)
	assert.Equal(t, 1, ok)
	assert.Equal(t, n-1, overlap)

	var stored int64
	require.NoError(t, db.Model(&domain.Booking{}).Where("room_id = ?", room.ID).Count(&stored).Error)
	assert.Equal(t, int64(1), stored)
}

func TestBookingRepository_CreateForMissingRoom(t *testing.T) {
	db := setupDB(t)
	_, user := seedRoomAndUser(t, db)

	b := domain.NewBooking(user.ID, "no-such-room", "x", at(9, 0), at(10, 0))
	assert.ErrorIs(t, NewBookingRepository(db).CreateExclusive(context.Background(), b), gorm.ErrRecordNotFound)
}

func TestBookingRepository_UpdateExclusive(t *testing.T) {
	db := setupDB(t)
	room, user := seedRoomAndUser(t, db)
	repo := NewBookingRepository(db)
	ctx := context.Background()

	a := domain.NewBooking(user.ID, room.ID, "a", at(9, 0), at(10, 0))
	b := domain.NewBooking(user.ID, room.ID, "b", at(11, 0), at(12, 0))
	require.NoError(t, repo.CreateExclusive(ctx, a))
	require.NoError(t, repo.CreateExclusive(ctx, b))

	// moving within its own slot is not a conflict with itself
	a.EndTime = at(10, 30)
	require.NoError(t, repo.UpdateExclusive(ctx, a))

	a.EndTime = at(11, 30)
	assert.ErrorIs(t, repo.UpdateExclusive(ctx, a), ErrOverlap)

	got, err := repo.GetByID(ctx, a.ID)
	require.NoError(t, err)
	assert.True(t, got.EndTime.Equal(at(10, 30)))
}

func TestBookingRepository_Views(t *testing.T) {
	db := setupDB(t)
	room, user := seedRoomAndUser(t, db)
	repo := NewBookingRepository(db)
	ctx := context.Background()

	for i := 0; i < 12; i++ {
		b := domain.NewBooking(user.ID, room.ID, fmt.Sprintf("b%d", i), at(8+i, 0), at(8+i, 30))
		require.NoError(t, repo.CreateExclusive(ctx, b))
	}

	mine, err := repo.ListByUser(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, mine, 12)
	assert.Equal(t, "b11", mine[0].Title)
	require.NotNil(t, mine[0].Room)
	assert.Equal(t, "Room A", mine[0].Room.Name)
	assert.Equal(t, 10, mine[0].Room.Capacity)
	assert.Nil(t, mine[0].User)

	recent, err := repo.ListRecent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, recent, 10)
	require.NotNil(t, recent[0].User)
	assert.Equal(t, "alice", recent[0].User.Username)
	assert.Equal(t, "Floor 1", recent[0].Room.Location)
	assert.Zero(t, recent[0].Room.Capacity)

	n, err := repo.CountStartingBetween(ctx, at(0, 0), at(12, 0))
	require.NoError(t, err)
	assert.Equal(t, int64(4), n)

	view, err := repo.GetView(ctx, mine[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", view.User.Email)

	_, err = repo.GetView(ctx, "missing")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRoomRepository_DeleteCascades(t *testing.T) {
	db := setupDB(t)
	room, user := seedRoomAndUser(t, db)
	ctx := context.Background()
	bookings := NewBookingRepository(db)
	require.NoError(t, bookings.CreateExclusive(ctx, domain.NewBooking(user.ID, room.ID, "x", at(9, 0), at(10, 0))))

	rooms := NewRoomRepository(db)
	require.NoError(t, rooms.Delete(ctx, room.ID))

	n, err := bookings.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.ErrorIs(t, rooms.Delete(ctx, room.ID), gorm.ErrRecordNotFound)
}

func TestRoomRepository_RoundTripAndUniqueness(t *testing.T) {
	db := setupDB(t)
	room, _ := seedRoomAndUser(t, db)
	rooms := NewRoomRepository(db)
	ctx := context.Background()

	got, err := rooms.GetByID(ctx, room.ID)
	require.NoError(t, err)
	assert.Equal(t, room.Name, got.Name)
	assert.Equal(t, []string{"tv"}, got.Equipment)

	taken, err := rooms.NameTaken(ctx, "Room A", "")
	require.NoError(t, err)
	assert.True(t, taken)
	taken, err = rooms.NameTaken(ctx, "Room A", room.ID)
	require.NoError(t, err)
	assert.False(t, taken)

	dup := domain.NewRoom(domain.RoomFields{Name: "Room A", Capacity: 2, Location: "x"})
	assert.ErrorIs(t, rooms.Create(ctx, dup), ErrDuplicate)
}

func TestUserRepository_DeleteCascadesAndLookup(t *testing.T) {
	db := setupDB(t)
	room, user := seedRoomAndUser(t, db)
	ctx := context.Background()
	users := NewUserRepository(db)
	sessions := NewSessionRepository(db)
	bookings := NewBookingRepository(db)

	got, err := users.GetByEmail(ctx, "ALICE@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	taken, err := users.FindTaken(ctx, "someone", "Alice@Example.com", "")
	require.NoError(t, err)
	require.NotNil(t, taken)
	taken, err = users.FindTaken(ctx, "alice", "x@example.com", user.ID)
	require.NoError(t, err)
	assert.Nil(t, taken)

	require.NoError(t, bookings.CreateExclusive(ctx, domain.NewBooking(user.ID, room.ID, "x", at(9, 0), at(10, 0))))
	require.NoError(t, sessions.Save(ctx, &domain.Session{ID: "s1", UserID: user.ID, ExpiresAt: time.Now().Add(time.Hour)}))

	require.NoError(t, users.Delete(ctx, user.ID))

	n, err := bookings.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
	_, err = sessions.Get(ctx, "s1")
	assert.ErrorIs(t, err, session.ErrNotFound)
	assert.ErrorIs(t, users.Delete(ctx, user.ID), gorm.ErrRecordNotFound)
}

func TestSessionRepository_DeleteExpired(t *testing.T) {
	db := setupDB(t)
	repo := NewSessionRepository(db)
	ctx := context.Background()
	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Save(ctx, &domain.Session{ID: "old", UserID: "u", ExpiresAt: now.Add(-time.Hour)}))
	require.NoError(t, repo.Save(ctx, &domain.Session{ID: "live", UserID: "u", ExpiresAt: now.Add(time.Hour)}))

	n, err := repo.DeleteExpired(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	_, err = repo.Get(ctx, "live")
	assert.NoError(t, err)
	require.NoError(t, repo.DeleteByUser(ctx, "u"))
	_, err = repo.Get(ctx, "live")
	assert.ErrorIs(t, err, session.ErrNotFound)
}
