package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser_HashesAndNormalizes(t *testing.T) {
	u, err := NewUser("  alice ", " Alice@Example.COM ", "secret123", "")
	require.NoError(t, err)

	assert.NotEmpty(t, u.ID)
	assert.Equal(t, "alice", u.Username)
	assert.Equal(t, "alice@example.com", u.Email)
	assert.Equal(t, RoleUser, u.Role)
	assert.NotEqual(t, "secret123", u.PasswordHash)

	ok, err := u.CheckPassword("secret123")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestUser_SetPasswordRehashes(t *testing.T) {
	u, err := NewUser("alice", "alice@example.com", "secret123", RoleAdmin)
	require.NoError(t, err)
	before := u.PasswordHash

	require.NoError(t, u.SetPassword("another1"))
	assert.NotEqual(t, before, u.PasswordHash)

	ok, _ := u.CheckPassword("secret123")
	assert.False(t, ok)
	ok, _ = u.CheckPassword("another1")
	assert.True(t, ok)
}

func TestBooking_OverlapsIsHalfOpen(t *testing.T) {
	day := time.Date(2026, 10, 14, 0, 0, 0, 0, time.UTC)
	b := &Booking{StartTime: day.Add(9 * time.Hour), EndTime: day.Add(10 * time.Hour)}

	assert.True(t, b.Overlaps(day.Add(9*time.Hour+30*time.Minute), day.Add(10*time.Hour+30*time.Minute)))
	assert.True(t, b.Overlaps(day.Add(8*time.Hour), day.Add(11*time.Hour)))
	assert.False(t, b.Overlaps(day.Add(10*time.Hour), day.Add(11*time.Hour)))
	assert.False(t, b.Overlaps(day.Add(8*time.Hour), day.Add(9*time.Hour)))
}

func TestRoom_ApplyDefaultsEquipment(t *testing.T) {
	r := NewRoom(RoomFields{Name: " A ", Capacity: 10, Location: "1F"})
	assert.Equal(t, "A", r.Name)
	assert.Equal(t, []string{}, r.Equipment)
}

func TestSession_Expired(t *testing.T) {
	now := time.Now()
	s := &Session{ExpiresAt: now}
	assert.True(t, s.Expired(now))
	assert.False(t, s.Expired(now.Add(-time.Second)))
}
