package events

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"meetingrooms/internal/domain"
	"meetingrooms/internal/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHub_PublishReachesSubscribers(t *testing.T) {
	hub := NewHub()
	a, b := hub.Subscribe(), hub.Subscribe()
	require.Equal(t, 2, hub.Count())

	hub.Publish(Event{Type: BookingCreated, Booking: domain.Booking{ID: "b1"}})

	for _, s := range []*Subscription{a, b} {
		e := <-s.C
		assert.Equal(t, BookingCreated, e.Type)
		assert.Equal(t, "b1", e.Booking.ID)
		assert.False(t, e.At.IsZero())
	}
}

func TestHub_SlowSubscriberIsDropped(t *testing.T) {
	hub := NewHubWithBuffer(1)
	slow := hub.Subscribe()

	hub.Publish(Event{Type: BookingCreated})
	hub.Publish(Event{Type: BookingCancelled})

	assert.Equal(t, 0, hub.Count())

	e, ok := <-slow.C
	require.True(t, ok)
	assert.Equal(t, BookingCreated, e.Type)
	_, ok = <-slow.C
	assert.False(t, ok)
}

func TestHub_CancelAndClose(t *testing.T) {
	hub := NewHub()
	s := hub.Subscribe()
	s.Cancel()
	s.Cancel()
	assert.Equal(t, 0, hub.Count())

	other := hub.Subscribe()
	hub.Close()
	_, ok := <-other.C
	assert.False(t, ok)

	late := hub.Subscribe()
	_, ok = <-late.C
	assert.False(t, ok)
	assert.Equal(t, 0, hub.Count())
}

func TestHandler_StreamWritesEvents(t *testing.T) {
	gin.SetMode(gin.TestMode)

	hub := NewHub()
	defer hub.Close()

	r := gin.New()
	NewHandler(hub, logger.Discard(), nil).RegisterRoutes(r.Group("/api/admin"))

	srv := httptest.NewServer(r)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/admin/events"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool { return hub.Count() == 1 }, time.Second, 10*time.Millisecond)

	hub.Publish(Event{Type: BookingUpdated, Booking: domain.Booking{ID: "b2", Title: "Standup"}})

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var got Event
	require.NoError(t, conn.ReadJSON(&got))
	assert.Equal(t, BookingUpdated, got.Type)
	assert.Equal(t, "Standup", got.Booking.Title)

	require.NoError(t, conn.Close())
	assert.Eventually(t, func() bool { return hub.Count() == 0 }, time.Second, 10*time.Millisecond)
}
