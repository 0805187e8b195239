package events

import (
	"sync"
	"time"

	"meetingrooms/internal/domain"
)

type Type string

const (
	BookingCreated   Type = "booking.created"
	BookingUpdated   Type = "booking.updated"
	BookingCancelled Type = "booking.cancelled"
)

type Event struct {
	Type    Type           `json:"type"`
	Booking domain.Booking `json:"booking"`
	At      time.Time      `json:"at"`
}

const defaultBuffer = 32

// Subscription receives events on C until it is cancelled or dropped.
// C is closed in both cases.
type Subscription struct {
	C    <-chan Event
	ch   chan Event
	hub  *Hub
	once sync.Once
}

// Cancel detaches the subscription from its hub.
func (s *Subscription) Cancel() {
	s.hub.remove(s)
}

func (s *Subscription) close() {
	s.once.Do(func() { close(s.ch) })
}

// Hub fans booking events out to websocket subscribers.
type Hub struct {
	subs   map[*Subscription]struct{}
	buffer int
	closed bool
	mutex  sync.RWMutex
}

func NewHub() *Hub {
	return NewHubWithBuffer(defaultBuffer)
}

func NewHubWithBuffer(buffer int) *Hub {
	if buffer < 1 {
		buffer = 1
	}
	return &Hub{
		subs:   make(map[*Subscription]struct{}),
		buffer: buffer,
	}
}

func (h *Hub) Subscribe() *Subscription {
	ch := make(chan Event, h.buffer)
	s := &Subscription{C: ch, ch: ch, hub: h}

	h.mutex.Lock()
	defer h.mutex.Unlock()

	if h.closed {
		s.close()
		return s
	}
	h.subs[s] = struct{}{}
	return s
}

func (h *Hub) remove(s *Subscription) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if _, ok := h.subs[s]; ok {
		delete(h.subs, s)
		s.close()
	}
}

// Publish never blocks. A subscriber whose buffer is full is dropped.
func (h *Hub) Publish(e Event) {
	if e.At.IsZero() {
		e.At = time.Now().UTC()
	}

	h.mutex.Lock()
	defer h.mutex.Unlock()

	for s := range h.subs {
		select {
		case s.ch <- e:
		default:
			delete(h.subs, s)
			s.close()
		}
	}
}

func (h *Hub) Count() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	return len(h.subs)
}

func (h *Hub) Close() {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	h.closed = true
	for s := range h.subs {
		s.close()
		delete(h.subs, s)
	}
}
