package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Room struct {
	ID          string    `json:"id" gorm:"type:varchar(36);primaryKey"`
	Name        string    `json:"name" gorm:"uniqueIndex;not null"`
	Capacity    int       `json:"capacity" gorm:"not null"`
	Location    string    `json:"location" gorm:"not null"`
	WiFi        bool      `json:"wifi" gorm:"column:wifi;not null;default:false"`
	Projector   bool      `json:"projector" gorm:"not null;default:false"`
	Equipment   []string  `json:"equipment" gorm:"serializer:json;type:text"`
	Description string    `json:"description" gorm:"type:text"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// RoomFields are the writable attributes of a room.
type RoomFields struct {
	Name        string
	Capacity    int
	Location    string
	WiFi        bool
	Projector   bool
	Equipment   []string
	Description string
}

func NewRoom(f RoomFields) *Room {
	r := &Room{ID: uuid.NewString()}
	r.Apply(f)
	return r
}

// Apply overwrites every writable field.
func (r *Room) Apply(f RoomFields) {
	r.Name = strings.TrimSpace(f.Name)
	r.Capacity = f.Capacity
	r.Location = strings.TrimSpace(f.Location)
	r.WiFi = f.WiFi
	r.Projector = f.Projector
	r.Equipment = f.Equipment
	if r.Equipment == nil {
		r.Equipment = []string{}
	}
	r.Description = f.Description
}
