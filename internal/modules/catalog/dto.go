package catalog

import (
	"strings"

	"meetingrooms/internal/domain"
)

// RoomRequest is the writable shape of a room for create and update.
type RoomRequest struct {
	Name        string   `json:"name" validate:"required"`
	Capacity    int      `json:"capacity" validate:"gt=0"`
	Location    string   `json:"location" validate:"required"`
	WiFi        bool     `json:"wifi"`
	Projector   bool     `json:"projector"`
	Equipment   []string `json:"equipment"`
	Description string   `json:"description"`
}

func (r RoomRequest) normalized() RoomRequest {
	r.Name = strings.TrimSpace(r.Name)
	r.Location = strings.TrimSpace(r.Location)
	// Equipment round-trips as sent.
	if r.Equipment == nil {
		r.Equipment = []string{}
	}
	return r
}

func (r RoomRequest) fields() domain.RoomFields {
	return domain.RoomFields{
		Name:        r.Name,
		Capacity:    r.Capacity,
		Location:    r.Location,
		WiFi:        r.WiFi,
		Projector:   r.Projector,
		Equipment:   r.Equipment,
		Description: r.Description,
	}
}
