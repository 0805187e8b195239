package booking

// CreateBookingRequest carries times as strings; see timeparse.Parse for
// the accepted layouts.
type CreateBookingRequest struct {
	RoomID    string `json:"roomId"`
	Title     string `json:"title"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// UpdateBookingRequest changes only the fields that are set.
type UpdateBookingRequest struct {
	RoomID    *string `json:"roomId"`
	UserID    *string `json:"userId"`
	Title     *string `json:"title"`
	StartTime *string `json:"startTime"`
	EndTime   *string `json:"endTime"`
}

// AdminCreateBookingRequest lets an admin book for any user.
type AdminCreateBookingRequest struct {
	CreateBookingRequest
	UserID string `json:"userId"`
}
