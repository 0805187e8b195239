package admin

type CreateUserRequest struct {
	Username string `json:"username" validate:"required,min=4"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"omitempty,oneof=user admin"`
}

// UpdateUserRequest replaces username, email and role. Password is only
// changed when set.
type UpdateUserRequest struct {
	Username string `json:"username" validate:"required,min=4"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"omitempty,min=6"`
	Role     string `json:"role" validate:"omitempty,oneof=user admin"`
}

type UpdateRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=user admin"`
}

type Stats struct {
	Users         int64 `json:"users"`
	Rooms         int64 `json:"rooms"`
	Bookings      int64 `json:"bookings"`
	TodayBookings int64 `json:"todayBookings"`
}
