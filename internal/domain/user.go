package domain

import (
	"strings"
	"time"

	"meetingrooms/internal/pkg/password"

	"github.com/google/uuid"
)

type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

func (r UserRole) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

type User struct {
	ID           string    `json:"id" gorm:"type:varchar(36);primaryKey"`
	Username     string    `json:"username" gorm:"uniqueIndex;not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	Role         UserRole  `json:"role" gorm:"type:varchar(16);not null"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// NewUser builds an account ready for insertion. The plaintext password is
// hashed here and never kept on the struct.
func NewUser(username, email, plainPassword string, role UserRole) (*User, error) {
	if role == "" {
		role = RoleUser
	}
	u := &User{
		ID:       uuid.NewString(),
		Username: strings.TrimSpace(username),
		Email:    NormalizeEmail(email),
		Role:     role,
	}
	if err := u.SetPassword(plainPassword); err != nil {
		return nil, err
	}
	return u, nil
}

// SetPassword replaces the stored hash with the hash of plainPassword.
func (u *User) SetPassword(plainPassword string) error {
	hash, err := password.Hash(plainPassword)
	if err != nil {
		return err
	}
	u.PasswordHash = hash
	return nil
}

func (u *User) CheckPassword(plainPassword string) (bool, error) {
	return password.Matches(u.PasswordHash, plainPassword)
}

func (u *User) IsAdmin() bool { return u.Role == RoleAdmin }

// Public is the profile shape that may leave the service.
func (u *User) Public() UserPublic {
	return UserPublic{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}

type UserPublic struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      UserRole  `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
