package entity

import (
	"time"

	"github.com/google/uuid"
)

// Role is an access role attached to a user account.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// User is an account that can sign in to the admin panel.
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// IsAdmin reports whether the user may reach admin endpoints.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
