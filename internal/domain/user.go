package domain

import (
	"time"
)

// Role represents a user permission tier
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Valid reports whether the role is one of the recognized tiers
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// User represents a user account
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Never serialize password
	Role         Role      `json:"role"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}

// UserPatch is a sparse update applied to a stored user.
// Nil fields are left unchanged.
type UserPatch struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
	Role     *Role   `json:"role"`
}

// Claims represents the identity facts carried by a verified token
type Claims struct {
	Username string `json:"sub"`
	UserID   int64  `json:"user_id"`
	Role     Role   `json:"group"`
}
