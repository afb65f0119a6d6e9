package dto

import (
	"strings"
	"time"

	"advertisement-api/internal/domain"
)

// CreateUserRequest represents registration request
type CreateUserRequest struct {
	Username string      `json:"username" binding:"required,min=3,max=50"`
	Email    string      `json:"email" binding:"required,min=5,max=100"`
	Password string      `json:"password" binding:"required,min=6"`
	Role     domain.Role `json:"role"`
}

// ValidateEmail checks the email has a plausible shape
func (r *CreateUserRequest) ValidateEmail() (bool, string) {
	if !strings.Contains(r.Email, "@") {
		return false, "Invalid email format"
	}
	return true, ""
}

// UpdateUserRequest represents a sparse user update
type UpdateUserRequest struct {
	Username *string      `json:"username" binding:"omitempty,min=3,max=50"`
	Email    *string      `json:"email" binding:"omitempty,min=5,max=100"`
	Password *string      `json:"password" binding:"omitempty,min=6"`
	Role     *domain.Role `json:"role"`
}

// ValidateEmail checks the email, when provided, has a plausible shape
func (r *UpdateUserRequest) ValidateEmail() (bool, string) {
	if r.Email != nil && !strings.Contains(*r.Email, "@") {
		return false, "Invalid email format"
	}
	return true, ""
}

// Patch converts the request to a domain patch
func (r *UpdateUserRequest) Patch() *domain.UserPatch {
	return &domain.UserPatch{
		Username: r.Username,
		Email:    r.Email,
		Password: r.Password,
		Role:     r.Role,
	}
}

// UserResponse represents user data in responses
type UserResponse struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	IsActive  bool   `json:"is_active"`
	CreatedAt string `json:"created_at"`
}

// NewUserResponse converts a domain user to its response form
func NewUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		Role:      string(user.Role),
		IsActive:  user.IsActive,
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
	}
}

// NewUserListResponse converts a slice of domain users
func NewUserListResponse(users []*domain.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, NewUserResponse(u))
	}
	return out
}
