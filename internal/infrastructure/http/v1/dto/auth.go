package dto

import (
	"comercio/internal/domain/auth"
)

// LoginRequest for authentication.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// ToCredentials converts request to domain credentials.
func (r *LoginRequest) ToCredentials() auth.Credentials {
	return auth.Credentials{
		Username: r.Username,
		Password: r.Password,
	}
}

// CreateUserRequest for creating a login account.
type CreateUserRequest struct {
	Username string `json:"username" binding:"required,min=3"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required,oneof=admin seller"`
}

// UpdateUserRequest for updating a login account.
// An empty password keeps the stored one.
type UpdateUserRequest struct {
	Username string `json:"username" binding:"required,min=3"`
	Password string `json:"password"`
	Role     string `json:"role" binding:"required,oneof=admin seller"`
	Active   bool   `json:"active"`
}
