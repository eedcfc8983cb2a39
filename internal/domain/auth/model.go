// Package auth provides authentication and user account domain logic.
package auth

import (
	"context"
	"time"

	"comercio/internal/core/apperror"
)

// Roles available for user accounts.
const (
	RoleAdmin  = "admin"
	RoleSeller = "seller"
)

// User represents a login account.
type User struct {
	ID           int       `db:"id" json:"id"`
	Username     string    `db:"username" json:"username"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Role         string    `db:"role" json:"role"`
	Active       bool      `db:"active" json:"active"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
}

// NewUser creates a new active user.
func NewUser(username, passwordHash, role string) *User {
	return &User{
		Username:     username,
		PasswordHash: passwordHash,
		Role:         role,
		Active:       true,
		CreatedAt:    time.Now().UTC(),
	}
}

// Validate validates user data.
func (u *User) Validate(ctx context.Context) error {
	if u.Username == "" {
		return apperror.NewValidation("username is required").WithDetail("field", "username")
	}
	if u.PasswordHash == "" {
		return apperror.NewValidation("password is required").WithDetail("field", "password")
	}
	if u.Role != RoleAdmin && u.Role != RoleSeller {
		return apperror.NewValidation("invalid role").
			WithDetail("field", "role").
			WithDetail("value", u.Role)
	}
	return nil
}

// CanLogin checks if user can login.
func (u *User) CanLogin() error {
	if !u.Active {
		return apperror.NewForbidden("account is disabled")
	}
	return nil
}

// Credentials for login.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResult is returned after successful authentication.
// Employee fields are filled when the account is linked to a sales
// employee, so clients can default documents to that employee.
type LoginResult struct {
	Token        string    `json:"token"`
	ExpiresAt    time.Time `json:"expiresAt"`
	UserID       int       `json:"userId"`
	Username     string    `json:"username"`
	Role         string    `json:"role"`
	EmployeeCode int       `json:"employeeCode,omitempty"`
	EmployeeName string    `json:"employeeName,omitempty"`
}
