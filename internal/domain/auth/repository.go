package auth

import (
	"context"

	"comercio/internal/domain"
)

// UserRepository defines persistence for user accounts.
type UserRepository interface {
	// Create inserts the user and fills the generated ID.
	Create(ctx context.Context, user *User) error

	GetByID(ctx context.Context, id int) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)

	Update(ctx context.Context, user *User) error
	Delete(ctx context.Context, id int) error

	List(ctx context.Context, filter domain.ListFilter) (domain.ListResult[*User], error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
}
