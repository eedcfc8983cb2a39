package employee

import (
	"context"

	"comercio/internal/domain"
)

// Repository defines the interface for Employee persistence.
type Repository interface {
	domain.CatalogRepository[*Employee, int]

	// GetByUserID retrieves the employee linked to a login account.
	GetByUserID(ctx context.Context, userID int) (*Employee, error)
}
