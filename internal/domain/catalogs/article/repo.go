package article

import (
	"context"

	"comercio/internal/core/types"
	"comercio/internal/domain"
)

// Repository defines the interface for Article persistence.
type Repository interface {
	domain.CatalogRepository[*Article, string]

	// SetActive toggles the active flag without touching other fields.
	SetActive(ctx context.Context, itemCode string, active bool) error

	// Prices returns current unit prices for the given item codes.
	// Missing codes are simply absent from the result map.
	Prices(ctx context.Context, itemCodes []string) (map[string]types.Money, error)
}
