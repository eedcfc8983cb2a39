package partner

import (
	"context"

	"comercio/internal/domain"
)

// Repository defines the interface for Partner persistence.
type Repository interface {
	domain.CatalogRepository[*Partner, string]

	// ExistsByKind checks that a partner with the card code and kind exists.
	ExistsByKind(ctx context.Context, cardCode string, kind Kind) (bool, error)
}
