package series

import (
	"comercio/internal/domain"
)

// Repository defines the interface for Series persistence.
type Repository interface {
	domain.CatalogRepository[*Series, int]
}
