package branch

import (
	"comercio/internal/core/tx"
	"comercio/internal/domain"
)

// Service provides business logic for the Branch catalog.
type Service struct {
	*domain.CatalogService[*Branch, int]
	repo Repository
}

// NewService creates a new Branch service.
func NewService(repo Repository, txm tx.Manager) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Branch, int]{
		Repo:       repo,
		TxManager:  txm,
		EntityName: "branch",
	})

	return &Service{
		CatalogService: base,
		repo:           repo,
	}
}
