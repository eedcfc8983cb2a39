package employee

import (
	"context"

	"comercio/internal/core/tx"
	"comercio/internal/domain"
)

// Service provides business logic for the Employee catalog.
type Service struct {
	*domain.CatalogService[*Employee, int]
	repo Repository
}

// NewService creates a new Employee service.
func NewService(repo Repository, txm tx.Manager) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Employee, int]{
		Repo:       repo,
		TxManager:  txm,
		EntityName: "employee",
	})

	return &Service{
		CatalogService: base,
		repo:           repo,
	}
}

// GetByUserID retrieves the employee linked to a login account.
func (s *Service) GetByUserID(ctx context.Context, userID int) (*Employee, error) {
	return s.repo.GetByUserID(ctx, userID)
}

// ResolveByUserID returns the code and name of the employee linked to
// a login account. Satisfies the auth employee resolver.
func (s *Service) ResolveByUserID(ctx context.Context, userID int) (int, string, error) {
	e, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return 0, "", err
	}
	return e.Code, e.Name, nil
}
