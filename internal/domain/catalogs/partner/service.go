package partner

import (
	"context"

	"comercio/internal/core/apperror"
	"comercio/internal/core/tx"
	"comercio/internal/domain"
)

// Service provides business logic for the Partner catalog.
type Service struct {
	*domain.CatalogService[*Partner, string]
	repo Repository
}

// NewService creates a new Partner service.
func NewService(repo Repository, txm tx.Manager) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Partner, string]{
		Repo:       repo,
		TxManager:  txm,
		EntityName: "partner",
	})

	svc := &Service{
		CatalogService: base,
		repo:           repo,
	}

	base.Hooks().OnBeforeCreate(svc.checkCodeAvailable)

	return svc
}

func (s *Service) checkCodeAvailable(ctx context.Context, p *Partner) error {
	exists, err := s.repo.Exists(ctx, p.CardCode)
	if err != nil {
		return err
	}
	if exists {
		return apperror.NewDuplicate("partner", "cardCode", p.CardCode)
	}
	return nil
}

// Exists checks that a partner exists, regardless of kind.
func (s *Service) Exists(ctx context.Context, cardCode string) (bool, error) {
	return s.repo.Exists(ctx, cardCode)
}

// CustomerExists checks that a customer partner exists.
func (s *Service) CustomerExists(ctx context.Context, cardCode string) (bool, error) {
	return s.repo.ExistsByKind(ctx, cardCode, KindCustomer)
}

// SupplierExists checks that a supplier partner exists.
func (s *Service) SupplierExists(ctx context.Context, cardCode string) (bool, error) {
	return s.repo.ExistsByKind(ctx, cardCode, KindSupplier)
}
