package article

import (
	"context"
	"fmt"

	"comercio/internal/core/apperror"
	"comercio/internal/core/tx"
	"comercio/internal/core/types"
	"comercio/internal/domain"
)

// Service provides business logic for the Article catalog.
// Uses composition with domain.CatalogService for common CRUD operations.
type Service struct {
	*domain.CatalogService[*Article, string]
	repo Repository
	txm  tx.Manager
}

// NewService creates a new Article service.
func NewService(repo Repository, txm tx.Manager) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Article, string]{
		Repo:       repo,
		TxManager:  txm,
		EntityName: "article",
	})

	svc := &Service{
		CatalogService: base,
		repo:           repo,
		txm:            txm,
	}

	base.Hooks().OnBeforeCreate(svc.checkCodeAvailable)

	return svc
}

// checkCodeAvailable rejects creation when the item code is taken.
func (s *Service) checkCodeAvailable(ctx context.Context, a *Article) error {
	exists, err := s.repo.Exists(ctx, a.ItemCode)
	if err != nil {
		return err
	}
	if exists {
		return apperror.NewDuplicate("article", "itemCode", a.ItemCode)
	}
	return nil
}

// SetActive activates or deactivates the article.
// Deactivated articles stay in the catalog and remain visible in past documents.
func (s *Service) SetActive(ctx context.Context, itemCode string, active bool) error {
	return s.txm.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.SetActive(ctx, itemCode, active); err != nil {
			return fmt.Errorf("set article state: %w", err)
		}
		return nil
	})
}

// Prices returns current unit prices for the given item codes.
func (s *Service) Prices(ctx context.Context, itemCodes []string) (map[string]types.Money, error) {
	return s.repo.Prices(ctx, itemCodes)
}
