package series

import (
	"context"

	"comercio/internal/core/apperror"
	"comercio/internal/core/tx"
	"comercio/internal/domain"
)

// BranchChecker verifies branch references before a series is saved.
type BranchChecker interface {
	Exists(ctx context.Context, id int) (bool, error)
}

// Service provides business logic for the Series catalog.
type Service struct {
	*domain.CatalogService[*Series, int]
	repo     Repository
	branches BranchChecker
}

// NewService creates a new Series service.
func NewService(repo Repository, txm tx.Manager, branches BranchChecker) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Series, int]{
		Repo:       repo,
		TxManager:  txm,
		EntityName: "series",
	})

	svc := &Service{
		CatalogService: base,
		repo:           repo,
		branches:       branches,
	}

	base.Hooks().OnBeforeCreate(svc.checkBranch)
	base.Hooks().OnBeforeUpdate(svc.checkBranch)

	return svc
}

// checkBranch rejects series referencing a missing branch.
func (s *Service) checkBranch(ctx context.Context, sr *Series) error {
	exists, err := s.branches.Exists(ctx, sr.BranchID)
	if err != nil {
		return err
	}
	if !exists {
		return apperror.NewReferential("branch", sr.BranchID)
	}
	return nil
}
