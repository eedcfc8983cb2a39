// Package purchase provides the Purchase document service.
package purchase

import (
	"context"
	"fmt"

	"comercio/internal/core/apperror"
	"comercio/internal/core/tx"
	"comercio/internal/domain"
	"comercio/pkg/logger"
)

// SupplierChecker verifies the supplier reference inside the registration transaction.
type SupplierChecker interface {
	SupplierExists(ctx context.Context, cardCode string) (bool, error)
}

// EmployeeChecker verifies the employee reference.
type EmployeeChecker interface {
	Exists(ctx context.Context, code int) (bool, error)
}

// SeriesChecker verifies the series reference.
type SeriesChecker interface {
	Exists(ctx context.Context, id int) (bool, error)
}

// Service provides business operations for purchase documents.
type Service struct {
	repo      Repository
	partners  SupplierChecker
	employees EmployeeChecker
	series    SeriesChecker
	txManager tx.Manager
	hooks     *domain.HookRegistry[*Purchase]
}

// NewService creates a new purchase service.
func NewService(
	repo Repository,
	partners SupplierChecker,
	employees EmployeeChecker,
	series SeriesChecker,
	txManager tx.Manager,
) *Service {
	return &Service{
		repo:      repo,
		partners:  partners,
		employees: employees,
		series:    series,
		txManager: txManager,
		hooks:     domain.NewHookRegistry[*Purchase](),
	}
}

// Hooks returns the hook registry for registering callbacks.
func (s *Service) Hooks() *domain.HookRegistry[*Purchase] {
	return s.hooks
}

// Register validates and commits a purchase document atomically.
// Reference checks, header insert and line inserts run in one
// transaction; any failure leaves no partial document behind.
// On success the stored document carries its assigned number and
// computed totals.
func (s *Service) Register(ctx context.Context, doc *Purchase) error {
	// Run before-create hooks (for enrichment, validation, etc.)
	if err := s.hooks.RunBeforeCreate(ctx, doc); err != nil {
		return err
	}

	// Structural validation happens before any store access
	if err := doc.Validate(ctx); err != nil {
		return err
	}

	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.checkReferences(ctx, doc); err != nil {
			return err
		}

		doc.recalculateTotals()

		docNum, err := s.repo.Create(ctx, doc)
		if err != nil {
			return fmt.Errorf("create document: %w", err)
		}
		doc.DocNum = docNum

		if err := s.repo.SaveLines(ctx, docNum, doc.Lines); err != nil {
			return fmt.Errorf("save lines: %w", err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	// Run after-create hooks
	if err := s.hooks.RunAfterCreate(ctx, doc); err != nil {
		logger.Warn(ctx, "after-create hook failed", "error", err)
	}

	logger.Info(ctx, "purchase registered",
		"docNum", doc.DocNum,
		"cardCode", doc.CardCode,
		"total", doc.Total.String())

	return nil
}

// checkReferences validates catalog references inside the transaction.
func (s *Service) checkReferences(ctx context.Context, doc *Purchase) error {
	ok, err := s.partners.SupplierExists(ctx, doc.CardCode)
	if err != nil {
		return fmt.Errorf("check supplier: %w", err)
	}
	if !ok {
		return apperror.NewReferential("supplier", doc.CardCode)
	}

	ok, err = s.employees.Exists(ctx, doc.EmployeeCode)
	if err != nil {
		return fmt.Errorf("check employee: %w", err)
	}
	if !ok {
		return apperror.NewReferential("employee", doc.EmployeeCode)
	}

	ok, err = s.series.Exists(ctx, doc.SeriesID)
	if err != nil {
		return fmt.Errorf("check series: %w", err)
	}
	if !ok {
		return apperror.NewReferential("series", doc.SeriesID)
	}

	return nil
}

// GetByDocNum retrieves a purchase with lines.
func (s *Service) GetByDocNum(ctx context.Context, docNum int64) (*Purchase, error) {
	doc, err := s.repo.GetByDocNum(ctx, docNum)
	if err != nil {
		return nil, err
	}

	lines, err := s.repo.GetLines(ctx, docNum)
	if err != nil {
		return nil, fmt.Errorf("get lines: %w", err)
	}
	doc.Lines = lines

	return doc, nil
}

// List retrieves purchases with filtering, newest first.
func (s *Service) List(ctx context.Context, filter ListFilter) (domain.ListResult[*ListRow], error) {
	return s.repo.List(ctx, filter)
}
