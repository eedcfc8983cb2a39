// Package sale provides the Sale document service.
package sale

import (
	"context"
	"fmt"

	"comercio/internal/core/apperror"
	"comercio/internal/core/tx"
	"comercio/internal/core/types"
	"comercio/internal/domain"
	"comercio/pkg/logger"
)

// PartnerChecker verifies the counterparty reference inside the
// registration transaction. Sales accept any partner kind, so only
// bare existence is checked.
type PartnerChecker interface {
	Exists(ctx context.Context, cardCode string) (bool, error)
}

// EmployeeChecker verifies the employee reference.
type EmployeeChecker interface {
	Exists(ctx context.Context, code int) (bool, error)
}

// SeriesChecker verifies the series reference.
type SeriesChecker interface {
	Exists(ctx context.Context, id int) (bool, error)
}

// PriceResolver resolves unit prices from the article catalog.
type PriceResolver interface {
	Prices(ctx context.Context, itemCodes []string) (map[string]types.Money, error)
}

// Service provides business operations for sale documents.
type Service struct {
	repo      Repository
	partners  PartnerChecker
	employees EmployeeChecker
	series    SeriesChecker
	articles  PriceResolver
	txManager tx.Manager
	hooks     *domain.HookRegistry[*Sale]
}

// NewService creates a new sale service.
func NewService(
	repo Repository,
	partners PartnerChecker,
	employees EmployeeChecker,
	series SeriesChecker,
	articles PriceResolver,
	txManager tx.Manager,
) *Service {
	return &Service{
		repo:      repo,
		partners:  partners,
		employees: employees,
		series:    series,
		articles:  articles,
		txManager: txManager,
		hooks:     domain.NewHookRegistry[*Sale](),
	}
}

// Hooks returns the hook registry for registering callbacks.
func (s *Service) Hooks() *domain.HookRegistry[*Sale] {
	return s.hooks
}

// Register validates and commits a sale document atomically.
// Reference checks, price resolution, header insert and line inserts
// run in one transaction; any failure leaves no partial document
// behind. Prices come from the article catalog as of the transaction,
// and the total is computed from them.
func (s *Service) Register(ctx context.Context, doc *Sale) error {
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

		prices, err := s.resolvePrices(ctx, doc)
		if err != nil {
			return err
		}
		doc.applyPrices(prices)

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

	logger.Info(ctx, "sale registered",
		"docNum", doc.DocNum,
		"cardCode", doc.CardCode,
		"total", doc.Total.String())

	return nil
}

// checkReferences validates catalog references inside the transaction.
func (s *Service) checkReferences(ctx context.Context, doc *Sale) error {
	ok, err := s.partners.Exists(ctx, doc.CardCode)
	if err != nil {
		return fmt.Errorf("check partner: %w", err)
	}
	if !ok {
		return apperror.NewReferential("partner", doc.CardCode)
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

// resolvePrices looks up catalog prices for every line item.
func (s *Service) resolvePrices(ctx context.Context, doc *Sale) (map[string]types.Money, error) {
	codes := make([]string, 0, len(doc.Lines))
	seen := make(map[string]struct{}, len(doc.Lines))
	for _, line := range doc.Lines {
		if _, ok := seen[line.ItemCode]; ok {
			continue
		}
		seen[line.ItemCode] = struct{}{}
		codes = append(codes, line.ItemCode)
	}

	prices, err := s.articles.Prices(ctx, codes)
	if err != nil {
		return nil, fmt.Errorf("resolve prices: %w", err)
	}

	for _, code := range codes {
		if _, ok := prices[code]; !ok {
			return nil, apperror.NewReferential("article", code)
		}
	}

	return prices, nil
}

// GetByDocNum retrieves a sale with lines.
func (s *Service) GetByDocNum(ctx context.Context, docNum int64) (*Sale, error) {
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

// List retrieves sales with filtering, newest first.
func (s *Service) List(ctx context.Context, filter ListFilter) (domain.ListResult[*ListRow], error) {
	return s.repo.List(ctx, filter)
}
