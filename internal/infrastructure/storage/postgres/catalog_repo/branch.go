package catalog_repo

import (
	"context"
	"fmt"

	"comercio/internal/domain/catalogs/branch"
	"comercio/internal/infrastructure/storage/postgres"
)

const branchTable = "cat_branches"

// BranchRepo implements branch.Repository.
type BranchRepo struct {
	*BaseCatalogRepo[*branch.Branch, int]
}

// NewBranchRepo creates a new branch repository.
func NewBranchRepo(txm *postgres.TxManager) *BranchRepo {
	return &BranchRepo{
		BaseCatalogRepo: NewBaseCatalogRepo[*branch.Branch, int](txm, BaseRepoConfig[*branch.Branch]{
			TableName:  branchTable,
			KeyColumn:  "id",
			SelectCols: postgres.ExtractDBColumns[branch.Branch](),
			SearchCols: []string{"name", "address"},
			DefaultOrd: "id ASC",
			NewFn:      func() *branch.Branch { return &branch.Branch{} },
		}),
	}
}

// Create inserts the branch and fills the generated ID.
func (r *BranchRepo) Create(ctx context.Context, b *branch.Branch) error {
	q := r.Builder().
		Insert(branchTable).
		Columns("name", "address").
		Values(b.Name, b.Address).
		Suffix("RETURNING id")

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	if err := r.Querier(ctx).QueryRow(ctx, sql, args...).Scan(&b.ID); err != nil {
		return fmt.Errorf("insert %s: %w", branchTable, err)
	}

	return nil
}
