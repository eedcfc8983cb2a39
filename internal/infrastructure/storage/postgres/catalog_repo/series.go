package catalog_repo

import (
	"context"
	"fmt"

	"comercio/internal/domain/catalogs/series"
	"comercio/internal/infrastructure/storage/postgres"
)

const seriesTable = "cat_series"

// SeriesRepo implements series.Repository.
type SeriesRepo struct {
	*BaseCatalogRepo[*series.Series, int]
}

// NewSeriesRepo creates a new series repository.
func NewSeriesRepo(txm *postgres.TxManager) *SeriesRepo {
	return &SeriesRepo{
		BaseCatalogRepo: NewBaseCatalogRepo[*series.Series, int](txm, BaseRepoConfig[*series.Series]{
			TableName:  seriesTable,
			KeyColumn:  "id",
			SelectCols: postgres.ExtractDBColumns[series.Series](),
			SearchCols: []string{"name"},
			DefaultOrd: "id ASC",
			NewFn:      func() *series.Series { return &series.Series{} },
		}),
	}
}

// Create inserts the series and fills the generated ID.
func (r *SeriesRepo) Create(ctx context.Context, s *series.Series) error {
	q := r.Builder().
		Insert(seriesTable).
		Columns("name", "doc_type", "branch_id").
		Values(s.Name, s.DocType, s.BranchID).
		Suffix("RETURNING id")

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	if err := r.Querier(ctx).QueryRow(ctx, sql, args...).Scan(&s.ID); err != nil {
		return fmt.Errorf("insert %s: %w", seriesTable, err)
	}

	return nil
}
