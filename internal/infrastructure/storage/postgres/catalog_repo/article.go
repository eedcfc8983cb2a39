package catalog_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"comercio/internal/core/apperror"
	"comercio/internal/core/types"
	"comercio/internal/domain/catalogs/article"
	"comercio/internal/infrastructure/storage/postgres"
)

const articleTable = "cat_articles"

// ArticleRepo implements article.Repository.
type ArticleRepo struct {
	*BaseCatalogRepo[*article.Article, string]
}

// NewArticleRepo creates a new article repository.
func NewArticleRepo(txm *postgres.TxManager) *ArticleRepo {
	return &ArticleRepo{
		BaseCatalogRepo: NewBaseCatalogRepo[*article.Article, string](txm, BaseRepoConfig[*article.Article]{
			TableName:  articleTable,
			KeyColumn:  "item_code",
			SelectCols: postgres.ExtractDBColumns[article.Article](),
			SearchCols: []string{"item_code", "name"},
			DefaultOrd: "item_code ASC",
			NewFn:      func() *article.Article { return &article.Article{} },
		}),
	}
}

// SetActive toggles the active flag.
func (r *ArticleRepo) SetActive(ctx context.Context, itemCode string, active bool) error {
	q := r.Builder().
		Update(articleTable).
		Set("active", active).
		Where(squirrel.Eq{"item_code": itemCode})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build set active: %w", err)
	}

	result, err := r.Querier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("execute set active: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperror.NewNotFound(articleTable, itemCode)
	}

	return nil
}

// Prices returns current unit prices for the given item codes.
func (r *ArticleRepo) Prices(ctx context.Context, itemCodes []string) (map[string]types.Money, error) {
	if len(itemCodes) == 0 {
		return map[string]types.Money{}, nil
	}

	q := r.Builder().
		Select("item_code", "price").
		From(articleTable).
		Where(squirrel.Eq{"item_code": itemCodes})

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []struct {
		ItemCode string      `db:"item_code"`
		Price    types.Money `db:"price"`
	}
	if err := pgxscan.Select(ctx, r.Querier(ctx), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("select prices: %w", err)
	}

	prices := make(map[string]types.Money, len(rows))
	for _, row := range rows {
		prices[row.ItemCode] = row.Price
	}

	return prices, nil
}
