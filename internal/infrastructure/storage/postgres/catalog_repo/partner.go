package catalog_repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"comercio/internal/domain/catalogs/partner"
	"comercio/internal/infrastructure/storage/postgres"
)

const partnerTable = "cat_partners"

// PartnerRepo implements partner.Repository.
type PartnerRepo struct {
	*BaseCatalogRepo[*partner.Partner, string]
}

// NewPartnerRepo creates a new partner repository.
func NewPartnerRepo(txm *postgres.TxManager) *PartnerRepo {
	return &PartnerRepo{
		BaseCatalogRepo: NewBaseCatalogRepo[*partner.Partner, string](txm, BaseRepoConfig[*partner.Partner]{
			TableName:  partnerTable,
			KeyColumn:  "card_code",
			SelectCols: postgres.ExtractDBColumns[partner.Partner](),
			SearchCols: []string{"card_code", "name"},
			DefaultOrd: "card_code ASC",
			NewFn:      func() *partner.Partner { return &partner.Partner{} },
		}),
	}
}

// ExistsByKind checks that a partner with the card code and kind exists.
func (r *PartnerRepo) ExistsByKind(ctx context.Context, cardCode string, kind partner.Kind) (bool, error) {
	q := r.Builder().
		Select("1").
		From(partnerTable).
		Where(squirrel.Eq{"card_code": cardCode}).
		Where(squirrel.Eq{"kind": kind}).
		Limit(1)

	sql, args, err := q.ToSql()
	if err != nil {
		return false, fmt.Errorf("build query: %w", err)
	}

	var exists int
	err = r.Querier(ctx).QueryRow(ctx, sql, args...).Scan(&exists)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("exists by kind: %w", err)
	}

	return true, nil
}
