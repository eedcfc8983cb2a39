package document_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"comercio/internal/domain"
	"comercio/internal/domain/documents/purchase"
	"comercio/internal/infrastructure/storage/postgres"
)

const (
	purchasesTable     = "doc_purchases"
	purchaseLinesTable = "doc_purchase_lines"
)

// purchaseListOrderCols are the columns the purchase listing may be sorted by.
var purchaseListOrderCols = map[string]struct{}{
	"doc_num":       {},
	"doc_date":      {},
	"card_code":     {},
	"partner_name":  {},
	"employee_name": {},
	"total":         {},
}

// PurchaseRepo implements purchase.Repository.
type PurchaseRepo struct {
	*BaseDocumentRepo[*purchase.Purchase]
}

// NewPurchaseRepo creates a new purchase repository.
func NewPurchaseRepo(txm *postgres.TxManager) *PurchaseRepo {
	return &PurchaseRepo{
		BaseDocumentRepo: NewBaseDocumentRepo[*purchase.Purchase](
			txm,
			purchasesTable,
			postgres.ExtractDBColumns[purchase.Purchase](),
			func() *purchase.Purchase { return &purchase.Purchase{} },
		),
	}
}

// Create inserts the header and returns the assigned document number.
func (r *PurchaseRepo) Create(ctx context.Context, doc *purchase.Purchase) (int64, error) {
	docNum, docDate, err := r.insertHeader(ctx, map[string]any{
		"card_code":     doc.CardCode,
		"employee_code": doc.EmployeeCode,
		"series_id":     doc.SeriesID,
		"total":         doc.Total,
	})
	if err != nil {
		return 0, err
	}

	doc.DocDate = docDate
	return docNum, nil
}

// GetLines retrieves lines for a purchase ordered by line number.
func (r *PurchaseRepo) GetLines(ctx context.Context, docNum int64) ([]purchase.Line, error) {
	q := r.Builder().
		Select("doc_num", "line_no", "item_code", "quantity", "price", "tax_rate", "line_total").
		From(purchaseLinesTable).
		Where(squirrel.Eq{"doc_num": docNum}).
		OrderBy("line_no")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var lines []purchase.Line
	if err := pgxscan.Select(ctx, r.Querier(ctx), &lines, sql, args...); err != nil {
		return nil, fmt.Errorf("get lines: %w", err)
	}

	return lines, nil
}

// SaveLines saves lines for a purchase (delete existing + insert new).
func (r *PurchaseRepo) SaveLines(ctx context.Context, docNum int64, lines []purchase.Line) error {
	querier := r.Querier(ctx)

	deleteSQL := "DELETE FROM " + purchaseLinesTable + " WHERE doc_num = $1"
	if _, err := querier.Exec(ctx, deleteSQL, docNum); err != nil {
		return fmt.Errorf("delete existing lines: %w", err)
	}

	if len(lines) == 0 {
		return nil
	}

	q := r.Builder().
		Insert(purchaseLinesTable).
		Columns("doc_num", "line_no", "item_code", "quantity", "price", "tax_rate", "line_total")

	for _, line := range lines {
		q = q.Values(
			docNum, line.LineNo, line.ItemCode,
			line.Quantity, line.Price, line.TaxRate, line.LineTotal,
		)
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert lines: %w", err)
	}

	if _, err := querier.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert lines: %w", err)
	}

	return nil
}

// List retrieves purchase headers joined with catalog names, newest first.
func (r *PurchaseRepo) List(ctx context.Context, filter purchase.ListFilter) (domain.ListResult[*purchase.ListRow], error) {
	result := domain.ListResult[*purchase.ListRow]{
		Limit:  filter.Limit,
		Offset: filter.Offset,
	}

	q := r.Builder().
		Select(
			"d.doc_num", "d.doc_date", "d.card_code",
			"p.name AS partner_name",
			"d.employee_code", "e.name AS employee_name",
			"d.series_id", "s.name AS series_name",
			"d.total",
		).
		From(purchasesTable + " d").
		Join("cat_partners p ON p.card_code = d.card_code").
		Join("cat_employees e ON e.code = d.employee_code").
		Join("cat_series s ON s.id = d.series_id")

	if filter.CardCode != nil {
		q = q.Where(squirrel.Eq{"d.card_code": *filter.CardCode})
	}
	if filter.EmployeeCode != nil {
		q = q.Where(squirrel.Eq{"d.employee_code": *filter.EmployeeCode})
	}
	if filter.DateFrom != nil {
		q = q.Where(squirrel.GtOrEq{"d.doc_date": *filter.DateFrom})
	}
	if filter.DateTo != nil {
		q = q.Where(squirrel.LtOrEq{"d.doc_date": *filter.DateTo})
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		q = q.Where(squirrel.Or{
			squirrel.ILike{"d.card_code": pattern},
			squirrel.ILike{"p.name": pattern},
		})
	}

	countQ := r.Builder().Select("COUNT(*)").FromSelect(q, "sub")
	countSQL, countArgs, err := countQ.ToSql()
	if err != nil {
		return result, fmt.Errorf("build count: %w", err)
	}

	querier := r.Querier(ctx)
	if err := querier.QueryRow(ctx, countSQL, countArgs...).Scan(&result.TotalCount); err != nil {
		return result, fmt.Errorf("count: %w", err)
	}

	orderBy, err := parseOrderBy(filter.OrderBy, purchaseListOrderCols, "doc_num DESC")
	if err != nil {
		return result, err
	}
	q = q.OrderBy(orderBy)

	if filter.Limit > 0 {
		q = q.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		q = q.Offset(uint64(filter.Offset))
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return result, fmt.Errorf("build query: %w", err)
	}

	if err := pgxscan.Select(ctx, querier, &result.Items, sql, args...); err != nil {
		return result, fmt.Errorf("select: %w", err)
	}

	return result, nil
}
