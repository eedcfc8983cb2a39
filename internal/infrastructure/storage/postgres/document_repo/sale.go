package document_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"comercio/internal/domain"
	"comercio/internal/domain/documents/sale"
	"comercio/internal/infrastructure/storage/postgres"
)

const (
	salesTable     = "doc_sales"
	saleLinesTable = "doc_sale_lines"
)

var saleListOrderCols = map[string]struct{}{
	"doc_num":       {},
	"doc_date":      {},
	"card_code":     {},
	"partner_name":  {},
	"employee_name": {},
	"total":         {},
}

// SaleRepo implements sale.Repository.
type SaleRepo struct {
	*BaseDocumentRepo[*sale.Sale]
}

// NewSaleRepo creates a new sale repository.
func NewSaleRepo(txm *postgres.TxManager) *SaleRepo {
	return &SaleRepo{
		BaseDocumentRepo: NewBaseDocumentRepo[*sale.Sale](
			txm,
			salesTable,
			postgres.ExtractDBColumns[sale.Sale](),
			func() *sale.Sale { return &sale.Sale{} },
		),
	}
}

// Create inserts the header and returns the assigned document number.
func (r *SaleRepo) Create(ctx context.Context, doc *sale.Sale) (int64, error) {
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

// GetLines retrieves lines for a sale ordered by line number.
func (r *SaleRepo) GetLines(ctx context.Context, docNum int64) ([]sale.Line, error) {
	q := r.Builder().
		Select("doc_num", "line_no", "item_code", "quantity", "price", "line_total").
		From(saleLinesTable).
		Where(squirrel.Eq{"doc_num": docNum}).
		OrderBy("line_no")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var lines []sale.Line
	if err := pgxscan.Select(ctx, r.Querier(ctx), &lines, sql, args...); err != nil {
		return nil, fmt.Errorf("get lines: %w", err)
	}

	return lines, nil
}

// SaveLines saves lines for a sale (delete existing + insert new).
func (r *SaleRepo) SaveLines(ctx context.Context, docNum int64, lines []sale.Line) error {
	querier := r.Querier(ctx)

	deleteSQL := "DELETE FROM " + saleLinesTable + " WHERE doc_num = $1"
	if _, err := querier.Exec(ctx, deleteSQL, docNum); err != nil {
		return fmt.Errorf("delete existing lines: %w", err)
	}

	if len(lines) == 0 {
		return nil
	}

	q := r.Builder().
		Insert(saleLinesTable).
		Columns("doc_num", "line_no", "item_code", "quantity", "price", "line_total")

	for _, line := range lines {
		q = q.Values(
			docNum, line.LineNo, line.ItemCode,
			line.Quantity, line.Price, line.LineTotal,
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

// List retrieves sale headers joined with catalog names, newest first.
func (r *SaleRepo) List(ctx context.Context, filter sale.ListFilter) (domain.ListResult[*sale.ListRow], error) {
	result := domain.ListResult[*sale.ListRow]{
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
		From(salesTable + " d").
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

	orderBy, err := parseOrderBy(filter.OrderBy, saleListOrderCols, "doc_num DESC")
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
