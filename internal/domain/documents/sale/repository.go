// Package sale provides the Sale document repository.
package sale

import (
	"context"
	"time"

	"comercio/internal/core/types"
	"comercio/internal/domain"
)

// Repository defines operations for sale documents.
type Repository interface {
	// Create inserts the header and returns the assigned document number.
	Create(ctx context.Context, doc *Sale) (int64, error)

	// GetByDocNum retrieves a header without lines.
	GetByDocNum(ctx context.Context, docNum int64) (*Sale, error)

	// Line operations
	GetLines(ctx context.Context, docNum int64) ([]Line, error)
	SaveLines(ctx context.Context, docNum int64, lines []Line) error

	// List retrieves joined rows for the listing read.
	List(ctx context.Context, filter ListFilter) (domain.ListResult[*ListRow], error)
}

// ListFilter for filtering sale documents.
type ListFilter struct {
	domain.ListFilter

	CardCode     *string
	EmployeeCode *int
	DateFrom     *time.Time
	DateTo       *time.Time
}

// ListRow is a sale header joined with catalog display names.
type ListRow struct {
	DocNum       int64       `db:"doc_num" json:"docNum"`
	DocDate      time.Time   `db:"doc_date" json:"docDate"`
	CardCode     string      `db:"card_code" json:"cardCode"`
	PartnerName  string      `db:"partner_name" json:"partnerName"`
	EmployeeCode int         `db:"employee_code" json:"employeeCode"`
	EmployeeName string      `db:"employee_name" json:"employeeName"`
	SeriesID     int         `db:"series_id" json:"seriesId"`
	SeriesName   string      `db:"series_name" json:"seriesName"`
	Total        types.Money `db:"total" json:"total"`
}
