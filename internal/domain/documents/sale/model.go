// Package sale provides the Sale document.
// A sale records goods delivered to a business partner. Callers submit only
// item codes and quantities; unit prices are resolved from the article
// catalog inside the registration transaction.
package sale

import (
	"context"
	"time"

	"comercio/internal/core/apperror"
	"comercio/internal/core/types"
)

// Sale represents a sale document header with its lines.
type Sale struct {
	// DocNum is the document number, assigned by the store on commit
	DocNum int64 `db:"doc_num" json:"docNum"`

	// DocDate is the registration timestamp, assigned on commit
	DocDate time.Time `db:"doc_date" json:"docDate"`

	// CardCode references the counterparty partner, any kind
	CardCode string `db:"card_code" json:"cardCode"`

	// EmployeeCode references the responsible employee
	EmployeeCode int `db:"employee_code" json:"employeeCode"`

	// SeriesID references the numbering series
	SeriesID int `db:"series_id" json:"seriesId"`

	// Total is the document total, computed from lines on commit
	Total types.Money `db:"total" json:"total"`

	// Table part: sold goods
	Lines []Line `db:"-" json:"lines"`
}

// Line represents a sale document line.
// Price and LineTotal are filled by the service from the article
// catalog; callers supply only ItemCode and Quantity.
type Line struct {
	DocNum int64 `db:"doc_num" json:"-"`

	// LineNo is the 1-based position within the document
	LineNo int `db:"line_no" json:"lineNo"`

	// ItemCode references the article
	ItemCode string `db:"item_code" json:"itemCode"`

	// Quantity of units sold
	Quantity int `db:"quantity" json:"quantity"`

	// Price is the catalog unit price at registration time
	Price types.Money `db:"price" json:"price"`

	// LineTotal is quantity times price, computed on commit
	LineTotal types.Money `db:"line_total" json:"lineTotal"`
}

// NewSale creates a new sale document.
func NewSale(cardCode string, employeeCode, seriesID int) *Sale {
	return &Sale{
		CardCode:     cardCode,
		EmployeeCode: employeeCode,
		SeriesID:     seriesID,
		Lines:        make([]Line, 0),
	}
}

// AddLine appends a line to the document.
func (s *Sale) AddLine(itemCode string, quantity int) {
	s.Lines = append(s.Lines, Line{
		ItemCode: itemCode,
		Quantity: quantity,
	})
}

// Validate implements entity.Validatable.
// It checks internal invariants only; referential checks and price
// resolution happen inside the registration transaction.
func (s *Sale) Validate(ctx context.Context) error {
	if s.CardCode == "" {
		return apperror.NewValidation("partner is required").
			WithDetail("field", "cardCode")
	}
	if s.EmployeeCode <= 0 {
		return apperror.NewValidation("employee is required").
			WithDetail("field", "employeeCode")
	}
	if s.SeriesID <= 0 {
		return apperror.NewValidation("series is required").
			WithDetail("field", "seriesId")
	}
	if len(s.Lines) == 0 {
		return apperror.NewValidation("at least one line is required").
			WithDetail("field", "lines")
	}

	for i, line := range s.Lines {
		if line.ItemCode == "" {
			return apperror.NewValidation("item code is required").
				WithDetail("field", "lines").
				WithDetail("lineNo", i+1)
		}
		if line.Quantity <= 0 {
			return apperror.NewValidation("quantity must be positive").
				WithDetail("field", "lines").
				WithDetail("lineNo", i+1)
		}
	}

	return nil
}

// applyPrices assigns line numbers, sets resolved unit prices and
// computes line and document totals.
func (s *Sale) applyPrices(prices map[string]types.Money) {
	s.Total = types.Zero()
	for i := range s.Lines {
		s.Lines[i].LineNo = i + 1
		s.Lines[i].Price = prices[s.Lines[i].ItemCode]
		s.Lines[i].LineTotal = types.LineTotal(s.Lines[i].Quantity, s.Lines[i].Price)
		s.Total = s.Total.Add(s.Lines[i].LineTotal)
	}
}
