// Package purchase provides the Purchase document.
// A purchase records goods received from a supplier: one header plus
// an ordered set of lines, committed as a single unit.
package purchase

import (
	"context"
	"time"

	"comercio/internal/core/apperror"
	"comercio/internal/core/types"
)

// Purchase represents a purchase document header with its lines.
type Purchase struct {
	// DocNum is the document number, assigned by the store on commit
	DocNum int64 `db:"doc_num" json:"docNum"`

	// DocDate is the registration timestamp, assigned on commit
	DocDate time.Time `db:"doc_date" json:"docDate"`

	// CardCode references the supplier partner
	CardCode string `db:"card_code" json:"cardCode"`

	// EmployeeCode references the responsible employee
	EmployeeCode int `db:"employee_code" json:"employeeCode"`

	// SeriesID references the numbering series
	SeriesID int `db:"series_id" json:"seriesId"`

	// Total is the document total, computed from lines on commit
	Total types.Money `db:"total" json:"total"`

	// Table part: purchased goods
	Lines []Line `db:"-" json:"lines"`
}

// Line represents a purchase document line.
type Line struct {
	DocNum int64 `db:"doc_num" json:"-"`

	// LineNo is the 1-based position within the document
	LineNo int `db:"line_no" json:"lineNo"`

	// ItemCode references the article
	ItemCode string `db:"item_code" json:"itemCode"`

	// Quantity of units purchased
	Quantity int `db:"quantity" json:"quantity"`

	// Price is the unit price agreed with the supplier
	Price types.Money `db:"price" json:"price"`

	// TaxRate is the tax percentage applied to the line
	TaxRate int `db:"tax_rate" json:"taxRate"`

	// LineTotal is quantity times price, computed on commit
	LineTotal types.Money `db:"line_total" json:"lineTotal"`
}

// NewPurchase creates a new purchase document.
func NewPurchase(cardCode string, employeeCode, seriesID int) *Purchase {
	return &Purchase{
		CardCode:     cardCode,
		EmployeeCode: employeeCode,
		SeriesID:     seriesID,
		Lines:        make([]Line, 0),
	}
}

// AddLine appends a line to the document.
func (p *Purchase) AddLine(itemCode string, quantity int, price types.Money, taxRate int) {
	p.Lines = append(p.Lines, Line{
		ItemCode: itemCode,
		Quantity: quantity,
		Price:    price,
		TaxRate:  taxRate,
	})
}

// Validate implements entity.Validatable.
// It checks internal invariants only; referential checks against the
// catalogs happen inside the registration transaction.
func (p *Purchase) Validate(ctx context.Context) error {
	if p.CardCode == "" {
		return apperror.NewValidation("supplier is required").
			WithDetail("field", "cardCode")
	}
	if p.EmployeeCode <= 0 {
		return apperror.NewValidation("employee is required").
			WithDetail("field", "employeeCode")
	}
	if p.SeriesID <= 0 {
		return apperror.NewValidation("series is required").
			WithDetail("field", "seriesId")
	}
	if len(p.Lines) == 0 {
		return apperror.NewValidation("at least one line is required").
			WithDetail("field", "lines")
	}

	for i, line := range p.Lines {
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
		if line.Price.IsNegative() {
			return apperror.NewValidation("price must not be negative").
				WithDetail("field", "lines").
				WithDetail("lineNo", i+1)
		}
		if line.TaxRate < 0 || line.TaxRate > 100 {
			return apperror.NewValidation("tax rate must be between 0 and 100").
				WithDetail("field", "lines").
				WithDetail("lineNo", i+1)
		}
	}

	return nil
}

// recalculateTotals assigns line numbers and computes line and document totals.
func (p *Purchase) recalculateTotals() {
	p.Total = types.Zero()
	for i := range p.Lines {
		p.Lines[i].LineNo = i + 1
		p.Lines[i].LineTotal = types.LineTotal(p.Lines[i].Quantity, p.Lines[i].Price)
		p.Total = p.Total.Add(p.Lines[i].LineTotal)
	}
}
