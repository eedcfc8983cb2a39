package dto

import (
	"comercio/internal/domain/documents/sale"
)

// RegisterSaleRequest represents a request to register a sale document.
// Line prices are not accepted: they are resolved from the article
// catalog at registration time.
type RegisterSaleRequest struct {
	CardCode     string            `json:"cardCode" binding:"required"`
	EmployeeCode int               `json:"employeeCode" binding:"required"`
	SeriesID     int               `json:"seriesId" binding:"required"`
	Lines        []SaleLineRequest `json:"lines" binding:"required,min=1,dive"`
}

// SaleLineRequest represents a line in a sale request.
type SaleLineRequest struct {
	ItemCode string `json:"itemCode" binding:"required"`
	Quantity int    `json:"quantity" binding:"required,gt=0"`
}

// ToEntity converts request to domain entity.
func (r *RegisterSaleRequest) ToEntity() *sale.Sale {
	doc := sale.NewSale(r.CardCode, r.EmployeeCode, r.SeriesID)
	for _, line := range r.Lines {
		doc.AddLine(line.ItemCode, line.Quantity)
	}
	return doc
}

// FromSale builds the registration response for a committed sale.
func FromSale(doc *sale.Sale) RegisterDocumentResponse {
	return RegisterDocumentResponse{
		Success:        true,
		DocumentNumber: doc.DocNum,
		Total:          doc.Total.StringFixed(2),
	}
}
