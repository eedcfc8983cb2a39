package dto

import (
	"comercio/internal/core/types"
	"comercio/internal/domain/documents/purchase"
)

// RegisterPurchaseRequest represents a request to register a purchase document.
type RegisterPurchaseRequest struct {
	CardCode     string                `json:"cardCode" binding:"required"`
	EmployeeCode int                   `json:"employeeCode" binding:"required"`
	SeriesID     int                   `json:"seriesId" binding:"required"`
	Lines        []PurchaseLineRequest `json:"lines" binding:"required,min=1,dive"`
}

// PurchaseLineRequest represents a line in a purchase request.
type PurchaseLineRequest struct {
	ItemCode string      `json:"itemCode" binding:"required"`
	Quantity int         `json:"quantity" binding:"required,gt=0"`
	Price    types.Money `json:"price"`
	TaxRate  int         `json:"taxRate" binding:"gte=0,lte=100"`
}

// ToEntity converts request to domain entity.
func (r *RegisterPurchaseRequest) ToEntity() *purchase.Purchase {
	doc := purchase.NewPurchase(r.CardCode, r.EmployeeCode, r.SeriesID)
	for _, line := range r.Lines {
		doc.AddLine(line.ItemCode, line.Quantity, line.Price, line.TaxRate)
	}
	return doc
}

// FromPurchase builds the registration response for a committed purchase.
func FromPurchase(doc *purchase.Purchase) RegisterDocumentResponse {
	return RegisterDocumentResponse{
		Success:        true,
		DocumentNumber: doc.DocNum,
		Total:          doc.Total.StringFixed(2),
	}
}
