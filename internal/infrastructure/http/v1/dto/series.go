package dto

import (
	"comercio/internal/domain/catalogs/series"
)

// CreateSeriesRequest represents a request to create a numbering series.
type CreateSeriesRequest struct {
	Name     string `json:"name" binding:"required"`
	DocType  string `json:"docType" binding:"required,oneof=purchase sale"`
	BranchID int    `json:"branchId" binding:"required"`
}

// ToEntity converts request to domain entity.
func (r *CreateSeriesRequest) ToEntity() *series.Series {
	return series.NewSeries(r.Name, series.DocType(r.DocType), r.BranchID)
}

// UpdateSeriesRequest represents a request to update a numbering series.
type UpdateSeriesRequest struct {
	Name     *string `json:"name,omitempty"`
	DocType  *string `json:"docType,omitempty"`
	BranchID *int    `json:"branchId,omitempty"`
}

// ApplyTo applies updates to an existing entity.
func (r *UpdateSeriesRequest) ApplyTo(s *series.Series) {
	if r.Name != nil {
		s.Name = *r.Name
	}
	if r.DocType != nil {
		s.DocType = series.DocType(*r.DocType)
	}
	if r.BranchID != nil {
		s.BranchID = *r.BranchID
	}
}
