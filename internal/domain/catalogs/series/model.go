// Package series provides the document Series catalog.
// A series groups document numbers per branch and document type.
package series

import (
	"context"

	"comercio/internal/core/apperror"
)

// DocType defines which kind of documents a series numbers.
type DocType string

const (
	DocTypePurchase DocType = "purchase"
	DocTypeSale     DocType = "sale"
)

// Series represents a document numbering series.
type Series struct {
	// ID is the generated series number
	ID int `db:"id" json:"id"`

	// Name is the display name
	Name string `db:"name" json:"name"`

	// DocType is the document type this series applies to
	DocType DocType `db:"doc_type" json:"docType"`

	// BranchID references the owning branch
	BranchID int `db:"branch_id" json:"branchId"`
}

// NewSeries creates a new Series.
func NewSeries(name string, docType DocType, branchID int) *Series {
	return &Series{
		Name:     name,
		DocType:  docType,
		BranchID: branchID,
	}
}

// Validate implements entity.Validatable interface.
func (s *Series) Validate(ctx context.Context) error {
	if s.Name == "" {
		return apperror.NewValidation("name is required").
			WithDetail("field", "name")
	}
	if !isValidDocType(s.DocType) {
		return apperror.NewValidation("invalid document type").
			WithDetail("field", "docType").
			WithDetail("value", string(s.DocType))
	}
	if s.BranchID <= 0 {
		return apperror.NewValidation("branch is required").
			WithDetail("field", "branchId")
	}
	return nil
}

func isValidDocType(t DocType) bool {
	switch t {
	case DocTypePurchase, DocTypeSale:
		return true
	}
	return false
}
