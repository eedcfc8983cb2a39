package dto

import (
	"comercio/internal/domain/catalogs/branch"
)

// CreateBranchRequest represents a request to create a branch.
type CreateBranchRequest struct {
	Name    string  `json:"name" binding:"required"`
	Address *string `json:"address,omitempty"`
}

// ToEntity converts request to domain entity.
func (r *CreateBranchRequest) ToEntity() *branch.Branch {
	b := branch.NewBranch(r.Name)
	b.Address = r.Address
	return b
}

// UpdateBranchRequest represents a request to update a branch.
type UpdateBranchRequest struct {
	Name    *string `json:"name,omitempty"`
	Address *string `json:"address,omitempty"`
}

// ApplyTo applies updates to an existing entity.
func (r *UpdateBranchRequest) ApplyTo(b *branch.Branch) {
	if r.Name != nil {
		b.Name = *r.Name
	}
	if r.Address != nil {
		b.Address = r.Address
	}
}
