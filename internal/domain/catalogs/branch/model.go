// Package branch provides the Branch catalog.
// Branches are the physical locations series of documents belong to.
package branch

import (
	"context"

	"comercio/internal/core/apperror"
)

// Branch represents a company location.
type Branch struct {
	// ID is the generated branch number
	ID int `db:"id" json:"id"`

	// Name is the display name
	Name string `db:"name" json:"name"`

	// Address is the street address
	Address *string `db:"address" json:"address,omitempty"`
}

// NewBranch creates a new Branch.
func NewBranch(name string) *Branch {
	return &Branch{Name: name}
}

// Validate implements entity.Validatable interface.
func (b *Branch) Validate(ctx context.Context) error {
	if b.Name == "" {
		return apperror.NewValidation("name is required").
			WithDetail("field", "name")
	}
	return nil
}
