// Package partner provides the business partner catalog.
// Partners are the customers sold to and the suppliers purchased from.
package partner

import (
	"context"
	"regexp"

	"comercio/internal/core/apperror"
)

var emailRE = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// Kind defines the partner kind.
type Kind string

const (
	KindCustomer Kind = "C"
	KindSupplier Kind = "S"
)

// Partner represents a business partner.
type Partner struct {
	// CardCode is the natural key assigned by the operator
	CardCode string `db:"card_code" json:"cardCode"`

	// Name is the display name
	Name string `db:"name" json:"name"`

	// Kind defines whether this is a customer or a supplier
	Kind Kind `db:"kind" json:"kind"`

	// Phone is the primary contact phone
	Phone *string `db:"phone" json:"phone,omitempty"`

	// Email is the primary contact email
	Email *string `db:"email" json:"email,omitempty"`

	// Address is the billing address
	Address *string `db:"address" json:"address,omitempty"`
}

// NewPartner creates a new Partner with required fields.
func NewPartner(cardCode, name string, kind Kind) *Partner {
	return &Partner{
		CardCode: cardCode,
		Name:     name,
		Kind:     kind,
	}
}

// Validate implements entity.Validatable interface.
func (p *Partner) Validate(ctx context.Context) error {
	if p.CardCode == "" {
		return apperror.NewValidation("card code is required").
			WithDetail("field", "cardCode")
	}
	if p.Name == "" {
		return apperror.NewValidation("name is required").
			WithDetail("field", "name")
	}
	if !isValidKind(p.Kind) {
		return apperror.NewValidation("invalid partner kind").
			WithDetail("field", "kind").
			WithDetail("value", string(p.Kind))
	}
	if p.Email != nil && *p.Email != "" && !emailRE.MatchString(*p.Email) {
		return apperror.NewValidation("invalid email format").
			WithDetail("field", "email")
	}
	return nil
}

// IsCustomer returns true if partner is a customer.
func (p *Partner) IsCustomer() bool {
	return p.Kind == KindCustomer
}

// IsSupplier returns true if partner is a supplier.
func (p *Partner) IsSupplier() bool {
	return p.Kind == KindSupplier
}

func isValidKind(k Kind) bool {
	switch k {
	case KindCustomer, KindSupplier:
		return true
	}
	return false
}
