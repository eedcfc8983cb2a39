package dto

import (
	"comercio/internal/domain/catalogs/partner"
)

// CreatePartnerRequest represents a request to create a business partner.
type CreatePartnerRequest struct {
	CardCode string  `json:"cardCode" binding:"required"`
	Name     string  `json:"name" binding:"required"`
	Kind     string  `json:"kind" binding:"required,oneof=C S"`
	Phone    *string `json:"phone,omitempty"`
	Email    *string `json:"email,omitempty"`
	Address  *string `json:"address,omitempty"`
}

// ToEntity converts request to domain entity.
func (r *CreatePartnerRequest) ToEntity() *partner.Partner {
	p := partner.NewPartner(r.CardCode, r.Name, partner.Kind(r.Kind))
	p.Phone = r.Phone
	p.Email = r.Email
	p.Address = r.Address
	return p
}

// UpdatePartnerRequest represents a request to update a business partner.
type UpdatePartnerRequest struct {
	Name    *string `json:"name,omitempty"`
	Kind    *string `json:"kind,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Email   *string `json:"email,omitempty"`
	Address *string `json:"address,omitempty"`
}

// ApplyTo applies updates to an existing entity.
func (r *UpdatePartnerRequest) ApplyTo(p *partner.Partner) {
	if r.Name != nil {
		p.Name = *r.Name
	}
	if r.Kind != nil {
		p.Kind = partner.Kind(*r.Kind)
	}
	if r.Phone != nil {
		p.Phone = r.Phone
	}
	if r.Email != nil {
		p.Email = r.Email
	}
	if r.Address != nil {
		p.Address = r.Address
	}
}
