package handlers

import (
	"comercio/internal/domain/catalogs/partner"
	"comercio/internal/infrastructure/http/v1/dto"
)

// PartnerHTTPHandler is an alias to keep signatures readable.
type PartnerHTTPHandler = CatalogHandler[
	*partner.Partner,
	string,
	dto.CreatePartnerRequest,
	dto.UpdatePartnerRequest,
]

// NewPartnerHandler creates a new business partner handler.
func NewPartnerHandler(base *BaseHandler, service *partner.Service) *PartnerHTTPHandler {
	cfg := CatalogHandlerConfig[
		*partner.Partner,
		string,
		dto.CreatePartnerRequest,
		dto.UpdatePartnerRequest,
	]{
		Service:    service.CatalogService,
		EntityName: "partner",
		ParseKey:   StringKey,
		MapCreateDTO: func(req dto.CreatePartnerRequest) *partner.Partner {
			return req.ToEntity()
		},
		MapUpdateDTO: func(req dto.UpdatePartnerRequest, existing *partner.Partner) *partner.Partner {
			req.ApplyTo(existing)
			return existing
		},
	}

	return NewCatalogHandler(base, cfg)
}
