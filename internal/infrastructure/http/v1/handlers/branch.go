package handlers

import (
	"comercio/internal/domain/catalogs/branch"
	"comercio/internal/infrastructure/http/v1/dto"
)

// BranchHTTPHandler is an alias to keep signatures readable.
type BranchHTTPHandler = CatalogHandler[
	*branch.Branch,
	int,
	dto.CreateBranchRequest,
	dto.UpdateBranchRequest,
]

// NewBranchHandler creates a new branch handler.
func NewBranchHandler(base *BaseHandler, service *branch.Service) *BranchHTTPHandler {
	cfg := CatalogHandlerConfig[
		*branch.Branch,
		int,
		dto.CreateBranchRequest,
		dto.UpdateBranchRequest,
	]{
		Service:    service.CatalogService,
		EntityName: "branch",
		ParseKey:   IntKey,
		MapCreateDTO: func(req dto.CreateBranchRequest) *branch.Branch {
			return req.ToEntity()
		},
		MapUpdateDTO: func(req dto.UpdateBranchRequest, existing *branch.Branch) *branch.Branch {
			req.ApplyTo(existing)
			return existing
		},
	}

	return NewCatalogHandler(base, cfg)
}
