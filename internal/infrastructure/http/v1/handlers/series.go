package handlers

import (
	"comercio/internal/domain/catalogs/series"
	"comercio/internal/infrastructure/http/v1/dto"
)

// SeriesHTTPHandler is an alias to keep signatures readable.
type SeriesHTTPHandler = CatalogHandler[
	*series.Series,
	int,
	dto.CreateSeriesRequest,
	dto.UpdateSeriesRequest,
]

// NewSeriesHandler creates a new numbering series handler.
func NewSeriesHandler(base *BaseHandler, service *series.Service) *SeriesHTTPHandler {
	cfg := CatalogHandlerConfig[
		*series.Series,
		int,
		dto.CreateSeriesRequest,
		dto.UpdateSeriesRequest,
	]{
		Service:    service.CatalogService,
		EntityName: "series",
		ParseKey:   IntKey,
		MapCreateDTO: func(req dto.CreateSeriesRequest) *series.Series {
			return req.ToEntity()
		},
		MapUpdateDTO: func(req dto.UpdateSeriesRequest, existing *series.Series) *series.Series {
			req.ApplyTo(existing)
			return existing
		},
	}

	return NewCatalogHandler(base, cfg)
}
