// Package handlers provides HTTP request handlers.
package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"comercio/internal/core/apperror"
	"comercio/internal/core/entity"
	"comercio/internal/domain"
	"comercio/internal/infrastructure/http/v1/dto"
)

// StringKey parses a string route key (identity).
func StringKey(raw string) (string, error) {
	return raw, nil
}

// IntKey parses an integer route key.
func IntKey(raw string) (int, error) {
	return strconv.Atoi(raw)
}

// CatalogHandler provides generic HTTP handlers for catalog entities.
type CatalogHandler[T entity.Validatable, K comparable, CreateDTO any, UpdateDTO any] struct {
	*BaseHandler
	service    *domain.CatalogService[T, K]
	entityName string

	// Mapper functions
	parseKey     func(raw string) (K, error)
	mapCreateDTO func(dto CreateDTO) T
	mapUpdateDTO func(dto UpdateDTO, existing T) T
}

// CatalogHandlerConfig configures the catalog handler.
type CatalogHandlerConfig[T entity.Validatable, K comparable, CreateDTO any, UpdateDTO any] struct {
	Service      *domain.CatalogService[T, K]
	EntityName   string
	ParseKey     func(raw string) (K, error)
	MapCreateDTO func(dto CreateDTO) T
	MapUpdateDTO func(dto UpdateDTO, existing T) T
}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler[T entity.Validatable, K comparable, CreateDTO any, UpdateDTO any](
	base *BaseHandler,
	cfg CatalogHandlerConfig[T, K, CreateDTO, UpdateDTO],
) *CatalogHandler[T, K, CreateDTO, UpdateDTO] {
	return &CatalogHandler[T, K, CreateDTO, UpdateDTO]{
		BaseHandler:  base,
		service:      cfg.Service,
		entityName:   cfg.EntityName,
		parseKey:     cfg.ParseKey,
		mapCreateDTO: cfg.MapCreateDTO,
		mapUpdateDTO: cfg.MapUpdateDTO,
	}
}

// List handles GET /{entity} - list with filtering and pagination.
func (h *CatalogHandler[T, K, CreateDTO, UpdateDTO]) List(c *gin.Context) {
	ctx := c.Request.Context()

	filter := domain.DefaultListFilter()
	filter.Search = c.Query("search")
	filter.Limit = h.ParseIntQuery(c, "limit", 50)
	filter.Offset = h.ParseIntQuery(c, "offset", 0)
	filter.OrderBy = c.Query("orderBy")

	// state=active|inactive|all; "all" (or absence) disables the filter
	switch c.Query("state") {
	case "active":
		val := true
		filter.Active = &val
	case "inactive":
		val := false
		filter.Active = &val
	}

	result, err := h.service.List(ctx, filter)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.ListResponse{
		Items:      result.Items,
		TotalCount: result.TotalCount,
		Limit:      result.Limit,
		Offset:     result.Offset,
	})
}

// Get handles GET /{entity}/:id - get single entity.
func (h *CatalogHandler[T, K, CreateDTO, UpdateDTO]) Get(c *gin.Context) {
	ctx := c.Request.Context()

	key, err := h.parseKey(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid key format"))
		return
	}

	record, err := h.service.GetByKey(ctx, key)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, record)
}

// Create handles POST /{entity} - create new entity.
func (h *CatalogHandler[T, K, CreateDTO, UpdateDTO]) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req CreateDTO
	if !h.BindJSON(c, &req) {
		return
	}

	record := h.mapCreateDTO(req)
	if err := h.service.Create(ctx, record); err != nil {
		h.Error(c, err)
		return
	}

	h.Created(c, record)
}

// Update handles PUT /{entity}/:id - update existing entity.
func (h *CatalogHandler[T, K, CreateDTO, UpdateDTO]) Update(c *gin.Context) {
	ctx := c.Request.Context()

	key, err := h.parseKey(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid key format"))
		return
	}

	var req UpdateDTO
	if !h.BindJSON(c, &req) {
		return
	}

	existing, err := h.service.GetByKey(ctx, key)
	if err != nil {
		h.Error(c, err)
		return
	}

	updated := h.mapUpdateDTO(req, existing)
	if err := h.service.Update(ctx, updated); err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, updated)
}

// Delete handles DELETE /{entity}/:id - delete entity.
func (h *CatalogHandler[T, K, CreateDTO, UpdateDTO]) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	key, err := h.parseKey(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid key format"))
		return
	}

	if err := h.service.Delete(ctx, key); err != nil {
		h.Error(c, err)
		return
	}

	h.NoContent(c)
}
