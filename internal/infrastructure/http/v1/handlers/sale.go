package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"comercio/internal/core/apperror"
	"comercio/internal/domain"
	"comercio/internal/domain/documents/sale"
	"comercio/internal/infrastructure/http/v1/dto"
)

// SaleHandler handles HTTP requests for sale documents.
type SaleHandler struct {
	*BaseHandler
	service *sale.Service
}

// NewSaleHandler creates a new sale handler.
func NewSaleHandler(base *BaseHandler, service *sale.Service) *SaleHandler {
	return &SaleHandler{
		BaseHandler: base,
		service:     service,
	}
}

// Register handles POST /documents/sales - register a sale atomically.
// Prices come from the article catalog, not from the request.
func (h *SaleHandler) Register(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.RegisterSaleRequest
	if !h.BindJSON(c, &req) {
		return
	}

	doc := req.ToEntity()
	if err := h.service.Register(ctx, doc); err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromSale(doc))
}

// Get handles GET /documents/sales/:docNum - get header with lines.
func (h *SaleHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	docNum, err := strconv.ParseInt(c.Param("docNum"), 10, 64)
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid document number"))
		return
	}

	doc, err := h.service.GetByDocNum(ctx, docNum)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, doc)
}

// List handles GET /documents/sales - joined listing with filters.
func (h *SaleHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	filter := sale.ListFilter{
		ListFilter: domain.DefaultListFilter(),
	}
	filter.Search = c.Query("search")
	filter.Limit = h.ParseIntQuery(c, "limit", 50)
	filter.Offset = h.ParseIntQuery(c, "offset", 0)
	filter.OrderBy = c.Query("orderBy")
	filter.DateFrom = h.ParseDateQuery(c, "dateFrom")
	filter.DateTo = h.ParseDateQuery(c, "dateTo")

	if cardCode := c.Query("cardCode"); cardCode != "" {
		filter.CardCode = &cardCode
	}
	if emp := c.Query("employeeCode"); emp != "" {
		code, err := strconv.Atoi(emp)
		if err != nil {
			h.Error(c, apperror.NewValidation("invalid employeeCode"))
			return
		}
		filter.EmployeeCode = &code
	}

	result, err := h.service.List(ctx, filter)
	if err != nil {
		h.Error(c, err)
		return
	}

	// Document listings are a top-level array, newest first
	h.OK(c, result.Items)
}
