package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"comercio/internal/core/apperror"
	"comercio/internal/domain"
	"comercio/internal/domain/documents/purchase"
	"comercio/internal/infrastructure/http/v1/dto"
)

// PurchaseHandler handles HTTP requests for purchase documents.
type PurchaseHandler struct {
	*BaseHandler
	service *purchase.Service
}

// NewPurchaseHandler creates a new purchase handler.
func NewPurchaseHandler(base *BaseHandler, service *purchase.Service) *PurchaseHandler {
	return &PurchaseHandler{
		BaseHandler: base,
		service:     service,
	}
}

// Register handles POST /documents/purchases - register a purchase atomically.
func (h *PurchaseHandler) Register(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.RegisterPurchaseRequest
	if !h.BindJSON(c, &req) {
		return
	}

	doc := req.ToEntity()
	if err := h.service.Register(ctx, doc); err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromPurchase(doc))
}

// Get handles GET /documents/purchases/:docNum - get header with lines.
func (h *PurchaseHandler) Get(c *gin.Context) {
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

// List handles GET /documents/purchases - joined listing with filters.
func (h *PurchaseHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	filter := purchase.ListFilter{
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
