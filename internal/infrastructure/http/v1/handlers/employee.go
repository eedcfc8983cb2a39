package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"comercio/internal/core/apperror"
	"comercio/internal/domain/catalogs/employee"
	"comercio/internal/infrastructure/http/v1/dto"
)

// EmployeeHandler handles HTTP requests for the employee catalog.
// Embeds the generic catalog handler and adds the user lookup.
type EmployeeHandler struct {
	*CatalogHandler[*employee.Employee, int, dto.CreateEmployeeRequest, dto.UpdateEmployeeRequest]
	service *employee.Service
}

// NewEmployeeHandler creates a new employee handler.
func NewEmployeeHandler(base *BaseHandler, service *employee.Service) *EmployeeHandler {
	cfg := CatalogHandlerConfig[
		*employee.Employee,
		int,
		dto.CreateEmployeeRequest,
		dto.UpdateEmployeeRequest,
	]{
		Service:    service.CatalogService,
		EntityName: "employee",
		ParseKey:   IntKey,
		MapCreateDTO: func(req dto.CreateEmployeeRequest) *employee.Employee {
			return req.ToEntity()
		},
		MapUpdateDTO: func(req dto.UpdateEmployeeRequest, existing *employee.Employee) *employee.Employee {
			req.ApplyTo(existing)
			return existing
		},
	}

	return &EmployeeHandler{
		CatalogHandler: NewCatalogHandler(base, cfg),
		service:        service,
	}
}

// ByUser handles GET /catalog/employees/by-user/:userId
func (h *EmployeeHandler) ByUser(c *gin.Context) {
	ctx := c.Request.Context()

	userID, err := strconv.Atoi(c.Param("userId"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid user id"))
		return
	}

	e, err := h.service.GetByUserID(ctx, userID)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, e)
}
