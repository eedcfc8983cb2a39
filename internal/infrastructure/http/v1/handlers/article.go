package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"comercio/internal/core/apperror"
	"comercio/internal/domain/catalogs/article"
	"comercio/internal/infrastructure/http/v1/dto"
)

// ArticleHandler handles HTTP requests for the article catalog.
// Embeds the generic catalog handler and adds the active toggle.
type ArticleHandler struct {
	*CatalogHandler[*article.Article, string, dto.CreateArticleRequest, dto.UpdateArticleRequest]
	service *article.Service
}

// NewArticleHandler creates a new article handler.
func NewArticleHandler(base *BaseHandler, service *article.Service) *ArticleHandler {
	cfg := CatalogHandlerConfig[*article.Article, string, dto.CreateArticleRequest, dto.UpdateArticleRequest]{
		Service:    service.CatalogService,
		EntityName: "article",
		ParseKey:   StringKey,
		MapCreateDTO: func(req dto.CreateArticleRequest) *article.Article {
			return req.ToEntity()
		},
		MapUpdateDTO: func(req dto.UpdateArticleRequest, existing *article.Article) *article.Article {
			req.ApplyTo(existing)
			return existing
		},
	}

	return &ArticleHandler{
		CatalogHandler: NewCatalogHandler(base, cfg),
		service:        service,
	}
}

// Delete handles DELETE /catalog/articles/:id
// Articles are never removed: a delete deactivates the article so it
// stays visible in past documents.
func (h *ArticleHandler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.service.SetActive(ctx, c.Param("id"), false); err != nil {
		h.Error(c, err)
		return
	}

	h.Success(c, "article deactivated")
}

// SetActive handles PATCH /catalog/articles/:id/state/:active
func (h *ArticleHandler) SetActive(c *gin.Context) {
	ctx := c.Request.Context()

	active, err := strconv.ParseBool(c.Param("active"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid state value").
			WithDetail("value", c.Param("active")))
		return
	}

	if err := h.service.SetActive(ctx, c.Param("id"), active); err != nil {
		h.Error(c, err)
		return
	}

	h.Success(c, "article updated")
}
