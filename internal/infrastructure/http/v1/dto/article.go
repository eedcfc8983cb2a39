package dto

import (
	"comercio/internal/core/types"
	"comercio/internal/domain/catalogs/article"
)

// CreateArticleRequest represents a request to create an article.
type CreateArticleRequest struct {
	ItemCode string      `json:"itemCode" binding:"required"`
	Name     string      `json:"name" binding:"required"`
	Price    types.Money `json:"price"`
	MaxLevel int         `json:"maxLevel" binding:"gte=0"`
}

// ToEntity converts request to domain entity.
func (r *CreateArticleRequest) ToEntity() *article.Article {
	a := article.NewArticle(r.ItemCode, r.Name, r.Price)
	a.MaxLevel = r.MaxLevel
	return a
}

// UpdateArticleRequest represents a request to update an article.
type UpdateArticleRequest struct {
	Name     *string      `json:"name,omitempty"`
	Price    *types.Money `json:"price,omitempty"`
	MaxLevel *int         `json:"maxLevel,omitempty"`
	Active   *bool        `json:"active,omitempty"`
}

// ApplyTo applies updates to an existing entity.
func (r *UpdateArticleRequest) ApplyTo(a *article.Article) {
	if r.Name != nil {
		a.Name = *r.Name
	}
	if r.Price != nil {
		a.Price = *r.Price
	}
	if r.MaxLevel != nil {
		a.MaxLevel = *r.MaxLevel
	}
	if r.Active != nil {
		a.Active = *r.Active
	}
}
