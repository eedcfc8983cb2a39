// Package article provides the Article catalog.
// Articles are the goods traded in purchase and sale documents.
package article

import (
	"context"

	"comercio/internal/core/apperror"
	"comercio/internal/core/types"
)

// Article represents an item of goods.
type Article struct {
	// ItemCode is the natural key assigned by the operator
	ItemCode string `db:"item_code" json:"itemCode"`

	// Name is the display name
	Name string `db:"name" json:"name"`

	// Price is the current unit sale price
	Price types.Money `db:"price" json:"price"`

	// MaxLevel is the maximum stock level
	MaxLevel int `db:"max_level" json:"maxLevel"`

	// Active marks the article as available for new documents.
	// Inactive articles stay in the catalog for history.
	Active bool `db:"active" json:"active"`
}

// NewArticle creates a new active Article.
func NewArticle(itemCode, name string, price types.Money) *Article {
	return &Article{
		ItemCode: itemCode,
		Name:     name,
		Price:    price,
		Active:   true,
	}
}

// Validate implements entity.Validatable interface.
func (a *Article) Validate(ctx context.Context) error {
	if a.ItemCode == "" {
		return apperror.NewValidation("item code is required").
			WithDetail("field", "itemCode")
	}
	if a.Name == "" {
		return apperror.NewValidation("name is required").
			WithDetail("field", "name")
	}
	if a.Price.IsNegative() {
		return apperror.NewValidation("price must not be negative").
			WithDetail("field", "price").
			WithDetail("value", a.Price.String())
	}
	if a.MaxLevel < 0 {
		return apperror.NewValidation("max level must not be negative").
			WithDetail("field", "maxLevel")
	}
	return nil
}
