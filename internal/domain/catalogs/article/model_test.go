package article

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"comercio/internal/core/apperror"
	"comercio/internal/core/types"
)

func TestArticleValidate(t *testing.T) {
	valid := func() *Article {
		return NewArticle("A-001", "Widget", types.MustMoney("10.00"))
	}

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, valid().Validate(context.Background()))
	})

	cases := []struct {
		name   string
		mutate func(*Article)
		field  string
	}{
		{"missing item code", func(a *Article) { a.ItemCode = "" }, "itemCode"},
		{"missing name", func(a *Article) { a.Name = "" }, "name"},
		{"negative price", func(a *Article) { a.Price = types.MustMoney("-0.01") }, "price"},
		{"negative max level", func(a *Article) { a.MaxLevel = -1 }, "maxLevel"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := valid()
			tc.mutate(a)

			err := a.Validate(context.Background())
			require.Error(t, err)

			appErr, ok := apperror.AsAppError(err)
			require.True(t, ok)
			assert.Equal(t, apperror.CodeValidation, appErr.Code)
			assert.Equal(t, tc.field, appErr.Details["field"])
		})
	}
}

func TestArticle_ZeroPriceAllowed(t *testing.T) {
	a := NewArticle("A-001", "Free sample", types.Zero())
	assert.NoError(t, a.Validate(context.Background()))
}

func TestNewArticle_ActiveByDefault(t *testing.T) {
	assert.True(t, NewArticle("A-001", "Widget", types.Zero()).Active)
}
