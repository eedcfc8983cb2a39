package postgres

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

type fakeArticle struct {
	ItemCode string          `db:"item_code" json:"itemCode"`
	Name     string          `db:"name" json:"name"`
	Price    decimal.Decimal `db:"price" json:"price"`
	MaxLevel int             `db:"max_level" json:"maxLevel"`
	Active   bool            `db:"active" json:"active"`
	Lines    []string        `db:"-" json:"lines"`
	ignored  string
}

func TestExtractDBColumns(t *testing.T) {
	cols := ExtractDBColumns[fakeArticle]()

	expected := []string{"item_code", "name", "price", "max_level", "active"}
	for _, col := range expected {
		assert.Contains(t, cols, col)
	}

	assert.NotContains(t, cols, "-")
	assert.NotContains(t, cols, "ignored")
}

func TestStructToMap(t *testing.T) {
	a := fakeArticle{
		ItemCode: "A-001",
		Name:     "Keyboard",
		Price:    decimal.NewFromFloat(35.50),
		MaxLevel: 20,
		Active:   true,
		Lines:    []string{"skipped"},
	}

	m := StructToMap(a)

	assert.Equal(t, "A-001", m["item_code"])
	assert.Equal(t, "Keyboard", m["name"])
	assert.Equal(t, 20, m["max_level"])
	assert.Equal(t, true, m["active"])
	assert.True(t, a.Price.Equal(m["price"].(decimal.Decimal)))

	// db:"-" and unexported fields stay out of the map
	assert.NotContains(t, m, "-")
	assert.NotContains(t, m, "lines")
}

func TestStructToMap_Pointer(t *testing.T) {
	a := &fakeArticle{ItemCode: "A-002", Name: "Mouse"}

	m := StructToMap(a)

	assert.Equal(t, "A-002", m["item_code"])
	assert.Equal(t, "Mouse", m["name"])
}
