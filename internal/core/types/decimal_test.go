package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineTotal(t *testing.T) {
	cases := []struct {
		name     string
		quantity int
		price    string
		want     string
	}{
		{"whole", 3, "10.00", "30.00"},
		{"cents stay exact", 3, "0.10", "0.30"},
		{"zero quantity", 0, "99.99", "0"},
		{"single", 1, "7.25", "7.25"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := LineTotal(tc.quantity, MustMoney(tc.price))
			assert.True(t, got.Equal(MustMoney(tc.want)), "got %s, want %s", got, tc.want)
		})
	}
}

func TestNewMoneyFromString(t *testing.T) {
	m, err := NewMoneyFromString("1234.56")
	require.NoError(t, err)
	assert.Equal(t, "1234.56", m.StringFixed(2))

	_, err = NewMoneyFromString("not-a-number")
	assert.Error(t, err)
}

func TestMustMoney_PanicsOnGarbage(t *testing.T) {
	assert.Panics(t, func() { MustMoney("abc") })
}

func TestZero(t *testing.T) {
	assert.True(t, Zero().IsZero())
}
