package partner

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"comercio/internal/core/apperror"
)

func strPtr(s string) *string { return &s }

func TestPartnerValidate(t *testing.T) {
	t.Run("valid customer", func(t *testing.T) {
		p := NewPartner("C-001", "Acme Retail", KindCustomer)
		assert.NoError(t, p.Validate(context.Background()))
	})

	t.Run("valid supplier with contact", func(t *testing.T) {
		p := NewPartner("S-001", "Parts Inc", KindSupplier)
		p.Email = strPtr("sales@parts.example")
		p.Phone = strPtr("+52 555 0100")
		assert.NoError(t, p.Validate(context.Background()))
	})

	cases := []struct {
		name   string
		mutate func(*Partner)
		field  string
	}{
		{"missing card code", func(p *Partner) { p.CardCode = "" }, "cardCode"},
		{"missing name", func(p *Partner) { p.Name = "" }, "name"},
		{"unknown kind", func(p *Partner) { p.Kind = "X" }, "kind"},
		{"malformed email", func(p *Partner) { p.Email = strPtr("not-an-email") }, "email"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPartner("C-001", "Acme Retail", KindCustomer)
			tc.mutate(p)

			err := p.Validate(context.Background())
			require.Error(t, err)

			appErr, ok := apperror.AsAppError(err)
			require.True(t, ok)
			assert.Equal(t, apperror.CodeValidation, appErr.Code)
			assert.Equal(t, tc.field, appErr.Details["field"])
		})
	}

	t.Run("empty email pointer allowed", func(t *testing.T) {
		p := NewPartner("C-001", "Acme Retail", KindCustomer)
		p.Email = strPtr("")
		assert.NoError(t, p.Validate(context.Background()))
	})
}

func TestPartnerKindHelpers(t *testing.T) {
	assert.True(t, NewPartner("C-001", "Acme", KindCustomer).IsCustomer())
	assert.False(t, NewPartner("C-001", "Acme", KindCustomer).IsSupplier())
	assert.True(t, NewPartner("S-001", "Parts", KindSupplier).IsSupplier())
}
