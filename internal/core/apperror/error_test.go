package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactoryStatuses(t *testing.T) {
	cases := []struct {
		name   string
		err    *AppError
		code   string
		status int
	}{
		{"validation", NewValidation("bad input"), CodeValidation, http.StatusBadRequest},
		{"referential", NewReferential("article", "A-001"), CodeReferential, http.StatusBadRequest},
		{"not found", NewNotFound("article", "A-001"), CodeNotFound, http.StatusNotFound},
		{"unauthorized", NewUnauthorized("invalid credentials"), CodeUnauthorized, http.StatusUnauthorized},
		{"forbidden", NewForbidden("account is disabled"), CodeForbidden, http.StatusForbidden},
		{"conflict", NewConflict("record is referenced"), CodeConflict, http.StatusConflict},
		{"duplicate", NewDuplicate("user", "username", "maria"), CodeDuplicate, http.StatusConflict},
		{"internal", NewInternal(errors.New("boom")), CodeInternal, http.StatusInternalServerError},
		{"database", NewDatabase(errors.New("boom")), CodeDatabase, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.code, tc.err.Code)
			assert.Equal(t, tc.status, tc.err.HTTPStatus)
		})
	}
}

func TestReferentialDetails(t *testing.T) {
	err := NewReferential("partner", "C-001")
	assert.Equal(t, "partner", err.Details["entity"])
	assert.Equal(t, "C-001", err.Details["key"])
	assert.Contains(t, err.Message, "partner")
}

func TestWithDetailAndCause(t *testing.T) {
	cause := errors.New("underlying")
	err := NewValidation("price must not be negative").
		WithDetail("field", "price").
		WithCause(cause)

	assert.Equal(t, "price", err.Details["field"])
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "underlying")
}

func TestAsAppError_ThroughWrapping(t *testing.T) {
	inner := NewNotFound("sale", int64(42))
	wrapped := fmt.Errorf("load document: %w", inner)

	appErr, ok := AsAppError(wrapped)
	require.True(t, ok)
	assert.Equal(t, CodeNotFound, appErr.Code)

	assert.True(t, IsNotFound(wrapped))
	assert.False(t, IsReferential(wrapped))
	assert.Equal(t, http.StatusNotFound, GetHTTPStatus(wrapped))
}

func TestGetHTTPStatus_PlainError(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, GetHTTPStatus(errors.New("boom")))
}

func TestHelpers_NilError(t *testing.T) {
	assert.False(t, IsNotFound(nil))
	assert.False(t, IsAppError(nil))
}
