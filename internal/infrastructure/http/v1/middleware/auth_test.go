package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appctx "comercio/internal/core/context"
)

type fakeValidator struct {
	user *appctx.UserContext
	err  error
}

func (v *fakeValidator) ValidateToken(tokenString string) (*appctx.UserContext, error) {
	if v.err != nil {
		return nil, v.err
	}
	return v.user, nil
}

func newTestRouter(validator JWTValidator, extra ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(ErrorHandler())

	handlers := append([]gin.HandlerFunc{Auth(validator)}, extra...)
	handlers = append(handlers, func(c *gin.Context) {
		user := appctx.GetUser(c.Request.Context())
		c.JSON(http.StatusOK, gin.H{"username": user.Username})
	})
	r.GET("/protected", handlers...)
	return r
}

func doRequest(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuth_ValidToken(t *testing.T) {
	validator := &fakeValidator{user: &appctx.UserContext{UserID: 1, Username: "maria", Role: "seller"}}
	r := newTestRouter(validator)

	w := doRequest(r, "Bearer good-token")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "maria")
}

func TestAuth_MissingHeader(t *testing.T) {
	r := newTestRouter(&fakeValidator{})

	w := doRequest(r, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "UNAUTHORIZED")
}

func TestAuth_MalformedHeader(t *testing.T) {
	r := newTestRouter(&fakeValidator{})

	w := doRequest(r, "Basic dXNlcjpwYXNz")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuth_InvalidToken(t *testing.T) {
	r := newTestRouter(&fakeValidator{err: errors.New("expired")})

	w := doRequest(r, "Bearer bad-token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireRole_Allows(t *testing.T) {
	validator := &fakeValidator{user: &appctx.UserContext{UserID: 1, Username: "root", Role: "admin"}}
	r := newTestRouter(validator, RequireRole("admin"))

	w := doRequest(r, "Bearer good-token")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireRole_Forbids(t *testing.T) {
	validator := &fakeValidator{user: &appctx.UserContext{UserID: 1, Username: "maria", Role: "seller"}}
	r := newTestRouter(validator, RequireRole("admin"))

	w := doRequest(r, "Bearer good-token")
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "FORBIDDEN")
}
