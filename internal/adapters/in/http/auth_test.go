package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	httpadapter "printshop/internal/adapters/in/http"

	"github.com/dgrijalva/jwt-go"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signToken(t *testing.T, sub string, isAdmin bool) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":     sub,
		"isAdmin": isAdmin,
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func runProtected(t *testing.T, header string, adminOnly bool) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	auth := httpadapter.NewAuthMiddleware(testSecret)

	handler := func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	}
	wrapped := auth.Authenticate(handler)
	if adminOnly {
		wrapped = auth.Authenticate(auth.RequireAdmin(handler))
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}
	rec := httptest.NewRecorder()
	require.NoError(t, wrapped(e.NewContext(req, rec)))
	return rec
}

func TestAuthenticate_ValidToken(t *testing.T) {
	rec := runProtected(t, "Bearer "+signToken(t, "user-1", false), false)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	rec := runProtected(t, "", false)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticate_BadSignature(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "user-1"})
	signed, err := token.SignedString([]byte("other-secret"))
	require.NoError(t, err)

	rec := runProtected(t, "Bearer "+signed, false)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticate_ExpiredToken(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "user-1",
		"exp": time.Now().Add(-time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)

	rec := runProtected(t, "Bearer "+signed, false)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticate_MissingSubject(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"isAdmin": true})
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)

	rec := runProtected(t, "Bearer "+signed, false)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAdmin_RejectsRegularUser(t *testing.T) {
	rec := runProtected(t, "Bearer "+signToken(t, "user-1", false), true)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireAdmin_AllowsAdmin(t *testing.T) {
	rec := runProtected(t, "Bearer "+signToken(t, "admin-1", true), true)
	assert.Equal(t, http.StatusOK, rec.Code)
}
