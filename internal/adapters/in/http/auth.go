package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/dgrijalva/jwt-go"
	"github.com/labstack/echo/v4"
)

const (
	userIDContextKey  = "userID"
	isAdminContextKey = "isAdmin"
)

// AuthMiddleware validates bearer tokens and exposes the caller's identity
// to route handlers.
type AuthMiddleware struct {
	secret []byte
}

// NewAuthMiddleware creates a middleware validating tokens signed with the
// given HMAC secret.
func NewAuthMiddleware(secret string) *AuthMiddleware {
	return &AuthMiddleware{secret: []byte(secret)}
}

// Authenticate rejects requests without a valid bearer token and stores the
// token's subject and admin flag in the echo context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		if header == "" {
			return c.JSON(http.StatusUnauthorized, errorBody("authorization header is missing"))
		}
		tokenString := strings.TrimPrefix(header, "Bearer ")

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("invalid token signing method")
			}
			return m.secret, nil
		})
		if err != nil || !token.Valid {
			return c.JSON(http.StatusUnauthorized, errorBody("invalid or expired token"))
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return c.JSON(http.StatusUnauthorized, errorBody("invalid token claims"))
		}

		sub, _ := claims["sub"].(string)
		if sub == "" {
			return c.JSON(http.StatusUnauthorized, errorBody("token subject is missing"))
		}
		isAdmin, _ := claims["isAdmin"].(bool)

		c.Set(userIDContextKey, sub)
		c.Set(isAdminContextKey, isAdmin)
		return next(c)
	}
}

// RequireAdmin rejects authenticated callers without the admin role.
// Must run after Authenticate.
func (m *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !isAdmin(c) {
			return c.JSON(http.StatusForbidden, errorBody("admin role required"))
		}
		return next(c)
	}
}

func userID(c echo.Context) string {
	id, _ := c.Get(userIDContextKey).(string)
	return id
}

func isAdmin(c echo.Context) bool {
	admin, _ := c.Get(isAdminContextKey).(bool)
	return admin
}
