package auth

import (
	"context"
	"errors"

	"github.com/atlasdesk/support-backend/internal/shared"
	"github.com/labstack/echo/v4"
)

type contextKey string

const claimsKey contextKey = "jwt_claims"

type Middleware struct {
	validator *JWTValidator
}

func NewMiddleware(validator *JWTValidator) *Middleware {
	return &Middleware{validator: validator}
}

func (m *Middleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			// Websocket clients cannot set headers from the browser;
			// they pass the token as a query parameter instead.
			authHeader = c.QueryParam("token")
		}
		if authHeader == "" {
			return shared.Unauthorized("missing_token", "authorization required")
		}

		claims, err := m.validator.Validate(authHeader)
		if err != nil {
			if errors.Is(err, ErrExpiredToken) {
				return shared.Unauthorized("token_expired", "token has expired")
			}
			return shared.Unauthorized("invalid_token", "invalid or malformed token")
		}

		ctx := context.WithValue(c.Request().Context(), claimsKey, claims)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

func GetClaims(c echo.Context) *Claims {
	claims, ok := c.Request().Context().Value(claimsKey).(*Claims)
	if !ok {
		return nil
	}
	return claims
}

func RequireAuth(c echo.Context) (string, error) {
	claims := GetClaims(c)
	if claims == nil {
		return "", shared.Unauthorized("auth_required", "authentication required")
	}
	return claims.OperatorID, nil
}

func SetClaimsForTest(c echo.Context, claims *Claims) {
	ctx := context.WithValue(c.Request().Context(), claimsKey, claims)
	c.SetRequest(c.Request().WithContext(ctx))
}
