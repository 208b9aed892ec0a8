package middleware // declare the middleware package; contains reusable HTTP middleware functions

import (
	"net/http" // HTTP status codes for responses
	"strings"  // string utilities for prefix checking and trimming

	"github.com/golang-jwt/jwt/v5" // JWT library for parsing and validating tokens
	"github.com/labstack/echo/v4"  // Echo framework used for defining middleware and handlers
)

// JWTAuth returns an Echo middleware that validates a Bearer access
// token and injects the token's id, email and role claims into the
// request context.  The provided secret must match the one used when
// issuing tokens.  A missing token yields 401; a token that fails
// signature or expiry checks yields 403.  Handlers behind this
// middleware read the claims via c.Get("user_id") / c.Get("email") /
// c.Get("role").
func JWTAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// A valid header starts with "Bearer " followed by the JWT.
			auth := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(auth, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Access token required"})
			}
			raw := strings.TrimPrefix(auth, "Bearer ")

			// Parse with the HS256 secret.  The callback pins the
			// signing algorithm so tokens signed with anything else
			// are rejected outright.
			tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, echo.ErrUnauthorized
				}
				return []byte(secret), nil
			})
			if err != nil || !tok.Valid {
				return c.JSON(http.StatusForbidden, echo.Map{"error": "Invalid token"})
			}

			claims, ok := tok.Claims.(jwt.MapClaims)
			if !ok {
				return c.JSON(http.StatusForbidden, echo.Map{"error": "Invalid token"})
			}

			// Stash the decoded claims for handlers and the admin
			// gate.  Claims are trusted for the rest of this request.
			if v, ok := claims["id"].(string); ok {
				c.Set("user_id", v)
			}
			if v, ok := claims["email"].(string); ok {
				c.Set("email", v)
			}
			if v, ok := claims["role"].(string); ok {
				c.Set("role", v)
			}
			return next(c)
		}
	}
}
