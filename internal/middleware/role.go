package middleware // middleware provides shared request processing for handlers

import (
	"net/http" // http package defines standard HTTP status codes

	"github.com/labstack/echo/v4" // echo provides middleware chaining and context

	"github.com/hautdegamme/studio-api/internal/model"
)

// RequireAdmin returns a middleware that enforces the ADMIN role on
// back-office routes.  It assumes JWTAuth ran first and stored the
// role claim in the context under "role"; a missing or non-admin role
// aborts the request with 403 Forbidden.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := c.Get("role").(string)
			if !ok || role != model.RoleAdmin {
				return c.JSON(http.StatusForbidden, echo.Map{"error": "Admin access required"})
			}
			return next(c)
		}
	}
}
