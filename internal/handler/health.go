package handler // declare the package name; contains HTTP handlers

import (
	"net/http" // net/http provides status codes and response helpers

	"github.com/labstack/echo/v4" // echo is the web framework used for this project
)

// Health is a simple liveness endpoint used by load balancers and the
// hosting platform to verify that the service is running.  It requires
// no authentication and always returns the same payload.
func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"status":  "OK",
		"message": "Backend server is running",
	})
}
