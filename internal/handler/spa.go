package handler

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/labstack/echo/v4"
)

// SPA serves the pre-built single-page application bundle.  The
// directory comes from a single configuration value (STATIC_DIR) set
// by the deployment environment; there is no runtime path probing.
// Unmatched non-API paths fall through to index.html so the
// client-side router can take over.
type SPA struct {
	Dir string
}

// Serve handles every path the API routers did not claim.  A real file
// under the bundle directory is served as-is; anything else gets
// index.html; a missing bundle produces a diagnostic 404 so deploy
// problems are visible instead of silent blank pages.
func (s SPA) Serve(c echo.Context) error {
	reqPath := filepath.Clean("/" + c.Request().URL.Path)
	full := filepath.Join(s.Dir, reqPath)
	// Clean + Join keeps the path inside the bundle dir; reject
	// anything that still escapes.
	if !strings.HasPrefix(full, filepath.Clean(s.Dir)) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
	}
	if fi, err := os.Stat(full); err == nil && !fi.IsDir() {
		return c.File(full)
	}

	index := filepath.Join(s.Dir, "index.html")
	if _, err := os.Stat(index); err == nil {
		return c.File(index)
	}
	return c.JSON(http.StatusNotFound, echo.Map{
		"error":     "Frontend files not found",
		"message":   "The application build files could not be located",
		"staticDir": s.Dir,
	})
}
