package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hautdegamme/studio-api/internal/store"
)

// ExportBackup handles GET /api/backup/export (admin): one JSON
// document holding the site settings, content blocks and themes.  The
// admin screen offers it as a downloadable file.
func (h *Handler) ExportBackup(c echo.Context) error {
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="studio-backup.json"`)
	return c.JSON(http.StatusOK, h.Store.ExportBackup())
}

// ImportBackup handles POST /api/backup/import (admin): replaces
// settings, content and themes with the uploaded export.  The store
// swaps all three collections in one critical section.
func (h *Handler) ImportBackup(c echo.Context) error {
	var b store.Backup
	if err := c.Bind(&b); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid backup payload"})
	}
	if b.Version != 1 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "unsupported backup version"})
	}
	h.Store.ImportBackup(b)
	return c.JSON(http.StatusOK, echo.Map{"message": "Backup restored successfully"})
}
