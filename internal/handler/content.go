package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hautdegamme/studio-api/internal/model"
	"github.com/hautdegamme/studio-api/internal/store"
)

// ListContent handles GET /api/content?page=&section= (public): the
// editable text blocks the frontend renders.  Without parameters the
// whole content table comes back, which is what the admin editor loads.
func (h *Handler) ListContent(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Store.ListContent(c.QueryParam("page"), c.QueryParam("section")))
}

// UpsertContent handles PUT /api/content/:page/:section (admin): the
// body is the free-form JSON object stored as the new block content.
func (h *Handler) UpsertContent(c echo.Context) error {
	var body map[string]any
	if err := c.Bind(&body); err != nil || body == nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	out := h.Store.UpsertContent(c.Param("page"), c.Param("section"), body)
	return c.JSON(http.StatusOK, out)
}

// ListSettings handles GET /api/settings (public): key/value map the
// frontend merges into its defaults.
func (h *Handler) ListSettings(c echo.Context) error {
	settings := h.Store.ListSettings()
	out := make(map[string]any, len(settings))
	for _, s := range settings {
		out[s.Key] = s.Value
	}
	return c.JSON(http.StatusOK, out)
}

// UpsertSetting handles PUT /api/settings/:key (admin).  The body is
// {"value": ...} with any JSON value.
func (h *Handler) UpsertSetting(c echo.Context) error {
	var body struct {
		Value any `json:"value"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if body.Value == nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "value is required"})
	}
	return c.JSON(http.StatusOK, h.Store.UpsertSetting(c.Param("key"), body.Value))
}

// ListThemes handles GET /api/themes (admin).
func (h *Handler) ListThemes(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Store.ListThemes())
}

// ActiveTheme handles GET /api/themes/active (public): the theme the
// site currently renders with.
func (h *Handler) ActiveTheme(c echo.Context) error {
	t, err := h.Store.ActiveTheme()
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "No active theme"})
	}
	return c.JSON(http.StatusOK, t)
}

// CreateTheme handles POST /api/themes (admin).  New themes start
// inactive; activation is a separate explicit step.
func (h *Handler) CreateTheme(c echo.Context) error {
	var body struct {
		Name   string         `json:"name"`
		Colors map[string]any `json:"colors"`
		Fonts  map[string]any `json:"fonts"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if body.Name == "" || len(body.Colors) == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Name and colors are required"})
	}
	return c.JSON(http.StatusCreated, h.Store.CreateTheme(body.Name, body.Colors, body.Fonts))
}

// UpdateTheme handles PUT /api/themes/:id (admin).
func (h *Handler) UpdateTheme(c echo.Context) error {
	var patch model.ThemePatch
	if err := c.Bind(&patch); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	t, err := h.Store.UpdateTheme(c.Param("id"), patch)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Theme not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Internal server error"})
	}
	return c.JSON(http.StatusOK, t)
}

// ActivateTheme handles POST /api/themes/:id/activate (admin): flips
// the single active theme.
func (h *Handler) ActivateTheme(c echo.Context) error {
	t, err := h.Store.ActivateTheme(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Theme not found"})
	}
	return c.JSON(http.StatusOK, t)
}

// DeleteTheme handles DELETE /api/themes/:id (admin).  Deleting the
// active theme is refused to keep the site renderable.
func (h *Handler) DeleteTheme(c echo.Context) error {
	if err := h.Store.DeleteTheme(c.Param("id")); err != nil {
		if errors.Is(err, store.ErrThemeActive) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Active theme cannot be deleted"})
		}
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Theme not found"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Theme deleted successfully"})
}
