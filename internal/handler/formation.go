package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/hautdegamme/studio-api/internal/model"
	"github.com/hautdegamme/studio-api/internal/store"
)

// ListFormations handles GET /api/formations (public): active only.
func (h *Handler) ListFormations(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Store.ListFormations())
}

// GetFormation handles GET /api/formations/:id (public).
func (h *Handler) GetFormation(c echo.Context) error {
	f, err := h.Store.GetFormation(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Formation not found"})
	}
	return c.JSON(http.StatusOK, f)
}

// CreateFormation handles POST /api/formations (admin).
func (h *Handler) CreateFormation(c echo.Context) error {
	var body struct {
		Title       string  `json:"title"`
		Description string  `json:"description"`
		Duration    int     `json:"duration"`
		Level       string  `json:"level"`
		Price       float64 `json:"price"`
		MaxStudents int     `json:"maxStudents"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	body.Title = strings.TrimSpace(body.Title)
	if body.Title == "" || body.Description == "" || body.Duration <= 0 || body.Price <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Missing required fields"})
	}
	f := h.Store.CreateFormation(store.FormationInput{
		Title:       body.Title,
		Description: body.Description,
		Duration:    body.Duration,
		Level:       body.Level,
		Price:       body.Price,
		MaxStudents: body.MaxStudents,
	})
	return c.JSON(http.StatusCreated, f)
}

// UpdateFormation handles PUT /api/formations/:id (admin).
func (h *Handler) UpdateFormation(c echo.Context) error {
	var patch model.FormationPatch
	if err := c.Bind(&patch); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	f, err := h.Store.UpdateFormation(c.Param("id"), patch)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Formation not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Internal server error"})
	}
	return c.JSON(http.StatusOK, f)
}

// DeleteFormation handles DELETE /api/formations/:id (admin): soft delete.
func (h *Handler) DeleteFormation(c echo.Context) error {
	if err := h.Store.DeleteFormation(c.Param("id")); err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Formation not found"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Formation deleted successfully"})
}
