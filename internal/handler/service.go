package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/hautdegamme/studio-api/internal/model"
	"github.com/hautdegamme/studio-api/internal/store"
)

// ListServices handles GET /api/services (public): only active
// services are returned, soft-deleted ones never show up here.
func (h *Handler) ListServices(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Store.ListServices())
}

// GetService handles GET /api/services/:id (public).  Soft-deleted
// services stay reachable by id with isActive=false.
func (h *Handler) GetService(c echo.Context) error {
	sv, err := h.Store.GetService(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Service not found"})
	}
	return c.JSON(http.StatusOK, sv)
}

// CreateService handles POST /api/services (admin).  All four fields
// are required; price and duration must be positive.
func (h *Handler) CreateService(c echo.Context) error {
	var body struct {
		Name        string  `json:"name"`
		Description string  `json:"description"`
		Price       float64 `json:"price"`
		Duration    int     `json:"duration"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	body.Name = strings.TrimSpace(body.Name)
	if body.Name == "" || body.Description == "" || body.Price <= 0 || body.Duration <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Missing required fields"})
	}
	sv := h.Store.CreateService(store.ServiceInput{
		Name:        body.Name,
		Description: body.Description,
		Price:       body.Price,
		Duration:    body.Duration,
	})
	return c.JSON(http.StatusCreated, sv)
}

// UpdateService handles PUT /api/services/:id (admin): partial update,
// absent fields are left unchanged.
func (h *Handler) UpdateService(c echo.Context) error {
	var patch model.ServicePatch
	if err := c.Bind(&patch); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	sv, err := h.Store.UpdateService(c.Param("id"), patch)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Service not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Internal server error"})
	}
	return c.JSON(http.StatusOK, sv)
}

// DeleteService handles DELETE /api/services/:id (admin): soft delete,
// the record survives with isActive=false.
func (h *Handler) DeleteService(c echo.Context) error {
	if err := h.Store.DeleteService(c.Param("id")); err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Service not found"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Service deleted successfully"})
}
