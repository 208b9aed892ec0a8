package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/hautdegamme/studio-api/internal/model"
	"github.com/hautdegamme/studio-api/internal/store"
)

// ListClients handles GET /api/clients (admin): every client, there is
// no soft delete on this collection.
func (h *Handler) ListClients(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Store.ListClients())
}

// GetClient handles GET /api/clients/:id (admin).
func (h *Handler) GetClient(c echo.Context) error {
	cl, err := h.Store.GetClient(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Client not found"})
	}
	return c.JSON(http.StatusOK, cl)
}

// CreateClient handles POST /api/clients.  This endpoint is public:
// the booking flow creates the client record before the reservation
// and must not require a login.  Duplicate emails are a 400, matching
// what the booking form expects.
func (h *Handler) CreateClient(c echo.Context) error {
	var body struct {
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
		Email     string `json:"email"`
		Phone     string `json:"phone"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	body.FirstName = strings.TrimSpace(body.FirstName)
	body.LastName = strings.TrimSpace(body.LastName)
	body.Email = strings.TrimSpace(body.Email)
	if body.FirstName == "" || body.LastName == "" || body.Email == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "First name, last name, and email are required"})
	}
	cl, err := h.Store.CreateClient(store.ClientInput{
		FirstName: body.FirstName,
		LastName:  body.LastName,
		Email:     body.Email,
		Phone:     body.Phone,
	})
	if err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Client with this email already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Internal server error"})
	}
	return c.JSON(http.StatusCreated, cl)
}

// UpdateClient handles PUT /api/clients/:id (admin): partial update,
// changing the email re-runs the uniqueness check.
func (h *Handler) UpdateClient(c echo.Context) error {
	var patch model.ClientPatch
	if err := c.Bind(&patch); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	cl, err := h.Store.UpdateClient(c.Param("id"), patch)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Client not found"})
		case errors.Is(err, store.ErrEmailExists):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Client with this email already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Internal server error"})
	}
	return c.JSON(http.StatusOK, cl)
}

// DeleteClient handles DELETE /api/clients/:id (admin): hard delete,
// no cascade to reservations.
func (h *Handler) DeleteClient(c echo.Context) error {
	if err := h.Store.DeleteClient(c.Param("id")); err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Client not found"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Client deleted successfully"})
}
