package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/hautdegamme/studio-api/internal/model"
	"github.com/hautdegamme/studio-api/internal/store"
)

// ListTeam handles GET /api/team (public): active members only,
// ordered by display position.
func (h *Handler) ListTeam(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Store.ListTeam(true))
}

// ListTeamAll handles GET /api/team/all (admin): the full roster,
// inactive members included.
func (h *Handler) ListTeamAll(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Store.ListTeam(false))
}

// GetTeamMember handles GET /api/team/:id (admin).
func (h *Handler) GetTeamMember(c echo.Context) error {
	m, err := h.Store.GetTeamMember(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Team member not found"})
	}
	return c.JSON(http.StatusOK, m)
}

// CreateTeamMember handles POST /api/team (admin).
func (h *Handler) CreateTeamMember(c echo.Context) error {
	var body struct {
		Name         string `json:"name"`
		Role         string `json:"role"`
		Bio          string `json:"bio"`
		PhotoURL     string `json:"photoUrl"`
		DisplayOrder int    `json:"displayOrder"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	body.Name = strings.TrimSpace(body.Name)
	if body.Name == "" || body.Role == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Name and role are required"})
	}
	m := h.Store.CreateTeamMember(store.TeamMemberInput{
		Name:         body.Name,
		Role:         body.Role,
		Bio:          body.Bio,
		PhotoURL:     body.PhotoURL,
		DisplayOrder: body.DisplayOrder,
	})
	return c.JSON(http.StatusCreated, m)
}

// UpdateTeamMember handles PUT /api/team/:id (admin).
func (h *Handler) UpdateTeamMember(c echo.Context) error {
	var patch model.TeamMemberPatch
	if err := c.Bind(&patch); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	m, err := h.Store.UpdateTeamMember(c.Param("id"), patch)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Team member not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Internal server error"})
	}
	return c.JSON(http.StatusOK, m)
}

// DeleteTeamMember handles DELETE /api/team/:id (admin): hard delete.
func (h *Handler) DeleteTeamMember(c echo.Context) error {
	if err := h.Store.DeleteTeamMember(c.Param("id")); err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Team member not found"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Team member deleted successfully"})
}
