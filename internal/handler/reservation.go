package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/hautdegamme/studio-api/internal/model"
	"github.com/hautdegamme/studio-api/internal/queue"
	queue_publisher "github.com/hautdegamme/studio-api/internal/service"
	"github.com/hautdegamme/studio-api/internal/store"
)

// parseDate accepts both the bare "2006-01-02" the booking form sends
// and full RFC 3339 timestamps.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

// publishEvent fires a reservation event in the background.  The
// request must never wait on (or fail because of) the broker.
func publishEvent(kind string, r model.Reservation) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = queue_publisher.PublishReservationEvent(ctx, queue.ReservationEvent{
			Kind:          kind,
			ReservationID: r.ID,
			ClientID:      r.ClientID,
			ServiceID:     r.ServiceID,
			FormationID:   r.FormationID,
			Date:          r.Date.Format("2006-01-02"),
			Time:          r.Time,
			Status:        r.Status,
			OccurredAt:    time.Now().UTC().Format(time.RFC3339),
		})
	}()
}

// ListReservations handles GET /api/reservations (admin).
func (h *Handler) ListReservations(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Store.ListReservations())
}

// GetReservation handles GET /api/reservations/:id (admin).
func (h *Handler) GetReservation(c echo.Context) error {
	r, err := h.Store.GetReservation(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Reservation not found"})
	}
	return c.JSON(http.StatusOK, r)
}

// CreateReservation handles POST /api/reservations.  Public: this is
// the booking flow, no login required.  The booking must reference
// exactly one of serviceId/formationId, and whatever status the caller
// supplies is discarded — new reservations always start PENDING.
func (h *Handler) CreateReservation(c echo.Context) error {
	var body struct {
		Date        string `json:"date"`
		Time        string `json:"time"`
		Notes       string `json:"notes"`
		ClientID    string `json:"clientId"`
		ServiceID   string `json:"serviceId"`
		FormationID string `json:"formationId"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if body.Date == "" || body.Time == "" || body.ClientID == "" ||
		(body.ServiceID == "" && body.FormationID == "") {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Date, time, clientId, and either serviceId or formationId are required",
		})
	}
	if body.ServiceID != "" && body.FormationID != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Provide either serviceId or formationId, not both"})
	}
	date, err := parseDate(body.Date)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid date format"})
	}

	r, err := h.Store.CreateReservation(store.ReservationInput{
		Date:        date,
		Time:        body.Time,
		Notes:       body.Notes,
		ClientID:    body.ClientID,
		ServiceID:   body.ServiceID,
		FormationID: body.FormationID,
	})
	if err != nil {
		if errors.Is(err, store.ErrBadReference) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Referenced client, service or formation does not exist"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Internal server error"})
	}
	publishEvent(queue.KindReservationCreated, r)
	return c.JSON(http.StatusCreated, r)
}

// UpdateReservation handles PUT /api/reservations/:id (admin): partial
// update of any field, including status for full admin edits.
func (h *Handler) UpdateReservation(c echo.Context) error {
	var body struct {
		Date        *string `json:"date"`
		Time        *string `json:"time"`
		Status      *string `json:"status"`
		Notes       *string `json:"notes"`
		ClientID    *string `json:"clientId"`
		ServiceID   *string `json:"serviceId"`
		FormationID *string `json:"formationId"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	patch := model.ReservationPatch{
		Time:        body.Time,
		Status:      body.Status,
		Notes:       body.Notes,
		ClientID:    body.ClientID,
		ServiceID:   body.ServiceID,
		FormationID: body.FormationID,
	}
	if body.Date != nil {
		date, err := parseDate(*body.Date)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid date format"})
		}
		patch.Date = &date
	}
	if body.Status != nil && !model.ValidStatus(*body.Status) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Valid status is required"})
	}

	r, err := h.Store.UpdateReservation(c.Param("id"), patch)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Reservation not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Internal server error"})
	}
	return c.JSON(http.StatusOK, r)
}

// UpdateReservationStatus handles PATCH /api/reservations/:id/status
// (admin): the only mutation the back office does in bulk, restricted
// to the four-value enum.
func (h *Handler) UpdateReservationStatus(c echo.Context) error {
	var body struct {
		Status string `json:"status"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if !model.ValidStatus(body.Status) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Valid status is required"})
	}
	r, err := h.Store.UpdateReservationStatus(c.Param("id"), body.Status)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Reservation not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Internal server error"})
	}
	publishEvent(queue.KindReservationStatusChanged, r)
	return c.JSON(http.StatusOK, r)
}

// DeleteReservation handles DELETE /api/reservations/:id (admin): hard delete.
func (h *Handler) DeleteReservation(c echo.Context) error {
	if err := h.Store.DeleteReservation(c.Param("id")); err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Reservation not found"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Reservation deleted successfully"})
}
