package model

import "time"

// Reservation statuses.  A reservation always starts PENDING and moves
// through the other states via explicit admin status updates.
const (
	StatusPending   = "PENDING"
	StatusConfirmed = "CONFIRMED"
	StatusCancelled = "CANCELLED"
	StatusCompleted = "COMPLETED"
)

// ValidStatus reports whether s is one of the four reservation states.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// Reservation records a booking for either a service or a formation,
// never both.  The Date field carries the calendar day; Time is the
// slot as free-text "HH:mm".  Reservations are hard-deleted.
//
// Fields:
//  ID          – opaque identifier (random UUID).
//  Date        – booking date.
//  Time        – booking slot, free-text "HH:mm".
//  Status      – one of PENDING / CONFIRMED / CANCELLED / COMPLETED.
//  Notes       – optional free-text note.
//  ClientID    – reference to the booking client.
//  ServiceID   – reference to a service (exclusive with FormationID).
//  FormationID – reference to a formation (exclusive with ServiceID).
//  CreatedAt   – creation timestamp (UTC).
//  UpdatedAt   – last update timestamp (UTC).
type Reservation struct {
	ID          string    `json:"id"`
	Date        time.Time `json:"date"`
	Time        string    `json:"time"`
	Status      string    `json:"status"`
	Notes       string    `json:"notes,omitempty"`
	ClientID    string    `json:"clientId"`
	ServiceID   string    `json:"serviceId,omitempty"`
	FormationID string    `json:"formationId,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ReservationPatch lists the mutable fields of a Reservation.  Status
// changes normally go through the dedicated status endpoint but are
// also accepted here for full admin updates.
type ReservationPatch struct {
	Date        *time.Time `json:"date"`
	Time        *string    `json:"time"`
	Status      *string    `json:"status"`
	Notes       *string    `json:"notes"`
	ClientID    *string    `json:"clientId"`
	ServiceID   *string    `json:"serviceId"`
	FormationID *string    `json:"formationId"`
}
