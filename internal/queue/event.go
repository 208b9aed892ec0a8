// Package queue defines message payloads exchanged over the message broker.
package queue

// Event kinds published on the reservation.events queue.
const (
	KindReservationCreated       = "reservation.created"
	KindReservationStatusChanged = "reservation.status_changed"
)

// ReservationEvent is published after a booking is created or its
// status changes.  It carries enough information for downstream
// consumers to log or notify without querying the store.
type ReservationEvent struct {
	Kind          string `json:"kind"`
	ReservationID string `json:"reservation_id"`
	ClientID      string `json:"client_id"`
	ServiceID     string `json:"service_id,omitempty"`
	FormationID   string `json:"formation_id,omitempty"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	Status        string `json:"status"`
	OccurredAt    string `json:"occurred_at"`
}
