package store

import (
	"time"

	"github.com/hautdegamme/studio-api/internal/model"
)

// ReservationInput carries the caller-supplied fields for a new
// reservation.  Exactly one of ServiceID / FormationID must be set;
// any caller-supplied status is ignored, bookings always start PENDING.
type ReservationInput struct {
	Date        time.Time
	Time        string
	Notes       string
	ClientID    string
	ServiceID   string
	FormationID string
}

// ListReservations returns every reservation.
func (s *Store) ListReservations() []model.Reservation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Reservation, len(s.reservations))
	copy(out, s.reservations)
	return out
}

// GetReservation returns the reservation with the given id.
func (s *Store) GetReservation(id string) (model.Reservation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.reservations {
		if r.ID == id {
			return r, nil
		}
	}
	return model.Reservation{}, ErrNotFound
}

// refExists checks referenced records without taking the lock; callers
// must hold it.  Soft-deleted services/formations still satisfy the
// reference so historical bookings stay valid.
func (s *Store) refExists(clientID, serviceID, formationID string) bool {
	found := false
	for _, c := range s.clients {
		if c.ID == clientID {
			found = true
			break
		}
	}
	if !found {
		return false
	}
	if serviceID != "" {
		for _, sv := range s.services {
			if sv.ID == serviceID {
				return true
			}
		}
		return false
	}
	for _, f := range s.formations {
		if f.ID == formationID {
			return true
		}
	}
	return false
}

// CreateReservation stores a new booking.  Status is forced to PENDING
// and the client/service/formation references must exist.
func (s *Store) CreateReservation(in ReservationInput) (model.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.refExists(in.ClientID, in.ServiceID, in.FormationID) {
		return model.Reservation{}, ErrBadReference
	}
	now := s.now()
	r := model.Reservation{
		ID:          s.newID(),
		Date:        in.Date,
		Time:        in.Time,
		Status:      model.StatusPending,
		Notes:       in.Notes,
		ClientID:    in.ClientID,
		ServiceID:   in.ServiceID,
		FormationID: in.FormationID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.reservations = append(s.reservations, r)
	return r, nil
}

// UpdateReservation merges the patch over the existing record.
func (s *Store) UpdateReservation(id string, p model.ReservationPatch) (model.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.reservations {
		if s.reservations[i].ID != id {
			continue
		}
		r := &s.reservations[i]
		if p.Date != nil {
			r.Date = *p.Date
		}
		if p.Time != nil {
			r.Time = *p.Time
		}
		if p.Status != nil {
			r.Status = *p.Status
		}
		if p.Notes != nil {
			r.Notes = *p.Notes
		}
		if p.ClientID != nil {
			r.ClientID = *p.ClientID
		}
		if p.ServiceID != nil {
			r.ServiceID = *p.ServiceID
		}
		if p.FormationID != nil {
			r.FormationID = *p.FormationID
		}
		r.UpdatedAt = s.now()
		return *r, nil
	}
	return model.Reservation{}, ErrNotFound
}

// UpdateReservationStatus changes only the status field.  The caller
// is expected to have validated the value against the status enum.
func (s *Store) UpdateReservationStatus(id, status string) (model.Reservation, error) {
	return s.UpdateReservation(id, model.ReservationPatch{Status: &status})
}

// DeleteReservation physically removes the reservation.
func (s *Store) DeleteReservation(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.reservations {
		if s.reservations[i].ID == id {
			s.reservations = append(s.reservations[:i], s.reservations[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
