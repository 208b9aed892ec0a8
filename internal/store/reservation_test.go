package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hautdegamme/studio-api/internal/model"
)

// seedBooking creates the minimum graph a reservation needs: one
// client and one service.
func seedBooking(t *testing.T, st *Store) (model.Client, model.Service) {
	t.Helper()
	c, err := st.CreateClient(ClientInput{FirstName: "Marie", LastName: "Dupont", Email: "marie@email.com"})
	require.NoError(t, err)
	sv := st.CreateService(ServiceInput{Name: "Maquillage Jour", Price: 45, Duration: 60})
	return c, sv
}

func TestCreateReservationForcesPending(t *testing.T) {
	st := newTestStore()
	c, sv := seedBooking(t, st)

	r, err := st.CreateReservation(ReservationInput{
		Date:      time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		Time:      "14:00",
		ClientID:  c.ID,
		ServiceID: sv.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, model.StatusPending, r.Status)
}

func TestCreateReservationValidatesReferences(t *testing.T) {
	st := newTestStore()
	c, sv := seedBooking(t, st)

	_, err := st.CreateReservation(ReservationInput{Time: "14:00", ClientID: "ghost", ServiceID: sv.ID})
	assert.ErrorIs(t, err, ErrBadReference)

	_, err = st.CreateReservation(ReservationInput{Time: "14:00", ClientID: c.ID, ServiceID: "ghost"})
	assert.ErrorIs(t, err, ErrBadReference)

	_, err = st.CreateReservation(ReservationInput{Time: "14:00", ClientID: c.ID, FormationID: "ghost"})
	assert.ErrorIs(t, err, ErrBadReference)

	assert.Empty(t, st.ListReservations())
}

func TestCreateReservationAcceptsSoftDeletedService(t *testing.T) {
	st := newTestStore()
	c, sv := seedBooking(t, st)
	require.NoError(t, st.DeleteService(sv.ID))

	// Soft-deleted catalog entries still satisfy the reference check.
	_, err := st.CreateReservation(ReservationInput{Time: "14:00", ClientID: c.ID, ServiceID: sv.ID})
	assert.NoError(t, err)
}

func TestUpdateReservationStatus(t *testing.T) {
	st := newTestStore()
	c, sv := seedBooking(t, st)
	r, err := st.CreateReservation(ReservationInput{Time: "14:00", ClientID: c.ID, ServiceID: sv.ID})
	require.NoError(t, err)

	got, err := st.UpdateReservationStatus(r.ID, model.StatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, model.StatusConfirmed, got.Status)
	assert.True(t, got.UpdatedAt.After(r.UpdatedAt))

	// The rest of the record is untouched.
	assert.Equal(t, r.Time, got.Time)
	assert.Equal(t, r.ClientID, got.ClientID)
	assert.Equal(t, r.CreatedAt, got.CreatedAt)

	_, err = st.UpdateReservationStatus("missing", model.StatusCancelled)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteReservationIsHard(t *testing.T) {
	st := newTestStore()
	c, sv := seedBooking(t, st)
	r, err := st.CreateReservation(ReservationInput{Time: "14:00", ClientID: c.ID, ServiceID: sv.ID})
	require.NoError(t, err)

	require.NoError(t, st.DeleteReservation(r.ID))
	_, err = st.GetReservation(r.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, st.DeleteReservation(r.ID), ErrNotFound)
}
