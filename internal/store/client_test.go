package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hautdegamme/studio-api/internal/model"
)

func TestCreateClientRejectsDuplicateEmail(t *testing.T) {
	st := newTestStore()
	_, err := st.CreateClient(ClientInput{FirstName: "Marie", LastName: "Dupont", Email: "marie@email.com"})
	require.NoError(t, err)

	_, err = st.CreateClient(ClientInput{FirstName: "Autre", LastName: "Marie", Email: "marie@email.com"})
	assert.ErrorIs(t, err, ErrEmailExists)

	// The failed create must not leave a partial record behind.
	assert.Len(t, st.ListClients(), 1)
}

func TestClientEmailUniquenessIsCaseSensitive(t *testing.T) {
	st := newTestStore()
	_, err := st.CreateClient(ClientInput{FirstName: "Marie", LastName: "Dupont", Email: "marie@email.com"})
	require.NoError(t, err)

	// Exact-match comparison: a different casing is a different email.
	_, err = st.CreateClient(ClientInput{FirstName: "Marie", LastName: "Dupont", Email: "Marie@email.com"})
	assert.NoError(t, err)
}

func TestUpdateClientEmailExcludesSelf(t *testing.T) {
	st := newTestStore()
	a, err := st.CreateClient(ClientInput{FirstName: "Marie", LastName: "Dupont", Email: "marie@email.com"})
	require.NoError(t, err)
	_, err = st.CreateClient(ClientInput{FirstName: "Sarah", LastName: "Martin", Email: "sarah@email.com"})
	require.NoError(t, err)

	// Re-submitting the client's own email is not a collision.
	email := "marie@email.com"
	phone := "06 12 34 56 78"
	got, err := st.UpdateClient(a.ID, model.ClientPatch{Email: &email, Phone: &phone})
	require.NoError(t, err)
	assert.Equal(t, phone, got.Phone)

	// Taking another client's email is.
	taken := "sarah@email.com"
	_, err = st.UpdateClient(a.ID, model.ClientPatch{Email: &taken})
	assert.ErrorIs(t, err, ErrEmailExists)

	// The record is untouched after the rejected update.
	cur, err := st.GetClient(a.ID)
	require.NoError(t, err)
	assert.Equal(t, "marie@email.com", cur.Email)
}

func TestDeleteClientIsHard(t *testing.T) {
	st := newTestStore()
	c, err := st.CreateClient(ClientInput{FirstName: "Marie", LastName: "Dupont", Email: "marie@email.com"})
	require.NoError(t, err)

	require.NoError(t, st.DeleteClient(c.ID))
	_, err = st.GetClient(c.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	// The email becomes available again.
	_, err = st.CreateClient(ClientInput{FirstName: "Marie", LastName: "Dupont", Email: "marie@email.com"})
	assert.NoError(t, err)
}

func TestDeleteClientLeavesReservationsInPlace(t *testing.T) {
	st := newTestStore()
	c, err := st.CreateClient(ClientInput{FirstName: "Marie", LastName: "Dupont", Email: "marie@email.com"})
	require.NoError(t, err)
	sv := st.CreateService(ServiceInput{Name: "Maquillage Jour", Price: 45, Duration: 60})
	r, err := st.CreateReservation(ReservationInput{Time: "14:00", ClientID: c.ID, ServiceID: sv.ID})
	require.NoError(t, err)

	require.NoError(t, st.DeleteClient(c.ID))

	// The booking keeps its dangling client reference.
	got, err := st.GetReservation(r.ID)
	require.NoError(t, err)
	assert.Equal(t, c.ID, got.ClientID)
}
