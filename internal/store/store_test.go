package store

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hautdegamme/studio-api/internal/model"
)

// newTestStore returns a store with a deterministic clock and id
// sequence so assertions on timestamps and identifiers are stable.
// Every call to now() advances the clock by one second.
func newTestStore() *Store {
	st := New()
	var ids int
	st.newID = func() string {
		ids++
		return fmt.Sprintf("id-%d", ids)
	}
	base := time.Date(2025, 1, 2, 10, 0, 0, 0, time.UTC)
	var ticks int
	st.now = func() time.Time {
		ticks++
		return base.Add(time.Duration(ticks) * time.Second)
	}
	return st
}

func TestSeedInstallsFixtures(t *testing.T) {
	st := newTestStore()
	st.Seed()

	assert.Len(t, st.ListServices(), 4)
	assert.Len(t, st.ListFormations(), 3)
	assert.Len(t, st.ListClients(), 2)
	assert.Len(t, st.ListReservations(), 2)

	u, err := st.GetUserByEmail("admin@hautdegammevision.com")
	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, u.Role)

	active, err := st.ActiveTheme()
	require.NoError(t, err)
	assert.Equal(t, "Luxe doré", active.Name)
}

func TestSeedReservationsReferenceSeedRecords(t *testing.T) {
	st := newTestStore()
	st.Seed()

	for _, r := range st.ListReservations() {
		_, err := st.GetClient(r.ClientID)
		require.NoError(t, err, "reservation %s points at a missing client", r.ID)
		if r.ServiceID != "" {
			_, err = st.GetService(r.ServiceID)
			require.NoError(t, err)
		}
		if r.FormationID != "" {
			_, err = st.GetFormation(r.FormationID)
			require.NoError(t, err)
		}
	}
}
