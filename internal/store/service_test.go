package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hautdegamme/studio-api/internal/model"
)

func TestCreateServiceAssignsIdentityAndTimestamps(t *testing.T) {
	st := newTestStore()

	sv := st.CreateService(ServiceInput{Name: "Maquillage Jour", Description: "naturel", Price: 45, Duration: 60})

	assert.Equal(t, "id-1", sv.ID)
	assert.True(t, sv.IsActive)
	assert.Equal(t, sv.CreatedAt, sv.UpdatedAt)
	assert.False(t, sv.CreatedAt.IsZero())
}

func TestUpdateServiceMergesPatchOnly(t *testing.T) {
	st := newTestStore()
	sv := st.CreateService(ServiceInput{Name: "Maquillage Jour", Price: 45, Duration: 60})

	price := 55.0
	got, err := st.UpdateService(sv.ID, model.ServicePatch{Price: &price})
	require.NoError(t, err)

	// Untouched fields survive; identity and creation time never move.
	assert.Equal(t, "Maquillage Jour", got.Name)
	assert.Equal(t, 55.0, got.Price)
	assert.Equal(t, 60, got.Duration)
	assert.Equal(t, sv.ID, got.ID)
	assert.Equal(t, sv.CreatedAt, got.CreatedAt)
	assert.True(t, got.UpdatedAt.After(sv.UpdatedAt))
}

func TestUpdateServiceUnknownID(t *testing.T) {
	st := newTestStore()
	name := "x"
	_, err := st.UpdateService("missing", model.ServicePatch{Name: &name})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteServiceIsSoft(t *testing.T) {
	st := newTestStore()
	sv := st.CreateService(ServiceInput{Name: "Maquillage Soirée", Price: 65, Duration: 90})

	require.NoError(t, st.DeleteService(sv.ID))

	// Gone from listings but still reachable by id.
	assert.Empty(t, st.ListServices())
	got, err := st.GetService(sv.ID)
	require.NoError(t, err)
	assert.False(t, got.IsActive)

	assert.ErrorIs(t, st.DeleteService("missing"), ErrNotFound)
}

func TestDeleteFormationIsSoft(t *testing.T) {
	st := newTestStore()
	f := st.CreateFormation(FormationInput{Title: "Formation Débutante", Duration: 4, Level: "débutant", Price: 149, MaxStudents: 8})

	require.NoError(t, st.DeleteFormation(f.ID))

	assert.Empty(t, st.ListFormations())
	got, err := st.GetFormation(f.ID)
	require.NoError(t, err)
	assert.False(t, got.IsActive)
}

func TestReactivateServiceThroughPatch(t *testing.T) {
	st := newTestStore()
	sv := st.CreateService(ServiceInput{Name: "Consultation", Price: 35, Duration: 45})
	require.NoError(t, st.DeleteService(sv.ID))

	active := true
	_, err := st.UpdateService(sv.ID, model.ServicePatch{IsActive: &active})
	require.NoError(t, err)
	assert.Len(t, st.ListServices(), 1)
}
