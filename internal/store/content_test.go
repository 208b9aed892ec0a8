package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hautdegamme/studio-api/internal/model"
)

func TestUpsertContentCreatesThenReplaces(t *testing.T) {
	st := newTestStore()

	first := st.UpsertContent("home", "hero", map[string]any{"title": "Bienvenue"})
	assert.Equal(t, "home", first.Page)

	second := st.UpsertContent("home", "hero", map[string]any{"title": "Révélez votre beauté"})
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Révélez votre beauté", second.Content["title"])
	require.Len(t, st.ListContent("", ""), 1)
}

func TestListContentFilters(t *testing.T) {
	st := newTestStore()
	st.UpsertContent("home", "hero", map[string]any{"a": 1})
	st.UpsertContent("home", "about", map[string]any{"b": 2})
	st.UpsertContent("contact", "hero", map[string]any{"c": 3})

	assert.Len(t, st.ListContent("", ""), 3)
	assert.Len(t, st.ListContent("home", ""), 2)
	assert.Len(t, st.ListContent("home", "hero"), 1)
	assert.Empty(t, st.ListContent("home", "footer"))
}

func TestUpsertSetting(t *testing.T) {
	st := newTestStore()

	st.UpsertSetting("site_name", "Haut de Gamme Vision")
	st.UpsertSetting("site_name", "HDG Vision")
	st.UpsertSetting("booking_enabled", true)

	settings := st.ListSettings()
	require.Len(t, settings, 2)
	byKey := map[string]any{}
	for _, s := range settings {
		byKey[s.Key] = s.Value
	}
	assert.Equal(t, "HDG Vision", byKey["site_name"])
	assert.Equal(t, true, byKey["booking_enabled"])
}

func TestActivateThemeKeepsSingleActive(t *testing.T) {
	st := newTestStore()
	a := st.CreateTheme("Luxe doré", map[string]any{"primary": "#b8860b"}, nil)
	b := st.CreateTheme("Nuit", map[string]any{"primary": "#1f1b16"}, nil)

	_, err := st.ActivateTheme(a.ID)
	require.NoError(t, err)
	_, err = st.ActivateTheme(b.ID)
	require.NoError(t, err)

	active := 0
	for _, th := range st.ListThemes() {
		if th.IsActive {
			active++
			assert.Equal(t, b.ID, th.ID)
		}
	}
	assert.Equal(t, 1, active)

	_, err = st.ActivateTheme("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteActiveThemeRefused(t *testing.T) {
	st := newTestStore()
	a := st.CreateTheme("Luxe doré", map[string]any{"primary": "#b8860b"}, nil)
	_, err := st.ActivateTheme(a.ID)
	require.NoError(t, err)

	assert.ErrorIs(t, st.DeleteTheme(a.ID), ErrThemeActive)
	assert.Len(t, st.ListThemes(), 1)

	b := st.CreateTheme("Nuit", nil, nil)
	assert.NoError(t, st.DeleteTheme(b.ID))
}

func TestBackupRoundTrip(t *testing.T) {
	st := newTestStore()
	st.UpsertSetting("site_name", "Haut de Gamme Vision")
	st.UpsertContent("home", "hero", map[string]any{"title": "Bienvenue"})
	th := st.CreateTheme("Luxe doré", map[string]any{"primary": "#b8860b"}, nil)
	_, err := st.ActivateTheme(th.ID)
	require.NoError(t, err)

	b := st.ExportBackup()
	assert.Equal(t, 1, b.Version)
	assert.False(t, b.ExportedAt.IsZero())

	// Wreck the live state, then restore.
	st.UpsertSetting("site_name", "wrong")
	require.NoError(t, st.DeleteTheme(st.CreateTheme("tmp", nil, nil).ID))
	st.ImportBackup(b)

	settings := st.ListSettings()
	require.Len(t, settings, 1)
	assert.Equal(t, "Haut de Gamme Vision", settings[0].Value)
	restored, err := st.ActiveTheme()
	require.NoError(t, err)
	assert.Equal(t, th.ID, restored.ID)
}

func TestTeamListOrderingAndVisibility(t *testing.T) {
	st := newTestStore()
	st.CreateTeamMember(TeamMemberInput{Name: "B", Role: "Maquilleuse", DisplayOrder: 2})
	st.CreateTeamMember(TeamMemberInput{Name: "A", Role: "Fondatrice", DisplayOrder: 1})
	hidden := st.CreateTeamMember(TeamMemberInput{Name: "C", Role: "Assistante", DisplayOrder: 3})
	inactive := false
	_, err := st.UpdateTeamMember(hidden.ID, model.TeamMemberPatch{IsActive: &inactive})
	require.NoError(t, err)

	public := st.ListTeam(true)
	require.Len(t, public, 2)
	assert.Equal(t, "A", public[0].Name)
	assert.Equal(t, "B", public[1].Name)

	assert.Len(t, st.ListTeam(false), 3)
}
