package store

import (
	"time"

	"github.com/hautdegamme/studio-api/internal/model"
)

// Backup is the JSON export of everything the back office can restore:
// site settings, editable content blocks and themes.  Entity
// collections (clients, reservations...) are deliberately excluded,
// matching what the admin backup screen offers.
type Backup struct {
	Version    int                 `json:"version"`
	ExportedAt time.Time           `json:"exportedAt"`
	Settings   []model.SiteSetting `json:"settings"`
	Content    []model.SiteContent `json:"content"`
	Themes     []model.Theme       `json:"themes"`
}

// ExportBackup snapshots settings, content and themes under one read
// lock so the export is internally consistent.
func (s *Store) ExportBackup() Backup {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b := Backup{
		Version:    1,
		ExportedAt: s.now(),
		Settings:   make([]model.SiteSetting, len(s.settings)),
		Content:    make([]model.SiteContent, len(s.content)),
		Themes:     make([]model.Theme, len(s.themes)),
	}
	copy(b.Settings, s.settings)
	copy(b.Content, s.content)
	copy(b.Themes, s.themes)
	return b
}

// ImportBackup replaces settings, content and themes with the backup's
// collections in one critical section: either everything is restored
// or nothing changes.
func (s *Store) ImportBackup(b Backup) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = make([]model.SiteSetting, len(b.Settings))
	s.content = make([]model.SiteContent, len(b.Content))
	s.themes = make([]model.Theme, len(b.Themes))
	copy(s.settings, b.Settings)
	copy(s.content, b.Content)
	copy(s.themes, b.Themes)
}
