package store

import "github.com/hautdegamme/studio-api/internal/model"

// ListContent returns site content blocks for a page, optionally
// narrowed to one section.  An empty page returns everything.
func (s *Store) ListContent(page, section string) []model.SiteContent {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.SiteContent, 0, len(s.content))
	for _, c := range s.content {
		if page != "" && c.Page != page {
			continue
		}
		if section != "" && c.Section != section {
			continue
		}
		out = append(out, c)
	}
	return out
}

// UpsertContent replaces the content object of a page/section block,
// creating the block when it does not exist yet.
func (s *Store) UpsertContent(page, section string, content map[string]any) model.SiteContent {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.content {
		if s.content[i].Page == page && s.content[i].Section == section {
			s.content[i].Content = content
			s.content[i].UpdatedAt = s.now()
			return s.content[i]
		}
	}
	c := model.SiteContent{
		ID:        s.newID(),
		Page:      page,
		Section:   section,
		Content:   content,
		UpdatedAt: s.now(),
	}
	s.content = append(s.content, c)
	return c
}

// ListSettings returns every site setting.
func (s *Store) ListSettings() []model.SiteSetting {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.SiteSetting, len(s.settings))
	copy(out, s.settings)
	return out
}

// UpsertSetting sets one key/value site parameter.
func (s *Store) UpsertSetting(key string, value any) model.SiteSetting {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.settings {
		if s.settings[i].Key == key {
			s.settings[i].Value = value
			s.settings[i].UpdatedAt = s.now()
			return s.settings[i]
		}
	}
	st := model.SiteSetting{Key: key, Value: value, UpdatedAt: s.now()}
	s.settings = append(s.settings, st)
	return st
}

// ListThemes returns every theme.
func (s *Store) ListThemes() []model.Theme {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Theme, len(s.themes))
	copy(out, s.themes)
	return out
}

// ActiveTheme returns the currently active theme.
func (s *Store) ActiveTheme() (model.Theme, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.themes {
		if t.IsActive {
			return t, nil
		}
	}
	return model.Theme{}, ErrNotFound
}

// CreateTheme stores a new inactive theme.
func (s *Store) CreateTheme(name string, colors, fonts map[string]any) model.Theme {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	t := model.Theme{
		ID:        s.newID(),
		Name:      name,
		Colors:    colors,
		Fonts:     fonts,
		IsActive:  false,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.themes = append(s.themes, t)
	return t
}

// UpdateTheme merges the patch over the existing theme.  The active
// flag can only change through ActivateTheme.
func (s *Store) UpdateTheme(id string, p model.ThemePatch) (model.Theme, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.themes {
		if s.themes[i].ID != id {
			continue
		}
		t := &s.themes[i]
		if p.Name != nil {
			t.Name = *p.Name
		}
		if p.Colors != nil {
			t.Colors = *p.Colors
		}
		if p.Fonts != nil {
			t.Fonts = *p.Fonts
		}
		t.UpdatedAt = s.now()
		return *t, nil
	}
	return model.Theme{}, ErrNotFound
}

// ActivateTheme makes one theme active and deactivates all others in
// the same critical section, so exactly one theme is ever active.
func (s *Store) ActivateTheme(id string) (model.Theme, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := -1
	for i := range s.themes {
		if s.themes[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return model.Theme{}, ErrNotFound
	}
	now := s.now()
	for i := range s.themes {
		active := i == idx
		if s.themes[i].IsActive != active {
			s.themes[i].IsActive = active
			s.themes[i].UpdatedAt = now
		}
	}
	return s.themes[idx], nil
}

// DeleteTheme removes a theme; the active one refuses to go.
func (s *Store) DeleteTheme(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.themes {
		if s.themes[i].ID == id {
			if s.themes[i].IsActive {
				return ErrThemeActive
			}
			s.themes = append(s.themes[:i], s.themes[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
