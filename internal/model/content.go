package model

import "time"

// SiteContent is one editable block of the public site, addressed by
// page + section.  Content is a free-form JSON object whose shape is
// owned by the frontend (titles, paragraphs, image URLs...).
type SiteContent struct {
	ID        string         `json:"id"`
	Page      string         `json:"page"`
	Section   string         `json:"section"`
	Content   map[string]any `json:"content"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

// SiteSetting is a single key/value site parameter (contact email,
// opening hours, social links...).  Value is free-form JSON.
type SiteSetting struct {
	Key       string    `json:"key"`
	Value     any       `json:"value"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Theme is a named set of display colors and fonts for the public
// site.  Exactly one theme is active at a time; activating one
// deactivates the others.
type Theme struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Colors    map[string]any `json:"colors"`
	Fonts     map[string]any `json:"fonts,omitempty"`
	IsActive  bool           `json:"isActive"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

// ThemePatch lists the mutable fields of a Theme.  The active flag is
// changed only through activation, never via patch.
type ThemePatch struct {
	Name   *string         `json:"name"`
	Colors *map[string]any `json:"colors"`
	Fonts  *map[string]any `json:"fonts"`
}
