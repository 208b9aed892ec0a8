package store

import "github.com/hautdegamme/studio-api/internal/model"

// FormationInput carries the caller-supplied fields for a new formation.
type FormationInput struct {
	Title       string
	Description string
	Duration    int
	Level       string
	Price       float64
	MaxStudents int
}

// ListFormations returns only active formations.
func (s *Store) ListFormations() []model.Formation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Formation, 0, len(s.formations))
	for _, f := range s.formations {
		if f.IsActive {
			out = append(out, f)
		}
	}
	return out
}

// GetFormation returns the formation with the given id, active or not.
func (s *Store) GetFormation(id string) (model.Formation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, f := range s.formations {
		if f.ID == id {
			return f, nil
		}
	}
	return model.Formation{}, ErrNotFound
}

// CreateFormation assigns a fresh id and timestamps and stores the
// record as active.
func (s *Store) CreateFormation(in FormationInput) model.Formation {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	f := model.Formation{
		ID:          s.newID(),
		Title:       in.Title,
		Description: in.Description,
		Duration:    in.Duration,
		Level:       in.Level,
		Price:       in.Price,
		MaxStudents: in.MaxStudents,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.formations = append(s.formations, f)
	return f
}

// UpdateFormation merges the patch over the existing record.
func (s *Store) UpdateFormation(id string, p model.FormationPatch) (model.Formation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.formations {
		if s.formations[i].ID != id {
			continue
		}
		f := &s.formations[i]
		if p.Title != nil {
			f.Title = *p.Title
		}
		if p.Description != nil {
			f.Description = *p.Description
		}
		if p.Duration != nil {
			f.Duration = *p.Duration
		}
		if p.Level != nil {
			f.Level = *p.Level
		}
		if p.Price != nil {
			f.Price = *p.Price
		}
		if p.MaxStudents != nil {
			f.MaxStudents = *p.MaxStudents
		}
		if p.IsActive != nil {
			f.IsActive = *p.IsActive
		}
		f.UpdatedAt = s.now()
		return *f, nil
	}
	return model.Formation{}, ErrNotFound
}

// DeleteFormation soft-deletes the formation.
func (s *Store) DeleteFormation(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.formations {
		if s.formations[i].ID == id {
			s.formations[i].IsActive = false
			s.formations[i].UpdatedAt = s.now()
			return nil
		}
	}
	return ErrNotFound
}
