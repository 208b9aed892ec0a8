package store

import "github.com/hautdegamme/studio-api/internal/model"

// ServiceInput carries the caller-supplied fields for a new service.
type ServiceInput struct {
	Name        string
	Description string
	Price       float64
	Duration    int
}

// ListServices returns only active services; soft-deleted entries are
// filtered out of every listing but remain reachable by id.
func (s *Store) ListServices() []model.Service {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Service, 0, len(s.services))
	for _, sv := range s.services {
		if sv.IsActive {
			out = append(out, sv)
		}
	}
	return out
}

// GetService returns the service with the given id, active or not.
func (s *Store) GetService(id string) (model.Service, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, sv := range s.services {
		if sv.ID == id {
			return sv, nil
		}
	}
	return model.Service{}, ErrNotFound
}

// CreateService assigns a fresh id and timestamps and stores the
// record as active.
func (s *Store) CreateService(in ServiceInput) model.Service {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	sv := model.Service{
		ID:          s.newID(),
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Duration:    in.Duration,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.services = append(s.services, sv)
	return sv
}

// UpdateService merges the patch over the existing record and
// refreshes UpdatedAt.  Id and CreatedAt never change.
func (s *Store) UpdateService(id string, p model.ServicePatch) (model.Service, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.services {
		if s.services[i].ID != id {
			continue
		}
		sv := &s.services[i]
		if p.Name != nil {
			sv.Name = *p.Name
		}
		if p.Description != nil {
			sv.Description = *p.Description
		}
		if p.Price != nil {
			sv.Price = *p.Price
		}
		if p.Duration != nil {
			sv.Duration = *p.Duration
		}
		if p.IsActive != nil {
			sv.IsActive = *p.IsActive
		}
		sv.UpdatedAt = s.now()
		return *sv, nil
	}
	return model.Service{}, ErrNotFound
}

// DeleteService soft-deletes: the record stays in the collection with
// IsActive cleared so existing reservations keep a valid reference.
func (s *Store) DeleteService(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.services {
		if s.services[i].ID == id {
			s.services[i].IsActive = false
			s.services[i].UpdatedAt = s.now()
			return nil
		}
	}
	return ErrNotFound
}
