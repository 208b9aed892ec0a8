package store

import (
	"sort"

	"github.com/hautdegamme/studio-api/internal/model"
)

// TeamMemberInput carries the caller-supplied fields for a new team member.
type TeamMemberInput struct {
	Name         string
	Role         string
	Bio          string
	PhotoURL     string
	DisplayOrder int
}

// ListTeam returns team members.  With publicOnly set, inactive
// members are filtered out; the result is always sorted by
// DisplayOrder so the frontend renders a stable lineup.
func (s *Store) ListTeam(publicOnly bool) []model.TeamMember {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.TeamMember, 0, len(s.team))
	for _, m := range s.team {
		if publicOnly && !m.IsActive {
			continue
		}
		out = append(out, m)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].DisplayOrder < out[j].DisplayOrder })
	return out
}

// GetTeamMember returns the member with the given id.
func (s *Store) GetTeamMember(id string) (model.TeamMember, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, m := range s.team {
		if m.ID == id {
			return m, nil
		}
	}
	return model.TeamMember{}, ErrNotFound
}

// CreateTeamMember stores a new active member.
func (s *Store) CreateTeamMember(in TeamMemberInput) model.TeamMember {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	m := model.TeamMember{
		ID:           s.newID(),
		Name:         in.Name,
		Role:         in.Role,
		Bio:          in.Bio,
		PhotoURL:     in.PhotoURL,
		DisplayOrder: in.DisplayOrder,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	s.team = append(s.team, m)
	return m
}

// UpdateTeamMember merges the patch over the existing record.
func (s *Store) UpdateTeamMember(id string, p model.TeamMemberPatch) (model.TeamMember, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.team {
		if s.team[i].ID != id {
			continue
		}
		m := &s.team[i]
		if p.Name != nil {
			m.Name = *p.Name
		}
		if p.Role != nil {
			m.Role = *p.Role
		}
		if p.Bio != nil {
			m.Bio = *p.Bio
		}
		if p.PhotoURL != nil {
			m.PhotoURL = *p.PhotoURL
		}
		if p.DisplayOrder != nil {
			m.DisplayOrder = *p.DisplayOrder
		}
		if p.IsActive != nil {
			m.IsActive = *p.IsActive
		}
		m.UpdatedAt = s.now()
		return *m, nil
	}
	return model.TeamMember{}, ErrNotFound
}

// DeleteTeamMember physically removes the member.
func (s *Store) DeleteTeamMember(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.team {
		if s.team[i].ID == id {
			s.team = append(s.team[:i], s.team[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
