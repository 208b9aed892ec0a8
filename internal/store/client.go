package store

import "github.com/hautdegamme/studio-api/internal/model"

// ClientInput carries the caller-supplied fields for a new client.
type ClientInput struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
}

// ListClients returns every client; there is no soft delete here.
func (s *Store) ListClients() []model.Client {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Client, len(s.clients))
	copy(out, s.clients)
	return out
}

// GetClient returns the client with the given id.
func (s *Store) GetClient(id string) (model.Client, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.clients {
		if c.ID == id {
			return c, nil
		}
	}
	return model.Client{}, ErrNotFound
}

// GetClientByEmail returns the client with the exact email, if any.
func (s *Store) GetClientByEmail(email string) (model.Client, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.clients {
		if c.Email == email {
			return c, nil
		}
	}
	return model.Client{}, ErrNotFound
}

// emailTaken reports whether a client other than exceptID already
// holds the email.  Callers must hold the write lock.
func (s *Store) emailTaken(email, exceptID string) bool {
	for _, c := range s.clients {
		if c.Email == email && c.ID != exceptID {
			return true
		}
	}
	return false
}

// CreateClient stores a new client after checking email uniqueness.
// On ErrEmailExists nothing is mutated.
func (s *Store) CreateClient(in ClientInput) (model.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.emailTaken(in.Email, "") {
		return model.Client{}, ErrEmailExists
	}
	now := s.now()
	c := model.Client{
		ID:        s.newID(),
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Phone:     in.Phone,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.clients = append(s.clients, c)
	return c, nil
}

// UpdateClient merges the patch over the existing record.  The email
// uniqueness check runs only when the email actually changes and it
// excludes the record itself from the collision scan.
func (s *Store) UpdateClient(id string, p model.ClientPatch) (model.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.clients {
		if s.clients[i].ID != id {
			continue
		}
		c := &s.clients[i]
		if p.Email != nil && *p.Email != c.Email {
			if s.emailTaken(*p.Email, id) {
				return model.Client{}, ErrEmailExists
			}
			c.Email = *p.Email
		}
		if p.FirstName != nil {
			c.FirstName = *p.FirstName
		}
		if p.LastName != nil {
			c.LastName = *p.LastName
		}
		if p.Phone != nil {
			c.Phone = *p.Phone
		}
		c.UpdatedAt = s.now()
		return *c, nil
	}
	return model.Client{}, ErrNotFound
}

// DeleteClient physically removes the client.  Reservations pointing
// at the deleted client are left untouched on purpose.
func (s *Store) DeleteClient(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.clients {
		if s.clients[i].ID == id {
			s.clients = append(s.clients[:i], s.clients[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
