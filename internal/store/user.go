package store

import "github.com/hautdegamme/studio-api/internal/model"

// GetUserByEmail fetches a back-office account by exact email.
func (s *Store) GetUserByEmail(email string) (model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return model.User{}, ErrNotFound
}

// GetUserByID fetches a back-office account by id.
func (s *Store) GetUserByID(id string) (model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return model.User{}, ErrNotFound
}
