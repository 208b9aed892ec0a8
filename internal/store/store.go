// Package store is the sole authority over the application's entity
// collections.  All state lives in process memory for the lifetime of
// the server; a mutex guards every operation because Echo handlers run
// concurrently.  Catalog entities (services, formations) use soft
// delete, everything else is physically removed.
package store

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/hautdegamme/studio-api/internal/model"
)

// Store owns every collection.  Construct one with New at process
// start and pass it to the handlers; tests build a fresh instance per
// case.  There is no global singleton.
type Store struct {
	mu sync.RWMutex

	services     []model.Service
	formations   []model.Formation
	clients      []model.Client
	reservations []model.Reservation
	users        []model.User

	team     []model.TeamMember
	posts    []model.BlogPost
	comments []model.BlogComment
	content  []model.SiteContent
	settings []model.SiteSetting
	themes   []model.Theme

	// Overridable in tests for deterministic ids and clocks.
	now   func() time.Time
	newID func() string
}

// New returns an empty store.  Call Seed to install the default
// fixture data the public site ships with.
func New() *Store {
	return &Store{
		now:   func() time.Time { return time.Now().UTC() },
		newID: func() string { return uuid.NewString() },
	}
}
