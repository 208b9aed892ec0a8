// Package handler implements the HTTP layer: thin translations
// between REST verbs and store operations.  Handlers validate input
// presence, delegate to the store, and map its sentinel errors onto
// the HTTP taxonomy (404 not found, 400 validation/conflict, opaque
// 500 for anything unexpected).
package handler

import (
	"github.com/hautdegamme/studio-api/internal/config"
	"github.com/hautdegamme/studio-api/internal/store"
)

// Handler bundles the dependencies shared by every endpoint: the
// record store and the runtime configuration.  It is constructed once
// in main and injected into the router.
type Handler struct {
	Store *store.Store
	Cfg   config.Config
}

// New returns a Handler wired to the given store and config.
func New(st *store.Store, cfg config.Config) *Handler {
	return &Handler{Store: st, Cfg: cfg}
}
