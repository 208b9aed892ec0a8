package store

import "errors"

// Sentinel errors shared across store operations.  Handlers switch on
// these with errors.Is and translate them into HTTP status codes:
// ErrNotFound -> 404, ErrEmailExists and ErrBadReference -> 400.
var (
	// ErrNotFound is returned by get/update/delete when no record
	// carries the requested id.
	ErrNotFound = errors.New("not found")

	// ErrEmailExists is returned when creating or updating a client
	// would leave two clients with the same email (case-sensitive
	// exact match).
	ErrEmailExists = errors.New("client with this email already exists")

	// ErrBadReference is returned when a reservation points at a
	// client, service or formation that does not exist.
	ErrBadReference = errors.New("referenced record does not exist")

	// ErrThemeActive is returned when deleting the currently active theme.
	ErrThemeActive = errors.New("active theme cannot be deleted")
)
