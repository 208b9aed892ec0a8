package model

import "time"

// Client is a customer record created on first booking or by an admin.
// Email is unique across all clients (case-sensitive exact match).
// Clients are hard-deleted; reservations referencing a deleted client
// are intentionally left untouched.
type Client struct {
	ID        string    `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ClientPatch lists the mutable fields of a Client.  Changing the
// email re-triggers the uniqueness check, excluding the record itself.
type ClientPatch struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
}
