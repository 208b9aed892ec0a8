package model

import "time"

// User roles.  Only ADMIN may access the back office.
const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USER"
)

// User is a back-office account.  There is no registration flow: the
// single admin account is seeded at boot and immutable at runtime.
// PasswordHash holds a bcrypt hash and is never serialized.
type User struct {
	ID           string    `json:"id"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
