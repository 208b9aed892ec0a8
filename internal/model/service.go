package model

import "time"

// Service is a catalog entry for a makeup prestation offered by the
// studio.  Services are never physically removed: deleting one only
// clears the IsActive flag so that historical reservations keep a
// valid reference.
//
// Fields:
//  ID          – opaque identifier (random UUID).
//  Name        – display name, e.g. "Maquillage Jour".
//  Description – free-text description shown on the public site.
//  Price       – price in euros, must be > 0.
//  Duration    – duration of the prestation in minutes, must be > 0.
//  IsActive    – false once the service has been soft-deleted.
//  CreatedAt   – creation timestamp (UTC).
//  UpdatedAt   – last update timestamp (UTC).
type Service struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Duration    int       `json:"duration"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ServicePatch lists the mutable fields of a Service.  Nil pointers
// mean "leave unchanged"; unknown fields are rejected at the HTTP
// boundary by binding into this exact shape.
type ServicePatch struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Duration    *int     `json:"duration"`
	IsActive    *bool    `json:"isActive"`
}
