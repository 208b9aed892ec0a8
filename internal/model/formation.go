package model

import "time"

// Formation is a makeup course sold by the studio.  Like services,
// formations are soft-deleted via the IsActive flag.
//
// Fields:
//  ID          – opaque identifier (random UUID).
//  Title       – course title, e.g. "Formation Débutante".
//  Description – free-text course description.
//  Duration    – total course length in hours.
//  Level       – free-text level (débutant / intermédiaire / avancé).
//  Price       – price in euros.
//  MaxStudents – advertised class capacity (not enforced against bookings).
//  IsActive    – false once soft-deleted.
//  CreatedAt   – creation timestamp (UTC).
//  UpdatedAt   – last update timestamp (UTC).
type Formation struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Duration    int       `json:"duration"`
	Level       string    `json:"level"`
	Price       float64   `json:"price"`
	MaxStudents int       `json:"maxStudents"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// FormationPatch lists the mutable fields of a Formation.
type FormationPatch struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Duration    *int     `json:"duration"`
	Level       *string  `json:"level"`
	Price       *float64 `json:"price"`
	MaxStudents *int     `json:"maxStudents"`
	IsActive    *bool    `json:"isActive"`
}
