package model

import "time"

// TeamMember is a studio staff entry shown on the public "équipe"
// section.  The public listing returns only active members ordered by
// DisplayOrder; the back office sees everyone.
type TeamMember struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Role         string    `json:"role"`
	Bio          string    `json:"bio,omitempty"`
	PhotoURL     string    `json:"photoUrl,omitempty"`
	DisplayOrder int       `json:"displayOrder"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// TeamMemberPatch lists the mutable fields of a TeamMember.
type TeamMemberPatch struct {
	Name         *string `json:"name"`
	Role         *string `json:"role"`
	Bio          *string `json:"bio"`
	PhotoURL     *string `json:"photoUrl"`
	DisplayOrder *int    `json:"displayOrder"`
	IsActive     *bool   `json:"isActive"`
}
