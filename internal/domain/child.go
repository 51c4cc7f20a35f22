package domain

import "time"

type Child struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	BirthDate    Date      `json:"birth_date"`
	GuardianName string    `json:"guardian_name"`
	CreatedAt    time.Time `json:"created_at"`
	Active       bool      `json:"active"`
}

type CreateChildInput struct {
	Name         string
	BirthDate    Date
	GuardianName string
}

// UpdateChildInput is a partial edit: zero-valued fields (nil Active) keep
// the current value.
type UpdateChildInput struct {
	Name         string
	BirthDate    Date
	GuardianName string
	Active       *bool
}
