package domain

import "time"

type User struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	Active    bool      `json:"active"`
}

// CreateUserInput carries the password exactly once, on creation; it is never
// stored on the User and never echoed back.
type CreateUserInput struct {
	Name     string
	Email    string
	Role     string
	Password string
}

// UpdateUserInput is a partial edit: zero-valued fields (nil Active) keep the
// current value.
type UpdateUserInput struct {
	Name   string
	Email  string
	Role   string
	Active *bool
}
