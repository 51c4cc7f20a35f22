package domain

import "time"

// ClassGroup is a "turma": a class with a capacity and an age band. A child
// may occupy it only while their age at the booking start falls inside
// [MinAge, MaxAge].
type ClassGroup struct {
	ID         int       `json:"id"`
	Name       string    `json:"name"`
	Capacity   int       `json:"capacity"`
	MinAge     int       `json:"min_age"`
	MaxAge     int       `json:"max_age"`
	CreatedAt  time.Time `json:"created_at"`
	Active     bool      `json:"active"`
	ChildIDs   []int     `json:"child_ids"`
	BookingIDs []int     `json:"booking_ids"`
}

type CreateClassInput struct {
	Name     string
	Capacity int
	MinAge   int
	MaxAge   int
}

// UpdateClassInput is a partial edit: zero-valued fields (nil Active, nil id
// slices) keep the current value.
type UpdateClassInput struct {
	Name       string
	Capacity   int
	MinAge     *int
	MaxAge     *int
	Active     *bool
	ChildIDs   []int
	BookingIDs []int
}
