package domain

import "time"

// Booking is an "agendamento": a child assigned to a class for an inclusive
// date range. Bookings are never hard-deleted; cancellation flips Active off.
type Booking struct {
	ID        int       `json:"id"`
	ChildID   int       `json:"child_id"`
	ClassID   int       `json:"class_id"`
	StartDate Date      `json:"start_date"`
	EndDate   Date      `json:"end_date"`
	Note      string    `json:"note,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	Active    bool      `json:"active"`
}

type BookingInput struct {
	ChildID   int
	ClassID   int
	StartDate Date
	EndDate   Date
	Note      string
}

// BookingProposal is what the availability validator judges. ExcludeID is the
// id of the booking being edited, so re-validation does not count it against
// itself; zero on creation.
type BookingProposal struct {
	ChildID   int
	ClassID   int
	StartDate Date
	EndDate   Date
	ExcludeID int
}
