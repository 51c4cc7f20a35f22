package domain

// Kind names an entity collection for cache bookkeeping. Any successful
// mutation invalidates its whole kind; there is no partial invalidation.
type Kind string

const (
	KindChild   Kind = "child"
	KindClass   Kind = "class"
	KindBooking Kind = "booking"
	KindUser    Kind = "user"
)
