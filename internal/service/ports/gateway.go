package ports

import (
	"context"

	"github.com/crechehub/agendaservice/internal/domain"
)

// Write sides of the upstream API, one narrow interface per entity kind.
// Reads go through the EntityStore instead.

type ChildWriter interface {
	CreateChild(ctx context.Context, input domain.CreateChildInput) (*domain.Child, error)
	UpdateChild(ctx context.Context, child domain.Child) (*domain.Child, error)
}

type ClassWriter interface {
	CreateClassGroup(ctx context.Context, input domain.CreateClassInput) (*domain.ClassGroup, error)
	UpdateClassGroup(ctx context.Context, class domain.ClassGroup) (*domain.ClassGroup, error)
}

type UserWriter interface {
	CreateUser(ctx context.Context, input domain.CreateUserInput) (*domain.User, error)
	UpdateUser(ctx context.Context, user domain.User) (*domain.User, error)
}

type BookingWriter interface {
	CreateBooking(ctx context.Context, input domain.BookingInput) (*domain.Booking, error)
	UpdateBooking(ctx context.Context, booking domain.Booking) (*domain.Booking, error)
}
