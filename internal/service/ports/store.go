package ports

import (
	"context"

	"github.com/crechehub/agendaservice/internal/domain"
)

// EntityStore is the cached read side. Services read entities through it and
// invalidate the touched kinds after every committed mutation.
type EntityStore interface {
	Children(ctx context.Context) ([]domain.Child, error)
	Child(ctx context.Context, id int) (*domain.Child, error)
	ClassGroups(ctx context.Context) ([]domain.ClassGroup, error)
	ClassGroup(ctx context.Context, id int) (*domain.ClassGroup, error)
	Bookings(ctx context.Context) ([]domain.Booking, error)
	Booking(ctx context.Context, id int) (*domain.Booking, error)
	Users(ctx context.Context) ([]domain.User, error)
	User(ctx context.Context, id int) (*domain.User, error)
	Invalidate(kind domain.Kind)
}
