package store

import (
	"context"
	"sync"

	"github.com/crechehub/agendaservice/internal/domain"
	"github.com/wb-go/wbf/logger"
)

// Fetcher is the slice of the gateway the store reads through. The gateway is
// the source of truth; the store only memoizes whole collections.
type Fetcher interface {
	ListChildren(ctx context.Context) ([]domain.Child, error)
	ListClassGroups(ctx context.Context) ([]domain.ClassGroup, error)
	ListBookings(ctx context.Context) ([]domain.Booking, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
}

// collection caches one entity kind as a unit. There is no TTL and no partial
// invalidation: a kind is either entirely cached or entirely absent.
type collection[T any] struct {
	mu    sync.RWMutex
	valid bool
	items []T
}

func (c *collection[T]) get(ctx context.Context, fetch func(context.Context) ([]T, error)) ([]T, error) {
	c.mu.RLock()
	if c.valid {
		items := c.items
		c.mu.RUnlock()
		return items, nil
	}
	c.mu.RUnlock()

	items, err := fetch(ctx)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.items = items
	c.valid = true
	c.mu.Unlock()

	return items, nil
}

func (c *collection[T]) invalidate() {
	c.mu.Lock()
	c.valid = false
	c.items = nil
	c.mu.Unlock()
}

// Store is the cached view over the gateway's collections. Reads populate a
// kind on first use; mutations elsewhere invalidate it through Invalidate. A
// late fetch that lands after an invalidation simply repopulates the kind.
type Store struct {
	gw  Fetcher
	log logger.Logger

	children collection[domain.Child]
	classes  collection[domain.ClassGroup]
	bookings collection[domain.Booking]
	users    collection[domain.User]
}

func New(gw Fetcher, log logger.Logger) *Store {
	return &Store{gw: gw, log: log}
}

func (s *Store) Children(ctx context.Context) ([]domain.Child, error) {
	return s.children.get(ctx, s.gw.ListChildren)
}

func (s *Store) Child(ctx context.Context, id int) (*domain.Child, error) {
	children, err := s.Children(ctx)
	if err != nil {
		return nil, err
	}
	for i := range children {
		if children[i].ID == id {
			return &children[i], nil
		}
	}
	return nil, domain.ErrChildNotFound
}

func (s *Store) ClassGroups(ctx context.Context) ([]domain.ClassGroup, error) {
	return s.classes.get(ctx, s.gw.ListClassGroups)
}

func (s *Store) ClassGroup(ctx context.Context, id int) (*domain.ClassGroup, error) {
	classes, err := s.ClassGroups(ctx)
	if err != nil {
		return nil, err
	}
	for i := range classes {
		if classes[i].ID == id {
			return &classes[i], nil
		}
	}
	return nil, domain.ErrClassNotFound
}

func (s *Store) Bookings(ctx context.Context) ([]domain.Booking, error) {
	return s.bookings.get(ctx, s.gw.ListBookings)
}

func (s *Store) Booking(ctx context.Context, id int) (*domain.Booking, error) {
	bookings, err := s.Bookings(ctx)
	if err != nil {
		return nil, err
	}
	for i := range bookings {
		if bookings[i].ID == id {
			return &bookings[i], nil
		}
	}
	return nil, domain.ErrBookingNotFound
}

func (s *Store) Users(ctx context.Context) ([]domain.User, error) {
	return s.users.get(ctx, s.gw.ListUsers)
}

func (s *Store) User(ctx context.Context, id int) (*domain.User, error) {
	users, err := s.Users(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].ID == id {
			return &users[i], nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (s *Store) Invalidate(kind domain.Kind) {
	switch kind {
	case domain.KindChild:
		s.children.invalidate()
	case domain.KindClass:
		s.classes.invalidate()
	case domain.KindBooking:
		s.bookings.invalidate()
	case domain.KindUser:
		s.users.invalidate()
	}
	s.log.Debug("cache invalidated", logger.String("kind", string(kind)))
}

// InvalidateAll drops every kind. Wired as the session teardown hook so no
// cached entities survive a logout or forced expiry.
func (s *Store) InvalidateAll() {
	s.children.invalidate()
	s.classes.invalidate()
	s.bookings.invalidate()
	s.users.invalidate()
	s.log.Debug("all caches invalidated")
}
