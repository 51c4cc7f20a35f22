package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/crechehub/agendaservice/internal/domain"
	"github.com/crechehub/agendaservice/internal/service/ports"
)

func errorsIsNotFound(err error) bool {
	return errors.Is(err, domain.ErrChildNotFound) || errors.Is(err, domain.ErrClassNotFound)
}

// AvailabilityValidator judges booking proposals against the cached entities.
// Checks run in a fixed order and short-circuit on the first failure: date
// range, references, age band, class capacity, duplicate booking. The upstream
// enforces none of this, so a proposal that passes here is the only guarantee
// the system gives.
type AvailabilityValidator struct {
	store ports.EntityStore
}

func NewAvailabilityValidator(store ports.EntityStore) *AvailabilityValidator {
	return &AvailabilityValidator{store: store}
}

func (v *AvailabilityValidator) Validate(ctx context.Context, p domain.BookingProposal) error {
	if p.StartDate.IsZero() || p.EndDate.IsZero() || p.StartDate.After(p.EndDate) {
		return domain.ErrInvalidDateRange
	}

	child, class, err := v.references(ctx, p)
	if err != nil {
		return err
	}

	age := child.BirthDate.AgeAt(p.StartDate)
	if age < class.MinAge || age > class.MaxAge {
		return fmt.Errorf("%w: age %d not in [%d, %d]", domain.ErrAgeOutOfRange, age, class.MinAge, class.MaxAge)
	}

	bookings, err := v.store.Bookings(ctx)
	if err != nil {
		return fmt.Errorf("load bookings: %w", err)
	}

	overlapping := 0
	var duplicate *domain.Booking
	for i := range bookings {
		b := &bookings[i]
		if !b.Active || b.ID == p.ExcludeID || b.ClassID != p.ClassID {
			continue
		}
		if !domain.Overlaps(b.StartDate, b.EndDate, p.StartDate, p.EndDate) {
			continue
		}
		overlapping++
		if b.ChildID == p.ChildID && duplicate == nil {
			duplicate = b
		}
	}

	// The proposal itself counts toward capacity; the capacity verdict comes
	// before the duplicate one.
	if overlapping+1 > class.Capacity {
		return fmt.Errorf("%w: %d of %d places taken", domain.ErrCapacityExceeded, overlapping, class.Capacity)
	}
	if duplicate != nil {
		return fmt.Errorf("%w: booking %d covers %s to %s",
			domain.ErrDuplicateBooking, duplicate.ID, duplicate.StartDate.ISO(), duplicate.EndDate.ISO())
	}

	return nil
}

func (v *AvailabilityValidator) references(ctx context.Context, p domain.BookingProposal) (*domain.Child, *domain.ClassGroup, error) {
	child, err := v.store.Child(ctx, p.ChildID)
	if err != nil {
		if errorsIsNotFound(err) {
			return nil, nil, fmt.Errorf("%w: child %d", domain.ErrUnknownReference, p.ChildID)
		}
		return nil, nil, fmt.Errorf("load child: %w", err)
	}
	if !child.Active {
		return nil, nil, fmt.Errorf("%w: child %d is inactive", domain.ErrUnknownReference, p.ChildID)
	}

	class, err := v.store.ClassGroup(ctx, p.ClassID)
	if err != nil {
		if errorsIsNotFound(err) {
			return nil, nil, fmt.Errorf("%w: class %d", domain.ErrUnknownReference, p.ClassID)
		}
		return nil, nil, fmt.Errorf("load class: %w", err)
	}
	if !class.Active {
		return nil, nil, fmt.Errorf("%w: class %d is inactive", domain.ErrUnknownReference, p.ClassID)
	}

	return child, class, nil
}
