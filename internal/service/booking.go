package service

import (
	"context"
	"fmt"

	"github.com/crechehub/agendaservice/internal/domain"
	"github.com/crechehub/agendaservice/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// BookingService is the booking lifecycle manager: every create, edit and
// cancellation passes through the availability validator before the gateway
// is touched, and invalidates the affected caches after a commit. A gateway
// failure leaves the caches untouched, since nothing was committed.
type BookingService struct {
	gw        ports.BookingWriter
	store     ports.EntityStore
	validator *AvailabilityValidator
	notifier  ports.BookingNotifier
	log       logger.Logger
}

func NewBookingService(
	gw ports.BookingWriter,
	store ports.EntityStore,
	validator *AvailabilityValidator,
	notifier ports.BookingNotifier,
	log logger.Logger,
) *BookingService {
	return &BookingService{
		gw:        gw,
		store:     store,
		validator: validator,
		notifier:  notifier,
		log:       log,
	}
}

func (s *BookingService) List(ctx context.Context) ([]domain.Booking, error) {
	return s.store.Bookings(ctx)
}

func (s *BookingService) Create(ctx context.Context, input domain.BookingInput) (*domain.Booking, error) {
	proposal := domain.BookingProposal{
		ChildID:   input.ChildID,
		ClassID:   input.ClassID,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
	}
	if err := s.validator.Validate(ctx, proposal); err != nil {
		return nil, err
	}

	booking, err := s.gw.CreateBooking(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	// Class membership lists reference bookings, so both kinds go stale.
	s.store.Invalidate(domain.KindBooking)
	s.store.Invalidate(domain.KindClass)

	s.log.Info("booking created",
		logger.Int("booking_id", booking.ID),
		logger.Int("child_id", booking.ChildID),
		logger.Int("class_id", booking.ClassID),
	)

	s.notifyCreated(ctx, booking)
	return booking, nil
}

func (s *BookingService) Update(ctx context.Context, id int, input domain.BookingInput) (*domain.Booking, error) {
	existing, err := s.store.Booking(ctx, id)
	if err != nil {
		return nil, err
	}

	merged := mergeBooking(*existing, input)

	proposal := domain.BookingProposal{
		ChildID:   merged.ChildID,
		ClassID:   merged.ClassID,
		StartDate: merged.StartDate,
		EndDate:   merged.EndDate,
		ExcludeID: id,
	}
	if err := s.validator.Validate(ctx, proposal); err != nil {
		return nil, err
	}

	booking, err := s.gw.UpdateBooking(ctx, merged)
	if err != nil {
		return nil, fmt.Errorf("update booking: %w", err)
	}

	s.store.Invalidate(domain.KindBooking)
	s.store.Invalidate(domain.KindClass)

	s.log.Info("booking updated", logger.Int("booking_id", booking.ID))
	return booking, nil
}

// Cancel deactivates a booking. It is idempotent: cancelling an already
// cancelled booking succeeds without another gateway write.
func (s *BookingService) Cancel(ctx context.Context, id int) error {
	existing, err := s.store.Booking(ctx, id)
	if err != nil {
		return err
	}
	if !existing.Active {
		return nil
	}

	desired := *existing
	desired.Active = false

	booking, err := s.gw.UpdateBooking(ctx, desired)
	if err != nil {
		return fmt.Errorf("cancel booking: %w", err)
	}

	s.store.Invalidate(domain.KindBooking)
	s.store.Invalidate(domain.KindClass)

	s.log.Info("booking cancelled", logger.Int("booking_id", id))

	s.notifyCancelled(ctx, booking)
	return nil
}

// mergeBooking applies a partial edit on top of the current state; activation
// only changes through Cancel.
func mergeBooking(existing domain.Booking, input domain.BookingInput) domain.Booking {
	merged := existing
	if input.ChildID != 0 {
		merged.ChildID = input.ChildID
	}
	if input.ClassID != 0 {
		merged.ClassID = input.ClassID
	}
	if !input.StartDate.IsZero() {
		merged.StartDate = input.StartDate
	}
	if !input.EndDate.IsZero() {
		merged.EndDate = input.EndDate
	}
	if input.Note != "" {
		merged.Note = input.Note
	}
	return merged
}

func (s *BookingService) notifyCreated(ctx context.Context, booking *domain.Booking) {
	child, class, ok := s.participants(ctx, booking)
	if !ok {
		return
	}
	go s.notifier.NotifyBookingCreated(context.WithoutCancel(ctx), booking, child, class)
}

func (s *BookingService) notifyCancelled(ctx context.Context, booking *domain.Booking) {
	child, class, ok := s.participants(ctx, booking)
	if !ok {
		return
	}
	go s.notifier.NotifyBookingCancelled(context.WithoutCancel(ctx), booking, child, class)
}

func (s *BookingService) participants(ctx context.Context, booking *domain.Booking) (*domain.Child, *domain.ClassGroup, bool) {
	child, err := s.store.Child(ctx, booking.ChildID)
	if err != nil {
		s.log.Error("failed to load child for notification",
			logger.Int("child_id", booking.ChildID),
			logger.String("error", err.Error()),
		)
		return nil, nil, false
	}
	class, err := s.store.ClassGroup(ctx, booking.ClassID)
	if err != nil {
		s.log.Error("failed to load class for notification",
			logger.Int("class_id", booking.ClassID),
			logger.String("error", err.Error()),
		)
		return nil, nil, false
	}
	return child, class, true
}
