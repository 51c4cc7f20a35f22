package ports

import (
	"context"

	"github.com/crechehub/agendaservice/internal/domain"
)

type BookingNotifier interface {
	NotifyBookingCreated(ctx context.Context, booking *domain.Booking, child *domain.Child, class *domain.ClassGroup)
	NotifyBookingCancelled(ctx context.Context, booking *domain.Booking, child *domain.Child, class *domain.ClassGroup)
}
