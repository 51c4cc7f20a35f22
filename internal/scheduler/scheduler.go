package scheduler

import (
	"context"
	"errors"
	"time"

	"github.com/crechehub/agendaservice/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type sessionVerifier interface {
	Verify(ctx context.Context) error
}

// Scheduler periodically revalidates the session token against the upstream,
// so a token revoked server-side is noticed without waiting for the next
// authenticated call to fail.
type Scheduler struct {
	session  sessionVerifier
	interval time.Duration
	logger   logger.Logger
}

func New(
	session sessionVerifier,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		session:  session,
		interval: interval,
		logger:   logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("session verifier started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("session verifier stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	err := s.session.Verify(ctx)
	if err == nil {
		return
	}

	if errors.Is(err, domain.ErrSessionExpired) {
		s.logger.Warn("session expired during verification")
		return
	}

	s.logger.Error("session verification failed",
		logger.String("error", err.Error()),
	)
}
