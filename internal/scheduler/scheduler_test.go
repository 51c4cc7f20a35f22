package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/crechehub/agendaservice/internal/domain"
	"github.com/crechehub/agendaservice/internal/scheduler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestScheduler_Tick_VerifiesSession(t *testing.T) {
	verifier := mocks.NewMockSessionVerifier(t)
	log := newTestLogger(t)

	s := New(verifier, 50*time.Millisecond, log)

	verifier.EXPECT().Verify(mock.Anything).Return(nil)

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(verifier.Calls), 1)
}

func TestScheduler_Tick_SessionExpired(t *testing.T) {
	verifier := mocks.NewMockSessionVerifier(t)
	log := newTestLogger(t)

	s := New(verifier, 50*time.Millisecond, log)

	verifier.EXPECT().Verify(mock.Anything).Return(domain.ErrSessionExpired)

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(verifier.Calls), 1)
}

func TestScheduler_Tick_HandlesError(t *testing.T) {
	verifier := mocks.NewMockSessionVerifier(t)
	log := newTestLogger(t)

	s := New(verifier, 50*time.Millisecond, log)

	verifier.EXPECT().Verify(mock.Anything).Return(errors.New("gateway down"))

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(verifier.Calls), 1)
}

func TestScheduler_StopsOnContextCancel(t *testing.T) {
	verifier := mocks.NewMockSessionVerifier(t)
	log := newTestLogger(t)

	s := New(verifier, time.Second, log) // interval longer than test

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
		// success
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop on context cancel")
	}
}

func TestScheduler_MultipleTicks(t *testing.T) {
	verifier := mocks.NewMockSessionVerifier(t)
	log := newTestLogger(t)

	s := New(verifier, 30*time.Millisecond, log)

	verifier.EXPECT().Verify(mock.Anything).Return(nil).Times(3)

	ctx, cancel := context.WithTimeout(context.Background(), 110*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(verifier.Calls), 3)
}
