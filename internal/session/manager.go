package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/crechehub/agendaservice/internal/domain"
	"github.com/wb-go/wbf/logger"
)

// CredentialsGateway is the unauthenticated slice of the upstream API the
// session needs: exchanging credentials for a token and resolving the user
// behind a candidate token.
type CredentialsGateway interface {
	Login(ctx context.Context, email, password string) (string, error)
	UserDetails(ctx context.Context, token string) (*domain.User, error)
}

// Manager owns the bearer token and the resolved user. It is the process-wide
// session: populated by Login or Restore, cleared by Logout or Expire (the
// gateway's 401 hook). Teardown hooks run on every transition to logged out
// so nothing cached under one user leaks to the next.
type Manager struct {
	gw     CredentialsGateway
	tokens TokenStore
	log    logger.Logger

	mu    sync.RWMutex
	token string
	user  *domain.User

	teardown []func()
}

func NewManager(gw CredentialsGateway, tokens TokenStore, log logger.Logger) *Manager {
	return &Manager{gw: gw, tokens: tokens, log: log}
}

// OnTeardown registers a hook fired after logout or expiry. Registration is
// wiring-time only, not safe against concurrent Logout.
func (m *Manager) OnTeardown(fn func()) {
	m.teardown = append(m.teardown, fn)
}

// Login authenticates and transitions to logged in. Nothing is persisted
// until both the token exchange and the user lookup have succeeded, so a
// failed login leaves no trace.
func (m *Manager) Login(ctx context.Context, email, password string) (*domain.User, error) {
	token, err := m.gw.Login(ctx, email, password)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	user, err := m.gw.UserDetails(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	if err := m.tokens.Save(token); err != nil {
		return nil, fmt.Errorf("persist token: %w", err)
	}

	m.mu.Lock()
	m.token = token
	m.user = user
	m.mu.Unlock()

	m.log.Info("logged in",
		logger.Int("user_id", user.ID),
		logger.String("email", user.Email),
	)
	return user, nil
}

// Logout always succeeds from the caller's point of view: local state and the
// persisted token are cleared even if the file removal fails.
func (m *Manager) Logout(ctx context.Context) error {
	m.clear("logout")

	if err := m.tokens.Clear(); err != nil {
		m.log.Error("failed to clear persisted token", logger.String("error", err.Error()))
	}
	return nil
}

// Restore recovers the session at startup from a persisted token. An auth
// failure clears the stale token; a transport failure leaves it in place for
// the next start, since the token may still be valid.
func (m *Manager) Restore(ctx context.Context) error {
	token, err := m.tokens.Load()
	if err != nil {
		return fmt.Errorf("restore session: %w", err)
	}
	if token == "" {
		return nil
	}

	user, err := m.gw.UserDetails(ctx, token)
	if errors.Is(err, domain.ErrSessionExpired) {
		m.log.Info("stored token rejected, clearing it")
		if clearErr := m.tokens.Clear(); clearErr != nil {
			m.log.Error("failed to clear stale token", logger.String("error", clearErr.Error()))
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("restore session: %w", err)
	}

	m.mu.Lock()
	m.token = token
	m.user = user
	m.mu.Unlock()

	m.log.Info("session restored", logger.Int("user_id", user.ID))
	return nil
}

// Verify re-checks the current token against the upstream. Used by the
// periodic sweep; a no-op while logged out.
func (m *Manager) Verify(ctx context.Context) error {
	m.mu.RLock()
	token := m.token
	m.mu.RUnlock()
	if token == "" {
		return nil
	}

	user, err := m.gw.UserDetails(ctx, token)
	if errors.Is(err, domain.ErrSessionExpired) {
		m.Expire()
		return err
	}
	if err != nil {
		return err
	}

	m.mu.Lock()
	m.user = user
	m.mu.Unlock()
	return nil
}

// Expire is the gateway's 401 hook: the upstream no longer honors the token,
// so drop it everywhere, exactly like a logout.
func (m *Manager) Expire() {
	m.clear("session expired")

	if err := m.tokens.Clear(); err != nil {
		m.log.Error("failed to clear persisted token", logger.String("error", err.Error()))
	}
}

func (m *Manager) clear(reason string) {
	m.mu.Lock()
	wasLoggedIn := m.token != ""
	m.token = ""
	m.user = nil
	m.mu.Unlock()

	if !wasLoggedIn {
		return
	}

	m.log.Info("logged out", logger.String("reason", reason))
	for _, fn := range m.teardown {
		fn()
	}
}

// Current returns the resolved user while logged in.
func (m *Manager) Current() (*domain.User, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.user == nil {
		return nil, false
	}
	return m.user, true
}

// Token implements the gateway's token source.
func (m *Manager) Token() (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token, m.token != ""
}
