package session

import (
	"context"
	"errors"
	"testing"

	"github.com/crechehub/agendaservice/internal/domain"
	"github.com/crechehub/agendaservice/internal/session/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
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

func marta() *domain.User {
	return &domain.User{ID: 3, Name: "Marta", Email: "marta@creche.com", Role: "admin", Active: true}
}

func TestManager_Login_Success(t *testing.T) {
	gw := mocks.NewMockCredentialsGateway(t)
	tokens := mocks.NewMockTokenStore(t)
	m := NewManager(gw, tokens, newTestLogger(t))

	gw.EXPECT().Login(mock.Anything, "marta@creche.com", "segredo").Return("tok-123", nil)
	gw.EXPECT().UserDetails(mock.Anything, "tok-123").Return(marta(), nil)
	tokens.EXPECT().Save("tok-123").Return(nil)

	user, err := m.Login(context.Background(), "marta@creche.com", "segredo")

	require.NoError(t, err)
	assert.Equal(t, 3, user.ID)

	current, ok := m.Current()
	require.True(t, ok)
	assert.Equal(t, "Marta", current.Name)

	token, ok := m.Token()
	require.True(t, ok)
	assert.Equal(t, "tok-123", token)
}

func TestManager_Login_WrongPassword(t *testing.T) {
	gw := mocks.NewMockCredentialsGateway(t)
	tokens := mocks.NewMockTokenStore(t)
	m := NewManager(gw, tokens, newTestLogger(t))

	gw.EXPECT().Login(mock.Anything, "marta@creche.com", "errada").Return("", domain.ErrInvalidCredentials)

	_, err := m.Login(context.Background(), "marta@creche.com", "errada")

	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, ok := m.Current()
	assert.False(t, ok)
	tokens.AssertNotCalled(t, "Save")
}

func TestManager_Login_UserLookupFails(t *testing.T) {
	gw := mocks.NewMockCredentialsGateway(t)
	tokens := mocks.NewMockTokenStore(t)
	m := NewManager(gw, tokens, newTestLogger(t))

	gw.EXPECT().Login(mock.Anything, "marta@creche.com", "segredo").Return("tok-123", nil)
	gw.EXPECT().UserDetails(mock.Anything, "tok-123").Return(nil, errors.New("gateway down"))

	_, err := m.Login(context.Background(), "marta@creche.com", "segredo")

	require.Error(t, err)
	// Nothing persisted: the token is only saved once the user resolves.
	tokens.AssertNotCalled(t, "Save")
	_, ok := m.Token()
	assert.False(t, ok)
}

func TestManager_Logout_ClearsAndFiresTeardown(t *testing.T) {
	gw := mocks.NewMockCredentialsGateway(t)
	tokens := mocks.NewMockTokenStore(t)
	m := NewManager(gw, tokens, newTestLogger(t))

	torn := 0
	m.OnTeardown(func() { torn++ })

	gw.EXPECT().Login(mock.Anything, "marta@creche.com", "segredo").Return("tok-123", nil)
	gw.EXPECT().UserDetails(mock.Anything, "tok-123").Return(marta(), nil)
	tokens.EXPECT().Save("tok-123").Return(nil)
	tokens.EXPECT().Clear().Return(nil)

	_, err := m.Login(context.Background(), "marta@creche.com", "segredo")
	require.NoError(t, err)

	require.NoError(t, m.Logout(context.Background()))

	_, ok := m.Current()
	assert.False(t, ok)
	assert.Equal(t, 1, torn)
}

func TestManager_Logout_WhileLoggedOut(t *testing.T) {
	gw := mocks.NewMockCredentialsGateway(t)
	tokens := mocks.NewMockTokenStore(t)
	m := NewManager(gw, tokens, newTestLogger(t))

	torn := 0
	m.OnTeardown(func() { torn++ })
	tokens.EXPECT().Clear().Return(nil)

	require.NoError(t, m.Logout(context.Background()))
	assert.Equal(t, 0, torn)
}

func TestManager_Restore_Success(t *testing.T) {
	gw := mocks.NewMockCredentialsGateway(t)
	tokens := mocks.NewMockTokenStore(t)
	m := NewManager(gw, tokens, newTestLogger(t))

	tokens.EXPECT().Load().Return("tok-123", nil)
	gw.EXPECT().UserDetails(mock.Anything, "tok-123").Return(marta(), nil)

	require.NoError(t, m.Restore(context.Background()))

	current, ok := m.Current()
	require.True(t, ok)
	assert.Equal(t, 3, current.ID)
}

func TestManager_Restore_NoStoredToken(t *testing.T) {
	gw := mocks.NewMockCredentialsGateway(t)
	tokens := mocks.NewMockTokenStore(t)
	m := NewManager(gw, tokens, newTestLogger(t))

	tokens.EXPECT().Load().Return("", nil)

	require.NoError(t, m.Restore(context.Background()))

	_, ok := m.Current()
	assert.False(t, ok)
	gw.AssertNotCalled(t, "UserDetails")
}

func TestManager_Restore_RejectedTokenCleared(t *testing.T) {
	gw := mocks.NewMockCredentialsGateway(t)
	tokens := mocks.NewMockTokenStore(t)
	m := NewManager(gw, tokens, newTestLogger(t))

	tokens.EXPECT().Load().Return("stale", nil)
	gw.EXPECT().UserDetails(mock.Anything, "stale").Return(nil, domain.ErrSessionExpired)
	tokens.EXPECT().Clear().Return(nil)

	require.NoError(t, m.Restore(context.Background()))

	_, ok := m.Current()
	assert.False(t, ok)
}

func TestManager_Restore_TransportFailureKeepsToken(t *testing.T) {
	gw := mocks.NewMockCredentialsGateway(t)
	tokens := mocks.NewMockTokenStore(t)
	m := NewManager(gw, tokens, newTestLogger(t))

	tokens.EXPECT().Load().Return("tok-123", nil)
	gw.EXPECT().UserDetails(mock.Anything, "tok-123").Return(nil, domain.ErrGatewayUnavailable)

	err := m.Restore(context.Background())

	require.Error(t, err)
	// The token may still be good; only an upstream rejection clears it.
	tokens.AssertNotCalled(t, "Clear")
}

func TestManager_Expire_ActsLikeLogout(t *testing.T) {
	gw := mocks.NewMockCredentialsGateway(t)
	tokens := mocks.NewMockTokenStore(t)
	m := NewManager(gw, tokens, newTestLogger(t))

	torn := 0
	m.OnTeardown(func() { torn++ })

	gw.EXPECT().Login(mock.Anything, "marta@creche.com", "segredo").Return("tok-123", nil)
	gw.EXPECT().UserDetails(mock.Anything, "tok-123").Return(marta(), nil)
	tokens.EXPECT().Save("tok-123").Return(nil)
	tokens.EXPECT().Clear().Return(nil)

	_, err := m.Login(context.Background(), "marta@creche.com", "segredo")
	require.NoError(t, err)

	m.Expire()

	_, ok := m.Current()
	assert.False(t, ok)
	assert.Equal(t, 1, torn)
}

func TestManager_Verify_ExpiredTokenTearsDown(t *testing.T) {
	gw := mocks.NewMockCredentialsGateway(t)
	tokens := mocks.NewMockTokenStore(t)
	m := NewManager(gw, tokens, newTestLogger(t))

	gw.EXPECT().Login(mock.Anything, "marta@creche.com", "segredo").Return("tok-123", nil)
	gw.EXPECT().UserDetails(mock.Anything, "tok-123").Return(marta(), nil).Once()
	tokens.EXPECT().Save("tok-123").Return(nil)

	_, err := m.Login(context.Background(), "marta@creche.com", "segredo")
	require.NoError(t, err)

	gw.EXPECT().UserDetails(mock.Anything, "tok-123").Return(nil, domain.ErrSessionExpired).Once()
	tokens.EXPECT().Clear().Return(nil)

	err = m.Verify(context.Background())

	assert.ErrorIs(t, err, domain.ErrSessionExpired)
	_, ok := m.Current()
	assert.False(t, ok)
}

func TestManager_Verify_WhileLoggedOut(t *testing.T) {
	gw := mocks.NewMockCredentialsGateway(t)
	tokens := mocks.NewMockTokenStore(t)
	m := NewManager(gw, tokens, newTestLogger(t))

	require.NoError(t, m.Verify(context.Background()))
	gw.AssertNotCalled(t, "UserDetails")
}
