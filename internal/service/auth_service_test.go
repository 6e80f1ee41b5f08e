package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"miniblog/api/internal/config"
	"miniblog/api/internal/models"
	"miniblog/api/internal/security"
	"miniblog/api/internal/seed"
	"miniblog/api/internal/session"
	"miniblog/api/internal/store"
)

type memKeyval struct {
	data map[string]string
}

func (m *memKeyval) Get(_ context.Context, key string) (string, bool, error) {
	value, ok := m.data[key]
	return value, ok, nil
}

func (m *memKeyval) Set(_ context.Context, key, value string) error {
	m.data[key] = value
	return nil
}

func (m *memKeyval) Del(_ context.Context, key string) error {
	delete(m.data, key)
	return nil
}

func newAuthFixture(t *testing.T) (*AuthService, *session.Manager) {
	t.Helper()
	cfg := &config.AppConfig{
		Environment: "test",
		Security: config.SecurityConfig{
			JWTAccessSecret: "test-secret",
			JWTAccessTTL:    time.Hour,
		},
	}
	identity := store.NewIdentityStore(seed.Accounts())
	sessions := session.NewManager(identity, &memKeyval{data: make(map[string]string)})
	return NewAuthService(identity, sessions, cfg, zerolog.Nop()), sessions
}

func TestLoginIssuesTokenAndEstablishesSession(t *testing.T) {
	svc, sessions := newAuthFixture(t)
	ctx := context.Background()

	result, err := svc.Login(ctx, "owner", "owner123")
	require.NoError(t, err)
	assert.Equal(t, models.RoleOwner, result.Account.Role())
	assert.Equal(t, models.RoleOwner, sessions.CurrentRole())

	claims, err := security.ParseAccessToken(result.AccessToken, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, "owner", claims.AccountID)
	assert.Equal(t, string(models.RoleOwner), claims.Role)
}

func TestLoginFailurePassthrough(t *testing.T) {
	svc, sessions := newAuthFixture(t)

	_, err := svc.Login(context.Background(), "owner", "wrong")
	assert.ErrorIs(t, err, store.ErrInvalidCredentials)
	assert.Equal(t, models.RoleAnonymous, sessions.CurrentRole())
}

func TestLogoutClearsSession(t *testing.T) {
	svc, sessions := newAuthFixture(t)
	ctx := context.Background()

	_, err := svc.Login(ctx, "小明", "user123")
	require.NoError(t, err)
	require.NoError(t, svc.Logout(ctx))
	assert.Equal(t, models.RoleAnonymous, sessions.CurrentRole())
}
