// Package session tracks the currently authenticated account. At most one
// identity is active at a time; the username (never the password) survives
// restarts through a single key in the key-value store.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/redis/go-redis/v9"

	"miniblog/api/internal/models"
	"miniblog/api/internal/store"
)

const rememberedUserKey = "miniblog:remembered_user"

// Keyval is the minimal key-value surface the session needs. Production
// uses Redis; tests use an in-memory map.
type Keyval interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Del(ctx context.Context, key string) error
}

type Manager struct {
	mu       sync.RWMutex
	active   *models.Account
	identity *store.IdentityStore
	kv       Keyval
}

func NewManager(identity *store.IdentityStore, kv Keyval) *Manager {
	return &Manager{identity: identity, kv: kv}
}

// Establish replaces the active session and remembers the username durably.
func (m *Manager) Establish(ctx context.Context, account models.Account) error {
	m.mu.Lock()
	copied := account
	m.active = &copied
	m.mu.Unlock()

	encoded, err := json.Marshal(account.Username)
	if err != nil {
		return fmt.Errorf("encode remembered username: %w", err)
	}
	if err := m.kv.Set(ctx, rememberedUserKey, string(encoded)); err != nil {
		return fmt.Errorf("persist remembered username: %w", err)
	}
	return nil
}

// Restore looks up the remembered username once at startup. A missing key
// or a username that no longer resolves leaves the session empty; neither
// is an error.
func (m *Manager) Restore(ctx context.Context) (models.Account, bool, error) {
	raw, found, err := m.kv.Get(ctx, rememberedUserKey)
	if err != nil {
		return models.Account{}, false, fmt.Errorf("read remembered username: %w", err)
	}
	if !found {
		return models.Account{}, false, nil
	}

	var username string
	if err := json.Unmarshal([]byte(raw), &username); err != nil {
		return models.Account{}, false, nil
	}

	account, err := m.identity.FindByUsername(username)
	if err != nil {
		return models.Account{}, false, nil
	}

	m.mu.Lock()
	copied := account
	m.active = &copied
	m.mu.Unlock()

	return account, true, nil
}

// Clear empties the session and erases the remembered username.
func (m *Manager) Clear(ctx context.Context) error {
	m.mu.Lock()
	m.active = nil
	m.mu.Unlock()

	if err := m.kv.Del(ctx, rememberedUserKey); err != nil {
		return fmt.Errorf("erase remembered username: %w", err)
	}
	return nil
}

func (m *Manager) Current() (models.Account, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.active == nil {
		return models.Account{}, false
	}
	return *m.active, true
}

func (m *Manager) CurrentRole() models.Role {
	account, ok := m.Current()
	if !ok {
		return models.RoleAnonymous
	}
	return account.Role()
}

// RedisKeyval adapts a Redis client to the Keyval interface.
type RedisKeyval struct {
	client *redis.Client
}

func NewRedisKeyval(client *redis.Client) *RedisKeyval {
	return &RedisKeyval{client: client}
}

func (r *RedisKeyval) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := r.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func (r *RedisKeyval) Set(ctx context.Context, key, value string) error {
	return r.client.Set(ctx, key, value, 0).Err()
}

func (r *RedisKeyval) Del(ctx context.Context, key string) error {
	return r.client.Del(ctx, key).Err()
}
