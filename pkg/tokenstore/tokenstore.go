// Package tokenstore supplies the bearer token used by the API client.
//
// The client layer depends only on Provider. Store adds the write side used by the
// login and logout commands.
package tokenstore

import (
	"context"
	"fmt"
	"sync"

	"github.com/noah-isme/college-portal/pkg/config"
)

// Key is the key the token is persisted under.
const Key = "token"

// Provider resolves the current bearer token. An empty token with a nil error means
// no credentials are available.
type Provider interface {
	Token(ctx context.Context) (string, error)
}

// Store is a Provider that can also persist and forget the token.
type Store interface {
	Provider
	Save(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}

// ProviderFunc adapts a function to Provider.
type ProviderFunc func(ctx context.Context) (string, error)

// Token implements Provider.
func (f ProviderFunc) Token(ctx context.Context) (string, error) {
	return f(ctx)
}

// Static always returns the same token.
type Static string

// Token implements Provider.
func (s Static) Token(context.Context) (string, error) {
	return string(s), nil
}

// Memory keeps the token in process memory.
type Memory struct {
	mu    sync.RWMutex
	token string
}

// NewMemory constructs an in-memory store seeded with token.
func NewMemory(token string) *Memory {
	return &Memory{token: token}
}

// Token implements Provider.
func (m *Memory) Token(context.Context) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token, nil
}

// Save implements Store.
func (m *Memory) Save(_ context.Context, token string) error {
	m.mu.Lock()
	m.token = token
	m.mu.Unlock()
	return nil
}

// Clear implements Store.
func (m *Memory) Clear(ctx context.Context) error {
	return m.Save(ctx, "")
}

type ctxKey struct{}

// WithToken returns a copy of ctx carrying a per-request token.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, ctxKey{}, token)
}

// FromContext reads the token placed by WithToken. It never fails.
var FromContext Provider = ProviderFunc(func(ctx context.Context) (string, error) {
	if ctx == nil {
		return "", nil
	}
	token, _ := ctx.Value(ctxKey{}).(string)
	return token, nil
})

// Open builds the store selected by cfg. The returned close function releases any
// backing connection.
func Open(cfg *config.Config) (Store, func() error, error) {
	noop := func() error { return nil }
	switch cfg.Tokens.Store {
	case config.TokenStoreMemory:
		return NewMemory(""), noop, nil
	case config.TokenStoreRedis:
		client, err := NewRedis(cfg.Redis)
		if err != nil {
			return nil, noop, fmt.Errorf("connect token redis: %w", err)
		}
		return NewRedisStore(client, cfg.Tokens.KeyPrefix), client.Close, nil
	case config.TokenStoreFile, "":
		return NewFile(cfg.Tokens.File), noop, nil
	default:
		return nil, noop, fmt.Errorf("unknown token store %q", cfg.Tokens.Store)
	}
}
