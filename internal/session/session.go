package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	pkgLog "notes-client/pkg/log"
)

// DefaultKey is the store key the bearer token is persisted under.
const DefaultKey = "jwt"

// Session holds the bearer token of the signed-in user and keeps it in sync
// with a durable Store. It is safe for concurrent use.
type Session struct {
	mu    sync.RWMutex
	token string

	store Store
	key   string
	l     pkgLog.Logger
}

// New creates an empty session backed by store. Call Load to restore a
// previously persisted token.
func New(l pkgLog.Logger, store Store, key string) *Session {
	if key == "" {
		key = DefaultKey
	}
	return &Session{store: store, key: key, l: l}
}

// Load restores the token from the store. A missing entry leaves the
// session empty and is not an error.
func (s *Session) Load(ctx context.Context) error {
	tok, err := s.store.Get(ctx, s.key)
	if errors.Is(err, ErrNotFound) {
		s.set("")
		return nil
	}
	if err != nil {
		return fmt.Errorf("load session: %w", err)
	}
	s.set(tok)
	return nil
}

// Token returns the current token, or "" when signed out.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Authenticated reports whether a token is present.
func (s *Session) Authenticated() bool {
	return s.Token() != ""
}

// SetToken stores token in memory and in the durable store. The in-memory
// token is updated even if persisting fails.
func (s *Session) SetToken(ctx context.Context, token string) error {
	s.set(token)
	if err := s.store.Set(ctx, s.key, token); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}
	return nil
}

// Clear removes the token from memory and from the store.
func (s *Session) Clear(ctx context.Context) error {
	s.set("")
	if err := s.store.Delete(ctx, s.key); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// Watch keeps the in-memory token in sync with external store changes when
// the store supports it. It is a no-op for other stores.
func (s *Session) Watch(ctx context.Context) error {
	w, ok := s.store.(Watcher)
	if !ok {
		return nil
	}
	return w.Watch(ctx, s.key, func(value string, present bool) {
		if !present {
			value = ""
		}
		if value == s.Token() {
			return
		}
		s.set(value)
		if value == "" {
			s.l.Infof(ctx, "session: token removed from store")
		} else {
			s.l.Infof(ctx, "session: token reloaded from store")
		}
	})
}

func (s *Session) set(token string) {
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()
}
