package session

import (
	"context"
	"errors"
)

// ErrNotFound is returned by a Store when the key has no value.
var ErrNotFound = errors.New("session: key not found")

// Store is a durable key-value store for session state.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// Watcher is implemented by stores that can report external changes.
// fn receives the new value and whether the key is present.
type Watcher interface {
	Watch(ctx context.Context, key string, fn func(value string, ok bool)) error
}
