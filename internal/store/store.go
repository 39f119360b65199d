// Package store defines the durable key-value slot the todo list is
// mirrored to. Backends live in the subpackages.
package store

import (
	"context"
	"errors"
	"fmt"
)

// DefaultKey is the slot the todo list is written under.
const DefaultKey = "TodoApp"

// ErrInvalidKey is returned for keys a backend cannot address.
var ErrInvalidKey = errors.New("invalid key")

// Slot is a local key-value store holding textual values.
type Slot interface {
	// Get returns the value under key. ok is false when nothing was ever written.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	// Set replaces the value under key.
	Set(ctx context.Context, key, value string) error
	Close() error
}

// CheckKey rejects empty keys and anything outside [A-Za-z0-9._-].
func CheckKey(key string) error {
	if key == "" {
		return fmt.Errorf("%w: empty", ErrInvalidKey)
	}
	for i := 0; i < len(key); i++ {
		c := key[i]
		valid := (c >= 'A' && c <= 'Z') ||
			(c >= 'a' && c <= 'z') ||
			(c >= '0' && c <= '9') ||
			c == '.' || c == '_' || c == '-'
		if !valid {
			return fmt.Errorf("%w: %q", ErrInvalidKey, key)
		}
	}
	if key == "." || key == ".." {
		return fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return nil
}
