// Package prefs keeps the color scheme choice in its own slot key, next
// to the todo list.
package prefs

import (
	"context"
	"fmt"

	"github.com/idilsaglam/todo/internal/store"
	"github.com/idilsaglam/todo/internal/ui"
)

// SchemeKey is the slot holding "light" or "dark".
const SchemeKey = "TodoAppColorScheme"

// LoadScheme returns the saved scheme, or fallback if none was saved or the
// saved value is unreadable.
func LoadScheme(ctx context.Context, slot store.Slot, fallback ui.Scheme) (ui.Scheme, error) {
	v, ok, err := slot.Get(ctx, SchemeKey)
	if err != nil {
		return fallback, fmt.Errorf("load scheme: %w", err)
	}
	if !ok {
		return fallback, nil
	}
	s, err := ui.ParseScheme(v)
	if err != nil {
		return fallback, fmt.Errorf("load scheme: %w", err)
	}
	return s, nil
}

func SaveScheme(ctx context.Context, slot store.Slot, s ui.Scheme) error {
	if err := slot.Set(ctx, SchemeKey, string(s)); err != nil {
		return fmt.Errorf("save scheme: %w", err)
	}
	return nil
}
