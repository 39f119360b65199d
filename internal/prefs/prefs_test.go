package prefs

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/todo/internal/store/memstore"
	"github.com/idilsaglam/todo/internal/ui"
)

func TestSchemeRoundTrip(t *testing.T) {
	ctx := context.Background()
	slot := memstore.New()

	s, err := LoadScheme(ctx, slot, ui.Light)
	require.NoError(t, err)
	assert.Equal(t, ui.Light, s)

	require.NoError(t, SaveScheme(ctx, slot, ui.Dark))
	s, err = LoadScheme(ctx, slot, ui.Light)
	require.NoError(t, err)
	assert.Equal(t, ui.Dark, s)
}

func TestUnreadableSchemeFallsBack(t *testing.T) {
	ctx := context.Background()
	slot := memstore.New()
	require.NoError(t, slot.Set(ctx, SchemeKey, "purple"))

	s, err := LoadScheme(ctx, slot, ui.Dark)
	assert.Error(t, err)
	assert.Equal(t, ui.Dark, s)
}
