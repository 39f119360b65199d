package sqlitestore

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/todo/internal/store"
)

func openTemp(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), FileName)
	s, err := Open(context.Background(), path)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s, path
}

func TestGetMissing(t *testing.T) {
	s, _ := openTemp(t)
	_, ok, err := s.Get(context.Background(), store.DefaultKey)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestUpsert(t *testing.T) {
	ctx := context.Background()
	s, _ := openTemp(t)

	require.NoError(t, s.Set(ctx, store.DefaultKey, "first"))
	require.NoError(t, s.Set(ctx, store.DefaultKey, "second"))
	require.NoError(t, s.Set(ctx, "other", "x"))

	v, ok, err := s.Get(ctx, store.DefaultKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "second", v)
}

func TestSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	s, path := openTemp(t)
	require.NoError(t, s.Set(ctx, store.DefaultKey, `[{"id":3}]`))
	require.NoError(t, s.Close())

	s2, err := Open(ctx, path)
	require.NoError(t, err)
	defer s2.Close()

	v, ok, err := s2.Get(ctx, store.DefaultKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"id":3}]`, v)
}

func TestInvalidKey(t *testing.T) {
	s, _ := openTemp(t)
	assert.ErrorIs(t, s.Set(context.Background(), "", "x"), store.ErrInvalidKey)
}
