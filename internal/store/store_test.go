package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckKey(t *testing.T) {
	for _, k := range []string{DefaultKey, "a.b", "x_y-z", "v2"} {
		assert.NoError(t, CheckKey(k), k)
	}
	for _, k := range []string{"", ".", "..", "a/b", `a\b`, "has space", "ü"} {
		assert.ErrorIs(t, CheckKey(k), ErrInvalidKey, k)
	}
}
