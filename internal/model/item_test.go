package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidTitle(t *testing.T) {
	assert.False(t, ValidTitle(""))
	assert.False(t, ValidTitle("   "))
	assert.False(t, ValidTitle("\t\n"))
	assert.True(t, ValidTitle(" milk "))
}

func TestCapTitle(t *testing.T) {
	assert.Equal(t, "short", CapTitle("short"))

	long := strings.Repeat("x", 45)
	assert.Equal(t, strings.Repeat("x", MaxTitleLen), CapTitle(long))

	// runes, not bytes
	wide := strings.Repeat("é", 31)
	assert.Equal(t, strings.Repeat("é", MaxTitleLen), CapTitle(wide))
}

func TestNextID(t *testing.T) {
	assert.Equal(t, 1, NextID(nil))
	assert.Equal(t, 8, NextID([]Todo{{ID: 3}, {ID: 7}, {ID: 1}}))
}

func TestSortNewestFirst(t *testing.T) {
	todos := []Todo{{ID: 2}, {ID: 5}, {ID: 1}}
	SortNewestFirst(todos)
	assert.Equal(t, []Todo{{ID: 5}, {ID: 2}, {ID: 1}}, todos)
}

func TestStats(t *testing.T) {
	done, pending := Stats([]Todo{{Completed: true}, {}, {}})
	assert.Equal(t, 1, done)
	assert.Equal(t, 2, pending)
}

func TestEncodeDecode(t *testing.T) {
	s, err := Encode(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", s)

	s, err = Encode([]Todo{{ID: 1, Title: "A", Completed: true}})
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":1,"title":"A","completed":true}]`, s)

	got, err := Decode(s)
	require.NoError(t, err)
	assert.Equal(t, []Todo{{ID: 1, Title: "A", Completed: true}}, got)

	_, err = Decode("{not json")
	assert.Error(t, err)
}
