package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/todo/internal/model"
)

func TestRecordsNewestFirst(t *testing.T) {
	got := Records()
	require.NotEmpty(t, got)
	for i := 1; i < len(got); i++ {
		assert.Greater(t, got[i-1].ID, got[i].ID)
	}
}

func TestRecordsUniqueAndValid(t *testing.T) {
	seen := map[int]bool{}
	for _, td := range Records() {
		assert.False(t, seen[td.ID], "duplicate id %d", td.ID)
		seen[td.ID] = true
		assert.True(t, model.ValidTitle(td.Title))
		assert.LessOrEqual(t, len([]rune(td.Title)), model.MaxTitleLen)
	}
}

func TestRecordsReturnsCopy(t *testing.T) {
	a := Records()
	a[0].Title = "changed"
	a[0].Completed = !a[0].Completed

	b := Records()
	assert.NotEqual(t, "changed", b[0].Title)
}
