package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseScheme(t *testing.T) {
	s, err := ParseScheme(" Dark ")
	require.NoError(t, err)
	assert.Equal(t, Dark, s)

	s, err = ParseScheme("light")
	require.NoError(t, err)
	assert.Equal(t, Light, s)

	_, err = ParseScheme("sepia")
	assert.Error(t, err)
}

func TestToggle(t *testing.T) {
	assert.Equal(t, Dark, Light.Toggle())
	assert.Equal(t, Light, Dark.Toggle())
	assert.Equal(t, Dark, Scheme("").Toggle())
}

func TestThemeFor(t *testing.T) {
	assert.Equal(t, Dark, ThemeFor(Dark).Scheme)
	assert.Equal(t, Light, ThemeFor("bogus").Scheme)
	assert.NotEqual(t, ThemeFor(Light).Text.GetForeground(), ThemeFor(Dark).Text.GetForeground())
}

func TestProgressBar(t *testing.T) {
	th := ThemeFor(Light)
	assert.Equal(t, "━━━━━───── 1/2", th.ProgressBar(1, 2, 10))
	assert.Equal(t, "───── 0/0", th.ProgressBar(0, 0, 1))
	assert.Equal(t, "━━━━━━ 3/3", th.ProgressBar(3, 3, 6))
}

func TestPrinter(t *testing.T) {
	var out, errb bytes.Buffer
	p := Printer{Out: &out, Err: &errb, Theme: ThemeFor(Light)}
	p.OK("added")
	p.Fail("nope")
	p.Panel([]string{"one", "two"})

	assert.Contains(t, out.String(), "added")
	assert.Contains(t, errb.String(), "nope")
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.GreaterOrEqual(t, len(lines), 5)
}
