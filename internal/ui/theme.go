package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Scheme is the light/dark preference.
type Scheme string

const (
	Light Scheme = "light"
	Dark  Scheme = "dark"
)

// ParseScheme accepts "light" or "dark", case-insensitively.
func ParseScheme(s string) (Scheme, error) {
	switch Scheme(strings.ToLower(strings.TrimSpace(s))) {
	case Light:
		return Light, nil
	case Dark:
		return Dark, nil
	}
	return "", fmt.Errorf("unknown color scheme %q", s)
}

// Toggle flips light and dark.
func (s Scheme) Toggle() Scheme {
	if s == Dark {
		return Light
	}
	return Dark
}

// Icon is the glyph shown for the scheme in headers.
func (s Scheme) Icon() string {
	if s == Dark {
		return "☾"
	}
	return "☀"
}

// Theme bundles palette + symbols for one scheme.
type Theme struct {
	Scheme Scheme

	Text, Title, Muted, Accent, Success, Pending, Error lipgloss.Style
	Done, Selected, Help, Button                        lipgloss.Style
	Border                                              lipgloss.Color

	BoxUnchecked, BoxChecked string
	SymDone, SymPending      string
}

// ThemeFor returns the theme of scheme s. Unknown schemes get Light.
func ThemeFor(s Scheme) Theme {
	var text, icon, button lipgloss.Color
	if s == Dark {
		text, icon, button = "#ECEDEE", "#9BA1A6", "#FFFFFF"
	} else {
		s = Light
		text, icon, button = "#11181C", "#687076", "#000000"
	}
	base := lipgloss.NewStyle().Foreground(text)
	return Theme{
		Scheme:   s,
		Text:     base,
		Title:    base.Bold(true),
		Muted:    lipgloss.NewStyle().Foreground(icon).Faint(true),
		Accent:   lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		Success:  lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Pending:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Done:     lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Strikethrough(true),
		Selected: base.Bold(true).Reverse(true),
		Help:     lipgloss.NewStyle().Foreground(icon).Faint(true),
		Button:   lipgloss.NewStyle().Foreground(button).Bold(true),
		Border:   icon,

		BoxUnchecked: "☐",
		BoxChecked:   "☑",
		SymDone:      "✔",
		SymPending:   "•",
	}
}
