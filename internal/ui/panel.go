package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ProgressBar shows done out of total as a bar of width cells, the done
// part in the success color, followed by "done/total".
func (t Theme) ProgressBar(done, total, width int) string {
	width = max(width, 5)
	filled := 0
	if total > 0 {
		filled = min(done*width/total, width)
	}
	return t.Success.Render(strings.Repeat("━", filled)) +
		t.Muted.Render(strings.Repeat("─", width-filled)) +
		fmt.Sprintf(" %d/%d", done, total)
}

// PanelString frames content in a rounded border.
func (t Theme) PanelString(content string) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, 1).
		Render(content)
}

// Printer writes themed status lines and panels.
type Printer struct {
	Out, Err io.Writer
	Theme    Theme
}

func (p Printer) OK(msg string) {
	fmt.Fprintln(p.Out, p.Theme.Success.Render(p.Theme.SymDone+" "+msg))
}

func (p Printer) Fail(msg string) {
	fmt.Fprintln(p.Err, p.Theme.Error.Render("✖ "+msg))
}

func (p Printer) Panel(lines []string) {
	fmt.Fprintln(p.Out, p.Theme.PanelString(strings.Join(lines, "\n")))
}
