// Package tui is the interactive todo screen. Every gesture goes straight
// into the todo store, which persists on its own.
package tui

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/idilsaglam/todo/internal/model"
	"github.com/idilsaglam/todo/internal/prefs"
	"github.com/idilsaglam/todo/internal/store"
	"github.com/idilsaglam/todo/internal/todos"
	"github.com/idilsaglam/todo/internal/ui"
)

// listItem adapts model.Todo to bubbles/list.Item
type listItem struct {
	todo model.Todo
}

func (i listItem) Title() string       { return i.todo.Title }
func (i listItem) Description() string { return "" }
func (i listItem) FilterValue() string { return i.todo.Title }

// Single-line rows.
type itemDelegate struct {
	theme ui.Theme
}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(listItem)
	if !ok {
		return
	}
	box := d.theme.Muted.Render(d.theme.BoxUnchecked)
	text := d.theme.Text.Render(it.todo.Title)
	if it.todo.Completed {
		box = d.theme.Success.Render(d.theme.BoxChecked)
		text = d.theme.Done.Render(it.todo.Title)
	}
	prefix := "  "
	if index == m.Index() {
		prefix = d.theme.Selected.Render("> ")
	}
	fmt.Fprintf(w, "%s%s %s", prefix, box, text)
}

var keys = struct {
	add, toggle, remove, show, theme key.Binding
}{
	add:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
	toggle: key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "done")),
	remove: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
	show:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "view")),
	theme:  key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
}

// Deps is what the screen needs from the outside.
type Deps struct {
	Store  *todos.Store
	Slot   store.Slot // for the color scheme preference
	Scheme ui.Scheme
	Logger *log.Logger
}

type Model struct {
	ctx    context.Context
	store  *todos.Store
	slot   store.Slot
	logger *log.Logger
	theme  ui.Theme

	list          list.Model
	width, height int

	// Inline add
	adding bool
	ti     textinput.Model
	addErr string

	// Single record view
	viewing bool
	viewID  int
}

// New builds the screen over an already loaded store.
func New(ctx context.Context, d Deps) Model {
	if d.Logger == nil {
		d.Logger = log.Default()
	}
	theme := ui.ThemeFor(d.Scheme)

	l := list.New(nil, itemDelegate{theme: theme}, 80, 20)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.FilterInput.Prompt = "/ "
	l.SetStatusBarItemName("todo", "todos")
	bindings := func() []key.Binding {
		return []key.Binding{keys.add, keys.toggle, keys.remove, keys.show, keys.theme}
	}
	l.AdditionalShortHelpKeys = bindings
	l.AdditionalFullHelpKeys = bindings

	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Add a new todo"
	ti.CharLimit = model.MaxTitleLen

	m := Model{
		ctx:    ctx,
		store:  d.Store,
		slot:   d.Slot,
		logger: d.Logger,
		theme:  theme,
		list:   l,
		width:  80,
		height: 24,
		ti:     ti,
	}
	m.applyTheme()
	m.refresh()
	return m
}

// Run starts the Bubble Tea program and blocks until the user quits.
func Run(ctx context.Context, d Deps) error {
	p := tea.NewProgram(New(ctx, d), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.width, m.height = ws.Width, ws.Height
		m.resize()
	}

	if m.adding {
		return m.updateAdding(msg)
	}
	if m.viewing {
		if k, ok := msg.(tea.KeyMsg); ok {
			switch k.String() {
			case "esc", "enter", "q", "backspace":
				m.viewing = false
			case "ctrl+c":
				return m, tea.Quit
			}
		}
		return m, nil
	}

	if k, ok := msg.(tea.KeyMsg); ok && m.list.FilterState() != list.Filtering {
		switch k.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.list.FilterState() == list.Unfiltered {
				return m, tea.Quit
			}
		case " ":
			if t, ok := m.selected(); ok {
				m.store.Toggle(m.ctx, t.ID)
				m.refresh()
			}
			return m, nil
		case "d":
			if t, ok := m.selected(); ok {
				m.store.Remove(m.ctx, t.ID)
				m.refresh()
			}
			return m, nil
		case "a":
			m.adding = true
			m.addErr = ""
			m.ti.SetValue("")
			m.resize()
			cmd := m.ti.Focus()
			return m, cmd
		case "enter":
			if t, ok := m.selected(); ok {
				m.viewing = true
				m.viewID = t.ID
			}
			return m, nil
		case "t":
			m.toggleTheme()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateAdding(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "enter":
			if _, added := m.store.Add(m.ctx, m.ti.Value()); !added {
				m.addErr = "Title cannot be empty"
				return m, nil
			}
			m.stopAdding()
			m.refresh()
			m.list.Select(0)
			return m, nil
		case "esc":
			m.stopAdding()
			return m, nil
		case "ctrl+c":
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	return m, cmd
}

func (m *Model) stopAdding() {
	m.adding = false
	m.addErr = ""
	m.ti.SetValue("")
	m.ti.Blur()
	m.resize()
}

func (m *Model) toggleTheme() {
	next := m.theme.Scheme.Toggle()
	m.theme = ui.ThemeFor(next)
	m.applyTheme()
	m.refresh()
	if m.slot == nil {
		return
	}
	if err := prefs.SaveScheme(m.ctx, m.slot, next); err != nil {
		m.logger.Error("save color scheme", "err", err)
	}
}

func (m *Model) applyTheme() {
	m.list.SetDelegate(itemDelegate{theme: m.theme})
	m.list.Styles.Title = m.theme.Title
	m.list.Styles.HelpStyle = m.theme.Help
	m.list.Styles.PaginationStyle = m.theme.Help
}

// refresh re-reads the store, keeping the cursor in range.
func (m *Model) refresh() {
	current := m.store.Todos()
	items := make([]list.Item, 0, len(current))
	for _, t := range current {
		items = append(items, listItem{todo: t})
	}
	idx := m.list.Index()
	m.list.SetItems(items)
	if idx >= len(items) {
		idx = len(items) - 1
	}
	if idx >= 0 {
		m.list.Select(idx)
	}

	done, pending := model.Stats(current)
	m.list.Title = fmt.Sprintf("%s   %s %d  %s %d  %s",
		"Todos",
		m.theme.SymDone, done,
		m.theme.SymPending, pending,
		m.theme.Scheme.Icon(),
	)
}

func (m Model) selected() (model.Todo, bool) {
	it, ok := m.list.SelectedItem().(listItem)
	if !ok {
		return model.Todo{}, false
	}
	return it.todo, true
}

func (m *Model) resize() {
	h := m.height - 4
	if m.adding {
		h -= 3
	}
	if h < 1 {
		h = 1
	}
	w := m.width - 4
	if w < 10 {
		w = 10
	}
	m.list.SetSize(w, h)
}

func (m Model) View() string {
	if m.viewing {
		return m.theme.PanelString(m.detailView())
	}
	content := m.list.View()
	if m.adding {
		bar := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(m.theme.Border).Padding(0, 1)
		title := m.theme.Button.Render("Add")
		if m.addErr != "" {
			title += "  " + m.theme.Error.Render(m.addErr)
		}
		content += "\n" + bar.Render(title+"\n"+m.ti.View())
	}
	return m.theme.PanelString(content)
}

func (m Model) detailView() string {
	t, ok := m.store.Get(m.viewID)
	if !ok {
		return m.theme.Muted.Render("this todo no longer exists") + "\n\n" + m.theme.Help.Render("esc back")
	}
	status := m.theme.Pending.Render(m.theme.SymPending + " pending")
	if t.Completed {
		status = m.theme.Success.Render(m.theme.SymDone + " done")
	}
	lines := []string{
		m.theme.Title.Render(t.Title),
		"",
		m.theme.Muted.Render(fmt.Sprintf("#%d", t.ID)) + "  " + status,
		"",
		m.theme.Help.Render("esc back"),
	}
	return strings.Join(lines, "\n")
}
