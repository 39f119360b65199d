package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/idilsaglam/todo/internal/model"
	"github.com/idilsaglam/todo/internal/prefs"
	"github.com/idilsaglam/todo/internal/store"
	"github.com/idilsaglam/todo/internal/todos"
	"github.com/idilsaglam/todo/internal/tui"
	"github.com/idilsaglam/todo/internal/ui"
)

// Options tune output behavior from root flags.
type Options struct {
	Group bool // list grouped by pending/done
}

// Env is everything a subcommand touches.
type Env struct {
	Store *todos.Store
	Slot  store.Slot
	// Scheme is used unless a saved choice exists; SchemeForced (set from
	// --theme or TODO_COLOR_SCHEME) makes it win over the saved choice.
	Scheme       ui.Scheme
	SchemeForced bool
	Logger       *log.Logger
	Out          io.Writer
	Err          io.Writer

	// Interactive runs the full-screen list; defaults to tui.Run.
	Interactive func(context.Context, tui.Deps) error
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
func Run(ctx context.Context, args []string, env Env, opt Options) int {
	env.Scheme = resolveScheme(ctx, env)
	p := ui.Printer{Out: env.Out, Err: env.Err, Theme: ui.ThemeFor(env.Scheme)}
	if len(args) == 0 {
		PrintHelp(env.Out)
		return 2
	}
	cmd, a := args[0], args[1:]

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp(env.Out)
		return 0

	case "theme":
		return doTheme(ctx, env, p, a)
	}

	// Read failures are logged by the store and degrade to the seed or an
	// empty list; subcommands carry on either way.
	_ = env.Store.Load(ctx)

	switch cmd {
	case "ls":
		return doList(env.Store, p, opt)

	case "tui":
		return doInteractive(ctx, env, p)

	case "add":
		if len(a) == 0 {
			p.Fail("usage: todo add <title...>")
			return 2
		}
		return doAdd(ctx, env.Store, p, strings.Join(a, " "))

	case "done", "rm", "show":
		if len(a) != 1 {
			p.Fail(fmt.Sprintf("usage: todo %s <id>", cmd))
			return 2
		}
		id, err := strconv.Atoi(a[0])
		if err != nil {
			p.Fail(cmd + ": not a number: " + a[0])
			return 2
		}
		switch cmd {
		case "done":
			return doToggle(ctx, env.Store, p, id)
		case "rm":
			return doRemove(ctx, env.Store, p, id)
		default:
			return doShow(env.Store, p, id)
		}
	}

	p.Fail("unknown subcommand: " + cmd)
	fmt.Fprintln(env.Err)
	PrintHelp(env.Err)
	return 2
}

func PrintHelp(w io.Writer) {
	fmt.Fprintf(w, `todo - a tiny todo list

Usage:
  todo [flags] <subcommand> [args]

Subcommands:
  ls                 List todos, newest first
  tui                Interactive list (a add, space done, d delete, t theme)
  add <title...>     Add a todo (up to %d characters)
  done <id>          Toggle done for the todo with id
  rm <id>            Remove the todo with id
  show <id>          Show one todo
  theme [light|dark] Show, toggle or set the color scheme

Examples:
  todo add "Buy milk"
  todo ls
  todo done 2
  todo rm 3
`, model.MaxTitleLen)
}

// -------------- subcommand impls ----------------

func doList(s *todos.Store, p ui.Printer, opt Options) int {
	items := s.Todos()
	t := p.Theme

	d, pn := model.Stats(items)
	header := fmt.Sprintf("%s  %s %d  %s %d  %s %d",
		t.Title.Render("Todos"),
		t.Success.Render(t.SymDone), d,
		t.Pending.Render(t.SymPending), pn,
		t.Accent.Render("Total"), len(items),
	)

	var lines []string
	lines = append(lines, header)
	lines = append(lines, t.ProgressBar(d, d+pn, 28))
	lines = append(lines, "")

	if opt.Group {
		lines = append(lines, groupLines(t, items)...)
	} else {
		lines = append(lines, flatLines(t, items)...)
	}
	lines = append(lines, "")
	lines = append(lines, t.Muted.Render("Tip: add with `todo add \"Buy milk\"`"))
	p.Panel(lines)
	return 0
}

func doInteractive(ctx context.Context, env Env, p ui.Printer) int {
	run := env.Interactive
	if run == nil {
		run = tui.Run
	}
	err := run(ctx, tui.Deps{Store: env.Store, Slot: env.Slot, Scheme: env.Scheme, Logger: env.Logger})
	if err != nil {
		p.Fail("tui: " + err.Error())
		return 1
	}
	return 0
}

func doAdd(ctx context.Context, s *todos.Store, p ui.Printer, title string) int {
	t, ok := s.Add(ctx, title)
	if !ok {
		p.Fail("add: empty title")
		return 2
	}
	p.OK(fmt.Sprintf("added #%d", t.ID))
	return 0
}

func doToggle(ctx context.Context, s *todos.Store, p ui.Printer, id int) int {
	if !s.Toggle(ctx, id) {
		notFound(p, id)
		return 2
	}
	p.OK(fmt.Sprintf("toggled #%d", id))
	return 0
}

func doRemove(ctx context.Context, s *todos.Store, p ui.Printer, id int) int {
	if !s.Remove(ctx, id) {
		notFound(p, id)
		return 2
	}
	p.OK(fmt.Sprintf("removed #%d", id))
	return 0
}

func doShow(s *todos.Store, p ui.Printer, id int) int {
	td, ok := s.Get(id)
	if !ok {
		notFound(p, id)
		return 2
	}
	t := p.Theme
	status := t.Pending.Render(t.SymPending + " pending")
	if td.Completed {
		status = t.Success.Render(t.SymDone + " done")
	}
	p.Panel([]string{
		t.Title.Render(td.Title),
		t.Muted.Render(fmt.Sprintf("#%d", td.ID)) + "  " + status,
	})
	return 0
}

func doTheme(ctx context.Context, env Env, p ui.Printer, a []string) int {
	if env.Slot == nil {
		p.Fail("theme: no storage configured")
		return 1
	}
	current := env.Scheme
	var (
		next ui.Scheme
		err  error
	)
	switch len(a) {
	case 0:
		next = current.Toggle()
	case 1:
		if a[0] == "show" {
			fmt.Fprintln(env.Out, current.Icon()+" "+string(current))
			return 0
		}
		next, err = ui.ParseScheme(a[0])
		if err != nil {
			p.Fail("theme: " + err.Error())
			return 2
		}
	default:
		p.Fail("usage: todo theme [light|dark|show]")
		return 2
	}
	if err := prefs.SaveScheme(ctx, env.Slot, next); err != nil {
		p.Fail(err.Error())
		return 1
	}
	p.OK(next.Icon() + " " + string(next))
	return 0
}

// resolveScheme picks the forced scheme, else the saved one, else env.Scheme.
func resolveScheme(ctx context.Context, env Env) ui.Scheme {
	if env.SchemeForced || env.Slot == nil {
		return env.Scheme
	}
	saved, err := prefs.LoadScheme(ctx, env.Slot, env.Scheme)
	if err != nil && env.Logger != nil {
		env.Logger.Warn("color scheme", "err", err)
	}
	return saved
}

func notFound(p ui.Printer, id int) {
	p.Fail(fmt.Sprintf("no todo with id %d", id))
	fmt.Fprintln(p.Err, p.Theme.Muted.Render("Hint: run `todo ls` to see ids"))
}

// -------------- rendering helpers --------------

func flatLines(t ui.Theme, items []model.Todo) []string {
	if len(items) == 0 {
		return []string{t.Muted.Render("no todos")}
	}
	out := make([]string, 0, len(items))
	for _, it := range items {
		idx := fmt.Sprintf("#%-3d", it.ID)
		box := t.Muted.Render(t.BoxUnchecked)
		title := t.Text.Render(it.Title)
		if it.Completed {
			box = t.Success.Render(t.BoxChecked)
			title = t.Done.Render(it.Title)
		}
		out = append(out, fmt.Sprintf("%s %s %s", t.Muted.Render(idx), box, title))
	}
	return out
}

func groupLines(t ui.Theme, items []model.Todo) []string {
	var pend, done []model.Todo
	for _, it := range items {
		if it.Completed {
			done = append(done, it)
		} else {
			pend = append(pend, it)
		}
	}
	var lines []string
	lines = append(lines, t.Accent.Render("Pending"))
	if len(pend) == 0 {
		lines = append(lines, t.Muted.Render("(none)"))
	} else {
		lines = append(lines, flatLines(t, pend)...)
	}
	lines = append(lines, "")
	lines = append(lines, t.Accent.Render("Done"))
	if len(done) == 0 {
		lines = append(lines, t.Muted.Render("(none)"))
	} else {
		lines = append(lines, flatLines(t, done)...)
	}
	return lines
}
