package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	flag "github.com/spf13/pflag"

	"github.com/idilsaglam/todo/internal/cli"
	"github.com/idilsaglam/todo/internal/config"
	"github.com/idilsaglam/todo/internal/logging"
	"github.com/idilsaglam/todo/internal/store"
	"github.com/idilsaglam/todo/internal/store/jsonstore"
	"github.com/idilsaglam/todo/internal/store/memstore"
	"github.com/idilsaglam/todo/internal/store/sqlitestore"
	"github.com/idilsaglam/todo/internal/todos"
	"github.com/idilsaglam/todo/internal/ui"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:])
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string) int {
	// Root flags (apply to every subcommand)
	fs := flag.NewFlagSet("todo", flag.ContinueOnError)
	fs.SetInterspersed(false)
	fs.Usage = func() { cli.PrintHelp(os.Stderr); fmt.Fprintln(os.Stderr, "\nFlags:"); fs.PrintDefaults() }

	groupPending := fs.BoolP("group", "g", false, "group output by pending/done")
	configPath := fs.StringP("config", "c", "", "config file (default $XDG_CONFIG_HOME/todo/config.toml)")
	backend := fs.String("backend", "", "storage backend: json, sqlite or memory")
	dataDir := fs.String("data-dir", "", "directory holding the stored list")
	theme := fs.String("theme", "", "color scheme: light or dark")
	logLevel := fs.String("log-level", "", "debug, info, warn or error")

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		return 1
	}
	if *backend != "" {
		cfg.Backend = *backend
	}
	if *dataDir != "" {
		cfg.DataDir = config.ExpandPath(*dataDir)
	}
	if *theme != "" {
		cfg.ColorScheme = *theme
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		return 2
	}

	logger, err := logging.New(os.Stderr, cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		return 2
	}

	// Hand the remaining args to the CLI runner.
	rest := fs.Args()
	if len(rest) == 0 {
		cli.PrintHelp(os.Stderr)
		return 2
	}

	slot, err := openSlot(ctx, cfg)
	if err != nil {
		logger.Error("open storage", "backend", cfg.Backend, "err", err)
		return 1
	}
	defer slot.Close()

	env := cli.Env{
		Store:        todos.New(slot, todos.WithKey(cfg.StorageKey), todos.WithLogger(logger)),
		Slot:         slot,
		Scheme:       ui.Scheme(cfg.ColorScheme),
		SchemeForced: *theme != "" || os.Getenv("TODO_COLOR_SCHEME") != "",
		Logger:       logger,
		Out:          os.Stdout,
		Err:          os.Stderr,
	}
	code := cli.Run(ctx, rest, env, cli.Options{Group: *groupPending})
	if code != 0 {
		fmt.Fprintln(os.Stderr)
	}
	return code
}

func openSlot(ctx context.Context, cfg config.Config) (store.Slot, error) {
	switch cfg.Backend {
	case config.BackendSQLite:
		return sqlitestore.Open(ctx, filepath.Join(cfg.DataDir, sqlitestore.FileName))
	case config.BackendMemory:
		return memstore.New(), nil
	default:
		return jsonstore.Open(cfg.DataDir)
	}
}
