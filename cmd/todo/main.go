package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Makepad-fr/tada/internal/cli"
	"github.com/Makepad-fr/tada/internal/config"
	"github.com/Makepad-fr/tada/internal/logging"
	"github.com/Makepad-fr/tada/internal/state"
	"github.com/Makepad-fr/tada/internal/store/backend"
	"github.com/Makepad-fr/tada/internal/ui"
	"github.com/Makepad-fr/tada/internal/variant"
)

var CLI struct {
	Config  string `short:"c" help:"Configuration file path" default:"tada.yaml"`
	Verbose bool   `short:"v" help:"Enable verbose logging"`
	Theme   string `help:"Theme preset (${themes})"`
	Backend string `help:"Store backend (json, sqlite, memory)"`
	DataDir string `help:"Directory holding the store and log file"`

	Basic struct{} `cmd:"" help:"Ephemeral todo list; nothing is saved"`
	Local struct{} `cmd:"" help:"Todo list saved to the store under ls-todos"`

	Shared struct {
		Surfaces int `short:"n" help:"Number of lists sharing the state" default:"2"`
	} `cmd:"" help:"Several lists sharing one state, saved under ctx-todos"`

	Examples struct{} `cmd:"" help:"List the available examples"`

	Add struct {
		Variant string   `help:"Persisted list to use" enum:"local,shared" default:"local"`
		Text    []string `arg:"" help:"Todo text (may be several words)"`
	} `cmd:"" help:"Add a todo"`

	Ls struct {
		Variant string `help:"Persisted list to use" enum:"local,shared" default:"local"`
		Group   bool   `short:"g" help:"Group output by pending/done"`
	} `cmd:"" help:"List todos"`

	Done struct {
		Variant string `help:"Persisted list to use" enum:"local,shared" default:"local"`
		ID      int    `arg:"" help:"Todo id"`
	} `cmd:"" help:"Toggle done for the todo with this id"`

	Rm struct {
		Variant string `help:"Persisted list to use" enum:"local,shared" default:"local"`
		ID      int    `arg:"" help:"Todo id"`
	} `cmd:"" help:"Remove the todo with this id"`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("todo"),
		kong.Description("Todo lists with ephemeral, persisted and shared state."),
		kong.UsageOnError(),
		kong.Vars{"themes": strings.Join(ui.ThemeNames(), ", ")},
	)
	os.Exit(run(ctx.Command()))
}

func run(command string) int {
	cfg, err := config.Load(CLI.Config)
	if err != nil {
		ui.Fail(os.Stderr, "config: "+err.Error())
		return 1
	}
	applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		ui.Fail(os.Stderr, "config: "+err.Error())
		return 2
	}
	ui.SetTheme(cfg.Theme)

	if command == "examples" {
		for _, info := range variant.Kinds() {
			key := info.Key
			if key == "" {
				key = "(not saved)"
			}
			fmt.Printf("  %-28s todo %-7s %s\n", info.Name, info.Kind, key)
		}
		return 0
	}

	interactive := command == "basic" || command == "local" || command == "shared"
	logger, closeLog, err := newLogger(cfg, interactive)
	if err != nil {
		ui.Fail(os.Stderr, "log: "+err.Error())
		return 1
	}
	defer closeLog()

	st, err := backend.Open(cfg.Backend, cfg.DataDir)
	if err != nil {
		ui.Fail(os.Stderr, "store: "+err.Error())
		return 1
	}
	defer func() {
		if err := st.Close(); err != nil {
			logger.Error("close store", logging.Error(err))
		}
	}()

	idPolicy, _ := cfg.StateIDPolicy()
	opts := variant.Options{
		Store:    st,
		Logger:   logger,
		IDPolicy: idPolicy,
		Surfaces: CLI.Shared.Surfaces,
	}

	if interactive {
		return runInteractive(variant.Kind(command), opts, logger)
	}
	return runOneShot(command, opts)
}

// applyFlags lets explicit flags win over file and environment settings.
func applyFlags(cfg *config.Config) {
	if CLI.Theme != "" {
		cfg.Theme = CLI.Theme
	}
	if CLI.Backend != "" {
		cfg.Backend = CLI.Backend
	}
	if CLI.DataDir != "" {
		cfg.DataDir = CLI.DataDir
	}
	if CLI.Verbose {
		cfg.LogLevel = "debug"
	}
}

// newLogger writes to the log file while a TUI owns the terminal and to
// stderr otherwise.
func newLogger(cfg *config.Config, interactive bool) (*slog.Logger, func(), error) {
	level := logging.ParseLevel(cfg.LogLevel)
	if !interactive {
		return logging.New(os.Stderr, level), func() {}, nil
	}
	path := cfg.LogPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, nil, fmt.Errorf("mkdir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return logging.New(f, level), func() { _ = f.Close() }, nil
}

func runInteractive(kind variant.Kind, opts variant.Options, logger *slog.Logger) int {
	app, err := variant.Build(kind, opts)
	if err != nil {
		ui.Fail(os.Stderr, err.Error())
		return 1
	}
	if surfaces := app.Surfaces(); len(surfaces) > 0 {
		if m, ok := surfaces[0].State().(*state.Manager); ok {
			unsubscribe := m.Subscribe(func(s state.Snapshot) {
				logger.Debug("list changed", logging.Version(s.Version), logging.Count(len(s.Todos)))
			})
			defer unsubscribe()
		}
	}

	logger.Info("starting", logging.Variant(string(kind)))
	if _, err := tea.NewProgram(app, tea.WithAltScreen()).Run(); err != nil {
		ui.Fail(os.Stderr, "tui: "+err.Error())
		return 1
	}
	return 0
}

func runOneShot(command string, opts variant.Options) int {
	name := strings.Fields(command)[0]
	var kind variant.Kind
	switch name {
	case "add":
		kind = variant.Kind(CLI.Add.Variant)
	case "ls":
		kind = variant.Kind(CLI.Ls.Variant)
	case "done":
		kind = variant.Kind(CLI.Done.Variant)
	case "rm":
		kind = variant.Kind(CLI.Rm.Variant)
	default:
		ui.Fail(os.Stderr, "unknown subcommand: "+command)
		return 2
	}

	m, err := variant.Manager(kind, opts)
	if err != nil {
		ui.Fail(os.Stderr, err.Error())
		return 2
	}
	info, _ := variant.Lookup(kind)
	r := &cli.Runner{Out: os.Stdout, Err: os.Stderr, State: m, Title: info.Title}

	switch name {
	case "add":
		return r.Add(strings.Join(CLI.Add.Text, " "))
	case "ls":
		return r.List(cli.Options{Group: CLI.Ls.Group})
	case "done":
		return r.Toggle(CLI.Done.ID)
	default:
		return r.Remove(CLI.Rm.ID)
	}
}
