// Command gridpath is a step-by-step Dijkstra shortest-path simulator on a
// grid. It runs interactively in the terminal, or headless over an ASCII map
// with -batch.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/katalvlaran/gridpath/config"
	"github.com/katalvlaran/gridpath/dijkstra"
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/internal/logging"
	"github.com/katalvlaran/gridpath/tui"
)

var version = "dev"

// Exit codes.
const (
	exitOK     = 0
	exitError  = 1
	exitNoPath = 2
)

// cliFlags holds everything parsed from the command line. set records the
// flags given explicitly, which are the only ones that override the file.
type cliFlags struct {
	configPath  string
	mapPath     string
	rows        int
	cols        int
	speed       int
	batch       bool
	logLevel    string
	logFormat   string
	logFile     string
	showVersion bool

	set map[string]bool
}

func main() {
	f, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(exitOK)
		}
		os.Exit(exitError)
	}

	if f.showVersion {
		fmt.Printf("gridpath %s\n", version)
		os.Exit(exitOK)
	}

	os.Exit(run(f, os.Stdout, os.Stderr))
}

// parseFlags parses args into cliFlags. Usage and parse errors go to stderr.
func parseFlags(args []string, stderr io.Writer) (cliFlags, error) {
	f := cliFlags{set: make(map[string]bool)}
	def := config.Default()

	fs := flag.NewFlagSet("gridpath", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&f.configPath, "config", "", "YAML configuration file")
	fs.StringVar(&f.mapPath, "map", "", "ASCII map to load (S start, E end, # barrier, . empty)")
	fs.IntVar(&f.rows, "rows", def.Grid.Rows, "Grid rows when no map is given")
	fs.IntVar(&f.cols, "cols", def.Grid.Cols, "Grid columns when no map is given")
	fs.IntVar(&f.speed, "speed", def.Speed, "Animation speed, 1 (slow) to 10 (fast)")
	fs.BoolVar(&f.batch, "batch", false, "Run the search headless and print the result")
	fs.StringVar(&f.logLevel, "log-level", def.Log.Level, "Log level: debug, info, warn, error")
	fs.StringVar(&f.logFormat, "log-format", def.Log.Format, "Log format: text or json")
	fs.StringVar(&f.logFile, "log-file", "", "Append logs to this file")
	fs.BoolVar(&f.showVersion, "version", false, "Print version and exit")

	if err := fs.Parse(args); err != nil {
		return f, err
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(stderr, "unexpected argument %q\n", fs.Arg(0))
		fs.Usage()
		return f, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}
	fs.Visit(func(fl *flag.Flag) { f.set[fl.Name] = true })

	return f, nil
}

// resolveConfig loads the configuration file, if any, and applies the
// explicitly set flags on top.
func resolveConfig(f cliFlags) (*config.Config, error) {
	cfg := config.Default()
	if f.configPath != "" {
		var err error
		if cfg, err = config.Load(f.configPath); err != nil {
			return nil, err
		}
	}

	if f.set["rows"] {
		cfg.Grid.Rows = f.rows
	}
	if f.set["cols"] {
		cfg.Grid.Cols = f.cols
	}
	if f.set["speed"] {
		cfg.Speed = f.speed
	}
	if f.set["log-level"] {
		cfg.Log.Level = f.logLevel
	}
	if f.set["log-format"] {
		cfg.Log.Format = f.logFormat
	}
	if f.set["log-file"] {
		cfg.Log.File = f.logFile
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// buildGrid loads the map if one was given, otherwise returns a blank grid.
func buildGrid(cfg *config.Config, mapPath string) (*gridgraph.Grid, error) {
	if mapPath == "" {
		return gridgraph.NewGrid(cfg.Grid.Rows, cfg.Grid.Cols)
	}

	fh, err := os.Open(mapPath)
	if err != nil {
		return nil, err
	}
	defer fh.Close()

	g, err := gridgraph.Parse(fh)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", mapPath, err)
	}

	return g, nil
}

// openLogger builds the process logger. Logs go to the configured file;
// without one, batch mode logs to stderr and the TUI discards them since
// the terminal is taken.
func openLogger(cfg *config.Config, batch bool, stderr io.Writer) (*slog.Logger, func(), error) {
	if cfg.Log.File == "" {
		if !batch {
			return logging.Discard(), func() {}, nil
		}
		l, err := logging.New(stderr, cfg.Log.Level, cfg.Log.Format)
		return l, func() {}, err
	}

	fh, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	l, err := logging.New(fh, cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		fh.Close()
		return nil, nil, err
	}

	return l, func() { fh.Close() }, nil
}

// run dispatches to batch or interactive mode and returns the exit code.
func run(f cliFlags, stdout, stderr io.Writer) int {
	cfg, err := resolveConfig(f)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitError
	}

	g, err := buildGrid(cfg, f.mapPath)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitError
	}

	log, closeLog, err := openLogger(cfg, f.batch, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitError
	}
	defer closeLog()

	if f.batch {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return runBatch(ctx, g, log, stdout, stderr)
	}

	return runInteractive(cfg, g, log, stderr)
}

// runBatch searches g to completion and prints the statistics and the
// final grid. Returns exitOK when a path was found, exitNoPath otherwise.
func runBatch(ctx context.Context, g *gridgraph.Grid, log *slog.Logger, stdout, stderr io.Writer) int {
	if err := g.PrepareRun(); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitError
	}
	e, err := dijkstra.New(g, g.Start(), g.End(), dijkstra.WithLogger(log))
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitError
	}

	found, err := e.RunContext(ctx, nil)
	st := e.Stats()
	log.Info("batch run finished",
		"run_id", st.RunID.String(),
		"status", st.Status.String(),
		"visited", st.VisitedCount,
		"path_length", st.PathLength)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitError
	}

	fmt.Fprintf(stdout, "run:          %s\n", st.RunID)
	fmt.Fprintf(stdout, "status:       %s\n", st.Status)
	fmt.Fprintf(stdout, "visited:      %d\n", st.VisitedCount)
	fmt.Fprintf(stdout, "path length:  %d\n", st.PathLength)
	fmt.Fprintf(stdout, "steps:        %d\n", st.Steps)
	if !found {
		fmt.Fprintf(stdout, "reachable:    %d\n", len(g.Reachable(e.Start())))
	}
	fmt.Fprintln(stdout)
	fmt.Fprint(stdout, g.String())

	if !found {
		return exitNoPath
	}
	return exitOK
}

// runInteractive starts the terminal UI.
func runInteractive(cfg *config.Config, g *gridgraph.Grid, log *slog.Logger, stderr io.Writer) int {
	model := tui.New(g, tui.Options{
		Speed:   cfg.Speed,
		Palette: cfg.Colors(),
		Logger:  log,
		Splash:  true,
	})

	log.Info("interactive session started", "rows", g.Rows(), "cols", g.Cols())
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitError
	}

	return exitOK
}
