// Package cmd implements the CLI command structure for verto.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/JaskiratSingh1/Verto/internal/config"
	"github.com/JaskiratSingh1/Verto/internal/logging"
	"github.com/JaskiratSingh1/Verto/internal/prefs"
	"github.com/JaskiratSingh1/Verto/internal/task"
	"github.com/JaskiratSingh1/Verto/internal/ui"
)

// Version is set via ldflags at build time.
var Version = "dev"

// now is the clock used to resolve "today".
var now = time.Now

// env carries what every subcommand needs.
type env struct {
	cfg     *config.Config
	sources map[string]config.ConfigSource
	logger  *log.Logger
	stdout  io.Writer
	stderr  io.Writer
}

func (e *env) openStore() *task.Store {
	return task.Open(e.cfg.TasksFile, task.WithLogger(e.logger))
}

func (e *env) openPrefs() *prefs.Store {
	return prefs.Open(e.cfg.SettingsFile, e.logger)
}

// Run executes the verto CLI.
func Run(ctx context.Context, args []string) error {
	return run(ctx, args, os.Stdout, os.Stderr)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Create a flag set for global options
	fs := flag.NewFlagSet("verto", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		printUsage(fs, stderr)
	}
	help := fs.Bool("help", false, "Show help")
	fs.BoolVar(help, "h", false, "Show help")
	showVersion := fs.Bool("version", false, "Show version")

	// Global flags
	cws, err := config.LoadWithSources(fs, args)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if *help {
		printUsage(fs, stdout)
		return nil
	}
	if *showVersion {
		return versionCommand(stdout)
	}

	// Determine the subcommand
	subcommand := "tui"
	remainingArgs := fs.Args()
	if len(remainingArgs) > 0 {
		subcommand = remainingArgs[0]
		remainingArgs = remainingArgs[1:]
	}

	switch subcommand {
	case "version":
		return versionCommand(stdout)
	case "help":
		printUsage(fs, stdout)
		return nil
	}

	logger, closer, err := logging.Open(cws.Config)
	if err != nil {
		return fmt.Errorf("opening log: %w", err)
	}
	defer closer.Close()

	e := &env{
		cfg:     cws.Config,
		sources: cws.Sources,
		logger:  logger,
		stdout:  stdout,
		stderr:  stderr,
	}
	logger.Debug("command", "name", subcommand, "args", remainingArgs)

	// Execute the subcommand
	switch subcommand {
	case "tui":
		return tuiCommand(ctx, e, remainingArgs)
	case "add":
		return addCommand(e, remainingArgs)
	case "ls", "list":
		return lsCommand(e, remainingArgs)
	case "toggle", "done":
		return toggleCommand(e, remainingArgs)
	case "rm", "delete":
		return rmCommand(e, remainingArgs)
	case "theme":
		return themeCommand(e, remainingArgs)
	case "heatmap":
		return heatmapCommand(e, remainingArgs)
	case "export":
		return exportCommand(e, remainingArgs)
	case "doctor":
		return doctorCommand(e, remainingArgs)
	case "log":
		return logCommand(ctx, e, remainingArgs)
	case "config":
		return configCommand(e, remainingArgs)
	default:
		fmt.Fprintf(stderr, "Unknown command: %s\n", subcommand)
		printUsage(fs, stderr)
		return fmt.Errorf("unknown command: %s", subcommand)
	}
}

// tuiCommand launches the terminal UI.
func tuiCommand(ctx context.Context, e *env, args []string) error {
	fs := newFlagSet("tui", e)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	return ui.Run(ctx, e.openStore(), e.openPrefs(),
		ui.WithLogger(e.logger),
		ui.WithWeekStart(e.cfg.FirstWeekday()),
	)
}

func versionCommand(w io.Writer) error {
	fmt.Fprintf(w, "verto version %s\n", Version)
	return nil
}

// newFlagSet creates a subcommand flag set that reports errors to stderr.
func newFlagSet(name string, e *env) *flag.FlagSet {
	fs := flag.NewFlagSet("verto "+name, flag.ContinueOnError)
	fs.SetOutput(e.stderr)
	return fs
}

func printUsage(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintln(w, "Verto - a daily task tracker, seven tasks a day")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  verto [global options] [command] [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  tui                      Launch the terminal UI (default command)")
	fmt.Fprintln(w, "  add [-day D] text...     Add a task")
	fmt.Fprintln(w, "  ls [-day D] [-v]         List a day's tasks")
	fmt.Fprintln(w, "  toggle [-day D] <n|id>   Mark a task done or not done")
	fmt.Fprintln(w, "  rm [-day D] <n|id>       Delete a task")
	fmt.Fprintln(w, "  theme [name]             Show or set the theme")
	fmt.Fprintln(w, "  heatmap [-month M]       Show monthly completion")
	fmt.Fprintln(w, "  export [-format F]       Export all tasks (json|yaml|toml)")
	fmt.Fprintln(w, "  doctor [-v] [-schema]    Check data files and configuration")
	fmt.Fprintln(w, "  log [-n N] [-f]          Show the log file")
	fmt.Fprintln(w, "  config [-sources]        Print the effective configuration")
	fmt.Fprintln(w, "  version                  Show version information")
	fmt.Fprintln(w, "  help                     Show this help message")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Days (-day) accept YYYY-MM-DD, today, yesterday or tomorrow.")
	fmt.Fprintln(w, "Tasks are picked by their number in `verto ls` or an id prefix.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Global Options:")
	fs.SetOutput(w)
	fs.PrintDefaults()
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Every global option can also be set in the config file or as %s<KEY>,\n", config.EnvPrefix)
	fmt.Fprintf(w, "e.g. %sDATA_DIR. Available keys: %s\n", config.EnvPrefix, strings.Join(config.Fields(), ", "))
}
