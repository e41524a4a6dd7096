package cmd

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/JaskiratSingh1/Verto/internal/logging"
)

func logCommand(ctx context.Context, e *env, args []string) error {
	flags := newFlagSet("log", e)
	follow := flags.Bool("f", false, "Follow the log (like tail -f)")
	flags.BoolVar(follow, "follow", false, "Follow the log (like tail -f)")
	n := flags.Int("n", 20, "Number of lines to show (0 = all)")
	if err := flags.Parse(args); err != nil {
		return err
	}

	if e.cfg.LogToStderr() {
		return fmt.Errorf("logging goes to stderr, there is no log file")
	}
	if _, err := os.Stat(e.cfg.LogFile); errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintln(e.stdout, "No log file yet.")
		return nil
	}

	if *follow {
		fmt.Fprintf(e.stderr, "Tailing: %s (Ctrl+C to stop)\n", e.cfg.LogFile)
	}
	return logging.TailLog(ctx, e.stdout, e.cfg.LogFile, *n, *follow)
}
