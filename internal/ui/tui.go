// Package ui provides the terminal interface.
package ui

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/JaskiratSingh1/Verto/internal/prefs"
	"github.com/JaskiratSingh1/Verto/internal/task"
)

// Run starts the terminal UI and blocks until the user quits or ctx is done.
// Changes other processes make to the tasks file are picked up while it runs.
func Run(ctx context.Context, store *task.Store, p *prefs.Store, opts ...Option) error {
	if !IsTTY(os.Stdout) {
		return fmt.Errorf("tui requires a TTY")
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	model := New(store, p, opts...)
	if changes, err := store.Watch(ctx); err != nil {
		model.logger.Warn("not watching tasks file", "err", err)
	} else {
		WithChanges(changes)(model)
	}

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		return err
	}
	return nil
}

// IsTTY returns true if w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
