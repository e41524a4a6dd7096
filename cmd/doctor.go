package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/JaskiratSingh1/Verto/internal/task"
	"github.com/JaskiratSingh1/Verto/internal/theme"
)

func doctorCommand(e *env, args []string) error {
	flags := newFlagSet("doctor", e)
	verbose := flags.Bool("v", false, "Verbose output")
	schema := flags.Bool("schema", false, "Print the JSON Schema of the tasks file and exit")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if flags.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %v", flags.Args())
	}
	if *schema {
		_, err := io.WriteString(e.stdout, task.SchemaJSON())
		return err
	}

	d := &doctor{e: e, verbose: *verbose, ok: true}
	d.printf("Verto Doctor\n")
	d.printf("============\n\n")

	d.checkDataDir()
	d.checkConfig()
	d.checkTasks()
	d.checkSettings()
	d.checkLog()

	if d.ok {
		d.printf("✅ All checks passed!\n")
		return nil
	}
	d.printf("⚠️  Some checks failed. Verto may not work correctly.\n")
	return fmt.Errorf("doctor checks failed")
}

type doctor struct {
	e       *env
	verbose bool
	ok      bool
}

func (d *doctor) printf(format string, args ...any) {
	fmt.Fprintf(d.e.stdout, format, args...)
}

func (d *doctor) fail(format string, args ...any) {
	d.ok = false
	d.printf("  ❌ "+format+"\n", args...)
}

// statFile reports whether path is an existing regular file. A missing
// file is a warning with hint, other problems fail.
func (d *doctor) statFile(path, hint string) bool {
	info, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		d.printf("  ⚠️  Not found (%s)\n", hint)
		return false
	case err != nil:
		d.fail("Error: %v", err)
		return false
	case info.IsDir():
		d.fail("Error: path is a directory")
		return false
	}
	return true
}

func (d *doctor) checkDataDir() {
	dir := d.e.cfg.DataDir
	d.printf("Data directory: %s\n", dir)
	info, err := os.Stat(dir)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		d.printf("  ⚠️  Not found (created on first save)\n")
	case err != nil:
		d.fail("Error: %v", err)
	case !info.IsDir():
		d.fail("Error: path is not a directory")
	default:
		d.printf("  ✅ OK\n")
	}
	d.printf("\n")
}

func (d *doctor) checkConfig() {
	cfg := d.e.cfg
	if cfg.ConfigFile == "" {
		d.printf("Config file: none (using defaults)\n")
	} else {
		d.printf("Config file: %s\n", cfg.ConfigFile)
	}
	d.printf("  ✅ Week starts on %s\n", cfg.FirstWeekday())
	if d.verbose {
		d.printf("  Log level: %s, format: %s\n", cfg.LogLevel, cfg.LogFormat)
	}
	d.printf("\n")
}

func (d *doctor) checkTasks() {
	path := d.e.cfg.TasksFile
	d.printf("Tasks file: %s\n", path)
	defer d.printf("\n")
	if !d.statFile(path, "created when the first task is added") {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		d.fail("Read error: %v", err)
		return
	}
	if len(bytes.TrimSpace(data)) == 0 {
		d.printf("  ✅ Empty\n")
		return
	}
	if err := task.Validate(data); err != nil {
		d.fail("Validation failed, the file will be ignored on load:")
		var vErrs interface{ Unwrap() []error }
		if errors.As(err, &vErrs) {
			for _, ve := range vErrs.Unwrap() {
				d.printf("     - %v\n", ve)
			}
		} else {
			d.printf("     - %v\n", err)
		}
		return
	}
	d.printf("  ✅ Valid\n")

	store := d.e.openStore()
	days := store.Days()
	total := 0
	for _, day := range days {
		tasks := store.TasksForDay(day)
		total += len(tasks)
		if d.verbose {
			d.printf("    %s: %d tasks\n", day.Date(), len(tasks))
		}
	}
	d.printf("  Tasks: %d across %d days\n", total, len(days))
}

func (d *doctor) checkSettings() {
	p := d.e.openPrefs()
	path := p.Path()
	d.printf("Settings file: %s\n", path)
	defer d.printf("\n")
	if !p.Exists() {
		d.printf("  ⚠️  Not found (defaults are used)\n")
		return
	}

	var raw struct {
		Theme string `toml:"theme"`
	}
	if _, err := toml.DecodeFile(path, &raw); err != nil {
		d.printf("  ⚠️  Unreadable, defaults are used: %v\n", err)
		return
	}
	if raw.Theme == "" {
		d.printf("  ✅ Theme: %s (default)\n", theme.Default)
		return
	}
	if t, ok := theme.Parse(raw.Theme); ok {
		d.printf("  ✅ Theme: %s\n", t)
	} else {
		d.printf("  ⚠️  Unknown theme %q, using %s\n", raw.Theme, theme.Default)
	}
}

func (d *doctor) checkLog() {
	cfg := d.e.cfg
	if cfg.LogToStderr() {
		d.printf("Log: stderr\n  ✅ OK\n\n")
		return
	}
	d.printf("Log file: %s\n", cfg.LogFile)
	if d.statFile(cfg.LogFile, "created on first log line") {
		d.printf("  ✅ OK\n")
	}
	d.printf("\n")
}
