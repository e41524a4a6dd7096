// Package prefs persists user preferences that live outside the tasks file.
package prefs

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/JaskiratSingh1/Verto/internal/theme"
	"github.com/JaskiratSingh1/Verto/internal/utils"
)

// Preferences is the validated in-memory form of settings.toml.
type Preferences struct {
	Theme theme.Theme
}

// fileFormat is what is actually stored. Values are plain strings so a bad
// entry cannot fail decoding of the whole file.
type fileFormat struct {
	Theme string `toml:"theme"`
}

// Defaults returns the preferences used when nothing valid is stored.
func Defaults() Preferences {
	return Preferences{Theme: theme.Default}
}

// Load reads preferences from path. It never fails: a missing or corrupt
// file, or an unknown theme name, yields the defaults for that value.
func Load(path string, logger *log.Logger) Preferences {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	p := Defaults()

	var raw fileFormat
	if _, err := toml.DecodeFile(path, &raw); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.Debug("no settings file yet", "path", path)
		} else {
			logger.Warn("ignoring unreadable settings file", "path", path, "err", err)
		}
		return p
	}

	if raw.Theme != "" {
		t, ok := theme.Parse(raw.Theme)
		if !ok {
			logger.Warn("unknown theme in settings, using default", "theme", raw.Theme, "default", theme.Default)
		}
		p.Theme = t
	}
	return p
}

// Save writes preferences to path, replacing the file atomically.
func Save(path string, p Preferences) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(fileFormat{Theme: p.Theme.String()}); err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := utils.WriteFileAtomic(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	return nil
}

// Store keeps the current preferences together with their file.
type Store struct {
	path  string
	prefs Preferences
}

// Open loads the preferences at path.
func Open(path string, logger *log.Logger) *Store {
	return &Store{path: path, prefs: Load(path, logger)}
}

// Path returns the settings file path.
func (s *Store) Path() string {
	return s.path
}

// Theme returns the active theme.
func (s *Store) Theme() theme.Theme {
	return s.prefs.Theme
}

// SetTheme changes and persists the theme. The in-memory value is updated
// even if writing fails.
func (s *Store) SetTheme(t theme.Theme) error {
	if !t.Valid() {
		return fmt.Errorf("invalid theme %d", int(t))
	}
	s.prefs.Theme = t
	if s.path == "" {
		return nil
	}
	return Save(s.path, s.prefs)
}

// Exists reports whether the settings file has been written.
func (s *Store) Exists() bool {
	if s.path == "" {
		return false
	}
	_, err := os.Stat(s.path)
	return err == nil
}
