package prefs

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/JaskiratSingh1/Verto/internal/theme"
)

func TestLoadMissingFileUsesDefault(t *testing.T) {
	p := Load(filepath.Join(t.TempDir(), "settings.toml"), nil)
	if p.Theme != theme.Default {
		t.Errorf("Theme = %v, want %v", p.Theme, theme.Default)
	}
}

func TestLoadFallsBack(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    theme.Theme
		warns   bool
	}{
		{"valid", `theme = "forest"`, theme.Forest, false},
		{"case insensitive", `theme = "Midnight"`, theme.Midnight, false},
		{"empty value", `theme = ""`, theme.Default, false},
		{"no key", `other = 1`, theme.Default, false},
		{"unknown theme", `theme = "neon"`, theme.Default, true},
		{"wrong type", `theme = 3`, theme.Default, true},
		{"corrupt", `theme = "forest`, theme.Default, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "settings.toml")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}
			var logs bytes.Buffer
			p := Load(path, log.New(&logs))
			if p.Theme != tt.want {
				t.Errorf("Theme = %v, want %v", p.Theme, tt.want)
			}
			if gotWarn := strings.Contains(logs.String(), "WARN"); gotWarn != tt.warns {
				t.Errorf("warned = %v, want %v (logs %q)", gotWarn, tt.warns, logs.String())
			}
		})
	}
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "settings.toml")
	if err := Save(path, Preferences{Theme: theme.Sunset}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(string(data)) != `theme = "sunset"` {
		t.Errorf("file = %q", data)
	}
	if p := Load(path, nil); p.Theme != theme.Sunset {
		t.Errorf("Load Theme = %v, want sunset", p.Theme)
	}
}

func TestStoreSetTheme(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	s := Open(path, nil)
	if s.Exists() {
		t.Fatal("settings file exists before first save")
	}
	if s.Theme() != theme.Default {
		t.Errorf("initial Theme = %v", s.Theme())
	}

	if err := s.SetTheme(theme.Midnight); err != nil {
		t.Fatalf("SetTheme: %v", err)
	}
	if s.Theme() != theme.Midnight {
		t.Errorf("Theme = %v, want midnight", s.Theme())
	}
	if !s.Exists() {
		t.Error("settings file not written")
	}
	if got := Open(path, nil).Theme(); got != theme.Midnight {
		t.Errorf("reopened Theme = %v, want midnight", got)
	}

	if err := s.SetTheme(theme.Theme(99)); err == nil {
		t.Error("SetTheme(99): want error")
	}
	if s.Theme() != theme.Midnight {
		t.Errorf("invalid SetTheme changed theme to %v", s.Theme())
	}
}
