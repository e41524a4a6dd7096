package config

import (
	"flag"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/google/go-cmp/cmp"
)

// isolate points every config and data lookup at temp dirs and clears
// VERTO_* overrides.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(home, ".local", "share"))
	t.Setenv("APPDATA", filepath.Join(home, "AppData"))
	for _, field := range configFields() {
		t.Setenv(envName(field), "")
	}
	return home
}

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("verto", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func writeUserConfig(t *testing.T, home, content string) string {
	t.Helper()
	path := filepath.Join(home, ".verto", "verto.toml")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaults(t *testing.T) {
	cfg := &Config{}
	setDefaults(cfg)

	if cfg.TasksFile != "tasks.json" {
		t.Errorf("TasksFile: got %q, want tasks.json", cfg.TasksFile)
	}
	if cfg.SettingsFile != "settings.toml" {
		t.Errorf("SettingsFile: got %q, want settings.toml", cfg.SettingsFile)
	}
	if cfg.LogLevel != "info" || cfg.LogFormat != "text" {
		t.Errorf("log defaults: got %q/%q", cfg.LogLevel, cfg.LogFormat)
	}
	if !cfg.LogTimestamps || cfg.LogCaller {
		t.Errorf("log toggles: timestamps=%v caller=%v", cfg.LogTimestamps, cfg.LogCaller)
	}
	if cfg.FirstWeekday() != time.Sunday {
		t.Errorf("FirstWeekday: got %v", cfg.FirstWeekday())
	}
}

func TestLoadDefaultsResolveAgainstDataDir(t *testing.T) {
	isolate(t)
	data := t.TempDir()
	t.Setenv("VERTO_DATA_DIR", data)

	cfg, err := Load(newFlagSet(), nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := &Config{
		DataDir:       data,
		TasksFile:     filepath.Join(data, "tasks.json"),
		SettingsFile:  filepath.Join(data, "settings.toml"),
		LogFile:       filepath.Join(data, "verto.log"),
		LogLevel:      "info",
		LogFormat:     "text",
		LogTimestamps: true,
		WeekStart:     "sunday",
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadPrecedence(t *testing.T) {
	home := isolate(t)
	fileData := filepath.Join(home, "from-file")
	envData := filepath.Join(home, "from-env")
	flagData := filepath.Join(home, "from-flag")
	path := writeUserConfig(t, home, `data_dir = "`+filepath.ToSlash(fileData)+`"
log_level = "warn"
week_start = "monday"
log_caller = true
`)

	t.Run("file", func(t *testing.T) {
		cfg, err := Load(newFlagSet(), nil)
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		if filepath.Clean(cfg.DataDir) != fileData {
			t.Errorf("DataDir: got %q, want %q", cfg.DataDir, fileData)
		}
		if cfg.LogLevel != "warn" || !cfg.LogCaller {
			t.Errorf("file values not applied: %+v", cfg)
		}
		if cfg.FirstWeekday() != time.Monday {
			t.Errorf("FirstWeekday: got %v", cfg.FirstWeekday())
		}
		if cfg.ConfigFile != path {
			t.Errorf("ConfigFile: got %q, want %q", cfg.ConfigFile, path)
		}
	})

	t.Run("env over file", func(t *testing.T) {
		t.Setenv("VERTO_DATA_DIR", envData)
		t.Setenv("VERTO_LOG_CALLER", "off")
		cfg, err := Load(newFlagSet(), nil)
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		if cfg.DataDir != envData {
			t.Errorf("DataDir: got %q, want %q", cfg.DataDir, envData)
		}
		if cfg.LogCaller {
			t.Error("LogCaller: env should have turned it off")
		}
		if cfg.LogLevel != "warn" {
			t.Errorf("LogLevel: got %q, file value should survive", cfg.LogLevel)
		}
	})

	t.Run("flag over env", func(t *testing.T) {
		t.Setenv("VERTO_DATA_DIR", envData)
		fs := newFlagSet()
		cws, err := LoadWithSources(fs, []string{"-data-dir", flagData, "-log-level", "debug", "ls", "-v"})
		if err != nil {
			t.Fatalf("LoadWithSources: %v", err)
		}
		if cws.Config.DataDir != flagData {
			t.Errorf("DataDir: got %q, want %q", cws.Config.DataDir, flagData)
		}
		if cws.Config.TasksFile != filepath.Join(flagData, "tasks.json") {
			t.Errorf("TasksFile: got %q", cws.Config.TasksFile)
		}
		if diff := cmp.Diff([]string{"ls", "-v"}, fs.Args()); diff != "" {
			t.Errorf("remaining args (-want +got):\n%s", diff)
		}

		wantSources := map[string]ConfigSource{
			"data_dir":       SourceFlag,
			"tasks_file":     SourceDefault,
			"settings_file":  SourceDefault,
			"log_file":       SourceDefault,
			"log_level":      SourceFlag,
			"log_format":     SourceDefault,
			"log_timestamps": SourceDefault,
			"log_caller":     SourceUserFile,
			"week_start":     SourceUserFile,
		}
		if diff := cmp.Diff(wantSources, cws.Sources); diff != "" {
			t.Errorf("sources (-want +got):\n%s", diff)
		}
	})
}

func TestLoadFromEnv(t *testing.T) {
	isolate(t)
	t.Setenv("VERTO_TASKS_FILE", "other.json")
	t.Setenv("VERTO_LOG_FILE", "-")
	t.Setenv("VERTO_LOG_TIMESTAMPS", "no")
	t.Setenv("VERTO_WEEK_START", "Mon")

	cfg := &Config{}
	setDefaults(cfg)
	if err := loadFromEnv(cfg, nil); err != nil {
		t.Fatalf("loadFromEnv: %v", err)
	}
	if cfg.TasksFile != "other.json" {
		t.Errorf("TasksFile: got %q", cfg.TasksFile)
	}
	if !cfg.LogToStderr() {
		t.Errorf("LogFile: got %q, want stderr", cfg.LogFile)
	}
	if cfg.LogTimestamps {
		t.Error("LogTimestamps: want false")
	}
	if cfg.FirstWeekday() != time.Monday {
		t.Errorf("FirstWeekday: got %v", cfg.FirstWeekday())
	}
}

func TestLoadFromEnvInvalidBool(t *testing.T) {
	isolate(t)
	t.Setenv("VERTO_LOG_CALLER", "maybe")
	cfg := &Config{}
	setDefaults(cfg)
	if err := loadFromEnv(cfg, nil); err == nil {
		t.Error("expected error for invalid boolean")
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name   string
		config string
		args   []string
	}{
		{name: "bad week start flag", args: []string{"-week-start", "someday"}},
		{name: "unknown flag", args: []string{"-nope"}},
		{name: "unknown key", config: "colour = \"red\"\n"},
		{name: "malformed file", config: "data_dir = \n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			home := isolate(t)
			t.Setenv("VERTO_DATA_DIR", t.TempDir())
			if tt.config != "" {
				writeUserConfig(t, home, tt.config)
			}
			if _, err := Load(newFlagSet(), tt.args); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestLogFileStderrIsNotResolved(t *testing.T) {
	isolate(t)
	data := t.TempDir()
	cfg, err := Load(newFlagSet(), []string{"-data-dir", data, "-log-file", "-"})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.LogFile != "-" {
		t.Errorf("LogFile: got %q, want -", cfg.LogFile)
	}
}

func TestAbsoluteFilesKept(t *testing.T) {
	isolate(t)
	abs := filepath.Join(t.TempDir(), "elsewhere.json")
	cfg, err := Load(newFlagSet(), []string{"-data-dir", t.TempDir(), "-tasks", abs})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.TasksFile != abs {
		t.Errorf("TasksFile: got %q, want %q", cfg.TasksFile, abs)
	}
}

func TestParseWeekday(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Weekday
		wantErr bool
	}{
		{"sunday", time.Sunday, false},
		{"Monday", time.Monday, false},
		{" sat ", time.Saturday, false},
		{"", time.Sunday, true},
		{"funday", time.Sunday, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseWeekday(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseWeekday(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("parseWeekday(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestEncode(t *testing.T) {
	cfg := &Config{}
	setDefaults(cfg)
	cfg.ConfigFile = "/ignored"
	data, err := cfg.Encode()
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	var round Config
	if _, err := toml.Decode(string(data), &round); err != nil {
		t.Fatalf("decode: %v", err)
	}
	cfg.ConfigFile = ""
	if diff := cmp.Diff(*cfg, round); diff != "" {
		t.Errorf("Encode round trip (-want +got):\n%s", diff)
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("Cannot get home directory")
	}

	tests := []struct {
		input string
		want  string
	}{
		{"~/test", filepath.Join(home, "test")},
		{"~", home},
		{"/absolute/path", "/absolute/path"},
		{"relative", "relative"},
	}
	if runtime.GOOS == "windows" {
		t.Setenv("VERTO_TEST_HOME", home)
		tests = append(tests, struct{ input, want string }{
			input: `%VERTO_TEST_HOME%\data`,
			want:  filepath.Join(home, "data"),
		})
	} else {
		t.Setenv("VERTO_TEST_HOME", home)
		tests = append(tests, struct{ input, want string }{
			input: "$VERTO_TEST_HOME/data",
			want:  home + "/data",
		})
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := expandPath(tt.input); got != tt.want {
				t.Errorf("expandPath(%q): got %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
