// Package appdir resolves where verto keeps its data and config files.
package appdir

import (
	"os"
	"path/filepath"
	"runtime"
)

const (
	// Name is the directory name used under OS-specific base directories.
	Name = "verto"

	// HomeDir is the dot directory checked first for the user config file.
	HomeDir = ".verto"

	// TasksFile is the default tasks file name inside the data directory.
	TasksFile = "tasks.json"

	// SettingsFile is the default preferences file name.
	SettingsFile = "settings.toml"

	// ConfigFile is the config file name.
	ConfigFile = "verto.toml"

	// LogFile is the default log file name.
	LogFile = "verto.log"
)

// DataDir returns the per-user application data directory:
//   - Windows: %APPDATA%\verto
//   - macOS: ~/Library/Application Support/verto
//   - Linux/BSD: $XDG_DATA_HOME/verto or ~/.local/share/verto
//
// It falls back to ~/.verto, then to a relative .verto directory.
func DataDir() string {
	if base := osDataDir(); base != "" {
		return filepath.Join(base, Name)
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, HomeDir)
	}
	return HomeDir
}

// ConfigCandidates lists user config file locations in lookup order:
// ~/.verto/verto.toml, then the OS config directory.
func ConfigCandidates() []string {
	var paths []string
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, HomeDir, ConfigFile))
	}
	if cfgDir, err := os.UserConfigDir(); err == nil && cfgDir != "" {
		paths = append(paths, filepath.Join(cfgDir, Name, ConfigFile))
	}
	return paths
}

// FindConfigFile returns the first existing user config file, or "".
func FindConfigFile() string {
	for _, p := range ConfigCandidates() {
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p
		}
	}
	return ""
}

// Ensure creates dir if it does not exist.
func Ensure(dir string) error {
	return os.MkdirAll(dir, 0o755)
}

// Join resolves name against dir unless name is already absolute.
func Join(dir, name string) string {
	if name == "" || filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(dir, name)
}

// osDataDir returns the OS-specific user data directory.
// Returns empty string if the directory cannot be determined.
func osDataDir() string {
	switch runtime.GOOS {
	case "windows":
		if appdata := os.Getenv("APPDATA"); appdata != "" {
			return appdata
		}
	case "darwin":
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, "Library", "Application Support")
		}
	case "linux", "openbsd", "freebsd", "netbsd":
		if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
			return xdg
		}
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, ".local", "share")
		}
	}
	return ""
}
