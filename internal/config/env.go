package config

import (
	"fmt"
	"os"
	"strings"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "VERTO_"

// loadFromEnv overrides config from VERTO_* environment variables.
// If sources is non-nil, it tracks the source of each value.
func loadFromEnv(cfg *Config, sources map[string]ConfigSource) error {
	setEnv := func(field string) {
		if sources != nil {
			sources[field] = SourceEnv
		}
	}
	stringFields := []struct {
		field  string
		target *string
	}{
		{"data_dir", &cfg.DataDir},
		{"tasks_file", &cfg.TasksFile},
		{"settings_file", &cfg.SettingsFile},
		{"log_file", &cfg.LogFile},
		{"log_level", &cfg.LogLevel},
		{"log_format", &cfg.LogFormat},
		{"week_start", &cfg.WeekStart},
	}
	for _, s := range stringFields {
		if v := os.Getenv(envName(s.field)); v != "" {
			*s.target = v
			setEnv(s.field)
		}
	}

	boolFields := []struct {
		field  string
		target *bool
	}{
		{"log_timestamps", &cfg.LogTimestamps},
		{"log_caller", &cfg.LogCaller},
	}
	for _, b := range boolFields {
		name := envName(b.field)
		v := os.Getenv(name)
		if v == "" {
			continue
		}
		parsed, ok := boolFromString(v)
		if !ok {
			return fmt.Errorf("%s: invalid boolean %q", name, v)
		}
		*b.target = parsed
		setEnv(b.field)
	}
	return nil
}

// envName maps a config key to its environment variable, e.g. data_dir to
// VERTO_DATA_DIR.
func envName(field string) string {
	return EnvPrefix + strings.ToUpper(field)
}

// boolFromString parses a boolean from a string.
func boolFromString(s string) (value, ok bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "on":
		return true, true
	case "0", "false", "no", "off":
		return false, true
	}
	return false, false
}
