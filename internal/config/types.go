package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/JaskiratSingh1/Verto/internal/appdir"
)

// Default values.
const (
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
	DefaultWeekStart = "sunday"

	// StderrLog as log_file sends logs to stderr instead of a file.
	StderrLog = "-"
)

// ConfigSource indicates where a configuration value came from.
type ConfigSource string

const (
	SourceDefault  ConfigSource = "default"
	SourceUserFile ConfigSource = "user config"
	SourceEnv      ConfigSource = "env"
	SourceFlag     ConfigSource = "flag"
)

// Config holds all configuration for verto.
type Config struct {
	// Paths
	DataDir      string `toml:"data_dir"`
	TasksFile    string `toml:"tasks_file"`
	SettingsFile string `toml:"settings_file"`
	LogFile      string `toml:"log_file"`

	// Logging
	LogLevel      string `toml:"log_level"`
	LogFormat     string `toml:"log_format"`
	LogTimestamps bool   `toml:"log_timestamps"`
	LogCaller     bool   `toml:"log_caller"`

	// Heatmap layout
	WeekStart string `toml:"week_start"`

	// ConfigFile is the user config file that was read, if any.
	ConfigFile string `toml:"-"`
}

// ConfigWithSources holds the config along with the source of each value.
type ConfigWithSources struct {
	Config  *Config
	Sources map[string]ConfigSource
}

// LogToStderr reports whether logs go to stderr rather than a file.
func (c *Config) LogToStderr() bool {
	return c.LogFile == StderrLog
}

// FirstWeekday returns the configured first day of the week.
func (c *Config) FirstWeekday() time.Weekday {
	d, err := parseWeekday(c.WeekStart)
	if err != nil {
		return time.Sunday
	}
	return d
}

// parseWeekday accepts full or three-letter English day names.
func parseWeekday(s string) (time.Weekday, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for d := time.Sunday; d <= time.Saturday; d++ {
		name := strings.ToLower(d.String())
		if s == name || s == name[:3] {
			return d, nil
		}
	}
	return time.Sunday, fmt.Errorf("invalid week_start %q (want a day name like sunday or monday)", s)
}

// setDefaults applies default values to the config.
func setDefaults(cfg *Config) {
	cfg.DataDir = appdir.DataDir()
	cfg.TasksFile = appdir.TasksFile
	cfg.SettingsFile = appdir.SettingsFile
	cfg.LogFile = appdir.LogFile
	cfg.LogLevel = DefaultLogLevel
	cfg.LogFormat = DefaultLogFormat
	cfg.LogTimestamps = true
	cfg.LogCaller = false
	cfg.WeekStart = DefaultWeekStart
}

// configFields returns the list of configurable field names for source tracking.
func configFields() []string {
	return []string{
		"data_dir",
		"tasks_file",
		"settings_file",
		"log_file",
		"log_level",
		"log_format",
		"log_timestamps",
		"log_caller",
		"week_start",
	}
}

// Fields returns the configurable keys in display order.
func Fields() []string {
	return configFields()
}
