package config

import "flag"

// flagFields maps global flag names to config keys.
var flagFields = map[string]string{
	"data-dir":       "data_dir",
	"tasks":          "tasks_file",
	"settings":       "settings_file",
	"log-file":       "log_file",
	"log-level":      "log_level",
	"log-format":     "log_format",
	"log-timestamps": "log_timestamps",
	"log-caller":     "log_caller",
	"week-start":     "week_start",
}

// parseFlags defines the global flags on fs and parses args. Parsing stops
// at the first non-flag argument, which is left in fs.Args() for the
// subcommand. If sources is non-nil, explicitly set flags are recorded.
func parseFlags(cfg *Config, fs *flag.FlagSet, args []string, sources map[string]ConfigSource) error {
	if fs == nil {
		fs = flag.NewFlagSet("verto", flag.ContinueOnError)
	}

	// Path flags
	fs.StringVar(&cfg.DataDir, "data-dir", cfg.DataDir, "Data directory")
	fs.StringVar(&cfg.TasksFile, "tasks", cfg.TasksFile, "Path to tasks file (relative to data dir)")
	fs.StringVar(&cfg.SettingsFile, "settings", cfg.SettingsFile, "Path to settings file (relative to data dir)")
	fs.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "Log file (relative to data dir, - for stderr)")

	// Logging flags
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug|info|warn|error)")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format (text|json|logfmt)")
	fs.BoolVar(&cfg.LogTimestamps, "log-timestamps", cfg.LogTimestamps, "Include timestamps in logs")
	fs.BoolVar(&cfg.LogCaller, "log-caller", cfg.LogCaller, "Include caller info in logs")

	fs.StringVar(&cfg.WeekStart, "week-start", cfg.WeekStart, "First day of the week in the heatmap")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if sources != nil {
		fs.Visit(func(f *flag.Flag) {
			if field, ok := flagFields[f.Name]; ok {
				sources[field] = SourceFlag
			}
		})
	}
	return nil
}
