package config

import (
	"bytes"
	"flag"
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/JaskiratSingh1/Verto/internal/appdir"
)

// Load loads configuration from multiple sources in priority order:
// 1. Defaults
// 2. User config file (~/.verto/verto.toml or OS-specific config dir)
// 3. Environment variables
// 4. CLI flags
func Load(fs *flag.FlagSet, args []string) (*Config, error) {
	cws, err := load(fs, args, nil)
	if err != nil {
		return nil, err
	}
	return cws.Config, nil
}

// LoadWithSources loads configuration and tracks the source of each value.
func LoadWithSources(fs *flag.FlagSet, args []string) (*ConfigWithSources, error) {
	sources := make(map[string]ConfigSource)
	for _, field := range configFields() {
		sources[field] = SourceDefault
	}
	return load(fs, args, sources)
}

func load(fs *flag.FlagSet, args []string, sources map[string]ConfigSource) (*ConfigWithSources, error) {
	cfg := &Config{}

	// 1. Set defaults
	setDefaults(cfg)

	// 2. Try to load from user config file
	if path := appdir.FindConfigFile(); path != "" {
		if err := loadConfigFile(cfg, path, sources); err != nil {
			return nil, fmt.Errorf("loading user config file %s: %w", path, err)
		}
		cfg.ConfigFile = path
	}

	// 3. Override from environment
	if err := loadFromEnv(cfg, sources); err != nil {
		return nil, err
	}

	// 4. Parse CLI flags (they override everything)
	if err := parseFlags(cfg, fs, args, sources); err != nil {
		return nil, fmt.Errorf("parsing flags: %w", err)
	}

	// 5. Compute derived values
	if err := finalizeConfig(cfg); err != nil {
		return nil, fmt.Errorf("finalizing config: %w", err)
	}

	return &ConfigWithSources{Config: cfg, Sources: sources}, nil
}

// loadConfigFile loads TOML config from the given file. Keys present in the
// file are recorded in sources when tracking is enabled.
func loadConfigFile(cfg *Config, path string, sources map[string]ConfigSource) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("unknown config key %q", undecoded[0].String())
	}
	if sources != nil {
		for _, field := range configFields() {
			if md.IsDefined(field) {
				sources[field] = SourceUserFile
			}
		}
	}
	return nil
}

// finalizeConfig expands paths, resolves file names against the data
// directory and validates enumerated values.
func finalizeConfig(cfg *Config) error {
	cfg.DataDir = expandPath(cfg.DataDir)
	if cfg.DataDir == "" {
		return fmt.Errorf("data_dir is empty")
	}

	cfg.TasksFile = appdir.Join(cfg.DataDir, expandPath(cfg.TasksFile))
	cfg.SettingsFile = appdir.Join(cfg.DataDir, expandPath(cfg.SettingsFile))
	if cfg.TasksFile == "" {
		return fmt.Errorf("tasks_file is empty")
	}
	if !cfg.LogToStderr() {
		cfg.LogFile = appdir.Join(cfg.DataDir, expandPath(cfg.LogFile))
	}

	if _, err := parseWeekday(cfg.WeekStart); err != nil {
		return err
	}
	return nil
}

// Encode renders cfg as TOML, the same shape the config file accepts.
func (c *Config) Encode() ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	return buf.Bytes(), nil
}
