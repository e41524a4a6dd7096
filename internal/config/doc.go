// Package config handles configuration loading and defaults.
//
// Configuration is loaded from multiple sources in priority order:
// 1. Built-in defaults
// 2. User config file (~/.verto/verto.toml or OS-specific config directory)
// 3. Environment variables (VERTO_*)
// 4. CLI flags
//
// Each level overrides the previous one, so CLI flags take precedence.
//
// User-level config locations:
// - ~/.verto/verto.toml (preferred)
// - Windows: %AppData%\verto\verto.toml
// - macOS: ~/Library/Application Support/verto/verto.toml
// - Linux/BSD: $XDG_CONFIG_HOME/verto/verto.toml or ~/.config/verto/verto.toml
//
// Relative file names (tasks_file, settings_file, log_file) are resolved
// against data_dir. A log_file of "-" means stderr.
package config
