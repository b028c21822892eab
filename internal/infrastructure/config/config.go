// Package config loads the application configuration (window, layout,
// content and logging options) from config.toml using viper.
//
// The user settings record (URLs, split ratio, divider color, swap flag)
// is not part of this configuration; it lives in settings.json and is
// handled by the settings package.
package config

// Config is the application configuration.
type Config struct {
	Window   WindowConfig   `mapstructure:"window" toml:"window" json:"window"`
	Layout   LayoutConfig   `mapstructure:"layout" toml:"layout" json:"layout"`
	Content  ContentConfig  `mapstructure:"content" toml:"content" json:"content"`
	Logging  LoggingConfig  `mapstructure:"logging" toml:"logging" json:"logging"`
	Settings SettingsConfig `mapstructure:"settings" toml:"settings" json:"settings"`
	Database DatabaseConfig `mapstructure:"database" toml:"database" json:"database"`
}

// WindowConfig holds the main window options.
type WindowConfig struct {
	Width  int    `mapstructure:"width" toml:"width" json:"width" jsonschema:"minimum=200,default=1200"`
	Height int    `mapstructure:"height" toml:"height" json:"height" jsonschema:"minimum=150,default=800"`
	Title  string `mapstructure:"title" toml:"title" json:"title"`
}

// LayoutConfig holds the split geometry options.
type LayoutConfig struct {
	// DividerWidth is the divider strip width in pixels.
	DividerWidth int `mapstructure:"divider_width" toml:"divider_width" json:"divider_width" jsonschema:"minimum=2,maximum=64,default=6"`
}

// ContentConfig holds options applied to the content panes.
type ContentConfig struct {
	EnableDevTools       bool   `mapstructure:"enable_devtools" toml:"enable_devtools" json:"enable_devtools"`
	HardwareAcceleration string `mapstructure:"hardware_acceleration" toml:"hardware_acceleration" json:"hardware_acceleration" jsonschema:"enum=always,enum=never"`
	UserAgent            string `mapstructure:"user_agent" toml:"user_agent" json:"user_agent"`
}

// LoggingConfig holds logging options.
type LoggingConfig struct {
	Level         string `mapstructure:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error"`
	Format        string `mapstructure:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json"`
	EnableFileLog bool   `mapstructure:"enable_file_log" toml:"enable_file_log" json:"enable_file_log"`
	LogDir        string `mapstructure:"log_dir" toml:"log_dir" json:"log_dir"`
	MaxSizeMB     int    `mapstructure:"max_size_mb" toml:"max_size_mb" json:"max_size_mb"`
	MaxBackups    int    `mapstructure:"max_backups" toml:"max_backups" json:"max_backups"`
}

// SettingsConfig controls how the user settings record is handled.
type SettingsConfig struct {
	// WatchFile reloads settings.json when another process rewrites it.
	WatchFile bool `mapstructure:"watch_file" toml:"watch_file" json:"watch_file"`
}

// DatabaseConfig holds the partition registry location.
type DatabaseConfig struct {
	Path string `mapstructure:"path" toml:"path" json:"path"`
}

// Hardware acceleration policies.
const (
	HardwareAccelerationAlways = "always"
	HardwareAccelerationNever  = "never"
)
