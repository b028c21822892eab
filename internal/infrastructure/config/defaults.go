package config

// Default configuration constants
const (
	defaultWindowWidth  = 1200
	defaultWindowHeight = 800
	defaultWindowTitle  = "duopane"

	defaultDividerWidth = 6

	defaultLogLevel      = "info"
	defaultLogFormat     = "console"
	defaultLogMaxSizeMB  = 10
	defaultLogMaxBackups = 3
)

// getDefaultLogDir returns the default log directory, falls back to empty string on error
func getDefaultLogDir() string {
	logDir, err := GetLogDir()
	if err != nil {
		return ""
	}
	return logDir
}

// DefaultConfig returns the configuration used when config.toml omits a key.
func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  defaultWindowWidth,
			Height: defaultWindowHeight,
			Title:  defaultWindowTitle,
		},
		Layout: LayoutConfig{
			DividerWidth: defaultDividerWidth,
		},
		Content: ContentConfig{
			HardwareAcceleration: HardwareAccelerationAlways,
		},
		Logging: LoggingConfig{
			Level:      defaultLogLevel,
			Format:     defaultLogFormat,
			LogDir:     getDefaultLogDir(),
			MaxSizeMB:  defaultLogMaxSizeMB,
			MaxBackups: defaultLogMaxBackups,
		},
		Settings: SettingsConfig{
			WatchFile: true,
		},
	}
}
