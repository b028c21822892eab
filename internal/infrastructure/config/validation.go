package config

import (
	"fmt"
	"strings"

	"github.com/bnema/duopane/internal/logging"
)

const (
	minWindowWidth  = 200
	minWindowHeight = 150
	minDividerWidth = 2
	maxDividerWidth = 64
)

// validateConfig performs validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateWindow(config)...)
	validationErrors = append(validationErrors, validateLayout(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

func validateWindow(config *Config) []string {
	var validationErrors []string
	if config.Window.Width < minWindowWidth {
		validationErrors = append(validationErrors, fmt.Sprintf("window.width must be at least %d", minWindowWidth))
	}
	if config.Window.Height < minWindowHeight {
		validationErrors = append(validationErrors, fmt.Sprintf("window.height must be at least %d", minWindowHeight))
	}
	return validationErrors
}

func validateLayout(config *Config) []string {
	w := config.Layout.DividerWidth
	if w < minDividerWidth || w > maxDividerWidth {
		return []string{fmt.Sprintf("layout.divider_width must be between %d and %d", minDividerWidth, maxDividerWidth)}
	}
	return nil
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	if _, err := logging.ParseLevel(config.Logging.Level); err != nil {
		validationErrors = append(validationErrors, "logging.level must be one of trace, debug, info, warn, error")
	}
	if config.Logging.MaxSizeMB < 0 {
		validationErrors = append(validationErrors, "logging.max_size_mb must be non-negative")
	}
	if config.Logging.MaxBackups < 0 {
		validationErrors = append(validationErrors, "logging.max_backups must be non-negative")
	}
	return validationErrors
}
