package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "narrow window", mutate: func(c *Config) { c.Window.Width = 50 }, wantErr: "window.width"},
		{name: "short window", mutate: func(c *Config) { c.Window.Height = 10 }, wantErr: "window.height"},
		{name: "thin divider", mutate: func(c *Config) { c.Layout.DividerWidth = 1 }, wantErr: "layout.divider_width"},
		{name: "odd divider", mutate: func(c *Config) { c.Layout.DividerWidth = 7 }},
		{name: "bad level", mutate: func(c *Config) { c.Logging.Level = "chatty" }, wantErr: "logging.level"},
		{name: "negative backups", mutate: func(c *Config) { c.Logging.MaxBackups = -1 }, wantErr: "logging.max_backups"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := validateConfig(cfg)
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
