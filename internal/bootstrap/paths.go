// Package bootstrap wires configuration, storage and the GTK host together.
package bootstrap

import (
	"fmt"

	"github.com/bnema/duopane/internal/infrastructure/config"
)

// Paths locates every file the application owns.
type Paths struct {
	SettingsFile       string
	Database           string
	PartitionsDir      string
	PartitionsCacheDir string
}

// ResolvePaths derives the XDG locations. A database path set in the config
// wins over the default.
func ResolvePaths(cfg *config.Config) (Paths, error) {
	var (
		p   Paths
		err error
	)
	if p.SettingsFile, err = config.GetSettingsFile(); err != nil {
		return Paths{}, fmt.Errorf("resolve settings file: %w", err)
	}
	if p.Database, err = config.GetDatabaseFile(); err != nil {
		return Paths{}, fmt.Errorf("resolve database file: %w", err)
	}
	if cfg != nil && cfg.Database.Path != "" {
		p.Database = cfg.Database.Path
	}
	if p.PartitionsDir, err = config.GetPartitionsDir(); err != nil {
		return Paths{}, fmt.Errorf("resolve partitions directory: %w", err)
	}
	if p.PartitionsCacheDir, err = config.GetPartitionsCacheDir(); err != nil {
		return Paths{}, fmt.Errorf("resolve partitions cache directory: %w", err)
	}
	return p, nil
}
