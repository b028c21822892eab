// Package cli provides CLI commands using Bubble Tea TUI.
package cli

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/bnema/duopane/internal/application/port"
	"github.com/bnema/duopane/internal/bootstrap"
	"github.com/bnema/duopane/internal/cli/styles"
	"github.com/bnema/duopane/internal/domain/build"
	"github.com/bnema/duopane/internal/infrastructure/config"
	"github.com/bnema/duopane/internal/infrastructure/settings"
	"github.com/bnema/duopane/internal/logging"
)

// App holds CLI dependencies.
type App struct {
	Config    *config.Config
	Theme     *styles.Theme
	BuildInfo build.Info
	Paths     bootstrap.Paths
	Settings  *settings.FileRepository

	ctx      context.Context
	db       *sql.DB
	registry port.PartitionRegistry
}

// NewApp creates the CLI application from the user's config and XDG paths.
func NewApp() (*App, error) {
	cfg := loadConfig()
	paths, err := bootstrap.ResolvePaths(cfg)
	if err != nil {
		return nil, fmt.Errorf("resolve paths: %w", err)
	}
	return NewAppWithPaths(cfg, paths), nil
}

// NewAppWithPaths creates the CLI application over explicit paths.
func NewAppWithPaths(cfg *config.Config, paths bootstrap.Paths) *App {
	// CLI output is the UI; keep logs quiet unless asked for.
	logger := logging.NewFromConfigValues(logging.ApplyEnv("warn", "console"))
	ctx := logging.WithContext(context.Background(), logger)

	repo := settings.NewFileRepository(paths.SettingsFile)

	accent := ""
	if s, err := repo.Load(ctx); err == nil && s.DividerColor != "" && s.DividerColor[0] == '#' {
		accent = s.DividerColor
	}

	return &App{
		Config:   cfg,
		Theme:    styles.NewTheme(accent),
		Paths:    paths,
		Settings: repo,
		ctx:      ctx,
	}
}

// Registry opens the partition registry on first use.
func (a *App) Registry() (port.PartitionRegistry, error) {
	if a.registry != nil {
		return a.registry, nil
	}
	db, registry, err := bootstrap.OpenRegistry(a.ctx, a.Paths)
	if err != nil {
		return nil, err
	}
	a.db, a.registry = db, registry
	return registry, nil
}

// Close releases all resources.
func (a *App) Close() error {
	if a.db != nil {
		return a.db.Close()
	}
	return nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// loadConfig loads configuration from standard locations.
func loadConfig() *config.Config {
	mgr, err := config.NewManager()
	if err != nil {
		return config.DefaultConfig()
	}
	if err := mgr.Load(); err != nil {
		return config.DefaultConfig()
	}
	return mgr.Get()
}
