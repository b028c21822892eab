package bootstrap

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/bnema/duopane/internal/application/port"
	"github.com/bnema/duopane/internal/application/usecase"
	"github.com/bnema/duopane/internal/domain/entity"
	"github.com/bnema/duopane/internal/infrastructure/config"
	"github.com/bnema/duopane/internal/infrastructure/settings"
	"github.com/bnema/duopane/internal/logging"
)

// WatchSettingsFile applies records written by other processes, such as
// `duopane settings set`, on the main loop.
func WatchSettingsFile(ctx context.Context, repo *settings.FileRepository, store *usecase.SettingsStore, loop port.MainLoop) {
	log := logging.FromContext(ctx)
	watcher := settings.NewWatcher(repo, settings.DefaultDebounce)
	go func() {
		err := watcher.Watch(ctx, func(s entity.Settings) {
			loop.Post(func() { store.Replace(ctx, s) })
		})
		if err != nil && ctx.Err() == nil {
			log.Warn().Err(err).Msg("settings file watcher stopped")
		}
	}()
}

// WatchConfig follows config.toml and applies log level changes.
func WatchConfig(log *zerolog.Logger, mgr *config.Manager) {
	if mgr == nil {
		return
	}
	mgr.OnConfigChange(func(c *config.Config) {
		ApplyConfigLevel(log, c)
	})
	if err := mgr.Watch(); err != nil {
		log.Warn().Err(err).Msg("config hot reload unavailable")
	}
}
