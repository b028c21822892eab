package port

import (
	"context"

	"github.com/bnema/duopane/internal/domain/entity"
)

// SettingsRepository persists the user settings record.
type SettingsRepository interface {
	// Load returns the persisted record merged over defaults. Missing or
	// unknown fields fall back to defaults.
	Load(ctx context.Context) (entity.Settings, error)

	// Save writes the full record.
	Save(ctx context.Context, s entity.Settings) error
}

// SettingsWatcher reports settings written by another process.
type SettingsWatcher interface {
	// Watch invokes onChange from a background goroutine each time the
	// persisted record changes on disk. It returns when ctx is done.
	Watch(ctx context.Context, onChange func(entity.Settings)) error
}

// SettingsEditor opens the settings editing surface.
type SettingsEditor interface {
	OpenSettingsEditor(ctx context.Context)
}
