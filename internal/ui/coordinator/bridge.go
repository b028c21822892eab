package coordinator

import (
	"context"

	"github.com/bnema/duopane/internal/app/messaging"
	"github.com/bnema/duopane/internal/application/port"
	"github.com/bnema/duopane/internal/application/usecase"
	"github.com/bnema/duopane/internal/domain/entity"
	"github.com/bnema/duopane/internal/logging"
)

// Bridge answers script messages from the overlay and the settings editor.
type Bridge struct {
	store  *usecase.SettingsStore
	drag   *usecase.DragResizeCoordinator
	editor port.SettingsEditor
}

var _ messaging.Backend = (*Bridge)(nil)

// NewBridge creates a bridge. editor may be nil when no editor surface
// exists, in which case open-settings is ignored.
func NewBridge(store *usecase.SettingsStore, drag *usecase.DragResizeCoordinator, editor port.SettingsEditor) *Bridge {
	return &Bridge{store: store, drag: drag, editor: editor}
}

// SetEditor installs the settings editor once the window exists.
func (b *Bridge) SetEditor(editor port.SettingsEditor) {
	b.editor = editor
}

// GetSettings returns the live record.
func (b *Bridge) GetSettings(_ context.Context) entity.Settings {
	return b.store.Current()
}

// SaveSettings commits the fields set in patch and persists the result.
func (b *Bridge) SaveSettings(ctx context.Context, patch entity.SettingsPatch) entity.Settings {
	return b.store.CommitPatch(ctx, patch, usecase.SourceEditor)
}

// UpdateSplitRatio previews a raw ratio streamed by the overlay.
func (b *Bridge) UpdateSplitRatio(ctx context.Context, ratio float64) {
	b.drag.UpdateSplitRatio(ctx, ratio)
}

// DragMove previews the ratio under an overlay-relative pointer position.
func (b *Bridge) DragMove(ctx context.Context, clientX float64) {
	b.drag.DragMove(ctx, clientX)
}

// DragEnd persists the last previewed ratio.
func (b *Bridge) DragEnd(ctx context.Context) {
	b.drag.DragEnd(ctx)
}

// OpenSettingsEditor shows the settings window, if one is installed.
func (b *Bridge) OpenSettingsEditor(ctx context.Context) {
	if b.editor == nil {
		logging.FromContext(ctx).Debug().Msg("no settings editor available")
		return
	}
	b.editor.OpenSettingsEditor(ctx)
}
