package settings

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/bnema/duopane/internal/application/port"
	"github.com/bnema/duopane/internal/domain/entity"
	"github.com/bnema/duopane/internal/logging"
)

// DefaultDebounce coalesces the burst of events produced by one rewrite.
const DefaultDebounce = 150 * time.Millisecond

// Watcher reports settings rewritten by other processes. Writes made through
// the paired repository are not reported.
type Watcher struct {
	repo     *FileRepository
	debounce time.Duration
}

// NewWatcher creates a watcher for the repository's file.
func NewWatcher(repo *FileRepository, debounce time.Duration) *Watcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Watcher{repo: repo, debounce: debounce}
}

// Watch blocks until ctx is done, invoking onChange from its own goroutine
// after each external rewrite. Malformed rewrites are logged and skipped.
func (w *Watcher) Watch(ctx context.Context, onChange func(entity.Settings)) error {
	log := logging.FromContext(ctx)

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create settings watcher: %w", err)
	}
	defer func() { _ = fsw.Close() }()

	// Watch the directory: atomic replaces swap the file's inode.
	dir := filepath.Dir(w.repo.Path())
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}
	if err := fsw.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}
	log.Debug().Str("path", w.repo.Path()).Msg("watching settings file")

	target := filepath.Clean(w.repo.Path())
	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			timer.Reset(w.debounce)

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			log.Warn().Err(err).Msg("settings watcher error")

		case <-timer.C:
			w.deliver(ctx, onChange)
		}
	}
}

func (w *Watcher) deliver(ctx context.Context, onChange func(entity.Settings)) {
	log := logging.FromContext(ctx)

	data, err := os.ReadFile(w.repo.Path())
	if errors.Is(err, os.ErrNotExist) {
		return
	}
	if err != nil {
		log.Warn().Err(err).Msg("failed to read rewritten settings")
		return
	}
	if w.repo.isOwnWrite(data) {
		return
	}

	s, err := Decode(data)
	if err != nil {
		log.Warn().Err(err).Msg("ignoring malformed settings rewrite")
		return
	}

	log.Info().Msg("settings changed on disk")
	onChange(s)
}

var _ port.SettingsWatcher = (*Watcher)(nil)
