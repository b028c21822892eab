// Package settings persists the user settings record as a small JSON file
// and watches it for changes made by other processes.
package settings

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/viper"
	"golang.org/x/sys/unix"

	"github.com/bnema/duopane/internal/application/port"
	"github.com/bnema/duopane/internal/domain/entity"
	"github.com/bnema/duopane/internal/logging"
)

// ErrMalformed is returned when the settings file is not valid JSON or a
// field has an unusable type. Callers treat it like a missing file.
var ErrMalformed = errors.New("malformed settings file")

const (
	dirPerm  = 0o755
	filePerm = 0o600

	keySideAURL     = "side_a_url"
	keySideBURL     = "side_b_url"
	keySplitRatio   = "split_ratio"
	keyDividerColor = "divider_color"
	keySwapped      = "swapped"
)

// Keys lists the persisted field names in file order.
func Keys() []string {
	return []string{keySideAURL, keySideBURL, keySplitRatio, keyDividerColor, keySwapped}
}

// FileRepository implements port.SettingsRepository on a JSON file.
type FileRepository struct {
	path string

	mu          sync.Mutex
	lastWritten [sha256.Size]byte
	wrote       bool
}

// NewFileRepository creates a repository for the file at path.
func NewFileRepository(path string) *FileRepository {
	return &FileRepository{path: path}
}

// Path returns the settings file location.
func (r *FileRepository) Path() string {
	return r.path
}

// Load reads the record merged field by field over the defaults. A missing
// or empty file yields the defaults.
func (r *FileRepository) Load(ctx context.Context) (entity.Settings, error) {
	log := logging.FromContext(ctx)

	data, err := os.ReadFile(r.path)
	if errors.Is(err, os.ErrNotExist) {
		log.Debug().Str("path", r.path).Msg("settings file absent, using defaults")
		return entity.DefaultSettings(), nil
	}
	if err != nil {
		return entity.DefaultSettings(), fmt.Errorf("failed to read settings file: %w", err)
	}

	return Decode(data)
}

// Decode parses a settings document merged over the defaults.
func Decode(data []byte) (entity.Settings, error) {
	defaults := entity.DefaultSettings()
	if len(bytes.TrimSpace(data)) == 0 {
		return defaults, nil
	}

	v := viper.New()
	v.SetConfigType("json")
	v.SetDefault(keySideAURL, defaults.SideAURL)
	v.SetDefault(keySideBURL, defaults.SideBURL)
	v.SetDefault(keySplitRatio, defaults.SplitRatio)
	v.SetDefault(keyDividerColor, defaults.DividerColor)
	v.SetDefault(keySwapped, defaults.Swapped)

	if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
		return defaults, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	var s entity.Settings
	if err := v.Unmarshal(&s); err != nil {
		return defaults, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return s, nil
}

// Encode renders the full record as indented JSON.
func Encode(s entity.Settings) ([]byte, error) {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode settings: %w", err)
	}
	return append(data, '\n'), nil
}

// Save writes the full record atomically. Concurrent writers (the running
// window and the CLI) are serialized with an advisory lock.
func (r *FileRepository) Save(ctx context.Context, s entity.Settings) error {
	data, err := Encode(s)
	if err != nil {
		return err
	}

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	unlock, err := lockFile(r.path + ".lock")
	if err != nil {
		return err
	}
	defer unlock()

	tmp, err := os.CreateTemp(dir, ".settings-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp settings file: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() { _ = os.Remove(tmpPath) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write settings: %w", err)
	}
	if err := tmp.Chmod(filePerm); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to chmod settings: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to sync settings: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close settings: %w", err)
	}

	r.mu.Lock()
	r.lastWritten = sha256.Sum256(data)
	r.wrote = true
	r.mu.Unlock()

	if err := os.Rename(tmpPath, r.path); err != nil {
		return fmt.Errorf("failed to replace settings file: %w", err)
	}

	logging.FromContext(ctx).Debug().Str("path", r.path).Msg("settings written")
	return nil
}

// isOwnWrite reports whether data is exactly what this repository last wrote.
func (r *FileRepository) isOwnWrite(data []byte) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.wrote && sha256.Sum256(data) == r.lastWritten
}

func lockFile(path string) (func(), error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, filePerm)
	if err != nil {
		return nil, fmt.Errorf("failed to open settings lock: %w", err)
	}
	if err := unix.Flock(int(f.Fd()), unix.LOCK_EX); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("failed to lock settings: %w", err)
	}
	return func() {
		_ = unix.Flock(int(f.Fd()), unix.LOCK_UN)
		_ = f.Close()
	}, nil
}

var _ port.SettingsRepository = (*FileRepository)(nil)
