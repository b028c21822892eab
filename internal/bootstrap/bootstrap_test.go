package bootstrap

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/duopane/internal/application/port/mocks"
	"github.com/bnema/duopane/internal/domain/entity"
	"github.com/bnema/duopane/internal/infrastructure/config"
	"github.com/bnema/duopane/internal/logging"
)

func isolateXDG(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("ENV", "")
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(dir, "state"))
	t.Setenv("XDG_CACHE_HOME", filepath.Join(dir, "cache"))
	return dir
}

func testCtx() context.Context {
	return logging.WithContext(context.Background(), zerolog.Nop())
}

func TestResolvePaths_Defaults(t *testing.T) {
	dir := isolateXDG(t)

	paths, err := ResolvePaths(config.DefaultConfig())
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "config", "duopane", "settings.json"), paths.SettingsFile)
	assert.Equal(t, filepath.Join(dir, "data", "duopane", "duopane.sqlite"), paths.Database)
	assert.Equal(t, filepath.Join(dir, "data", "duopane", "partitions"), paths.PartitionsDir)
	assert.Equal(t, filepath.Join(dir, "cache", "duopane", "partitions"), paths.PartitionsCacheDir)
}

func TestResolvePaths_ConfiguredDatabaseWins(t *testing.T) {
	isolateXDG(t)
	cfg := config.DefaultConfig()
	cfg.Database.Path = "/srv/duopane/registry.sqlite"

	paths, err := ResolvePaths(cfg)
	require.NoError(t, err)
	assert.Equal(t, "/srv/duopane/registry.sqlite", paths.Database)
}

func TestOpenStorage_RegistersBothSides(t *testing.T) {
	isolateXDG(t)
	paths, err := ResolvePaths(nil)
	require.NoError(t, err)
	ctx := testCtx()

	storage, err := OpenStorage(ctx, paths)
	require.NoError(t, err)
	t.Cleanup(func() { _ = storage.Close() })

	require.Len(t, storage.Partitions, 2)
	for _, side := range entity.Sides() {
		p := storage.Partitions[side]
		assert.Equal(t, entity.PartitionFor(side), p.Key)
		assert.DirExists(t, p.DataDir)
		assert.DirExists(t, p.CacheDir)
	}
	assert.NotEqual(t, storage.Partitions[entity.SideA].DataDir, storage.Partitions[entity.SideB].DataDir)
	assert.FileExists(t, paths.Database)
}

func TestOpenStorage_ReopenKeepsPartitions(t *testing.T) {
	isolateXDG(t)
	paths, err := ResolvePaths(nil)
	require.NoError(t, err)
	ctx := testCtx()

	first, err := OpenStorage(ctx, paths)
	require.NoError(t, err)
	created := first.Partitions[entity.SideA].CreatedAt
	require.NoError(t, first.Close())

	second, err := OpenStorage(ctx, paths)
	require.NoError(t, err)
	t.Cleanup(func() { _ = second.Close() })

	assert.True(t, created.Equal(second.Partitions[entity.SideA].CreatedAt))
}

func TestEnsurePartitions_PropagatesError(t *testing.T) {
	registry := mocks.NewMockPartitionRegistry(t)
	registry.EXPECT().Ensure(mock.Anything, entity.SideA).
		Return(entity.Partition{Side: entity.SideA, Key: entity.PartitionFor(entity.SideA)}, nil).Maybe()
	registry.EXPECT().Ensure(mock.Anything, entity.SideB).
		Return(entity.Partition{}, os.ErrPermission)

	_, err := EnsurePartitions(testCtx(), registry)
	require.ErrorIs(t, err, os.ErrPermission)
}

func TestStorageClose_NilSafe(t *testing.T) {
	var s *Storage
	assert.NoError(t, s.Close())
}

func TestNewLogger_WritesFileCopy(t *testing.T) {
	t.Setenv("DUOPANE_LOG_LEVEL", "")
	t.Setenv("DUOPANE_LOG_FORMAT", "")
	dir := t.TempDir()

	var console bytes.Buffer
	logger, closeLog, err := NewLogger(config.LoggingConfig{
		Level:         "info",
		Format:        "json",
		EnableFileLog: true,
		LogDir:        dir,
		MaxSizeMB:     1,
		MaxBackups:    1,
	}, &console)
	require.NoError(t, err)

	logger.Info().Msg("hello")
	require.NoError(t, closeLog())

	assert.Contains(t, console.String(), "hello")
	data, err := os.ReadFile(filepath.Join(dir, "duopane.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello")
}

func TestApplyConfigLevel_ChangesGlobalLevel(t *testing.T) {
	t.Setenv("DUOPANE_LOG_LEVEL", "")
	prev := zerolog.GlobalLevel()
	t.Cleanup(func() { zerolog.SetGlobalLevel(prev) })

	var buf bytes.Buffer
	logger := FollowConfigLevel(zerolog.New(&buf).Level(zerolog.InfoLevel))
	logger.Debug().Msg("hidden")
	assert.Empty(t, buf.String())

	cfg := config.DefaultConfig()
	cfg.Logging.Level = "debug"
	ApplyConfigLevel(&logger, cfg)

	logger.Debug().Msg("visible")
	assert.Contains(t, buf.String(), "visible")
	assert.NotContains(t, buf.String(), "hidden")
}

func TestApplyConfigLevel_IgnoresInvalidLevel(t *testing.T) {
	t.Setenv("DUOPANE_LOG_LEVEL", "")
	prev := zerolog.GlobalLevel()
	t.Cleanup(func() { zerolog.SetGlobalLevel(prev) })
	zerolog.SetGlobalLevel(zerolog.WarnLevel)

	logger := zerolog.Nop()
	cfg := config.DefaultConfig()
	cfg.Logging.Level = "loud"
	ApplyConfigLevel(&logger, cfg)

	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())
}
