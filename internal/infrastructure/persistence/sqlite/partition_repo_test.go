package sqlite_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/duopane/internal/domain/entity"
	"github.com/bnema/duopane/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/duopane/internal/logging"
)

func testCtx() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

type roots struct {
	db, data, cache string
}

func newRoots(t *testing.T) roots {
	dir := t.TempDir()
	return roots{
		db:    filepath.Join(dir, "state", "duopane.sqlite"),
		data:  filepath.Join(dir, "data", "partitions"),
		cache: filepath.Join(dir, "cache", "partitions"),
	}
}

func TestPartitionRepository_EnsureIsStable(t *testing.T) {
	ctx := testCtx()
	r := newRoots(t)

	db, err := sqlite.NewConnection(ctx, r.db)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := sqlite.NewPartitionRepository(db, r.data, r.cache)

	first, err := repo.Ensure(ctx, entity.SideA)
	require.NoError(t, err)
	assert.Equal(t, entity.PartitionKey("persist:a"), first.Key)
	assert.Equal(t, filepath.Join(r.data, "persist-a"), first.DataDir)
	assert.Equal(t, filepath.Join(r.cache, "persist-a"), first.CacheDir)
	assert.DirExists(t, first.DataDir)
	assert.DirExists(t, first.CacheDir)
	assert.Nil(t, first.ClearedAt)

	// A different root must not move an already registered partition.
	moved := sqlite.NewPartitionRepository(db, filepath.Join(t.TempDir(), "elsewhere"), r.cache)
	again, err := moved.Ensure(ctx, entity.SideA)
	require.NoError(t, err)
	assert.Equal(t, first.DataDir, again.DataDir)
	assert.True(t, first.CreatedAt.Equal(again.CreatedAt))
}

func TestPartitionRepository_SidesNeverShareStorage(t *testing.T) {
	ctx := testCtx()
	r := newRoots(t)

	db, err := sqlite.NewConnection(ctx, r.db)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := sqlite.NewPartitionRepository(db, r.data, r.cache)

	a, err := repo.Ensure(ctx, entity.SideA)
	require.NoError(t, err)
	b, err := repo.Ensure(ctx, entity.SideB)
	require.NoError(t, err)

	assert.NotEqual(t, a.Key, b.Key)
	assert.NotEqual(t, a.DataDir, b.DataDir)
	assert.NotEqual(t, a.CacheDir, b.CacheDir)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, entity.SideA, list[0].Side)
	assert.Equal(t, entity.SideB, list[1].Side)
}

func TestPartitionRepository_ClearRemovesDataButKeepsKey(t *testing.T) {
	ctx := testCtx()
	r := newRoots(t)

	db, err := sqlite.NewConnection(ctx, r.db)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := sqlite.NewPartitionRepository(db, r.data, r.cache)

	b, err := repo.Ensure(ctx, entity.SideB)
	require.NoError(t, err)
	cookies := filepath.Join(b.DataDir, "cookies.db")
	require.NoError(t, os.WriteFile(cookies, []byte("x"), 0o600))

	a, err := repo.Ensure(ctx, entity.SideA)
	require.NoError(t, err)
	keep := filepath.Join(a.DataDir, "cookies.db")
	require.NoError(t, os.WriteFile(keep, []byte("x"), 0o600))

	require.NoError(t, repo.Clear(ctx, entity.SideB))

	assert.NoFileExists(t, cookies)
	assert.NoDirExists(t, b.DataDir)
	assert.FileExists(t, keep)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.NotNil(t, list[1].ClearedAt)
	assert.Equal(t, b.Key, list[1].Key)

	restored, err := repo.Ensure(ctx, entity.SideB)
	require.NoError(t, err)
	assert.Equal(t, b.DataDir, restored.DataDir)
	assert.DirExists(t, restored.DataDir)
}

func TestPartitionRepository_ClearUnknownSideIsNoop(t *testing.T) {
	ctx := testCtx()
	r := newRoots(t)

	db, err := sqlite.NewConnection(ctx, r.db)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := sqlite.NewPartitionRepository(db, r.data, r.cache)

	require.NoError(t, repo.Clear(ctx, entity.SideA))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestNewConnection_ReopenKeepsRegistry(t *testing.T) {
	ctx := testCtx()
	r := newRoots(t)

	db, err := sqlite.NewConnection(ctx, r.db)
	require.NoError(t, err)
	_, err = sqlite.NewPartitionRepository(db, r.data, r.cache).Ensure(ctx, entity.SideA)
	require.NoError(t, err)
	require.NoError(t, sqlite.Close(db))

	db, err = sqlite.NewConnection(ctx, r.db)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	list, err := sqlite.NewPartitionRepository(db, r.data, r.cache).List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, entity.PartitionKey("persist:a"), list[0].Key)
}

func TestNewConnection_EmptyPath(t *testing.T) {
	_, err := sqlite.NewConnection(testCtx(), "")
	assert.Error(t, err)
}
