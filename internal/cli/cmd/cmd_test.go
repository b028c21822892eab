package cmd

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/duopane/internal/bootstrap"
	"github.com/bnema/duopane/internal/cli"
	"github.com/bnema/duopane/internal/domain/entity"
	"github.com/bnema/duopane/internal/infrastructure/config"
)

// useTestApp installs an App rooted in a temp dir for the duration of t.
func useTestApp(t *testing.T) *cli.App {
	t.Helper()
	dir := t.TempDir()
	paths := bootstrap.Paths{
		SettingsFile:       filepath.Join(dir, "config", "settings.json"),
		Database:           filepath.Join(dir, "data", "duopane.sqlite"),
		PartitionsDir:      filepath.Join(dir, "data", "partitions"),
		PartitionsCacheDir: filepath.Join(dir, "cache", "partitions"),
	}

	prev := app
	app = cli.NewAppWithPaths(config.DefaultConfig(), paths)
	t.Cleanup(func() {
		_ = app.Close()
		app = prev
	})
	return app
}

func run(t *testing.T, fn func(*cobra.Command, []string) error, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	c := &cobra.Command{}
	c.SetOut(&out)
	err := fn(c, args)
	return out.String(), err
}

func TestSettingsSet_PersistsAndClamps(t *testing.T) {
	a := useTestApp(t)

	_, err := run(t, runSettingsSet, "side_a_url", "https://mail.example.com")
	require.NoError(t, err)
	out, err := run(t, runSettingsSet, "split_ratio", "95")
	require.NoError(t, err)
	assert.Contains(t, out, "split_ratio")

	s, err := a.Settings.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "https://mail.example.com", s.SideAURL)
	assert.Equal(t, entity.MaxSplitRatio, s.SplitRatio)
}

func TestSettingsSet_RejectsUnknownKey(t *testing.T) {
	useTestApp(t)

	_, err := run(t, runSettingsSet, "zoom", "2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "side_a_url")
}

func TestSettingsGet(t *testing.T) {
	useTestApp(t)

	_, err := run(t, runSettingsSet, "swapped", "true")
	require.NoError(t, err)

	out, err := run(t, runSettingsGet, "swapped")
	require.NoError(t, err)
	assert.Equal(t, "true\n", out)
}

func TestSettingsShow_Defaults(t *testing.T) {
	useTestApp(t)

	out, err := run(t, runSettingsShow)
	require.NoError(t, err)
	assert.Contains(t, out, "(not set)")
}

func TestSettingsPathAndSchema(t *testing.T) {
	a := useTestApp(t)

	out, err := run(t, runSettingsPath)
	require.NoError(t, err)
	assert.Equal(t, a.Settings.Path()+"\n", out)

	out, err = run(t, runSettingsSchema)
	require.NoError(t, err)
	assert.Contains(t, out, "split_ratio")
}

func TestSessions_ListAndClear(t *testing.T) {
	a := useTestApp(t)

	out, err := run(t, runSessionsList)
	require.NoError(t, err)
	assert.Contains(t, out, "No partitions registered yet")

	registry, err := a.Registry()
	require.NoError(t, err)
	_, err = bootstrap.EnsurePartitions(a.Ctx(), registry)
	require.NoError(t, err)

	out, err = run(t, runSessionsClear, "b")
	require.NoError(t, err)
	assert.Contains(t, out, "cleared")

	partitions, err := registry.List(a.Ctx())
	require.NoError(t, err)
	require.Len(t, partitions, 2)
	assert.Nil(t, partitions[0].ClearedAt)
	assert.NotNil(t, partitions[1].ClearedAt)
	assert.NoDirExists(t, partitions[1].DataDir)
}

func TestSessionsClear_RejectsUnknownSide(t *testing.T) {
	useTestApp(t)

	_, err := run(t, runSessionsClear, "c")
	require.ErrorIs(t, err, entity.ErrUnknownSide)
}

func TestCommandsRequireApp(t *testing.T) {
	prev := app
	app = nil
	t.Cleanup(func() { app = prev })

	_, err := run(t, runSettingsShow)
	assert.EqualError(t, err, "app not initialized")
}
