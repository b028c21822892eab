package styles_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/duopane/internal/cli/styles"
	"github.com/bnema/duopane/internal/domain/build"
	"github.com/bnema/duopane/internal/domain/entity"
)

func TestNewTheme_AccentOverride(t *testing.T) {
	assert.Equal(t, "#4ade80", string(styles.NewTheme("").Accent))
	assert.Equal(t, "#ff0000", string(styles.NewTheme("#ff0000").Accent))
}

func TestSettingsCLIRenderer_FollowsSwap(t *testing.T) {
	r := styles.NewSettingsCLIRenderer(styles.NewTheme(""))

	s := entity.DefaultSettings()
	s.SideAURL = "https://mail.example"
	s.SplitRatio = 30

	out := r.RenderSettings("/tmp/settings.json", s)
	require.Contains(t, out, "/tmp/settings.json")
	require.Contains(t, out, "https://mail.example")
	require.Contains(t, out, "(not set)")
	require.Contains(t, out, "30% / 70%")
	assert.NotContains(t, out, "sides swapped")

	s.Swapped = true
	out = r.RenderSettings("/tmp/settings.json", s)
	require.Contains(t, out, "sides swapped")
	assert.Less(t, strings.Index(out, "(not set)"), strings.Index(out, "https://mail.example"))

	assert.Contains(t, r.RenderError(errors.New("boom")), "boom")
	assert.Contains(t, r.RenderSet("split_ratio", "40"), "split_ratio")
}

func TestSessionsCLIRenderer(t *testing.T) {
	r := styles.NewSessionsCLIRenderer(styles.NewTheme(""))

	require.Contains(t, r.RenderEmptyList(), "No partitions registered")

	cleared := time.Date(2026, 3, 4, 12, 0, 0, 0, time.UTC)
	out := r.RenderList([]entity.Partition{
		{Side: entity.SideA, Key: "persist:a", DataDir: "/data/persist-a", CreatedAt: time.Date(2026, 1, 2, 12, 0, 0, 0, time.UTC)},
		{Side: entity.SideB, Key: "persist:b", DataDir: "/data/persist-b", CreatedAt: time.Date(2026, 1, 2, 12, 0, 0, 0, time.UTC), ClearedAt: &cleared},
	})
	require.Contains(t, out, "persist:a")
	require.Contains(t, out, "/data/persist-b")
	require.Contains(t, out, "cleared")

	assert.Contains(t, r.RenderCleared(entity.SideB), "side")
}

func TestAboutRenderer(t *testing.T) {
	out := styles.NewAboutRenderer(styles.NewTheme("")).Render(build.Info{Version: "1.2.3", Commit: "abc123"})

	assert.Contains(t, out, "1.2.3")
	assert.Contains(t, out, "abc123")
	assert.Contains(t, out, build.RepoURL())
}
