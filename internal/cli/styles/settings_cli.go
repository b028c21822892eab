package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/duopane/internal/domain/entity"
)

// SettingsCLIRenderer renders non-interactive output for `duopane settings`.
type SettingsCLIRenderer struct {
	theme *Theme
}

func NewSettingsCLIRenderer(theme *Theme) *SettingsCLIRenderer {
	return &SettingsCLIRenderer{theme: theme}
}

// RenderSettings shows the record as the window would lay it out.
func (r *SettingsCLIRenderer) RenderSettings(path string, s entity.Settings) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	keyStyle := r.theme.Subtle
	valStyle := r.theme.Normal

	left, right := s.SideAURL, s.SideBURL
	leftSide, rightSide := "a", "b"
	if s.Swapped {
		left, right = right, left
		leftSide, rightSide = rightSide, leftSide
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("\n  %s Settings %s\n\n", iconStyle.Render(IconConfig), r.theme.Subtle.Render(path)))
	b.WriteString(fmt.Sprintf("    %s %s %s\n", keyStyle.Render("left "), r.theme.BadgeMuted.Render(leftSide), r.url(left)))
	b.WriteString(fmt.Sprintf("    %s %s %s\n", keyStyle.Render("right"), r.theme.BadgeMuted.Render(rightSide), r.url(right)))
	b.WriteString(fmt.Sprintf("    %s %s\n", keyStyle.Render("split"), valStyle.Render(fmt.Sprintf("%g%% / %g%%", s.SplitRatio, 100-s.SplitRatio))))

	swatch := lipgloss.NewStyle().Background(lipgloss.Color(s.DividerColor)).Render("  ")
	b.WriteString(fmt.Sprintf("    %s %s %s\n", keyStyle.Render("color"), swatch, valStyle.Render(s.DividerColor)))

	if s.Swapped {
		b.WriteString(fmt.Sprintf("    %s %s\n", iconStyle.Render(IconSwap), keyStyle.Render("sides swapped")))
	}
	return b.String()
}

func (r *SettingsCLIRenderer) url(u string) string {
	if u == "" {
		return r.theme.WarningStyle.Render("(not set)")
	}
	return r.theme.Highlight.Render(u)
}

func (r *SettingsCLIRenderer) RenderSet(key, value string) string {
	return fmt.Sprintf("%s %s = %s",
		r.theme.SuccessStyle.Render(IconCheck),
		r.theme.Highlight.Render(key),
		r.theme.Normal.Render(value),
	)
}

func (r *SettingsCLIRenderer) RenderSaved(path string) string {
	return fmt.Sprintf("%s Settings saved to %s",
		r.theme.SuccessStyle.Render(IconCheck),
		r.theme.Subtle.Render(path),
	)
}

func (r *SettingsCLIRenderer) RenderError(err error) string {
	return fmt.Sprintf("%s %v", r.theme.ErrorStyle.Render(IconX), err)
}
