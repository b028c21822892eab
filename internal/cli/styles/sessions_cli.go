package styles

import (
	"fmt"
	"strings"
	"time"

	"github.com/bnema/duopane/internal/domain/entity"
)

// SessionsCLIRenderer renders output for `duopane sessions`.
type SessionsCLIRenderer struct {
	theme *Theme
}

func NewSessionsCLIRenderer(theme *Theme) *SessionsCLIRenderer {
	return &SessionsCLIRenderer{theme: theme}
}

func (r *SessionsCLIRenderer) RenderEmptyList() string {
	return r.theme.Subtle.Render("No partitions registered yet. They are created on first launch.")
}

func (r *SessionsCLIRenderer) RenderList(partitions []entity.Partition) string {
	if len(partitions) == 0 {
		return r.RenderEmptyList()
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s %s\n\n", r.theme.Highlight.Render(IconSession), r.theme.Title.Render("Partitions")))
	for _, p := range partitions {
		b.WriteString(r.renderOne(p))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(r.theme.Subtle.Render("Tip: `duopane sessions clear <a|b>` signs a side out of everything."))
	return b.String()
}

func (r *SessionsCLIRenderer) renderOne(p entity.Partition) string {
	state := r.theme.BadgeMuted.Render("created " + p.CreatedAt.Local().Format(time.DateOnly))
	if p.ClearedAt != nil {
		state = r.theme.Badge.Render("cleared " + p.ClearedAt.Local().Format(time.DateOnly))
	}
	return fmt.Sprintf("  %s %s  %s\n    %s %s",
		r.theme.Badge.Render(p.Side.String()),
		r.theme.Highlight.Render(string(p.Key)),
		state,
		r.theme.Subtle.Render(IconFolder),
		r.theme.Subtle.Render(p.DataDir),
	)
}

func (r *SessionsCLIRenderer) RenderCleared(side entity.Side) string {
	return fmt.Sprintf("%s Session data of side %s cleared.",
		r.theme.SuccessStyle.Render(IconTrash),
		r.theme.Highlight.Render(side.String()),
	)
}

func (r *SessionsCLIRenderer) RenderError(err error) string {
	return fmt.Sprintf("%s %v", r.theme.ErrorStyle.Render(IconX), err)
}
