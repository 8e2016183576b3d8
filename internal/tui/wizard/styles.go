package wizard

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/mark3labs/tripwise/internal/tui/theme"
)

// Indicator glyphs
const (
	glyphCompleted = "✓"
	glyphCurrent   = "●"
	glyphPending   = "○"
)

func labelStyle() lipgloss.Style {
	return theme.Current().S().Label
}

// renderHintBar renders a hint bar with the given key-description pairs.
// Example: renderHintBar("tab", "next", "enter", "continue", "esc", "back")
// Returns: "tab next • enter continue • esc back"
func renderHintBar(pairs ...string) string {
	if len(pairs) == 0 || len(pairs)%2 != 0 {
		return ""
	}

	s := theme.Current().S()
	parts := make([]string, 0, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		parts = append(parts, s.HintKey.Render(pairs[i])+" "+s.HintDesc.Render(pairs[i+1]))
	}
	return strings.Join(parts, " "+s.HintSeparator.Render("•")+" ")
}

// renderToggle draws a two-option switch with the active side highlighted.
func renderToggle(left, right string, rightActive, focused bool) string {
	th := theme.Current()
	active := lipgloss.NewStyle().
		Foreground(lipgloss.Color(th.BgBase)).
		Background(lipgloss.Color(th.Secondary)).
		Bold(true).
		Padding(0, 2)
	if !focused {
		active = active.Background(lipgloss.Color(th.BgSurface2)).Foreground(lipgloss.Color(th.FgBase))
	}
	inactive := lipgloss.NewStyle().
		Foreground(lipgloss.Color(th.FgSubtle)).
		Background(lipgloss.Color(th.BgSurface0)).
		Padding(0, 2)

	if rightActive {
		return inactive.Render(left) + " " + active.Render(right)
	}
	return active.Render(left) + " " + inactive.Render(right)
}

// focusMarker prefixes the focused row.
func focusMarker(focused bool) string {
	if focused {
		return theme.Current().S().HeaderTitle.Render("▸ ")
	}
	return "  "
}
