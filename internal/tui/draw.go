package tui

import (
	"strings"

	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/mark3labs/tripwise/internal/tui/theme"
)

// DrawText renders plain text at a position
func DrawText(scr uv.Screen, area uv.Rectangle, text string) {
	uv.NewStyledString(text).Draw(scr, area)
}

// DrawStyled renders lipgloss-styled content at a position
func DrawStyled(scr uv.Screen, area uv.Rectangle, style lipgloss.Style, text string) {
	content := style.Width(area.Dx()).Height(area.Dy()).Render(text)
	uv.NewStyledString(content).Draw(scr, area)
}

// DrawPanel renders a panel with a title header and returns the inner content area.
// The header shows "Title ────────" with a trailing rule line.
func DrawPanel(scr uv.Screen, area uv.Rectangle, title string) uv.Rectangle {
	headerHeight := 0

	if title != "" {
		headerHeight = 1
		s := theme.Current().S()

		styledTitle := s.PanelTitle.Render(title)
		ruleWidth := area.Dx() - lipgloss.Width(styledTitle) - 1 // -1 for space
		if ruleWidth < 0 {
			ruleWidth = 0
		}
		headerText := styledTitle + " " + s.Muted.Render(strings.Repeat("─", ruleWidth))

		uv.NewStyledString(headerText).Draw(scr, uv.Rectangle{
			Min: uv.Position{X: area.Min.X, Y: area.Min.Y},
			Max: uv.Position{X: area.Max.X, Y: area.Min.Y + 1},
		})
	}

	innerHeight := area.Dy() - headerHeight
	if innerHeight < 0 {
		innerHeight = 0
	}

	return uv.Rectangle{
		Min: uv.Position{X: area.Min.X, Y: area.Min.Y + headerHeight},
		Max: uv.Position{X: area.Max.X, Y: area.Min.Y + headerHeight + innerHeight},
	}
}

// splitRows cuts area into a fixed-height top row, a flexible body and a
// fixed-height bottom row.
func splitRows(area uv.Rectangle, top, bottom int) (uv.Rectangle, uv.Rectangle, uv.Rectangle) {
	top = min(top, area.Dy())
	bottom = min(bottom, area.Dy()-top)
	header := uv.Rect(area.Min.X, area.Min.Y, area.Dx(), top)
	body := uv.Rect(area.Min.X, area.Min.Y+top, area.Dx(), area.Dy()-top-bottom)
	footer := uv.Rect(area.Min.X, area.Max.Y-bottom, area.Dx(), bottom)
	return header, body, footer
}

// splitColumns cuts area into a left column of the given width and the rest,
// separated by gap cells.
func splitColumns(area uv.Rectangle, left, gap int) (uv.Rectangle, uv.Rectangle) {
	left = min(left, area.Dx())
	l := uv.Rect(area.Min.X, area.Min.Y, left, area.Dy())
	rx := min(area.Min.X+left+gap, area.Max.X)
	r := uv.Rect(rx, area.Min.Y, area.Max.X-rx, area.Dy())
	return l, r
}
