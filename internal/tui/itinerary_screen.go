package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/mark3labs/tripwise/internal/catalog"
	"github.com/mark3labs/tripwise/internal/guide"
	"github.com/mark3labs/tripwise/internal/itinerary"
	"github.com/mark3labs/tripwise/internal/tui/theme"
)

// ItineraryScreen shows the POI list and the map panel for one trip.
type ItineraryScreen struct {
	view *itinerary.View
}

// NewItineraryScreen wraps an itinerary for display.
func NewItineraryScreen(v *itinerary.View) *ItineraryScreen {
	return &ItineraryScreen{view: v}
}

// Itinerary exposes the underlying selection state.
func (s *ItineraryScreen) Itinerary() *itinerary.View {
	return s.view
}

// Update moves the selection. It reports whether the user asked to go back.
func (s *ItineraryScreen) Update(msg tea.KeyPressMsg) (back bool) {
	switch msg.String() {
	case "down", "j":
		s.view.SelectNext()
	case "up", "k":
		s.view.SelectPrev()
	case "x", "space":
		s.view.Deselect()
	case "esc", "b":
		return true
	}
	return false
}

// HeaderLine renders "City · dates · N days".
func (s *ItineraryScreen) HeaderLine() string {
	h := s.view.Header()
	days := "days"
	if h.Days == 1 || h.Days == -1 {
		days = "day"
	}
	return fmt.Sprintf("%s · %s · %d %s", h.City, h.DateRange, h.Days, days)
}

// renderCard renders one POI; the selected card gets the highlight border.
func (s *ItineraryScreen) renderCard(p catalog.POI, width int) string {
	st := theme.Current().S()
	style := st.Card
	if s.view.IsSelected(p.ID) {
		style = st.CardSelected
	}

	var b strings.Builder
	b.WriteString(st.CardTitle.Render(p.Name))
	if p.Type != "" {
		b.WriteString("  " + st.Tag.Render(p.Type))
	}
	b.WriteString("\n")
	if p.Description != "" {
		b.WriteString(st.Muted.Render(p.Description) + "\n")
	}
	b.WriteString(st.Value.Render("📍 " + p.Coordinates()))
	return style.Width(width).Render(b.String())
}

// Cards renders the POI list, dropping leading cards until the selection
// fits in height.
func (s *ItineraryScreen) Cards(width, height int) string {
	pois := s.view.POIs()
	if len(pois) == 0 {
		return theme.Current().S().Muted.Render("No points of interest for this city.")
	}

	cards := make([]string, len(pois))
	selected := -1
	for i, p := range pois {
		cards[i] = s.renderCard(p, width)
		if s.view.IsSelected(p.ID) {
			selected = i
		}
	}

	start := 0
	if selected >= 0 {
		for start < selected && stackHeight(cards[start:selected+1]) > height {
			start++
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, cards[start:]...)
}

func stackHeight(cards []string) int {
	h := 0
	for _, c := range cards {
		h += lipgloss.Height(c)
	}
	return h
}

// MapPanel renders the map focus and, when a POI is selected, its details.
func (s *ItineraryScreen) MapPanel(width int) string {
	st := theme.Current().S()
	focus := s.view.MapFocus()

	var b strings.Builder
	if p, ok := s.view.Selected(); ok && focus.Marker {
		b.WriteString(st.Success.Render("📍 "+p.Name) + "\n")
	} else {
		b.WriteString(st.Muted.Render("City center") + "\n")
	}
	b.WriteString(st.Label.Render("Lat/Lng ") + st.Value.Render(fmt.Sprintf("%.4f, %.4f", focus.Lat, focus.Lng)) + "\n")
	b.WriteString(st.Label.Render("Zoom    ") + st.Value.Render(fmt.Sprintf("%d", focus.Zoom)) + "\n")

	if p, ok := s.view.Selected(); ok {
		b.WriteString("\n")
		b.WriteString(guide.RenderMarkdown(poiMarkdown(p), width))
	}
	return b.String()
}

func poiMarkdown(p catalog.POI) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## %s\n\n", p.Name)
	if p.Type != "" {
		fmt.Fprintf(&b, "*%s*\n\n", p.Type)
	}
	if p.Description != "" {
		b.WriteString(p.Description + "\n")
	}
	return b.String()
}

// Draw lays out the header, the POI list and the map panel.
func (s *ItineraryScreen) Draw(scr uv.Screen, area uv.Rectangle) {
	st := theme.Current().S()
	header, body, _ := splitRows(area, 2, 0)
	DrawText(scr, header, st.HeaderTitle.Render(s.HeaderLine()))

	listWidth := body.Dx() * 3 / 5
	listArea, mapArea := splitColumns(body, listWidth, 2)

	inner := DrawPanel(scr, listArea, "Points of Interest")
	DrawText(scr, inner, s.Cards(inner.Dx(), inner.Dy()))

	inner = DrawPanel(scr, mapArea, "Map")
	DrawText(scr, inner, s.MapPanel(inner.Dx()))
}
