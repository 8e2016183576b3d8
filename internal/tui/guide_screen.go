package tui

import (
	"fmt"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/mark3labs/tripwise/internal/guide"
	"github.com/mark3labs/tripwise/internal/trip"
	"github.com/mark3labs/tripwise/internal/tui/theme"
)

// GuideScreen is the home screen: a scrollable city guide.
type GuideScreen struct {
	city       trip.City
	guide      guide.Guide
	hasGuide   bool
	viewport   viewport.Model
	renderedAt int // width the content was last rendered at
}

// NewGuideScreen creates the guide screen for city.
func NewGuideScreen(city trip.City) *GuideScreen {
	g, ok := guide.For(city)
	return &GuideScreen{
		city:     city,
		guide:    g,
		hasGuide: ok,
		viewport: viewport.New(),
	}
}

// Title is the panel title for the screen.
func (s *GuideScreen) Title() string {
	if s.hasGuide {
		return fmt.Sprintf("%s, %s", s.guide.City, s.guide.Country)
	}
	return string(s.city)
}

// SetSize resizes the viewport, re-rendering the markdown when the width
// changes.
func (s *GuideScreen) SetSize(width, height int) {
	s.viewport.SetWidth(width)
	s.viewport.SetHeight(height)
	if width == s.renderedAt {
		return
	}
	s.renderedAt = width
	s.viewport.SetContent(s.content(width))
}

func (s *GuideScreen) content(width int) string {
	if !s.hasGuide {
		return theme.Current().S().Muted.Render(
			fmt.Sprintf("No city guide for %s yet. Press p to plan a trip.", s.city))
	}
	return s.guide.Render(width)
}

// Update scrolls the guide.
func (s *GuideScreen) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	s.viewport, cmd = s.viewport.Update(msg)
	return cmd
}

// View returns the visible part of the guide.
func (s *GuideScreen) View() string {
	return s.viewport.View()
}

// Draw renders the guide panel.
func (s *GuideScreen) Draw(scr uv.Screen, area uv.Rectangle) {
	inner := DrawPanel(scr, area, s.Title())
	s.SetSize(inner.Dx(), inner.Dy())
	DrawText(scr, inner, s.View())
}
