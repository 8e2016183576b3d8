package wizard

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"github.com/mark3labs/tripwise/internal/planner"
	"github.com/mark3labs/tripwise/internal/trip"
	"github.com/mark3labs/tripwise/internal/tui/theme"
)

const (
	focusStart = iota
	focusEnd
	focusCity
	datesFieldCount
)

const datePlaceholder = "YYYY-MM-DD"

// DatesStep collects the travel dates and the destination.
type DatesStep struct {
	ctrl       *planner.Controller
	startInput textinput.Model
	endInput   textinput.Model
	focusIndex int
	width      int
	height     int
}

// NewDatesStep creates the dates step.
func NewDatesStep(ctrl *planner.Controller) *DatesStep {
	return &DatesStep{
		ctrl:       ctrl,
		startInput: newInput(datePlaceholder, len(datePlaceholder)),
		endInput:   newInput(datePlaceholder, len(datePlaceholder)),
		width:      60,
		height:     10,
	}
}

// Reset loads the draft dates into the inputs.
func (s *DatesStep) Reset() {
	d := s.ctrl.State().Draft()
	s.startInput.SetValue(d.StartDate)
	s.endInput.SetValue(d.EndDate)
	s.focusIndex = focusStart
}

// Focus focuses the start date.
func (s *DatesStep) Focus() tea.Cmd {
	s.focusIndex = focusStart
	return s.updateFocus()
}

// FocusLast focuses the city selector.
func (s *DatesStep) FocusLast() tea.Cmd {
	s.focusIndex = focusCity
	return s.updateFocus()
}

// Blur removes focus from every field.
func (s *DatesStep) Blur() {
	s.startInput.Blur()
	s.endInput.Blur()
	s.focusIndex = -1
}

// SetSize updates the dimensions for the step.
func (s *DatesStep) SetSize(width, height int) {
	s.width = width
	s.height = height
}

func (s *DatesStep) updateFocus() tea.Cmd {
	s.startInput.Blur()
	s.endInput.Blur()
	switch s.focusIndex {
	case focusStart:
		return s.startInput.Focus()
	case focusEnd:
		return s.endInput.Focus()
	}
	return nil
}

// Update handles navigation and edits. Every edit is pushed to the
// controller; a date only counts once it is complete and valid.
func (s *DatesStep) Update(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch keyMsg.String() {
		case "tab":
			if s.focusIndex == focusCity {
				return tabExitForward
			}
			s.focusIndex++
			return s.updateFocus()
		case "shift+tab":
			if s.focusIndex == focusStart {
				return tabExitBackward
			}
			s.focusIndex--
			return s.updateFocus()
		case "down":
			if s.focusIndex < datesFieldCount-1 {
				s.focusIndex++
			}
			return s.updateFocus()
		case "up":
			if s.focusIndex > focusStart {
				s.focusIndex--
			}
			return s.updateFocus()
		}

		if s.focusIndex == focusCity {
			switch keyMsg.String() {
			case "left", "h":
				s.cycleCity(-1)
			case "right", "l", "space":
				s.cycleCity(1)
			}
			return nil
		}
	}

	var cmd tea.Cmd
	switch s.focusIndex {
	case focusStart:
		s.startInput, cmd = s.startInput.Update(msg)
		s.ctrl.Update(planner.SetStartDate{Value: selectedDate(s.startInput.Value())})
	case focusEnd:
		s.endInput, cmd = s.endInput.Update(msg)
		s.ctrl.Update(planner.SetEndDate{Value: selectedDate(s.endInput.Value())})
	}
	return cmd
}

func (s *DatesStep) cycleCity(delta int) {
	cities := trip.Cities()
	current := s.ctrl.State().Draft().City
	idx := 0
	for i, c := range cities {
		if c == current {
			idx = i
			break
		}
	}
	idx = (idx + delta + len(cities)) % len(cities)
	s.ctrl.Update(planner.SetCity{City: cities[idx]})
}

// selectedDate maps raw input to the draft value: partial or invalid text
// counts as no selection.
func selectedDate(raw string) string {
	raw = strings.TrimSpace(raw)
	if !trip.ValidDate(raw) {
		return ""
	}
	return raw
}

// View renders the step.
func (s *DatesStep) View() string {
	st := theme.Current().S()
	var b strings.Builder

	b.WriteString(focusMarker(s.focusIndex == focusStart) + labelStyle().Render("Start Date") + "\n")
	b.WriteString("  " + s.startInput.View() + "\n")
	b.WriteString(dateError(s.startInput.Value()))
	b.WriteString("\n")

	b.WriteString(focusMarker(s.focusIndex == focusEnd) + labelStyle().Render("End Date") + "\n")
	b.WriteString("  " + s.endInput.View() + "\n")
	b.WriteString(dateError(s.endInput.Value()))
	b.WriteString("\n")

	city := s.ctrl.State().Draft().City
	b.WriteString(focusMarker(s.focusIndex == focusCity) + labelStyle().Render("Destination") + "\n")
	b.WriteString("  " + st.Value.Render("◂ "+string(city)+" ▸") + "\n")

	if w := s.ctrl.Summary().Warning; w != "" {
		b.WriteString("\n" + st.Warning.Render("⚠ "+w) + "\n")
	}

	b.WriteString("\n")
	b.WriteString(renderHintBar(
		"tab", "next field",
		"←→", "city",
		"enter", "continue",
		"esc", "cancel",
	))
	return b.String()
}

func dateError(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" || trip.ValidDate(raw) {
		return ""
	}
	return "  " + theme.Current().S().Error.Render("✗ Use "+datePlaceholder) + "\n"
}
