package wizard

import (
	"strconv"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"github.com/mark3labs/tripwise/internal/planner"
	"github.com/mark3labs/tripwise/internal/trip"
)

// countField describes a yes/no question with a follow-up count, which is
// the shape of both the history and the companions step.
type countField struct {
	question   string
	offLabel   string // count not applicable
	onLabel    string // count applicable
	countLabel string
	toggle     func(on bool) planner.FieldEvent
	count      func(n int) planner.FieldEvent
	read       func(d trip.TripDraft) (on bool, n int)
}

var historyField = countField{
	question:   "Is this your first time visiting?",
	offLabel:   "First time",
	onLabel:    "Been before",
	countLabel: "Number of previous visits",
	toggle:     func(on bool) planner.FieldEvent { return planner.SetFirstTime{Value: !on} },
	count:      func(n int) planner.FieldEvent { return planner.SetPreviousVisits{Value: n} },
	read: func(d trip.TripDraft) (bool, int) {
		return !d.History.FirstTime, d.History.PreviousVisits
	},
}

var companionsField = countField{
	question:   "Who are you traveling with?",
	offLabel:   "Solo",
	onLabel:    "With companions",
	countLabel: "Number of companions",
	toggle:     func(on bool) planner.FieldEvent { return planner.SetSolo{Value: !on} },
	count:      func(n int) planner.FieldEvent { return planner.SetCompanionCount{Value: n} },
	read: func(d trip.TripDraft) (bool, int) {
		return !d.Companions.IsSolo, d.Companions.CompanionCount
	},
}

const (
	focusToggle = iota
	focusCount
)

// CountStep is a toggle plus a count input shown only when the toggle is on.
type CountStep struct {
	ctrl       *planner.Controller
	field      countField
	countInput textinput.Model
	focusIndex int
	width      int
	height     int
}

// NewHistoryStep creates the travel history step.
func NewHistoryStep(ctrl *planner.Controller) *CountStep {
	return newCountStep(ctrl, historyField)
}

// NewCompanionsStep creates the companions step.
func NewCompanionsStep(ctrl *planner.Controller) *CountStep {
	return newCountStep(ctrl, companionsField)
}

func newCountStep(ctrl *planner.Controller, field countField) *CountStep {
	return &CountStep{
		ctrl:       ctrl,
		field:      field,
		countInput: newInput("1", 2),
		width:      60,
		height:     10,
	}
}

// Reset loads the draft values into the step.
func (s *CountStep) Reset() {
	s.syncInput()
	s.focusIndex = focusToggle
}

func (s *CountStep) on() bool {
	on, _ := s.field.read(s.ctrl.State().Draft())
	return on
}

func (s *CountStep) syncInput() {
	on, n := s.field.read(s.ctrl.State().Draft())
	if on {
		s.countInput.SetValue(strconv.Itoa(n))
	} else {
		s.countInput.SetValue("")
	}
}

// Focus focuses the toggle.
func (s *CountStep) Focus() tea.Cmd {
	s.focusIndex = focusToggle
	return s.updateFocus()
}

// FocusLast focuses the count when visible, else the toggle.
func (s *CountStep) FocusLast() tea.Cmd {
	s.focusIndex = focusToggle
	if s.on() {
		s.focusIndex = focusCount
	}
	return s.updateFocus()
}

// Blur removes focus.
func (s *CountStep) Blur() {
	s.countInput.Blur()
	s.syncInput()
	s.focusIndex = -1
}

// SetSize updates the dimensions for the step.
func (s *CountStep) SetSize(width, height int) {
	s.width = width
	s.height = height
}

func (s *CountStep) updateFocus() tea.Cmd {
	if s.focusIndex == focusCount {
		return s.countInput.Focus()
	}
	s.countInput.Blur()
	s.syncInput()
	return nil
}

// Update handles the toggle and count edits.
func (s *CountStep) Update(msg tea.Msg) tea.Cmd {
	keyMsg, isKey := msg.(tea.KeyPressMsg)
	if isKey {
		switch keyMsg.String() {
		case "tab", "down":
			if s.focusIndex == focusToggle && s.on() {
				s.focusIndex = focusCount
				return s.updateFocus()
			}
			if keyMsg.String() == "tab" {
				return tabExitForward
			}
			return nil
		case "shift+tab", "up":
			if s.focusIndex == focusCount {
				s.focusIndex = focusToggle
				return s.updateFocus()
			}
			if keyMsg.String() == "shift+tab" {
				return tabExitBackward
			}
			return nil
		}
	}

	if s.focusIndex == focusToggle {
		if isKey {
			switch keyMsg.String() {
			case "left", "h":
				s.setOn(false)
			case "right", "l":
				s.setOn(true)
			case "space":
				s.setOn(!s.on())
			}
		}
		return nil
	}

	if s.focusIndex != focusCount {
		return nil
	}

	if isKey {
		switch keyMsg.String() {
		case "+", "=", "ctrl+up":
			s.adjust(1)
			return nil
		case "-", "ctrl+down":
			s.adjust(-1)
			return nil
		}
	}

	var cmd tea.Cmd
	s.countInput, cmd = s.countInput.Update(msg)
	// Non-numeric text leaves the draft at its last valid count.
	if n, err := strconv.Atoi(strings.TrimSpace(s.countInput.Value())); err == nil {
		s.ctrl.Update(s.field.count(n))
	}
	return cmd
}

func (s *CountStep) setOn(on bool) {
	s.ctrl.Update(s.field.toggle(on))
	s.syncInput()
}

func (s *CountStep) adjust(delta int) {
	_, n := s.field.read(s.ctrl.State().Draft())
	s.ctrl.Update(s.field.count(n + delta))
	s.syncInput()
}

// View renders the step.
func (s *CountStep) View() string {
	var b strings.Builder
	on, _ := s.field.read(s.ctrl.State().Draft())

	b.WriteString(focusMarker(s.focusIndex == focusToggle) + labelStyle().Render(s.field.question) + "\n")
	b.WriteString("  " + renderToggle(s.field.offLabel, s.field.onLabel, on, s.focusIndex == focusToggle) + "\n")

	if on {
		b.WriteString("\n")
		b.WriteString(focusMarker(s.focusIndex == focusCount) + labelStyle().Render(s.field.countLabel) + "\n")
		b.WriteString("  " + s.countInput.View() + "\n")
	}

	b.WriteString("\n")
	if s.focusIndex == focusCount {
		b.WriteString(renderHintBar(
			"+/-", "adjust",
			"shift+tab", "toggle",
			"enter", "continue",
			"esc", "back",
		))
	} else {
		b.WriteString(renderHintBar(
			"←→", "choose",
			"tab", "next",
			"enter", "continue",
			"esc", "back",
		))
	}
	return b.String()
}
