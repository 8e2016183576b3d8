package wizard

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/mark3labs/tripwise/internal/planner"
	"github.com/mark3labs/tripwise/internal/tui/theme"
)

// ReviewStep shows the trip summary before the trip is created.
type ReviewStep struct {
	ctrl   *planner.Controller
	width  int
	height int
}

// NewReviewStep creates the review step.
func NewReviewStep(ctrl *planner.Controller) *ReviewStep {
	return &ReviewStep{ctrl: ctrl, width: 60, height: 10}
}

func (s *ReviewStep) Reset()             {}
func (s *ReviewStep) Focus() tea.Cmd     { return nil }
func (s *ReviewStep) FocusLast() tea.Cmd { return nil }
func (s *ReviewStep) Blur()              {}

// SetSize updates the dimensions for the step.
func (s *ReviewStep) SetSize(width, height int) {
	s.width = width
	s.height = height
}

// Update moves focus to the buttons; the review has no inputs.
func (s *ReviewStep) Update(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch keyMsg.String() {
		case "tab":
			return tabExitForward
		case "shift+tab":
			return tabExitBackward
		}
	}
	return nil
}

// View renders the summary.
func (s *ReviewStep) View() string {
	st := theme.Current().S()
	summary := s.ctrl.Summary()

	labelWidth := 0
	for _, line := range summary.Lines() {
		labelWidth = max(labelWidth, lipgloss.Width(line[0]))
	}

	var b strings.Builder
	b.WriteString(st.PanelTitle.Render("Trip Summary") + "\n\n")
	for _, line := range summary.Lines() {
		label := fmt.Sprintf("%-*s", labelWidth, line[0])
		b.WriteString("  " + st.Label.Render(label) + "  " + st.Value.Render(line[1]) + "\n")
	}
	if summary.Warning != "" {
		b.WriteString("\n  " + st.Warning.Render("⚠ "+summary.Warning) + "\n")
	}

	b.WriteString("\n")
	b.WriteString(renderHintBar(
		"enter", "create trip",
		"esc", "back",
	))
	return b.String()
}
