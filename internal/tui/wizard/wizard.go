// Package wizard renders the trip-creation wizard as a bubbletea modal on
// top of a planner.Controller.
package wizard

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/mark3labs/tripwise/internal/planner"
	"github.com/mark3labs/tripwise/internal/trip"
	"github.com/mark3labs/tripwise/internal/tui/theme"
)

// Model is the wizard modal. It is hidden until Open is called and hides
// itself again on completion or cancel.
type Model struct {
	ctrl    *planner.Controller
	steps   [planner.StepCount]step
	buttons *ButtonBar
	created *trip.Trip
	blocked string // unmet precondition from the last submit
	width   int
	height  int
}

// New creates a closed wizard. Completion is reported as a TripCreatedMsg,
// so any trip callback in opts is replaced.
func New(opts ...planner.Option) *Model {
	m := &Model{width: 80, height: 24}
	opts = append(opts, planner.WithOnTripCreated(func(t trip.Trip) {
		m.created = &t
	}))
	m.ctrl = planner.NewController(opts...)
	m.steps = [planner.StepCount]step{
		NewDatesStep(m.ctrl),
		NewHistoryStep(m.ctrl),
		NewCompanionsStep(m.ctrl),
		NewReviewStep(m.ctrl),
	}
	m.buttons = NewButtonBar(nil)
	return m
}

// Controller exposes the underlying state machine.
func (m *Model) Controller() *planner.Controller {
	return m.ctrl
}

// IsOpen reports whether the modal is showing.
func (m *Model) IsOpen() bool {
	return m.ctrl.State().IsOpen()
}

// Step returns the current step.
func (m *Model) Step() planner.Step {
	return m.ctrl.State().Step()
}

// Open shows the wizard with a fresh draft.
func (m *Model) Open() tea.Cmd {
	m.ctrl.Open()
	for _, s := range m.steps {
		s.Reset()
	}
	m.blocked = ""
	m.buttons.Blur()
	m.updateSizes()
	return m.current().Focus()
}

func (m *Model) current() step {
	return m.steps[m.ctrl.State().Step()]
}

// SetSize updates the space available to the modal.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.updateSizes()
}

func (m *Model) modalWidth() int {
	w := m.width - 10
	if w < 50 {
		w = 50
	}
	if w > 80 {
		w = 80
	}
	return w
}

func (m *Model) updateSizes() {
	contentWidth := m.modalWidth() - 6
	contentHeight := m.height - 12
	if contentHeight < 8 {
		contentHeight = 8
	}
	for _, s := range m.steps {
		s.SetSize(contentWidth, contentHeight)
	}
	m.buttons.SetWidth(contentWidth)
}

// Update handles messages while the wizard is open.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if !m.IsOpen() {
		return nil
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return nil

	case TabExitForwardMsg:
		m.current().Blur()
		m.refreshButtons()
		m.buttons.FocusFirst()
		return nil

	case TabExitBackwardMsg:
		m.current().Blur()
		m.refreshButtons()
		m.buttons.FocusLast()
		return nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "esc":
			return m.back()
		case "enter":
			if m.buttons.Focused() && m.buttons.FocusedIndex() == 0 {
				return m.back()
			}
			return m.advance()
		}

		if m.buttons.Focused() {
			return m.updateButtons(msg)
		}
	}

	return m.current().Update(msg)
}

// updateButtons handles keys while the button bar has focus.
func (m *Model) updateButtons(msg tea.KeyPressMsg) tea.Cmd {
	m.refreshButtons()
	switch msg.String() {
	case "tab", "right":
		if !m.buttons.FocusNext() {
			if msg.String() == "right" {
				m.buttons.FocusLast()
				return nil
			}
			return m.current().Focus()
		}
	case "shift+tab", "left":
		if !m.buttons.FocusPrev() {
			if msg.String() == "left" {
				m.buttons.FocusFirst()
				return nil
			}
			return m.current().FocusLast()
		}
	}
	return nil
}

// back cancels on the first step and retreats otherwise.
func (m *Model) back() tea.Cmd {
	m.blocked = ""
	m.buttons.Blur()
	if !m.ctrl.State().CanRetreat() {
		m.ctrl.Close()
		return func() tea.Msg { return CancelledMsg{} }
	}
	m.current().Blur()
	m.ctrl.Retreat()
	return m.current().Focus()
}

// advance submits the current step.
func (m *Model) advance() tea.Cmd {
	before := m.ctrl.State().Step()
	m.current().Blur()

	if m.ctrl.Advance() {
		t := *m.created
		m.created = nil
		m.blocked = ""
		m.buttons.Blur()
		return func() tea.Msg { return TripCreatedMsg{Trip: t} }
	}

	m.blocked = ""
	if m.ctrl.State().Step() == before {
		m.blocked = "Please select " + strings.Join(m.ctrl.State().MissingFields(), " and ")
	}
	m.buttons.Blur()
	return m.current().Focus()
}

func (m *Model) refreshButtons() {
	state := m.ctrl.State()
	next := "Next →"
	if state.Step().Terminal() {
		next = "Create Trip"
	}
	m.buttons.SetButtons(CreateBackNextButtons(!state.CanRetreat(), state.CanAdvance(), next))
}

// View renders the modal body without positioning.
func (m *Model) View() string {
	if !m.IsOpen() {
		return ""
	}
	st := theme.Current().S()
	state := m.ctrl.State()

	var sections []string
	sections = append(sections, st.ModalTitle.Render("Plan Your Trip"))
	sections = append(sections, renderIndicator(m.ctrl.Indicator()))
	sections = append(sections, "")
	sections = append(sections, st.HeaderSubtitle.Render(
		fmt.Sprintf("Step %d of %d: %s", int(state.Step())+1, planner.StepCount, state.Step())))
	sections = append(sections, "")
	sections = append(sections, m.current().View())

	if m.blocked != "" {
		sections = append(sections, "", st.Error.Render("✗ "+m.blocked))
	}

	m.refreshButtons()
	sections = append(sections, "", m.buttons.Render())

	return st.ModalContainer.Width(m.modalWidth()).Render(strings.Join(sections, "\n"))
}

// Draw renders the modal centered in area.
func (m *Model) Draw(scr uv.Screen, area uv.Rectangle) {
	content := m.View()
	if content == "" {
		return
	}

	w := lipgloss.Width(content)
	h := lipgloss.Height(content)
	x := area.Min.X + max(0, (area.Dx()-w)/2)
	y := area.Min.Y + max(0, (area.Dy()-h)/2)

	uv.NewStyledString(content).Draw(scr, uv.Rectangle{
		Min: uv.Position{X: x, Y: y},
		Max: uv.Position{X: min(x+w, area.Max.X), Y: min(y+h, area.Max.Y)},
	})
}

// renderIndicator draws the step progress line.
func renderIndicator(steps []planner.StepStatus) string {
	st := theme.Current().S()
	parts := make([]string, 0, len(steps))
	for _, s := range steps {
		switch s.State {
		case planner.StepCompleted:
			parts = append(parts, st.Success.Render(glyphCompleted+" "+s.Name))
		case planner.StepCurrent:
			parts = append(parts, st.HeaderTitle.Render(glyphCurrent+" "+s.Name))
		default:
			parts = append(parts, st.Muted.Render(glyphPending+" "+s.Name))
		}
	}
	return strings.Join(parts, st.Muted.Render(" ─ "))
}
