package wizard

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/mark3labs/tripwise/internal/tui/theme"
)

// ButtonState represents the visual state of a button.
type ButtonState int

const (
	ButtonNormal   ButtonState = iota // Normal state (enabled)
	ButtonDisabled                    // Disabled state (grayed out)
	ButtonFocused                     // Focused/highlighted state
)

// Button represents a single button in the button bar.
type Button struct {
	Label string
	State ButtonState
}

// ButtonBar manages a set of buttons with consistent styling and an
// optional keyboard focus.
type ButtonBar struct {
	buttons []Button
	focus   int // -1 when the bar is not focused
	width   int
}

// NewButtonBar creates a new button bar with the given buttons.
func NewButtonBar(buttons []Button) *ButtonBar {
	return &ButtonBar{
		buttons: buttons,
		focus:   -1,
		width:   60,
	}
}

// SetButtons replaces the buttons, keeping focus when still in range.
func (b *ButtonBar) SetButtons(buttons []Button) {
	b.buttons = buttons
	if b.focus >= len(buttons) {
		b.focus = len(buttons) - 1
	}
}

// SetWidth updates the width for the button bar.
func (b *ButtonBar) SetWidth(width int) {
	b.width = width
}

// Focused reports whether any button has focus.
func (b *ButtonBar) Focused() bool {
	return b.focus >= 0
}

// FocusedIndex returns the focused button, or -1.
func (b *ButtonBar) FocusedIndex() int {
	return b.focus
}

// FocusFirst focuses the first enabled button.
func (b *ButtonBar) FocusFirst() {
	b.focus = -1
	b.FocusNext()
}

// FocusLast focuses the last enabled button.
func (b *ButtonBar) FocusLast() {
	for i := len(b.buttons) - 1; i >= 0; i-- {
		if b.buttons[i].State != ButtonDisabled {
			b.focus = i
			return
		}
	}
	b.focus = -1
}

// FocusNext moves focus to the next enabled button. It returns false when
// focus runs off the end, leaving the bar unfocused.
func (b *ButtonBar) FocusNext() bool {
	for i := b.focus + 1; i < len(b.buttons); i++ {
		if b.buttons[i].State != ButtonDisabled {
			b.focus = i
			return true
		}
	}
	b.focus = -1
	return false
}

// FocusPrev moves focus to the previous enabled button. It returns false
// when focus runs off the start.
func (b *ButtonBar) FocusPrev() bool {
	start := b.focus - 1
	if b.focus < 0 {
		start = len(b.buttons) - 1
	}
	for i := start; i >= 0; i-- {
		if b.buttons[i].State != ButtonDisabled {
			b.focus = i
			return true
		}
	}
	b.focus = -1
	return false
}

// Blur removes focus from the bar.
func (b *ButtonBar) Blur() {
	b.focus = -1
}

// Render renders the button bar with proper spacing and styling.
func (b *ButtonBar) Render() string {
	if len(b.buttons) == 0 {
		return ""
	}

	th := theme.Current()
	base := lipgloss.NewStyle().
		Padding(0, 2).
		MarginLeft(1).
		MarginRight(1)

	normalStyle := base.
		Foreground(lipgloss.Color(th.FgBase)).
		Background(lipgloss.Color(th.BgSurface0))

	disabledStyle := base.
		Foreground(lipgloss.Color(th.FgMuted)).
		Background(lipgloss.Color(th.BgMantle))

	focusedStyle := base.
		Foreground(lipgloss.Color(th.BgBase)).
		Background(lipgloss.Color(th.Secondary)).
		Bold(true)

	rendered := make([]string, 0, len(b.buttons))
	for i, btn := range b.buttons {
		state := btn.State
		if i == b.focus && state != ButtonDisabled {
			state = ButtonFocused
		}
		switch state {
		case ButtonDisabled:
			rendered = append(rendered, disabledStyle.Render(btn.Label))
		case ButtonFocused:
			rendered = append(rendered, focusedStyle.Render("▸ "+btn.Label))
		default:
			rendered = append(rendered, normalStyle.Render(btn.Label))
		}
	}

	return lipgloss.PlaceHorizontal(b.width, lipgloss.Center, strings.Join(rendered, ""))
}

// CreateBackNextButtons creates standard Back/Next button set.
// On the first step the back button cancels the wizard instead.
func CreateBackNextButtons(firstStep, nextEnabled bool, nextLabel string) []Button {
	backLabel := "← Back"
	if firstStep {
		backLabel = "Cancel"
	}

	nextState := ButtonNormal
	if !nextEnabled {
		nextState = ButtonDisabled
	}

	return []Button{
		{Label: backLabel, State: ButtonNormal},
		{Label: nextLabel, State: nextState},
	}
}
