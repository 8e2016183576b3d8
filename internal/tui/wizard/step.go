package wizard

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/mark3labs/tripwise/internal/tui/theme"
)

// step is one screen of the wizard. Steps write straight into the planner
// controller and resync their inputs from its draft on Reset.
type step interface {
	Reset()
	Focus() tea.Cmd
	FocusLast() tea.Cmd
	Blur()
	SetSize(width, height int)
	Update(msg tea.Msg) tea.Cmd
	View() string
}

// newInput creates a textinput styled like the rest of the wizard.
func newInput(placeholder string, limit int) textinput.Model {
	th := theme.Current()

	in := textinput.New()
	in.Placeholder = placeholder
	in.Prompt = ""
	in.CharLimit = limit
	in.SetStyles(textinput.Styles{
		Focused: textinput.StyleState{
			Text:        lipgloss.NewStyle().Foreground(lipgloss.Color(th.FgBase)),
			Placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color(th.FgSubtle)),
			Prompt:      lipgloss.NewStyle().Foreground(lipgloss.Color(th.Secondary)),
		},
		Blurred: textinput.StyleState{
			Text:        lipgloss.NewStyle().Foreground(lipgloss.Color(th.FgSubtle)),
			Placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color(th.FgSubtle)),
			Prompt:      lipgloss.NewStyle().Foreground(lipgloss.Color(th.FgMuted)),
		},
		Cursor: textinput.CursorStyle{
			Color: lipgloss.Color(th.Primary),
			Shape: tea.CursorBar,
			Blink: true,
		},
	})
	in.SetWidth(20)
	return in
}
