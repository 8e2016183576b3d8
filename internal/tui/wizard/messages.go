package wizard

import (
	tea "charm.land/bubbletea/v2"
	"github.com/mark3labs/tripwise/internal/trip"
)

// TripCreatedMsg is sent once when the wizard completes.
type TripCreatedMsg struct {
	Trip trip.Trip
}

// CancelledMsg is sent when the wizard is dismissed without a trip.
type CancelledMsg struct{}

// TabExitForwardMsg is sent when Tab is pressed on the last input.
// Parent should move focus to buttons.
type TabExitForwardMsg struct{}

// TabExitBackwardMsg is sent when Shift+Tab is pressed on the first input.
// Parent should move focus to buttons (from end).
type TabExitBackwardMsg struct{}

func tabExitForward() tea.Msg {
	return TabExitForwardMsg{}
}

func tabExitBackward() tea.Msg {
	return TabExitBackwardMsg{}
}
