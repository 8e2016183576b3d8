package tui

import (
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/mark3labs/tripwise/internal/tui/theme"
)

// toastDuration is how long a toast stays on screen.
const toastDuration = 3 * time.Second

// ToastDismissMsg is sent when the toast should be dismissed.
type ToastDismissMsg struct {
	id int
}

// Toast is a minimal toast notification component.
// Shows a message in the bottom-right corner that auto-dismisses.
type Toast struct {
	message string
	visible bool
	id      int // bumped per Show so a stale dismiss cannot hide a newer toast
}

// NewToast creates a new Toast component.
func NewToast() *Toast {
	return &Toast{}
}

// Show displays a toast with the given message and schedules its dismissal.
func (t *Toast) Show(msg string) tea.Cmd {
	t.id++
	t.message = msg
	t.visible = true
	id := t.id
	return tea.Tick(toastDuration, func(time.Time) tea.Msg {
		return ToastDismissMsg{id: id}
	})
}

// Update handles messages for the toast component.
func (t *Toast) Update(msg tea.Msg) tea.Cmd {
	if dismiss, ok := msg.(ToastDismissMsg); ok && dismiss.id == t.id {
		t.visible = false
		t.message = ""
	}
	return nil
}

// View renders the toast, or "" when hidden. Long messages wrap to fit width.
func (t *Toast) View(width int) string {
	if !t.visible || t.message == "" {
		return ""
	}

	style := theme.Current().S().Toast
	content := style.Render(t.message)
	if lipgloss.Width(content) > width-2 && width > 2 {
		content = style.Width(width - 2).Render(t.message)
	}
	return content
}

// IsVisible returns whether the toast is currently visible.
func (t *Toast) IsVisible() bool {
	return t.visible
}

// GetMessage returns the current toast message (empty if not visible).
func (t *Toast) GetMessage() string {
	if !t.visible {
		return ""
	}
	return t.message
}
