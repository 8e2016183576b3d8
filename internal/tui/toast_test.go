package tui

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func TestToast_ShowDisplaysMessage(t *testing.T) {
	toast := NewToast()

	cmd := toast.Show("Trip to Istanbul created")

	if !toast.IsVisible() {
		t.Error("expected toast to be visible after Show()")
	}
	if toast.GetMessage() != "Trip to Istanbul created" {
		t.Errorf("unexpected message %q", toast.GetMessage())
	}
	if cmd == nil {
		t.Error("expected Show() to return a command for dismissal")
	}
}

func TestToast_ViewReturnsEmptyWhenNotVisible(t *testing.T) {
	toast := NewToast()

	if view := toast.View(80); view != "" {
		t.Errorf("expected empty view when not visible, got %q", view)
	}
}

func TestToast_ViewRendersMessageWhenVisible(t *testing.T) {
	toast := NewToast()
	toast.Show("saved")

	if view := toast.View(80); !strings.Contains(view, "saved") {
		t.Errorf("expected view to contain message, got %q", view)
	}
}

func TestToast_DismissMsgHidesToast(t *testing.T) {
	toast := NewToast()
	toast.Show("test message")

	cmd := toast.Update(ToastDismissMsg{id: toast.id})

	if toast.IsVisible() {
		t.Error("expected toast to be hidden after ToastDismissMsg")
	}
	if toast.GetMessage() != "" {
		t.Error("expected message to be cleared after dismiss")
	}
	if cmd != nil {
		t.Error("expected no command after dismiss")
	}
}

func TestToast_StaleDismissIsIgnored(t *testing.T) {
	toast := NewToast()
	toast.Show("first")
	stale := ToastDismissMsg{id: toast.id}
	toast.Show("second")

	toast.Update(stale)

	if toast.GetMessage() != "second" {
		t.Errorf("expected 'second' to survive a stale dismiss, got %q", toast.GetMessage())
	}
}

func TestToast_ViewHandlesNarrowWidth(t *testing.T) {
	toast := NewToast()
	toast.Show("very long message that might exceed narrow width")

	if view := toast.View(10); view == "" {
		t.Error("expected view even with narrow width")
	}
}

func TestToast_UpdateIgnoresOtherMessages(t *testing.T) {
	toast := NewToast()
	toast.Show("test")

	cmd := toast.Update(tea.KeyPressMsg{})

	if !toast.IsVisible() {
		t.Error("expected toast to remain visible after unrelated message")
	}
	if cmd != nil {
		t.Error("expected no command for unrelated message")
	}
}
