package tui

import (
	"github.com/mark3labs/tripwise/internal/tui/theme"
)

// Standard key representations for consistent hints across the app.
const (
	KeyUpDownJK = "↑↓/jk"
	KeyPgUpDown = "pgup/pgdn"
	KeyEnter    = "enter"
	KeyEsc      = "esc"
	KeyP        = "p"
	KeyX        = "x"
	KeyQ        = "q"
)

// RenderHint renders a single key-description pair.
// Example: RenderHint("enter", "select") -> "enter select"
func RenderHint(key, desc string) string {
	s := theme.Current().S()
	return s.HintKey.Render(key) + " " + s.HintDesc.Render(desc)
}

// RenderHintBar renders a hint bar with multiple key-description pairs.
// Example: RenderHintBar("p", "plan trip", "q", "quit")
// Returns: "p plan trip • q quit"
func RenderHintBar(pairs ...string) string {
	if len(pairs) == 0 || len(pairs)%2 != 0 {
		return ""
	}

	s := theme.Current().S()
	var result string

	for i := 0; i < len(pairs); i += 2 {
		if i > 0 {
			result += " " + s.HintSeparator.Render("•") + " "
		}
		result += RenderHint(pairs[i], pairs[i+1])
	}

	return result
}

// HintGuide returns hints for the city guide screen.
func HintGuide() string {
	return RenderHintBar(KeyP, "plan trip", KeyUpDownJK, "scroll", KeyPgUpDown, "page", KeyQ, "quit")
}

// HintItinerary returns hints for the itinerary screen.
func HintItinerary() string {
	return RenderHintBar(KeyUpDownJK, "select", KeyX, "clear", KeyEsc, "city info", KeyQ, "quit")
}
