package guide

import (
	"fmt"
	"strings"

	"charm.land/glamour/v2"
)

const barWidth = 20

// Markdown renders the guide as a markdown document.
func (g Guide) Markdown() string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", g.City)
	fmt.Fprintf(&b, "*%s*\n\n", g.Country)
	fmt.Fprintf(&b, "%s\n\n", g.Tagline)

	writeFacts(&b, "WiFi Information", g.WiFi)

	b.WriteString("## Life Quality Indices\n\n")
	for _, idx := range g.Quality {
		fmt.Fprintf(&b, "- **%s** `%s` %d%%\n", idx.Name, bar(idx.Value), idx.Value)
	}
	b.WriteString("\n")

	writeFacts(&b, "Emergency Numbers", g.Emergency)
	writeFacts(&b, "Power Information", g.Power)

	b.WriteString("## Best Time to Visit\n\n")
	b.WriteString("| Season | Months | Temperature | Crowds |\n")
	b.WriteString("|---|---|---|---|\n")
	for _, s := range g.Seasons {
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", s.Name, s.Months, s.Temperature, s.Crowds)
	}
	b.WriteString("\n")
	for _, s := range g.Seasons {
		fmt.Fprintf(&b, "- **%s**: %s\n", s.Name, s.Description)
	}
	b.WriteString("\n")

	writeFacts(&b, "Events & Festivals", g.Events)

	return b.String()
}

func writeFacts(b *strings.Builder, title string, facts []Fact) {
	fmt.Fprintf(b, "## %s\n\n", title)
	for _, f := range facts {
		fmt.Fprintf(b, "- **%s**: %s\n", f.Label, f.Value)
	}
	b.WriteString("\n")
}

// bar draws a fixed-width meter for a 0-100 value.
func bar(value int) string {
	if value < 0 {
		value = 0
	}
	if value > 100 {
		value = 100
	}
	filled := value * barWidth / 100
	return strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
}

// Render renders the guide for a terminal of the given width.
func (g Guide) Render(width int) string {
	return RenderMarkdown(g.Markdown(), width)
}

// RenderMarkdown renders markdown with glamour. Falls back to the raw text
// if rendering fails.
func RenderMarkdown(content string, width int) string {
	if width > 120 {
		width = 120
	}
	if width < 20 {
		width = 20
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return content
	}

	rendered, err := r.Render(content)
	if err != nil {
		return content
	}

	// Remove trailing newline that glamour adds
	return strings.TrimSuffix(rendered, "\n")
}
