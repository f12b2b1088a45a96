package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	chipStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#d9cfc4")).
			Background(lipgloss.Color("#3a2f2a")).
			Padding(0, 1)

	chipActiveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#1b1512")).
			Background(lipgloss.Color("#c7893e")).
			Bold(true).
			Padding(0, 1)

	chipFocusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#c7893e")).
			Bold(true)
)

// Chip renders one label. Active chips are filled; focused chips get a
// cursor marker in front.
func Chip(label string, active, focused bool) string {
	style := chipStyle
	if active {
		style = chipActiveStyle
	}
	out := style.Render(SanitizeOneLine(label))
	if focused {
		return chipFocusStyle.Render("›") + out
	}
	return " " + out
}

// ChipRow lays chips out left to right, wrapping at width. focused is the
// index carrying the cursor, or -1.
func ChipRow(labels []string, active func(string) bool, focused int, width int) string {
	if len(labels) == 0 {
		return ""
	}
	chips := make([]string, len(labels))
	for i, label := range labels {
		chips[i] = Chip(label, active != nil && active(label), i == focused)
	}
	rows := wrapSegments(chips, width)
	return strings.Join(rows, "\n")
}
