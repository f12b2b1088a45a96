package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	hintDescStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#a8998a"))
	keyCapStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#1b1512")).
			Background(lipgloss.Color("#a8998a")).
			Bold(true).
			Padding(0, 1)
	statusBarStyle = lipgloss.NewStyle().
			PaddingTop(1)
)

const hintGap = "   "

// StatusBar renders the key hints under the menu, wrapping to width.
func StatusBar(hints []string, width int) string {
	if len(hints) == 0 {
		return ""
	}
	segments := make([]string, len(hints))
	for i, h := range hints {
		segments[i] = h + hintGap
	}
	rows := wrapSegments(segments, width)
	for i, row := range rows {
		rows[i] = CenterLine(strings.TrimRight(row, " "), width)
	}
	return statusBarStyle.Render(strings.Join(rows, "\n"))
}

// Hint formats a single keybind hint like "scroll ↑/↓".
func Hint(key, desc string) string {
	return hintDescStyle.Render(desc+" ") + keyCapStyle.Render(key)
}

func wrapSegments(segments []string, width int) []string {
	if width <= 0 {
		return []string{lipgloss.JoinHorizontal(lipgloss.Top, segments...)}
	}
	rows := make([]string, 0, 2)
	var current []string
	currentWidth := 0
	for _, seg := range segments {
		segWidth := lipgloss.Width(seg)
		if currentWidth > 0 && currentWidth+segWidth > width {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, current...))
			current = []string{seg}
			currentWidth = segWidth
			continue
		}
		current = append(current, seg)
		currentWidth += segWidth
	}
	if len(current) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, current...))
	}
	return rows
}
