package components

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
)

var (
	borderColor       = lipgloss.Color("#3a2f2a")
	borderActiveColor = lipgloss.Color("#c7893e")

	boxBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(borderColor).
			Padding(1, 2)

	boxHeaderStyle = lipgloss.NewStyle().
			Foreground(borderActiveColor).
			Bold(true)

	cardBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(borderColor).
			Padding(0, 1)

	cardBorderActive = cardBorder.
				BorderForeground(borderActiveColor)
)

func boxWidth(width int) int {
	// ~80% of the terminal, between 40 and 100 columns
	if width <= 0 {
		return 0
	}
	w := width * 80 / 100
	if w < 40 {
		w = 40
	}
	if w > 100 {
		w = 100
	}
	return w
}

func safeBoxWidth(width int) int {
	if width <= 0 {
		return boxWidth(width)
	}
	w := boxWidth(width)
	if w > width {
		return width
	}
	return w
}

// innerWidth converts an outer box width to the lipgloss Width value, which
// excludes the border.
func innerWidth(outer int) int {
	if outer <= 2 {
		return 0
	}
	return outer - 2
}

// Box renders content inside a bordered box.
func Box(content string, width int) string {
	return boxBorder.Width(innerWidth(safeBoxWidth(width))).Render(content)
}

// BoxContentWidth returns the inner content width excluding border and padding.
func BoxContentWidth(width int) int {
	w := safeBoxWidth(width)
	if w <= 0 {
		return 0
	}
	// Border adds 2, padding adds 4 (left+right).
	inner := w - 6
	if inner < 0 {
		return 0
	}
	return inner
}

// Card renders one result card. Width is the full outer width; zero lets
// the card size to its content.
func Card(content string, width int, active bool) string {
	style := cardBorder
	if active {
		style = cardBorderActive
	}
	if w := innerWidth(width); w > 0 {
		style = style.Width(w)
	}
	return style.Render(content)
}

// ClampTextWidth truncates text to the given visual width.
func ClampTextWidth(text string, width int) string {
	cleaned := SanitizeOneLine(text)
	if width <= 0 || lipgloss.Width(cleaned) <= width {
		return cleaned
	}
	if width == 1 {
		return "…"
	}
	return truncateRunes(cleaned, width-1) + "…"
}

// TitledBox renders a box with the title set into the top border.
func TitledBox(title, content string, width int) string {
	boxed := boxBorder.Width(innerWidth(safeBoxWidth(width))).Render(content)
	if title == "" {
		return boxed
	}
	lines := strings.Split(boxed, "\n")
	lineWidth := lipgloss.Width(lines[0])
	if lineWidth < 4 {
		return boxed
	}

	border := lipgloss.RoundedBorder()
	middleLen := lineWidth - 2
	titleText := fmt.Sprintf(" %s ", title)
	if lipgloss.Width(titleText) > middleLen {
		titleText = truncateRunes(titleText, middleLen)
	}
	titleWidth := lipgloss.Width(titleText)

	// Title sits two columns in from the left corner when it fits.
	left := 2
	if left+titleWidth > middleLen {
		left = 0
	}
	right := middleLen - titleWidth - left
	if right < 0 {
		right = 0
	}

	borderStyle := lipgloss.NewStyle().Foreground(borderColor)
	line := borderStyle.Render(border.TopLeft+strings.Repeat(border.Top, left)) +
		boxHeaderStyle.Render(titleText) +
		borderStyle.Render(strings.Repeat(border.Top, right)+border.TopRight)
	lines[0] = line
	return strings.Join(lines, "\n")
}

func truncateRunes(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	var b strings.Builder
	n := 0
	for _, r := range s {
		if n >= max {
			break
		}
		b.WriteRune(r)
		n++
	}
	return b.String()
}

// Indent adds left padding to every line of a multi-line string.
func Indent(s string, spaces int) string {
	pad := strings.Repeat(" ", spaces)
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = pad + l
	}
	return strings.Join(lines, "\n")
}

// CenterLine centers a single line within width columns.
func CenterLine(s string, width int) string {
	if width <= 0 {
		return s
	}
	lineWidth := lipgloss.Width(s)
	if lineWidth >= width {
		return s
	}
	return strings.Repeat(" ", (width-lineWidth)/2) + s
}
