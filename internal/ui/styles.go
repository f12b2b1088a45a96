package ui

import "github.com/charmbracelet/lipgloss"

// --- Theme Colors ---

var (
	ColorPrimary    = lipgloss.Color("#c7893e") // caramel
	ColorSecondary  = lipgloss.Color("#7a9e7e") // mint
	ColorBackground = lipgloss.Color("#1b1512") // espresso
	ColorText       = lipgloss.Color("#e8e0d8") // foam
	ColorMuted      = lipgloss.Color("#a8998a") // muted text
)

// --- Reusable Styles ---

var (
	NameStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Bold(true)

	PriceStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	DescriptionStyle = lipgloss.NewStyle().
				Foreground(ColorMuted)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	CountStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary)

	ClearStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	ButtonStyle = lipgloss.NewStyle().
			Foreground(ColorBackground).
			Background(ColorMuted).
			Padding(0, 2)

	ButtonFocusStyle = lipgloss.NewStyle().
				Foreground(ColorBackground).
				Background(ColorPrimary).
				Bold(true).
				Padding(0, 2)

	SectionStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary).
			Bold(true)
)
