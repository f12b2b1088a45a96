package ui

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gravitrone/drinkmenu/internal/menu"
	"github.com/gravitrone/drinkmenu/internal/ui/components"
)

// --- Focus Zones ---

type focusZone int

const (
	focusInput focusZone = iota
	focusCategories
	focusResults
	zoneCount
)

const (
	searchPlaceholder = "Search by drink name, category, or description..."
	clearSearchLabel  = "Clear Search"
	clearGlyph        = "✕"
	cardHeight        = 5
	defaultPageSize   = 4
)

// --- Messages ---

// DrinksMsg replaces the drink list shown by a running MenuModel.
type DrinksMsg struct {
	Drinks []menu.Drink
}

// --- Menu Model ---

// MenuModel is the searchable, category-filterable drink list.
type MenuModel struct {
	menu       *menu.Menu
	input      textinput.Model
	focus      focusZone
	catCursor  int
	chipCursor int
	list       *components.List
	logger     *slog.Logger
	width      int
	height     int
}

// NewMenuModel builds the view over m. A nil logger discards output.
func NewMenuModel(m *menu.Menu, logger *slog.Logger) MenuModel {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	ti := textinput.New()
	ti.Placeholder = searchPlaceholder
	ti.Prompt = "> "
	ti.SetValue(m.Query())
	ti.Focus()

	list := components.NewList(defaultPageSize)
	list.SetLen(m.Count())
	return MenuModel{
		menu:   m,
		input:  ti,
		focus:  focusInput,
		list:   list,
		logger: logger,
	}
}

func (m MenuModel) Init() tea.Cmd {
	return textinput.Blink
}

// Query returns the current search text.
func (m MenuModel) Query() string {
	return m.menu.Query()
}

func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = maxInt(10, components.BoxContentWidth(m.width)-len(m.input.Prompt)-4)
		m.list.SetPageSize(pageSizeFor(m.height))
		return m, nil
	case DrinksMsg:
		m.menu.SetDrinks(msg.Drinks)
		if n := len(m.menu.Categories()); m.catCursor >= n {
			m.catCursor = maxInt(0, n-1)
		}
		m.list.SetLen(m.menu.Count())
		m.chipCursor = 0
		m.logger.Debug("drinks replaced", "drinks", len(msg.Drinks), "matches", m.menu.Count())
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.focus == focusInput {
		return m.updateInput(msg)
	}
	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case isForceQuit(msg):
		return m, tea.Quit
	case isNextZone(msg):
		return m.setFocus((m.focus + 1) % zoneCount), nil
	case isPrevZone(msg):
		return m.setFocus((m.focus + zoneCount - 1) % zoneCount), nil
	case isBack(msg), isClearLine(msg):
		if m.menu.Query() != "" {
			m.clearQuery()
			return m, nil
		}
		if m.focus != focusInput {
			return m.setFocus(focusInput), nil
		}
		return m, nil
	}

	switch m.focus {
	case focusCategories:
		return m.handleCategoryKey(msg)
	case focusResults:
		return m.handleResultsKey(msg)
	}

	if isDown(msg, false) {
		return m.setFocus(focusResults), nil
	}
	return m.updateInput(msg)
}

func (m MenuModel) handleCategoryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cats := m.menu.Categories()
	switch {
	case isQuit(msg):
		return m, tea.Quit
	case isLeft(msg):
		if m.catCursor > 0 {
			m.catCursor--
		}
	case isRight(msg):
		if m.catCursor < len(cats)-1 {
			m.catCursor++
		}
	case isDown(msg, true):
		return m.setFocus(focusResults), nil
	case isEnter(msg), isSpace(msg):
		if m.catCursor < len(cats) {
			m.selectCategory(cats[m.catCursor])
		}
	}
	return m, nil
}

func (m MenuModel) handleResultsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case isQuit(msg):
		return m, tea.Quit
	case isDown(msg, true):
		m.moveCard(1)
	case isUp(msg, true):
		if m.list.Selected() == 0 {
			return m.setFocus(focusCategories), nil
		}
		m.moveCard(-1)
	case isLeft(msg):
		if m.chipCursor > 0 {
			m.chipCursor--
		}
	case isRight(msg):
		if d, ok := m.menu.At(m.list.Selected()); ok && m.chipCursor < len(d.Categories)-1 {
			m.chipCursor++
		}
	case isEnter(msg), isSpace(msg):
		if m.menu.Empty() {
			m.clearQuery()
			return m, nil
		}
		if d, ok := m.menu.At(m.list.Selected()); ok && m.chipCursor < len(d.Categories) {
			m.selectCategory(d.Categories[m.chipCursor])
		}
	}
	return m, nil
}

func (m MenuModel) updateInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if v := m.input.Value(); v != m.menu.Query() {
		m.applyQuery(v)
	}
	return m, cmd
}

func (m MenuModel) setFocus(zone focusZone) MenuModel {
	m.focus = zone
	if zone == focusInput {
		m.input.Focus()
	} else {
		m.input.Blur()
	}
	return m
}

func (m *MenuModel) moveCard(delta int) {
	if delta > 0 {
		m.list.Down()
	} else {
		m.list.Up()
	}
	m.chipCursor = 0
}

// applyQuery pushes text into the menu state and resets the result cursor.
func (m *MenuModel) applyQuery(text string) {
	m.menu.SetQuery(text)
	m.list.SetLen(m.menu.Count())
	m.chipCursor = 0
	m.logger.Debug("query changed", "query", text, "matches", m.menu.Count())
}

func (m *MenuModel) selectCategory(cat string) {
	m.input.SetValue(cat)
	m.input.CursorEnd()
	m.applyQuery(cat)
	m.logger.Debug("category selected", "category", cat)
}

func (m *MenuModel) clearQuery() {
	m.input.Reset()
	m.applyQuery("")
}

// --- View ---

func (m MenuModel) View() string {
	contentWidth := components.BoxContentWidth(m.width)

	var b strings.Builder
	b.WriteString(m.renderInput())
	if m.menu.ShowCount() {
		b.WriteString("\n")
		b.WriteString(CountStyle.Render(menu.CountLabel(m.menu.Count())))
	}
	b.WriteString("\n\n")

	if cats := m.menu.Categories(); len(cats) > 0 {
		focused := -1
		if m.focus == focusCategories {
			focused = m.catCursor
		}
		b.WriteString(SectionStyle.Render("Categories"))
		b.WriteString("\n")
		b.WriteString(components.ChipRow(cats, m.menu.IsActiveCategory, focused, contentWidth))
		b.WriteString("\n\n")
	}

	if m.menu.Empty() {
		b.WriteString(m.renderEmpty(contentWidth))
	} else {
		b.WriteString(m.renderCards(contentWidth))
	}

	hints := []string{
		components.Hint("tab", "focus"),
		components.Hint("↑/↓", "browse"),
		components.Hint("enter", "filter"),
	}
	if m.menu.ShowClear() {
		hints = append(hints, components.Hint("esc", "clear"))
	}
	hints = append(hints, components.Hint("ctrl+c", "quit"))

	box := components.TitledBox("Drink Menu", b.String(), m.width)
	return components.Indent(box+"\n"+components.StatusBar(hints, m.width), 1)
}

func (m MenuModel) renderInput() string {
	line := m.input.View()
	if m.menu.ShowClear() {
		line += "  " + ClearStyle.Render(clearGlyph)
	}
	return line
}

func (m MenuModel) renderEmpty(width int) string {
	msg := MutedStyle.Render(components.SanitizeOneLine(menu.EmptyMessage(m.menu.Query())))
	button := ButtonStyle.Render(clearSearchLabel)
	if m.focus == focusResults {
		button = ButtonFocusStyle.Render(clearSearchLabel)
	}
	return components.CenterLine(msg, width) + "\n\n" + components.CenterLine(button, width)
}

func (m MenuModel) renderCards(width int) string {
	view := m.menu.View()
	start, end := m.list.Range()
	cards := make([]string, 0, end-start)
	for i := start; i < end && i < len(view); i++ {
		selected := m.list.IsSelected(i) && m.focus == focusResults
		cards = append(cards, components.Card(m.renderCard(view[i], selected, width), width, selected))
	}
	out := strings.Join(cards, "\n")
	if hidden := len(view) - (end - start); hidden > 0 {
		out += "\n" + MutedStyle.Render(components.CenterLine(pluralMore(hidden), width))
	}
	return out
}

func (m MenuModel) renderCard(d menu.Drink, selected bool, width int) string {
	// Card border and padding take four columns.
	inner := width - 4

	name := NameStyle.Render(components.ClampTextWidth(d.Name, inner))
	header := name
	if d.HasPrice() {
		price := PriceStyle.Render(menu.FormatPrice(*d.Price))
		gap := inner - lipgloss.Width(name) - lipgloss.Width(price)
		if gap < 1 {
			gap = 1
		}
		header = name + strings.Repeat(" ", gap) + price
	}

	lines := []string{header}
	if len(d.Categories) > 0 {
		focused := -1
		if selected {
			focused = m.chipCursor
		}
		lines = append(lines, components.ChipRow(d.Categories, m.menu.IsActiveCategory, focused, inner))
	}
	if d.HasDescription() {
		lines = append(lines, DescriptionStyle.Render(components.SanitizeText(d.Description)))
	}
	return strings.Join(lines, "\n")
}

func pageSizeFor(height int) int {
	if height <= 0 {
		return defaultPageSize
	}
	// Input, count, categories, box frame and status bar take ~14 rows.
	return maxInt(1, (height-14)/cardHeight)
}

func pluralMore(n int) string {
	if n == 1 {
		return "1 more drink"
	}
	return fmt.Sprintf("%d more drinks", n)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
