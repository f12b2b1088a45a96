package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gravitrone/drinkmenu/internal/menu"
)

func testDrinks() []menu.Drink {
	return []menu.Drink{
		{ID: 1, Name: "Mojito", Categories: []string{"Cocktail"}, Price: menu.PriceOf(9)},
		{ID: 2, Name: "Espresso", Categories: []string{"Coffee"}, Price: menu.PriceOf(3)},
		{ID: 3, Name: "Latte", Categories: []string{"Coffee", "Milk"}, Price: menu.PriceOf(4.5), Description: "Espresso with steamed milk"},
		{ID: 4, Name: "Tap Water"},
	}
}

func testMenuModel() MenuModel {
	return NewMenuModel(menu.New(testDrinks()), nil)
}

func send(m MenuModel, msgs ...tea.Msg) MenuModel {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(MenuModel)
	}
	return m
}

func key(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func viewNames(m MenuModel) []string {
	view := m.menu.View()
	out := make([]string, len(view))
	for i, d := range view {
		out[i] = d.Name
	}
	return out
}
