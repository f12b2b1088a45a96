package menu

import "golang.org/x/text/language"

// Menu is the state behind the menu view: the drink list, the query and
// the views derived from them. Every mutation re-derives in full.
type Menu struct {
	drinks     []Drink
	query      string
	tag        language.Tag
	view       []Drink
	categories []string
}

// Option configures a Menu.
type Option func(*Menu)

// WithLanguage sets the collation language used to sort names.
func WithLanguage(tag language.Tag) Option {
	return func(m *Menu) {
		m.tag = tag
	}
}

// New builds a Menu over drinks with an empty query.
func New(drinks []Drink, opts ...Option) *Menu {
	m := &Menu{tag: language.Und}
	for _, opt := range opts {
		opt(m)
	}
	m.SetDrinks(drinks)
	return m
}

// SetQuery replaces the query verbatim.
func (m *Menu) SetQuery(text string) {
	m.query = text
	m.derive()
}

// ClearQuery resets the query to empty.
func (m *Menu) ClearQuery() {
	m.SetQuery("")
}

// SetDrinks replaces the input list.
func (m *Menu) SetDrinks(drinks []Drink) {
	m.drinks = cloneDrinks(drinks)
	m.categories = Categories(m.drinks)
	m.derive()
}

func (m *Menu) derive() {
	m.view = Filter(m.drinks, m.query, m.tag)
}

// Query returns the current query.
func (m *Menu) Query() string { return m.query }

// Language returns the collation language.
func (m *Menu) Language() language.Tag { return m.tag }

// View returns the filtered, name-sorted drinks.
func (m *Menu) View() []Drink {
	return cloneDrinks(m.view)
}

// At returns the i-th drink of the filtered view.
func (m *Menu) At(i int) (Drink, bool) {
	if i < 0 || i >= len(m.view) {
		return Drink{}, false
	}
	return m.view[i].clone(), true
}

// Drinks returns the unfiltered input list.
func (m *Menu) Drinks() []Drink {
	return cloneDrinks(m.drinks)
}

// Categories returns the category set of the full input list.
func (m *Menu) Categories() []string {
	return append([]string(nil), m.categories...)
}

// Count is the size of the filtered view.
func (m *Menu) Count() int { return len(m.view) }

// Empty reports whether nothing matches the query.
func (m *Menu) Empty() bool { return len(m.view) == 0 }

// IsActiveCategory reports whether the query is exactly cat.
func (m *Menu) IsActiveCategory(cat string) bool {
	return m.query == cat
}

// ShowCount reports whether the result count should be displayed.
func (m *Menu) ShowCount() bool { return m.query != "" }

// ShowClear reports whether the clear affordance should be displayed.
func (m *Menu) ShowClear() bool { return m.query != "" }

func cloneDrinks(drinks []Drink) []Drink {
	out := make([]Drink, len(drinks))
	for i, d := range drinks {
		out[i] = d.clone()
	}
	return out
}
