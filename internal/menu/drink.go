// Package menu holds the drink model and the pure search, filter and sort
// logic behind the menu view.
package menu

// Drink is a single menu entry.
type Drink struct {
	ID          int      `yaml:"id" json:"id"`
	Name        string   `yaml:"name" json:"name"`
	Categories  []string `yaml:"categories" json:"categories"`
	Price       *float64 `yaml:"price,omitempty" json:"price,omitempty"`
	Description string   `yaml:"description,omitempty" json:"description,omitempty"`
}

// HasPrice reports whether the drink carries a price.
func (d Drink) HasPrice() bool {
	return d.Price != nil
}

// HasDescription reports whether the drink carries a description.
func (d Drink) HasDescription() bool {
	return d.Description != ""
}

// PriceOf is a small helper for building drinks in code.
func PriceOf(p float64) *float64 {
	return &p
}

// clone copies the category list and price so the copy shares nothing
// mutable with d.
func (d Drink) clone() Drink {
	if d.Categories != nil {
		d.Categories = append([]string(nil), d.Categories...)
	}
	if d.Price != nil {
		d.Price = PriceOf(*d.Price)
	}
	return d
}
