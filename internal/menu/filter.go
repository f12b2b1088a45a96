package menu

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Matches reports whether the drink matches the query. Matching is a
// case-insensitive substring test over name, categories and description.
func Matches(d Drink, query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(d.Name), q) {
		return true
	}
	for _, cat := range d.Categories {
		if strings.Contains(strings.ToLower(cat), q) {
			return true
		}
	}
	return d.HasDescription() && strings.Contains(strings.ToLower(d.Description), q)
}

// Filter returns the drinks matching query, sorted by name with a
// locale-aware collator for tag. The input slice is never modified.
func Filter(drinks []Drink, query string, tag language.Tag) []Drink {
	out := make([]Drink, 0, len(drinks))
	for _, d := range drinks {
		if Matches(d, query) {
			out = append(out, d)
		}
	}
	SortByName(out, tag)
	return out
}

// SortByName sorts drinks in place by name. Equal names keep their order.
func SortByName(drinks []Drink, tag language.Tag) {
	// collate.Collator is not safe for concurrent use, so build one per call.
	c := collate.New(tag)
	sort.SliceStable(drinks, func(i, j int) bool {
		return c.CompareString(drinks[i].Name, drinks[j].Name) < 0
	})
}

// Compare orders two names the way Filter does.
func Compare(a, b string, tag language.Tag) int {
	return collate.New(tag).CompareString(a, b)
}

// Categories returns every distinct category label in first-seen order.
// Labels are compared exactly; "Coffee" and "coffee" are two categories.
func Categories(drinks []Drink) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, d := range drinks {
		for _, cat := range d.Categories {
			if _, ok := seen[cat]; ok {
				continue
			}
			seen[cat] = struct{}{}
			out = append(out, cat)
		}
	}
	return out
}
