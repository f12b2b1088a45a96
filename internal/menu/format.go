package menu

import (
	"fmt"
	"strconv"
)

// FormatPrice renders a price as "$" followed by the shortest decimal form
// of the number: 9 -> "$9", 4.5 -> "$4.5", 1200 -> "$1200".
func FormatPrice(p float64) string {
	return "$" + strconv.FormatFloat(p, 'f', -1, 64)
}

// CountLabel is the live result count shown while a query is active.
func CountLabel(n int) string {
	if n == 1 {
		return "Found 1 drink"
	}
	return fmt.Sprintf("Found %d drinks", n)
}

// EmptyMessage is shown when nothing matches. The query is quoted verbatim.
func EmptyMessage(query string) string {
	return `No drinks found matching "` + query + `"`
}
