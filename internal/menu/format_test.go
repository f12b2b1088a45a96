package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatPrice(t *testing.T) {
	cases := map[float64]string{
		9:       "$9",
		4.5:     "$4.5",
		0:       "$0",
		1200:    "$1200",
		3.25:    "$3.25",
		0.1:     "$0.1",
		1234567: "$1234567",
	}
	for in, want := range cases {
		assert.Equal(t, want, FormatPrice(in), "price %v", in)
	}
}

func TestCountLabelPluralizes(t *testing.T) {
	assert.Equal(t, "Found 0 drinks", CountLabel(0))
	assert.Equal(t, "Found 1 drink", CountLabel(1))
	assert.Equal(t, "Found 2 drinks", CountLabel(2))
}

func TestEmptyMessageQuotesQueryVerbatim(t *testing.T) {
	assert.Equal(t, `No drinks found matching "zzz"`, EmptyMessage("zzz"))
	assert.Equal(t, `No drinks found matching "  a"b "`, EmptyMessage(`  a"b `))
}
