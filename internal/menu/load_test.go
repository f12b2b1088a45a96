package menu

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSequence(t *testing.T) {
	data := []byte(`
- id: 1
  name: Latte
  categories: [Coffee, Milk]
  price: 4.5
- id: 2
  name: Water
  categories: []
`)
	drinks, err := Parse(data)
	require.NoError(t, err)
	require.Len(t, drinks, 2)

	assert.Equal(t, "Latte", drinks[0].Name)
	require.NotNil(t, drinks[0].Price)
	assert.Equal(t, 4.5, *drinks[0].Price)
	assert.False(t, drinks[1].HasPrice())
	assert.False(t, drinks[1].HasDescription())
}

func TestParseDrinksMapping(t *testing.T) {
	data := []byte("drinks:\n  - id: 3\n    name: Chai\n    description: Spiced tea\n")
	drinks, err := Parse(data)
	require.NoError(t, err)
	require.Len(t, drinks, 1)
	assert.Equal(t, "Spiced tea", drinks[0].Description)
}

func TestParseJSON(t *testing.T) {
	data := []byte(`[{"id": 1, "name": "Mojito", "categories": ["Cocktail"], "price": 9}]`)
	drinks, err := Parse(data)
	require.NoError(t, err)
	require.Len(t, drinks, 1)
	assert.Equal(t, []string{"Cocktail"}, drinks[0].Categories)
}

func TestParseEmptyDocument(t *testing.T) {
	drinks, err := Parse([]byte("  \n"))
	require.NoError(t, err)
	assert.Empty(t, drinks)
}

func TestParseRejectsScalar(t *testing.T) {
	_, err := Parse([]byte("just a string"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidMenu)
}

func TestParseRejectsMalformedYAML(t *testing.T) {
	_, err := Parse([]byte("- id: [1\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse menu")
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		drinks []Drink
		msg    string
	}{
		{"duplicate id", []Drink{{ID: 1, Name: "A"}, {ID: 1, Name: "B"}}, "duplicate id 1"},
		{"empty name", []Drink{{ID: 2, Name: "  "}}, "has no name"},
		{"negative price", []Drink{{ID: 3, Name: "C", Price: PriceOf(-1)}}, "negative price"},
		{"nan price", []Drink{{ID: 4, Name: "D", Price: PriceOf(math.NaN())}}, "non-finite price"},
		{"inf price", []Drink{{ID: 5, Name: "E", Price: PriceOf(math.Inf(1))}}, "non-finite price"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate(tc.drinks)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidMenu)
			assert.Contains(t, err.Error(), tc.msg)
		})
	}
	assert.NoError(t, Validate([]Drink{{ID: 1, Name: "A", Price: PriceOf(0)}}))
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "menu.yaml")
	require.NoError(t, os.WriteFile(path, []byte("- id: 1\n  name: Tonic\n"), 0o600))

	drinks, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Tonic"}, names(drinks))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSampleIsValid(t *testing.T) {
	drinks := Sample()
	require.NotEmpty(t, drinks)
	assert.NoError(t, Validate(drinks))
}

func TestParseRejectsNonFinitePrices(t *testing.T) {
	for _, price := range []string{".nan", ".inf"} {
		_, err := Parse([]byte("- id: 1\n  name: A\n  price: " + price + "\n"))
		require.Error(t, err, price)
		assert.ErrorIs(t, err, ErrInvalidMenu)
	}
}
