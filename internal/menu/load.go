package menu

import (
	_ "embed"
	"errors"
	"fmt"
	"math"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalidMenu is wrapped by every validation failure.
var ErrInvalidMenu = errors.New("invalid menu")

//go:embed sample.yaml
var sampleMenu []byte

type menuFile struct {
	Drinks []Drink `yaml:"drinks"`
}

// Load reads a menu file. YAML and JSON are both accepted.
func Load(path string) ([]Drink, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read menu: %w", err)
	}
	drinks, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return drinks, nil
}

// Parse decodes a menu document: either a list of drinks or a mapping with
// a "drinks" key.
func Parse(data []byte) ([]Drink, error) {
	if strings.TrimSpace(string(data)) == "" {
		return []Drink{}, nil
	}
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("parse menu: %w", err)
	}
	doc := &root
	if doc.Kind == yaml.DocumentNode && len(doc.Content) > 0 {
		doc = doc.Content[0]
	}

	var drinks []Drink
	switch doc.Kind {
	case yaml.SequenceNode:
		if err := doc.Decode(&drinks); err != nil {
			return nil, fmt.Errorf("parse menu: %w", err)
		}
	case yaml.MappingNode:
		var f menuFile
		if err := doc.Decode(&f); err != nil {
			return nil, fmt.Errorf("parse menu: %w", err)
		}
		drinks = f.Drinks
	default:
		return nil, fmt.Errorf("%w: expected a list of drinks or a drinks key", ErrInvalidMenu)
	}
	if drinks == nil {
		drinks = []Drink{}
	}
	if err := Validate(drinks); err != nil {
		return nil, err
	}
	return drinks, nil
}

// Validate checks ids are unique, names are set and prices are not negative.
func Validate(drinks []Drink) error {
	seen := make(map[int]struct{}, len(drinks))
	for i, d := range drinks {
		if _, ok := seen[d.ID]; ok {
			return fmt.Errorf("%w: duplicate id %d", ErrInvalidMenu, d.ID)
		}
		seen[d.ID] = struct{}{}
		if strings.TrimSpace(d.Name) == "" {
			return fmt.Errorf("%w: drink %d (entry %d) has no name", ErrInvalidMenu, d.ID, i)
		}
		if d.Price != nil && *d.Price < 0 {
			return fmt.Errorf("%w: drink %d has negative price", ErrInvalidMenu, d.ID)
		}
		if d.Price != nil && (math.IsNaN(*d.Price) || math.IsInf(*d.Price, 0)) {
			return fmt.Errorf("%w: drink %d has non-finite price", ErrInvalidMenu, d.ID)
		}
	}
	return nil
}

// Sample returns the built-in menu.
func Sample() []Drink {
	drinks, err := Parse(sampleMenu)
	if err != nil {
		panic(fmt.Sprintf("embedded sample menu: %v", err))
	}
	return drinks
}
