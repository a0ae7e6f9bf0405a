// Package catalog holds the embedded case catalog used by case battles.
package catalog

import (
	_ "embed"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/fortunabot/fortuna/internal/models"
)

//go:embed cases.yaml
var casesYAML []byte

// Catalog is an immutable, keyed view of the case definitions.
type Catalog struct {
	cases map[string]*models.Case
	keys  []string
}

// Load parses the embedded case data. The result is safe for concurrent reads.
func Load() (*Catalog, error) {
	var raw map[string]*models.Case
	if err := yaml.Unmarshal(casesYAML, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse case catalog: %w", err)
	}

	keys := make([]string, 0, len(raw))
	for key, c := range raw {
		if len(c.Items) == 0 {
			return nil, fmt.Errorf("case %s has no items", key)
		}
		for _, r := range models.RarityOrder {
			if len(c.ItemsByRarity(r)) == 0 {
				return nil, fmt.Errorf("case %s has no %s items", key, r)
			}
		}
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		return raw[keys[i]].Price < raw[keys[j]].Price
	})

	return &Catalog{cases: raw, keys: keys}, nil
}

// Get returns the case for the given key, or false when unknown.
func (c *Catalog) Get(key string) (*models.Case, bool) {
	cs, ok := c.cases[key]
	return cs, ok
}

// Keys returns the case keys ordered by ascending price.
func (c *Catalog) Keys() []string {
	return c.keys
}

// Len returns the number of cases.
func (c *Catalog) Len() int {
	return len(c.cases)
}
