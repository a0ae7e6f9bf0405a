package models

// Rarity is an item tier within a case
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// RarityOrder lists rarities from most to least likely, matching the order of
// RarityWeights.
var RarityOrder = []Rarity{RarityCommon, RarityRare, RarityEpic, RarityLegendary}

// RarityWeights are the per-hundred draw weights, indexed like RarityOrder.
var RarityWeights = []int{60, 30, 9, 1}

// Item is one openable item inside a case
type Item struct {
	Name   string  `yaml:"name" json:"name"`
	Value  float64 `yaml:"value" json:"value"`
	Rarity Rarity  `yaml:"rarity" json:"rarity"`
}

// Case is a purchasable container of items grouped by rarity
type Case struct {
	Name  string  `yaml:"name" json:"name"`
	Price float64 `yaml:"price" json:"price"`
	Color int     `yaml:"color" json:"color"`
	Items []Item  `yaml:"items" json:"items"`
}

// ItemsByRarity returns the items of the given tier.
func (c *Case) ItemsByRarity(r Rarity) []Item {
	var out []Item
	for _, it := range c.Items {
		if it.Rarity == r {
			out = append(out, it)
		}
	}
	return out
}
