package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fortunabot/fortuna/internal/models"
)

func TestLoad(t *testing.T) {
	cat, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 18, cat.Len())
}

func TestLoad_KeysOrderedByPrice(t *testing.T) {
	cat, err := Load()
	require.NoError(t, err)

	keys := cat.Keys()
	require.Len(t, keys, cat.Len())

	var last float64
	for _, key := range keys {
		c, ok := cat.Get(key)
		require.True(t, ok)
		assert.GreaterOrEqual(t, c.Price, last)
		last = c.Price
	}

	first, _ := cat.Get(keys[0])
	assert.Equal(t, "Starter Spark", first.Name)
	assert.Equal(t, float64(500), first.Price)

	highest, _ := cat.Get(keys[len(keys)-1])
	assert.Equal(t, "Omniversal Orb", highest.Name)
	assert.Equal(t, float64(14000), highest.Price)
}

func TestLoad_EveryCaseHasTwoItemsPerRarity(t *testing.T) {
	cat, err := Load()
	require.NoError(t, err)

	for _, key := range cat.Keys() {
		c, ok := cat.Get(key)
		require.True(t, ok)
		for _, r := range models.RarityOrder {
			assert.Len(t, c.ItemsByRarity(r), 2, "case %s rarity %s", key, r)
		}
	}
}

func TestCatalog_GetUnknown(t *testing.T) {
	cat, err := Load()
	require.NoError(t, err)

	_, ok := cat.Get("no_such_case")
	assert.False(t, ok)
}
