package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedIntegrity(t *testing.T) {
	details := seedDetails()
	require.NoError(t, verifySeed(details))
	require.Len(t, details, 15)

	byID := map[int]Details{}
	for _, d := range details {
		byID[d.ID] = d
	}

	headphones, ok := byID[1]
	require.True(t, ok)
	assert.Equal(t, "Wireless Headphones Pro", headphones.Name)
	assert.Equal(t, 12999, headphones.PriceCents)
	require.NotNil(t, headphones.OriginalPriceCents)
	assert.Equal(t, 15999, *headphones.OriginalPriceCents)
	assert.Equal(t, 15, headphones.StockCount)
	assert.True(t, headphones.InStock)
	assert.NotEmpty(t, headphones.Images)
	assert.NotEmpty(t, headphones.Features)
	assert.NotEmpty(t, headphones.Specifications)

	watch, ok := byID[2]
	require.True(t, ok)
	assert.Equal(t, "Smartwatch Elite", watch.Name)
	assert.Equal(t, 24999, watch.PriceCents)
	assert.Equal(t, 8, watch.StockCount)

	for _, d := range details {
		assert.NotEmpty(t, d.Description, "product %d needs a description", d.ID)
		assert.Greater(t, d.Rating, 0.0, "product %d needs a rating", d.ID)
		assert.Greater(t, d.Reviews, 0, "product %d needs reviews", d.ID)
	}
}

func TestSeedStockMatchesInStockFlag(t *testing.T) {
	for _, d := range seedDetails() {
		assert.Equal(t, d.StockCount > 0, d.InStock, "product %d stock flag", d.ID)
	}
}
