package joker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luca-patrignani/joker-poker/domain/poker"
)

// canned contexts that together trigger most of the catalog
var cannedContexts = []Context{
	{},
	{Hole: cards("8H 8S"), Phase: poker.Flop},
	{Hole: cards("AH KH"), Played: cards("AH KH QH JH 10H"), Phase: poker.River},
	{Hole: cards("7S 2H"), Played: cards("7S 7H 7C 2H 2D"), Phase: poker.Turn},
	{Hole: cards("AS 2S"), Played: cards("AS 2S 3S 4S 5S"), Phase: poker.Flop},
	{Hole: cards("QH QD 9C"), Played: cards("QH QD QC QS 9C"), Phase: poker.Turn},
	{Hole: cards("2C 3D 5H 6S"), Played: cards("2C 3D 5H 6S 8C"), Phase: poker.River},
}

func TestCatalogMetadata(t *testing.T) {
	catalog := Catalog()
	require.GreaterOrEqual(t, len(catalog), 50)

	ids := make(map[string]bool)
	community := 0
	for _, def := range catalog {
		require.NotEmpty(t, def.ID)
		require.False(t, ids[def.ID], "duplicate id %s", def.ID)
		ids[def.ID] = true
		assert.NotEmpty(t, def.Name, def.ID)
		assert.NotEmpty(t, def.Effect, def.ID)
		assert.True(t, def.Rarity.Valid(), def.ID)
		assert.True(t, def.Ownership.Valid(), def.ID)
		require.NotNil(t, def.Compute, def.ID)
		if def.Ownership == CommunityOwned {
			community++
		}

		got, ok := Lookup(def.ID)
		require.True(t, ok)
		require.Equal(t, def.Name, got.Name)
	}
	// a river board shows five community jokers
	require.GreaterOrEqual(t, community, 5)
}

func TestCatalogBonusesArePureAndMonotonic(t *testing.T) {
	for _, def := range Catalog() {
		t.Run(def.ID, func(t *testing.T) {
			for _, ctx := range cannedContexts {
				prev := -1
				for level := MinLevel; level <= MaxLevel; level++ {
					b := def.Compute(level, ctx)
					require.GreaterOrEqual(t, b.Value, 0)
					require.Equal(t, b, def.Compute(level, ctx), "same input must give same bonus")
					if def.ID == "heart_multiplier" {
						require.Equal(t, KindMultiplicative, b.Kind)
					} else {
						require.Equal(t, KindAdditive, b.Kind)
					}
					require.GreaterOrEqual(t, b.Value, prev, "bonus must not shrink with level")
					prev = b.Value
				}
			}
		})
	}
}

func TestCatalogEmptyContextPaysNothing(t *testing.T) {
	for _, def := range Catalog() {
		b := def.Compute(MinLevel, Context{})
		assert.Zero(t, b.Value, def.ID)
	}
}

func TestCatalogLinearJokersScaleByConstantStep(t *testing.T) {
	for _, def := range Catalog() {
		if def.ID == "gap_runner" {
			// tolerance changes with level, so the run itself can grow
			continue
		}
		for _, ctx := range cannedContexts {
			b1 := def.Compute(1, ctx).Value
			if b1 == 0 {
				continue
			}
			step := def.Compute(2, ctx).Value - b1
			for level := 3; level <= MaxLevel; level++ {
				assert.Equal(t, b1+step*(level-1), def.Compute(level, ctx).Value, "%s level %d", def.ID, level)
			}
		}
	}
}
