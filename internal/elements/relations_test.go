package elements

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Cultivation_Go/internal/domain"
)

func TestRelations_GraphIsConsistent(t *testing.T) {
	for _, e := range domain.AllElements {
		r, ok := RelationOf(e)
		require.True(t, ok, "missing relation for %s", e)

		gen, _ := RelationOf(r.Generates)
		assert.Equal(t, e, gen.GeneratedBy, "%s generates %s so %s must be generated by %s", e, r.Generates, r.Generates, e)

		des, _ := RelationOf(r.Destroys)
		assert.Equal(t, e, des.DestroyedBy, "%s destroys %s", e, r.Destroys)

		// Four neighbours are distinct and never the element itself
		seen := map[domain.Element]bool{e: true}
		for _, n := range []domain.Element{r.Generates, r.GeneratedBy, r.Destroys, r.DestroyedBy} {
			assert.False(t, seen[n], "duplicate neighbour %s for %s", n, e)
			seen[n] = true
		}
	}
}

func TestRelations_GenerativeCycle(t *testing.T) {
	// Wood -> Fire -> Earth -> Metal -> Water -> Wood
	for i, e := range domain.AllElements {
		next := domain.AllElements[(i+1)%len(domain.AllElements)]
		r, _ := RelationOf(e)
		assert.Equal(t, next, r.Generates)
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		subject domain.Element
		active  domain.Element
		want    Interaction
	}{
		{"same", domain.ElementFire, domain.ElementFire, InteractionSame},
		{"wood nourishes fire", domain.ElementFire, domain.ElementWood, InteractionNourishes},
		{"fire drains metal", domain.ElementFire, domain.ElementMetal, InteractionDrains},
		{"water opposes fire", domain.ElementFire, domain.ElementWater, InteractionOpposes},
		{"fire feeding earth is neutral", domain.ElementFire, domain.ElementEarth, InteractionNone},
		{"unknown subject", domain.Element("aether"), domain.ElementFire, InteractionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.subject, tt.active))
		})
	}
}

func TestStemBranchIndex(t *testing.T) {
	assert.Equal(t, 0, StemIndex(1984))
	assert.Equal(t, 0, BranchIndex(1984))
	assert.Equal(t, "Bing", Stems[StemIndex(2026)].Name)
	assert.Equal(t, "Wu", Branches[BranchIndex(2026)].Name)
	// Years before the epoch still map into range
	assert.Equal(t, "Geng", Stems[StemIndex(0)].Name)
	assert.Equal(t, "Shen", Branches[BranchIndex(0)].Name)
}

func TestStem_Tendency(t *testing.T) {
	assert.Equal(t, "Earth Excess", Stems[0].Tendency())
	assert.Equal(t, "Metal Deficient", Stems[1].Tendency())
}
