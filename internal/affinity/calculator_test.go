package affinity

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/Cultivation_Go/internal/domain"
	"github.com/osse101/Cultivation_Go/internal/elements"
)

func contextWith(annual, meridian domain.Element, weather string, lunarBonus float64) *domain.TemporalContext {
	return &domain.TemporalContext{
		Annual:   domain.AnnualCycle{GoverningElement: annual},
		Meridian: domain.MeridianSlot{Element: meridian},
		Lunar:    domain.LunarPhase{Name: "Full Moon", Bonus: lunarBonus},
		Weather:  domain.Weather{Condition: weather},
	}
}

func TestCalculate(t *testing.T) {
	tests := []struct {
		name           string
		user           domain.Element
		tc             *domain.TemporalContext
		multiplier     float64
		wantCombined   float64
		wantAdjustment float64
		wantLines      int
	}{
		{
			name:           "resonance and nourishment on a clear day",
			user:           domain.ElementFire,
			tc:             contextWith(domain.ElementFire, domain.ElementWood, "Clear", 1.0),
			multiplier:     1.45,
			wantCombined:   1.75,
			wantAdjustment: 0.25,
			wantLines:      3,
		},
		{
			name:           "drain and opposition in the rain",
			user:           domain.ElementWater,
			tc:             contextWith(domain.ElementFire, domain.ElementEarth, "light rain", 1.0),
			multiplier:     1.10,
			wantCombined:   0.88,
			wantAdjustment: -0.25,
			wantLines:      3,
		},
		{
			name:           "neutral elements and cloudy weather",
			user:           domain.ElementWood,
			tc:             contextWith(domain.ElementFire, domain.ElementFire, "Cloudy", 1.0),
			multiplier:     1.02,
			wantCombined:   1.02,
			wantAdjustment: 0,
			wantLines:      0,
		},
		{
			name:           "floor at one half",
			user:           domain.ElementMetal,
			tc:             contextWith(domain.ElementFire, domain.ElementFire, "Overcast", 1.0),
			multiplier:     0.6,
			wantCombined:   0.5,
			wantAdjustment: -0.30,
			wantLines:      2,
		},
		{
			name:           "strong moon adds a line but no value",
			user:           domain.ElementWood,
			tc:             contextWith(domain.ElementFire, domain.ElementFire, "Breezy", 1.15),
			multiplier:     1.15,
			wantCombined:   1.15,
			wantAdjustment: 0,
			wantLines:      1,
		},
		{
			name:           "chinese clear sky label",
			user:           domain.ElementWood,
			tc:             contextWith(domain.ElementFire, domain.ElementFire, "晴", 1.0),
			multiplier:     1.0,
			wantCombined:   1.05,
			wantAdjustment: 0,
			wantLines:      1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Calculate(tt.user, tt.tc, tt.multiplier)
			assert.InDelta(t, tt.wantCombined, got.CombinedBonus, 1e-9)
			assert.InDelta(t, tt.wantAdjustment, got.Adjustment, 1e-9)
			assert.Len(t, got.Rationale, tt.wantLines)
		})
	}
}

func TestCalculate_FollowsRelationGraph(t *testing.T) {
	// Every pair of elements yields exactly the weight its graph relation dictates
	weights := map[elements.Interaction]float64{
		elements.InteractionNone:      0,
		elements.InteractionSame:      SameElementBonus,
		elements.InteractionNourishes: NourishedBonus,
		elements.InteractionDrains:    DrainPenalty,
		elements.InteractionOpposes:   OpposedPenalty,
	}

	for _, user := range domain.AllElements {
		for _, annual := range domain.AllElements {
			for _, meridian := range domain.AllElements {
				got := Calculate(user, contextWith(annual, meridian, "Cloudy", 1.0), 2.0)
				want := weights[elements.Classify(user, annual)] + weights[elements.Classify(user, meridian)]
				assert.InDelta(t, want, got.Adjustment, 1e-9, "user=%s annual=%s meridian=%s", user, annual, meridian)
				assert.GreaterOrEqual(t, got.CombinedBonus, MinimumCombinedBonus)
			}
		}
	}
}

func TestCalculate_NeverBelowFloor(t *testing.T) {
	got := Calculate(domain.ElementMetal, contextWith(domain.ElementFire, domain.ElementFire, "", 1.0), 0)
	assert.Equal(t, MinimumCombinedBonus, got.CombinedBonus)
}
