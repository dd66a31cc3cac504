package affinity

import (
	"fmt"
	"math"
	"strings"

	"github.com/osse101/Cultivation_Go/internal/domain"
	"github.com/osse101/Cultivation_Go/internal/elements"
	"github.com/osse101/Cultivation_Go/internal/temporal"
)

// Adjustment weights
const (
	SameElementBonus     = 0.10
	NourishedBonus       = 0.15
	DrainPenalty         = -0.10
	OpposedPenalty       = -0.15
	ClearWeatherBonus    = 0.05
	RainyWeatherBonus    = 0.03
	MinimumCombinedBonus = 0.5

	// Lunar bonus above which a descriptive line is added
	strongMoonThreshold = 1.10
)

var (
	clearVocabulary = []string{"晴", "clear", "sunny"}
	rainVocabulary  = []string{"雨", "rain", "drizzle", "shower"}
)

// Result is the outcome of an affinity calculation
type Result struct {
	CombinedBonus float64  `json:"combined_bonus"`
	Adjustment    float64  `json:"adjustment"`
	WeatherBonus  float64  `json:"weather_bonus"`
	Rationale     []string `json:"rationale"`
}

// Calculate combines the temporal multiplier with the user's elemental affinity
// against the annual governing element and the meridian element.
func Calculate(userElement domain.Element, tc *domain.TemporalContext, temporalMultiplier float64) Result {
	var adjustment float64
	rationale := make([]string, 0, 4)

	active := []struct {
		source  string
		element domain.Element
	}{
		{"annual qi", tc.Annual.GoverningElement},
		{"meridian", tc.Meridian.Element},
	}

	for _, a := range active {
		switch elements.Classify(userElement, a.element) {
		case elements.InteractionSame:
			adjustment += SameElementBonus
			rationale = append(rationale, fmt.Sprintf("%s %s resonates with your %s root +10%%", a.source, a.element, userElement))
		case elements.InteractionNourishes:
			adjustment += NourishedBonus
			rationale = append(rationale, fmt.Sprintf("%s %s nourishes your %s root +15%%", a.source, a.element, userElement))
		case elements.InteractionDrains:
			adjustment += DrainPenalty
			rationale = append(rationale, fmt.Sprintf("your %s root overcomes %s %s, a slight drain -10%%", userElement, a.source, a.element))
		case elements.InteractionOpposes:
			adjustment += OpposedPenalty
			rationale = append(rationale, fmt.Sprintf("%s %s suppresses your %s root -15%%", a.source, a.element, userElement))
		}
	}

	weatherBonus := 0.0
	switch {
	case matchesAny(tc.Weather.Condition, clearVocabulary):
		weatherBonus = ClearWeatherBonus
		rationale = append(rationale, "clear skies, abundant ambient qi +5%")
	case matchesAny(tc.Weather.Condition, rainVocabulary):
		weatherBonus = RainyWeatherBonus
		rationale = append(rationale, "rain stirs water qi +3%")
	}

	if tc.Lunar.Bonus > strongMoonThreshold {
		rationale = append(rationale, fmt.Sprintf("%s, lunar yin is strong", strings.ToLower(tc.Lunar.Name)))
	}

	combined := math.Max(MinimumCombinedBonus, temporalMultiplier+adjustment+weatherBonus)

	return Result{
		CombinedBonus: temporal.Round2(combined),
		Adjustment:    temporal.Round2(adjustment),
		WeatherBonus:  weatherBonus,
		Rationale:     rationale,
	}
}

func matchesAny(label string, vocabulary []string) bool {
	lower := strings.ToLower(label)
	for _, word := range vocabulary {
		if strings.Contains(lower, word) {
			return true
		}
	}
	return false
}
