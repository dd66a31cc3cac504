package temporal

import (
	"math"

	"github.com/osse101/Cultivation_Go/internal/domain"
	"github.com/osse101/Cultivation_Go/internal/elements"
)

const (
	annualHarmonyBonus = 1.15
	neutralBonus       = 1.00
)

// Round2 rounds to two decimal places, half away from zero
func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// Annual computes the five-movement / six-qi reading for a Gregorian year.
// The bonus applies when the stem element matches the branch's governing element.
func Annual(year int) domain.AnnualCycle {
	stem := elements.Stems[elements.StemIndex(year)]
	branch := elements.Branches[elements.BranchIndex(year)]

	bonus := neutralBonus
	if stem.Element == branch.GoverningElement {
		bonus = annualHarmonyBonus
	}

	return domain.AnnualCycle{
		Year:             year,
		Stem:             stem.Name,
		Branch:           branch.Name,
		StemElement:      stem.Element,
		Tendency:         stem.Tendency(),
		HeavenGoverning:  branch.HeavenGoverning,
		EarthGoverning:   branch.EarthGoverning,
		GoverningElement: branch.GoverningElement,
		Bonus:            Round2(bonus),
	}
}
