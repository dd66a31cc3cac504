package temporal

import (
	"math"
	"time"

	"github.com/osse101/Cultivation_Go/internal/domain"
)

// SynodicMonth is the mean lunation length in days
const SynodicMonth = 29.53059

// LunarEpoch is a reference new moon
var LunarEpoch = time.Date(2000, time.January, 6, 0, 0, 0, 0, time.UTC)

// Moon phase names
const (
	PhaseNewMoon        = "New Moon"
	PhaseWaxingCrescent = "Waxing Crescent"
	PhaseFirstQuarter   = "First Quarter"
	PhaseWaxingGibbous  = "Waxing Gibbous"
	PhaseFullMoon       = "Full Moon"
	PhaseWaningGibbous  = "Waning Gibbous"
	PhaseLastQuarter    = "Last Quarter"
	PhaseWaningCrescent = "Waning Crescent"
)

type lunarBucket struct {
	below float64
	name  string
	bonus float64
}

var lunarBuckets = []lunarBucket{
	{1, PhaseNewMoon, 1.00},
	{7, PhaseWaxingCrescent, 1.02},
	{8, PhaseFirstQuarter, 1.05},
	{14, PhaseWaxingGibbous, 1.08},
	{16, PhaseFullMoon, 1.15},
	{22, PhaseWaningGibbous, 1.08},
	{23, PhaseLastQuarter, 1.05},
	{29, PhaseWaningCrescent, 1.02},
}

// LunarAge returns days since the last new moon, in [0, SynodicMonth)
func LunarAge(at time.Time) float64 {
	days := at.Sub(LunarEpoch).Hours() / 24
	age := math.Mod(days, SynodicMonth)
	if age < 0 {
		age += SynodicMonth
	}
	return age
}

// Lunar returns the bucketed moon phase for an instant
func Lunar(at time.Time) domain.LunarPhase {
	return LunarForAge(LunarAge(at))
}

// LunarForAge buckets a lunar age in days
func LunarForAge(age float64) domain.LunarPhase {
	name, bonus := PhaseNewMoon, neutralBonus
	for _, b := range lunarBuckets {
		if age < b.below {
			name, bonus = b.name, b.bonus
			break
		}
	}

	illumination := int(math.Round((1 - math.Cos(2*math.Pi*age/SynodicMonth)) / 2 * 100))

	return domain.LunarPhase{
		Name:         name,
		AgeDays:      Round2(age),
		Illumination: illumination,
		Bonus:        Round2(bonus),
	}
}
