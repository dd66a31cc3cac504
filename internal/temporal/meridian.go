package temporal

import "github.com/osse101/Cultivation_Go/internal/domain"

const meridianPeakBonus = 1.10

type meridianSlot struct {
	name        string
	element     domain.Element
	timeRange   string
	description string
}

// Slot 0 starts at 23:00
var meridianSlots = [12]meridianSlot{
	{"Gallbladder", domain.ElementWood, "23:00-01:00", "Yang qi begins to stir; rest and let it gather"},
	{"Liver", domain.ElementWood, "01:00-03:00", "Blood returns to the liver; deep stillness"},
	{"Lung", domain.ElementMetal, "03:00-05:00", "Lung qi governs breath; breathing exercises"},
	{"Large Intestine", domain.ElementMetal, "05:00-07:00", "Clearing and release; gentle movement"},
	{"Stomach", domain.ElementEarth, "07:00-09:00", "Earth qi rises; nourish the body"},
	{"Spleen", domain.ElementEarth, "09:00-11:00", "Transformation and transport; focused study"},
	{"Heart", domain.ElementFire, "11:00-13:00", "Yang at its peak; calm the spirit"},
	{"Small Intestine", domain.ElementFire, "13:00-15:00", "Separating clear from turbid; light practice"},
	{"Bladder", domain.ElementWater, "15:00-17:00", "Water flows freely; sustained effort"},
	{"Kidney", domain.ElementWater, "17:00-19:00", "Essence is stored; consolidate gains"},
	{"Pericardium", domain.ElementFire, "19:00-21:00", "Protecting the heart; quiet reflection"},
	{"Triple Burner", domain.ElementFire, "21:00-23:00", "Harmonizing the three burners; wind down"},
}

// Hours where yin and yang turn over
var meridianPeakHours = map[int]bool{0: true, 6: true, 12: true, 18: true}

// MeridianIndex maps an hour [0,23] to its two-hour slot
func MeridianIndex(hour int) int {
	return ((hour + 1) % 24) / 2
}

// Meridian returns the diurnal slot for an hour of day
func Meridian(hour int) domain.MeridianSlot {
	idx := MeridianIndex(hour)
	slot := meridianSlots[idx]

	bonus := neutralBonus
	if meridianPeakHours[hour] || meridianPeakHours[hour-1] {
		bonus = meridianPeakBonus
	}

	return domain.MeridianSlot{
		Index:       idx,
		Name:        slot.name,
		Element:     slot.element,
		TimeRange:   slot.timeRange,
		Description: slot.description,
		Bonus:       Round2(bonus),
	}
}
