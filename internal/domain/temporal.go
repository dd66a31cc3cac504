package domain

import "time"

// AnnualCycle is the five-movement / six-qi reading for a calendar year
type AnnualCycle struct {
	Year             int     `json:"year"`
	Stem             string  `json:"stem"`
	Branch           string  `json:"branch"`
	StemElement      Element `json:"stem_element"`
	Tendency         string  `json:"tendency"`
	HeavenGoverning  string  `json:"heaven_governing"`
	EarthGoverning   string  `json:"earth_governing"`
	GoverningElement Element `json:"governing_element"`
	Bonus            float64 `json:"bonus"`
}

// Label is the compact display form, e.g. "Bing-Wu (Water Excess)"
func (a AnnualCycle) Label() string {
	return a.Stem + "-" + a.Branch + " (" + a.Tendency + ")"
}

// SeasonalQi is the active segment of the six-qi yearly cycle
type SeasonalQi struct {
	Index    int     `json:"index"`
	Name     string  `json:"name"`
	Element  Element `json:"element"`
	StartsOn string  `json:"starts_on"`
}

// MeridianSlot is one of the twelve two-hour diurnal slots
type MeridianSlot struct {
	Index       int     `json:"index"`
	Name        string  `json:"name"`
	Element     Element `json:"element"`
	TimeRange   string  `json:"time_range"`
	Description string  `json:"description"`
	Bonus       float64 `json:"bonus"`
}

// LunarPhase is the bucketed moon phase
type LunarPhase struct {
	Name         string  `json:"name"`
	AgeDays      float64 `json:"age_days"`
	Illumination int     `json:"illumination"`
	Bonus        float64 `json:"bonus"`
}

// Weather sources
const (
	WeatherSourceLive        = "live"
	WeatherSourcePlaceholder = "placeholder"
)

// Weather is a descriptive snapshot; it never contributes to the temporal multiplier
type Weather struct {
	Condition   string  `json:"condition"`
	Temperature float64 `json:"temperature"`
	Humidity    int     `json:"humidity"`
	Pressure    int     `json:"pressure"`
	WindSpeed   float64 `json:"wind_speed"`
	Visibility  float64 `json:"visibility"`
	Location    string  `json:"location"`
	Source      string  `json:"source"`
}

// TemporalContext bundles the four time-based sub-model outputs with a weather snapshot
type TemporalContext struct {
	At              time.Time    `json:"at"`
	Annual          AnnualCycle  `json:"annual"`
	Seasonal        SeasonalQi   `json:"seasonal"`
	Meridian        MeridianSlot `json:"meridian"`
	Lunar           LunarPhase   `json:"lunar"`
	Weather         Weather      `json:"weather"`
	TotalMultiplier float64      `json:"total_multiplier"`
}

// ContextLabels is the flattened, display-only form persisted with states and logs
type ContextLabels struct {
	Weather     string  `json:"weather"`
	Temperature float64 `json:"temperature"`
	City        string  `json:"city"`
	AnnualCycle string  `json:"annual_cycle"`
	SeasonalQi  string  `json:"seasonal_qi"`
	Meridian    string  `json:"meridian"`
	MoonPhase   string  `json:"moon_phase"`
	TotalBonus  float64 `json:"total_bonus"`
}

// Labels flattens the context for persistence
func (t *TemporalContext) Labels() ContextLabels {
	return ContextLabels{
		Weather:     t.Weather.Condition,
		Temperature: t.Weather.Temperature,
		City:        t.Weather.Location,
		AnnualCycle: t.Annual.Label(),
		SeasonalQi:  t.Seasonal.Name,
		Meridian:    t.Meridian.Name,
		MoonPhase:   t.Lunar.Name,
		TotalBonus:  t.TotalMultiplier,
	}
}
