package temporal

import (
	"fmt"
	"time"

	"github.com/osse101/Cultivation_Go/internal/domain"
	"github.com/osse101/Cultivation_Go/internal/elements"
)

type seasonalBreakpoint struct {
	month time.Month
	day   int
	qi    int
}

// Ordered by date. Dates before the first entry belong to the last one.
var seasonalBreakpoints = []seasonalBreakpoint{
	{time.January, 20, 5},
	{time.February, 19, 0},
	{time.April, 20, 1},
	{time.May, 21, 2},
	{time.July, 23, 3},
	{time.August, 23, 4},
	{time.October, 23, 5},
	{time.November, 22, 0},
	{time.December, 21, 1},
}

// Seasonal returns the active six-qi segment for a calendar date
func Seasonal(month time.Month, day int) domain.SeasonalQi {
	active := seasonalBreakpoints[len(seasonalBreakpoints)-1]
	for _, bp := range seasonalBreakpoints {
		if month > bp.month || (month == bp.month && day >= bp.day) {
			active = bp
			continue
		}
		break
	}

	name := elements.SixQi[active.qi]
	return domain.SeasonalQi{
		Index:    active.qi,
		Name:     name,
		Element:  elements.QiElement[name],
		StartsOn: fmt.Sprintf("%02d-%02d", int(active.month), active.day),
	}
}
