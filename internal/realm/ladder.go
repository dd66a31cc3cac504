package realm

import (
	"math"

	"github.com/osse101/Cultivation_Go/internal/domain"
)

// Realm is one rung of the ladder. Threshold is the experience needed to leave it.
type Realm struct {
	Level     int
	Name      string
	Threshold int64
}

// Ladder is the fixed ordered realm table, level 1 first
var Ladder = []Realm{
	{1, "Qi Refining", 1_000},
	{2, "Foundation Establishment", 3_000},
	{3, "Golden Core", 8_000},
	{4, "Nascent Soul", 20_000},
	{5, "Spirit Transformation", 50_000},
	{6, "Void Refining", 100_000},
	{7, "Body Integration", 200_000},
	{8, "Mahayana", 500_000},
	{9, "Tribulation Transcendence", 1_000_000},
	{10, "True Immortal", 999_999_999},
}

// MinRealm is the entry realm for new states
const MinRealm = 1

// MaxRealm is the top of the ladder; no promotion occurs beyond it
var MaxRealm = len(Ladder)

// Get returns the realm for a level, clamped into range
func Get(level int) Realm {
	if level < MinRealm {
		level = MinRealm
	}
	if level > MaxRealm {
		level = MaxRealm
	}
	return Ladder[level-1]
}

// Name returns the display name for a level
func Name(level int) string {
	return Get(level).Name
}

// Advance is the outcome of crediting experience
type Advance struct {
	Realm        int
	CurrentExp   int64
	RealmsGained int
}

// Apply adds gained experience to currentExp and promotes while the current
// realm's threshold is met, carrying the remainder into the next realm.
func Apply(level int, currentExp, gained int64) Advance {
	level = Get(level).Level
	exp := currentExp + gained
	start := level

	for level < MaxRealm && exp >= Ladder[level-1].Threshold {
		exp -= Ladder[level-1].Threshold
		level++
	}

	return Advance{Realm: level, CurrentExp: exp, RealmsGained: level - start}
}

// Progress describes how far a state is into its realm
func Progress(level int, currentExp int64) *domain.RealmProgress {
	r := Get(level)
	p := &domain.RealmProgress{
		Realm:      r.Level,
		Name:       r.Name,
		Threshold:  r.Threshold,
		IsMaxRealm: r.Level == MaxRealm,
	}
	if !p.IsMaxRealm {
		p.ExpToNext = max(0, r.Threshold-currentExp)
		pct := float64(min(currentExp, r.Threshold)) / float64(r.Threshold) * 100
		p.PercentToNext = math.Round(pct*100) / 100
	}
	return p
}
