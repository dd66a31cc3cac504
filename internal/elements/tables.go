package elements

import "github.com/osse101/Cultivation_Go/internal/domain"

// Stem is a heavenly stem with its element and annual movement tendency
type Stem struct {
	Name            string
	Element         domain.Element
	MovementElement domain.Element
	Excess          bool
}

// Tendency renders the annual movement, e.g. "Earth Excess"
func (s Stem) Tendency() string {
	if s.Excess {
		return s.MovementElement.Title() + " Excess"
	}
	return s.MovementElement.Title() + " Deficient"
}

// Branch is an earthly branch with its governing qi
type Branch struct {
	Name             string
	Element          domain.Element
	HeavenGoverning  string
	EarthGoverning   string
	GoverningElement domain.Element
}

// Six qi labels
const (
	QiJueyinWindWood       = "Jueyin Wind-Wood"
	QiShaoyinSovereignFire = "Shaoyin Sovereign Fire"
	QiShaoyangMinisterFire = "Shaoyang Minister Fire"
	QiTaiyinDampEarth      = "Taiyin Damp-Earth"
	QiYangmingDryMetal     = "Yangming Dry-Metal"
	QiTaiyangColdWater     = "Taiyang Cold-Water"
)

// Stems in cycle order; index 0 corresponds to (year-4) mod 10 == 0
var Stems = [10]Stem{
	{Name: "Jia", Element: domain.ElementWood, MovementElement: domain.ElementEarth, Excess: true},
	{Name: "Yi", Element: domain.ElementWood, MovementElement: domain.ElementMetal, Excess: false},
	{Name: "Bing", Element: domain.ElementFire, MovementElement: domain.ElementWater, Excess: true},
	{Name: "Ding", Element: domain.ElementFire, MovementElement: domain.ElementWood, Excess: false},
	{Name: "Wu", Element: domain.ElementEarth, MovementElement: domain.ElementFire, Excess: true},
	{Name: "Ji", Element: domain.ElementEarth, MovementElement: domain.ElementEarth, Excess: false},
	{Name: "Geng", Element: domain.ElementMetal, MovementElement: domain.ElementMetal, Excess: true},
	{Name: "Xin", Element: domain.ElementMetal, MovementElement: domain.ElementWater, Excess: false},
	{Name: "Ren", Element: domain.ElementWater, MovementElement: domain.ElementWood, Excess: true},
	{Name: "Gui", Element: domain.ElementWater, MovementElement: domain.ElementFire, Excess: false},
}

// Branches in cycle order; index 0 corresponds to (year-4) mod 12 == 0
var Branches = [12]Branch{
	{Name: "Zi", Element: domain.ElementWater, HeavenGoverning: QiShaoyinSovereignFire, EarthGoverning: QiYangmingDryMetal, GoverningElement: domain.ElementFire},
	{Name: "Chou", Element: domain.ElementEarth, HeavenGoverning: QiTaiyinDampEarth, EarthGoverning: QiTaiyangColdWater, GoverningElement: domain.ElementEarth},
	{Name: "Yin", Element: domain.ElementWood, HeavenGoverning: QiShaoyangMinisterFire, EarthGoverning: QiJueyinWindWood, GoverningElement: domain.ElementFire},
	{Name: "Mao", Element: domain.ElementWood, HeavenGoverning: QiYangmingDryMetal, EarthGoverning: QiShaoyinSovereignFire, GoverningElement: domain.ElementMetal},
	{Name: "Chen", Element: domain.ElementEarth, HeavenGoverning: QiTaiyangColdWater, EarthGoverning: QiTaiyinDampEarth, GoverningElement: domain.ElementWater},
	{Name: "Si", Element: domain.ElementFire, HeavenGoverning: QiJueyinWindWood, EarthGoverning: QiShaoyangMinisterFire, GoverningElement: domain.ElementWood},
	{Name: "Wu", Element: domain.ElementFire, HeavenGoverning: QiShaoyinSovereignFire, EarthGoverning: QiYangmingDryMetal, GoverningElement: domain.ElementFire},
	{Name: "Wei", Element: domain.ElementEarth, HeavenGoverning: QiTaiyinDampEarth, EarthGoverning: QiTaiyangColdWater, GoverningElement: domain.ElementEarth},
	{Name: "Shen", Element: domain.ElementMetal, HeavenGoverning: QiShaoyangMinisterFire, EarthGoverning: QiJueyinWindWood, GoverningElement: domain.ElementFire},
	{Name: "You", Element: domain.ElementMetal, HeavenGoverning: QiYangmingDryMetal, EarthGoverning: QiShaoyinSovereignFire, GoverningElement: domain.ElementMetal},
	{Name: "Xu", Element: domain.ElementEarth, HeavenGoverning: QiTaiyangColdWater, EarthGoverning: QiTaiyinDampEarth, GoverningElement: domain.ElementWater},
	{Name: "Hai", Element: domain.ElementWater, HeavenGoverning: QiJueyinWindWood, EarthGoverning: QiShaoyangMinisterFire, GoverningElement: domain.ElementWood},
}

// QiElement maps each of the six qi labels to its element
var QiElement = map[string]domain.Element{
	QiJueyinWindWood:       domain.ElementWood,
	QiShaoyinSovereignFire: domain.ElementFire,
	QiShaoyangMinisterFire: domain.ElementFire,
	QiTaiyinDampEarth:      domain.ElementEarth,
	QiYangmingDryMetal:     domain.ElementMetal,
	QiTaiyangColdWater:     domain.ElementWater,
}

// SixQi in cycle order
var SixQi = [6]string{
	QiJueyinWindWood,
	QiShaoyinSovereignFire,
	QiShaoyangMinisterFire,
	QiTaiyinDampEarth,
	QiYangmingDryMetal,
	QiTaiyangColdWater,
}

// StemIndex returns the stem index for a Gregorian year
func StemIndex(year int) int {
	return mod(year-4, len(Stems))
}

// BranchIndex returns the branch index for a Gregorian year
func BranchIndex(year int) int {
	return mod(year-4, len(Branches))
}

func mod(a, n int) int {
	return ((a % n) + n) % n
}
