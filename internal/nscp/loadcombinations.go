package nscp

import "math"

// Load case names recognised by the combinations below.
const (
	CaseDead       = "D"
	CaseLive       = "L"
	CaseRoof       = "Lr"
	CaseWind       = "W"
	CaseEarthquake = "E"
	CaseRain       = "R"
)

// LoadCombination represents an NSCP load combination
// Based on NSCP 2015 Section 203.3 - Load Combinations Using Strength Design
type LoadCombination struct {
	ID          string
	Description string
	// Load factors for each load type
	Dead       float64 // D - Dead load
	Live       float64 // L - Live load
	Roof       float64 // Lr - Roof live load
	Wind       float64 // W - Wind load
	Earthquake float64 // E - Earthquake load
	Rain       float64 // R - Rain load
}

// NSCP 2015 Section 203.3.1 - Basic Load Combinations
var LoadCombinations = []LoadCombination{
	{
		ID:          "1",
		Description: "1.4D",
		Dead:        1.4,
	},
	{
		ID:          "2",
		Description: "1.2D + 1.6L + 0.5(Lr or R)",
		Dead:        1.2,
		Live:        1.6,
		Roof:        0.5,
		Rain:        0.5,
	},
	{
		ID:          "3",
		Description: "1.2D + 1.6(Lr or R) + (1.0L or 0.5W)",
		Dead:        1.2,
		Live:        1.0,
		Roof:        1.6,
		Rain:        1.6,
		Wind:        0.5,
	},
	{
		ID:          "4",
		Description: "1.2D + 1.0W + 1.0L + 0.5(Lr or R)",
		Dead:        1.2,
		Live:        1.0,
		Wind:        1.0,
		Roof:        0.5,
		Rain:        0.5,
	},
	{
		ID:          "5",
		Description: "1.2D + 1.0E + 1.0L",
		Dead:        1.2,
		Live:        1.0,
		Earthquake:  1.0,
	},
	{
		ID:          "6",
		Description: "0.9D + 1.0W",
		Dead:        0.9,
		Wind:        1.0,
	},
	{
		ID:          "7",
		Description: "0.9D + 1.0E",
		Dead:        0.9,
		Earthquake:  1.0,
	},
}

// SimplifiedCombinations covers gravity loads only.
var SimplifiedCombinations = []LoadCombination{
	{
		ID:          "1",
		Description: "1.4D",
		Dead:        1.4,
	},
	{
		ID:          "2",
		Description: "1.2D + 1.6L",
		Dead:        1.2,
		Live:        1.6,
	},
}

// Unfactored applies factor 1 to every load case, whatever its name.
var Unfactored = LoadCombination{ID: "0", Description: "unfactored sum of all cases"}

// Factor returns the load factor this combination applies to the named
// load case. Unknown case names get factor 0, except under Unfactored where
// every case counts once.
func (lc LoadCombination) Factor(loadCase string) float64 {
	if lc.ID == Unfactored.ID {
		return 1
	}
	switch loadCase {
	case CaseDead:
		return lc.Dead
	case CaseLive:
		return lc.Live
	case CaseRoof:
		return lc.Roof
	case CaseWind:
		return lc.Wind
	case CaseEarthquake:
		return lc.Earthquake
	case CaseRain:
		return lc.Rain
	}
	return 0
}

// FindCombination looks a combination up by ID.
func FindCombination(id string, combinations []LoadCombination) (LoadCombination, bool) {
	for _, combo := range combinations {
		if combo.ID == id {
			return combo, true
		}
	}
	return LoadCombination{}, false
}

// Governing evaluates every combination and returns the one with the
// largest absolute response. Combinations whose evaluation fails are
// skipped; ok is false when none succeeded.
func Governing(combinations []LoadCombination, eval func(LoadCombination) (float64, error)) (value float64, governing LoadCombination, ok bool) {
	for _, combo := range combinations {
		v, err := eval(combo)
		if err != nil {
			continue
		}
		if !ok || math.Abs(v) > math.Abs(value) {
			value, governing, ok = v, combo, true
		}
	}
	return value, governing, ok
}
