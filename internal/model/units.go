package model

import "strings"

// DefaultUnits applies when a model declares none. Code-derived moduli
// (fc, steel) are in MPa, which is N/mm², so they need no scaling here.
const DefaultUnits = "N, mm"

var forceUnits = map[string]float64{
	"n":   1,
	"kn":  1e3,
	"mn":  1e6,
	"kgf": 9.80665,
	"tf":  9806.65,
}

// millimetres per length unit
var lengthUnits = map[string]float64{
	"mm": 1,
	"cm": 10,
	"m":  1000,
}

// Units is a force and length pair such as "kN, m".
type Units struct {
	Force  string
	Length string

	newtons     float64
	millimetres float64
}

// ParseUnits reads a declaration of the form "<force>, <length>". Commas,
// spaces, hyphens and middle dots all separate the two parts.
func ParseUnits(s string) (Units, error) {
	if strings.TrimSpace(s) == "" {
		s = DefaultUnits
	}
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '-' || r == '·' || r == '\t'
	})
	if len(parts) != 2 {
		return Units{}, invalidf("units %q: want \"<force>, <length>\"", s)
	}
	n, ok := forceUnits[strings.ToLower(parts[0])]
	if !ok {
		return Units{}, invalidf("units %q: unknown force unit %q", s, parts[0])
	}
	m, ok := lengthUnits[strings.ToLower(parts[1])]
	if !ok {
		return Units{}, invalidf("units %q: unknown length unit %q", s, parts[1])
	}
	return Units{Force: parts[0], Length: parts[1], newtons: n, millimetres: m}, nil
}

// FromMPa converts a stress in MPa (N/mm²) to force per length² of u.
func (u Units) FromMPa(v float64) float64 {
	return v * u.millimetres * u.millimetres / u.newtons
}
