package model

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/alexiusacademia/goframe/internal/nscp"
	"github.com/alexiusacademia/goframe/internal/section"
)

// File is the JSON layout of a frame definition.
type File struct {
	Name      string         `json:"name"`
	Units     string         `json:"units,omitempty"`
	Materials []MaterialSpec `json:"materials"`
	Sections  []SectionSpec  `json:"sections"`
	Nodes     []NodeSpec     `json:"nodes"`
	Elements  []ElementSpec  `json:"elements"`
	Supports  []SupportSpec  `json:"supports"`
	Loads     []LoadSpec     `json:"loads"`
}

// MaterialSpec gives the modulus directly (e), from concrete strength
// (fc, MPa), or as structural steel.
type MaterialSpec struct {
	ID    int     `json:"id"`
	Name  string  `json:"name,omitempty"`
	E     float64 `json:"e,omitempty"`
	Fc    float64 `json:"fc,omitempty"`
	Steel bool    `json:"steel,omitempty"`
}

// SectionSpec gives area and inertia directly, or a shape to integrate.
type SectionSpec struct {
	ID      int     `json:"id"`
	Name    string  `json:"name,omitempty"`
	Area    float64 `json:"area,omitempty"`
	Inertia float64 `json:"inertia,omitempty"`
	section.Shape
}

type NodeSpec struct {
	ID int     `json:"id"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
}

type ElementSpec struct {
	ID       int `json:"id"`
	Node1    int `json:"n1"`
	Node2    int `json:"n2"`
	Material int `json:"material"`
	Section  int `json:"section"`
}

type SupportSpec struct {
	Node int  `json:"node"`
	X    bool `json:"x"`
	Y    bool `json:"y"`
	RZ   bool `json:"rz"`
}

type LoadSpec struct {
	Node int     `json:"node"`
	Case string  `json:"case,omitempty"`
	FX   float64 `json:"fx,omitempty"`
	FY   float64 `json:"fy,omitempty"`
	MZ   float64 `json:"mz,omitempty"`
}

// LoadFromFile reads and builds a structure from a JSON file.
func LoadFromFile(path string) (*Structure, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse builds a structure from JSON bytes.
func Parse(data []byte) (*Structure, error) {
	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	return f.Build()
}

// Build converts the file layout into a Structure, resolving material and
// section properties.
func (f *File) Build() (*Structure, error) {
	s := New()
	s.Name = f.Name
	s.Units = f.Units
	units, err := ParseUnits(f.Units)
	if err != nil {
		return nil, err
	}

	for _, ms := range f.Materials {
		m, err := ms.resolve(units)
		if err != nil {
			return nil, err
		}
		if err := s.AddMaterial(m); err != nil {
			return nil, err
		}
	}
	for _, ss := range f.Sections {
		sec, err := ss.resolve()
		if err != nil {
			return nil, err
		}
		if err := s.AddSection(sec); err != nil {
			return nil, err
		}
	}
	for _, n := range f.Nodes {
		if err := s.PutNode(n.ID, n.X, n.Y); err != nil {
			return nil, err
		}
	}
	for _, e := range f.Elements {
		err := s.PutElement(Element{ID: e.ID, Node1: e.Node1, Node2: e.Node2, Material: e.Material, Section: e.Section})
		if err != nil {
			return nil, err
		}
	}
	for _, sp := range f.Supports {
		if err := s.SetSupport(sp.Node, Support{FixedX: sp.X, FixedY: sp.Y, FixedRotation: sp.RZ}); err != nil {
			return nil, err
		}
	}
	for _, l := range f.Loads {
		if err := s.AddLoad(l.Node, l.Case, Load{FX: l.FX, FY: l.FY, MZ: l.MZ}); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// resolve fixes the modulus. An explicit e is taken in model units; fc is
// given in MPa and code moduli are converted into model units.
func (ms MaterialSpec) resolve(u Units) (Material, error) {
	m := Material{ID: ms.ID, Name: ms.Name, E: ms.E}
	switch {
	case ms.E > 0:
	case ms.Fc > 0:
		m.E = u.FromMPa(nscp.ConcreteModulus(ms.Fc))
	case ms.Steel:
		m.E = u.FromMPa(nscp.Es)
	default:
		return m, invalidf("material %d: one of e, fc or steel is required", ms.ID)
	}
	return m, nil
}

func (ss SectionSpec) resolve() (Section, error) {
	sec := Section{ID: ss.ID, Name: ss.Name, A: ss.Area, I: ss.Inertia}
	if ss.Area > 0 || ss.Inertia > 0 {
		return sec, nil
	}
	props, err := ss.Shape.CalculateProperties()
	if err != nil {
		return sec, fmt.Errorf("section %d: %w", ss.ID, err)
	}
	sec.A, sec.I = props.Area, props.Inertia
	return sec, nil
}
