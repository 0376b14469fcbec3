// Package model is the in-memory store for a 2D frame: nodes, elements,
// materials, sections, supports and nodal loads grouped by load case.
//
// Node and element identifiers are recycled: removing a node frees its ID
// and the next AddNode reuses the smallest free one. Consumers must not
// assume identifiers are contiguous.
package model

import (
	"errors"
	"fmt"
)

// Node is a joint of the frame with three degrees of freedom (ux, uy, rz).
type Node struct {
	ID int
	X  float64
	Y  float64
}

// Element is a two-node beam.
type Element struct {
	ID       int
	Node1    int
	Node2    int
	Material int
	Section  int
}

// Material holds the elastic modulus.
type Material struct {
	ID   int
	Name string
	E    float64
}

// Section holds the cross-section area and second moment of area.
type Section struct {
	ID   int
	Name string
	A    float64
	I    float64
}

// Load is a nodal force and moment. The zero value is no load.
type Load struct {
	FX float64
	FY float64
	MZ float64
}

// IsZero reports whether every component is zero.
func (l Load) IsZero() bool { return l.FX == 0 && l.FY == 0 && l.MZ == 0 }

// Add returns the component-wise sum of l and o.
func (l Load) Add(o Load) Load {
	return Load{FX: l.FX + o.FX, FY: l.FY + o.FY, MZ: l.MZ + o.MZ}
}

// Scale returns l with every component multiplied by k.
func (l Load) Scale(k float64) Load {
	return Load{FX: l.FX * k, FY: l.FY * k, MZ: l.MZ * k}
}

// Support marks the fixed degrees of freedom of a node. The zero value is free.
type Support struct {
	FixedX        bool
	FixedY        bool
	FixedRotation bool
}

// Count returns the number of fixed degrees of freedom.
func (s Support) Count() int {
	n := 0
	for _, f := range []bool{s.FixedX, s.FixedY, s.FixedRotation} {
		if f {
			n++
		}
	}
	return n
}

var (
	ErrNodeNotFound     = errors.New("model: node not found")
	ErrElementNotFound  = errors.New("model: element not found")
	ErrMaterialNotFound = errors.New("model: material not found")
	ErrSectionNotFound  = errors.New("model: section not found")
	ErrDuplicateID      = errors.New("model: duplicate id")
	ErrSameNode         = errors.New("model: element endpoints must differ")
)

// ValidationError reports an invalid property value in a model definition.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

func invalidf(format string, args ...any) error {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}
