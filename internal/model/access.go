package model

import "sort"

// The methods below are the read-only view the solver consumes.

// NodeIDs returns the live node identifiers in ascending order.
func (s *Structure) NodeIDs() []int { return sortedKeys(s.nodes) }

// ElementIDs returns the live element identifiers in ascending order.
func (s *Structure) ElementIDs() []int { return sortedKeys(s.elements) }

// NodePosition returns the coordinates of a node.
func (s *Structure) NodePosition(id int) (x, y float64, ok bool) {
	n, ok := s.nodes[id]
	return n.X, n.Y, ok
}

// ElementRef returns the node, material and section references of an element.
func (s *Structure) ElementRef(id int) (node1, node2, material, section int, ok bool) {
	e, ok := s.elements[id]
	return e.Node1, e.Node2, e.Material, e.Section, ok
}

// MaterialModulus returns the elastic modulus of a material.
func (s *Structure) MaterialModulus(id int) (float64, bool) {
	m, ok := s.materials[id]
	return m.E, ok
}

// SectionProperties returns the area and second moment of area of a section.
func (s *Structure) SectionProperties(id int) (area, inertia float64, ok bool) {
	sec, ok := s.sections[id]
	return sec.A, sec.I, ok
}

// NodeLoad returns the combined load components on a node.
func (s *Structure) NodeLoad(id int) (fx, fy, mz float64) {
	l := s.Load(id)
	return l.FX, l.FY, l.MZ
}

// NodeSupport returns the fixed flags of a node.
func (s *Structure) NodeSupport(id int) (fixedX, fixedY, fixedRotation bool) {
	sup := s.supports[id]
	return sup.FixedX, sup.FixedY, sup.FixedRotation
}

// NodeCount returns the number of live nodes.
func (s *Structure) NodeCount() int { return len(s.nodes) }

// ElementCount returns the number of live elements.
func (s *Structure) ElementCount() int { return len(s.elements) }

// LoadComponentCount returns how many combined load components are non-zero
// across all nodes.
func (s *Structure) LoadComponentCount() int {
	n := 0
	for id := range s.loads {
		l := s.Load(id)
		for _, v := range []float64{l.FX, l.FY, l.MZ} {
			if v != 0 {
				n++
			}
		}
	}
	return n
}

// FixedDOFCount returns how many degrees of freedom are fixed across all nodes.
func (s *Structure) FixedDOFCount() int {
	n := 0
	for _, sup := range s.supports {
		n += sup.Count()
	}
	return n
}

func sortedKeys[V any](m map[int]V) []int {
	ids := make([]int, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
