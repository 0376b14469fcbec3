package model

import (
	"fmt"
	"math"
	"sort"

	"github.com/alexiusacademia/goframe/internal/nscp"
)

// DefaultCase is the load case assigned to loads given without one.
const DefaultCase = nscp.CaseDead

// Structure is a mutable frame model. It is not safe for concurrent use.
type Structure struct {
	Name  string
	Units string

	nodes     map[int]Node
	elements  map[int]Element
	materials map[int]Material
	sections  map[int]Section
	supports  map[int]Support
	loads     map[int]map[string]Load

	nodeIDs    *idPool
	elementIDs *idPool

	combo nscp.LoadCombination
}

// New returns an empty structure whose loads are combined unfactored.
func New() *Structure {
	return &Structure{
		nodes:      make(map[int]Node),
		elements:   make(map[int]Element),
		materials:  make(map[int]Material),
		sections:   make(map[int]Section),
		supports:   make(map[int]Support),
		loads:      make(map[int]map[string]Load),
		nodeIDs:    newIDPool(),
		elementIDs: newIDPool(),
		combo:      nscp.Unfactored,
	}
}

// AddNode creates a node at (x, y) and returns its identifier.
func (s *Structure) AddNode(x, y float64) int {
	id := s.nodeIDs.acquire()
	s.nodes[id] = Node{ID: id, X: x, Y: y}
	return id
}

// PutNode creates a node with an explicit identifier.
func (s *Structure) PutNode(id int, x, y float64) error {
	if id <= 0 {
		return invalidf("node id must be positive, got %d", id)
	}
	if _, ok := s.nodes[id]; ok {
		return fmt.Errorf("node %d: %w", id, ErrDuplicateID)
	}
	s.nodeIDs.reserve(id)
	s.nodes[id] = Node{ID: id, X: x, Y: y}
	return nil
}

// MoveNode changes a node position.
func (s *Structure) MoveNode(id int, x, y float64) error {
	n, ok := s.nodes[id]
	if !ok {
		return fmt.Errorf("node %d: %w", id, ErrNodeNotFound)
	}
	n.X, n.Y = x, y
	s.nodes[id] = n
	return nil
}

// RemoveNode deletes a node together with its elements, support and loads.
// The identifier becomes available for reuse.
func (s *Structure) RemoveNode(id int) error {
	if _, ok := s.nodes[id]; !ok {
		return fmt.Errorf("node %d: %w", id, ErrNodeNotFound)
	}
	for eid, e := range s.elements {
		if e.Node1 == id || e.Node2 == id {
			delete(s.elements, eid)
			s.elementIDs.release(eid)
		}
	}
	delete(s.nodes, id)
	delete(s.supports, id)
	delete(s.loads, id)
	s.nodeIDs.release(id)
	return nil
}

// Node returns the node with the given identifier.
func (s *Structure) Node(id int) (Node, bool) {
	n, ok := s.nodes[id]
	return n, ok
}

// AddMaterial registers a material under m.ID.
func (s *Structure) AddMaterial(m Material) error {
	if _, ok := s.materials[m.ID]; ok {
		return fmt.Errorf("material %d: %w", m.ID, ErrDuplicateID)
	}
	if !(m.E > 0) || math.IsInf(m.E, 0) {
		return invalidf("material %d: modulus must be positive, got %g", m.ID, m.E)
	}
	s.materials[m.ID] = m
	return nil
}

// AddSection registers a section under sec.ID.
func (s *Structure) AddSection(sec Section) error {
	if _, ok := s.sections[sec.ID]; ok {
		return fmt.Errorf("section %d: %w", sec.ID, ErrDuplicateID)
	}
	if !(sec.A > 0) || !(sec.I > 0) || math.IsInf(sec.A, 0) || math.IsInf(sec.I, 0) {
		return invalidf("section %d: area and inertia must be positive, got A=%g I=%g", sec.ID, sec.A, sec.I)
	}
	s.sections[sec.ID] = sec
	return nil
}

// AddElement connects two existing nodes and returns the new element ID.
func (s *Structure) AddElement(node1, node2, material, section int) (int, error) {
	e := Element{Node1: node1, Node2: node2, Material: material, Section: section}
	if err := s.checkElement(e); err != nil {
		return 0, err
	}
	e.ID = s.elementIDs.acquire()
	s.elements[e.ID] = e
	return e.ID, nil
}

// PutElement adds an element with an explicit identifier.
func (s *Structure) PutElement(e Element) error {
	if e.ID <= 0 {
		return invalidf("element id must be positive, got %d", e.ID)
	}
	if _, ok := s.elements[e.ID]; ok {
		return fmt.Errorf("element %d: %w", e.ID, ErrDuplicateID)
	}
	if err := s.checkElement(e); err != nil {
		return fmt.Errorf("element %d: %w", e.ID, err)
	}
	s.elementIDs.reserve(e.ID)
	s.elements[e.ID] = e
	return nil
}

func (s *Structure) checkElement(e Element) error {
	if e.Node1 == e.Node2 {
		return ErrSameNode
	}
	for _, n := range []int{e.Node1, e.Node2} {
		if _, ok := s.nodes[n]; !ok {
			return fmt.Errorf("node %d: %w", n, ErrNodeNotFound)
		}
	}
	if _, ok := s.materials[e.Material]; !ok {
		return fmt.Errorf("material %d: %w", e.Material, ErrMaterialNotFound)
	}
	if _, ok := s.sections[e.Section]; !ok {
		return fmt.Errorf("section %d: %w", e.Section, ErrSectionNotFound)
	}
	return nil
}

// RemoveElement deletes an element. Its nodes stay.
func (s *Structure) RemoveElement(id int) error {
	if _, ok := s.elements[id]; !ok {
		return fmt.Errorf("element %d: %w", id, ErrElementNotFound)
	}
	delete(s.elements, id)
	s.elementIDs.release(id)
	return nil
}

// Element returns the element with the given identifier.
func (s *Structure) Element(id int) (Element, bool) {
	e, ok := s.elements[id]
	return e, ok
}

// SetSupport replaces the support of a node. A free Support removes it.
func (s *Structure) SetSupport(node int, sup Support) error {
	if _, ok := s.nodes[node]; !ok {
		return fmt.Errorf("node %d: %w", node, ErrNodeNotFound)
	}
	if sup.Count() == 0 {
		delete(s.supports, node)
		return nil
	}
	s.supports[node] = sup
	return nil
}

// AddLoad accumulates a load on a node under the named case. An empty case
// name means DefaultCase.
func (s *Structure) AddLoad(node int, loadCase string, l Load) error {
	if _, ok := s.nodes[node]; !ok {
		return fmt.Errorf("node %d: %w", node, ErrNodeNotFound)
	}
	if loadCase == "" {
		loadCase = DefaultCase
	}
	cases, ok := s.loads[node]
	if !ok {
		cases = make(map[string]Load)
		s.loads[node] = cases
	}
	cases[loadCase] = cases[loadCase].Add(l)
	return nil
}

// ClearLoads removes every load on a node.
func (s *Structure) ClearLoads(node int) {
	delete(s.loads, node)
}

// LoadCases returns the distinct case names in use, sorted.
func (s *Structure) LoadCases() []string {
	seen := map[string]bool{}
	for _, cases := range s.loads {
		for name := range cases {
			seen[name] = true
		}
	}
	out := make([]string, 0, len(seen))
	for name := range seen {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// UseCombination selects the factors applied when the per-node load is read.
func (s *Structure) UseCombination(combo nscp.LoadCombination) {
	s.combo = combo
}

// Combination returns the active load combination.
func (s *Structure) Combination() nscp.LoadCombination { return s.combo }

// Material returns the material with the given identifier.
func (s *Structure) Material(id int) (Material, bool) {
	m, ok := s.materials[id]
	return m, ok
}

// Section returns the section with the given identifier.
func (s *Structure) Section(id int) (Section, bool) {
	sec, ok := s.sections[id]
	return sec, ok
}

// Support returns the support of a node; free when none is set.
func (s *Structure) Support(node int) Support { return s.supports[node] }

// Load returns the combined load on a node under the active combination.
func (s *Structure) Load(node int) Load {
	cases := s.loads[node]
	names := make([]string, 0, len(cases))
	for name := range cases {
		names = append(names, name)
	}
	sort.Strings(names)

	var total Load
	for _, name := range names {
		total = total.Add(cases[name].Scale(s.combo.Factor(name)))
	}
	return total
}
