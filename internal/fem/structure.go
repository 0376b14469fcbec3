package fem

import (
	"fmt"
	"math"
)

// Structure is the read-only view of a frame model the solver consumes.
// Identifier lists must be de-duplicated; lookups report ok=false for
// unknown identifiers. Nodes without a load or support report zeros.
type Structure interface {
	NodeIDs() []int
	ElementIDs() []int
	NodePosition(id int) (x, y float64, ok bool)
	ElementRef(id int) (node1, node2, material, section int, ok bool)
	MaterialModulus(id int) (float64, bool)
	SectionProperties(id int) (area, inertia float64, ok bool)
	NodeLoad(id int) (fx, fy, mz float64)
	NodeSupport(id int) (fixedX, fixedY, fixedRotation bool)
	NodeCount() int
	ElementCount() int
	LoadComponentCount() int
	FixedDOFCount() int
}

// nodeData is a copy of everything the solver reads about a node.
type nodeData struct {
	id    int
	x, y  float64
	load  [DOFsPerNode]float64
	fixed [DOFsPerNode]bool
}

// elementData is a copy of everything the solver reads about an element.
type elementData struct {
	id       int
	node1    int
	node2    int
	x1, y1   float64
	x2, y2   float64
	e, a, i  float64
	length   float64
	cos, sin float64
}

// snapshot freezes the structure so assembly never re-queries mutable state.
type snapshot struct {
	nodes    []nodeData
	elements []elementData
}

func (s *snapshot) dofMap() *DOFMap {
	ids := make([]int, len(s.nodes))
	for i, n := range s.nodes {
		ids[i] = n.id
	}
	return NewDOFMap(ids)
}

func takeSnapshot(st Structure) (*snapshot, error) {
	ids := st.NodeIDs()
	snap := &snapshot{nodes: make([]nodeData, 0, len(ids))}
	pos := make(map[int][2]float64, len(ids))
	for _, id := range ids {
		x, y, ok := st.NodePosition(id)
		if !ok {
			return nil, fmt.Errorf("node %d listed but not found: %w", id, ErrInvalidNode)
		}
		n := nodeData{id: id, x: x, y: y}
		n.load[DOFX], n.load[DOFY], n.load[DOFRotation] = st.NodeLoad(id)
		n.fixed[DOFX], n.fixed[DOFY], n.fixed[DOFRotation] = st.NodeSupport(id)
		snap.nodes = append(snap.nodes, n)
		pos[id] = [2]float64{x, y}
	}

	for _, id := range st.ElementIDs() {
		el, err := readElement(st, id, pos)
		if err != nil {
			return nil, err
		}
		snap.elements = append(snap.elements, el)
	}
	return snap, nil
}

func readElement(st Structure, id int, pos map[int][2]float64) (elementData, error) {
	el := elementData{id: id}
	n1, n2, mat, sec, ok := st.ElementRef(id)
	if !ok {
		return el, fmt.Errorf("element %d listed but not found: %w", id, ErrInvalidElement)
	}
	p1, ok1 := pos[n1]
	p2, ok2 := pos[n2]
	if !ok1 || !ok2 {
		return el, fmt.Errorf("element %d references a missing node: %w", id, ErrInvalidElement)
	}
	e, ok := st.MaterialModulus(mat)
	if !ok {
		return el, fmt.Errorf("element %d references missing material %d: %w", id, mat, ErrInvalidElement)
	}
	a, i, ok := st.SectionProperties(sec)
	if !ok {
		return el, fmt.Errorf("element %d references missing section %d: %w", id, sec, ErrInvalidElement)
	}

	el.node1, el.node2 = n1, n2
	el.x1, el.y1, el.x2, el.y2 = p1[0], p1[1], p2[0], p2[1]
	el.e, el.a, el.i = e, a, i
	if err := el.prepare(); err != nil {
		return el, err
	}
	return el, nil
}

// prepare derives length and direction cosines, rejecting geometry or
// properties that would make the stiffness terms non-finite.
func (el *elementData) prepare() error {
	if el.node1 == el.node2 {
		return fmt.Errorf("element %d has both ends on node %d: %w", el.id, el.node1, ErrInvalidElement)
	}
	for _, v := range []float64{el.x1, el.y1, el.x2, el.y2, el.e, el.a, el.i} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("element %d has non-finite data: %w", el.id, ErrInvalidElement)
		}
	}
	if el.e <= 0 || el.a <= 0 || el.i <= 0 {
		return fmt.Errorf("element %d needs positive E, A and I (E=%g A=%g I=%g): %w", el.id, el.e, el.a, el.i, ErrInvalidElement)
	}
	dx, dy := el.x2-el.x1, el.y2-el.y1
	el.length = math.Hypot(dx, dy)
	if el.length == 0 {
		return fmt.Errorf("element %d has zero length: %w", el.id, ErrInvalidElement)
	}
	el.cos, el.sin = dx/el.length, dy/el.length
	return nil
}
