package fem

import "sort"

// DOFsPerNode is the number of degrees of freedom carried by each node:
// x-translation, y-translation and rotation, in that order.
const DOFsPerNode = 3

// Local DOF offsets within a node.
const (
	DOFX = iota
	DOFY
	DOFRotation
)

// DOFMap is a bijection between live node identifiers and dense indices
// 0..N-1 assigned in ascending identifier order. It is rebuilt for every
// solve and never cached across structure edits.
type DOFMap struct {
	ids   []int
	index map[int]int
}

// NewDOFMap builds the mapping for the given identifiers. Order and
// duplicates in ids do not matter.
func NewDOFMap(ids []int) *DOFMap {
	sorted := append([]int(nil), ids...)
	sort.Ints(sorted)
	m := &DOFMap{index: make(map[int]int, len(sorted))}
	for _, id := range sorted {
		if _, dup := m.index[id]; dup {
			continue
		}
		m.index[id] = len(m.ids)
		m.ids = append(m.ids, id)
	}
	return m
}

// Len returns the number of mapped nodes.
func (m *DOFMap) Len() int { return len(m.ids) }

// Size returns the number of degrees of freedom, 3·Len().
func (m *DOFMap) Size() int { return DOFsPerNode * len(m.ids) }

// Index returns the dense index of a node identifier.
func (m *DOFMap) Index(id int) (int, bool) {
	i, ok := m.index[id]
	return i, ok
}

// ID returns the node identifier at a dense index. It panics when i is out
// of range.
func (m *DOFMap) ID(i int) int { return m.ids[i] }

// IDs returns the mapped identifiers in ascending order.
func (m *DOFMap) IDs() []int { return append([]int(nil), m.ids...) }

// DOF returns the global equation number of a node's local DOF.
func (m *DOFMap) DOF(id, local int) (int, bool) {
	i, ok := m.index[id]
	if !ok || local < 0 || local >= DOFsPerNode {
		return 0, false
	}
	return i*DOFsPerNode + local, true
}
