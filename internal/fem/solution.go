package fem

import (
	"math"

	"github.com/alexiusacademia/goframe/internal/matrix"
)

// Displacement is the solved movement of a node.
type Displacement struct {
	DX, DY, RZ float64
}

// Translation returns the magnitude of the in-plane movement.
func (d Displacement) Translation() float64 { return math.Hypot(d.DX, d.DY) }

// Reaction is the support force at a node. Components at free DOFs are zero.
type Reaction struct {
	FX, FY, MZ float64
}

// EndForces are the element end actions in local axes: axial, shear and
// moment at node1 followed by node2, with the local sign convention of the
// element stiffness.
type EndForces struct {
	N1, V1, M1 float64
	N2, V2, M2 float64
}

// Solution holds the result of one successful solve.
type Solution struct {
	dof        *DOFMap
	d          []float64
	reactions  []float64
	fixed      []bool
	forces     map[int]EndForces
	elementIDs []int
	cond       float64
	hasCond    bool
}

func newSolution(snap *snapshot, dof *DOFMap, d *matrix.Vector, k0 *matrix.Dense, f0 *matrix.Vector) *Solution {
	sol := &Solution{
		dof:    dof,
		d:      append([]float64(nil), d.RawData()...),
		fixed:  make([]bool, dof.Size()),
		forces: make(map[int]EndForces, len(snap.elements)),
	}

	for _, nd := range snap.nodes {
		for local := 0; local < DOFsPerNode; local++ {
			if g, ok := dof.DOF(nd.id, local); ok && nd.fixed[local] {
				sol.fixed[g] = true
			}
		}
	}

	r := k0.MulVec(d).Sub(f0)
	sol.reactions = make([]float64, dof.Size())
	for g, fixed := range sol.fixed {
		if fixed {
			sol.reactions[g] = r.At(g)
		}
	}

	for idx := range snap.elements {
		el := &snap.elements[idx]
		sol.forces[el.id] = el.endForces(d, dof)
		sol.elementIDs = append(sol.elementIDs, el.id)
	}
	return sol
}

// endForces computes K_local·R·d_e for one element.
func (el *elementData) endForces(d *matrix.Vector, dof *DOFMap) EndForces {
	dofs := elementDOFs(el, dof)
	de := matrix.NewVector(len(dofs))
	for i, g := range dofs {
		de.Set(i, d.At(g))
	}
	f := el.localStiffness().MulVec(el.rotation().MulVec(de))
	return EndForces{
		N1: f.At(0), V1: f.At(1), M1: f.At(2),
		N2: f.At(3), V2: f.At(4), M2: f.At(5),
	}
}

// Displacement returns the displacement of a node.
func (s *Solution) Displacement(id int) (Displacement, bool) {
	i, ok := s.dof.Index(id)
	if !ok {
		return Displacement{}, false
	}
	b := i * DOFsPerNode
	return Displacement{DX: s.d[b+DOFX], DY: s.d[b+DOFY], RZ: s.d[b+DOFRotation]}, true
}

// Reaction returns the support reaction at a node. ok is false for unknown
// nodes and for nodes without any fixed DOF.
func (s *Solution) Reaction(id int) (Reaction, bool) {
	i, ok := s.dof.Index(id)
	if !ok {
		return Reaction{}, false
	}
	b := i * DOFsPerNode
	if !s.fixed[b+DOFX] && !s.fixed[b+DOFY] && !s.fixed[b+DOFRotation] {
		return Reaction{}, false
	}
	return Reaction{FX: s.reactions[b+DOFX], FY: s.reactions[b+DOFY], MZ: s.reactions[b+DOFRotation]}, true
}

// ElementForces returns the local end forces of an element.
func (s *Solution) ElementForces(id int) (EndForces, bool) {
	f, ok := s.forces[id]
	return f, ok
}

// NodeIDs returns the solved node identifiers in ascending order.
func (s *Solution) NodeIDs() []int { return s.dof.IDs() }

// ElementIDs returns the solved element identifiers in ascending order.
func (s *Solution) ElementIDs() []int { return append([]int(nil), s.elementIDs...) }

// Vector returns a copy of the raw displacement vector in DOF order.
func (s *Solution) Vector() []float64 { return append([]float64(nil), s.d...) }

// MaxDisplacement returns the node with the largest translation. ok is
// false for an empty solution.
func (s *Solution) MaxDisplacement() (node int, d Displacement, ok bool) {
	best := -1.0
	for _, id := range s.dof.IDs() {
		cur, _ := s.Displacement(id)
		if t := cur.Translation(); t > best {
			best, node, d, ok = t, id, cur, true
		}
	}
	return node, d, ok
}

// Condition returns the 1-norm condition number estimate of the
// constrained stiffness matrix, when it was requested.
func (s *Solution) Condition() (float64, bool) { return s.cond, s.hasCond }
