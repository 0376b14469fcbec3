package fem

import "github.com/alexiusacademia/goframe/internal/matrix"

// Assemble returns the unconstrained global stiffness matrix and load
// vector of st together with the DOF map used to index them.
func Assemble(st Structure) (*matrix.Dense, *matrix.Vector, *DOFMap, error) {
	snap, err := takeSnapshot(st)
	if err != nil {
		return nil, nil, nil, err
	}
	dof := snap.dofMap()
	k, f := assemble(snap, dof)
	return k, f, dof, nil
}

// assemble builds the unconstrained global stiffness K (3N×3N) and load
// vector F for a snapshot. Node i occupies rows 3i..3i+2 in dof order.
func assemble(snap *snapshot, dof *DOFMap) (*matrix.Dense, *matrix.Vector) {
	n := dof.Size()
	k := matrix.NewDense(n, n)
	f := matrix.NewVector(n)

	for idx := range snap.elements {
		el := &snap.elements[idx]
		scatter(k, el.globalStiffness(), elementDOFs(el, dof))
	}

	for _, nd := range snap.nodes {
		for local := 0; local < DOFsPerNode; local++ {
			if g, ok := dof.DOF(nd.id, local); ok {
				f.Add(g, nd.load[local])
			}
		}
	}
	return k, f
}

// elementDOFs returns the six global equation numbers of an element,
// node1 first.
func elementDOFs(el *elementData, dof *DOFMap) [2 * DOFsPerNode]int {
	var out [2 * DOFsPerNode]int
	for local := 0; local < DOFsPerNode; local++ {
		out[local], _ = dof.DOF(el.node1, local)
		out[DOFsPerNode+local], _ = dof.DOF(el.node2, local)
	}
	return out
}

// scatter adds a 6×6 element matrix into the global matrix.
func scatter(k, ke *matrix.Dense, dofs [2 * DOFsPerNode]int) {
	for r, gr := range dofs {
		for c, gc := range dofs {
			k.Add(gr, gc, ke.At(r, c))
		}
	}
}
