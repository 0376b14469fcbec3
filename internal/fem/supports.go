package fem

import "github.com/alexiusacademia/goframe/internal/matrix"

// ApplySupports constrains k and f in place for every fixed DOF of st and
// returns the number of constrained equations.
func ApplySupports(k *matrix.Dense, f *matrix.Vector, st Structure, dof *DOFMap) int {
	snap := &snapshot{}
	for _, id := range dof.IDs() {
		nd := nodeData{id: id}
		nd.fixed[DOFX], nd.fixed[DOFY], nd.fixed[DOFRotation] = st.NodeSupport(id)
		snap.nodes = append(snap.nodes, nd)
	}
	return applySupports(k, f, snap, dof)
}

// applySupports enforces zero displacement at every fixed DOF: the row and
// column are zeroed, the diagonal set to 1 and the load entry cleared, so
// the solved displacement there is exactly zero.
func applySupports(k *matrix.Dense, f *matrix.Vector, snap *snapshot, dof *DOFMap) int {
	fixed := 0
	for _, nd := range snap.nodes {
		for local := 0; local < DOFsPerNode; local++ {
			if !nd.fixed[local] {
				continue
			}
			g, ok := dof.DOF(nd.id, local)
			if !ok {
				continue
			}
			k.ZeroRow(g)
			k.ZeroCol(g)
			k.Set(g, g, 1)
			f.Set(g, 0)
			fixed++
		}
	}
	return fixed
}
