package fem

import (
	"fmt"

	"github.com/alexiusacademia/goframe/internal/graph"
)

// Validate runs the pre-solve checks in order: elements present, at least
// one non-zero load, at least one fixed DOF, and a connected node graph.
// The first failing check is returned.
func Validate(st Structure) error {
	if st.ElementCount() == 0 {
		return ErrEmptyStructure
	}
	if st.LoadComponentCount() == 0 {
		return ErrNoLoads
	}
	if st.FixedDOFCount() == 0 {
		return ErrNoBoundaryConditions
	}
	g := ConnectivityGraph(st)
	if !g.IsConnected() {
		comps := g.Components()
		return fmt.Errorf("%d separate parts: %w", len(comps), ErrStructureDisconnected)
	}
	return nil
}

// ConnectivityGraph returns the undirected node graph of a structure: one
// vertex per node, one edge per element. Isolated nodes are vertices
// without edges.
func ConnectivityGraph(st Structure) *graph.Graph {
	g := graph.New()
	for _, id := range st.NodeIDs() {
		g.AddVertex(id)
	}
	for _, id := range st.ElementIDs() {
		n1, n2, _, _, ok := st.ElementRef(id)
		if !ok {
			continue
		}
		g.AddEdge(n1, n2)
	}
	return g
}

// Connected reports whether every node is reachable from every other via
// elements. A structure without nodes counts as connected.
func Connected(st Structure) bool {
	return ConnectivityGraph(st).IsConnected()
}
