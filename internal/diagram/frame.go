package diagram

import (
	"math"

	"github.com/alexiusacademia/goframe/internal/fem"
	"github.com/alexiusacademia/goframe/internal/model"
)

// Point is a 2D coordinate.
type Point struct {
	X float64
	Y float64
}

// FrameNode is a node with its solved displacement.
type FrameNode struct {
	ID        int
	X, Y      float64
	DX, DY    float64
	RZ        float64
	Supported bool
}

// Member is an element drawn between two nodes.
type Member struct {
	ID    int
	Node1 int
	Node2 int
}

// FrameData holds everything needed to draw a frame and its deflected
// shape. Scale magnifies displacements.
type FrameData struct {
	Title   string
	Nodes   []FrameNode
	Members []Member
	Scale   float64
}

// NewFrameData collects node positions and displacements from a solved
// structure.
func NewFrameData(st *model.Structure, sol *fem.Solution, scale float64) FrameData {
	data := FrameData{Title: st.Name, Scale: scale}
	for _, id := range st.NodeIDs() {
		n, _ := st.Node(id)
		fn := FrameNode{ID: id, X: n.X, Y: n.Y, Supported: st.Support(id).Count() > 0}
		if sol != nil {
			if d, ok := sol.Displacement(id); ok {
				fn.DX, fn.DY, fn.RZ = d.DX, d.DY, d.RZ
			}
		}
		data.Nodes = append(data.Nodes, fn)
	}
	for _, id := range st.ElementIDs() {
		e, _ := st.Element(id)
		data.Members = append(data.Members, Member{ID: id, Node1: e.Node1, Node2: e.Node2})
	}
	return data
}

func (f FrameData) nodeIndex() map[int]FrameNode {
	idx := make(map[int]FrameNode, len(f.Nodes))
	for _, n := range f.Nodes {
		idx[n.ID] = n
	}
	return idx
}

// Undeformed returns the two end points of a member.
func (f FrameData) Undeformed(m Member) []Point {
	idx := f.nodeIndex()
	a, b := idx[m.Node1], idx[m.Node2]
	return []Point{{X: a.X, Y: a.Y}, {X: b.X, Y: b.Y}}
}

// Deflected samples the scaled deflected shape of a member at segments+1
// points. Axial movement is linear along the member; transverse movement
// follows the cubic Hermite curve through the end displacements and
// rotations.
func (f FrameData) Deflected(m Member, segments int) []Point {
	if segments < 1 {
		segments = 1
	}
	idx := f.nodeIndex()
	a, b := idx[m.Node1], idx[m.Node2]

	dx, dy := b.X-a.X, b.Y-a.Y
	length := math.Hypot(dx, dy)
	if length == 0 {
		return []Point{{X: a.X + f.Scale*a.DX, Y: a.Y + f.Scale*a.DY}}
	}
	c, s := dx/length, dy/length

	u1 := c*a.DX + s*a.DY
	v1 := -s*a.DX + c*a.DY
	u2 := c*b.DX + s*b.DY
	v2 := -s*b.DX + c*b.DY

	pts := make([]Point, 0, segments+1)
	for k := 0; k <= segments; k++ {
		xi := float64(k) / float64(segments)
		xi2, xi3 := xi*xi, xi*xi*xi
		u := (1-xi)*u1 + xi*u2
		v := (1-3*xi2+2*xi3)*v1 +
			length*(xi-2*xi2+xi3)*a.RZ +
			(3*xi2-2*xi3)*v2 +
			length*(xi3-xi2)*b.RZ

		xl := xi*length + f.Scale*u
		yl := f.Scale * v
		pts = append(pts, Point{X: a.X + c*xl - s*yl, Y: a.Y + s*xl + c*yl})
	}
	return pts
}

// bounds returns the extent of the undeformed and deflected geometry.
func (f FrameData) bounds(segments int) (minX, minY, maxX, maxY float64, ok bool) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	grow := func(p Point) {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
		ok = true
	}
	for _, n := range f.Nodes {
		grow(Point{X: n.X, Y: n.Y})
	}
	for _, m := range f.Members {
		for _, p := range f.Deflected(m, segments) {
			grow(p)
		}
	}
	return minX, minY, maxX, maxY, ok
}
