package fem

import "math"

// OverlapPair names two elements whose segments cross or lie on top of
// each other. A is always the smaller identifier.
type OverlapPair struct {
	A, B int
}

// collinearTol scales the orientation test to the segment lengths.
const collinearTol = 1e-9

// Overlaps tests every pair of elements for geometric intersection.
// Elements that meet only at a shared node are not reported; a shared node
// only counts when the two elements run along each other from it. Elements
// with missing references or zero length are skipped.
func Overlaps(st Structure) []OverlapPair {
	segs := overlapSegments(st)
	var out []OverlapPair
	for i := 0; i < len(segs); i++ {
		for j := i + 1; j < len(segs); j++ {
			if segs[i].overlaps(&segs[j]) {
				out = append(out, OverlapPair{A: segs[i].id, B: segs[j].id})
			}
		}
	}
	return out
}

type segment struct {
	id     int
	n1, n2 int
	p1, p2 [2]float64
	length float64
}

func overlapSegments(st Structure) []segment {
	var segs []segment
	for _, id := range st.ElementIDs() {
		n1, n2, _, _, ok := st.ElementRef(id)
		if !ok {
			continue
		}
		x1, y1, ok1 := st.NodePosition(n1)
		x2, y2, ok2 := st.NodePosition(n2)
		if !ok1 || !ok2 {
			continue
		}
		s := segment{id: id, n1: n1, n2: n2, p1: [2]float64{x1, y1}, p2: [2]float64{x2, y2}}
		s.length = math.Hypot(x2-x1, y2-y1)
		if s.length == 0 || math.IsNaN(s.length) || math.IsInf(s.length, 0) {
			continue
		}
		segs = append(segs, s)
	}
	return segs
}

func (s *segment) overlaps(o *segment) bool {
	shared, sOther, oOther, ok := s.sharedNode(o)
	if ok {
		if shared < 0 {
			// same two nodes
			return true
		}
		origin := s.point(shared)
		tol := collinearTol * s.length * o.length
		if math.Abs(orient(origin, sOther, oOther)) > tol {
			return false
		}
		dot := (sOther[0]-origin[0])*(oOther[0]-origin[0]) + (sOther[1]-origin[1])*(oOther[1]-origin[1])
		return dot > 0
	}
	return s.intersects(o)
}

// sharedNode reports the node common to both segments and the far end of
// each. shared is -1 when both ends coincide.
func (s *segment) sharedNode(o *segment) (shared int, sOther, oOther [2]float64, ok bool) {
	switch {
	case (s.n1 == o.n1 && s.n2 == o.n2) || (s.n1 == o.n2 && s.n2 == o.n1):
		return -1, s.p2, o.p2, true
	case s.n1 == o.n1:
		return s.n1, s.p2, o.p2, true
	case s.n1 == o.n2:
		return s.n1, s.p2, o.p1, true
	case s.n2 == o.n1:
		return s.n2, s.p1, o.p2, true
	case s.n2 == o.n2:
		return s.n2, s.p1, o.p1, true
	}
	return 0, sOther, oOther, false
}

func (s *segment) point(node int) [2]float64 {
	if node == s.n1 {
		return s.p1
	}
	return s.p2
}

// intersects is the standard orientation test, counting touching and
// collinear overlap as intersection.
func (s *segment) intersects(o *segment) bool {
	tol := collinearTol * s.length * o.length
	d1 := sign(orient(o.p1, o.p2, s.p1), tol)
	d2 := sign(orient(o.p1, o.p2, s.p2), tol)
	d3 := sign(orient(s.p1, s.p2, o.p1), tol)
	d4 := sign(orient(s.p1, s.p2, o.p2), tol)

	if d1*d2 < 0 && d3*d4 < 0 {
		return true
	}
	return (d1 == 0 && onSegment(o.p1, o.p2, s.p1)) ||
		(d2 == 0 && onSegment(o.p1, o.p2, s.p2)) ||
		(d3 == 0 && onSegment(s.p1, s.p2, o.p1)) ||
		(d4 == 0 && onSegment(s.p1, s.p2, o.p2))
}

// orient is twice the signed area of triangle abc.
func orient(a, b, c [2]float64) float64 {
	return (b[0]-a[0])*(c[1]-a[1]) - (b[1]-a[1])*(c[0]-a[0])
}

func sign(v, tol float64) int {
	switch {
	case v > tol:
		return 1
	case v < -tol:
		return -1
	}
	return 0
}

// onSegment reports whether c, known to be collinear with ab, lies within
// the bounding box of ab.
func onSegment(a, b, c [2]float64) bool {
	return math.Min(a[0], b[0]) <= c[0] && c[0] <= math.Max(a[0], b[0]) &&
		math.Min(a[1], b[1]) <= c[1] && c[1] <= math.Max(a[1], b[1])
}
