package section

import (
	"encoding/json"
	"math"
	"os"
)

// LoadFromFile loads a shape definition from a JSON file
func LoadFromFile(filepath string) (*Shape, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, err
	}

	var shape Shape
	if err := json.Unmarshal(data, &shape); err != nil {
		return nil, err
	}

	if err := shape.Validate(); err != nil {
		return nil, err
	}

	return &shape, nil
}

// CalculateProperties computes geometric properties of the shape
func (s *Shape) CalculateProperties() (*Properties, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	outline := s.Outline()
	props := &Properties{}

	// Find bounding box
	props.MinX, props.MaxX = outline[0].X, outline[0].X
	props.MinY, props.MaxY = outline[0].Y, outline[0].Y

	for _, v := range outline {
		props.MinX = math.Min(props.MinX, v.X)
		props.MaxX = math.Max(props.MaxX, v.X)
		props.MinY = math.Min(props.MinY, v.Y)
		props.MaxY = math.Max(props.MaxY, v.Y)
	}

	props.Width = props.MaxX - props.MinX
	props.Height = props.MaxY - props.MinY

	var ix float64
	props.Area, props.CentroidX, props.CentroidY, ix = polygonMoments(outline)
	if props.Area == 0 {
		return nil, &ValidationError{"section outline encloses no area"}
	}

	// Parallel axis theorem, moved to the centroid
	props.Inertia = ix - props.Area*props.CentroidY*props.CentroidY

	return props, nil
}

// Outline returns the polygon the properties are integrated over.
func (s *Shape) Outline() []Point {
	if len(s.Vertices) > 0 {
		return s.Vertices
	}
	return []Point{
		{X: 0, Y: 0},
		{X: s.Width, Y: 0},
		{X: s.Width, Y: s.Height},
		{X: 0, Y: s.Height},
	}
}

// polygonMoments uses the shoelace formula for area and centroid, and the
// matching edge sum for the second moment about the global X axis. The
// winding direction only flips signs, which are normalized away.
func polygonMoments(vertices []Point) (area, cx, cy, ix float64) {
	n := len(vertices)

	var signedArea float64
	var sumX, sumY, sumIx float64

	for i := 0; i < n; i++ {
		j := (i + 1) % n
		vi, vj := vertices[i], vertices[j]
		cross := vi.X*vj.Y - vj.X*vi.Y
		signedArea += cross
		sumX += (vi.X + vj.X) * cross
		sumY += (vi.Y + vj.Y) * cross
		sumIx += (vi.Y*vi.Y + vi.Y*vj.Y + vj.Y*vj.Y) * cross
	}

	signedArea /= 2
	area = math.Abs(signedArea)

	if area > 0 {
		cx = sumX / (6 * signedArea)
		cy = sumY / (6 * signedArea)
		ix = math.Abs(sumIx / 12)
	}

	return area, cx, cy, ix
}
