package section

import "fmt"

// Shape describes a member cross-section. Either Width and Height (a solid
// rectangle) or Vertices (a simple polygon, any winding) must be given.
// The section is defined in a local coordinate system where:
// - Y-axis points upward (bending is about the horizontal centroidal axis)
// - X-axis points to the right
// - Origin can be at any convenient location
type Shape struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`

	// Rectangle dimensions
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`

	// Polygon outline, no holes
	Vertices []Point `json:"vertices,omitempty"`
}

// Point represents a 2D coordinate
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Properties holds calculated geometric properties
type Properties struct {
	// Overall dimensions
	Width  float64
	Height float64
	Area   float64

	// Centroid location
	CentroidX float64
	CentroidY float64

	// Second moment of area about the horizontal centroidal axis
	Inertia float64

	// Bounding box
	MinX float64
	MaxX float64
	MinY float64
	MaxY float64
}

// Rectangle returns a rectangular shape of the given width and height.
func Rectangle(width, height float64) *Shape {
	return &Shape{Width: width, Height: height}
}

// Validate checks if the shape definition is valid
func (s *Shape) Validate() error {
	if len(s.Vertices) > 0 {
		if len(s.Vertices) < 3 {
			return &ValidationError{"section must have at least 3 vertices"}
		}
		return nil
	}
	if s.Width <= 0 || s.Height <= 0 {
		return &ValidationError{msg: fmt.Sprintf("rectangle dimensions must be positive (width=%g, height=%g)", s.Width, s.Height)}
	}
	return nil
}

// ValidationError represents a section validation error
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}
