package diagram

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alexiusacademia/goframe/internal/fem"
	"github.com/alexiusacademia/goframe/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-9

// Tip of a 2 m cantilever with EI = 1000 under a 3 kN downward load.
func cantileverData(x1, x2 float64, rz float64) FrameData {
	return FrameData{
		Scale: 1,
		Nodes: []FrameNode{
			{ID: 1, X: x1, Supported: true},
			{ID: 2, X: x2, DY: -0.008, RZ: rz},
		},
		Members: []Member{{ID: 1, Node1: 1, Node2: 2}},
	}
}

func TestDeflectedFollowsBeamCurve(t *testing.T) {
	data := cantileverData(0, 2, -0.006)
	pts := data.Deflected(data.Members[0], 2)
	require.Len(t, pts, 3)

	assert.InDelta(t, 0, pts[0].Y, tol)
	assert.InDelta(t, 1, pts[1].X, tol)
	assert.InDelta(t, -0.0025, pts[1].Y, tol, "Px²(3L-x)/6EI at mid-span")
	assert.InDelta(t, 2, pts[2].X, tol)
	assert.InDelta(t, -0.008, pts[2].Y, tol)
}

func TestDeflectedPointingLeft(t *testing.T) {
	data := cantileverData(2, 0, 0.006)
	pts := data.Deflected(data.Members[0], 2)
	require.Len(t, pts, 3)

	assert.InDelta(t, 1, pts[1].X, tol)
	assert.InDelta(t, -0.0025, pts[1].Y, tol)
	assert.InDelta(t, 0, pts[2].X, tol)
	assert.InDelta(t, -0.008, pts[2].Y, tol)
}

func TestDeflectedIsScaled(t *testing.T) {
	data := cantileverData(0, 2, -0.006)
	data.Scale = 100
	pts := data.Deflected(data.Members[0], 1)
	assert.InDelta(t, -0.8, pts[1].Y, tol)
}

func TestNewFrameDataFromSolution(t *testing.T) {
	s := model.New()
	require.NoError(t, s.AddMaterial(model.Material{ID: 1, E: 200}))
	require.NoError(t, s.AddSection(model.Section{ID: 1, A: 10, I: 5}))
	a, b := s.AddNode(0, 0), s.AddNode(2, 0)
	_, err := s.AddElement(a, b, 1, 1)
	require.NoError(t, err)
	require.NoError(t, s.SetSupport(a, model.Support{FixedX: true, FixedY: true, FixedRotation: true}))
	require.NoError(t, s.AddLoad(b, "", model.Load{FY: -3}))

	sol, err := fem.NewSolver().Solve(s)
	require.NoError(t, err)

	data := NewFrameData(s, sol, 50)
	require.Len(t, data.Nodes, 2)
	require.Len(t, data.Members, 1)
	assert.True(t, data.Nodes[0].Supported)
	assert.False(t, data.Nodes[1].Supported)
	assert.InDelta(t, -0.008, data.Nodes[1].DY, tol)
	assert.InDelta(t, -0.006, data.Nodes[1].RZ, tol)

	undeformed := NewFrameData(s, nil, 1)
	assert.Zero(t, undeformed.Nodes[1].DY)
}

func TestDrawFrame(t *testing.T) {
	data := cantileverData(0, 2, -0.006)
	data.Scale = 50

	out := DrawFrame(data, 40, 10)
	assert.Contains(t, out, "DEFLECTED SHAPE (displacements ×50)")
	assert.Contains(t, out, string(glyphSupport))
	assert.Contains(t, out, string(glyphNode))
	assert.Contains(t, out, string(glyphDeflect))
	assert.Contains(t, out, string(glyphFrame))

	assert.Contains(t, DrawFrame(FrameData{}, 40, 10), "(empty)")
}

func TestDrawSection(t *testing.T) {
	out := DrawSection(300, 500, 250)
	assert.Contains(t, out, "centroid, y = 250")
	assert.Contains(t, out, "b = 300, h = 500")
}

func TestDrawSummaryBoxIsAligned(t *testing.T) {
	out := DrawSummaryBox("RESULT", []string{"δmax = 8.000 mm", "ok"})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 6)
	width := len([]rune(lines[0]))
	for _, l := range lines {
		assert.Equal(t, width, len([]rune(l)), l)
	}
}

func TestExportFrame(t *testing.T) {
	dir := t.TempDir()
	data := cantileverData(0, 2, -0.006)
	data.Scale = 50

	png := filepath.Join(dir, "plots", "frame.png")
	require.NoError(t, ExportFrame(data, png))
	info, err := os.Stat(png)
	require.NoError(t, err)
	assert.Positive(t, info.Size())

	require.NoError(t, ExportFrame(data, filepath.Join(dir, "frame")))
	_, err = os.Stat(filepath.Join(dir, "frame.png"))
	assert.NoError(t, err)

	assert.Error(t, ExportFrame(FrameData{}, filepath.Join(dir, "empty.png")))
}

func TestExportSection(t *testing.T) {
	svg := filepath.Join(t.TempDir(), "section.svg")
	outline := []Point{{0, 0}, {300, 0}, {300, 500}, {0, 500}}
	require.NoError(t, ExportSection(outline, 250, svg))

	body, err := os.ReadFile(svg)
	require.NoError(t, err)
	assert.Contains(t, string(body), "<svg")

	assert.Error(t, ExportSection(outline[:2], 0, svg))
}
