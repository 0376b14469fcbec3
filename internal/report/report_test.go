package report

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexiusacademia/goframe/internal/fem"
	"github.com/alexiusacademia/goframe/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

const tol = 1e-9

func solvedCantilever(t *testing.T, opts ...fem.Option) *Report {
	t.Helper()
	s := model.New()
	s.Name = "Cantilever"
	s.Units = "kN, m"
	require.NoError(t, s.AddMaterial(model.Material{ID: 1, E: 200}))
	require.NoError(t, s.AddSection(model.Section{ID: 1, A: 10, I: 5}))
	a, b := s.AddNode(0, 0), s.AddNode(2, 0)
	_, err := s.AddElement(a, b, 1, 1)
	require.NoError(t, err)
	require.NoError(t, s.SetSupport(a, model.Support{FixedX: true, FixedY: true, FixedRotation: true}))
	require.NoError(t, s.AddLoad(b, "", model.Load{FY: -3}))

	sol, err := fem.NewSolver(opts...).Solve(s)
	require.NoError(t, err)
	return New(s, sol)
}

func TestNewCollectsRows(t *testing.T) {
	r := solvedCantilever(t)

	assert.Equal(t, "Cantilever", r.Title)
	require.Len(t, r.Nodes, 2)
	assert.InDelta(t, -0.008, r.Nodes[1].DY, tol)

	require.Len(t, r.Reactions, 1)
	assert.Equal(t, 1, r.Reactions[0].Node)
	assert.InDelta(t, 3, r.Reactions[0].FY, tol)
	assert.InDelta(t, 6, r.Reactions[0].MZ, tol)

	require.Len(t, r.Elements, 1)
	assert.InDelta(t, 2, r.Elements[0].Length, tol)
	assert.InDelta(t, 6, r.Elements[0].Forces.M1, tol)

	assert.Equal(t, 2, r.MaxNode)
	assert.InDelta(t, 0.008, r.MaxDisplacement, tol)
	assert.False(t, r.HasCondition)
	assert.Equal(t, "0: unfactored sum of all cases", r.Combination)
}

func TestWriteText(t *testing.T) {
	r := solvedCantilever(t, fem.WithConditionEstimate(true))

	var buf bytes.Buffer
	require.NoError(t, r.WriteText(&buf))
	out := buf.String()
	assert.Contains(t, out, "Cantilever")
	assert.Contains(t, out, "Units:       kN, m")
	assert.Contains(t, out, "NODAL DISPLACEMENTS:")
	assert.Contains(t, out, "-8.000000e-03")
	assert.Contains(t, out, "SUPPORT REACTIONS:")
	assert.Contains(t, out, "6.0000")
	assert.Contains(t, out, "Max displacement: 8.000000e-03 at node 2")
	assert.Contains(t, out, "Condition number:")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, os.ErrClosed }

func TestWriteTextReportsWriteError(t *testing.T) {
	r := solvedCantilever(t)
	assert.ErrorIs(t, r.WriteText(failingWriter{}), os.ErrClosed)
}

func TestWorkbookRoundTrip(t *testing.T) {
	r := solvedCantilever(t)
	path := filepath.Join(t.TempDir(), "result.xlsx")
	require.NoError(t, r.WriteWorkbook(path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{SheetSummary, SheetDisplacements, SheetReactions, SheetForces}, f.GetSheetList())

	title, err := f.GetCellValue(SheetSummary, "B1")
	require.NoError(t, err)
	assert.Equal(t, "Cantilever", title)

	head, err := f.GetCellValue(SheetForces, "J1")
	require.NoError(t, err)
	assert.Equal(t, "M2", head)

	nodes, err := readDisplacements(path)
	require.NoError(t, err)
	require.Len(t, nodes, 2)
	assert.Equal(t, 2, nodes[1].ID)
	assert.InDelta(t, 2, nodes[1].X, tol)
	assert.InDelta(t, -0.008, nodes[1].DY, 1e-12)
	assert.InDelta(t, -0.006, nodes[1].RZ, 1e-12)
}

func TestReadDisplacementsMissingFile(t *testing.T) {
	_, err := readDisplacements(filepath.Join(t.TempDir(), "none.xlsx"))
	assert.Error(t, err)
}

func TestWritePDF(t *testing.T) {
	r := solvedCantilever(t, fem.WithConditionEstimate(true))
	path := filepath.Join(t.TempDir(), "result.pdf")
	require.NoError(t, r.WritePDF(path))

	body, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(body, []byte("%PDF-")))
}
