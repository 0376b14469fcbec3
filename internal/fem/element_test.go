package fem

import (
	"math"
	"testing"

	"github.com/alexiusacademia/goframe/internal/matrix"
	"github.com/alexiusacademia/goframe/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestLocalStiffnessTerms(t *testing.T) {
	k := LocalStiffness(200, 10, 5, 2)

	assert.InDelta(t, 1000, k.At(0, 0), tol) // EA/L
	assert.InDelta(t, -1000, k.At(0, 3), tol)
	assert.InDelta(t, 1500, k.At(1, 1), tol) // 12EI/L³
	assert.InDelta(t, 1500, k.At(1, 2), tol) // 6EI/L²
	assert.InDelta(t, 2000, k.At(2, 2), tol) // 4EI/L
	assert.InDelta(t, 1000, k.At(2, 5), tol) // 2EI/L
	assert.InDelta(t, -1500, k.At(4, 5), tol)
	assert.True(t, mat.Equal(k.Mat(), k.Mat().T()))
}

func TestGlobalStiffnessRotation(t *testing.T) {
	local := LocalStiffness(200, 10, 5, 2)

	horizontal := GlobalStiffness(local, Rotation(1, 0))
	assert.Equal(t, local.RawData(), horizontal.RawData())

	vertical := GlobalStiffness(local, Rotation(0, 1))
	assert.InDelta(t, 1500, vertical.At(0, 0), tol, "x is transverse for a vertical member")
	assert.InDelta(t, 1000, vertical.At(1, 1), tol, "y is axial for a vertical member")
	assert.InDelta(t, -1500, vertical.At(0, 2), tol)
	assert.InDelta(t, 0, vertical.At(1, 2), tol)

	c, s := math.Cos(0.7), math.Sin(0.7)
	inclined := GlobalStiffness(local, Rotation(c, s))
	assert.True(t, mat.EqualApprox(inclined.Mat(), inclined.Mat().T(), 1e-9))
}

func TestOrientation(t *testing.T) {
	assert.InDelta(t, 0, Orientation(0, 0, 2, 0), tol)
	assert.InDelta(t, 0, Orientation(2, 0, 0, 0), tol)
	assert.InDelta(t, math.Pi/2, Orientation(0, 0, 0, 2), tol)
	assert.InDelta(t, math.Pi/2, Orientation(0, 2, 0, 0), tol)
	assert.InDelta(t, math.Pi/4, Orientation(0, 0, -1, -1), tol)
}

func TestElementPrepareRejectsBadData(t *testing.T) {
	good := elementData{id: 1, node1: 1, node2: 2, x2: 3, y2: 4, e: 1, a: 1, i: 1}
	require.NoError(t, good.prepare())
	assert.InDelta(t, 5, good.length, tol)
	assert.InDelta(t, 0.6, good.cos, tol)
	assert.InDelta(t, 0.8, good.sin, tol)

	cases := map[string]func(*elementData){
		"same node":    func(e *elementData) { e.node2 = e.node1 },
		"zero length":  func(e *elementData) { e.x2, e.y2 = 0, 0 },
		"nan position": func(e *elementData) { e.x1 = math.NaN() },
		"inf modulus":  func(e *elementData) { e.e = math.Inf(1) },
		"zero area":    func(e *elementData) { e.a = 0 },
		"neg inertia":  func(e *elementData) { e.i = -1 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			el := elementData{id: 1, node1: 1, node2: 2, x2: 3, y2: 4, e: 1, a: 1, i: 1}
			mutate(&el)
			assert.ErrorIs(t, el.prepare(), ErrInvalidElement)
		})
	}
}

func TestAssembleIsSymmetricBeforeSupports(t *testing.T) {
	s := portal(t)

	k, f, dof, err := Assemble(s)
	require.NoError(t, err)
	require.Equal(t, 12, k.Rows())
	assert.Equal(t, 12, f.Len())
	assert.True(t, mat.EqualApprox(k.Mat(), k.Mat().T(), 1e-6))

	g, ok := dof.DOF(3, DOFY)
	require.True(t, ok)
	assert.Equal(t, -20.0, f.At(g))

	n := ApplySupports(k, f, s, dof)
	assert.Equal(t, 5, n)
	g, _ = dof.DOF(1, DOFRotation)
	assert.Equal(t, 1.0, k.At(g, g))
	for j := 0; j < k.Cols(); j++ {
		if j != g {
			assert.Zero(t, k.At(g, j))
			assert.Zero(t, k.At(j, g))
		}
	}
}

func TestApplySupportsClearsLoadAtFixedDOF(t *testing.T) {
	s, root, _ := cantilever(t, 0, 0, 2, 0, model.Load{FY: -3})
	require.NoError(t, s.AddLoad(root, "", model.Load{FY: 9}))

	k, f, dof, err := Assemble(s)
	require.NoError(t, err)
	g, _ := dof.DOF(root, DOFY)
	require.Equal(t, 9.0, f.At(g))

	ApplySupports(k, f, s, dof)
	assert.Zero(t, f.At(g))

	x, err := matrix.SolveLU(k, f)
	require.NoError(t, err)
	assert.Zero(t, x.At(g))
}

func TestAssembleReportsDanglingElement(t *testing.T) {
	_, _, _, err := Assemble(danglingStructure{})
	assert.ErrorIs(t, err, ErrInvalidElement)
}

// danglingStructure lists an element whose second node does not exist.
type danglingStructure struct{}

func (danglingStructure) NodeIDs() []int                                 { return []int{1} }
func (danglingStructure) ElementIDs() []int                              { return []int{1} }
func (danglingStructure) NodePosition(id int) (float64, float64, bool)   { return 0, 0, id == 1 }
func (danglingStructure) ElementRef(int) (int, int, int, int, bool)      { return 1, 2, 1, 1, true }
func (danglingStructure) MaterialModulus(int) (float64, bool)            { return 1, true }
func (danglingStructure) SectionProperties(int) (float64, float64, bool) { return 1, 1, true }
func (danglingStructure) NodeLoad(int) (float64, float64, float64)       { return 0, 1, 0 }
func (danglingStructure) NodeSupport(int) (bool, bool, bool)             { return true, true, true }
func (danglingStructure) NodeCount() int                                 { return 1 }
func (danglingStructure) ElementCount() int                              { return 1 }
func (danglingStructure) LoadComponentCount() int                        { return 1 }
func (danglingStructure) FixedDOFCount() int                             { return 3 }

// phantomNodeStructure lists node 2 but cannot place it.
type phantomNodeStructure struct{ danglingStructure }

func (phantomNodeStructure) NodeIDs() []int { return []int{1, 2} }

func TestUnplacedNodeIsInvalidNode(t *testing.T) {
	_, _, _, err := Assemble(phantomNodeStructure{})
	require.ErrorIs(t, err, ErrInvalidNode)

	_, err = NewSolver().Solve(phantomNodeStructure{})
	assert.Equal(t, ReasonInvalidNode, ReasonOf(err))
	assert.Equal(t, "InvalidNode", ReasonInvalidNode.String())
}
