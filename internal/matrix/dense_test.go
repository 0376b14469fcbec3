package matrix_test

import (
	"testing"

	"github.com/alexiusacademia/goframe/internal/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestDenseAccessAndBounds(t *testing.T) {
	m := matrix.NewDense(2, 3)
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Cols())

	m.Set(1, 2, 7.5)
	m.Add(1, 2, 0.5)
	assert.Equal(t, 8.0, m.At(1, 2))

	assert.Panics(t, func() { m.At(2, 0) })
	assert.Panics(t, func() { m.Set(0, -1, 1) })
	assert.Panics(t, func() { matrix.NewDense(-1, 2) })
}

func TestDenseCloneIsIndependent(t *testing.T) {
	m := matrix.Identity(2)
	c := m.Clone()
	c.Set(0, 0, 9)
	assert.Equal(t, 1.0, m.At(0, 0))
}

func TestZeroRowCol(t *testing.T) {
	m := matrix.NewDenseFrom(3, 3, []float64{
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	})
	m.ZeroRow(1)
	m.ZeroCol(2)
	assert.Equal(t, []float64{
		1, 2, 0,
		0, 0, 0,
		7, 8, 0,
	}, m.RawData())
}

func TestMulTransposeMulVec(t *testing.T) {
	a := matrix.NewDenseFrom(2, 3, []float64{
		1, 2, 3,
		4, 5, 6,
	})
	at := a.Transpose()
	require.Equal(t, 3, at.Rows())
	assert.Equal(t, 6.0, at.At(2, 1))

	p := matrix.Mul(a, at)
	assert.Equal(t, []float64{14, 32, 32, 77}, p.RawData())
	assert.True(t, mat.Equal(p.Mat(), p.Mat().T()))

	x := matrix.NewVectorFrom([]float64{1, 0, -1})
	assert.Equal(t, []float64{-2, -2}, a.MulVec(x).RawData())

	assert.Panics(t, func() { matrix.Mul(a, a) })
	assert.Panics(t, func() { a.MulVec(matrix.NewVector(2)) })
}

func TestVectorBounds(t *testing.T) {
	v := matrix.NewVector(3)
	v.Set(0, 2)
	v.Add(0, 1)
	assert.Equal(t, 3.0, v.At(0))
	assert.Panics(t, func() { v.At(3) })

	d := v.Sub(matrix.NewVectorFrom([]float64{1, 1, 1}))
	assert.Equal(t, []float64{2, -1, -1}, d.RawData())
}

func TestEmptyShapes(t *testing.T) {
	m := matrix.NewDense(0, 0)
	assert.Nil(t, m.RawData())
	assert.Equal(t, 0, m.Clone().Rows())
	assert.Equal(t, 0, m.Transpose().Cols())

	p := matrix.Mul(matrix.NewDense(2, 0), matrix.NewDense(0, 3))
	assert.Equal(t, make([]float64, 6), p.RawData())
	assert.Equal(t, 0, matrix.NewVector(0).Clone().Len())
}
