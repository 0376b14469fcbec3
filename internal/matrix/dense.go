// Package matrix adapts gonum's dense storage to the frame solver: matrices
// and vectors that may be empty, bounds-checked element access, and a
// Doolittle LU factorization without pivoting.
//
// Index and shape violations are programmer errors and panic. Numeric
// failures (a zero pivot) are returned as ErrSingular.
package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Dense is a real matrix backed by a gonum *mat.Dense. gonum cannot
// allocate a zero-sized matrix, so an empty Dense keeps an empty receiver.
type Dense struct {
	r, c int
	m    *mat.Dense
}

// NewDense creates an r×c zero matrix. A zero dimension is allowed and
// yields an empty matrix; a negative one panics.
func NewDense(rows, cols int) *Dense {
	if rows < 0 || cols < 0 {
		panic(fmt.Sprintf("matrix: invalid shape %dx%d", rows, cols))
	}
	if rows == 0 || cols == 0 {
		return &Dense{r: rows, c: cols, m: &mat.Dense{}}
	}
	return &Dense{r: rows, c: cols, m: mat.NewDense(rows, cols, nil)}
}

// NewDenseFrom creates an r×c matrix copying data in row-major order.
func NewDenseFrom(rows, cols int, data []float64) *Dense {
	if len(data) != rows*cols {
		panic(fmt.Sprintf("matrix: %d values for %dx%d shape", len(data), rows, cols))
	}
	d := NewDense(rows, cols)
	if len(data) > 0 {
		copy(d.m.RawMatrix().Data, data)
	}
	return d
}

// Identity returns the n×n identity matrix.
func Identity(n int) *Dense {
	d := NewDense(n, n)
	for i := 0; i < n; i++ {
		d.m.Set(i, i, 1)
	}
	return d
}

// Rows returns the number of rows.
func (d *Dense) Rows() int { return d.r }

// Cols returns the number of columns.
func (d *Dense) Cols() int { return d.c }

// IsSquare reports whether the matrix has as many rows as columns.
func (d *Dense) IsSquare() bool { return d.r == d.c }

// Mat exposes the gonum view of d for library routines such as mat.Cond.
func (d *Dense) Mat() mat.Matrix { return d.m }

func (d *Dense) check(i, j int) {
	if i < 0 || i >= d.r || j < 0 || j >= d.c {
		panic(fmt.Sprintf("matrix: index (%d,%d) out of range for %dx%d", i, j, d.r, d.c))
	}
}

// At returns the element at (i, j).
func (d *Dense) At(i, j int) float64 {
	d.check(i, j)
	return d.m.At(i, j)
}

// Set assigns v at (i, j).
func (d *Dense) Set(i, j int, v float64) {
	d.check(i, j)
	d.m.Set(i, j, v)
}

// Add accumulates v into (i, j).
func (d *Dense) Add(i, j int, v float64) {
	d.check(i, j)
	d.m.Set(i, j, d.m.At(i, j)+v)
}

// ZeroRow sets every entry of row i to zero.
func (d *Dense) ZeroRow(i int) {
	d.check(i, 0)
	d.m.SetRow(i, make([]float64, d.c))
}

// ZeroCol sets every entry of column j to zero.
func (d *Dense) ZeroCol(j int) {
	d.check(0, j)
	d.m.SetCol(j, make([]float64, d.r))
}

// Clone returns a deep copy.
func (d *Dense) Clone() *Dense {
	if d.m.IsEmpty() {
		return NewDense(d.r, d.c)
	}
	return &Dense{r: d.r, c: d.c, m: mat.DenseCopyOf(d.m)}
}

// RawData returns the entries in row-major order. Callers must not retain
// the slice past the next mutation of d.
func (d *Dense) RawData() []float64 {
	if d.m.IsEmpty() {
		return nil
	}
	return d.m.RawMatrix().Data
}

// Transpose returns dᵀ as a new matrix.
func (d *Dense) Transpose() *Dense {
	t := NewDense(d.c, d.r)
	if !d.m.IsEmpty() {
		t.m.Copy(d.m.T())
	}
	return t
}

// Mul returns the product a·b.
func Mul(a, b *Dense) *Dense {
	if a.c != b.r {
		panic(fmt.Sprintf("matrix: dimension mismatch %dx%d · %dx%d", a.r, a.c, b.r, b.c))
	}
	out := NewDense(a.r, b.c)
	if out.m.IsEmpty() || a.c == 0 {
		return out
	}
	out.m.Mul(a.m, b.m)
	return out
}

// MulVec returns the product d·x.
func (d *Dense) MulVec(x *Vector) *Vector {
	if d.c != x.Len() {
		panic(fmt.Sprintf("matrix: dimension mismatch %dx%d · %d", d.r, d.c, x.Len()))
	}
	out := NewVector(d.r)
	if d.r == 0 || d.c == 0 {
		return out
	}
	out.v.MulVec(d.m, x.v)
	return out
}
