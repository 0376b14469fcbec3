package matrix

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// ErrSingular is returned when a zero pivot is met during factorization or
// back substitution. No pivoting is performed.
var ErrSingular = errors.New("matrix: singular matrix")

// LU holds a Doolittle factorization A = L·U where L is unit lower
// triangular and U is upper triangular.
type LU struct {
	n int
	l *Dense
	u *Dense
}

// Factorize computes the Doolittle LU factorization of the square matrix a.
// Row i of U and column i of L are filled from dot products of the rows and
// columns already computed. A pivot whose magnitude does not exceed
// n·ε times the largest entry of its row in a is treated as zero and
// reported as ErrSingular.
//
// Complexity: O(n³) time, O(n²) memory.
func Factorize(a *Dense) (*LU, error) {
	if !a.IsSquare() {
		panic(fmt.Sprintf("matrix: LU of non-square %dx%d matrix", a.Rows(), a.Cols()))
	}
	n := a.Rows()
	f := &LU{n: n, l: Identity(n), u: NewDense(n, n)}
	l, u, av := f.l.RawData(), f.u.RawData(), a.RawData()

	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			var sum float64
			for k := 0; k < i; k++ {
				sum += l[i*n+k] * u[k*n+j]
			}
			u[i*n+j] = av[i*n+j] - sum
		}
		pivot := u[i*n+i]
		if math.Abs(pivot) <= pivotTolerance(a, i) {
			return nil, fmt.Errorf("pivot %d is %g: %w", i, pivot, ErrSingular)
		}
		for j := i + 1; j < n; j++ {
			var sum float64
			for k := 0; k < i; k++ {
				sum += l[j*n+k] * u[k*n+i]
			}
			l[j*n+i] = (av[j*n+i] - sum) / pivot
		}
	}
	return f, nil
}

const epsilon = 2.220446049250313e-16

// pivotTolerance scales machine epsilon by the size of the system and the
// largest entry of row i.
func pivotTolerance(a *Dense, i int) float64 {
	return float64(a.c) * epsilon * mat.Norm(a.m.RowView(i), math.Inf(1))
}

// L returns a copy of the unit lower triangular factor.
func (f *LU) L() *Dense { return f.l.Clone() }

// U returns a copy of the upper triangular factor.
func (f *LU) U() *Dense { return f.u.Clone() }

// Solve solves A·x = b using the stored factors: forward substitution
// L·y = b, then backward substitution U·x = y.
//
// Complexity: O(n²).
func (f *LU) Solve(b *Vector) (*Vector, error) {
	if b.Len() != f.n {
		panic(fmt.Sprintf("matrix: right-hand side length %d for %dx%d system", b.Len(), f.n, f.n))
	}
	n := f.n
	l, u, bv := f.l.RawData(), f.u.RawData(), b.RawData()

	y := NewVector(n)
	yv := y.RawData()
	for i := 0; i < n; i++ {
		sum := bv[i]
		for k := 0; k < i; k++ {
			sum -= l[i*n+k] * yv[k]
		}
		yv[i] = sum
	}

	x := NewVector(n)
	xv := x.RawData()
	for i := n - 1; i >= 0; i-- {
		sum := yv[i]
		for k := i + 1; k < n; k++ {
			sum -= u[i*n+k] * xv[k]
		}
		pivot := u[i*n+i]
		if pivot == 0 {
			return nil, fmt.Errorf("pivot %d: %w", i, ErrSingular)
		}
		xv[i] = sum / pivot
	}
	return x, nil
}

// SolveLU factorizes a and solves a·x = b.
func SolveLU(a *Dense, b *Vector) (*Vector, error) {
	if a.Rows() != b.Len() {
		panic(fmt.Sprintf("matrix: right-hand side length %d for %dx%d system", b.Len(), a.Rows(), a.Cols()))
	}
	f, err := Factorize(a)
	if err != nil {
		return nil, err
	}
	return f.Solve(b)
}
