package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Vector is a fixed-length column vector backed by a gonum *mat.VecDense.
type Vector struct {
	n int
	v *mat.VecDense
}

// NewVector creates a zero vector of length n.
func NewVector(n int) *Vector {
	if n < 0 {
		panic(fmt.Sprintf("matrix: invalid vector length %d", n))
	}
	if n == 0 {
		return &Vector{v: &mat.VecDense{}}
	}
	return &Vector{n: n, v: mat.NewVecDense(n, nil)}
}

// NewVectorFrom creates a vector holding a copy of data.
func NewVectorFrom(data []float64) *Vector {
	out := NewVector(len(data))
	copy(out.RawData(), data)
	return out
}

// Len returns the number of entries.
func (x *Vector) Len() int { return x.n }

func (x *Vector) check(i int) {
	if i < 0 || i >= x.n {
		panic(fmt.Sprintf("matrix: vector index %d out of range for length %d", i, x.n))
	}
}

// At returns entry i.
func (x *Vector) At(i int) float64 {
	x.check(i)
	return x.v.AtVec(i)
}

// Set assigns entry i.
func (x *Vector) Set(i int, val float64) {
	x.check(i)
	x.v.SetVec(i, val)
}

// Add accumulates val into entry i.
func (x *Vector) Add(i int, val float64) {
	x.check(i)
	x.v.SetVec(i, x.v.AtVec(i)+val)
}

// Clone returns a deep copy.
func (x *Vector) Clone() *Vector { return NewVectorFrom(x.RawData()) }

// RawData returns the backing slice.
func (x *Vector) RawData() []float64 {
	if x.n == 0 {
		return nil
	}
	return x.v.RawVector().Data
}

// Sub returns x - y.
func (x *Vector) Sub(y *Vector) *Vector {
	if x.n != y.n {
		panic(fmt.Sprintf("matrix: dimension mismatch %d - %d", x.n, y.n))
	}
	out := NewVector(x.n)
	if x.n > 0 {
		out.v.SubVec(x.v, y.v)
	}
	return out
}
