package fem

import (
	"math"

	"github.com/alexiusacademia/goframe/internal/matrix"
)

// LocalStiffness returns the 6×6 Euler–Bernoulli beam stiffness in local
// axes, DOF order [u1, v1, θ1, u2, v2, θ2]. The caller guarantees
// e, a, i and length are positive and finite.
func LocalStiffness(e, a, i, length float64) *matrix.Dense {
	ka := e * a / length
	kb := e * i / length
	kb2 := 6 * kb / length
	kb3 := 2 * kb2 / length

	return matrix.NewDenseFrom(6, 6, []float64{
		ka, 0, 0, -ka, 0, 0,
		0, kb3, kb2, 0, -kb3, kb2,
		0, kb2, 4 * kb, 0, -kb2, 2 * kb,
		-ka, 0, 0, ka, 0, 0,
		0, -kb3, -kb2, 0, kb3, -kb2,
		0, kb2, 2 * kb, 0, -kb2, 4 * kb,
	})
}

// Rotation returns the 6×6 block rotation taking global element DOFs to
// local ones, for an element whose axis has direction cosines (c, s).
func Rotation(c, s float64) *matrix.Dense {
	return matrix.NewDenseFrom(6, 6, []float64{
		c, s, 0, 0, 0, 0,
		-s, c, 0, 0, 0, 0,
		0, 0, 1, 0, 0, 0,
		0, 0, 0, c, s, 0,
		0, 0, 0, -s, c, 0,
		0, 0, 0, 0, 0, 1,
	})
}

// GlobalStiffness rotates a local stiffness into the global frame: Rᵀ·K·R.
func GlobalStiffness(local, rot *matrix.Dense) *matrix.Dense {
	return matrix.Mul(matrix.Mul(rot.Transpose(), local), rot)
}

// Orientation returns the angle of the line through (x1, y1) and (x2, y2)
// normalized into [0, π). It is meant for display: the stiffness uses the
// full direction from the first node to the second.
func Orientation(x1, y1, x2, y2 float64) float64 {
	theta := math.Atan2(y2-y1, x2-x1)
	if theta < 0 {
		theta += math.Pi
	}
	if theta >= math.Pi {
		theta -= math.Pi
	}
	return theta
}

func (el *elementData) localStiffness() *matrix.Dense {
	return LocalStiffness(el.e, el.a, el.i, el.length)
}

func (el *elementData) rotation() *matrix.Dense {
	return Rotation(el.cos, el.sin)
}

func (el *elementData) globalStiffness() *matrix.Dense {
	return GlobalStiffness(el.localStiffness(), el.rotation())
}
