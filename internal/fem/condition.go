package fem

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/alexiusacademia/goframe/internal/matrix"
)

// ConditionEstimate returns the 1-norm condition number of k. Large values
// warn of a nearly unstable structure or badly scaled units. A singular
// matrix reports +Inf.
func ConditionEstimate(k *matrix.Dense) float64 {
	if k.Rows() == 0 {
		return 0
	}
	if !k.IsSquare() {
		panic("fem: condition of non-square matrix")
	}
	c := mat.Cond(k.Mat(), 1)
	if math.IsNaN(c) {
		return math.Inf(1)
	}
	return c
}
