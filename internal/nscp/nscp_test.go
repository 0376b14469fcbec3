package nscp

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConcreteModulus(t *testing.T) {
	assert.InDelta(t, 24870.06, ConcreteModulus(28), 0.01)
	assert.Zero(t, ConcreteModulus(-1))
}

func TestFactor(t *testing.T) {
	combo, ok := FindCombination("2", LoadCombinations)
	assert.True(t, ok)
	assert.Equal(t, 1.2, combo.Factor(CaseDead))
	assert.Equal(t, 1.6, combo.Factor(CaseLive))
	assert.Zero(t, combo.Factor(CaseEarthquake))
	assert.Zero(t, combo.Factor("snow"))
	assert.Equal(t, 1.0, Unfactored.Factor("snow"))

	_, ok = FindCombination("99", LoadCombinations)
	assert.False(t, ok)
}

func TestGoverning(t *testing.T) {
	cases := map[string]float64{CaseDead: 10, CaseLive: 5}
	eval := func(c LoadCombination) (float64, error) {
		if c.ID == "3" {
			return 0, errors.New("skip")
		}
		var sum float64
		for name, v := range cases {
			sum += c.Factor(name) * v
		}
		return -sum, nil
	}

	v, combo, ok := Governing(LoadCombinations, eval)
	assert.True(t, ok)
	assert.Equal(t, "2", combo.ID)
	assert.InDelta(t, -20.0, v, 1e-12)

	_, _, ok = Governing(nil, eval)
	assert.False(t, ok)
}
