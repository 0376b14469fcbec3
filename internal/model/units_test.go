package model

import (
	"testing"

	"github.com/alexiusacademia/goframe/internal/nscp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromMPa(t *testing.T) {
	tests := []struct {
		units string
		want  float64
	}{
		{"", 1},
		{"N, mm", 1},
		{"kN, m", 1000},
		{"kN-m", 1000},
		{"N m", 1e6},
		{"kN, mm", 1e-3},
		{"MN, m", 1},
	}
	for _, tt := range tests {
		t.Run(tt.units, func(t *testing.T) {
			u, err := ParseUnits(tt.units)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, u.FromMPa(1), tt.want*1e-12)
		})
	}
}

func TestParseUnitsRejectsUnknown(t *testing.T) {
	var verr *ValidationError
	_, err := ParseUnits("lbf, in")
	assert.ErrorAs(t, err, &verr)
	_, err = ParseUnits("kN")
	assert.ErrorAs(t, err, &verr)

	_, err = Parse([]byte(`{"units": "kN, furlong"}`))
	assert.ErrorAs(t, err, &verr)
}

func TestSteelModulusFollowsUnits(t *testing.T) {
	s, err := Parse([]byte(`{"units": "kN, m", "materials": [{"id": 1, "steel": true}, {"id": 2, "e": 5}]}`))
	require.NoError(t, err)
	e, _ := s.MaterialModulus(1)
	assert.InDelta(t, nscp.Es*1000, e, 1e-3)
	e, _ = s.MaterialModulus(2)
	assert.Equal(t, 5.0, e, "explicit moduli are already in model units")
}
