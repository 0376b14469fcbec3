package nscp

import "math"

// NSCP 2015 Material Constants

const (
	// Modulus of elasticity for steel (Section 420.2.2)
	Es = 200000.0 // MPa

	// Normalweight concrete factor for Ec (Section 419.2.2.1)
	ConcreteModulusFactor = 4700.0
)

// ConcreteModulus returns Ec = 4700·√f'c for normalweight concrete.
// NSCP 2015 Section 419.2.2.1(b). f'c and the result are in MPa.
func ConcreteModulus(fc float64) float64 {
	if fc <= 0 {
		return 0
	}
	return ConcreteModulusFactor * math.Sqrt(fc)
}
