package abcors

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

func vectorsEqual(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := len(a) - 1; i >= 0; i-- {
		if !scalar.EqualWithinAbsOrRel(a[i], b[i], 1e-3, 1e-6) {
			return false
		}
	}
	return true
}

// anglesEqual returns whether two angles in Radians are equal.
func anglesEqual(a, b float64) (bool, error) {
	diff := math.Mod(math.Abs(a-b), 2*math.Pi)
	if diff < angleε || 2*math.Pi-diff < angleε {
		return true, nil
	}
	return false, fmt.Errorf("difference of %3.10f degrees", math.Abs(Rad2deg(diff)))
}

// lowOrbit returns a circular equatorial orbit of Kerbin at 100 km of altitude.
func lowOrbit() *Orbit {
	return NewOrbitFromOE(700000, 0, 0, 0, 0, 0, 0, Kerbin)
}
