package abcors

import (
	"math"

	"github.com/soniakeys/meeus/v3/kepler"
	meeusunit "github.com/soniakeys/unit"
)

const (
	hyperbolicMaxIter = 64
	hyperbolicε       = 1e-12
)

// eccentricAnomaly solves Kepler's equation M = E - e sin E for elliptic orbits.
func eccentricAnomaly(M, e float64) float64 {
	M = math.Mod(M, 2*math.Pi)
	if M < 0 {
		M += 2 * math.Pi
	}
	return kepler.Kepler3(e, meeusunit.Angle(M)).Rad()
}

// hyperbolicAnomaly solves M = e sinh H - H by Newton iterations.
// meeus only covers the elliptic case.
func hyperbolicAnomaly(M, e float64) float64 {
	H := sign(M) * math.Log(2*math.Abs(M)/e+1.8)
	for iter := 0; iter < hyperbolicMaxIter; iter++ {
		f := e*math.Sinh(H) - H - M
		fp := e*math.Cosh(H) - 1
		δ := f / fp
		H -= δ
		if math.Abs(δ) < hyperbolicε {
			break
		}
	}
	return H
}

// trueFromMean returns the true anomaly ν for the mean anomaly M.
func trueFromMean(M, e float64) float64 {
	if e < 1 {
		E := eccentricAnomaly(M, e)
		sinE2, cosE2 := math.Sincos(E / 2)
		return math.Mod(2*math.Atan2(math.Sqrt(1+e)*sinE2, math.Sqrt(1-e)*cosE2)+2*math.Pi, 2*math.Pi)
	}
	H := hyperbolicAnomaly(M, e)
	return 2 * math.Atan(math.Sqrt((e+1)/(e-1))*math.Tanh(H/2))
}

// meanFromTrue returns the mean anomaly M for the true anomaly ν.
func meanFromTrue(ν, e float64) float64 {
	if e < 1 {
		sinν2, cosν2 := math.Sincos(ν / 2)
		E := 2 * math.Atan2(math.Sqrt(1-e)*sinν2, math.Sqrt(1+e)*cosν2)
		M := E - e*math.Sin(E)
		if M < 0 {
			M += 2 * math.Pi
		}
		return M
	}
	H := 2 * math.Atanh(math.Sqrt((e-1)/(e+1))*math.Tan(ν/2))
	return e*math.Sinh(H) - H
}
