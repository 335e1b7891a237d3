package abcors

import "math"

// Hohmann computes an Hohmann transfer between the circular orbits of radii rI and rF around body.
// It returns the departure and arrival speeds on the transfer orbit, and the time of flight in seconds.
// To get final computations:
// ΔvInit = vDeparture - vI
// ΔvFinal = vF - vArrival
func Hohmann(rI, rF float64, body *CelestialObject) (vDeparture, vArrival, tof float64) {
	aTransfer := 0.5 * (rI + rF)
	vDeparture = math.Sqrt((2 * body.GM() / rI) - (body.GM() / aTransfer))
	vArrival = math.Sqrt((2 * body.GM() / rF) - (body.GM() / aTransfer))
	tof = math.Pi * math.Sqrt(math.Pow(aTransfer, 3)/body.GM())
	return
}

// HohmannNode returns the tangential burn at ut which moves the opposite apsis of o to the radius rF.
// The burn is retrograde when rF is below the current radius.
func HohmannNode(o *Orbit, rF, ut float64) ManeuverNode {
	R, V := o.RelativeStateAt(ut)
	vDeparture, _, _ := Hohmann(norm(R), rF, o.Origin)
	return NewManeuverNode(ut, vDeparture-norm(V), 0, 0)
}
