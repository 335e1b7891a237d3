package abcors

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestHohmann(t *testing.T) {
	// LEO to GEO, from Vallado.
	earth := NewCelestialObject("Earth", 6378136.3, 398600.4415e9, 924645.0e3)
	rI, rF := earth.Radius+191.34411e3, earth.Radius+35781.34857e3
	vDeparture, vArrival, tof := Hohmann(rI, rF, earth)
	ΔvInit := vDeparture - math.Sqrt(earth.GM()/rI)
	ΔvFinal := math.Sqrt(earth.GM()/rF) - vArrival
	if !scalar.EqualWithinAbs(ΔvInit, 2457.038, 0.5) {
		t.Fatalf("ΔvInit=%f", ΔvInit)
	}
	if !scalar.EqualWithinAbs(ΔvFinal, 1478.187, 0.5) {
		t.Fatalf("ΔvFinal=%f", ΔvFinal)
	}
	if exp := float64(5*3600 + 15*60 + 24); !scalar.EqualWithinAbs(tof, exp, 1) {
		t.Fatalf("tof=%f expected %f", tof, exp)
	}
}

func TestHohmannNode(t *testing.T) {
	o := lowOrbit()
	up := HohmannNode(o, 12e6, 100)
	if up.ΔV[0] <= 0 || up.ΔV[1] != 0 || up.ΔV[2] != 0 {
		t.Fatalf("expected a prograde burn, got %s", up)
	}
	after := up.Apply(o)
	if !scalar.EqualWithinRel(after.Apoapsis(), 12e6, 1e-6) || !scalar.EqualWithinRel(after.Periapsis(), 7e5, 1e-6) {
		t.Fatalf("transfer orbit %s", after)
	}
	// Half a transfer orbit later, the vessel is at the apoapsis.
	if r := norm(after.RelativePositionAt(up.UT + after.Period()/2)); !scalar.EqualWithinRel(r, 12e6, 1e-6) {
		t.Fatalf("radius %f at arrival", r)
	}
	down := HohmannNode(NewOrbitFromOE(2e6, 0, 0, 0, 0, 0, 0, Kerbin), 7e5, 0)
	if down.ΔV[0] >= 0 {
		t.Fatalf("expected a retrograde burn, got %s", down)
	}
}
