package abcors

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestManeuverNodeApply(t *testing.T) {
	o := lowOrbit()
	burn := NewManeuverNode(o.Period()/2, 500, 0, 0)
	after := burn.Apply(o)
	if !scalar.EqualWithinRel(after.Periapsis(), 7e5, 1e-6) {
		t.Fatalf("periapsis should stay at the burn point, got %f", after.Periapsis())
	}
	if after.Apoapsis() < 2e6 {
		t.Fatalf("apoapsis %f should be raised", after.Apoapsis())
	}
	// The position is continuous across the burn.
	if !vectorsEqual(o.RelativePositionAt(burn.UT), after.RelativePositionAt(burn.UT)) {
		t.Fatal("position jumped at the burn")
	}
	if !scalar.EqualWithinAbs(norm(sub(after.RelativeVelocityAt(burn.UT), o.RelativeVelocityAt(burn.UT))), 500, 1e-6) {
		t.Fatal("Δv not applied")
	}
	// Normal burns change the plane.
	tilted := NewManeuverNode(0, 0, 300, 0).Apply(o)
	if _, _, i, _, _, _ := tilted.Elements(); i < Deg2rad(5) {
		t.Fatalf("inclination %f too small", Rad2deg(i))
	}
	if burn.Magnitude() != 500 {
		t.Fatalf("magnitude %f", burn.Magnitude())
	}
}

func TestFlightPlan(t *testing.T) {
	o := lowOrbit()
	s := NewPatchedConicSolver(o, NewManeuverNode(1000, 100, 0, 0), NewManeuverNode(500, 50, 0, 0))
	if !s.HasManeuverNodes() || s.ManeuverNodes[0].UT != 500 {
		t.Fatal("nodes should be sorted")
	}
	actual := s.Patches(0)
	if len(actual) != 1 || actual[0].Orbit != o || actual[0].EndUT != o.Period() {
		t.Fatalf("actual trajectory %+v", actual)
	}
	plan := s.FlightPlan(0)
	if len(plan) != 3 {
		t.Fatalf("expected three patches, got %d", len(plan))
	}
	for i, exp := range [][2]float64{{0, 500}, {500, 1000}} {
		if plan[i].StartUT != exp[0] || plan[i].EndUT != exp[1] {
			t.Fatalf("patch %d spans [%f, %f]", i, plan[i].StartUT, plan[i].EndUT)
		}
	}
	if plan[0].Orbit != o || plan[1].Orbit == o {
		t.Fatal("orbits not switched at the node")
	}
	last := plan[2]
	if last.StartUT != 1000 || !scalar.EqualWithinRel(last.EndUT, 1000+last.Orbit.Period(), 1e-12) {
		t.Fatalf("last patch spans [%f, %f]", last.StartUT, last.EndUT)
	}
	if last.Orbit.Apoapsis() <= plan[1].Orbit.Apoapsis() {
		t.Fatal("second burn should raise the apoapsis")
	}
	// Past nodes are ignored.
	if plan := s.FlightPlan(600); len(plan) != 2 || plan[0].StartUT != 600 {
		t.Fatalf("flight plan from 600: %+v", plan)
	}
	if NewPatchedConicSolver(nil).FlightPlan(0) != nil {
		t.Fatal("no orbit, no plan")
	}
}

func TestSpanHyperbolic(t *testing.T) {
	o := NewOrbitFromRV([]float64{7e5, 0, 0}, []float64{0, 4000, 0}, 0, Kerbin)
	Δt := span(o, 0)
	if Δt <= 0 || math.IsInf(Δt, 0) {
		t.Fatalf("span %f", Δt)
	}
	if !scalar.EqualWithinRel(norm(o.RelativePositionAt(Δt)), Kerbin.SOI, 1e-6) {
		t.Fatal("open orbits are drawn up to the SOI")
	}
	if span(o, 2*Δt) != 0 {
		t.Fatal("nothing left to draw after leaving the SOI")
	}
}
