package abcors

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestCelestialObject(t *testing.T) {
	for _, object := range []*CelestialObject{Moho, Eve, Kerbin, Mun, Minmus, Duna, Jool} {
		parent := object.Parent()
		if parent == nil {
			t.Fatalf("%s should orbit something", object)
		}
		// The body stays within the sphere of influence of its parent.
		d := norm(sub(object.Position(1e6), parent.Position(1e6)))
		if d <= parent.Radius || d >= parent.SOI {
			t.Fatalf("%s is %f m away from %s", object, d, parent)
		}
		// Bodies move.
		if vectorsEqual(object.Position(0), object.Position(3600)) {
			t.Fatalf("%s did not move", object)
		}
		found, err := CelestialObjectFromString(object.Name)
		if err != nil || found != object {
			t.Fatalf("could not find %s by name", object)
		}
	}
	if Kerbol.Parent() != nil || !vectorsEqual(Kerbol.Position(123), []float64{0, 0, 0}) || !vectorsEqual(Kerbol.Velocity(123), []float64{0, 0, 0}) {
		t.Fatal("Kerbol should sit still at the origin")
	}
	if Mun.Parent() != Kerbin {
		t.Fatal("Mun should orbit Kerbin")
	}
	if _, err := CelestialObjectFromString("Vesta"); err == nil {
		t.Fatal("expected an error for an unknown body")
	}
}

func TestCelestialChain(t *testing.T) {
	ut := 4242.0
	exp := add(Kerbin.Position(ut), Mun.Orbit.RelativePositionAt(ut))
	if !vectorsEqual(Mun.Position(ut), exp) {
		t.Fatal("Mun position does not include Kerbin's")
	}
	// Kerbin's circular orbit speed.
	v := norm(Kerbin.Velocity(ut))
	if !scalar.EqualWithinRel(v, math.Sqrt(Kerbol.GM()/13599840256), 1e-9) {
		t.Fatalf("Kerbin speed %f", v)
	}
	if !Kerbin.Equals(Kerbin) || Kerbin.Equals(Mun) {
		t.Fatal("equality invalid")
	}
}
