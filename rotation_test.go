package abcors

import (
	"math"
	"testing"
)

func TestR1R3(t *testing.T) {
	x := math.Pi / 3.0
	s, c := math.Sincos(x)
	r1 := R1(x)
	r3 := R3(x)
	if r1.At(0, 0) != r3.At(2, 2) || r3.At(2, 2) != 1 {
		t.Fatal("expected R1.At(0, 0) = R3.At(2, 2) = 1\n")
	}
	if r1.At(1, 1) != r1.At(2, 2) || r1.At(2, 2) != c {
		t.Fatal("expected R1 cosines misplaced\n")
	}
	if r1.At(2, 1) != -r1.At(1, 2) || r1.At(1, 2) != s {
		t.Fatal("expected R1 sines misplaced\n")
	}
	if r3.At(1, 1) != r3.At(0, 0) || r3.At(0, 0) != c {
		t.Fatal("expected R3 cosines misplaced\n")
	}
	if r3.At(0, 1) != -r3.At(1, 0) || r3.At(0, 1) != s {
		t.Fatal("expected R3 sines misplaced\n")
	}
}

func TestPQW2ECI(t *testing.T) {
	// Vallado example 2-6, in km.
	i := Deg2rad(87.87)
	ω := Deg2rad(53.38)
	Ω := Deg2rad(227.89)
	Rp := PQW2ECI(i, ω, Ω, []float64{-466.7639, 11447.0219, 0})
	Re := []float64{6525.368, 6861.532, 6449.119}
	for k := range Re {
		if math.Abs(Re[k]-Rp[k]) > 1 {
			t.Fatalf("R conversion failed: %+v", Rp)
		}
	}
}

func TestAxisAngle(t *testing.T) {
	z := []float64{0, 0, 1}
	y := []float64{0, 1, 0}
	if got := MxV33(AxisAngle(z, math.Pi/2), y); !vectorsEqual(got, []float64{-1, 0, 0}) {
		t.Fatalf("+90° about Z of Y = %+v", got)
	}
	if got := MxV33(AxisAngle(z, -math.Pi/2), y); !vectorsEqual(got, []float64{1, 0, 0}) {
		t.Fatalf("-90° about Z of Y = %+v", got)
	}
	// Rotating about a non unit axis.
	if got := MxV33(AxisAngle([]float64{5, 0, 0}, math.Pi/2), y); !vectorsEqual(got, z) {
		t.Fatalf("+90° about X of Y = %+v", got)
	}
	// The axis itself is unchanged.
	axis := []float64{1, 2, 3}
	if got := MxV33(AxisAngle(axis, 1.234), axis); !vectorsEqual(got, axis) {
		t.Fatalf("axis moved: %+v", got)
	}
}
