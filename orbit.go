package abcors

import (
	"fmt"
	"math"
)

const (
	eccentricityε = 5e-5                         // 0.00005
	angleε        = (5e-3 / 360) * (2 * math.Pi) // 0.005 degrees
	parabolicε    = 1e-6
)

// Orbit defines a two body orbit via its orbital elements and the mean anomaly at epoch.
// Distances are in meters and times in seconds of universal time.
type Orbit struct {
	a, e, i, Ω, ω float64
	M0            float64 // Mean anomaly at Epoch
	Epoch         float64
	Origin        *CelestialObject // Orbit origin
}

// Elements returns the orbital elements, angles in radians.
func (o *Orbit) Elements() (a, e, i, Ω, ω, M0 float64) {
	return o.a, o.e, o.i, o.Ω, o.ω, o.M0
}

// Energyξ returns the specific mechanical energy ξ.
func (o *Orbit) Energyξ() float64 {
	return -o.Origin.μ / (2 * o.a)
}

// SemiParameter returns the semi parameter (semi latus rectum).
func (o *Orbit) SemiParameter() float64 {
	return o.a * (1 - o.e*o.e)
}

// Apoapsis returns the apoapsis radius, +Inf for open orbits.
func (o *Orbit) Apoapsis() float64 {
	if o.IsHyperbolic() {
		return math.Inf(1)
	}
	return o.a * (1 + o.e)
}

// Periapsis returns the periapsis radius.
func (o *Orbit) Periapsis() float64 {
	return o.a * (1 - o.e)
}

// IsHyperbolic returns whether this orbit escapes its origin.
func (o *Orbit) IsHyperbolic() bool {
	return o.e > 1
}

// Period returns the period of this orbit in seconds, +Inf for open orbits.
func (o *Orbit) Period() float64 {
	if o.IsHyperbolic() {
		return math.Inf(1)
	}
	return 2 * math.Pi * math.Sqrt(math.Pow(o.a, 3)/o.Origin.μ)
}

func (o *Orbit) meanMotion() float64 {
	return math.Sqrt(o.Origin.μ / math.Pow(math.Abs(o.a), 3))
}

// MeanAnomalyAt returns the mean anomaly at the provided universal time.
func (o *Orbit) MeanAnomalyAt(ut float64) float64 {
	return o.M0 + o.meanMotion()*(ut-o.Epoch)
}

// TrueAnomalyAt returns the true anomaly ν at the provided universal time.
func (o *Orbit) TrueAnomalyAt(ut float64) float64 {
	return trueFromMean(o.MeanAnomalyAt(ut), o.e)
}

// UTAtMeanAnomaly returns the universal time at which the mean anomaly is reached.
// For closed orbits this is the first such time at or after the epoch.
func (o *Orbit) UTAtMeanAnomaly(M float64) float64 {
	ΔM := M - o.M0
	if !o.IsHyperbolic() {
		ΔM = math.Mod(ΔM, 2*math.Pi)
		if ΔM < 0 {
			ΔM += 2 * math.Pi
		}
	}
	return o.Epoch + ΔM/o.meanMotion()
}

// RelativeStateAt returns the radius and velocity vectors with respect to the origin.
func (o *Orbit) RelativeStateAt(ut float64) (R, V []float64) {
	p := o.SemiParameter()
	ν := o.TrueAnomalyAt(ut)
	sinν, cosν := math.Sincos(ν)
	r := p / (1 + o.e*cosν)
	R = PQW2ECI(o.i, o.ω, o.Ω, []float64{r * cosν, r * sinν, 0})
	k := math.Sqrt(o.Origin.μ / p)
	V = PQW2ECI(o.i, o.ω, o.Ω, []float64{-k * sinν, k * (o.e + cosν), 0})
	return
}

// RelativePositionAt returns the radius vector with respect to the origin.
func (o *Orbit) RelativePositionAt(ut float64) []float64 {
	R, _ := o.RelativeStateAt(ut)
	return R
}

// RelativeVelocityAt returns the velocity vector with respect to the origin.
func (o *Orbit) RelativeVelocityAt(ut float64) []float64 {
	_, V := o.RelativeStateAt(ut)
	return V
}

// PositionAt returns the absolute position at the provided time.
func (o *Orbit) PositionAt(ut float64) []float64 {
	return add(o.Origin.Position(ut), o.RelativePositionAt(ut))
}

// VelocityAt returns the absolute velocity at the provided time.
func (o *Orbit) VelocityAt(ut float64) []float64 {
	return add(o.Origin.Velocity(ut), o.RelativeVelocityAt(ut))
}

// OrbitalSpeedAt returns the speed with respect to the origin at the provided time.
func (o *Orbit) OrbitalSpeedAt(ut float64) float64 {
	return norm(o.RelativeVelocityAt(ut))
}

// AltitudeAt returns the distance above the surface of the origin.
func (o *Orbit) AltitudeAt(ut float64) float64 {
	return norm(sub(o.PositionAt(ut), o.Origin.Position(ut))) - o.Origin.Radius
}

// RenderPositionAt returns where the point of the orbit at time ut is drawn when the scene is
// displayed at time now: the path stays attached to the current position of its origin.
func (o *Orbit) RenderPositionAt(ut, now float64) []float64 {
	return add(o.Origin.Position(now), o.RelativePositionAt(ut))
}

// Normal returns the unit orbit normal (direction of the angular momentum).
func (o *Orbit) Normal() []float64 {
	return PQW2ECI(o.i, o.ω, o.Ω, []float64{0, 0, 1})
}

// UTAtRadius returns the first time after the epoch at which the orbit reaches radius r on
// the way out. The boolean is false if the radius is never reached.
func (o *Orbit) UTAtRadius(r float64) (float64, bool) {
	if r < o.Periapsis() || r > o.Apoapsis() {
		return 0, false
	}
	p := o.SemiParameter()
	cosν := (p/r - 1) / o.e
	if math.Abs(cosν) > 1 {
		return 0, false
	}
	ν := math.Acos(cosν)
	return o.UTAtMeanAnomaly(meanFromTrue(ν, o.e)), true
}

// String implements the stringer interface.
func (o *Orbit) String() string {
	return fmt.Sprintf("a=%.1f e=%.4f i=%.3f Ω=%.3f ω=%.3f M0=%.3f@%.0f (%s)", o.a, o.e, Rad2deg(o.i), Rad2deg(o.Ω), Rad2deg(o.ω), Rad2deg(o.M0), o.Epoch, o.Origin.Name)
}

// NewOrbitFromOE creates an orbit from the orbital elements.
// WARNING: Angles must be in degrees not radian.
// Hyperbolic orbits (e > 1) use a negative semi major axis; the sign is fixed if needed.
func NewOrbitFromOE(a, e, i, Ω, ω, M0, epoch float64, c *CelestialObject) *Orbit {
	if math.Abs(e-1) < parabolicε {
		// Parabolic orbits are not supported.
		if a > 0 {
			e = 1 - parabolicε
		} else {
			e = 1 + parabolicε
		}
	}
	if e > 1 && a > 0 {
		a = -a
	}
	m0 := M0 * deg2rad
	if e < 1 {
		m0 = Deg2rad(M0)
	}
	return &Orbit{a: a, e: e, i: Deg2rad(i), Ω: Deg2rad(Ω), ω: Deg2rad(ω), M0: m0, Epoch: epoch, Origin: c}
}

// NewOrbitFromRV returns the orbit passing through R with velocity V at epoch, both relative to c.
func NewOrbitFromRV(R, V []float64, epoch float64, c *CelestialObject) *Orbit {
	// From Vallado's RV2COE, page 113
	hVec := cross(R, V)
	h := norm(hVec)
	n := cross([]float64{0, 0, 1}, hVec)
	v := norm(V)
	r := norm(R)
	ξ := (v*v)/2 - c.μ/r
	a := -c.μ / (2 * ξ)
	eVec := make([]float64, 3)
	for i := 0; i < 3; i++ {
		eVec[i] = ((v*v-c.μ/r)*R[i] - dot(R, V)*V[i]) / c.μ
	}
	e := norm(eVec)
	if math.Abs(e-1) < parabolicε {
		e = 1 + sign(e-1)*parabolicε
	}
	i := math.Acos(math.Max(-1, math.Min(1, hVec[2]/h)))
	equatorial := i < angleε || math.Pi-i < angleε
	circular := e < eccentricityε

	var Ω, ω, ν float64
	switch {
	case circular && equatorial:
		// True longitude measured from the X axis.
		ν = math.Atan2(R[1], R[0])
		if hVec[2] < 0 {
			ν = -ν
		}
	case circular:
		// Argument of latitude.
		Ω = math.Atan2(n[1], n[0])
		ν = angleBetween(n, R)
		if R[2] < 0 {
			ν = 2*math.Pi - ν
		}
	case equatorial:
		// Longitude of periapsis.
		ω = math.Atan2(eVec[1], eVec[0])
		if hVec[2] < 0 {
			ω = -ω
		}
		ν = angleBetween(eVec, R)
		if dot(R, V) < 0 {
			ν = 2*math.Pi - ν
		}
	default:
		Ω = math.Atan2(n[1], n[0])
		ω = angleBetween(n, eVec)
		if eVec[2] < 0 {
			ω = 2*math.Pi - ω
		}
		ν = angleBetween(eVec, R)
		if dot(R, V) < 0 {
			ν = 2*math.Pi - ν
		}
	}
	Ω = wrap2π(Ω)
	ω = wrap2π(ω)
	ν = wrap2π(ν)
	return &Orbit{a: a, e: e, i: i, Ω: Ω, ω: ω, M0: meanFromTrue(ν, e), Epoch: epoch, Origin: c}
}

// wrap2π returns the angle within [0, 2π).
func wrap2π(x float64) float64 {
	x = math.Mod(x, 2*math.Pi)
	if x < 0 {
		x += 2 * math.Pi
	}
	return x
}
