package abcors

import (
	"fmt"
	"math"
	"strings"
)

// CelestialObject defines a celestial object.
// Orbit is nil for the root of the system, which sits at the origin.
type CelestialObject struct {
	Name   string
	Radius float64 // meters
	μ      float64 // m^3/s^2
	SOI    float64 // sphere of influence radius, meters
	Orbit  *Orbit  // around the parent body
}

// NewCelestialObject returns a body which does not orbit anything until its Orbit is set.
func NewCelestialObject(name string, radius, μ, soi float64) *CelestialObject {
	return &CelestialObject{Name: name, Radius: radius, μ: μ, SOI: soi}
}

// GM returns μ (which is unexported because it's a lowercase letter)
func (c *CelestialObject) GM() float64 {
	return c.μ
}

// Parent returns the body this object orbits, or nil.
func (c *CelestialObject) Parent() *CelestialObject {
	if c.Orbit == nil {
		return nil
	}
	return c.Orbit.Origin
}

// Position returns the absolute position of the body at the provided time.
func (c *CelestialObject) Position(ut float64) []float64 {
	if c.Orbit == nil {
		return []float64{0, 0, 0}
	}
	return add(c.Orbit.Origin.Position(ut), c.Orbit.RelativePositionAt(ut))
}

// Velocity returns the absolute velocity of the body at the provided time.
func (c *CelestialObject) Velocity(ut float64) []float64 {
	if c.Orbit == nil {
		return []float64{0, 0, 0}
	}
	return add(c.Orbit.Origin.Velocity(ut), c.Orbit.RelativeVelocityAt(ut))
}

// String implements the Stringer interface.
func (c *CelestialObject) String() string {
	return c.Name + " body"
}

// Equals returns whether the provided celestial object is the same.
func (c *CelestialObject) Equals(b *CelestialObject) bool {
	return c.Name == b.Name && c.Radius == b.Radius && c.μ == b.μ && c.SOI == b.SOI
}

// orbiting sets the orbit of c around parent, from elements at epoch zero (M0 in radians).
func orbiting(c *CelestialObject, parent *CelestialObject, a, e, i, Ω, ω, M0 float64) *CelestialObject {
	c.Orbit = NewOrbitFromOE(a, e, i, Ω, ω, Rad2deg(M0), 0, parent)
	return c
}

// CelestialObjectFromString returns the object from its name
func CelestialObjectFromString(name string) (*CelestialObject, error) {
	switch strings.ToLower(name) {
	case "kerbol", "sun":
		return Kerbol, nil
	case "moho":
		return Moho, nil
	case "eve":
		return Eve, nil
	case "kerbin":
		return Kerbin, nil
	case "mun":
		return Mun, nil
	case "minmus":
		return Minmus, nil
	case "duna":
		return Duna, nil
	case "jool":
		return Jool, nil
	default:
		return nil, fmt.Errorf("undefined body '%s'", name)
	}
}

/* Definitions */

// Kerbol is the star everything orbits.
var Kerbol = NewCelestialObject("Kerbol", 261600000, 1.1723328e18, math.Inf(1))

// Moho is hot.
var Moho = orbiting(NewCelestialObject("Moho", 250000, 1.6860938e11, 9646663), Kerbol, 5263138304, 0.2, 7, 70, 15, 3.14)

// Eve is purple and hard to leave.
var Eve = orbiting(NewCelestialObject("Eve", 700000, 8.1717302e12, 85109365), Kerbol, 9832684544, 0.01, 2.1, 15, 0, 3.14)

// Kerbin is home.
var Kerbin = orbiting(NewCelestialObject("Kerbin", 600000, 3.5316e12, 84159286), Kerbol, 13599840256, 0, 0, 0, 0, 3.14)

// Mun is the first stop.
var Mun = orbiting(NewCelestialObject("Mun", 200000, 6.5138398e10, 2429559.1), Kerbin, 12000000, 0, 0, 0, 0, 1.7)

// Minmus is minty.
var Minmus = orbiting(NewCelestialObject("Minmus", 60000, 1.7658e9, 2247428.4), Kerbin, 47000000, 0, 6, 78, 38, 0.9)

// Duna is red.
var Duna = orbiting(NewCelestialObject("Duna", 320000, 3.0136321e11, 47921949), Kerbol, 20726155264, 0.051, 0.06, 135.5, 0, 3.14)

// Jool is big and green.
var Jool = orbiting(NewCelestialObject("Jool", 6000000, 2.82528e14, 2455985200), Kerbol, 68773560320, 0.05, 1.304, 52, 0, 0.1)
