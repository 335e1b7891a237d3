package abcors

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// ScreenPoint is a position in screen space: X to the right, Y down, in pixels.
type ScreenPoint struct {
	X, Y float64
}

// DistanceTo returns the distance in pixels between the two points.
func (p ScreenPoint) DistanceTo(q ScreenPoint) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Camera is an orthographic map view camera centred on a focus body.
type Camera struct {
	Center ScreenPoint      // screen position of the focus body
	Scale  float64          // meters per pixel
	Yaw    float64          // rotation about the reference Z axis, radians
	Pitch  float64          // tilt about the screen X axis, radians; zero looks down the Z axis
	Focus  *CelestialObject // nil focuses on the system origin
}

// view returns the rotation from the reference frame to the camera frame.
func (c Camera) view() *mat.Dense {
	var m mat.Dense
	m.Mul(R1(c.Pitch), R3(c.Yaw))
	return &m
}

// Project returns the screen position of the provided absolute position at time ut.
// The boolean is false when the point cannot be placed on screen.
func (c Camera) Project(world []float64, ut float64) (ScreenPoint, bool) {
	if c.Scale <= 0 {
		return ScreenPoint{}, false
	}
	rel := world
	if c.Focus != nil {
		rel = sub(world, c.Focus.Position(ut))
	}
	v := MxV33(c.view(), rel)
	p := ScreenPoint{X: c.Center.X + v[0]/c.Scale, Y: c.Center.Y - v[1]/c.Scale}
	if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
		return ScreenPoint{}, false
	}
	return p, true
}

// Zoom multiplies the scale by factor, keeping it positive.
func (c *Camera) Zoom(factor float64) {
	if factor > 0 {
		c.Scale *= factor
	}
}
