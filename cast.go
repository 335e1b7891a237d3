package abcors

import "math"

const (
	// DefaultCastTolerance is how far from a drawn path the cursor may be, in pixels.
	DefaultCastTolerance = 6.0
)

// CastHit is the point of a rendered path under the cursor.
type CastHit struct {
	Render   *PatchRender
	UT       float64
	Screen   ScreenPoint
	Distance float64
}

// Orbit returns the orbit of the hit patch.
func (h CastHit) Orbit() *Orbit {
	return h.Render.Patch.Orbit
}

// ScreenCast returns the point of the renders closest to the cursor when within tolerance pixels.
// The reported screen point is the projection of the orbit at the reported time, so it lies
// on the curve even when the cursor is slightly off it. Earlier renders win ties.
func ScreenCast(cursor ScreenPoint, renders []*PatchRender, cam Camera, now, tolerance float64) (CastHit, bool) {
	best := CastHit{Distance: math.Inf(1)}
	for _, pr := range renders {
		if pr == nil || pr.Patch.Orbit == nil {
			continue
		}
		for k := 1; k < len(pr.Points); k++ {
			p0, p1 := pr.Points[k-1], pr.Points[k]
			if !p0.Visible || !p1.Visible {
				continue
			}
			s, d := closestOnSegment(cursor, p0.Screen, p1.Screen)
			if d < best.Distance {
				best = CastHit{Render: pr, UT: p0.UT + s*(p1.UT-p0.UT), Distance: d}
			}
		}
	}
	if best.Render == nil || best.Distance > tolerance {
		return CastHit{}, false
	}
	p, ok := cam.Project(best.Render.Patch.Orbit.RenderPositionAt(best.UT, now), now)
	if !ok {
		return CastHit{}, false
	}
	best.Screen = p
	return best, true
}

// closestOnSegment returns the fraction along [a, b] of the point closest to c, and its distance.
func closestOnSegment(c, a, b ScreenPoint) (s, d float64) {
	dx, dy := b.X-a.X, b.Y-a.Y
	l2 := dx*dx + dy*dy
	if l2 > 0 {
		s = ((c.X-a.X)*dx + (c.Y-a.Y)*dy) / l2
		s = math.Max(0, math.Min(1, s))
	}
	q := ScreenPoint{X: a.X + s*dx, Y: a.Y + s*dy}
	return s, c.DistanceTo(q)
}
