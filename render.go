package abcors

const (
	// DefaultSamples is the number of segments a patch is drawn with.
	DefaultSamples = 180
)

// PathPoint is a sampled point of a rendered path.
type PathPoint struct {
	UT      float64
	Screen  ScreenPoint
	Visible bool
}

// PatchRender is the drawn version of a patch: a polyline in screen space.
type PatchRender struct {
	Patch  Patch
	Points []PathPoint
}

// draw samples the patch into screen space.
func (pr *PatchRender) draw(cam Camera, now float64, samples int) {
	if samples < 1 {
		samples = DefaultSamples
	}
	pr.Points = pr.Points[:0]
	o := pr.Patch.Orbit
	Δt := pr.Patch.EndUT - pr.Patch.StartUT
	if o == nil || Δt <= 0 {
		return
	}
	for k := 0; k <= samples; k++ {
		ut := pr.Patch.StartUT + Δt*float64(k)/float64(samples)
		p, ok := cam.Project(o.RenderPositionAt(ut, now), now)
		pr.Points = append(pr.Points, PathPoint{UT: ut, Screen: p, Visible: ok})
	}
}

// PatchedConicRenderer draws the trajectory of a vessel.
// PatchRenders hold the actual trajectory; FlightPlanRenders the trajectory with maneuver nodes.
type PatchedConicRenderer struct {
	Solver            *PatchedConicSolver
	PatchRenders      []*PatchRender
	FlightPlanRenders []*PatchRender
	Samples           int
}

// NewPatchedConicRenderer returns a renderer for the provided solver.
func NewPatchedConicRenderer(s *PatchedConicSolver) *PatchedConicRenderer {
	return &PatchedConicRenderer{Solver: s, Samples: DefaultSamples}
}

// Refresh redraws both path sets for the camera at time now.
func (r *PatchedConicRenderer) Refresh(cam Camera, now float64) {
	if r.Solver == nil {
		r.PatchRenders, r.FlightPlanRenders = nil, nil
		return
	}
	r.PatchRenders = drawPatches(r.PatchRenders, r.Solver.Patches(now), cam, now, r.Samples)
	r.FlightPlanRenders = drawPatches(r.FlightPlanRenders, r.Solver.FlightPlan(now), cam, now, r.Samples)
}

// Renders returns the path set currently displayed: the flight plan when maneuver nodes exist,
// the actual trajectory otherwise.
func (r *PatchedConicRenderer) Renders() []*PatchRender {
	if r.Solver == nil {
		return nil
	}
	if r.Solver.HasManeuverNodes() {
		return r.FlightPlanRenders
	}
	return r.PatchRenders
}

func drawPatches(renders []*PatchRender, patches []Patch, cam Camera, now float64, samples int) []*PatchRender {
	for len(renders) < len(patches) {
		renders = append(renders, &PatchRender{})
	}
	renders = renders[:len(patches)]
	for i, p := range patches {
		renders[i].Patch = p
		renders[i].draw(cam, now, samples)
	}
	return renders
}

// OrbitRenderer draws the orbit of a celestial body.
type OrbitRenderer struct {
	Body    *CelestialObject
	Render  *PatchRender
	Samples int
}

// NewOrbitRenderer returns a renderer for the orbit of the provided body.
func NewOrbitRenderer(body *CelestialObject) *OrbitRenderer {
	return &OrbitRenderer{Body: body, Samples: DefaultSamples}
}

// Refresh redraws the orbit for the camera at time now. Bodies without an orbit draw nothing.
func (r *OrbitRenderer) Refresh(cam Camera, now float64) {
	if r.Body == nil || r.Body.Orbit == nil {
		r.Render = nil
		return
	}
	if r.Render == nil {
		r.Render = &PatchRender{}
	}
	o := r.Body.Orbit
	r.Render.Patch = Patch{Orbit: o, StartUT: now, EndUT: now + span(o, now)}
	r.Render.draw(cam, now, r.Samples)
}
