package abcors

// SourceKind tells which object a hovered orbit belongs to.
type SourceKind uint8

const (
	// NoSource is the zero value: nothing selected.
	NoSource SourceKind = iota
	// MainVessel is the active vessel.
	MainVessel
	// TargetVessel is a targeted vessel.
	TargetVessel
	// TargetBody is a targeted celestial body.
	TargetBody
)

func (k SourceKind) String() string {
	switch k {
	case MainVessel:
		return "main-vessel"
	case TargetVessel:
		return "target-vessel"
	case TargetBody:
		return "target-body"
	default:
		return "none"
	}
}

// Vessel is a ship with a trajectory drawn on the map.
type Vessel struct {
	Name     string
	Solver   *PatchedConicSolver
	Renderer *PatchedConicRenderer
}

// NewVessel returns a vessel flying o, with its solver and renderer set up.
func NewVessel(name string, o *Orbit, nodes ...ManeuverNode) *Vessel {
	s := NewPatchedConicSolver(o, nodes...)
	return &Vessel{Name: name, Solver: s, Renderer: NewPatchedConicRenderer(s)}
}

// Orbit returns the current orbit of the vessel, or nil.
func (v *Vessel) Orbit() *Orbit {
	if v.Solver == nil {
		return nil
	}
	return v.Solver.Orbit
}

// renders returns the path set currently displayed for the vessel, nil if not drawn.
func (v *Vessel) renders() []*PatchRender {
	if v == nil || v.Renderer == nil || v.Renderer.Solver == nil {
		return nil
	}
	return v.Renderer.Renders()
}

// OrbitSource is something whose drawn orbit can be hovered.
// Vessel is set for MainVessel and TargetVessel, Body and BodyRenderer for TargetBody.
type OrbitSource struct {
	Kind         SourceKind
	Vessel       *Vessel
	Body         *CelestialObject
	BodyRenderer *OrbitRenderer
}

// MainVesselSource returns the source for the active vessel.
func MainVesselSource(v *Vessel) OrbitSource {
	return OrbitSource{Kind: MainVessel, Vessel: v}
}

// TargetVesselSource returns the source for a targeted vessel.
func TargetVesselSource(v *Vessel) OrbitSource {
	return OrbitSource{Kind: TargetVessel, Vessel: v}
}

// TargetBodySource returns the source for a targeted body drawn by r.
func TargetBodySource(r *OrbitRenderer) OrbitSource {
	if r == nil {
		return OrbitSource{Kind: TargetBody}
	}
	return OrbitSource{Kind: TargetBody, Body: r.Body, BodyRenderer: r}
}

// Renders returns the paths to cast against. Missing or undrawn renderers yield nothing.
func (s OrbitSource) Renders() []*PatchRender {
	switch s.Kind {
	case MainVessel, TargetVessel:
		return s.Vessel.renders()
	case TargetBody:
		if s.BodyRenderer == nil || s.BodyRenderer.Render == nil {
			return nil
		}
		return []*PatchRender{s.BodyRenderer.Render}
	default:
		return nil
	}
}

// Scene is the state of the map view at the start of a frame.
type Scene struct {
	ActiveVessel *Vessel
	Target       OrbitSource
	Camera       Camera
	UT           float64
	Tolerance    float64 // pixels, DefaultCastTolerance if zero
}

// Refresh redraws every renderer of the scene.
func (s Scene) Refresh() {
	if s.ActiveVessel != nil && s.ActiveVessel.Renderer != nil {
		s.ActiveVessel.Renderer.Refresh(s.Camera, s.UT)
	}
	switch s.Target.Kind {
	case TargetVessel:
		if s.Target.Vessel != nil && s.Target.Vessel != s.ActiveVessel && s.Target.Vessel.Renderer != nil {
			s.Target.Vessel.Renderer.Refresh(s.Camera, s.UT)
		}
	case TargetBody:
		if s.Target.BodyRenderer != nil {
			s.Target.BodyRenderer.Refresh(s.Camera, s.UT)
		}
	}
}

// HitResult is the orbit point under the cursor for the current frame.
type HitResult struct {
	Orbit  *Orbit
	UT     float64 // time parameter of the hovered point
	Screen ScreenPoint
	Source SourceKind
}

// IsTargetSource returns whether the hit comes from the target rather than the active vessel.
func (h HitResult) IsTargetSource() bool {
	return h.Source == TargetVessel || h.Source == TargetBody
}

// Probe returns the orbit point under the cursor, if any. The active vessel has priority over
// the target, which is only considered when allowTarget is set.
func Probe(cursor ScreenPoint, scene Scene, allowTarget bool) (HitResult, bool) {
	if scene.ActiveVessel == nil {
		return HitResult{}, false
	}
	if hit, ok := castSource(cursor, MainVesselSource(scene.ActiveVessel), scene); ok {
		return hit, true
	}
	if !allowTarget {
		return HitResult{}, false
	}
	switch scene.Target.Kind {
	case TargetVessel, TargetBody:
		return castSource(cursor, scene.Target, scene)
	default:
		return HitResult{}, false
	}
}

func castSource(cursor ScreenPoint, src OrbitSource, scene Scene) (HitResult, bool) {
	renders := src.Renders()
	if len(renders) == 0 {
		return HitResult{}, false
	}
	tolerance := scene.Tolerance
	if tolerance <= 0 {
		tolerance = DefaultCastTolerance
	}
	h, ok := ScreenCast(cursor, renders, scene.Camera, scene.UT, tolerance)
	if !ok {
		return HitResult{}, false
	}
	return HitResult{Orbit: h.Orbit(), UT: h.UT, Screen: h.Screen, Source: src.Kind}, true
}
