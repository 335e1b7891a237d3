package abcors

import (
	"math"
	"strings"
)

// Frame is the result of the update step of a frame, handed to the draw step of the same frame.
type Frame struct {
	Hit HitResult
	OK  bool    // false when nothing is hovered
	UT  float64 // universal time of the frame
}

// Rect is a screen rectangle, X and Y being its top left corner.
type Rect struct {
	X, Y, W, H float64
}

// Center returns the centre of the rectangle.
func (r Rect) Center() ScreenPoint {
	return ScreenPoint{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Panel is the floating label drawn next to the hovered point.
type Panel struct {
	Rect   Rect
	Lines  []string
	Target bool // the hovered orbit belongs to the target
}

// Overlay runs the hover probe and lays out the panel, once per frame each.
type Overlay struct {
	cfg DisplayConfig
}

// NewOverlay returns an overlay using the session configuration.
func NewOverlay(cfg DisplayConfig) *Overlay {
	return &Overlay{cfg: cfg}
}

// Config returns the configuration of the overlay.
func (o *Overlay) Config() DisplayConfig {
	return o.cfg
}

// Update probes the scene under the cursor. The scene renderers must be refreshed for this frame.
func (o *Overlay) Update(cursor ScreenPoint, scene Scene) Frame {
	f := Frame{UT: scene.UT}
	f.Hit, f.OK = Probe(cursor, scene, o.cfg.AllowTargetHover)
	return f
}

// Draw lays out the panel for the frame on a screen of the provided size.
// The panel is centred on the hovered point and kept inside the screen.
// Nothing is drawn when the frame has no hit.
func (o *Overlay) Draw(f Frame, screenW, screenH float64) (Panel, bool) {
	if !f.OK {
		return Panel{}, false
	}
	w, h := float64(o.cfg.PanelWidth), float64(o.cfg.PanelHeight)
	r := Rect{
		X: clamp(f.Hit.Screen.X-w/2, 0, screenW-w),
		Y: clamp(f.Hit.Screen.Y-h/2, 0, screenH-h),
		W: w,
		H: h,
	}
	var lines []string
	if text := Format(f.Hit, o.cfg, f.UT); text != "" {
		lines = strings.Split(text, "\n")
	}
	return Panel{Rect: r, Lines: lines, Target: f.Hit.IsTargetSource()}, true
}

// clamp keeps v within [lo, hi], preferring lo when the range is empty.
func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}
