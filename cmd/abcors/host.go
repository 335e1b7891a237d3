package main

import (
	"fmt"
	"math"
	"time"

	"github.com/LittleCodeGeek/abcors"
	"github.com/gdamore/tcell/v2"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

const (
	// A terminal cell is taken as cellW x cellH pixels.
	cellW = 8
	cellH = 16

	frameRate      = 50 * time.Millisecond
	hoverTolerance = 10.0 // pixels, about a cell
	zoomFactor     = 1.25
	maxWarp        = 100000
	yawStep        = 15 // degrees
)

var (
	styleBody   = tcell.StyleDefault.Foreground(tcell.ColorBlue)
	styleVessel = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleTarget = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleStatus = tcell.StyleDefault.Foreground(tcell.ColorWhite).Reverse(true)
	stylePanel  = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
)

// host runs the map view in the terminal: one update and one draw of the overlay per frame.
type host struct {
	screen  tcell.Screen
	overlay *abcors.Overlay
	scene   abcors.Scene
	warp    float64
	mouse   abcors.ScreenPoint
	frame   abcors.Frame
	logger  log.Logger
}

func newHost(screen tcell.Screen, cfg abcors.DisplayConfig, sc scenario, logger log.Logger) *host {
	screen.EnableMouse()
	return &host{
		screen:  screen,
		overlay: abcors.NewOverlay(cfg),
		scene: abcors.Scene{
			ActiveVessel: sc.Active,
			Target:       sc.Target,
			Camera:       sc.Camera,
			UT:           sc.UT,
			Tolerance:    hoverTolerance,
		},
		warp:   sc.Warp,
		mouse:  abcors.ScreenPoint{X: -1, Y: -1},
		logger: log.With(logger, "subsys", "host"),
	}
}

// run polls events on a separate goroutine and steps frames on a ticker until asked to quit.
func (h *host) run() {
	ticker := time.NewTicker(frameRate)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go pollEvents(h.screen, events, done)

	level.Info(h.logger).Log("status", "started", "ut", h.scene.UT, "warp", h.warp)
	for {
		select {
		case ev, ok := <-events:
			if !ok || !h.handle(ev) {
				level.Info(h.logger).Log("status", "stopped", "ut", h.scene.UT)
				return
			}
		case <-ticker.C:
			h.step(frameRate.Seconds())
		}
	}
}

// pollEvents forwards screen events until the screen is finalized or done is closed.
func pollEvents(screen tcell.Screen, events chan<- tcell.Event, done <-chan struct{}) {
	defer close(events)
	for {
		ev := screen.PollEvent()
		if ev == nil {
			// Screen finalized.
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

// handle processes an event, returning false when the session should end.
func (h *host) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return h.key(ev.Key(), ev.Rune())
	case *tcell.EventMouse:
		x, y := ev.Position()
		h.mouse = cellCenter(x, y)
	case *tcell.EventResize:
		h.screen.Sync()
	}
	return true
}

func (h *host) key(k tcell.Key, r rune) bool {
	switch k {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyRune:
	default:
		return true
	}
	switch r {
	case 'q':
		return false
	case '+', '=':
		h.scene.Camera.Zoom(1 / zoomFactor)
	case '-':
		h.scene.Camera.Zoom(zoomFactor)
	case ']':
		h.warp = math.Min(h.warp*2, maxWarp)
	case '[':
		h.warp = math.Max(h.warp/2, 1)
	case 'h':
		h.scene.Camera.Yaw -= abcors.Deg2rad(yawStep)
	case 'l':
		h.scene.Camera.Yaw += abcors.Deg2rad(yawStep)
	case 'j':
		h.scene.Camera.Pitch = math.Max(h.scene.Camera.Pitch-abcors.Deg2rad(yawStep), 0)
	case 'k':
		h.scene.Camera.Pitch = math.Min(h.scene.Camera.Pitch+abcors.Deg2rad(yawStep), math.Pi/2)
	default:
		return true
	}
	level.Debug(h.logger).Log("key", string(r), "scale", h.scene.Camera.Scale, "warp", h.warp)
	return true
}

// step advances the universal time by dt seconds of wall time, then updates and draws a frame.
func (h *host) step(dt float64) {
	h.scene.UT += dt * h.warp
	w, hh := h.screen.Size()
	h.scene.Camera.Center = abcors.ScreenPoint{X: float64(w*cellW) / 2, Y: float64(hh*cellH) / 2}
	h.scene.Refresh()
	h.frame = h.overlay.Update(h.mouse, h.scene)
	h.draw(w, hh)
}

func (h *host) draw(w, hh int) {
	h.screen.Clear()
	cam := h.scene.Camera
	target := h.overlay.Config().TargetRGB()
	tr, tg, tb := target.RGB255()
	styleHit := tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(tr), int32(tg), int32(tb)))

	// Paths
	for _, pr := range h.scene.Target.Renders() {
		h.drawPath(pr, styleTarget)
	}
	if h.scene.ActiveVessel != nil && h.scene.ActiveVessel.Renderer != nil {
		for _, pr := range h.scene.ActiveVessel.Renderer.Renders() {
			h.drawPath(pr, styleVessel)
		}
	}

	// Bodies and vessels
	if cam.Focus != nil {
		h.put(cam.Center, 'O', styleBody)
	}
	if body := h.scene.Target.Body; body != nil {
		if p, ok := cam.Project(body.Position(h.scene.UT), h.scene.UT); ok {
			h.put(p, 'o', styleBody)
		}
	}
	if v := h.scene.Target.Vessel; v != nil && v.Orbit() != nil {
		if p, ok := cam.Project(v.Orbit().PositionAt(h.scene.UT), h.scene.UT); ok {
			h.put(p, '^', styleTarget)
		}
	}
	if v := h.scene.ActiveVessel; v != nil && v.Orbit() != nil {
		if p, ok := cam.Project(v.Orbit().PositionAt(h.scene.UT), h.scene.UT); ok {
			h.put(p, '^', styleVessel)
		}
	}

	// Panel
	if panel, ok := h.overlay.Draw(h.frame, float64(w*cellW), float64(hh*cellH)); ok {
		h.put(h.frame.Hit.Screen, '+', styleHit)
		style := stylePanel
		if panel.Target {
			style = stylePanel.Foreground(tcell.NewRGBColor(int32(tr), int32(tg), int32(tb)))
		}
		x0, y0 := int(panel.Rect.X/cellW), int(panel.Rect.Y/cellH)
		cols, rows := int(panel.Rect.W/cellW), int(panel.Rect.H/cellH)
		for y := 0; y < rows; y++ {
			var line []rune
			if y >= 1 && y-1 < len(panel.Lines) {
				line = []rune(panel.Lines[y-1])
			}
			for x := 0; x < cols; x++ {
				r := ' '
				if x >= 1 && x-1 < len(line) {
					r = line[x-1]
				}
				h.screen.SetContent(x0+x, y0+y, r, nil, style)
			}
		}
	}

	// Status line
	status := fmt.Sprintf(" UT %s  warp x%.0f  %.0f m/px ", abcors.PrintTime(h.scene.UT, 3, false, h.overlay.Config().Calendar()), h.warp, cam.Scale)
	for x, r := range []rune(status) {
		if x >= w {
			break
		}
		h.screen.SetContent(x, hh-1, r, nil, styleStatus)
	}
	h.screen.Show()
}

func (h *host) drawPath(pr *abcors.PatchRender, style tcell.Style) {
	for _, pt := range pr.Points {
		if pt.Visible {
			h.put(pt.Screen, '.', style)
		}
	}
}

// put draws r in the cell holding the pixel p, if on screen.
func (h *host) put(p abcors.ScreenPoint, r rune, style tcell.Style) {
	w, hh := h.screen.Size()
	if p.X < 0 || p.Y < 0 {
		return
	}
	x, y := int(p.X/cellW), int(p.Y/cellH)
	if x >= w || y >= hh {
		return
	}
	h.screen.SetContent(x, y, r, nil, style)
}

// cellCenter returns the pixel at the centre of the cell in column x and row y.
func cellCenter(x, y int) abcors.ScreenPoint {
	return abcors.ScreenPoint{X: float64(x*cellW) + cellW/2, Y: float64(y*cellH) + cellH/2}
}
