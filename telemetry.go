package abcors

import (
	"math"
	"strings"
)

const (
	// PrintTimeUnits is how many non-zero units the time to a point is printed with.
	PrintTimeUnits = 5
	angleDecimals  = 2
)

// Telemetry holds the values derived for a point of an orbit.
type Telemetry struct {
	TimeToPoint float64 // seconds, negative when the point is in the future
	Altitude    float64 // meters above the surface of the origin
	Speed       float64 // m/s with respect to the origin
	Angle       float64 // degrees past the prograde of the origin, in [0, 360)
	HasAngle    bool    // false when the origin does not orbit anything
}

// ComputeTelemetry derives the telemetry of the orbit o at time t, seen at time now.
func ComputeTelemetry(o *Orbit, t, now float64) Telemetry {
	tm := Telemetry{
		TimeToPoint: now - t,
		Altitude:    o.AltitudeAt(t),
		Speed:       o.OrbitalSpeedAt(t),
	}
	tm.Angle, tm.HasAngle = AngleToPrograde(o, t)
	return tm
}

// AngleToPrograde returns the angle in degrees between the prograde direction of the origin
// around its own parent and the position of o at time t, in [0, 360). The angle grows from
// prograde through radial out, retrograde and radial in. The boolean is false when the origin
// has no orbit.
func AngleToPrograde(o *Orbit, t float64) (float64, bool) {
	body := o.Origin
	if body == nil || body.Orbit == nil {
		return 0, false
	}
	bodyV := body.Orbit.RelativeVelocityAt(t)
	shipR := o.RelativePositionAt(t)
	θ := angleBetween(bodyV, shipR) / deg2rad
	rotated := MxV33(AxisAngle(body.Orbit.Normal(), math.Pi/2), bodyV)
	if dot(rotated, shipR) > 0 {
		θ = 360 - θ
	}
	if θ >= 360 {
		θ -= 360
	}
	return θ, true
}

// Lines returns one label line per enabled field, in the order time, altitude, speed, angle.
func (tm Telemetry) Lines(cfg DisplayConfig, loc Locale) []string {
	var lines []string
	if cfg.ShowTime {
		lines = append(lines, "T: "+PrintTime(tm.TimeToPoint, PrintTimeUnits, true, cfg.Calendar()))
	}
	if cfg.ShowAltitude {
		lines = append(lines, "Alt: "+loc.Integer(tm.Altitude)+"m")
	}
	if cfg.ShowSpeed {
		lines = append(lines, "Vel: "+loc.Integer(tm.Speed)+"m/s")
	}
	if cfg.ShowAngle && tm.HasAngle {
		θ := tm.Angle
		if p := math.Pow(10, angleDecimals); math.Round(θ*p)/p >= 360 {
			θ = 0
		}
		lines = append(lines, "Ang: "+loc.Fixed(θ, angleDecimals)+"°")
	}
	return lines
}

// Format returns the label of the hovered point, one line per enabled field.
func Format(hit HitResult, cfg DisplayConfig, now float64) string {
	if hit.Orbit == nil {
		return ""
	}
	tm := ComputeTelemetry(hit.Orbit, hit.UT, now)
	return strings.Join(tm.Lines(cfg, NewLocale(cfg.Locale)), "\n")
}
