package main

import (
	"fmt"
	"strings"

	"github.com/LittleCodeGeek/abcors"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/spf13/viper"
)

// defaultScenario is used when no scenario file is provided: a low Kerbin orbit with a Hohmann
// transfer planned towards the Mun, which is targeted.
const defaultScenario = `
[time]
ut = 0.0
warp = 50.0

[vessel]
name = "Kerbal X"

[orbit]
body = "Kerbin"
sma = 700000.0
ecc = 0.0
inc = 0.0
RAAN = 0.0
argPeri = 0.0
mAnomaly = 0.0

[transfer]
ut = 980.0

[target]
body = "Mun"

[camera]
scale = 70000.0
`

// scenario is the map view a session starts with.
type scenario struct {
	Active *abcors.Vessel
	Target abcors.OrbitSource
	Camera abcors.Camera
	UT     float64
	Warp   float64
}

// loadScenario reads the scenario TOML file at path, or the built-in scenario if path is empty.
func loadScenario(path string, logger log.Logger) (scenario, error) {
	logger = log.With(logger, "subsys", "scenario")
	v := viper.New()
	v.SetConfigType("toml")
	v.SetDefault("time.warp", 1.0)
	v.SetDefault("vessel.name", "vessel")
	if path == "" {
		if err := v.ReadConfig(strings.NewReader(defaultScenario)); err != nil {
			return scenario{}, fmt.Errorf("built-in scenario: %w", err)
		}
	} else {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return scenario{}, fmt.Errorf("%s: %w", path, err)
		}
	}

	sc := scenario{UT: v.GetFloat64("time.ut"), Warp: v.GetFloat64("time.warp")}
	if sc.Warp <= 0 {
		sc.Warp = 1
	}

	// Target
	switch {
	case v.IsSet("target.body"):
		name := v.GetString("target.body")
		body, err := abcors.CelestialObjectFromString(name)
		if err != nil {
			return scenario{}, fmt.Errorf("target: %w", err)
		}
		sc.Target = abcors.TargetBodySource(abcors.NewOrbitRenderer(body))
	case v.IsSet("target.orbit"):
		to, err := readOrbit(v, "target.orbit", sc.UT)
		if err != nil {
			return scenario{}, fmt.Errorf("target: %w", err)
		}
		sc.Target = abcors.TargetVesselSource(abcors.NewVessel(v.GetString("target.name"), to))
	}

	// Active vessel
	o, err := readOrbit(v, "orbit", sc.UT)
	if err != nil {
		return scenario{}, err
	}
	var nodes []abcors.ManeuverNode
	for burnNo := 0; v.IsSet(fmt.Sprintf("burns.%d", burnNo)); burnNo++ {
		ut := v.GetFloat64(fmt.Sprintf("burns.%d.ut", burnNo))
		V := v.GetFloat64(fmt.Sprintf("burns.%d.V", burnNo))
		N := v.GetFloat64(fmt.Sprintf("burns.%d.N", burnNo))
		C := v.GetFloat64(fmt.Sprintf("burns.%d.C", burnNo))
		node := abcors.NewManeuverNode(ut, V, N, C)
		if ut < sc.UT {
			level.Warn(logger).Log("message", "burn scheduled before the start", "burn", node)
		} else {
			level.Debug(logger).Log("added", node)
		}
		nodes = append(nodes, node)
	}
	if v.IsSet("transfer.ut") {
		node, err := transferNode(v, o, sc.Target)
		if err != nil {
			return scenario{}, err
		}
		level.Debug(logger).Log("transfer", node)
		nodes = append(nodes, node)
	}
	sc.Active = abcors.NewVessel(v.GetString("vessel.name"), o, nodes...)

	// Camera
	focus := o.Origin
	if v.IsSet("camera.focus") {
		if focus, err = abcors.CelestialObjectFromString(v.GetString("camera.focus")); err != nil {
			return scenario{}, fmt.Errorf("camera: %w", err)
		}
	}
	sc.Camera = abcors.Camera{
		Scale: v.GetFloat64("camera.scale"),
		Yaw:   abcors.Deg2rad(v.GetFloat64("camera.yaw")),
		Pitch: abcors.Deg2rad(v.GetFloat64("camera.pitch")),
		Focus: focus,
	}
	if sc.Camera.Scale <= 0 {
		sc.Camera.Scale = 4 * o.Apoapsis() / 640
		if !(sc.Camera.Scale > 0) || sc.Camera.Scale > 1e12 {
			sc.Camera.Scale = 1e4
		}
	}
	level.Info(logger).Log("vessel", sc.Active.Name, "orbit", o, "burns", len(nodes), "target", sc.Target.Kind)
	return sc, nil
}

// transferNode returns the Hohmann burn at transfer.ut up to transfer.radius, or up to the orbit of
// the target when no radius is set.
func transferNode(v *viper.Viper, o *abcors.Orbit, target abcors.OrbitSource) (abcors.ManeuverNode, error) {
	rF := v.GetFloat64("transfer.radius")
	if rF <= 0 {
		var to *abcors.Orbit
		switch target.Kind {
		case abcors.TargetBody:
			if target.Body != nil {
				to = target.Body.Orbit
			}
		case abcors.TargetVessel:
			to = target.Vessel.Orbit()
		}
		if to == nil || to.Origin != o.Origin {
			return abcors.ManeuverNode{}, fmt.Errorf("transfer.radius must be set without a target around %s", o.Origin.Name)
		}
		rF, _, _, _, _, _ = to.Elements()
	}
	return abcors.HohmannNode(o, rF, v.GetFloat64("transfer.ut")), nil
}

// readOrbit reads the orbit under the provided key. Angles are in degrees.
func readOrbit(v *viper.Viper, key string, ut float64) (*abcors.Orbit, error) {
	bodyName := v.GetString(key + ".body")
	body, err := abcors.CelestialObjectFromString(bodyName)
	if err != nil {
		return nil, fmt.Errorf("could not understand body `%s`: %w", bodyName, err)
	}
	a := v.GetFloat64(key + ".sma")
	if a == 0 {
		return nil, fmt.Errorf("%s.sma must be set", key)
	}
	e := v.GetFloat64(key + ".ecc")
	if e < 0 {
		return nil, fmt.Errorf("%s.ecc must be positive", key)
	}
	i := v.GetFloat64(key + ".inc")
	Ω := v.GetFloat64(key + ".RAAN")
	ω := v.GetFloat64(key + ".argPeri")
	M := v.GetFloat64(key + ".mAnomaly")
	return abcors.NewOrbitFromOE(a, e, i, Ω, ω, M, ut, body), nil
}
