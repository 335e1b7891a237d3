package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/LittleCodeGeek/abcors"
	"github.com/go-kit/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultScenario(t *testing.T) {
	sc, err := loadScenario("", log.NewNopLogger())
	require.NoError(t, err)
	require.NotNil(t, sc.Active)
	assert.Equal(t, "Kerbal X", sc.Active.Name)
	assert.Equal(t, abcors.Kerbin, sc.Active.Orbit().Origin)
	require.Len(t, sc.Active.Solver.ManeuverNodes, 1)
	node := sc.Active.Solver.ManeuverNodes[0]
	assert.Equal(t, 980.0, node.UT)
	// Hohmann transfer up to the orbit of the Mun.
	assert.InDelta(t, 841, node.ΔV[0], 5)
	transfer := node.Apply(sc.Active.Orbit())
	assert.InEpsilon(t, 12e6, transfer.Apoapsis(), 1e-6)
	assert.Equal(t, abcors.TargetBody, sc.Target.Kind)
	assert.Equal(t, abcors.Mun, sc.Target.Body)
	assert.Equal(t, abcors.Kerbin, sc.Camera.Focus)
	assert.Equal(t, 70000.0, sc.Camera.Scale)
	assert.Equal(t, 50.0, sc.Warp)
}

func writeScenario(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "scenario.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestScenarioFile(t *testing.T) {
	path := writeScenario(t, `
[time]
ut = 1000.0

[vessel]
name = "probe"

[orbit]
body = "Minmus"
sma = 200000.0
ecc = 0.1
inc = 5.0

[burns.0]
ut = 1500.0
V = 10.0

[burns.1]
ut = 1200.0
N = 5.0

[target]
name = "station"

[target.orbit]
body = "Minmus"
sma = 250000.0

[transfer]
ut = 2000.0
radius = 300000.0

[camera]
focus = "Kerbin"
pitch = 30.0
`)
	sc, err := loadScenario(path, log.NewNopLogger())
	require.NoError(t, err)
	assert.Equal(t, "probe", sc.Active.Name)
	assert.Equal(t, abcors.Minmus, sc.Active.Orbit().Origin)
	require.Len(t, sc.Active.Solver.ManeuverNodes, 3)
	assert.Equal(t, 1200.0, sc.Active.Solver.ManeuverNodes[0].UT)
	assert.Equal(t, 5.0, sc.Active.Solver.ManeuverNodes[0].ΔV[1])
	assert.Equal(t, 2000.0, sc.Active.Solver.ManeuverNodes[2].UT)
	assert.Equal(t, 1.0, sc.Warp)
	assert.Equal(t, abcors.TargetVessel, sc.Target.Kind)
	require.NotNil(t, sc.Target.Vessel)
	assert.Equal(t, "station", sc.Target.Vessel.Name)
	assert.Equal(t, abcors.Kerbin, sc.Camera.Focus)
	assert.InDelta(t, abcors.Deg2rad(30), sc.Camera.Pitch, 1e-12)
	assert.Greater(t, sc.Camera.Scale, 0.0)
}

func TestScenarioErrors(t *testing.T) {
	for name, content := range map[string]string{
		"unknown body": "[orbit]\nbody = \"Laythe\"\nsma = 1e6\n",
		"missing sma":  "[orbit]\nbody = \"Kerbin\"\n",
		"bad target":   "[orbit]\nbody = \"Kerbin\"\nsma = 7e5\n[target]\nbody = \"Vall\"\n",
		"bad focus":    "[orbit]\nbody = \"Kerbin\"\nsma = 7e5\n[camera]\nfocus = \"Tylo\"\n",
		"negative ecc": "[orbit]\nbody = \"Kerbin\"\nsma = 7e5\necc = -0.5\n",
		"not toml":     "[orbit\n",
		"no transfer":  "[orbit]\nbody = \"Kerbin\"\nsma = 7e5\n[transfer]\nut = 10.0\n",
	} {
		_, err := loadScenario(writeScenario(t, content), log.NewNopLogger())
		assert.Error(t, err, name)
	}
	_, err := loadScenario(filepath.Join(t.TempDir(), "missing.toml"), log.NewNopLogger())
	assert.Error(t, err)
}
