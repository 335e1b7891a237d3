package abcors

import (
	"fmt"
	"math"
	"sort"
)

const (
	// escapeRadiusFactor bounds the drawn arc of an open orbit when the origin has no finite SOI.
	escapeRadiusFactor = 50
)

// ManeuverNode is an impulsive burn planned at UT.
// ΔV is expressed in the local frame of the orbit: prograde, normal, radial out (m/s).
type ManeuverNode struct {
	UT float64
	ΔV []float64
}

// NewManeuverNode returns a new maneuver node.
func NewManeuverNode(ut, prograde, normal, radial float64) ManeuverNode {
	return ManeuverNode{UT: ut, ΔV: []float64{prograde, normal, radial}}
}

// Apply returns the orbit following the burn of this node performed on o.
func (n ManeuverNode) Apply(o *Orbit) *Orbit {
	R, V := o.RelativeStateAt(n.UT)
	pro := unit(V)
	nrm := unit(cross(R, V))
	rad := cross(pro, nrm)
	Δv := add(add(scale(n.ΔV[0], pro), scale(n.ΔV[1], nrm)), scale(n.ΔV[2], rad))
	return NewOrbitFromRV(R, add(V, Δv), n.UT, o.Origin)
}

// Magnitude returns the norm of the Δv of this node.
func (n ManeuverNode) Magnitude() float64 {
	return norm(n.ΔV)
}

func (n ManeuverNode) String() string {
	return fmt.Sprintf("burn@%.0f Δv=%.1f m/s (P=%.1f N=%.1f R=%.1f)", n.UT, n.Magnitude(), n.ΔV[0], n.ΔV[1], n.ΔV[2])
}

// Patch is the section of an orbit flown between two times.
type Patch struct {
	Orbit   *Orbit
	StartUT float64
	EndUT   float64
}

// PatchedConicSolver computes the trajectory of a vessel from its orbit and maneuver nodes.
type PatchedConicSolver struct {
	Orbit         *Orbit
	ManeuverNodes []ManeuverNode
}

// NewPatchedConicSolver returns a solver for the provided orbit.
func NewPatchedConicSolver(o *Orbit, nodes ...ManeuverNode) *PatchedConicSolver {
	s := &PatchedConicSolver{Orbit: o}
	for _, n := range nodes {
		s.AddManeuverNode(n)
	}
	return s
}

// AddManeuverNode adds a node, keeping nodes sorted by time.
func (s *PatchedConicSolver) AddManeuverNode(n ManeuverNode) {
	s.ManeuverNodes = append(s.ManeuverNodes, n)
	sort.SliceStable(s.ManeuverNodes, func(i, j int) bool {
		return s.ManeuverNodes[i].UT < s.ManeuverNodes[j].UT
	})
}

// HasManeuverNodes returns whether a flight plan exists.
func (s *PatchedConicSolver) HasManeuverNodes() bool {
	return len(s.ManeuverNodes) > 0
}

// Patches returns the actual trajectory from ut, ignoring maneuver nodes.
func (s *PatchedConicSolver) Patches(ut float64) []Patch {
	if s.Orbit == nil {
		return nil
	}
	return []Patch{{Orbit: s.Orbit, StartUT: ut, EndUT: ut + span(s.Orbit, ut)}}
}

// FlightPlan returns the trajectory from ut with every upcoming maneuver node performed.
func (s *PatchedConicSolver) FlightPlan(ut float64) []Patch {
	if s.Orbit == nil {
		return nil
	}
	var patches []Patch
	o := s.Orbit
	start := ut
	for _, node := range s.ManeuverNodes {
		if node.UT < ut {
			continue
		}
		patches = append(patches, Patch{Orbit: o, StartUT: start, EndUT: node.UT})
		o = node.Apply(o)
		start = node.UT
	}
	return append(patches, Patch{Orbit: o, StartUT: start, EndUT: start + span(o, start)})
}

// span returns how long the orbit is drawn for from ut: one revolution for closed orbits, and
// until leaving the sphere of influence for open ones.
func span(o *Orbit, ut float64) float64 {
	if !o.IsHyperbolic() {
		return o.Period()
	}
	rMax := o.Origin.SOI
	if math.IsInf(rMax, 1) || rMax <= 0 {
		rMax = escapeRadiusFactor * o.Periapsis()
	}
	exit, ok := o.UTAtRadius(rMax)
	if !ok || exit <= ut {
		return 0
	}
	return exit - ut
}
