package systems

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/devour/config"
)

// SteeringParams holds AI decision constants.
type SteeringParams struct {
	ThreatRadius float64
	TargetRadius float64
	TieEpsilon   float64 // radii this close count as equally attractive
	AvoidForce   float64
	SeekForce    float64
	WanderChance float64 // per-tick probability of a random impulse
	WanderForce  float64
}

// SteeringParamsFromConfig extracts steering parameters from the loaded config.
func SteeringParamsFromConfig(cfg *config.Config) SteeringParams {
	s := cfg.Steering
	return SteeringParams{
		ThreatRadius: s.ThreatRadius,
		TargetRadius: s.TargetRadius,
		TieEpsilon:   s.TieEpsilon,
		AvoidForce:   s.AvoidForce,
		SeekForce:    s.SeekForce,
		WanderChance: s.WanderChance,
		WanderForce:  s.WanderForce,
	}
}

// QueryRadius returns the neighbor radius Decide needs to see.
func (p SteeringParams) QueryRadius() float64 {
	return math.Max(p.ThreatRadius, p.TargetRadius)
}

// Mode identifies which rule produced a steering decision.
type Mode uint8

const (
	ModeIdle Mode = iota
	ModeFlee
	ModeSeek
	ModeWander
)

// String returns the display name for a Mode.
func (m Mode) String() string {
	switch m {
	case ModeFlee:
		return "flee"
	case ModeSeek:
		return "seek"
	case ModeWander:
		return "wander"
	default:
		return "idle"
	}
}

// Decision is the force an agent applies this tick and why.
type Decision struct {
	Force r2.Vec
	Mode  Mode
}

// Decide picks this tick's force for an agent of radius selfRadius.
// Priority is strict: flee the nearest threat, else seek the best target,
// else wander with a fixed probability, else idle. Neighbor offsets are
// relative to the deciding agent.
func Decide(selfRadius float64, neighbors []Neighbor, p SteeringParams, rng *rand.Rand) Decision {
	if threat, ok := NearestThreat(selfRadius, neighbors, p.ThreatRadius); ok {
		away := r2.Vec{X: -threat.DX, Y: -threat.DZ}
		return Decision{Force: scaledUnit(away, p.AvoidForce), Mode: ModeFlee}
	}

	if target, ok := IdealTarget(selfRadius, neighbors, p.TargetRadius, p.TieEpsilon); ok {
		toward := r2.Vec{X: target.DX, Y: target.DZ}
		return Decision{Force: scaledUnit(toward, p.SeekForce), Mode: ModeSeek}
	}

	if rng.Float64() < p.WanderChance {
		angle := rng.Float64() * 2 * math.Pi
		force := r2.Vec{X: math.Cos(angle) * p.WanderForce, Y: math.Sin(angle) * p.WanderForce}
		return Decision{Force: force, Mode: ModeWander}
	}

	return Decision{Mode: ModeIdle}
}

// NearestThreat returns the closest neighbor that can eat an agent of
// selfRadius within the threat radius.
func NearestThreat(selfRadius float64, neighbors []Neighbor, threatRadius float64) (Neighbor, bool) {
	limitSq := threatRadius * threatRadius
	var best Neighbor
	found := false

	for _, n := range neighbors {
		if n.Radius <= selfRadius || n.DistSq > limitSq {
			continue
		}
		if !found || n.DistSq < best.DistSq {
			best = n
			found = true
		}
	}

	return best, found
}

// IdealTarget returns the largest eatable neighbor within the target radius.
// Candidates within tieEpsilon of the largest radius are ranked by distance.
func IdealTarget(selfRadius float64, neighbors []Neighbor, targetRadius, tieEpsilon float64) (Neighbor, bool) {
	limitSq := targetRadius * targetRadius

	largest := -1.0
	for _, n := range neighbors {
		if n.Radius >= selfRadius || n.DistSq > limitSq {
			continue
		}
		largest = math.Max(largest, n.Radius)
	}
	if largest < 0 {
		return Neighbor{}, false
	}

	var best Neighbor
	found := false
	for _, n := range neighbors {
		if n.Radius >= selfRadius || n.DistSq > limitSq || n.Radius < largest-tieEpsilon {
			continue
		}
		if !found || n.DistSq < best.DistSq {
			best = n
			found = true
		}
	}

	return best, found
}

// scaledUnit returns v normalized to the given magnitude, or zero for a
// zero-length v.
func scaledUnit(v r2.Vec, magnitude float64) r2.Vec {
	if r2.Norm(v) == 0 {
		return r2.Vec{}
	}
	return r2.Scale(magnitude, r2.Unit(v))
}
