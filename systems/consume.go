package systems

import (
	"math"

	"github.com/pthm-cable/devour/components"
	"github.com/pthm-cable/devour/config"
)

// minRadius keeps Grow from ever producing a non-positive radius.
const minRadius = 1e-3

// ConsumeParams holds the growth constants for eating.
type ConsumeParams struct {
	EatenVolumeShare float64 // fraction of the eaten agent's volume the eater gains
	PointsPerRadius  float64
}

// ConsumeParamsFromConfig extracts consumption parameters from the loaded config.
func ConsumeParamsFromConfig(cfg *config.Config) ConsumeParams {
	return ConsumeParams{
		EatenVolumeShare: cfg.Agent.EatenVolumeShare,
		PointsPerRadius:  cfg.Agent.PointsPerRadius,
	}
}

// CanConsume reports whether a can eat b. Equal radii can never eat each other.
func CanConsume(a, b *components.Body) bool {
	return a.Radius > b.Radius
}

// Consume grows eater by a share of eaten's volume and returns the points
// awarded. The eater's base radius follows the new radius, so natural growth
// raises the floor a size boost shrinks back to. A size animation heading
// below the new radius is dropped. Returns 0 without touching the eater if it
// cannot eat the target.
func Consume(eater, eaten *components.Body, p ConsumeParams) int {
	if !CanConsume(eater, eaten) {
		return 0
	}

	r := eater.Radius
	o := eaten.Radius
	newRadius := math.Cbrt(r*r*r + o*o*o*p.EatenVolumeShare)

	Grow(eater, newRadius-r)
	eater.BaseRadius = eater.Radius
	if eater.HasSizeTarget && eater.SizeTarget < eater.BaseRadius {
		eater.ClearSizeTarget()
	}
	eater.RecomputeMass()

	return int(math.Floor(o * p.PointsPerRadius))
}

// Grow changes the radius by delta and recomputes mass.
func Grow(body *components.Body, delta float64) {
	body.Radius += delta
	if body.Radius < minRadius {
		body.Radius = minRadius
	}
	body.RecomputeMass()
}

// Colliding reports whether two agents overlap on the horizontal plane.
// Jump height is ignored.
func Colliding(a components.Position, ra float64, b components.Position, rb float64) bool {
	dx := a.X - b.X
	dz := a.Z - b.Z
	reach := ra + rb
	return dx*dx+dz*dz < reach*reach
}

// AnimateSize moves the radius a fraction of the way towards the size target.
// Once within tolerance (relative to the target) the radius snaps to it and
// the target clears. Returns true on the tick the animation completes.
func AnimateSize(body *components.Body, rate, tolerance float64) bool {
	if !body.HasSizeTarget {
		return false
	}

	gap := body.SizeTarget - body.Radius
	if math.Abs(gap) <= tolerance*body.SizeTarget {
		body.Radius = body.SizeTarget
		body.ClearSizeTarget()
		body.RecomputeMass()
		return true
	}

	Grow(body, gap*rate)
	return false
}
