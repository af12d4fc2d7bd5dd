package components

import "math"

// Body holds the physical size of an agent.
type Body struct {
	Radius     float64 // current collision and visual size, always > 0
	BaseRadius float64 // reference size for boost multipliers
	Mass       float64 // (Radius / BaseRadius)^3

	// SizeTarget is the radius a size effect is animating towards.
	// Only valid when HasSizeTarget is set.
	SizeTarget    float64
	HasSizeTarget bool
}

// NewBody returns a body at rest with the given radius.
func NewBody(radius float64) Body {
	b := Body{Radius: radius, BaseRadius: radius}
	b.RecomputeMass()
	return b
}

// RecomputeMass refreshes Mass from the current radii.
func (b *Body) RecomputeMass() {
	if b.BaseRadius <= 0 {
		b.Mass = 1
		return
	}
	b.Mass = math.Pow(b.Radius/b.BaseRadius, 3)
}

// SetSizeTarget starts a size animation towards target.
func (b *Body) SetSizeTarget(target float64) {
	b.SizeTarget = target
	b.HasSizeTarget = true
}

// ClearSizeTarget stops any size animation.
func (b *Body) ClearSizeTarget() {
	b.SizeTarget = 0
	b.HasSizeTarget = false
}
