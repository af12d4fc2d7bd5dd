// Package components defines ECS components for the arena simulation.
package components

import (
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Position represents an agent's world position.
// X and Z span the horizontal plane; Y is derived from radius and jump state.
type Position struct {
	X, Y, Z float64
}

// Vec returns the position as a 3D vector.
func (p Position) Vec() r3.Vec {
	return r3.Vec{X: p.X, Y: p.Y, Z: p.Z}
}

// Horizontal returns the position projected on the X/Z plane.
func (p Position) Horizontal() r2.Vec {
	return r2.Vec{X: p.X, Y: p.Z}
}

// Velocity represents an agent's horizontal velocity (X/Z plane).
type Velocity struct {
	X, Z float64
}

// Vec returns the velocity as a 2D vector.
func (v Velocity) Vec() r2.Vec {
	return r2.Vec{X: v.X, Y: v.Z}
}

// Set overwrites the velocity from a 2D vector.
func (v *Velocity) Set(u r2.Vec) {
	v.X = u.X
	v.Z = u.Y
}

// Jump tracks vertical motion. VY is only meaningful while Active.
type Jump struct {
	Active bool
	VY     float64
}
