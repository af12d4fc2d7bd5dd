// Package systems contains the per-agent simulation rules: motion, consumption,
// steering and spawn control.
package systems

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/devour/components"
	"github.com/pthm-cable/devour/config"
)

// MotionParams holds the integration constants for agents.
type MotionParams struct {
	ControlledMaxSpeed float64 // units per second at multiplier 1
	EnemyMaxSpeed      float64
	ControlledDamping  float64 // per-tick velocity retention
	EnemyDamping       float64
	Gravity            float64
	JumpSpeed          float64
	HalfWidth          float64
	Bounce             float64
}

// MotionParamsFromConfig extracts motion parameters from the loaded config.
func MotionParamsFromConfig(cfg *config.Config) MotionParams {
	return MotionParams{
		ControlledMaxSpeed: cfg.Agent.ControlledMaxSpeed,
		EnemyMaxSpeed:      cfg.Agent.EnemyMaxSpeed,
		ControlledDamping:  cfg.Agent.ControlledDamping,
		EnemyDamping:       cfg.Agent.EnemyDamping,
		Gravity:            cfg.Physics.Gravity,
		JumpSpeed:          cfg.Physics.JumpSpeed,
		HalfWidth:          cfg.Arena.HalfWidth,
		Bounce:             cfg.Agent.Bounce,
	}
}

// MaxSpeed returns the speed cap for an agent at its current boost level.
// Controlled agents always outrun AI agents at equal multipliers.
func (p MotionParams) MaxSpeed(agent *components.Agent) float64 {
	base := p.EnemyMaxSpeed
	if agent.Controlled {
		base = p.ControlledMaxSpeed
	}
	return base * agent.SpeedMultiplier
}

// Damping returns the per-tick velocity retention for an agent.
func (p MotionParams) Damping(agent *components.Agent) float64 {
	if agent.Controlled {
		return p.ControlledDamping
	}
	return p.EnemyDamping
}

// Integrate advances one agent by dt under the given horizontal force.
// The force is scaled by the speed multiplier, speed is clamped, damping is
// applied and position advances by velocity*dt. Vertical motion only runs
// while a jump is active and never touches radius or horizontal motion.
func Integrate(
	pos *components.Position,
	vel *components.Velocity,
	jump *components.Jump,
	body *components.Body,
	agent *components.Agent,
	force r2.Vec,
	dt float64,
	p MotionParams,
) {
	v := r2.Add(vel.Vec(), r2.Scale(agent.SpeedMultiplier, force))

	maxSpeed := p.MaxSpeed(agent)
	if speed := r2.Norm(v); speed > maxSpeed && speed > 0 {
		v = r2.Scale(maxSpeed/speed, v)
	}

	v = r2.Scale(p.Damping(agent), v)
	vel.Set(v)

	pos.X += v.X * dt
	pos.Z += v.Y * dt

	integrateVertical(pos, jump, body.Radius, dt, p.Gravity)
}

// integrateVertical moves a jumping agent under constant gravity until it
// lands back at y = radius.
func integrateVertical(pos *components.Position, jump *components.Jump, radius, dt, gravity float64) {
	if !jump.Active {
		pos.Y = radius
		return
	}

	jump.VY -= gravity * dt
	pos.Y += jump.VY * dt

	if pos.Y <= radius {
		pos.Y = radius
		jump.Active = false
		jump.VY = 0
	}
}

// StartJump launches a jump. Returns false if the agent is already airborne.
func StartJump(jump *components.Jump, speed float64) bool {
	if jump.Active {
		return false
	}
	jump.Active = true
	jump.VY = speed
	return true
}

// ApplyBoundary clamps an agent into [-halfWidth, halfWidth] on both
// horizontal axes. The offending velocity component is multiplied by bounce
// (negative), so agents rebound off the wall instead of sticking to it.
func ApplyBoundary(pos *components.Position, vel *components.Velocity, halfWidth, bounce float64) {
	if pos.X > halfWidth {
		pos.X = halfWidth
		vel.X *= bounce
	} else if pos.X < -halfWidth {
		pos.X = -halfWidth
		vel.X *= bounce
	}

	if pos.Z > halfWidth {
		pos.Z = halfWidth
		vel.Z *= bounce
	} else if pos.Z < -halfWidth {
		pos.Z = -halfWidth
		vel.Z *= bounce
	}
}
