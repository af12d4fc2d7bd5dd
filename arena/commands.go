package arena

import (
	"log/slog"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/devour/powerup"
)

// ApplyControlForce sets the force applied to the controlled agent on the
// next step. The force is consumed by that step; later calls before it
// replace earlier ones.
func (a *Arena) ApplyControlForce(force r2.Vec) {
	a.pendingForce = force
}

// RequestJump makes the controlled agent jump on the next step if it is on
// the ground.
func (a *Arena) RequestJump() {
	a.jumpRequested = true
}

// SetAutopilot hands the controlled agent to the steering AI.
func (a *Arena) SetAutopilot(enabled bool) {
	a.autopilot = enabled
}

// Pause stops ticks and freezes power-up countdowns.
func (a *Arena) Pause() {
	if a.state != StateRunning {
		return
	}
	a.state = StatePaused
	a.clock.Pause()
}

// Resume continues a paused arena.
func (a *Arena) Resume() {
	if a.state != StatePaused {
		return
	}
	a.state = StateRunning
	a.clock.Resume()
}

// GrantRandomPowerUp draws from the weighted catalog and applies the result
// to the controlled agent. The returned grant may be the "try again" entry,
// which consumes the draw without an effect. Returns false if there is no
// controlled agent or the game is over.
func (a *Arena) GrantRandomPowerUp() (powerup.Grant, bool) {
	if !a.canGrant() {
		return powerup.Grant{}, false
	}
	g := a.catalog.Pick(a.rng).Grant
	a.GrantPowerUp(g)
	return g, true
}

// GrantPowerUp applies g to the controlled agent. Returns true if an effect
// was applied.
func (a *Arena) GrantPowerUp(g powerup.Grant) bool {
	if !a.canGrant() {
		return false
	}
	t, ok := a.target(a.controlled)
	if !ok {
		return false
	}

	applied := a.powerups.Apply(a.controlled, t, g)
	a.collector.RecordGrant(applied)
	if !applied {
		return false
	}

	a.lifetimes.RecordPowerUp(a.controlled)
	slog.Debug("power-up granted", "name", g.Name, "kind", g.Kind.String(), "duration", g.Duration)
	a.emitGranted(a.controlled, g.Kind)
	return true
}

func (a *Arena) canGrant() bool {
	return a.hasControlled && a.state != StateGameOver
}
