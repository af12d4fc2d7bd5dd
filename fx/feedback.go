package fx

import (
	"github.com/google/uuid"

	"github.com/pthm-cable/devour/arena"
	"github.com/pthm-cable/devour/powerup"
)

type lastSeen struct {
	x, z, radius float64
}

// Feedback turns arena events into particle bursts. Events carry only ids,
// so it remembers where each agent was at the last Observe.
type Feedback struct {
	Particles *ParticleSystem

	seen       map[uuid.UUID]lastSeen
	controlled uuid.UUID
	eats       int
}

// NewFeedback creates a listener that emits into ps.
func NewFeedback(ps *ParticleSystem) *Feedback {
	return &Feedback{
		Particles: ps,
		seen:      make(map[uuid.UUID]lastSeen),
	}
}

// Observe records agent positions from a snapshot. Call it before each Step
// so consumed agents can still be located.
func (f *Feedback) Observe(snaps []arena.AgentSnapshot) {
	clear(f.seen)
	for _, s := range snaps {
		f.seen[s.ID] = lastSeen{x: s.Position.X, z: s.Position.Z, radius: s.Radius}
		if s.Controlled {
			f.controlled = s.ID
		}
	}
}

// Eats returns the number of consumptions seen since creation.
func (f *Feedback) Eats() int { return f.eats }

// OnConsumed bursts at the eaten agent's last position.
func (f *Feedback) OnConsumed(_, eatenID uuid.UUID, _ int) {
	f.eats++
	if at, ok := f.seen[eatenID]; ok {
		f.Particles.EmitBurst(at.x, at.z, at.radius, ParticleEat)
	}
}

// OnGameOver bursts around the controlled agent.
func (f *Feedback) OnGameOver(int) {
	if at, ok := f.seen[f.controlled]; ok {
		f.Particles.EmitBurst(at.x, at.z, at.radius, ParticleGameOver)
	}
}

// OnPowerUpGranted sparkles around the agent.
func (f *Feedback) OnPowerUpGranted(agentID uuid.UUID, _ powerup.Kind) {
	if at, ok := f.seen[agentID]; ok {
		f.Particles.EmitBurst(at.x, at.z, at.radius, ParticlePowerUp)
	}
}

// OnPowerUpExpired has no visual.
func (f *Feedback) OnPowerUpExpired(uuid.UUID, powerup.Kind) {}
