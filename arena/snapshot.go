package arena

import (
	"sort"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/devour/components"
)

// AgentSnapshot is a read-only view of one agent for presentation.
type AgentSnapshot struct {
	ID         uuid.UUID
	Name       string
	Position   r3.Vec
	Velocity   r2.Vec
	Radius     float64
	Skin       components.Skin
	Band       components.Band
	Controlled bool
	Jumping    bool
	SpeedBoost float64
	seq        uint64
}

// Snapshot returns every agent in leaderboard order: descending radius, ties
// broken by insertion order.
func (a *Arena) Snapshot() []AgentSnapshot {
	out := make([]AgentSnapshot, 0, a.enemies+1)
	query := a.filter.Query()
	for query.Next() {
		pos, vel, jump, body, agent := query.Get()
		out = append(out, AgentSnapshot{
			ID:         agent.ID,
			Name:       agent.Name,
			Position:   pos.Vec(),
			Velocity:   vel.Vec(),
			Radius:     body.Radius,
			Skin:       agent.Skin,
			Band:       components.BandFor(body.Radius, a.cfg.Bands),
			Controlled: agent.Controlled,
			Jumping:    jump.Active,
			SpeedBoost: agent.SpeedMultiplier,
			seq:        agent.Seq,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Radius != out[j].Radius {
			return out[i].Radius > out[j].Radius
		}
		return out[i].seq < out[j].seq
	})
	return out
}

// Leaderboard returns the top n agents. n <= 0 returns all.
func (a *Arena) Leaderboard(n int) []AgentSnapshot {
	all := a.Snapshot()
	if n > 0 && n < len(all) {
		return all[:n]
	}
	return all
}

// Controlled returns the controlled agent's snapshot.
func (a *Arena) Controlled() (AgentSnapshot, bool) {
	e, ok := a.resolve(a.controlled)
	if !ok {
		return AgentSnapshot{}, false
	}
	pos, vel, jump, body, agent := a.agents.Get(e)
	return AgentSnapshot{
		ID:         agent.ID,
		Name:       agent.Name,
		Position:   pos.Vec(),
		Velocity:   vel.Vec(),
		Radius:     body.Radius,
		Skin:       agent.Skin,
		Band:       components.BandFor(body.Radius, a.cfg.Bands),
		Controlled: true,
		Jumping:    jump.Active,
		SpeedBoost: agent.SpeedMultiplier,
		seq:        agent.Seq,
	}, true
}

// Rank returns the 1-based leaderboard position of an agent, or 0 if absent.
func (a *Arena) Rank(id uuid.UUID) int {
	for i, s := range a.Snapshot() {
		if s.ID == id {
			return i + 1
		}
	}
	return 0
}
