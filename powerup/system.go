package powerup

import (
	"time"

	"github.com/google/uuid"

	"github.com/pthm-cable/devour/components"
)

// Target is the mutable state of the agent an effect applies to.
type Target struct {
	Agent *components.Agent
	Body  *components.Body
}

// Resolver looks up the live state of an agent. It returns false for agents
// that no longer exist.
type Resolver func(id uuid.UUID) (Target, bool)

// Expiry reports an effect that ran out during Tick.
type Expiry struct {
	AgentID uuid.UUID
	Kind    Kind
}

// System owns all active effects. Speed and size do not stack: a new grant
// replaces the previous effect of the same kind. At most one skin is active
// per agent.
type System struct {
	clock     Clock
	tolerance float64
	effects   []Effect // grant order
	expired   []Expiry // reused across ticks
}

// NewSystem creates an empty system timed by clock. tolerance is the relative
// slack used to decide whether a size-1 grant is a shrink-back request.
func NewSystem(clock Clock, tolerance float64) *System {
	return &System{clock: clock, tolerance: tolerance}
}

// Now returns the current effect time.
func (s *System) Now() time.Duration { return s.clock.Now() }

// GrantSpeed sets the agent's speed multiplier for duration.
func (s *System) GrantSpeed(id uuid.UUID, t Target, multiplier float64, duration time.Duration) {
	if multiplier <= 0 {
		multiplier = 1
	}
	t.Agent.SpeedMultiplier = multiplier
	s.replace(Effect{AgentID: id, Kind: KindSpeed, StartedAt: s.clock.Now(), Duration: duration})
}

// GrantSize starts a size animation. A multiplier of 1 on an agent that is
// still enlarged shrinks it back to its base radius and cancels the running
// size effect. Otherwise the agent grows towards base*multiplier for
// duration. The current radius becomes the base only when no size effect is
// running, so a repeat grant replaces the multiplier instead of compounding
// it.
func (s *System) GrantSize(id uuid.UUID, t Target, multiplier float64, duration time.Duration) {
	body := t.Body
	if multiplier == 1 && body.Radius > body.BaseRadius*(1+s.tolerance) {
		body.SetSizeTarget(body.BaseRadius)
		s.remove(id, KindSize)
		return
	}
	if multiplier <= 0 {
		multiplier = 1
	}

	if !s.has(id, KindSize) {
		body.BaseRadius = body.Radius
	}
	body.SetSizeTarget(body.BaseRadius * multiplier)
	body.RecomputeMass()
	s.replace(Effect{AgentID: id, Kind: KindSize, StartedAt: s.clock.Now(), Duration: duration})
}

// GrantSkin applies a cosmetic skin for duration. Any previous skin effect on
// the agent is evicted without an expiry.
func (s *System) GrantSkin(id uuid.UUID, t Target, skin components.Skin, duration time.Duration) {
	t.Agent.Skin = skin
	s.replace(Effect{AgentID: id, Kind: KindSkin, Skin: skin, StartedAt: s.clock.Now(), Duration: duration})
}

// Apply dispatches a catalog grant. It returns false for KindNone.
func (s *System) Apply(id uuid.UUID, t Target, g Grant) bool {
	switch g.Kind {
	case KindSpeed:
		s.GrantSpeed(id, t, g.Multiplier, g.Duration)
	case KindSize:
		s.GrantSize(id, t, g.Multiplier, g.Duration)
	case KindSkin:
		s.GrantSkin(id, t, g.Skin, g.Duration)
	default:
		return false
	}
	return true
}

// Tick reverts every expired effect and returns one Expiry per reverted
// effect. The returned slice is reused by the next call. Effects whose agent
// no longer resolves are dropped without an expiry.
func (s *System) Tick(resolve Resolver) []Expiry {
	now := s.clock.Now()
	s.expired = s.expired[:0]

	kept := s.effects[:0]
	for _, e := range s.effects {
		t, ok := resolve(e.AgentID)
		if !ok {
			continue
		}
		if !e.Expired(now) {
			kept = append(kept, e)
			continue
		}

		switch e.Kind {
		case KindSpeed:
			t.Agent.SpeedMultiplier = 1
		case KindSize:
			t.Body.SetSizeTarget(t.Body.BaseRadius)
		case KindSkin:
			t.Agent.Skin = components.SkinDefault
		}
		s.expired = append(s.expired, Expiry{AgentID: e.AgentID, Kind: e.Kind})
	}
	clear(s.effects[len(kept):])
	s.effects = kept

	return s.expired
}

// Active returns the effects currently held for an agent, in grant order.
func (s *System) Active(id uuid.UUID) []Effect {
	var out []Effect
	for _, e := range s.effects {
		if e.AgentID == id {
			out = append(out, e)
		}
	}
	return out
}

// Len returns the number of active effects across all agents.
func (s *System) Len() int { return len(s.effects) }

// Forget drops all effects for a removed agent.
func (s *System) Forget(id uuid.UUID) {
	kept := s.effects[:0]
	for _, e := range s.effects {
		if e.AgentID != id {
			kept = append(kept, e)
		}
	}
	s.effects = kept
}

// Reset drops every effect.
func (s *System) Reset() {
	s.effects = s.effects[:0]
}

func (s *System) has(id uuid.UUID, kind Kind) bool {
	for _, e := range s.effects {
		if e.AgentID == id && e.Kind == kind {
			return true
		}
	}
	return false
}

func (s *System) replace(e Effect) {
	s.remove(e.AgentID, e.Kind)
	s.effects = append(s.effects, e)
}

func (s *System) remove(id uuid.UUID, kind Kind) {
	for i, e := range s.effects {
		if e.AgentID == id && e.Kind == kind {
			s.effects = append(s.effects[:i], s.effects[i+1:]...)
			return
		}
	}
}
