// Package powerup tracks timed per-agent effects: speed boosts, size boosts
// and cosmetic skins.
package powerup

import (
	"time"

	"github.com/google/uuid"

	"github.com/pthm-cable/devour/components"
)

// Kind identifies a power-up effect.
type Kind uint8

const (
	KindNone Kind = iota // "try again": grants nothing
	KindSpeed
	KindSize
	KindSkin
)

// String returns the display name for a Kind.
func (k Kind) String() string {
	switch k {
	case KindSpeed:
		return "speed"
	case KindSize:
		return "size"
	case KindSkin:
		return "skin"
	default:
		return "none"
	}
}

// ParseKind returns the kind with the given name.
func ParseKind(name string) (Kind, bool) {
	for _, k := range []Kind{KindNone, KindSpeed, KindSize, KindSkin} {
		if k.String() == name {
			return k, true
		}
	}
	return KindNone, false
}

// Grant describes a power-up to apply to an agent.
type Grant struct {
	Name       string
	Kind       Kind
	Multiplier float64         // speed and size only
	Skin       components.Skin // skin only
	Duration   time.Duration
}

// Effect is an active timed power-up on one agent.
type Effect struct {
	AgentID   uuid.UUID
	Kind      Kind
	Skin      components.Skin
	StartedAt time.Duration
	Duration  time.Duration
}

// Expired reports whether the effect has run its course at now.
func (e Effect) Expired(now time.Duration) bool {
	return now-e.StartedAt >= e.Duration
}

// Remaining returns the time left before expiry, never negative.
func (e Effect) Remaining(now time.Duration) time.Duration {
	return max(e.Duration-(now-e.StartedAt), 0)
}
