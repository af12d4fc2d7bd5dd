package arena

import (
	"github.com/google/uuid"

	"github.com/pthm-cable/devour/powerup"
)

//go:generate go tool mockgen -destination=./mocks/listener_mock.go -package=mocks . Listener

// Listener receives arena events. Callbacks run synchronously inside Step or
// the command that caused them and must not call back into the arena.
type Listener interface {
	OnConsumed(eaterID, eatenID uuid.UUID, points int)
	OnGameOver(finalScore int)
	OnPowerUpGranted(agentID uuid.UUID, kind powerup.Kind)
	OnPowerUpExpired(agentID uuid.UUID, kind powerup.Kind)
}

// NopListener ignores every event. Embed it to implement a subset.
type NopListener struct{}

func (NopListener) OnConsumed(uuid.UUID, uuid.UUID, int)     {}
func (NopListener) OnGameOver(int)                           {}
func (NopListener) OnPowerUpGranted(uuid.UUID, powerup.Kind) {}
func (NopListener) OnPowerUpExpired(uuid.UUID, powerup.Kind) {}

// AddListener registers l for all subsequent events.
func (a *Arena) AddListener(l Listener) {
	a.listeners = append(a.listeners, l)
}

func (a *Arena) emitConsumed(eater, eaten uuid.UUID, points int) {
	for _, l := range a.listeners {
		l.OnConsumed(eater, eaten, points)
	}
}

func (a *Arena) emitGameOver(score int) {
	for _, l := range a.listeners {
		l.OnGameOver(score)
	}
}

func (a *Arena) emitGranted(id uuid.UUID, kind powerup.Kind) {
	for _, l := range a.listeners {
		l.OnPowerUpGranted(id, kind)
	}
}

func (a *Arena) emitExpired(id uuid.UUID, kind powerup.Kind) {
	for _, l := range a.listeners {
		l.OnPowerUpExpired(id, kind)
	}
}
