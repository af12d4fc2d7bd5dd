// Package controls maps player input to arena commands. It is shared by the
// raylib and terminal front ends and has no rendering dependencies.
package controls

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/devour/arena"
	"github.com/pthm-cable/devour/powerup"
)

// Direction is a bitmask of held movement keys.
type Direction uint8

const (
	Up Direction = 1 << iota
	Down
	Left
	Right
)

// Force converts held directions into a control force of the given
// magnitude. Screen up is -Z. Opposite keys cancel and diagonals are
// normalized so they are no faster than a single axis.
func Force(d Direction, magnitude float64) r2.Vec {
	var v r2.Vec
	if d&Up != 0 {
		v.Y--
	}
	if d&Down != 0 {
		v.Y++
	}
	if d&Left != 0 {
		v.X--
	}
	if d&Right != 0 {
		v.X++
	}
	if v.X == 0 && v.Y == 0 {
		return r2.Vec{}
	}
	return r2.Scale(magnitude, r2.Unit(v))
}

// Command is a discrete player action.
type Command uint8

const (
	None Command = iota
	Jump
	TogglePause
	Restart
	PowerUp
	ToggleAutopilot
)

// String returns the display name for a Command.
func (c Command) String() string {
	switch c {
	case Jump:
		return "jump"
	case TogglePause:
		return "pause"
	case Restart:
		return "restart"
	case PowerUp:
		return "power-up"
	case ToggleAutopilot:
		return "autopilot"
	default:
		return "none"
	}
}

// Target is the arena surface commands act on.
type Target interface {
	State() arena.State
	Pause()
	Resume()
	Restart()
	RequestJump()
	GrantRandomPowerUp() (powerup.Grant, bool)
	Autopilot() bool
	SetAutopilot(enabled bool)
}

// Apply runs cmd against t and returns a short status line for the HUD, or
// "" when there is nothing to report.
func Apply(t Target, cmd Command) string {
	switch cmd {
	case Jump:
		t.RequestJump()
	case TogglePause:
		switch t.State() {
		case arena.StateRunning:
			t.Pause()
			return "Paused"
		case arena.StatePaused:
			t.Resume()
			return "Resumed"
		}
	case Restart:
		t.Restart()
		return "New game"
	case PowerUp:
		g, ok := t.GrantRandomPowerUp()
		if !ok {
			return ""
		}
		return GrantMessage(g)
	case ToggleAutopilot:
		t.SetAutopilot(!t.Autopilot())
		if t.Autopilot() {
			return "Autopilot on"
		}
		return "Autopilot off"
	}
	return ""
}

// GrantMessage describes a drawn power-up.
func GrantMessage(g powerup.Grant) string {
	switch g.Kind {
	case powerup.KindSpeed:
		return "Speed boost!"
	case powerup.KindSize:
		return "Size boost!"
	case powerup.KindSkin:
		return "New skin: " + g.Skin.String()
	default:
		return "Try again"
	}
}

// CommandForKey returns the command bound to a character key.
func CommandForKey(r rune) Command {
	switch r {
	case ' ':
		return Jump
	case 'p', 'P':
		return TogglePause
	case 'r', 'R':
		return Restart
	case 'g', 'G':
		return PowerUp
	case 't', 'T':
		return ToggleAutopilot
	default:
		return None
	}
}

// DirectionForKey returns the movement direction bound to a character key.
func DirectionForKey(r rune) Direction {
	switch r {
	case 'w', 'W':
		return Up
	case 's', 'S':
		return Down
	case 'a', 'A':
		return Left
	case 'd', 'D':
		return Right
	default:
		return 0
	}
}

// Help is the key legend shown by the front ends.
const Help = "WASD/arrows move | Space jump | G power-up | P pause | R restart | T autopilot"
