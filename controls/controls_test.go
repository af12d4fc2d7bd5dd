package controls

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/devour/arena"
	"github.com/pthm-cable/devour/components"
	"github.com/pthm-cable/devour/powerup"
)

func TestForce(t *testing.T) {
	diag := 10 / math.Sqrt2

	tests := []struct {
		name string
		dir  Direction
		want r2.Vec
	}{
		{"none", 0, r2.Vec{}},
		{"up", Up, r2.Vec{X: 0, Y: -10}},
		{"right", Right, r2.Vec{X: 10, Y: 0}},
		{"opposites cancel", Left | Right, r2.Vec{}},
		{"diagonal normalized", Down | Left, r2.Vec{X: -diag, Y: diag}},
		{"three keys", Up | Down | Right, r2.Vec{X: 10, Y: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Force(tt.dir, 10)
			if math.Abs(got.X-tt.want.X) > 1e-9 || math.Abs(got.Y-tt.want.Y) > 1e-9 {
				t.Errorf("Force(%b) = %v, want %v", tt.dir, got, tt.want)
			}
		})
	}
}

func TestKeyBindings(t *testing.T) {
	commands := map[rune]Command{
		' ': Jump,
		'p': TogglePause,
		'R': Restart,
		'g': PowerUp,
		't': ToggleAutopilot,
		'x': None,
	}
	for r, want := range commands {
		if got := CommandForKey(r); got != want {
			t.Errorf("CommandForKey(%q) = %v, want %v", r, got, want)
		}
	}

	dirs := map[rune]Direction{'w': Up, 'S': Down, 'a': Left, 'd': Right, 'q': 0}
	for r, want := range dirs {
		if got := DirectionForKey(r); got != want {
			t.Errorf("DirectionForKey(%q) = %v, want %v", r, got, want)
		}
	}
}

type fakeTarget struct {
	state     arena.State
	jumps     int
	restarts  int
	autopilot bool
	grant     powerup.Grant
	grantOK   bool
}

func (f *fakeTarget) State() arena.State { return f.state }
func (f *fakeTarget) Pause()             { f.state = arena.StatePaused }
func (f *fakeTarget) Resume()            { f.state = arena.StateRunning }
func (f *fakeTarget) Restart()           { f.restarts++; f.state = arena.StateRunning }
func (f *fakeTarget) RequestJump()       { f.jumps++ }
func (f *fakeTarget) Autopilot() bool    { return f.autopilot }

func (f *fakeTarget) SetAutopilot(enabled bool) { f.autopilot = enabled }

func (f *fakeTarget) GrantRandomPowerUp() (powerup.Grant, bool) {
	return f.grant, f.grantOK
}

func TestApplyTogglesPause(t *testing.T) {
	f := &fakeTarget{state: arena.StateRunning}

	if msg := Apply(f, TogglePause); msg != "Paused" || f.state != arena.StatePaused {
		t.Fatalf("first toggle: msg %q state %v", msg, f.state)
	}
	if msg := Apply(f, TogglePause); msg != "Resumed" || f.state != arena.StateRunning {
		t.Fatalf("second toggle: msg %q state %v", msg, f.state)
	}

	f.state = arena.StateGameOver
	if msg := Apply(f, TogglePause); msg != "" || f.state != arena.StateGameOver {
		t.Errorf("toggle after game over: msg %q state %v", msg, f.state)
	}
}

func TestApplyCommands(t *testing.T) {
	f := &fakeTarget{state: arena.StateRunning}

	Apply(f, Jump)
	Apply(f, Jump)
	if f.jumps != 2 {
		t.Errorf("expected 2 jump requests, got %d", f.jumps)
	}

	if msg := Apply(f, ToggleAutopilot); msg != "Autopilot on" || !f.autopilot {
		t.Errorf("autopilot toggle: msg %q enabled %v", msg, f.autopilot)
	}
	if msg := Apply(f, ToggleAutopilot); msg != "Autopilot off" || f.autopilot {
		t.Errorf("autopilot toggle: msg %q enabled %v", msg, f.autopilot)
	}

	if msg := Apply(f, Restart); msg != "New game" || f.restarts != 1 {
		t.Errorf("restart: msg %q restarts %d", msg, f.restarts)
	}

	if msg := Apply(f, None); msg != "" {
		t.Errorf("None produced %q", msg)
	}
}

func TestApplyPowerUpMessages(t *testing.T) {
	tests := []struct {
		name  string
		grant powerup.Grant
		ok    bool
		want  string
	}{
		{"speed", powerup.Grant{Kind: powerup.KindSpeed}, true, "Speed boost!"},
		{"size", powerup.Grant{Kind: powerup.KindSize}, true, "Size boost!"},
		{"skin", powerup.Grant{Kind: powerup.KindSkin, Skin: components.SkinB}, true, "New skin: skin_b"},
		{"try again", powerup.Grant{Kind: powerup.KindNone}, true, "Try again"},
		{"unavailable", powerup.Grant{}, false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &fakeTarget{state: arena.StateRunning, grant: tt.grant, grantOK: tt.ok}
			if got := Apply(f, PowerUp); got != tt.want {
				t.Errorf("Apply(PowerUp) = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestArenaSatisfiesTarget(t *testing.T) {
	var _ Target = (*arena.Arena)(nil)
}
