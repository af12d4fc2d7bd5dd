package main

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"

	"github.com/pthm-cable/devour/controls"
	"github.com/pthm-cable/devour/powerup"
)

func TestKeyHoldExpires(t *testing.T) {
	k := newKeyHold(3)
	k.Press(controls.Up | controls.Left)

	for i := 0; i < 3; i++ {
		if got := k.Tick(); got != controls.Up|controls.Left {
			t.Fatalf("tick %d: held = %b, want up|left", i, got)
		}
	}
	if got := k.Tick(); got != 0 {
		t.Errorf("expected release after hold, got %b", got)
	}
}

func TestKeyHoldRepeatRefreshes(t *testing.T) {
	k := newKeyHold(2)
	k.Press(controls.Right)
	k.Tick()
	k.Press(controls.Right)
	k.Tick()
	if got := k.Tick(); got != controls.Right {
		t.Errorf("repeat should extend the hold, got %b", got)
	}

	k.Press(controls.Down)
	k.Release()
	if got := k.Tick(); got != 0 {
		t.Errorf("expected nothing held after Release, got %b", got)
	}
}

func TestViewCellMapping(t *testing.T) {
	screen := tcell.NewSimulationScreen("")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	defer screen.Fini()
	screen.SetSize(80, 24)

	v := newView(screen, 500)
	v.cam.CenterOn(0, 0)

	col, row, ok := v.cell(0, 0)
	if !ok {
		t.Fatal("arena center should be on screen")
	}
	if col != 40 {
		t.Errorf("center column = %d, want 40", col)
	}
	// Play area is rows [2, 22), so its center is row 12.
	if row != 12 {
		t.Errorf("center row = %d, want 12", row)
	}

	// One cell right is 1/zoom world units; one row down is cellAspect/zoom.
	// Offsets of 1.5 cells land mid-cell and avoid rounding at the borders.
	step := 1.5 / float64(v.cam.Zoom)
	if c, _, _ := v.cell(step, 0); c != col+1 {
		t.Errorf("moving %v units right gave column %d, want %d", step, c, col+1)
	}
	if _, r, _ := v.cell(0, step*cellAspect); r != row+1 {
		t.Errorf("moving %v units down gave row %d, want %d", step*cellAspect, r, row+1)
	}

	if _, _, ok := v.cell(10000, 0); ok {
		t.Error("far point should be off screen")
	}
}

func TestEffectsLine(t *testing.T) {
	if got := effectsLine(nil, 0); got != "power-ups: none" {
		t.Errorf("empty effects = %q", got)
	}

	effects := []powerup.Effect{
		{AgentID: uuid.New(), Kind: powerup.KindSpeed, StartedAt: 0, Duration: 30 * time.Second},
	}
	if got := effectsLine(effects, 10*time.Second); got != "power-ups: speed 20s" {
		t.Errorf("effects line = %q", got)
	}
}

func TestSilentSoundIgnoresEvents(t *testing.T) {
	s := &sound{controlled: func() (uuid.UUID, bool) { return uuid.Nil, false }}
	s.OnConsumed(uuid.New(), uuid.New(), 10)
	s.OnGameOver(0)
	s.OnPowerUpGranted(uuid.New(), powerup.KindSize)
	s.OnPowerUpExpired(uuid.New(), powerup.KindSize)
	s.Close()
}
