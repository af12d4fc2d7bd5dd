package powerup

import (
	"testing"
	"time"
)

func TestPausableClock(t *testing.T) {
	src := NewManualSource(time.Unix(100, 0))
	c := NewPausableClock(src)

	if got := c.Now(); got != 0 {
		t.Fatalf("Now at start = %v, want 0", got)
	}

	src.Advance(3 * time.Second)
	c.Pause()
	c.Pause()
	src.Advance(10 * time.Second)
	if got := c.Now(); got != 3*time.Second {
		t.Errorf("Now while paused = %v, want 3s", got)
	}
	if !c.Paused() {
		t.Error("Paused = false, want true")
	}

	c.Resume()
	c.Resume()
	src.Advance(2 * time.Second)
	if got := c.Now(); got != 5*time.Second {
		t.Errorf("Now after resume = %v, want 5s", got)
	}

	c.Reset()
	if got := c.Now(); got != 0 {
		t.Errorf("Now after Reset = %v, want 0", got)
	}
}

func TestEffectExpiredIsMonotonic(t *testing.T) {
	e := Effect{StartedAt: 5 * time.Second, Duration: 10 * time.Second}
	tests := []struct {
		now  time.Duration
		want bool
	}{
		{5 * time.Second, false},
		{14 * time.Second, false},
		{15 * time.Second, true},
		{time.Hour, true},
	}
	for _, tt := range tests {
		if got := e.Expired(tt.now); got != tt.want {
			t.Errorf("Expired(%v) = %v, want %v", tt.now, got, tt.want)
		}
	}
	if got := e.Remaining(20 * time.Second); got != 0 {
		t.Errorf("Remaining after expiry = %v, want 0", got)
	}
}
