package main

import "github.com/pthm-cable/devour/controls"

// Terminals report key presses and auto-repeat but never releases, so a
// pressed direction is held for a few ticks and refreshed by repeats.
type keyHold struct {
	ticks     int
	remaining [4]int
}

func newKeyHold(ticks int) *keyHold {
	return &keyHold{ticks: max(ticks, 1)}
}

// Press marks d as held for the hold duration.
func (k *keyHold) Press(d controls.Direction) {
	for i := range k.remaining {
		if d&(1<<i) != 0 {
			k.remaining[i] = k.ticks
		}
	}
}

// Tick returns the held directions and ages them by one tick.
func (k *keyHold) Tick() controls.Direction {
	var d controls.Direction
	for i := range k.remaining {
		if k.remaining[i] > 0 {
			d |= 1 << i
			k.remaining[i]--
		}
	}
	return d
}

// Release drops every held direction.
func (k *keyHold) Release() {
	k.remaining = [4]int{}
}
