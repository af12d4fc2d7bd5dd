package ui

import (
	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/devour/arena"
	"github.com/pthm-cable/devour/controls"
)

// ButtonPanel renders the clickable command buttons.
type ButtonPanel struct {
	renderer      *Renderer
	buttonW       float32
	buttonH       float32
	gap           float32
	width, height int32
}

// NewButtonPanel creates the command button strip.
func NewButtonPanel() *ButtonPanel {
	b := &ButtonPanel{
		renderer: NewRenderer(),
		buttonW:  110,
		buttonH:  30,
		gap:      8,
	}
	pad := float32(b.renderer.Theme.Padding)
	b.width = int32(3*b.buttonW + 2*b.gap + 2*pad)
	b.height = int32(b.buttonH + 2*pad)
	return b
}

// Size returns the panel dimensions.
func (b *ButtonPanel) Size() (w, h int32) {
	return b.width, b.height
}

// Draw renders the buttons at (x, y) and returns the command of the button
// clicked this frame, if any.
func (b *ButtonPanel) Draw(x, y int32, state arena.State) controls.Command {
	b.renderer.DrawPanel(x, y, b.width, b.height)

	pad := float32(b.renderer.Theme.Padding)
	bx := float32(x) + pad
	by := float32(y) + pad

	cmd := controls.None

	if state == arena.StateGameOver {
		gui.Disable()
	}
	if gui.Button(rl.Rectangle{X: bx, Y: by, Width: b.buttonW, Height: b.buttonH}, "Power-up") {
		cmd = controls.PowerUp
	}
	pauseLabel := "Pause"
	if state == arena.StatePaused {
		pauseLabel = "Resume"
	}
	if gui.Button(rl.Rectangle{X: bx + b.buttonW + b.gap, Y: by, Width: b.buttonW, Height: b.buttonH}, pauseLabel) {
		cmd = controls.TogglePause
	}
	gui.Enable()

	if gui.Button(rl.Rectangle{X: bx + 2*(b.buttonW+b.gap), Y: by, Width: b.buttonW, Height: b.buttonH}, "Restart") {
		cmd = controls.Restart
	}

	return cmd
}
