package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/devour/controls"
)

// handleInput processes keyboard input.
func (g *Game) handleInput() {
	// Window resize propagation
	g.handleResize()

	// Fullscreen toggle
	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}

	// Perf panel toggle
	if rl.IsKeyPressed(rl.KeyF3) {
		g.showPerf = !g.showPerf
	}

	// Character keys carry the command bindings shared with the terminal view.
	for ch := rl.GetCharPressed(); ch != 0; ch = rl.GetCharPressed() {
		if cmd := controls.CommandForKey(rune(ch)); cmd != controls.None {
			g.pendingCmd = cmd
		}
	}

	g.handleCameraInput()
}

// movement returns the currently held movement directions.
func movement() controls.Direction {
	var d controls.Direction
	if rl.IsKeyDown(rl.KeyW) || rl.IsKeyDown(rl.KeyUp) {
		d |= controls.Up
	}
	if rl.IsKeyDown(rl.KeyS) || rl.IsKeyDown(rl.KeyDown) {
		d |= controls.Down
	}
	if rl.IsKeyDown(rl.KeyA) || rl.IsKeyDown(rl.KeyLeft) {
		d |= controls.Left
	}
	if rl.IsKeyDown(rl.KeyD) || rl.IsKeyDown(rl.KeyRight) {
		d |= controls.Right
	}
	return d
}

// applyMovement sets the control force for the next step. The arena
// consumes it per step, so it is reapplied before each one.
func (g *Game) applyMovement() {
	if d := movement(); d != 0 {
		g.arena.ApplyControlForce(controls.Force(d, g.cfg.Agent.ControlForce))
	}
}

// handleResize checks for window resize and propagates new dimensions.
func (g *Game) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	w := float32(rl.GetScreenWidth())
	h := float32(rl.GetScreenHeight())
	if w == g.screenWidth && h == g.screenHeight {
		return
	}
	g.screenWidth = w
	g.screenHeight = h

	if g.camera != nil {
		g.camera.Resize(w, h)
	}
}

// handleCameraInput processes zoom controls. The camera follows the
// controlled agent, so there is no manual pan.
func (g *Game) handleCameraInput() {
	if g.camera == nil {
		return
	}

	wheelMove := rl.GetMouseWheelMove()
	if wheelMove != 0 {
		g.camera.ZoomBy(float32(1.0) + wheelMove*0.1)
	}

	if rl.IsKeyPressed(rl.KeyEqual) || rl.IsKeyPressed(rl.KeyKpAdd) {
		g.camera.ZoomBy(1.25)
	}
	if rl.IsKeyPressed(rl.KeyMinus) || rl.IsKeyPressed(rl.KeyKpSubtract) {
		g.camera.ZoomBy(0.8)
	}

	if rl.IsKeyPressed(rl.KeyHome) {
		g.camera.SetZoom(1.0)
	}
}
