package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/devour/camera"
	"github.com/pthm-cable/devour/renderer/palette"
)

// ArenaRenderer draws the arena floor grid and its walls.
type ArenaRenderer struct {
	halfWidth float32
	spacing   float32
}

// NewArenaRenderer creates a floor renderer for an arena of the given half
// width with grid lines every spacing units.
func NewArenaRenderer(halfWidth, spacing float32) *ArenaRenderer {
	return &ArenaRenderer{halfWidth: halfWidth, spacing: spacing}
}

// Draw renders the visible part of the floor.
func (a *ArenaRenderer) Draw(cam *camera.Camera) {
	rl.ClearBackground(RL(palette.Background))

	minX, minY, maxX, maxY := cam.VisibleWorldBounds()
	minX = max(minX, -a.halfWidth)
	maxX = min(maxX, a.halfWidth)
	minY = max(minY, -a.halfWidth)
	maxY = min(maxY, a.halfWidth)

	grid := RL(palette.GridLine)
	first := func(lo float32) float32 {
		n := int((lo + a.halfWidth) / a.spacing)
		return -a.halfWidth + float32(n)*a.spacing
	}

	for x := first(minX); x <= maxX; x += a.spacing {
		sx, sy0 := cam.WorldToScreen(x, minY)
		_, sy1 := cam.WorldToScreen(x, maxY)
		rl.DrawLineV(rl.NewVector2(sx, sy0), rl.NewVector2(sx, sy1), grid)
	}
	for y := first(minY); y <= maxY; y += a.spacing {
		sx0, sy := cam.WorldToScreen(minX, y)
		sx1, _ := cam.WorldToScreen(maxX, y)
		rl.DrawLineV(rl.NewVector2(sx0, sy), rl.NewVector2(sx1, sy), grid)
	}

	x0, y0 := cam.WorldToScreen(-a.halfWidth, -a.halfWidth)
	x1, y1 := cam.WorldToScreen(a.halfWidth, a.halfWidth)
	rl.DrawRectangleLinesEx(rl.Rectangle{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}, 3, RL(palette.Wall))
}
