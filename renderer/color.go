// Package renderer draws the arena and its agents with raylib.
package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/devour/components"
	"github.com/pthm-cable/devour/renderer/palette"
)

// RL converts a palette color to an opaque raylib color.
func RL(c palette.RGB) rl.Color {
	return rl.Color{R: c.R, G: c.G, B: c.B, A: 255}
}

// AgentColor returns the raylib fill color for an agent.
func AgentColor(skin components.Skin, band components.Band, controlled bool) rl.Color {
	return RL(palette.Agent(skin, band, controlled))
}
