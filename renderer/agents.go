package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/devour/arena"
	"github.com/pthm-cable/devour/camera"
)

// AgentRenderer draws agents as filled circles with name labels.
type AgentRenderer struct {
	ShowNames bool
}

// NewAgentRenderer creates an agent renderer.
func NewAgentRenderer() *AgentRenderer {
	return &AgentRenderer{ShowNames: true}
}

// Draw renders snaps smallest first, so larger agents cover the ones they
// are about to eat.
func (r *AgentRenderer) Draw(cam *camera.Camera, snaps []arena.AgentSnapshot) {
	for i := len(snaps) - 1; i >= 0; i-- {
		r.drawAgent(cam, &snaps[i])
	}
}

func (r *AgentRenderer) drawAgent(cam *camera.Camera, s *arena.AgentSnapshot) {
	wx, wy := float32(s.Position.X), float32(s.Position.Z)
	radius := float32(s.Radius)
	if !cam.IsVisible(wx, wy, radius) {
		return
	}

	sx, sy := cam.WorldToScreen(wx, wy)
	sr := cam.WorldLength(radius)
	color := AgentColor(s.Skin, s.Band, s.Controlled)

	// Height above the ground lifts the body and leaves a shadow behind.
	lift := cam.WorldLength(float32(s.Position.Y - s.Radius))
	if s.Jumping && lift > 0 {
		rl.DrawEllipse(int32(sx), int32(sy), sr, sr*0.5, rl.Fade(rl.Black, 0.35))
	}
	center := rl.NewVector2(sx, sy-lift)

	if s.SpeedBoost > 1 {
		speed := float32(s.Velocity.X*s.Velocity.X + s.Velocity.Y*s.Velocity.Y)
		if speed > 0 {
			tail := rl.NewVector2(center.X-float32(s.Velocity.X)*0.1*cam.Zoom, center.Y-float32(s.Velocity.Y)*0.1*cam.Zoom)
			rl.DrawLineEx(center, tail, sr*0.8, rl.Fade(color, 0.3))
		}
	}

	rl.DrawCircleV(center, sr, color)
	if s.Controlled {
		rl.DrawCircleLines(int32(center.X), int32(center.Y), sr+2, rl.White)
	}

	if r.ShowNames && sr >= 8 {
		fontSize := int32(min(max(sr*0.5, 10), 20))
		tw := rl.MeasureText(s.Name, fontSize)
		rl.DrawText(s.Name, int32(center.X)-tw/2, int32(center.Y)-fontSize/2, fontSize, rl.White)
	}
}
