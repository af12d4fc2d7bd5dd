package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/devour/camera"
	"github.com/pthm-cable/devour/fx"
	"github.com/pthm-cable/devour/renderer/palette"
)

// ParticleRenderer renders feedback particles.
type ParticleRenderer struct{}

// NewParticleRenderer creates a new particle renderer.
func NewParticleRenderer() *ParticleRenderer {
	return &ParticleRenderer{}
}

// Draw renders all particles.
func (r *ParticleRenderer) Draw(cam *camera.Camera, particles []fx.Particle) {
	for i := range particles {
		p := &particles[i]
		x, y := float32(p.X), float32(p.Z)
		if !cam.IsVisible(x, y, float32(p.Size)) {
			continue
		}

		lifeRatio := float32(p.LifeRatio())

		var base palette.RGB
		switch p.Type {
		case fx.ParticlePowerUp:
			base = palette.PowerUp
		case fx.ParticleGameOver:
			base = palette.GameOver
		default:
			base = palette.Eat
		}
		color := RL(base)
		color.A = uint8(lifeRatio * 220)

		size := max(cam.WorldLength(float32(p.Size)*lifeRatio), 0.5)
		sx, sy := cam.WorldToScreen(x, y)
		rl.DrawCircleV(rl.NewVector2(sx, sy), size, color)
	}
}
