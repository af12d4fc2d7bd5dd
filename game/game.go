// Package game is the raylib front end: it owns the window-side state
// (camera, HUD, particles) and drives an arena at a fixed step.
package game

import (
	"math/rand"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/devour/arena"
	"github.com/pthm-cable/devour/camera"
	"github.com/pthm-cable/devour/config"
	"github.com/pthm-cable/devour/controls"
	"github.com/pthm-cable/devour/fx"
	"github.com/pthm-cable/devour/renderer"
	"github.com/pthm-cable/devour/ui"
)

// Stepping limits
const (
	maxStepsPerFrame = 5 // drop simulated time rather than spiral after a stall
	statusDuration   = 2 * time.Second
	leaderboardSize  = 8
	maxParticles     = 600
)

// Options configures the graphical front end.
type Options struct {
	Seed     int64
	ShowPerf bool
}

// Game holds the complete front-end state.
type Game struct {
	arena *arena.Arena
	cfg   *config.Config

	// Rendering
	camera           *camera.Camera
	floor            *renderer.ArenaRenderer
	agents           *renderer.AgentRenderer
	particleRenderer *renderer.ParticleRenderer

	// Feedback
	particles *fx.ParticleSystem
	feedback  *fx.Feedback

	// UI
	hud         *ui.HUD
	leaderboard *ui.LeaderboardPanel
	effects     *ui.EffectsPanel
	perfPanel   *ui.PerfPanel
	buttons     *ui.ButtonPanel

	// State
	accumulator  float64
	pendingCmd   controls.Command
	status       string
	statusUntil  time.Time
	showPerf     bool
	lastSnapshot []arena.AgentSnapshot

	// Window dimensions
	screenWidth, screenHeight float32
}

// New creates the front end for a. The window must already be open.
func New(a *arena.Arena, opts Options) *Game {
	cfg := a.Config()
	w := float32(rl.GetScreenWidth())
	h := float32(rl.GetScreenHeight())

	particles := fx.NewParticleSystem(maxParticles, rand.New(rand.NewSource(opts.Seed)))
	feedback := fx.NewFeedback(particles)
	a.AddListener(feedback)

	g := &Game{
		arena:            a,
		cfg:              cfg,
		camera:           camera.New(w, h, float32(cfg.Arena.HalfWidth)),
		floor:            renderer.NewArenaRenderer(float32(cfg.Arena.HalfWidth), float32(cfg.Physics.GridCellSize)),
		agents:           renderer.NewAgentRenderer(),
		particleRenderer: renderer.NewParticleRenderer(),
		particles:        particles,
		feedback:         feedback,
		hud:              ui.NewHUD(),
		leaderboard:      ui.NewLeaderboardPanel(200),
		effects:          ui.NewEffectsPanel(200),
		perfPanel:        ui.NewPerfPanel(10, 150),
		buttons:          ui.NewButtonPanel(),
		showPerf:         opts.ShowPerf,
		screenWidth:      w,
		screenHeight:     h,
	}

	if s, ok := a.Controlled(); ok {
		g.camera.CenterOn(float32(s.Position.X), float32(s.Position.Z))
	}
	g.lastSnapshot = a.Snapshot()
	return g
}

// Update processes input and advances the arena by the frame's elapsed time
// in whole fixed steps.
func (g *Game) Update() {
	g.handleInput()

	if g.pendingCmd != controls.None {
		g.runCommand(g.pendingCmd)
		g.pendingCmd = controls.None
	}

	dt := g.cfg.Physics.DT
	g.accumulator += float64(rl.GetFrameTime())
	steps := 0
	for g.accumulator >= dt && steps < maxStepsPerFrame {
		g.applyMovement()
		g.feedback.Observe(g.lastSnapshot)
		g.arena.Step()
		g.lastSnapshot = g.arena.Snapshot()
		g.accumulator -= dt
		steps++
	}
	if steps == maxStepsPerFrame {
		g.accumulator = 0
	}
	if g.arena.State() != arena.StateRunning {
		g.accumulator = 0
		g.lastSnapshot = g.arena.Snapshot()
	}

	g.particles.Update()

	if s, ok := g.arena.Controlled(); ok {
		g.camera.Follow(float32(s.Position.X), float32(s.Position.Z))
	}
}

// runCommand applies cmd and shows its status line.
func (g *Game) runCommand(cmd controls.Command) {
	if cmd == controls.Restart {
		g.particles.Clear()
	}
	if msg := controls.Apply(g.arena, cmd); msg != "" {
		g.status = msg
		g.statusUntil = time.Now().Add(statusDuration)
	}
	g.lastSnapshot = g.arena.Snapshot()
	if cmd == controls.Restart {
		if s, ok := g.arena.Controlled(); ok {
			g.camera.CenterOn(float32(s.Position.X), float32(s.Position.Z))
		}
	}
}

// Unload frees resources and records the final hall of fame.
func (g *Game) Unload() {
	g.arena.Finish()
}

// Tick returns the current simulation tick.
func (g *Game) Tick() int64 {
	return g.arena.Tick()
}
