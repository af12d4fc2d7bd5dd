package game

import (
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/devour/arena"
	"github.com/pthm-cable/devour/controls"
	"github.com/pthm-cable/devour/ui"
)

// Draw renders the arena and the UI.
func (g *Game) Draw() {
	rl.BeginDrawing()

	g.floor.Draw(g.camera)
	g.agents.Draw(g.camera, g.lastSnapshot)
	g.particleRenderer.Draw(g.camera, g.particles.Particles)

	g.drawUI()

	rl.EndDrawing()
	g.arena.RecordFrame()
}

// drawUI draws the HUD, side panels and buttons.
func (g *Game) drawUI() {
	sw, sh := int32(g.screenWidth), int32(g.screenHeight)
	state := g.arena.State()

	data := ui.HUDData{
		Title:     "Devour",
		Score:     g.arena.Score(),
		Tick:      g.arena.Tick(),
		FPS:       rl.GetFPS(),
		State:     state,
		Enemies:   g.arena.EnemyCount(),
		Total:     len(g.lastSnapshot),
		Autopilot: g.arena.Autopilot(),
	}
	if time.Now().Before(g.statusUntil) {
		data.Status = g.status
	}
	for i, s := range g.lastSnapshot {
		if s.Controlled {
			data.Rank = i + 1
			data.Radius = s.Radius
			data.Band = s.Band
			break
		}
	}
	g.hud.Draw(data)

	// Leaderboard and effects on the right
	top := g.lastSnapshot
	if len(top) > leaderboardSize {
		top = top[:leaderboardSize]
	}
	lx, ly := ui.Anchored(ui.AnchorTopRight, sw, sh, 200, g.leaderboard.Height(len(top)), 10)
	g.leaderboard.Draw(lx, ly, top)

	if id, ok := g.arena.ControlledID(); ok {
		pu := g.arena.PowerUps()
		active := pu.Active(id)
		g.effects.Draw(lx, ly+g.leaderboard.Height(len(top))+10, active, pu.Now())
	}

	if g.showPerf {
		g.perfPanel.Draw(g.arena.PerfStats())
	}

	if state == arena.StateGameOver {
		g.hud.DrawGameOver(sw, sh, g.arena.Score())
	}

	bw, bh := g.buttons.Size()
	bx, by := ui.Anchored(ui.AnchorBottomRight, sw, sh, bw, bh, 10)
	if cmd := g.buttons.Draw(bx, by, state); cmd != controls.None {
		g.pendingCmd = cmd
	}

	g.hud.DrawControls(sw, sh, controls.Help+" | F3 perf | wheel zoom")
}
