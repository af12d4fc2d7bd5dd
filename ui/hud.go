package ui

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/devour/arena"
	"github.com/pthm-cable/devour/components"
	"github.com/pthm-cable/devour/powerup"
	"github.com/pthm-cable/devour/renderer"
	"github.com/pthm-cable/devour/telemetry"
)

// HUDData holds all the data needed to render the main HUD.
type HUDData struct {
	Title     string
	Score     int
	Tick      int64
	FPS       int32
	State     arena.State
	Enemies   int
	Rank      int
	Total     int
	Radius    float64
	Band      components.Band
	Autopilot bool
	Status    string // transient message from the last command
}

// HUD renders the main heads-up display.
type HUD struct {
	renderer *Renderer
}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{
		renderer: NewRenderer(),
	}
}

// Draw renders the HUD.
func (h *HUD) Draw(data HUDData) {
	rl.DrawText(data.Title, 10, 10, 20, rl.White)

	rl.DrawText(fmt.Sprintf("Score: %d", data.Score), 10, 35, 20, rl.Yellow)

	rl.DrawText(
		fmt.Sprintf("Rank: %d/%d | Size: %.1f (%s) | Enemies: %d", data.Rank, data.Total, data.Radius, data.Band, data.Enemies),
		10, 60, 16, rl.LightGray,
	)
	rl.DrawText(
		fmt.Sprintf("Tick: %d | FPS: %d", data.Tick, data.FPS),
		10, 80, 16, rl.LightGray,
	)

	statusText := "Running"
	switch data.State {
	case arena.StatePaused:
		statusText = "PAUSED"
	case arena.StateGameOver:
		statusText = "GAME OVER"
	}
	if data.Autopilot {
		statusText += " | Autopilot"
	}
	rl.DrawText(statusText, 10, 100, 16, rl.Yellow)

	if data.Status != "" {
		rl.DrawText(data.Status, 10, 120, 16, h.renderer.Theme.Highlight)
	}
}

// DrawControls renders the control legend at the bottom of the screen.
func (h *HUD) DrawControls(screenWidth, screenHeight int32, controls string) {
	rl.DrawText(controls, 10, screenHeight-25, 14, rl.Gray)
}

// DrawGameOver renders the centered game over banner.
func (h *HUD) DrawGameOver(screenWidth, screenHeight int32, score int) {
	rl.DrawRectangle(0, 0, screenWidth, screenHeight, rl.Color{R: 0, G: 0, B: 0, A: 140})

	title := "GAME OVER"
	tw := rl.MeasureText(title, 48)
	rl.DrawText(title, (screenWidth-tw)/2, screenHeight/2-60, 48, rl.Red)

	sub := fmt.Sprintf("Final score: %d  |  press R to restart", score)
	sw := rl.MeasureText(sub, 20)
	rl.DrawText(sub, (screenWidth-sw)/2, screenHeight/2, 20, rl.White)
}

// LeaderboardPanel renders the top agents by size.
type LeaderboardPanel struct {
	renderer *Renderer
	width    int32
}

// NewLeaderboardPanel creates a leaderboard panel of the given width.
func NewLeaderboardPanel(width int32) *LeaderboardPanel {
	return &LeaderboardPanel{
		renderer: NewRenderer(),
		width:    width,
	}
}

// Height returns the panel height for n rows.
func (l *LeaderboardPanel) Height(n int) int32 {
	t := l.renderer.Theme
	return t.Padding*2 + t.LineHeight + 2 + int32(n)*t.LineHeight
}

// Draw renders entries at (x, y).
func (l *LeaderboardPanel) Draw(x, y int32, entries []arena.AgentSnapshot) {
	r := l.renderer
	r.DrawPanel(x, y, l.width, l.Height(len(entries)))

	cy := r.DrawSectionHeader(x+r.Theme.Padding, y+r.Theme.Padding, "Leaderboard")
	for i, e := range entries {
		color := r.Theme.ValueColor
		if e.Controlled {
			color = r.Theme.Highlight
		}
		text := fmt.Sprintf("%d. %-10s %6.1f", i+1, e.Name, e.Radius)
		cy = r.DrawColorSwatch(x+r.Theme.Padding, cy, renderer.AgentColor(e.Skin, e.Band, e.Controlled), text, color)
	}
}

// EffectsPanel renders the controlled agent's active power-ups.
type EffectsPanel struct {
	renderer *Renderer
	width    int32
}

// NewEffectsPanel creates an effects panel of the given width.
func NewEffectsPanel(width int32) *EffectsPanel {
	return &EffectsPanel{
		renderer: NewRenderer(),
		width:    width,
	}
}

// Height returns the panel height for n effects.
func (p *EffectsPanel) Height(n int) int32 {
	t := p.renderer.Theme
	return t.Padding*2 + t.LineHeight + 2 + int32(max(n, 1))*(t.LineHeight+2)
}

// Draw renders effects at (x, y) with countdowns relative to now.
func (p *EffectsPanel) Draw(x, y int32, effects []powerup.Effect, now time.Duration) {
	r := p.renderer
	r.DrawPanel(x, y, p.width, p.Height(len(effects)))

	cy := r.DrawSectionHeader(x+r.Theme.Padding, y+r.Theme.Padding, "Power-ups")
	if len(effects) == 0 {
		rl.DrawText("none", x+r.Theme.Padding, cy, r.Theme.FontSize, rl.Gray)
		return
	}

	for _, e := range effects {
		remaining := e.Remaining(now)
		frac := float32(0)
		if e.Duration > 0 {
			frac = float32(remaining) / float32(e.Duration)
		}
		label := e.Kind.String()
		if e.Kind == powerup.KindSkin {
			label = e.Skin.String()
		}
		cy = r.DrawBar(x+r.Theme.Padding, cy, label, frac, formatSeconds(remaining.Seconds()), p.width-r.Theme.Padding*2)
	}
}

// PerfPanel renders the step phase timings.
type PerfPanel struct {
	renderer *Renderer
	x, y     int32
}

// NewPerfPanel creates a new performance panel.
func NewPerfPanel(x, y int32) *PerfPanel {
	return &PerfPanel{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
	}
}

// SetPosition updates the panel position.
func (p *PerfPanel) SetPosition(x, y int32) {
	p.x = x
	p.y = y
}

// Draw renders the performance panel.
func (p *PerfPanel) Draw(stats telemetry.PerfStats) {
	x := p.x
	y := p.y

	rl.DrawText("Step Performance", x, y, 16, rl.White)
	y += 20

	rl.DrawText(fmt.Sprintf("Avg: %s | Max: %s", stats.AvgTickDuration.Round(time.Microsecond), stats.MaxTickDuration.Round(time.Microsecond)), x, y, 14, rl.Yellow)
	y += 16

	for ph, avg := range stats.PhaseAvg {
		pct := stats.PhasePct[ph]

		color := rl.LightGray
		if pct > 40 {
			color = rl.Red
		} else if pct > 20 {
			color = rl.Orange
		}

		rl.DrawText(
			fmt.Sprintf("%-12s %8s %5.1f%%", telemetry.Phase(ph), avg.Round(time.Microsecond), pct),
			x, y, 12, color,
		)
		y += 14
	}
}
