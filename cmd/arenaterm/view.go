package main

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/pthm-cable/devour/arena"
	"github.com/pthm-cable/devour/camera"
	"github.com/pthm-cable/devour/fx"
	"github.com/pthm-cable/devour/powerup"
	"github.com/pthm-cable/devour/renderer/palette"
)

// cellAspect is how many world units tall a cell is per unit of width.
const cellAspect = 2

// hudRows are reserved at the top and bottom of the screen.
const hudRows = 2

func style(c palette.RGB) tcell.Style {
	return tcell.StyleDefault.
		Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))).
		Background(tcell.NewRGBColor(int32(palette.Background.R), int32(palette.Background.G), int32(palette.Background.B)))
}

// view draws an arena into a tcell screen through a camera whose viewport
// is measured in cells, with rows stretched by cellAspect.
type view struct {
	screen tcell.Screen
	cam    *camera.Camera
	width  int
	height int
}

func newView(screen tcell.Screen, halfWidth float64) *view {
	w, h := screen.Size()
	cam := camera.New(float32(w), float32(max(h-2*hudRows, 1)*cellAspect), float32(halfWidth))
	cam.MinZoom = 0.02
	cam.Smoothing = 0.3
	cam.SetZoom(float32(w) / 240)
	return &view{screen: screen, cam: cam, width: w, height: h}
}

func (v *view) resize() {
	v.width, v.height = v.screen.Size()
	v.cam.Resize(float32(v.width), float32(max(v.height-2*hudRows, 1)*cellAspect))
	v.screen.Sync()
}

// cell maps world coordinates to a screen cell inside the play area.
func (v *view) cell(wx, wz float64) (col, row int, ok bool) {
	sx, sy := v.cam.WorldToScreen(float32(wx), float32(wz))
	col = int(sx)
	row = int(sy/cellAspect) + hudRows
	ok = sx >= 0 && col < v.width && row >= hudRows && row < v.height-hudRows
	return col, row, ok
}

func (v *view) put(col, row int, r rune, st tcell.Style) {
	if col < 0 || col >= v.width || row < hudRows || row >= v.height-hudRows {
		return
	}
	v.screen.SetContent(col, row, r, nil, st)
}

func (v *view) drawText(col, row int, text string, st tcell.Style) {
	for i, r := range []rune(text) {
		if col+i >= v.width {
			return
		}
		v.screen.SetContent(col+i, row, r, nil, st)
	}
}

func (v *view) draw(a *arena.Arena, snaps []arena.AgentSnapshot, particles []fx.Particle, status string) {
	v.screen.Clear()
	bg := style(palette.Background)
	for row := 0; row < v.height; row++ {
		for col := 0; col < v.width; col++ {
			v.screen.SetContent(col, row, ' ', nil, bg)
		}
	}

	v.drawWalls(a.Config().Arena.HalfWidth)

	for i := len(snaps) - 1; i >= 0; i-- {
		v.drawAgent(&snaps[i])
	}

	for i := range particles {
		p := &particles[i]
		if col, row, ok := v.cell(p.X, p.Z); ok {
			c := palette.Eat
			switch p.Type {
			case fx.ParticlePowerUp:
				c = palette.PowerUp
			case fx.ParticleGameOver:
				c = palette.GameOver
			}
			v.put(col, row, '*', style(c.Scale(0.4+0.6*p.LifeRatio())))
		}
	}

	v.drawHUD(a, snaps, status)
	v.screen.Show()
}

func (v *view) drawWalls(halfWidth float64) {
	st := style(palette.Wall)
	x0, y0, ok0 := v.cell(-halfWidth, -halfWidth)
	x1, y1, ok1 := v.cell(halfWidth, halfWidth)
	if !ok0 {
		x0, y0 = max(x0, -1), max(y0, hudRows-1)
	}
	if !ok1 {
		x1, y1 = min(x1, v.width), min(y1, v.height-hudRows)
	}
	for col := x0; col <= x1; col++ {
		v.put(col, y0, '-', st)
		v.put(col, y1, '-', st)
	}
	for row := y0; row <= y1; row++ {
		v.put(x0, row, '|', st)
		v.put(x1, row, '|', st)
	}
}

func (v *view) drawAgent(s *arena.AgentSnapshot) {
	col, row, _ := v.cell(s.Position.X, s.Position.Z)
	st := style(palette.Agent(s.Skin, s.Band, s.Controlled))
	if s.Jumping {
		st = st.Bold(true)
	}
	glyph := palette.Glyph(s.Band, s.Controlled)

	rc := float64(v.cam.WorldLength(float32(s.Radius)))
	rr := rc / cellAspect
	if rc < 1 {
		v.put(col, row, glyph, st)
		return
	}

	for dr := -int(rr); dr <= int(rr); dr++ {
		for dc := -int(rc); dc <= int(rc); dc++ {
			nx := float64(dc) / rc
			ny := float64(dr) / max(rr, 0.5)
			if nx*nx+ny*ny <= 1 {
				v.put(col+dc, row+dr, glyph, st)
			}
		}
	}

	if s.Controlled || rc >= float64(len(s.Name))/2 {
		name := []rune(s.Name)
		start := col - len(name)/2
		for i, r := range name {
			v.put(start+i, row, r, st.Reverse(true))
		}
	}
}

func (v *view) drawHUD(a *arena.Arena, snaps []arena.AgentSnapshot, status string) {
	hud := tcell.StyleDefault.Foreground(tcell.ColorYellow)
	dim := tcell.StyleDefault.Foreground(tcell.ColorGray)

	rank, radius := 0, 0.0
	for i, s := range snaps {
		if s.Controlled {
			rank, radius = i+1, s.Radius
			break
		}
	}

	line := fmt.Sprintf("Score %d | Rank %d/%d | Size %.1f | Enemies %d | %s",
		a.Score(), rank, len(snaps), radius, a.EnemyCount(), a.State())
	if a.Autopilot() {
		line += " | autopilot"
	}
	v.drawText(0, 0, line, hud)

	if id, ok := a.ControlledID(); ok {
		v.drawText(0, 1, effectsLine(a.PowerUps().Active(id), a.PowerUps().Now()), dim)
	}

	if status != "" {
		v.drawText(max(v.width-len(status)-1, 0), 0, status, tcell.StyleDefault.Foreground(tcell.ColorGreen))
	}
	if a.State() == arena.StateGameOver {
		msg := fmt.Sprintf(" GAME OVER - final score %d - press r to restart ", a.Score())
		v.drawText(max((v.width-len(msg))/2, 0), v.height/2, msg, tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorRed))
	}

	v.drawText(0, v.height-1, "WASD/arrows move | space jump | g power-up | p pause | r restart | t autopilot | q quit", dim)
}

func effectsLine(effects []powerup.Effect, now time.Duration) string {
	if len(effects) == 0 {
		return "power-ups: none"
	}
	line := "power-ups:"
	for _, e := range effects {
		name := e.Kind.String()
		if e.Kind == powerup.KindSkin {
			name = e.Skin.String()
		}
		line += fmt.Sprintf(" %s %.0fs", name, e.Remaining(now).Seconds())
	}
	return line
}
