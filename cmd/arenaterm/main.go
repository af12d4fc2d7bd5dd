// Command arenaterm plays the arena in a terminal.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/pthm-cable/devour/arena"
	"github.com/pthm-cable/devour/config"
	"github.com/pthm-cable/devour/controls"
	"github.com/pthm-cable/devour/fx"
)

// holdTicks is how long a key press keeps pushing without a repeat.
const holdTicks = 8

type game struct {
	screen    tcell.Screen
	arena     *arena.Arena
	view      *view
	hold      *keyHold
	particles *fx.ParticleSystem
	feedback  *fx.Feedback
	snaps     []arena.AgentSnapshot

	status      string
	statusUntil time.Time
}

func (g *game) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyUp:
			g.hold.Press(controls.Up)
		case tcell.KeyDown:
			g.hold.Press(controls.Down)
		case tcell.KeyLeft:
			g.hold.Press(controls.Left)
		case tcell.KeyRight:
			g.hold.Press(controls.Right)
		case tcell.KeyRune:
			r := ev.Rune()
			if r == 'q' {
				return false
			}
			if d := controls.DirectionForKey(r); d != 0 {
				g.hold.Press(d)
				return true
			}
			g.command(controls.CommandForKey(r))
		}

	case *tcell.EventResize:
		g.view.resize()
	}

	return true
}

func (g *game) command(cmd controls.Command) {
	if cmd == controls.None {
		return
	}
	if cmd == controls.Restart {
		g.particles.Clear()
		g.hold.Release()
	}
	if msg := controls.Apply(g.arena, cmd); msg != "" {
		g.status = msg
		g.statusUntil = time.Now().Add(2 * time.Second)
	}
	g.snaps = g.arena.Snapshot()
	if s, ok := g.arena.Controlled(); ok && cmd == controls.Restart {
		g.view.cam.CenterOn(float32(s.Position.X), float32(s.Position.Z))
	}
}

func (g *game) step(force float64) {
	if d := g.hold.Tick(); d != 0 {
		g.arena.ApplyControlForce(controls.Force(d, force))
	}
	g.feedback.Observe(g.snaps)
	g.arena.Step()
	g.snaps = g.arena.Snapshot()
	g.particles.Update()

	if s, ok := g.arena.Controlled(); ok {
		g.view.cam.Follow(float32(s.Position.X), float32(s.Position.Z))
	}
}

func (g *game) run(dt float64, force float64) {
	ticker := time.NewTicker(time.Duration(dt * float64(time.Second)))
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			eventChan <- g.screen.PollEvent()
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if ev == nil || !g.handleInput(ev) {
				return
			}

		case <-ticker.C:
			g.step(force)
			status := ""
			if time.Now().Before(g.statusUntil) {
				status = g.status
			}
			g.view.draw(g.arena, g.snaps, g.particles.Particles, status)
		}
	}
}

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	logFile := flag.String("log-file", "", "Write JSON logs to this file (terminal is in use)")
	mute := flag.Bool("mute", false, "Disable sound")
	autopilot := flag.Bool("autopilot", false, "Let the steering AI drive the controlled agent")
	flag.Parse()

	var logOut io.Writer = io.Discard
	if *logFile != "" {
		f, err := os.Create(*logFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		logOut = f
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(logOut, nil)))

	if err := config.Init(*configPath); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	a, err := arena.New(cfg, arena.Options{Seed: rngSeed})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create arena: %v\n", err)
		os.Exit(1)
	}
	defer a.Finish()
	a.SetAutopilot(*autopilot)

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	particles := fx.NewParticleSystem(400, rand.New(rand.NewSource(rngSeed)))
	g := &game{
		screen:    screen,
		arena:     a,
		view:      newView(screen, cfg.Arena.HalfWidth),
		hold:      newKeyHold(holdTicks),
		particles: particles,
		feedback:  fx.NewFeedback(particles),
		snaps:     a.Snapshot(),
	}
	a.AddListener(g.feedback)

	if !*mute {
		snd, err := newSound(a.ControlledID)
		if err != nil {
			// Non-fatal, the game runs without sound
			slog.Warn("audio initialization failed", "error", err)
		}
		defer snd.Close()
		a.AddListener(snd)
	}

	if s, ok := a.Controlled(); ok {
		g.view.cam.CenterOn(float32(s.Position.X), float32(s.Position.Z))
	}

	slog.Info("starting terminal arena", "seed", rngSeed)
	g.run(cfg.Physics.DT, cfg.Agent.ControlForce)
}
