package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/devour/arena"
	"github.com/pthm-cable/devour/config"
	"github.com/pthm-cable/devour/game"
	"github.com/pthm-cable/devour/telemetry"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run without graphics (implies -autopilot)")
	logStats := flag.Bool("log-stats", false, "Output stats via slog")
	statsWindow := flag.Float64("stats-window", 0, "Stats window size in seconds (0 = use config)")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	maxTicks := flag.Int64("max-ticks", 0, "Stop after N ticks across all games (0 = unlimited)")
	autoRestart := flag.Bool("auto-restart", false, "Headless: start a new game after game over instead of exiting")
	autopilot := flag.Bool("autopilot", false, "Let the steering AI drive the controlled agent")
	powerUpEvery := flag.Float64("powerup-interval", 0, "Headless: grant a random power-up every N simulated seconds (0 = never)")
	showPerf := flag.Bool("perf", false, "Show the step performance panel")

	flag.Parse()

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	if *statsWindow > 0 {
		cfg.Telemetry.StatsWindow = *statsWindow
	}

	// Set up seed
	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	output, err := telemetry.NewOutputManager(*outputDir)
	if err != nil {
		slog.Error("failed to create output directory", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := output.Close(); err != nil {
			slog.Error("failed to close output", "error", err)
		}
	}()
	if err := output.WriteConfig(cfg); err != nil {
		slog.Error("failed to write config snapshot", "error", err)
	}

	opts := arena.Options{
		Seed:          rngSeed,
		SimulatedTime: *headless,
		LogStats:      *logStats,
		Output:        output,
	}

	a, err := arena.New(cfg, opts)
	if err != nil {
		slog.Error("failed to create arena", "error", err)
		os.Exit(1)
	}
	a.SetAutopilot(*autopilot || *headless)

	if *headless {
		slog.Info("starting headless simulation",
			"seed", rngSeed,
			"stats_window", cfg.Telemetry.StatsWindow,
			"max_ticks", *maxTicks,
			"auto_restart", *autoRestart,
		)
		runHeadless(a, *maxTicks, *autoRestart, *powerUpEvery)
		a.Finish()
		return
	}

	// Graphical mode
	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), "Devour")
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	g := game.New(a, game.Options{Seed: rngSeed, ShowPerf: *showPerf})
	defer g.Unload()

	var total int64
	for !rl.WindowShouldClose() {
		before := g.Tick()
		g.Update()
		g.Draw()

		if after := g.Tick(); after > before {
			total += after - before
		}
		if *maxTicks > 0 && total >= *maxTicks {
			break
		}
	}
}

// runHeadless steps a until maxTicks have run in total, or until the first
// game over unless autoRestart is set.
func runHeadless(a *arena.Arena, maxTicks int64, autoRestart bool, powerUpEvery float64) {
	dt := a.Config().Physics.DT
	grantTicks := int64(0)
	if powerUpEvery > 0 {
		grantTicks = max(int64(powerUpEvery/dt), 1)
	}

	games := 1
	var total int64
	for maxTicks <= 0 || total < maxTicks {
		a.Step()
		total++

		if grantTicks > 0 && a.Tick()%grantTicks == 0 {
			a.GrantRandomPowerUp()
		}

		if a.State() != arena.StateGameOver {
			continue
		}
		slog.Info("game finished", "game", games, "score", a.Score(), "ticks", a.Tick())
		if !autoRestart {
			return
		}
		a.Restart()
		games++
	}
	slog.Info("max ticks reached", "ticks", total, "games", games)
}
