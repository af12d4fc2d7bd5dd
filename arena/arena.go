// Package arena runs the agent simulation: an ark ECS world of agents that
// steer, move, eat each other and hold timed power-ups, advanced one fixed
// step at a time.
package arena

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/devour/components"
	"github.com/pthm-cable/devour/config"
	"github.com/pthm-cable/devour/powerup"
	"github.com/pthm-cable/devour/systems"
	"github.com/pthm-cable/devour/telemetry"
)

// State is the arena's lifecycle state.
type State uint8

const (
	StateRunning State = iota
	StatePaused
	StateGameOver
)

// String returns the display name for a State.
func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Options configures an Arena.
type Options struct {
	Seed int64

	// Source drives power-up timing. Nil means the system clock, unless
	// SimulatedTime is set.
	Source powerup.Source
	// SimulatedTime times power-ups by steps (dt per Step) instead of wall
	// time. Useful for headless runs faster than real time.
	SimulatedTime bool

	LogStats      bool                        // log window stats and bookmarks
	Output        *telemetry.OutputManager    // nil disables CSV output
	StatsCallback func(telemetry.WindowStats) // called on each window flush
	HallOfFame    int                         // lifetimes kept; 0 means 10
}

// Arena holds the complete simulation state.
type Arena struct {
	cfg *config.Config
	rng *rand.Rand

	world  *ecs.World
	agents *ecs.Map5[
		components.Position,
		components.Velocity,
		components.Jump,
		components.Body,
		components.Agent,
	]
	filter *ecs.Filter5[
		components.Position,
		components.Velocity,
		components.Jump,
		components.Body,
		components.Agent,
	]
	index map[uuid.UUID]ecs.Entity

	grid      *systems.SpatialGrid
	neighbors []systems.Neighbor
	forces    map[ecs.Entity]r2.Vec
	order     []ordered
	eaten     []bool // parallel to order during the collision pass
	removed   []ecs.Entity

	motion   systems.MotionParams
	consume  systems.ConsumeParams
	steering systems.SteeringParams
	spawn    systems.SpawnParams

	clock    *powerup.PausableClock
	manual   *powerup.ManualSource // set when SimulatedTime
	powerups *powerup.System
	catalog  *powerup.Catalog

	listeners []Listener

	state         State
	tick          int64
	score         int
	nextSeq       uint64
	controlled    uuid.UUID
	hasControlled bool
	enemies       int
	sinceSpawn    float64

	pendingForce  r2.Vec
	jumpRequested bool
	autopilot     bool

	// Telemetry
	collector     *telemetry.Collector
	perf          *telemetry.PerfCollector
	lifetimes     *telemetry.LifetimeTracker
	hallOfFame    *telemetry.HallOfFame
	bookmarks     *telemetry.BookmarkDetector
	output        *telemetry.OutputManager
	logStats      bool
	statsCallback func(telemetry.WindowStats)
}

// ordered pairs an entity with its insertion sequence for stable passes.
type ordered struct {
	e   ecs.Entity
	seq uint64
}

// New creates an arena from cfg and seeds the initial population. A nil cfg
// uses config.Cfg().
func New(cfg *config.Config, opts Options) (*Arena, error) {
	if cfg == nil {
		cfg = config.Cfg()
	}

	catalog, err := powerup.CatalogFromConfig(cfg.PowerUp.Catalog)
	if err != nil {
		return nil, fmt.Errorf("building power-up catalog: %w", err)
	}

	src := opts.Source
	var manual *powerup.ManualSource
	if opts.SimulatedTime {
		manual = powerup.NewManualSource(time.Time{})
		src = manual
	} else if src == nil {
		src = powerup.SystemSource{}
	}
	clock := powerup.NewPausableClock(src)

	hofSize := opts.HallOfFame
	if hofSize <= 0 {
		hofSize = 10
	}

	world := ecs.NewWorld()
	a := &Arena{
		cfg:   cfg,
		rng:   rand.New(rand.NewSource(opts.Seed)),
		world: world,
		agents: ecs.NewMap5[
			components.Position,
			components.Velocity,
			components.Jump,
			components.Body,
			components.Agent,
		](world),
		filter: ecs.NewFilter5[
			components.Position,
			components.Velocity,
			components.Jump,
			components.Body,
			components.Agent,
		](world),
		index:  make(map[uuid.UUID]ecs.Entity),
		grid:   systems.NewSpatialGrid(cfg.Arena.HalfWidth, cfg.Physics.GridCellSize),
		forces: make(map[ecs.Entity]r2.Vec),

		motion:   systems.MotionParamsFromConfig(cfg),
		consume:  systems.ConsumeParamsFromConfig(cfg),
		steering: systems.SteeringParamsFromConfig(cfg),
		spawn:    systems.SpawnParamsFromConfig(cfg),

		clock:    clock,
		manual:   manual,
		powerups: powerup.NewSystem(clock, cfg.PowerUp.Tolerance),
		catalog:  catalog,

		collector:     telemetry.NewCollector(cfg.Telemetry.StatsWindow, cfg.Physics.DT),
		perf:          telemetry.NewPerfCollector(cfg.Telemetry.PerfCollectorWindow),
		lifetimes:     telemetry.NewLifetimeTracker(),
		hallOfFame:    telemetry.NewHallOfFame(hofSize),
		bookmarks:     telemetry.NewBookmarkDetector(cfg.Telemetry.BookmarkHistorySize, cfg.Bookmarks),
		output:        opts.Output,
		logStats:      opts.LogStats,
		statsCallback: opts.StatsCallback,
	}

	a.populate()
	return a, nil
}

// Config returns the configuration the arena runs with.
func (a *Arena) Config() *config.Config { return a.cfg }

// State returns the lifecycle state.
func (a *Arena) State() State { return a.state }

// Score returns the controlled agent's score.
func (a *Arena) Score() int { return a.score }

// Tick returns the number of steps processed since the last restart.
func (a *Arena) Tick() int64 { return a.tick }

// ControlledID returns the controlled agent's id.
func (a *Arena) ControlledID() (uuid.UUID, bool) {
	return a.controlled, a.hasControlled
}

// EnemyCount returns the number of AI agents.
func (a *Arena) EnemyCount() int { return a.enemies }

// Autopilot reports whether the controlled agent is steered by the AI.
func (a *Arena) Autopilot() bool { return a.autopilot }

// PowerUps exposes the power-up system for read access to active effects.
func (a *Arena) PowerUps() *powerup.System { return a.powerups }

// HallOfFame returns the best finished lifetimes so far.
func (a *Arena) HallOfFame() *telemetry.HallOfFame { return a.hallOfFame }

// PerfStats returns step timing over the recent window.
func (a *Arena) PerfStats() telemetry.PerfStats { return a.perf.Stats() }

// RecordFrame records frame timing for graphics mode.
func (a *Arena) RecordFrame() { a.perf.RecordFrame() }

// resolve returns the live components for an agent id.
func (a *Arena) resolve(id uuid.UUID) (ecs.Entity, bool) {
	e, ok := a.index[id]
	if !ok || !a.world.Alive(e) {
		return ecs.Entity{}, false
	}
	return e, true
}

// target adapts an agent to the power-up system.
func (a *Arena) target(id uuid.UUID) (powerup.Target, bool) {
	e, ok := a.resolve(id)
	if !ok {
		return powerup.Target{}, false
	}
	_, _, _, body, agent := a.agents.Get(e)
	return powerup.Target{Agent: agent, Body: body}, true
}
