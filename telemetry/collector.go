// Package telemetry provides windowed arena statistics, highlights, per-agent
// lifetime tracking and CSV output.
package telemetry

// Collector accumulates events within time windows and produces WindowStats.
type Collector struct {
	windowDurationSec   float64
	windowDurationTicks int64
	dt                  float64

	// Current window tracking
	windowStartTick int64

	// Event counters for current window
	consumptions    int
	playerEats      int
	enemyEats       int
	pointsEarned    int
	spawns          int
	grants          int
	tryAgains       int
	expiries        int
	gameOvers       int
	fleeDecisions   int
	seekDecisions   int
	wanderDecisions int
}

// NewCollector creates a new stats collector.
// windowDurationSec: how long each stats window lasts in simulation seconds
// dt: seconds per tick (used for tick-to-time conversion)
func NewCollector(windowDurationSec, dt float64) *Collector {
	ticksPerWindow := int64(windowDurationSec / dt)
	if ticksPerWindow < 1 {
		ticksPerWindow = 1
	}

	return &Collector{
		windowDurationSec:   windowDurationSec,
		windowDurationTicks: ticksPerWindow,
		dt:                  dt,
	}
}

// RecordConsumption records one agent eating another. byPlayer marks eats by
// the controlled agent, which are the only ones that score.
func (c *Collector) RecordConsumption(byPlayer bool, points int) {
	c.consumptions++
	if byPlayer {
		c.playerEats++
		c.pointsEarned += points
	} else {
		c.enemyEats++
	}
}

// RecordSpawn records an AI agent admitted by spawn control.
func (c *Collector) RecordSpawn() {
	c.spawns++
}

// RecordGrant records a power-up grant. granted is false for "try again".
func (c *Collector) RecordGrant(granted bool) {
	if granted {
		c.grants++
	} else {
		c.tryAgains++
	}
}

// RecordExpiry records a power-up running out.
func (c *Collector) RecordExpiry() {
	c.expiries++
}

// RecordGameOver records the controlled agent being eaten.
func (c *Collector) RecordGameOver() {
	c.gameOvers++
}

// RecordDecision records the steering mode chosen by an AI agent.
func (c *Collector) RecordDecision(mode string) {
	switch mode {
	case "flee":
		c.fleeDecisions++
	case "seek":
		c.seekDecisions++
	case "wander":
		c.wanderDecisions++
	}
}

// ShouldFlush returns true if enough ticks have passed to flush the window.
func (c *Collector) ShouldFlush(currentTick int64) bool {
	return currentTick-c.windowStartTick >= c.windowDurationTicks
}

// ArenaState is the population snapshot sampled at window end.
type ArenaState struct {
	Score            int
	EnemyCount       int
	ControlledRadius float64 // 0 when there is no controlled agent
	EnemyRadii       []float64
}

// Flush produces a WindowStats and resets counters for the next window.
func (c *Collector) Flush(currentTick int64, state ArenaState) WindowStats {
	radius := ComputeRadiusStats(state.EnemyRadii)

	stats := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   currentTick,
		SimTimeSec:      float64(currentTick) * c.dt,

		Score:            state.Score,
		Enemies:          state.EnemyCount,
		ControlledRadius: state.ControlledRadius,

		Consumptions: c.consumptions,
		PlayerEats:   c.playerEats,
		EnemyEats:    c.enemyEats,
		PointsEarned: c.pointsEarned,
		Spawns:       c.spawns,
		Grants:       c.grants,
		TryAgains:    c.tryAgains,
		Expiries:     c.expiries,
		GameOvers:    c.gameOvers,

		FleeDecisions:   c.fleeDecisions,
		SeekDecisions:   c.seekDecisions,
		WanderDecisions: c.wanderDecisions,

		RadiusMean: radius.Mean,
		RadiusStd:  radius.Std,
		RadiusP10:  radius.P10,
		RadiusP50:  radius.P50,
		RadiusP90:  radius.P90,
		RadiusMax:  radius.Max,
	}

	// Reset for next window
	c.windowStartTick = currentTick
	c.consumptions = 0
	c.playerEats = 0
	c.enemyEats = 0
	c.pointsEarned = 0
	c.spawns = 0
	c.grants = 0
	c.tryAgains = 0
	c.expiries = 0
	c.gameOvers = 0
	c.fleeDecisions = 0
	c.seekDecisions = 0
	c.wanderDecisions = 0

	return stats
}

// Reset discards the current window and restarts it at tick.
func (c *Collector) Reset(tick int64) {
	c.Flush(tick, ArenaState{})
}

// WindowDurationTicks returns the number of ticks per window.
func (c *Collector) WindowDurationTicks() int64 {
	return c.windowDurationTicks
}
