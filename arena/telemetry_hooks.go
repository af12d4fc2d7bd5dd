package arena

import (
	"log/slog"

	"github.com/pthm-cable/devour/telemetry"
)

// flushTelemetry checks if the stats window should be flushed and handles bookmarks.
func (a *Arena) flushTelemetry() {
	if !a.collector.ShouldFlush(a.tick) {
		return
	}

	stats := a.collector.Flush(a.tick, a.sampleState())
	perfStats := a.perf.Stats()

	if a.statsCallback != nil {
		a.statsCallback(stats)
	}

	if a.logStats {
		stats.LogStats()
		perfStats.LogStats()
	}

	if err := a.output.WriteTelemetry(stats); err != nil {
		slog.Error("failed to write telemetry", "error", err)
	}
	if err := a.output.WritePerf(perfStats, stats.WindowEndTick); err != nil {
		slog.Error("failed to write perf", "error", err)
	}

	for _, bm := range a.bookmarks.Check(stats) {
		if a.logStats {
			bm.LogBookmark()
		}
		if err := a.output.WriteBookmark(bm); err != nil {
			slog.Error("failed to write bookmark", "error", err)
		}
	}
}

// sampleState collects the population snapshot for a stats window.
func (a *Arena) sampleState() telemetry.ArenaState {
	state := telemetry.ArenaState{
		Score:      a.score,
		EnemyCount: a.enemies,
		EnemyRadii: make([]float64, 0, a.enemies),
	}

	query := a.filter.Query()
	for query.Next() {
		_, _, _, body, agent := query.Get()
		if agent.Controlled {
			state.ControlledRadius = body.Radius
			continue
		}
		state.EnemyRadii = append(state.EnemyRadii, body.Radius)
	}
	return state
}
