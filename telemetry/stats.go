package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for a time window.
type WindowStats struct {
	WindowStartTick int64   `csv:"-"`
	WindowEndTick   int64   `csv:"window_end"`
	SimTimeSec      float64 `csv:"sim_time"`

	// Arena state at window end
	Score            int     `csv:"score"`
	Enemies          int     `csv:"enemies"`
	ControlledRadius float64 `csv:"controlled_radius"`

	// Events during window
	Consumptions int `csv:"consumptions"`
	PlayerEats   int `csv:"player_eats"`
	EnemyEats    int `csv:"enemy_eats"`
	PointsEarned int `csv:"points_earned"`
	Spawns       int `csv:"spawns"`
	Grants       int `csv:"grants"`
	TryAgains    int `csv:"try_agains"`
	Expiries     int `csv:"expiries"`
	GameOvers    int `csv:"game_overs"`

	// AI steering modes chosen
	FleeDecisions   int `csv:"flee"`
	SeekDecisions   int `csv:"seek"`
	WanderDecisions int `csv:"wander"`

	// Enemy radius distribution (sampled at window end)
	RadiusMean float64 `csv:"radius_mean"`
	RadiusStd  float64 `csv:"radius_std"`
	RadiusP10  float64 `csv:"radius_p10"`
	RadiusP50  float64 `csv:"radius_p50"`
	RadiusP90  float64 `csv:"radius_p90"`
	RadiusMax  float64 `csv:"radius_max"`
}

// RadiusStats summarizes a radius distribution.
type RadiusStats struct {
	Mean, Std     float64
	P10, P50, P90 float64
	Max           float64
}

// ComputeRadiusStats calculates mean, std, percentiles and max. Returns the
// zero value for an empty slice. values is not modified.
func ComputeRadiusStats(values []float64) RadiusStats {
	n := len(values)
	if n == 0 {
		return RadiusStats{}
	}

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	mean, std := stat.MeanStdDev(sorted, nil)
	if n == 1 {
		std = 0
	}

	return RadiusStats{
		Mean: mean,
		Std:  std,
		P10:  stat.Quantile(0.10, stat.Empirical, sorted, nil),
		P50:  stat.Quantile(0.50, stat.Empirical, sorted, nil),
		P90:  stat.Quantile(0.90, stat.Empirical, sorted, nil),
		Max:  floats.Max(sorted),
	}
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int64("window_start", s.WindowStartTick),
		slog.Int64("window_end", s.WindowEndTick),
		slog.Float64("sim_time", s.SimTimeSec),
		slog.Int("score", s.Score),
		slog.Int("enemies", s.Enemies),
		slog.Float64("controlled_radius", s.ControlledRadius),
		slog.Int("consumptions", s.Consumptions),
		slog.Int("player_eats", s.PlayerEats),
		slog.Int("enemy_eats", s.EnemyEats),
		slog.Int("points_earned", s.PointsEarned),
		slog.Int("spawns", s.Spawns),
		slog.Int("grants", s.Grants),
		slog.Int("try_agains", s.TryAgains),
		slog.Int("expiries", s.Expiries),
		slog.Int("game_overs", s.GameOvers),
		slog.Int("flee", s.FleeDecisions),
		slog.Int("seek", s.SeekDecisions),
		slog.Int("wander", s.WanderDecisions),
		slog.Float64("radius_mean", s.RadiusMean),
		slog.Float64("radius_std", s.RadiusStd),
		slog.Float64("radius_p50", s.RadiusP50),
		slog.Float64("radius_max", s.RadiusMax),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats", "window", s)
}
