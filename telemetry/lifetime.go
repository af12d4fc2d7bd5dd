package telemetry

import (
	"log/slog"

	"github.com/google/uuid"
)

// LifetimeStats tracks per-agent statistics from spawn to removal.
type LifetimeStats struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Controlled      bool      `json:"controlled"`
	SpawnTick       int64     `json:"spawn_tick"`
	SurvivalTimeSec float64   `json:"survival_sec"`

	Eats         int     `json:"eats"`
	PointsEarned int     `json:"points"`
	PowerUps     int     `json:"powerups"`
	StartRadius  float64 `json:"start_radius"`
	PeakRadius   float64 `json:"peak_radius"`
}

// LogValue implements slog.LogValuer for structured logging.
func (s *LifetimeStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("id", s.ID.String()),
		slog.String("name", s.Name),
		slog.Bool("controlled", s.Controlled),
		slog.Float64("survival_sec", s.SurvivalTimeSec),
		slog.Int("eats", s.Eats),
		slog.Int("points", s.PointsEarned),
		slog.Int("powerups", s.PowerUps),
		slog.Float64("peak_radius", s.PeakRadius),
	)
}

// LifetimeTracker manages per-agent lifetime statistics.
type LifetimeTracker struct {
	stats map[uuid.UUID]*LifetimeStats
}

// NewLifetimeTracker creates a new lifetime tracker.
func NewLifetimeTracker() *LifetimeTracker {
	return &LifetimeTracker{
		stats: make(map[uuid.UUID]*LifetimeStats),
	}
}

// Register starts tracking a newly spawned agent.
func (lt *LifetimeTracker) Register(id uuid.UUID, name string, controlled bool, spawnTick int64, radius float64) {
	lt.stats[id] = &LifetimeStats{
		ID:          id,
		Name:        name,
		Controlled:  controlled,
		SpawnTick:   spawnTick,
		StartRadius: radius,
		PeakRadius:  radius,
	}
}

// Get returns the lifetime stats for an agent, or nil if not found.
func (lt *LifetimeTracker) Get(id uuid.UUID) *LifetimeStats {
	return lt.stats[id]
}

// RecordEat counts a consumption by id and the points it scored.
func (lt *LifetimeTracker) RecordEat(id uuid.UUID, points int) {
	if s := lt.stats[id]; s != nil {
		s.Eats++
		s.PointsEarned += points
	}
}

// RecordPowerUp counts a power-up granted to id.
func (lt *LifetimeTracker) RecordPowerUp(id uuid.UUID) {
	if s := lt.stats[id]; s != nil {
		s.PowerUps++
	}
}

// UpdateRadius tracks peak radius.
func (lt *LifetimeTracker) UpdateRadius(id uuid.UUID, radius float64) {
	if s := lt.stats[id]; s != nil && radius > s.PeakRadius {
		s.PeakRadius = radius
	}
}

// Remove stops tracking an agent and returns its final stats with survival
// time filled in. Returns nil for unknown ids.
func (lt *LifetimeTracker) Remove(id uuid.UUID, currentTick int64, dt float64) *LifetimeStats {
	s := lt.stats[id]
	if s == nil {
		return nil
	}
	delete(lt.stats, id)
	s.SurvivalTimeSec = float64(currentTick-s.SpawnTick) * dt
	return s
}

// Count returns the number of tracked agents.
func (lt *LifetimeTracker) Count() int {
	return len(lt.stats)
}

// Clear drops all tracked agents.
func (lt *LifetimeTracker) Clear() {
	clear(lt.stats)
}
