package main

import "github.com/pthm-cable/devour/config"

// ParamSpec defines a single tunable parameter.
type ParamSpec struct {
	Name    string  // Human-readable name
	Path    string  // Config path for logging
	Min     float64 // Lower bound
	Max     float64 // Upper bound
	Default float64 // Default value
}

// ParamVector holds the set of all tunable parameters.
type ParamVector struct {
	Specs []ParamSpec
}

// NewParamVector creates the standard set of difficulty parameters: how
// hard the AI hunts and flees, how fast it moves and how quickly the arena
// fills up.
func NewParamVector() *ParamVector {
	return &ParamVector{
		Specs: []ParamSpec{
			// Steering
			{Name: "threat_radius", Path: "steering.threat_radius", Min: 50, Max: 300, Default: 150},
			{Name: "target_radius", Path: "steering.target_radius", Min: 50, Max: 400, Default: 200},
			{Name: "avoid_force", Path: "steering.avoid_force", Min: 2, Max: 20, Default: 9},
			{Name: "seek_force", Path: "steering.seek_force", Min: 2, Max: 24, Default: 12},
			{Name: "wander_chance", Path: "steering.wander_chance", Min: 0, Max: 0.1, Default: 0.02},
			// Movement
			{Name: "enemy_max_speed", Path: "agent.enemy_max_speed", Min: 60, Max: 260, Default: 180},
			// Spawn pressure
			{Name: "base_cooldown", Path: "spawn.base_cooldown", Min: 0.5, Max: 6, Default: 3},
			{Name: "cooldown_per_point", Path: "spawn.cooldown_per_point", Min: 0, Max: 0.01, Default: 0.002},
			{Name: "enemy_radius_max", Path: "agent.enemy_radius_max", Min: 10, Max: 40, Default: 24},
		},
	}
}

// Dim returns the number of parameters.
func (pv *ParamVector) Dim() int {
	return len(pv.Specs)
}

// DefaultVector returns the default parameter values as a slice.
func (pv *ParamVector) DefaultVector() []float64 {
	v := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		v[i] = spec.Default
	}
	return v
}

// Normalize converts raw parameter values to [0,1] range.
func (pv *ParamVector) Normalize(raw []float64) []float64 {
	normalized := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		normalized[i] = (raw[i] - spec.Min) / (spec.Max - spec.Min)
	}
	return normalized
}

// Denormalize converts [0,1] values back to raw parameter values.
func (pv *ParamVector) Denormalize(normalized []float64) []float64 {
	raw := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		raw[i] = spec.Min + normalized[i]*(spec.Max-spec.Min)
	}
	return raw
}

// Clamp ensures all values are within bounds.
func (pv *ParamVector) Clamp(v []float64) []float64 {
	clamped := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		clamped[i] = min(max(v[i], spec.Min), spec.Max)
	}
	return clamped
}

// fields returns pointers to the config fields in Specs order.
func fields(cfg *config.Config) []*float64 {
	return []*float64{
		&cfg.Steering.ThreatRadius,
		&cfg.Steering.TargetRadius,
		&cfg.Steering.AvoidForce,
		&cfg.Steering.SeekForce,
		&cfg.Steering.WanderChance,
		&cfg.Agent.EnemyMaxSpeed,
		&cfg.Spawn.BaseCooldown,
		&cfg.Spawn.CooldownPerPoint,
		&cfg.Agent.EnemyRadiusMax,
	}
}

// ApplyToConfig applies clamped parameter values to cfg.
func (pv *ParamVector) ApplyToConfig(cfg *config.Config, values []float64) {
	clamped := pv.Clamp(values)
	for i, f := range fields(cfg) {
		*f = clamped[i]
	}
	cfg.Agent.EnemyRadiusMin = min(cfg.Agent.EnemyRadiusMin, cfg.Agent.EnemyRadiusMax)
	cfg.Recompute()
}

// ExtractFromConfig extracts current parameter values from cfg.
func (pv *ParamVector) ExtractFromConfig(cfg *config.Config) []float64 {
	fs := fields(cfg)
	out := make([]float64, len(fs))
	for i, f := range fs {
		out[i] = *f
	}
	return out
}
