// Package config provides configuration loading and access for the arena simulation.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all simulation configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Arena     ArenaConfig     `yaml:"arena"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Agent     AgentConfig     `yaml:"agent"`
	Steering  SteeringConfig  `yaml:"steering"`
	PowerUp   PowerUpConfig   `yaml:"powerup"`
	Spawn     SpawnConfig     `yaml:"spawn"`
	Names     []string        `yaml:"names"`
	Bands     BandsConfig     `yaml:"bands"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
	Bookmarks BookmarksConfig `yaml:"bookmarks"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings for the graphical front end.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// ArenaConfig holds arena dimensions and the starting population.
type ArenaConfig struct {
	HalfWidth      float64 `yaml:"half_width"`      // L: arena spans [-L, L] on both horizontal axes
	InitialEnemies int     `yaml:"initial_enemies"` // AI agents seeded on start and restart
	PlayerName     string  `yaml:"player_name"`
}

// PhysicsConfig holds integration parameters.
type PhysicsConfig struct {
	DT           float64 `yaml:"dt"`             // seconds per tick
	GridCellSize float64 `yaml:"grid_cell_size"` // spatial grid bucket size
	Gravity      float64 `yaml:"gravity"`        // vertical deceleration while jumping
	JumpSpeed    float64 `yaml:"jump_speed"`     // initial vertical speed of a jump
}

// AgentConfig holds per-agent movement and size parameters.
type AgentConfig struct {
	ControlledRadius   float64 `yaml:"controlled_radius"`
	EnemyRadiusMin     float64 `yaml:"enemy_radius_min"`
	EnemyRadiusMax     float64 `yaml:"enemy_radius_max"`
	ControlledMaxSpeed float64 `yaml:"controlled_max_speed"` // units per second at multiplier 1
	EnemyMaxSpeed      float64 `yaml:"enemy_max_speed"`
	ControlForce       float64 `yaml:"control_force"`      // per-tick force of a full input press
	ControlledDamping  float64 `yaml:"controlled_damping"` // per-tick velocity retention
	EnemyDamping       float64 `yaml:"enemy_damping"`
	Bounce             float64 `yaml:"bounce"` // velocity factor applied on wall contact
	EatenVolumeShare   float64 `yaml:"eaten_volume_share"`
	PointsPerRadius    float64 `yaml:"points_per_radius"`
}

// SteeringConfig holds AI decision parameters.
type SteeringConfig struct {
	ThreatRadius float64 `yaml:"threat_radius"`
	TargetRadius float64 `yaml:"target_radius"`
	TieEpsilon   float64 `yaml:"tie_epsilon"`
	AvoidForce   float64 `yaml:"avoid_force"`
	SeekForce    float64 `yaml:"seek_force"`
	WanderChance float64 `yaml:"wander_chance"`
	WanderForce  float64 `yaml:"wander_force"`
}

// PowerUpConfig holds power-up timing and the random grant catalog.
type PowerUpConfig struct {
	GrowthRate float64       `yaml:"growth_rate"` // fraction of remaining size gap closed per tick
	Tolerance  float64       `yaml:"tolerance"`   // relative tolerance for boost and animation checks
	Catalog    []OfferConfig `yaml:"catalog"`
}

// OfferConfig is one weighted entry of the random power-up catalog.
type OfferConfig struct {
	Name       string  `yaml:"name"`
	Kind       string  `yaml:"kind"` // speed, size, skin or none
	Weight     float64 `yaml:"weight"`
	Multiplier float64 `yaml:"multiplier"`
	Skin       string  `yaml:"skin"`     // skin_a, skin_b or skin_c when kind is skin
	Duration   float64 `yaml:"duration"` // seconds
}

// SpawnConfig holds score-dependent spawn control parameters.
type SpawnConfig struct {
	BaseCooldown      float64 `yaml:"base_cooldown"`        // seconds between spawns at score 0
	MinCooldown       float64 `yaml:"min_cooldown"`         // floor for the cooldown
	CooldownPerPoint  float64 `yaml:"cooldown_per_point"`   // seconds removed per point of score
	BaseMaxEnemies    int     `yaml:"base_max_enemies"`     // AI cap at score 0
	MaxEnemies        int     `yaml:"max_enemies"`          // absolute AI cap
	PointsPerEnemy    int     `yaml:"points_per_enemy"`     // score needed to raise the cap by one
	SafeRadius        float64 `yaml:"safe_radius"`          // keep-out distance around the controlled agent
	SafeRadiusPerSize float64 `yaml:"safe_radius_per_size"` // extra keep-out per unit of controlled radius
	Attempts          int     `yaml:"attempts"`             // position candidates tried per spawn
}

// BandsConfig holds radius thresholds for presentation size bands.
type BandsConfig struct {
	Small  float64 `yaml:"small"`
	Medium float64 `yaml:"medium"`
	Large  float64 `yaml:"large"`
	Huge   float64 `yaml:"huge"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow         float64 `yaml:"stats_window"`
	BookmarkHistorySize int     `yaml:"bookmark_history_size"`
	PerfCollectorWindow int     `yaml:"perf_collector_window"`
}

// BookmarksConfig holds bookmark detection thresholds.
type BookmarksConfig struct {
	FeedingFrenzy    FeedingFrenzyConfig   `yaml:"feeding_frenzy"`
	PopulationCrash  PopulationCrashConfig `yaml:"population_crash"`
	ScoreMilestone   int                   `yaml:"score_milestone"`   // score step between milestones
	GiantRadius      float64               `yaml:"giant_radius"`      // 0 = bands.huge
	StalemateWindows int                   `yaml:"stalemate_windows"` // quiet windows before a stalemate
}

// FeedingFrenzyConfig holds feeding frenzy detection parameters.
type FeedingFrenzyConfig struct {
	Multiplier      float64 `yaml:"multiplier"`
	MinConsumptions int     `yaml:"min_consumptions"`
}

// PopulationCrashConfig holds population crash detection parameters.
type PopulationCrashConfig struct {
	MinDrop float64 `yaml:"min_drop"` // fraction of the recent peak lost
	MinLoss int     `yaml:"min_loss"` // enemies lost
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	QueryRadius float64 // max(threat, target) radius for steering neighbor queries
	ArenaWidth  float64 // 2 * HalfWidth
	TicksPerSec float64 // 1 / DT
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.computeDerived()

	return cfg, nil
}

// Recompute refreshes derived values after fields were changed in code.
func (c *Config) Recompute() {
	c.computeDerived()
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.QueryRadius = max(c.Steering.ThreatRadius, c.Steering.TargetRadius)
	c.Derived.ArenaWidth = 2 * c.Arena.HalfWidth
	if c.Physics.DT > 0 {
		c.Derived.TicksPerSec = 1 / c.Physics.DT
	}

	if c.Spawn.Attempts < 1 {
		c.Spawn.Attempts = 1
	}
	if c.Spawn.PointsPerEnemy < 1 {
		c.Spawn.PointsPerEnemy = 1
	}
	if c.Spawn.MaxEnemies < c.Spawn.BaseMaxEnemies {
		c.Spawn.MaxEnemies = c.Spawn.BaseMaxEnemies
	}
	if c.Spawn.MinCooldown > c.Spawn.BaseCooldown {
		c.Spawn.MinCooldown = c.Spawn.BaseCooldown
	}
	if c.Bookmarks.GiantRadius <= 0 {
		c.Bookmarks.GiantRadius = c.Bands.Huge
	}
	if c.Arena.PlayerName == "" {
		c.Arena.PlayerName = "You"
	}
	if len(c.Names) == 0 {
		c.Names = []string{"Blob"}
	}
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
