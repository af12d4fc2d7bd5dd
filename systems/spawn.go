package systems

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/devour/config"
)

// SpawnParams holds score-dependent spawn control constants.
type SpawnParams struct {
	BaseCooldown      float64
	MinCooldown       float64
	CooldownPerPoint  float64
	BaseMaxEnemies    int
	MaxEnemies        int
	PointsPerEnemy    int
	SafeRadius        float64
	SafeRadiusPerSize float64
	Attempts          int
	EnemyRadiusMin    float64
	EnemyRadiusMax    float64
}

// SpawnParamsFromConfig extracts spawn parameters from the loaded config.
func SpawnParamsFromConfig(cfg *config.Config) SpawnParams {
	s := cfg.Spawn
	return SpawnParams{
		BaseCooldown:      s.BaseCooldown,
		MinCooldown:       s.MinCooldown,
		CooldownPerPoint:  s.CooldownPerPoint,
		BaseMaxEnemies:    s.BaseMaxEnemies,
		MaxEnemies:        s.MaxEnemies,
		PointsPerEnemy:    s.PointsPerEnemy,
		SafeRadius:        s.SafeRadius,
		SafeRadiusPerSize: s.SafeRadiusPerSize,
		Attempts:          s.Attempts,
		EnemyRadiusMin:    cfg.Agent.EnemyRadiusMin,
		EnemyRadiusMax:    cfg.Agent.EnemyRadiusMax,
	}
}

// SpawnCooldown returns the seconds required between AI spawns at the given
// score. It shrinks as score grows and never drops below MinCooldown.
func SpawnCooldown(score int, p SpawnParams) float64 {
	score = max(score, 0)
	cooldown := p.BaseCooldown - float64(score)*p.CooldownPerPoint
	return math.Min(math.Max(cooldown, p.MinCooldown), p.BaseCooldown)
}

// MaxEnemies returns the AI population cap at the given score. It is
// non-decreasing in score and bounded by p.MaxEnemies.
func MaxEnemies(score int, p SpawnParams) int {
	score = max(score, 0)
	perEnemy := max(p.PointsPerEnemy, 1)
	return min(p.BaseMaxEnemies+score/perEnemy, max(p.MaxEnemies, p.BaseMaxEnemies))
}

// SafeDistance returns the keep-out radius around a controlled agent of the
// given radius.
func (p SpawnParams) SafeDistance(controlledRadius float64) float64 {
	return p.SafeRadius + controlledRadius*p.SafeRadiusPerSize
}

// SpawnPosition picks a random horizontal position inside the arena (shrunk
// by margin) at least safe away from avoid. After Attempts misses it returns
// the farthest candidate seen.
func SpawnPosition(rng *rand.Rand, halfWidth, margin float64, avoid r2.Vec, safe float64, attempts int) r2.Vec {
	extent := math.Max(halfWidth-margin, 0)

	var best r2.Vec
	bestDist := -1.0
	for i := 0; i < max(attempts, 1); i++ {
		candidate := r2.Vec{
			X: (rng.Float64()*2 - 1) * extent,
			Y: (rng.Float64()*2 - 1) * extent,
		}
		dist := r2.Norm(r2.Sub(candidate, avoid))
		if dist >= safe {
			return candidate
		}
		if dist > bestDist {
			best = candidate
			bestDist = dist
		}
	}

	return best
}

// EnemyRadius draws a radius for a freshly spawned AI agent.
func EnemyRadius(rng *rand.Rand, p SpawnParams) float64 {
	lo := math.Max(p.EnemyRadiusMin, minRadius)
	hi := math.Max(p.EnemyRadiusMax, lo)
	return lo + rng.Float64()*(hi-lo)
}
