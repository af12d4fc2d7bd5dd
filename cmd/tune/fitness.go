package main

import (
	"math"
	"sync"

	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/devour/arena"
	"github.com/pthm-cable/devour/config"
	"github.com/pthm-cable/devour/telemetry"
)

// FitnessEvaluator runs headless autopilot games and scores how close their
// length comes to a target.
type FitnessEvaluator struct {
	params     *ParamVector
	maxTicks   int64
	targetSec  float64
	seeds      []int64
	baseConfig *config.Config

	// Best run tracking
	mu             sync.Mutex
	bestFitness    float64
	bestHallOfFame *telemetry.HallOfFame
	lastSurvival   float64 // mean survival seconds from the most recent Evaluate
	lastQuality    float64
}

// NewFitnessEvaluator creates a new evaluator. targetSec is the game length
// a well-tuned arena gives the autopilot.
func NewFitnessEvaluator(params *ParamVector, maxTicks int64, targetSec float64, seeds []int64, baseCfg *config.Config) *FitnessEvaluator {
	return &FitnessEvaluator{
		params:      params,
		maxTicks:    maxTicks,
		targetSec:   targetSec,
		seeds:       seeds,
		baseConfig:  baseCfg,
		bestFitness: math.Inf(1),
	}
}

// BestHallOfFame returns the hall of fame from the best evaluation.
func (fe *FitnessEvaluator) BestHallOfFame() *telemetry.HallOfFame {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	return fe.bestHallOfFame
}

// Last returns mean survival seconds and quality from the most recent
// evaluation.
func (fe *FitnessEvaluator) Last() (survivalSec, quality float64) {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	return fe.lastSurvival, fe.lastQuality
}

// runResult holds the results from a single game.
type runResult struct {
	survivalSec float64
	windowStats []telemetry.WindowStats // collected via StatsCallback each window
	hallOfFame  *telemetry.HallOfFame
}

// seedResult holds the scored result from one seed.
type seedResult struct {
	fitness    float64
	survival   float64
	quality    float64
	hallOfFame *telemetry.HallOfFame
}

// Evaluate computes fitness for a parameter vector (lower = better).
func (fe *FitnessEvaluator) Evaluate(x []float64) float64 {
	cfg := fe.copyConfig()
	fe.params.ApplyToConfig(cfg, x)

	// Each seed gets its own arena; the config is read-only once applied.
	results := make([]seedResult, len(fe.seeds))
	var wg sync.WaitGroup

	for i, seed := range fe.seeds {
		wg.Add(1)
		go func(idx int, s int64) {
			defer wg.Done()
			r := fe.runGame(cfg, s)
			quality := computeQuality(r.windowStats)
			results[idx] = seedResult{
				fitness:    computeFitness(r.survivalSec, fe.targetSec, quality),
				survival:   r.survivalSec,
				quality:    quality,
				hallOfFame: r.hallOfFame,
			}
		}(i, seed)
	}
	wg.Wait()

	var totalFitness, totalSurvival, totalQuality float64
	bestSeedFitness := math.Inf(1)
	var bestSeedHallOfFame *telemetry.HallOfFame

	for _, r := range results {
		totalFitness += r.fitness
		totalSurvival += r.survival
		totalQuality += r.quality
		if r.fitness < bestSeedFitness {
			bestSeedFitness = r.fitness
			bestSeedHallOfFame = r.hallOfFame
		}
	}

	n := float64(len(fe.seeds))
	avgFitness := totalFitness / n

	fe.mu.Lock()
	if avgFitness < fe.bestFitness {
		fe.bestFitness = avgFitness
		fe.bestHallOfFame = bestSeedHallOfFame
	}
	fe.lastSurvival = totalSurvival / n
	fe.lastQuality = totalQuality / n
	fe.mu.Unlock()

	return avgFitness
}

// runGame plays one autopilot game until game over or maxTicks.
func (fe *FitnessEvaluator) runGame(cfg *config.Config, seed int64) *runResult {
	result := &runResult{}

	a, err := arena.New(cfg, arena.Options{
		Seed:          seed,
		SimulatedTime: true,
		StatsCallback: func(stats telemetry.WindowStats) {
			result.windowStats = append(result.windowStats, stats)
		},
	})
	if err != nil {
		// An unusable parameter set scores as an instant loss.
		return result
	}
	a.SetAutopilot(true)

	for a.Tick() < fe.maxTicks && a.State() != arena.StateGameOver {
		a.Step()
	}
	a.Finish()

	result.survivalSec = float64(a.Tick()) * cfg.Physics.DT
	result.hallOfFame = a.HallOfFame()
	return result
}

// copyConfig returns a copy of the base config. Slices are shared but never
// modified by parameter application.
func (fe *FitnessEvaluator) copyConfig() *config.Config {
	cfg := *fe.baseConfig
	return &cfg
}

// failedFitness scores a game that never ran.
const failedFitness = 1e6

// computeFitness calculates the scalar fitness (lower = better).
// Formula: |log(survival/target)| × (1 - 0.2 × quality)
// Distance from the target length dominates; quality breaks ties between
// configs that land equally close.
func computeFitness(survivalSec, targetSec, quality float64) float64 {
	if survivalSec <= 0 || targetSec <= 0 {
		return failedFitness
	}
	miss := math.Abs(math.Log(survivalSec / targetSec))
	return miss * (1.0 - 0.2*quality)
}

// Quality component weights.
const (
	qualityWeightAction    = 0.40
	qualityWeightCrowd     = 0.35
	qualityWeightStability = 0.25

	qualityWarmupWindows = 1   // skip the opening window
	qualityEatsPerWindow = 3.0 // player eats per window that count as lively
)

// computeQuality scores a game ∈ [0, 1]: the player keeps eating, the arena
// stays populated and the enemy count does not swing wildly.
func computeQuality(windows []telemetry.WindowStats) float64 {
	if len(windows) <= qualityWarmupWindows {
		return 0
	}
	valid := windows[qualityWarmupWindows:]

	eats := make([]float64, len(valid))
	enemies := make([]float64, len(valid))
	for i, w := range valid {
		eats[i] = float64(w.PlayerEats)
		enemies[i] = float64(w.Enemies)
	}

	actionScore := 1.0 - math.Exp(-stat.Mean(eats, nil)/qualityEatsPerWindow)

	meanEnemies := stat.Mean(enemies, nil)
	crowdScore := 1.0 - math.Exp(-meanEnemies/10.0)

	stabilityScore := 0.0
	if len(enemies) >= 2 && meanEnemies > 0 {
		cv := stat.PopStdDev(enemies, nil) / meanEnemies
		stabilityScore = math.Exp(-cv * cv)
	}

	quality := qualityWeightAction*actionScore +
		qualityWeightCrowd*crowdScore +
		qualityWeightStability*stabilityScore

	return clamp01(quality)
}

// clamp01 clamps x to [0, 1].
func clamp01(x float64) float64 {
	return min(max(x, 0), 1)
}
