package main

import (
	"math"
	"testing"

	"github.com/pthm-cable/devour/config"
	"github.com/pthm-cable/devour/telemetry"
)

func TestComputeFitness(t *testing.T) {
	tests := []struct {
		name     string
		survival float64
		quality  float64
		want     float64
	}{
		{"on target", 120, 0, 0},
		{"double target", 240, 0, math.Log(2)},
		{"half target", 60, 0, math.Log(2)},
		{"quality discount", 240, 1, 0.8 * math.Log(2)},
		{"never ran", 0, 1, failedFitness},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := computeFitness(tt.survival, 120, tt.quality)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("computeFitness(%v, 120, %v) = %v, want %v", tt.survival, tt.quality, got, tt.want)
			}
		})
	}
}

func TestComputeQuality(t *testing.T) {
	if q := computeQuality(nil); q != 0 {
		t.Errorf("no windows: quality %f, want 0", q)
	}

	idle := []telemetry.WindowStats{{}, {Enemies: 0}, {Enemies: 0}}
	busy := []telemetry.WindowStats{{}, {Enemies: 20, PlayerEats: 5}, {Enemies: 20, PlayerEats: 5}}

	qi, qb := computeQuality(idle), computeQuality(busy)
	if qi != 0 {
		t.Errorf("idle arena quality = %f, want 0", qi)
	}
	if qb <= qi || qb > 1 {
		t.Errorf("busy arena quality = %f, want in (%f, 1]", qb, qi)
	}

	swinging := []telemetry.WindowStats{{}, {Enemies: 2, PlayerEats: 5}, {Enemies: 38, PlayerEats: 5}}
	if qs := computeQuality(swinging); qs >= qb {
		t.Errorf("unstable arena quality %f should be below stable %f", qs, qb)
	}
}

func TestEvaluateRunsEverySeed(t *testing.T) {
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	pv := NewParamVector()
	fe := NewFitnessEvaluator(pv, 120, 1, []int64{1, 2}, cfg)

	fitness := fe.Evaluate(pv.DefaultVector())
	if math.IsNaN(fitness) || fitness >= failedFitness {
		t.Fatalf("Evaluate = %f", fitness)
	}

	survival, _ := fe.Last()
	if survival <= 0 || survival > 120*cfg.Physics.DT+1e-9 {
		t.Errorf("mean survival %f outside (0, %f]", survival, 120*cfg.Physics.DT)
	}
	if fe.BestHallOfFame() == nil {
		t.Error("expected a hall of fame from the best run")
	}
	if cfg.Steering.ThreatRadius != pv.Specs[0].Default {
		t.Error("Evaluate modified the base config")
	}
}
