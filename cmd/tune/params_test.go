package main

import (
	"math"
	"testing"

	"github.com/pthm-cable/devour/config"
)

func TestParamVectorRoundtrip(t *testing.T) {
	pv := NewParamVector()

	raw := pv.DefaultVector()
	back := pv.Denormalize(pv.Normalize(raw))
	for i := range raw {
		if math.Abs(back[i]-raw[i]) > 1e-9 {
			t.Errorf("%s: roundtrip %f -> %f", pv.Specs[i].Name, raw[i], back[i])
		}
	}
}

func TestParamSpecsValid(t *testing.T) {
	pv := NewParamVector()

	if pv.Dim() != len(fields(&config.Config{})) {
		t.Fatalf("Dim() = %d, fields = %d", pv.Dim(), len(fields(&config.Config{})))
	}
	for _, spec := range pv.Specs {
		if spec.Min >= spec.Max {
			t.Errorf("%s: min %f >= max %f", spec.Name, spec.Min, spec.Max)
		}
		if spec.Default < spec.Min || spec.Default > spec.Max {
			t.Errorf("%s: default %f outside [%f, %f]", spec.Name, spec.Default, spec.Min, spec.Max)
		}
	}
}

func TestDefaultsMatchConfig(t *testing.T) {
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	pv := NewParamVector()

	got := pv.ExtractFromConfig(cfg)
	for i, spec := range pv.Specs {
		if got[i] != spec.Default {
			t.Errorf("%s: config default %f, param default %f", spec.Path, got[i], spec.Default)
		}
	}
}

func TestApplyToConfigClamps(t *testing.T) {
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	pv := NewParamVector()

	values := pv.DefaultVector()
	values[0] = -1000 // threat_radius below min
	values[5] = 1e9   // enemy_max_speed above max
	pv.ApplyToConfig(cfg, values)

	if cfg.Steering.ThreatRadius != pv.Specs[0].Min {
		t.Errorf("threat_radius = %f, want %f", cfg.Steering.ThreatRadius, pv.Specs[0].Min)
	}
	if cfg.Agent.EnemyMaxSpeed != pv.Specs[5].Max {
		t.Errorf("enemy_max_speed = %f, want %f", cfg.Agent.EnemyMaxSpeed, pv.Specs[5].Max)
	}
	want := max(cfg.Steering.ThreatRadius, cfg.Steering.TargetRadius)
	if cfg.Derived.QueryRadius != want {
		t.Errorf("derived query radius = %f, want %f", cfg.Derived.QueryRadius, want)
	}
}

func TestApplyToConfigKeepsRadiusRange(t *testing.T) {
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	cfg.Agent.EnemyRadiusMin = 20
	pv := NewParamVector()

	values := pv.DefaultVector()
	values[8] = 12 // enemy_radius_max
	pv.ApplyToConfig(cfg, values)

	if cfg.Agent.EnemyRadiusMin > cfg.Agent.EnemyRadiusMax {
		t.Errorf("radius min %f > max %f", cfg.Agent.EnemyRadiusMin, cfg.Agent.EnemyRadiusMax)
	}
}
