package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error: %v", err)
	}

	if cfg.Arena.HalfWidth <= 0 {
		t.Errorf("half_width = %v, want > 0", cfg.Arena.HalfWidth)
	}
	if cfg.Steering.SeekForce <= cfg.Steering.AvoidForce {
		t.Errorf("seek_force %v should exceed avoid_force %v", cfg.Steering.SeekForce, cfg.Steering.AvoidForce)
	}
	if cfg.Agent.ControlledMaxSpeed <= cfg.Agent.EnemyMaxSpeed {
		t.Errorf("controlled max speed %v should exceed enemy max speed %v", cfg.Agent.ControlledMaxSpeed, cfg.Agent.EnemyMaxSpeed)
	}
	if cfg.Agent.ControlledDamping <= cfg.Agent.EnemyDamping {
		t.Errorf("controlled damping %v should retain more velocity than enemy damping %v", cfg.Agent.ControlledDamping, cfg.Agent.EnemyDamping)
	}
	if len(cfg.PowerUp.Catalog) == 0 {
		t.Error("expected a default power-up catalog")
	}
}

func TestLoadDerived(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	want := math.Max(cfg.Steering.ThreatRadius, cfg.Steering.TargetRadius)
	if cfg.Derived.QueryRadius != want {
		t.Errorf("QueryRadius = %v, want %v", cfg.Derived.QueryRadius, want)
	}
	if cfg.Derived.ArenaWidth != 2*cfg.Arena.HalfWidth {
		t.Errorf("ArenaWidth = %v, want %v", cfg.Derived.ArenaWidth, 2*cfg.Arena.HalfWidth)
	}
	if math.Abs(cfg.Derived.TicksPerSec*cfg.Physics.DT-1) > 1e-9 {
		t.Errorf("TicksPerSec = %v inconsistent with dt %v", cfg.Derived.TicksPerSec, cfg.Physics.DT)
	}
	if cfg.Bookmarks.GiantRadius != cfg.Bands.Huge {
		t.Errorf("giant radius = %v, want bands.huge %v", cfg.Bookmarks.GiantRadius, cfg.Bands.Huge)
	}
	if cfg.Telemetry.BookmarkHistorySize < 3 {
		t.Errorf("bookmark history size = %d, want >= 3", cfg.Telemetry.BookmarkHistorySize)
	}
}

func TestLoadUserOverridesMerge(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := []byte("arena:\n  half_width: 250\nspawn:\n  max_enemies: 5\n  base_max_enemies: 10\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Arena.HalfWidth != 250 {
		t.Errorf("half_width = %v, want 250", cfg.Arena.HalfWidth)
	}
	// Fields absent from the user file keep their defaults.
	if cfg.Arena.InitialEnemies == 0 {
		t.Error("initial_enemies lost its default")
	}
	// An absolute cap below the base cap is raised to the base.
	if cfg.Spawn.MaxEnemies != 10 {
		t.Errorf("max_enemies = %d, want 10", cfg.Spawn.MaxEnemies)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestWriteYAMLRoundtrip(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	cfg.Arena.HalfWidth = 321

	path := filepath.Join(t.TempDir(), "out.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("WriteYAML error: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if loaded.Arena.HalfWidth != 321 {
		t.Errorf("half_width = %v, want 321", loaded.Arena.HalfWidth)
	}
}

func TestCfgPanicsBeforeInit(t *testing.T) {
	saved := global
	global = nil
	defer func() {
		global = saved
		if recover() == nil {
			t.Error("expected panic from Cfg before Init")
		}
	}()
	Cfg()
}
