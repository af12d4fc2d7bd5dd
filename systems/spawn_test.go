package systems

import (
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
)

func testSpawnParams() SpawnParams {
	return SpawnParams{
		BaseCooldown:      3,
		MinCooldown:       0.5,
		CooldownPerPoint:  0.002,
		BaseMaxEnemies:    15,
		MaxEnemies:        60,
		PointsPerEnemy:    100,
		SafeRadius:        150,
		SafeRadiusPerSize: 3,
		Attempts:          12,
		EnemyRadiusMin:    4,
		EnemyRadiusMax:    24,
	}
}

func TestMaxEnemies_MonotonicAndBounded(t *testing.T) {
	p := testSpawnParams()
	prev := MaxEnemies(0, p)
	if prev != p.BaseMaxEnemies {
		t.Errorf("MaxEnemies(0) = %d, want %d", prev, p.BaseMaxEnemies)
	}
	for score := 1; score <= 100000; score += 37 {
		got := MaxEnemies(score, p)
		if got < prev {
			t.Fatalf("MaxEnemies(%d) = %d decreased from %d", score, got, prev)
		}
		if got > p.MaxEnemies {
			t.Fatalf("MaxEnemies(%d) = %d exceeds cap %d", score, got, p.MaxEnemies)
		}
		prev = got
	}
	if prev != p.MaxEnemies {
		t.Errorf("cap not reached: %d", prev)
	}
}

func TestSpawnCooldown(t *testing.T) {
	p := testSpawnParams()
	tests := []struct {
		score int
		want  float64
	}{
		{-500, 3},
		{0, 3},
		{500, 2},
		{1250, 0.5},
		{1000000, 0.5},
	}
	for _, tt := range tests {
		if got := SpawnCooldown(tt.score, p); got < tt.want-1e-9 || got > tt.want+1e-9 {
			t.Errorf("SpawnCooldown(%d) = %v, want %v", tt.score, got, tt.want)
		}
	}
}

func TestSpawnPosition_AvoidsControlledAgent(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	avoid := r2.Vec{X: 10, Y: -20}
	for i := 0; i < 500; i++ {
		pos := SpawnPosition(rng, 500, 10, avoid, 200, 12)
		if pos.X < -490 || pos.X > 490 || pos.Y < -490 || pos.Y > 490 {
			t.Fatalf("spawn %+v outside arena margin", pos)
		}
		if r2.Norm(r2.Sub(pos, avoid)) < 200 {
			t.Fatalf("spawn %+v inside safe radius", pos)
		}
	}
}

func TestSpawnPosition_FallsBackToFarthest(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	// Safe radius larger than the arena diagonal: no candidate qualifies.
	pos := SpawnPosition(rng, 100, 0, r2.Vec{}, 1000, 8)
	if pos.X < -100 || pos.X > 100 || pos.Y < -100 || pos.Y > 100 {
		t.Errorf("fallback %+v outside arena", pos)
	}
}

func TestEnemyRadiusInRange(t *testing.T) {
	p := testSpawnParams()
	rng := rand.New(rand.NewSource(9))
	for i := 0; i < 1000; i++ {
		r := EnemyRadius(rng, p)
		if r < p.EnemyRadiusMin || r > p.EnemyRadiusMax {
			t.Fatalf("radius %v outside [%v, %v]", r, p.EnemyRadiusMin, p.EnemyRadiusMax)
		}
	}
}

func TestSafeDistance(t *testing.T) {
	p := testSpawnParams()
	if got := p.SafeDistance(15); got != 195 {
		t.Errorf("SafeDistance(15) = %v, want 195", got)
	}
}
