package fx

import (
	"math/rand"
	"testing"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/devour/arena"
	"github.com/pthm-cable/devour/powerup"
)

func TestParticlesExpire(t *testing.T) {
	ps := NewParticleSystem(100, rand.New(rand.NewSource(1)))
	ps.EmitBurst(0, 0, 10, ParticleEat)

	if ps.Count() == 0 {
		t.Fatal("expected particles after burst")
	}

	// Max life is under 60 frames.
	for i := 0; i < 60; i++ {
		ps.Update()
	}
	if ps.Count() != 0 {
		t.Errorf("expected all particles expired, %d left", ps.Count())
	}
}

func TestParticleCap(t *testing.T) {
	ps := NewParticleSystem(10, rand.New(rand.NewSource(1)))
	for i := 0; i < 5; i++ {
		ps.EmitBurst(0, 0, 20, ParticleGameOver)
	}
	if ps.Count() != 10 {
		t.Errorf("expected count capped at 10, got %d", ps.Count())
	}

	ps.Clear()
	if ps.Count() != 0 {
		t.Errorf("expected empty after Clear, got %d", ps.Count())
	}
}

func TestParticlesMoveOutward(t *testing.T) {
	ps := NewParticleSystem(100, rand.New(rand.NewSource(7)))
	ps.EmitBurst(50, 50, 0, ParticleEat)

	start := make([]float64, ps.Count())
	for i, p := range ps.Particles {
		start[i] = (p.X-50)*(p.X-50) + (p.Z-50)*(p.Z-50)
	}
	ps.Update()
	for i, p := range ps.Particles {
		d := (p.X-50)*(p.X-50) + (p.Z-50)*(p.Z-50)
		if d <= start[i] {
			t.Errorf("particle %d did not move outward: %v -> %v", i, start[i], d)
		}
	}
}

func TestFeedbackBurstsAtEatenPosition(t *testing.T) {
	ps := NewParticleSystem(100, rand.New(rand.NewSource(1)))
	f := NewFeedback(ps)

	player := uuid.New()
	snack := uuid.New()
	f.Observe([]arena.AgentSnapshot{
		{ID: player, Position: r3.Vec{X: 0, Y: 15, Z: 0}, Radius: 15, Controlled: true},
		{ID: snack, Position: r3.Vec{X: 200, Y: 5, Z: -100}, Radius: 5},
	})

	f.OnConsumed(player, snack, 50)
	if f.Eats() != 1 {
		t.Errorf("expected 1 eat, got %d", f.Eats())
	}
	if ps.Count() == 0 {
		t.Fatal("expected a burst")
	}
	for _, p := range ps.Particles {
		if p.X < 190 || p.X > 210 || p.Z < -110 || p.Z > -90 {
			t.Fatalf("particle at (%v, %v) is not near the eaten agent", p.X, p.Z)
		}
		if p.Type != ParticleEat {
			t.Fatalf("unexpected particle type %v", p.Type)
		}
	}
}

func TestFeedbackIgnoresUnknownAgents(t *testing.T) {
	ps := NewParticleSystem(100, rand.New(rand.NewSource(1)))
	f := NewFeedback(ps)

	f.OnConsumed(uuid.New(), uuid.New(), 10)
	f.OnPowerUpGranted(uuid.New(), powerup.KindSpeed)
	f.OnGameOver(0)

	if ps.Count() != 0 {
		t.Errorf("expected no particles for unseen agents, got %d", ps.Count())
	}
}

func TestFeedbackIsListener(t *testing.T) {
	var _ arena.Listener = (*Feedback)(nil)
}
