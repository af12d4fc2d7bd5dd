// Package fx holds presentation-only feedback: short-lived particle bursts
// spawned from arena events. It never touches simulation state.
package fx

import (
	"math"
	"math/rand"
)

// ParticleType identifies the type of effect particle.
type ParticleType uint8

const (
	ParticleEat ParticleType = iota
	ParticlePowerUp
	ParticleGameOver
)

// Particle is a single feedback particle in arena coordinates.
type Particle struct {
	X, Z       float64
	VelX, VelZ float64
	Life       int32
	MaxLife    int32
	Type       ParticleType
	Size       float64
}

// LifeRatio returns the remaining fraction of the particle's life.
func (p Particle) LifeRatio() float64 {
	if p.MaxLife <= 0 {
		return 0
	}
	return float64(p.Life) / float64(p.MaxLife)
}

// ParticleSystem manages effect particles for visual feedback.
type ParticleSystem struct {
	Particles    []Particle
	maxParticles int
	rng          *rand.Rand
}

// NewParticleSystem creates a particle system holding at most maxParticles.
func NewParticleSystem(maxParticles int, rng *rand.Rand) *ParticleSystem {
	return &ParticleSystem{
		Particles:    make([]Particle, 0, maxParticles),
		maxParticles: maxParticles,
		rng:          rng,
	}
}

// Update advances every particle one frame and drops expired ones.
func (s *ParticleSystem) Update() {
	alive := 0
	for i := range s.Particles {
		p := &s.Particles[i]

		p.Life--
		if p.Life <= 0 {
			continue
		}

		// Power-up sparkles rise, everything else just drags.
		if p.Type == ParticlePowerUp {
			p.VelZ -= 0.02
		}

		p.VelX *= 0.95
		p.VelZ *= 0.95

		p.X += p.VelX
		p.Z += p.VelZ

		s.Particles[alive] = s.Particles[i]
		alive++
	}
	s.Particles = s.Particles[:alive]
}

// EmitBurst emits a radial burst at (x, z) sized to the given radius.
func (s *ParticleSystem) EmitBurst(x, z, radius float64, ptype ParticleType) {
	count := 8 + int(math.Min(radius, 24)/2)
	if ptype == ParticleGameOver {
		count *= 2
	}
	for i := 0; i < count; i++ {
		s.emit(x, z, radius, ptype)
	}
}

func (s *ParticleSystem) emit(x, z, radius float64, ptype ParticleType) {
	if len(s.Particles) >= s.maxParticles {
		return
	}

	angle := s.rng.Float64() * 2 * math.Pi
	speed := 0.5 + s.rng.Float64()*1.0
	if ptype == ParticleGameOver {
		speed *= 2
	}
	life := int32(30 + s.rng.Intn(30))

	s.Particles = append(s.Particles, Particle{
		X:       x + math.Cos(angle)*radius*0.5,
		Z:       z + math.Sin(angle)*radius*0.5,
		VelX:    math.Cos(angle) * speed,
		VelZ:    math.Sin(angle) * speed,
		Life:    life,
		MaxLife: life,
		Type:    ptype,
		Size:    1.5 + s.rng.Float64()*1.5,
	})
}

// Count returns the current number of active particles.
func (s *ParticleSystem) Count() int {
	return len(s.Particles)
}

// Clear drops all particles.
func (s *ParticleSystem) Clear() {
	s.Particles = s.Particles[:0]
}
