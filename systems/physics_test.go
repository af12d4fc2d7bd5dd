package systems

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/devour/components"
)

func testMotionParams() MotionParams {
	return MotionParams{
		ControlledMaxSpeed: 240,
		EnemyMaxSpeed:      180,
		ControlledDamping:  0.96,
		EnemyDamping:       0.92,
		Gravity:            240,
		JumpSpeed:          90,
		HalfWidth:          500,
		Bounce:             -0.8,
	}
}

type testAgent struct {
	pos   components.Position
	vel   components.Velocity
	jump  components.Jump
	body  components.Body
	agent components.Agent
}

func newTestAgent(radius float64, controlled bool) *testAgent {
	return &testAgent{
		pos:   components.Position{Y: radius},
		body:  components.NewBody(radius),
		agent: components.NewAgent(0, "t", controlled),
	}
}

func (a *testAgent) integrate(force r2.Vec, dt float64, p MotionParams) {
	Integrate(&a.pos, &a.vel, &a.jump, &a.body, &a.agent, force, dt, p)
}

func TestIntegrate_ClampsToMaxSpeed(t *testing.T) {
	p := testMotionParams()
	a := newTestAgent(10, false)

	a.integrate(r2.Vec{X: 10000}, 1.0/60, p)

	speed := r2.Norm(a.vel.Vec())
	want := p.EnemyMaxSpeed * p.EnemyDamping
	if math.Abs(speed-want) > 1e-9 {
		t.Errorf("speed = %v, want %v", speed, want)
	}
}

func TestIntegrate_ControlledFasterAtEqualBoost(t *testing.T) {
	p := testMotionParams()
	player := newTestAgent(10, true)
	enemy := newTestAgent(10, false)

	for i := 0; i < 120; i++ {
		player.integrate(r2.Vec{X: 500}, 1.0/60, p)
		enemy.integrate(r2.Vec{X: 500}, 1.0/60, p)
	}

	if player.pos.X <= enemy.pos.X {
		t.Errorf("controlled agent x=%v should outrun AI agent x=%v", player.pos.X, enemy.pos.X)
	}
}

func TestIntegrate_SpeedMultiplierRaisesCap(t *testing.T) {
	p := testMotionParams()
	a := newTestAgent(10, false)
	a.agent.SpeedMultiplier = 2

	a.integrate(r2.Vec{X: 10000}, 1.0/60, p)

	want := 2 * p.EnemyMaxSpeed * p.EnemyDamping
	if got := r2.Norm(a.vel.Vec()); math.Abs(got-want) > 1e-9 {
		t.Errorf("boosted speed = %v, want %v", got, want)
	}
}

func TestIntegrate_DampingDiffersByControl(t *testing.T) {
	p := testMotionParams()
	player := newTestAgent(10, true)
	enemy := newTestAgent(10, false)
	player.vel = components.Velocity{X: 100}
	enemy.vel = components.Velocity{X: 100}

	player.integrate(r2.Vec{}, 1.0/60, p)
	enemy.integrate(r2.Vec{}, 1.0/60, p)

	if math.Abs(player.vel.X-96) > 1e-9 {
		t.Errorf("controlled vel = %v, want 96", player.vel.X)
	}
	if math.Abs(enemy.vel.X-92) > 1e-9 {
		t.Errorf("enemy vel = %v, want 92", enemy.vel.X)
	}
}

func TestIntegrate_JumpReturnsToRest(t *testing.T) {
	p := testMotionParams()
	a := newTestAgent(10, true)
	a.vel = components.Velocity{X: 50}

	if !StartJump(&a.jump, p.JumpSpeed) {
		t.Fatal("StartJump should succeed on the ground")
	}
	if StartJump(&a.jump, p.JumpSpeed) {
		t.Fatal("StartJump should fail while airborne")
	}

	peak := a.pos.Y
	landed := false
	for i := 0; i < 600; i++ {
		a.integrate(r2.Vec{}, 1.0/60, p)
		peak = math.Max(peak, a.pos.Y)
		if !a.jump.Active {
			landed = true
			break
		}
	}

	if !landed {
		t.Fatal("jump never landed")
	}
	if peak <= 10 {
		t.Errorf("peak height %v should exceed rest height", peak)
	}
	if a.pos.Y != 10 || a.jump.VY != 0 {
		t.Errorf("after landing y=%v vy=%v, want y=10 vy=0", a.pos.Y, a.jump.VY)
	}
	if a.body.Radius != 10 {
		t.Errorf("jump changed radius to %v", a.body.Radius)
	}
}

func TestIntegrate_JumpDoesNotAffectHorizontal(t *testing.T) {
	p := testMotionParams()
	ground := newTestAgent(10, false)
	air := newTestAgent(10, false)
	StartJump(&air.jump, p.JumpSpeed)

	for i := 0; i < 30; i++ {
		ground.integrate(r2.Vec{X: 3, Y: -2}, 1.0/60, p)
		air.integrate(r2.Vec{X: 3, Y: -2}, 1.0/60, p)
	}

	if ground.pos.X != air.pos.X || ground.pos.Z != air.pos.Z {
		t.Errorf("horizontal drift differs: ground=(%v,%v) air=(%v,%v)", ground.pos.X, ground.pos.Z, air.pos.X, air.pos.Z)
	}
}

func TestApplyBoundary_ReflectsPastPositiveEdge(t *testing.T) {
	p := testMotionParams()
	p.EnemyMaxSpeed = 1000
	p.EnemyDamping = 1
	a := newTestAgent(10, false)
	a.pos.X = p.HalfWidth - 1
	a.vel.X = 120

	a.integrate(r2.Vec{}, 1.0/60, p)
	ApplyBoundary(&a.pos, &a.vel, p.HalfWidth, p.Bounce)

	if a.pos.X != p.HalfWidth {
		t.Errorf("x = %v, want %v", a.pos.X, p.HalfWidth)
	}
	if math.Abs(a.vel.X-(-96)) > 1e-9 {
		t.Errorf("vel.x = %v, want -96", a.vel.X)
	}
}

func TestApplyBoundary(t *testing.T) {
	tests := []struct {
		name    string
		pos     components.Position
		vel     components.Velocity
		wantPos components.Position
		wantVel components.Velocity
	}{
		{"inside untouched", components.Position{X: 10, Z: -10}, components.Velocity{X: 5, Z: 5}, components.Position{X: 10, Z: -10}, components.Velocity{X: 5, Z: 5}},
		{"negative x", components.Position{X: -120}, components.Velocity{X: -50}, components.Position{X: -100}, components.Velocity{X: 40}},
		{"positive z", components.Position{Z: 130}, components.Velocity{Z: 10}, components.Position{Z: 100}, components.Velocity{Z: -8}},
		{"corner", components.Position{X: 101, Z: -101}, components.Velocity{X: 10, Z: -10}, components.Position{X: 100, Z: -100}, components.Velocity{X: -8, Z: 8}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, vel := tt.pos, tt.vel
			ApplyBoundary(&pos, &vel, 100, -0.8)
			if pos != tt.wantPos {
				t.Errorf("pos = %+v, want %+v", pos, tt.wantPos)
			}
			if math.Abs(vel.X-tt.wantVel.X) > 1e-9 || math.Abs(vel.Z-tt.wantVel.Z) > 1e-9 {
				t.Errorf("vel = %+v, want %+v", vel, tt.wantVel)
			}
		})
	}
}
