package arena

import (
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/devour/systems"
	"github.com/pthm-cable/devour/telemetry"
)

// Step advances the simulation by one fixed time step. It is a no-op unless
// the arena is running. Phases always run in the same order.
func (a *Arena) Step() {
	if a.state != StateRunning {
		return
	}

	dt := a.cfg.Physics.DT
	if a.manual != nil {
		a.manual.Advance(time.Duration(dt * float64(time.Second)))
	}
	a.tick++

	a.perf.StartTick()

	a.perf.StartPhase(telemetry.PhaseInput)
	control := a.resolveInput()

	a.perf.StartPhase(telemetry.PhaseAI)
	a.decide()

	a.perf.StartPhase(telemetry.PhaseIntegrate)
	a.integrate(control, dt)

	a.perf.StartPhase(telemetry.PhaseCollisions)
	a.resolveCollisions()

	if a.state == StateRunning {
		a.perf.StartPhase(telemetry.PhasePowerUps)
		a.tickPowerUps()

		a.perf.StartPhase(telemetry.PhaseSpawn)
		a.spawnControl(dt)
	}

	a.perf.StartPhase(telemetry.PhaseTelemetry)
	a.flushTelemetry()

	a.perf.EndTick()
}

// resolveInput takes the pending control force and jump request.
func (a *Arena) resolveInput() r2.Vec {
	force := a.pendingForce
	a.pendingForce = r2.Vec{}

	jump := a.jumpRequested
	a.jumpRequested = false

	e, ok := a.resolve(a.controlled)
	if !ok {
		return r2.Vec{}
	}
	if jump {
		_, _, j, _, _ := a.agents.Get(e)
		systems.StartJump(j, a.motion.JumpSpeed)
	}
	return force
}

// decide runs the steering AI for every AI agent, and for the controlled
// agent when autopilot is on, against positions at the start of the tick.
func (a *Arena) decide() {
	a.grid.Clear()
	query := a.filter.Query()
	for query.Next() {
		pos, _, _, body, _ := query.Get()
		a.grid.Insert(query.Entity(), pos.X, pos.Z, body.Radius)
	}

	clear(a.forces)
	radius := a.steering.QueryRadius()

	query = a.filter.Query()
	for query.Next() {
		e := query.Entity()
		pos, _, _, body, agent := query.Get()
		if agent.Controlled && !a.autopilot {
			continue
		}

		a.neighbors = a.grid.QueryRadiusInto(a.neighbors[:0], pos.X, pos.Z, radius, e)
		d := systems.Decide(body.Radius, a.neighbors, a.steering, a.rng)
		a.forces[e] = d.Force
		if !agent.Controlled {
			a.collector.RecordDecision(d.Mode.String())
		}
	}
}

// integrate moves every agent and applies the arena boundary.
func (a *Arena) integrate(control r2.Vec, dt float64) {
	query := a.filter.Query()
	for query.Next() {
		e := query.Entity()
		pos, vel, jump, body, agent := query.Get()

		force := a.forces[e]
		if agent.Controlled && !a.autopilot {
			force = control
		}

		systems.Integrate(pos, vel, jump, body, agent, force, dt, a.motion)
		systems.ApplyBoundary(pos, vel, a.motion.HalfWidth, a.motion.Bounce)
	}
}

// resolveCollisions checks the controlled agent against every enemy, then
// enemy pairs, in insertion order. Eaten agents are skipped for the rest of
// the pass and removed from the world afterwards.
func (a *Arena) resolveCollisions() {
	a.order = a.order[:0]
	query := a.filter.Query()
	for query.Next() {
		_, _, _, _, agent := query.Get()
		a.order = append(a.order, ordered{e: query.Entity(), seq: agent.Seq})
	}
	sort.Slice(a.order, func(i, j int) bool { return a.order[i].seq < a.order[j].seq })

	eaten := a.eaten[:0]
	for range a.order {
		eaten = append(eaten, false)
	}
	a.eaten = eaten
	defer a.applyRemovals()

	if ctrl, ok := a.resolve(a.controlled); ok {
		cPos, _, _, cBody, cAgent := a.agents.Get(ctrl)

		for i, o := range a.order {
			if o.e == ctrl {
				continue
			}
			pos, _, _, body, agent := a.agents.Get(o.e)
			if !systems.Colliding(*cPos, cBody.Radius, *pos, body.Radius) {
				continue
			}

			switch {
			case systems.CanConsume(cBody, body):
				points := systems.Consume(cBody, body, a.consume)
				a.score += points
				a.recordEat(cAgent.ID, agent.ID, cBody.Radius, true, points)
				eaten[i] = true
				a.removed = append(a.removed, o.e)
			case systems.CanConsume(body, cBody):
				a.gameOver()
				return
			}
		}
	}

	for i := range a.order {
		if eaten[i] {
			continue
		}
		ei := a.order[i].e
		posI, _, _, bodyI, agentI := a.agents.Get(ei)
		if agentI.Controlled {
			continue
		}

		for j := i + 1; j < len(a.order); j++ {
			if eaten[j] {
				continue
			}
			ej := a.order[j].e
			posJ, _, _, bodyJ, agentJ := a.agents.Get(ej)
			if agentJ.Controlled || !systems.Colliding(*posI, bodyI.Radius, *posJ, bodyJ.Radius) {
				continue
			}

			if systems.CanConsume(bodyI, bodyJ) {
				points := systems.Consume(bodyI, bodyJ, a.consume)
				a.recordEat(agentI.ID, agentJ.ID, bodyI.Radius, false, points)
				eaten[j] = true
				a.removed = append(a.removed, ej)
			} else if systems.CanConsume(bodyJ, bodyI) {
				points := systems.Consume(bodyJ, bodyI, a.consume)
				a.recordEat(agentJ.ID, agentI.ID, bodyJ.Radius, false, points)
				eaten[i] = true
				a.removed = append(a.removed, ei)
				break
			}
		}
	}
}

// recordEat updates telemetry and notifies listeners of a consumption. Only
// the controlled agent's eats award points.
func (a *Arena) recordEat(eater, eaten uuid.UUID, eaterRadius float64, byPlayer bool, points int) {
	if !byPlayer {
		points = 0
	}
	a.collector.RecordConsumption(byPlayer, points)
	a.lifetimes.RecordEat(eater, points)
	a.lifetimes.UpdateRadius(eater, eaterRadius)
	a.emitConsumed(eater, eaten, points)
}

// gameOver enters the terminal state.
func (a *Arena) gameOver() {
	a.state = StateGameOver
	a.collector.RecordGameOver()

	attrs := []any{"score", a.score, "tick", a.tick}
	if stats := a.lifetimes.Get(a.controlled); stats != nil {
		attrs = append(attrs, "lifetime", stats)
	}
	slog.Info("game over", attrs...)

	a.emitGameOver(a.score)
}

// tickPowerUps expires effects and animates size targets.
func (a *Arena) tickPowerUps() {
	for _, exp := range a.powerups.Tick(a.target) {
		a.collector.RecordExpiry()
		a.emitExpired(exp.AgentID, exp.Kind)
	}

	rate := a.cfg.PowerUp.GrowthRate
	tol := a.cfg.PowerUp.Tolerance
	query := a.filter.Query()
	for query.Next() {
		_, _, _, body, agent := query.Get()
		systems.AnimateSize(body, rate, tol)
		a.lifetimes.UpdateRadius(agent.ID, body.Radius)
	}
}

// spawnControl admits one AI agent when the score-dependent cooldown has
// elapsed and the population is under the score-dependent cap.
func (a *Arena) spawnControl(dt float64) {
	a.sinceSpawn += dt
	if a.enemies >= systems.MaxEnemies(a.score, a.spawn) {
		return
	}
	if a.sinceSpawn <= systems.SpawnCooldown(a.score, a.spawn) {
		return
	}

	a.spawnEnemy()
	a.sinceSpawn = 0
	a.collector.RecordSpawn()
}
