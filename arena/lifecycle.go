package arena

import (
	"log/slog"

	"github.com/google/uuid"
	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/devour/components"
	"github.com/pthm-cable/devour/systems"
)

// populate creates the controlled agent at the centre and the initial AI
// population around it.
func (a *Arena) populate() {
	cfg := a.cfg

	a.addAgent(cfg.Arena.PlayerName, true, r2.Vec{}, cfg.Agent.ControlledRadius)
	for i := 0; i < cfg.Arena.InitialEnemies; i++ {
		a.spawnEnemy()
	}
}

// addAgent creates an agent resting on the ground at pos.
func (a *Arena) addAgent(name string, controlled bool, pos r2.Vec, radius float64) uuid.UUID {
	p := components.Position{X: pos.X, Y: radius, Z: pos.Y}
	vel := components.Velocity{}
	jump := components.Jump{}
	body := components.NewBody(radius)
	agent := components.NewAgent(a.nextSeq, name, controlled)
	a.nextSeq++

	e := a.agents.NewEntity(&p, &vel, &jump, &body, &agent)
	a.index[agent.ID] = e
	a.lifetimes.Register(agent.ID, name, controlled, a.tick, radius)

	if controlled {
		a.controlled = agent.ID
		a.hasControlled = true
	} else {
		a.enemies++
	}
	return agent.ID
}

// spawnEnemy admits one AI agent away from the controlled agent.
func (a *Arena) spawnEnemy() uuid.UUID {
	radius := systems.EnemyRadius(a.rng, a.spawn)

	avoid := r2.Vec{}
	safe := 0.0
	if e, ok := a.resolve(a.controlled); ok && a.hasControlled {
		pos, _, _, body, _ := a.agents.Get(e)
		avoid = pos.Horizontal()
		safe = a.spawn.SafeDistance(body.Radius)
	}

	pos := systems.SpawnPosition(a.rng, a.cfg.Arena.HalfWidth, radius, avoid, safe, a.spawn.Attempts)
	name := a.cfg.Names[a.rng.Intn(len(a.cfg.Names))]
	return a.addAgent(name, false, pos, radius)
}

// removeAgent destroys an agent and everything tracked for it. Must not be
// called while a query is open.
func (a *Arena) removeAgent(e ecs.Entity) {
	if !a.world.Alive(e) {
		return
	}
	_, _, _, _, agent := a.agents.Get(e)
	id := agent.ID
	controlled := agent.Controlled

	a.powerups.Forget(id)
	if stats := a.lifetimes.Remove(id, a.tick, a.cfg.Physics.DT); stats != nil {
		a.hallOfFame.Consider(stats)
	}
	delete(a.index, id)
	delete(a.forces, e)
	a.world.RemoveEntity(e)

	if controlled {
		a.hasControlled = false
	} else {
		a.enemies--
	}
}

// applyRemovals destroys the agents marked during the collision pass.
func (a *Arena) applyRemovals() {
	for _, e := range a.removed {
		a.removeAgent(e)
	}
	a.removed = a.removed[:0]
}

// Restart clears every agent, resets score, timers and effects, re-seeds the
// initial population and resumes running. Valid from any state.
func (a *Arena) Restart() {
	finalScore := a.score

	var all []ecs.Entity
	query := a.filter.Query()
	for query.Next() {
		all = append(all, query.Entity())
	}
	for _, e := range all {
		a.removeAgent(e)
	}

	a.writeHallOfFame()

	clear(a.index)
	clear(a.forces)
	a.removed = a.removed[:0]
	a.powerups.Reset()
	a.lifetimes.Clear()
	a.clock.Reset()

	a.state = StateRunning
	a.tick = 0
	a.score = 0
	a.enemies = 0
	a.sinceSpawn = 0
	a.pendingForce = r2.Vec{}
	a.jumpRequested = false
	a.collector.Reset(0)
	a.bookmarks.Reset()

	a.populate()
	slog.Info("arena restarted", "previous_score", finalScore, "enemies", a.enemies)
}

// Finish ends the run: every remaining agent's lifetime is offered to the
// hall of fame and the hall is written to the output directory. The arena
// is empty afterwards until Restart.
func (a *Arena) Finish() {
	var all []ecs.Entity
	query := a.filter.Query()
	for query.Next() {
		all = append(all, query.Entity())
	}
	for _, e := range all {
		a.removeAgent(e)
	}
	a.writeHallOfFame()
}

func (a *Arena) writeHallOfFame() {
	if err := a.output.WriteHallOfFame(a.hallOfFame); err != nil {
		slog.Error("failed to write hall of fame", "error", err)
	}
}
