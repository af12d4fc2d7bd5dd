package systems

import (
	"testing"

	"github.com/mlange-42/ark/ecs"
)

type gridAgent struct {
	x, z, r float64
}

func newTestWorld(t *testing.T, agents []gridAgent) (*ecs.World, []ecs.Entity) {
	t.Helper()
	world := ecs.NewWorld()
	mapper := ecs.NewMap1[gridAgent](world)
	entities := make([]ecs.Entity, len(agents))
	for i := range agents {
		entities[i] = mapper.NewEntity(&agents[i])
	}
	return world, entities
}

func TestSpatialGridQueryRadius(t *testing.T) {
	agents := []gridAgent{
		{0, 0, 5},
		{30, 0, 6},
		{0, -45, 7},
		{200, 200, 8},
		{-490, -490, 9},
	}
	_, entities := newTestWorld(t, agents)

	grid := NewSpatialGrid(500, 100)
	for i, a := range agents {
		grid.Insert(entities[i], a.x, a.z, a.r)
	}

	got := grid.QueryRadiusInto(nil, 0, 0, 50, entities[0])
	if len(got) != 2 {
		t.Fatalf("got %d neighbors, want 2", len(got))
	}
	for _, n := range got {
		if n.E == entities[0] {
			t.Error("query origin should be excluded")
		}
		if n.E == entities[1] && (n.DX != 30 || n.DZ != 0 || n.DistSq != 900 || n.Radius != 6) {
			t.Errorf("unexpected neighbor data %+v", n)
		}
	}
}

func TestSpatialGridEdgesAndClear(t *testing.T) {
	agents := []gridAgent{{-499, -499, 3}, {499, 499, 3}, {520, 0, 3}}
	_, entities := newTestWorld(t, agents)

	grid := NewSpatialGrid(500, 100)
	for i, a := range agents {
		grid.Insert(entities[i], a.x, a.z, a.r)
	}

	if got := grid.QueryRadiusInto(nil, -500, -500, 5, ecs.Entity{}); len(got) != 1 {
		t.Errorf("corner query got %d, want 1", len(got))
	}
	// Out-of-bounds positions clamp into the edge cells.
	if got := grid.QueryRadiusInto(nil, 500, 0, 25, ecs.Entity{}); len(got) != 1 {
		t.Errorf("edge query got %d, want 1", len(got))
	}

	grid.Clear()
	if got := grid.QueryRadiusInto(nil, 0, 0, 1000, ecs.Entity{}); len(got) != 0 {
		t.Errorf("cleared grid returned %d neighbors", len(got))
	}
}
