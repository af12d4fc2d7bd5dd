package systems

import "github.com/mlange-42/ark/ecs"

// Neighbor holds a nearby agent with precomputed spatial data.
type Neighbor struct {
	E      ecs.Entity
	DX, DZ float64 // delta from query origin
	DistSq float64
	Radius float64
}

type gridEntry struct {
	e      ecs.Entity
	x, z   float64
	radius float64
}

// SpatialGrid provides neighbor lookups over the bounded arena using
// fixed-size cell buckets. Rebuild it every tick with Clear and Insert.
type SpatialGrid struct {
	cellSize  float64
	cols      int
	rows      int
	halfWidth float64
	cells     [][]gridEntry
}

// NewSpatialGrid creates a grid covering [-halfWidth, halfWidth] on both axes.
func NewSpatialGrid(halfWidth, cellSize float64) *SpatialGrid {
	cols := int(2*halfWidth/cellSize) + 1
	rows := cols

	cells := make([][]gridEntry, cols*rows)
	for i := range cells {
		cells[i] = make([]gridEntry, 0, 8)
	}

	return &SpatialGrid{
		cellSize:  cellSize,
		cols:      cols,
		rows:      rows,
		halfWidth: halfWidth,
		cells:     cells,
	}
}

// Clear removes all agents from the grid.
func (g *SpatialGrid) Clear() {
	for i := range g.cells {
		g.cells[i] = g.cells[i][:0]
	}
}

// Insert adds an agent to the grid at the given horizontal position.
func (g *SpatialGrid) Insert(e ecs.Entity, x, z, radius float64) {
	col, row := g.cellCoords(x, z)
	idx := row*g.cols + col
	g.cells[idx] = append(g.cells[idx], gridEntry{e: e, x: x, z: z, radius: radius})
}

// MaxQueryResults caps the number of neighbors returned by spatial queries.
// This prevents density spikes from causing unbounded work.
const MaxQueryResults = 128

// QueryRadiusInto finds agents within radius of (x, z) and appends them to dst
// (up to MaxQueryResults). Reuse dst across calls to avoid allocations.
func (g *SpatialGrid) QueryRadiusInto(dst []Neighbor, x, z, radius float64, exclude ecs.Entity) []Neighbor {
	minCol, minRow := g.cellCoords(x-radius, z-radius)
	maxCol, maxRow := g.cellCoords(x+radius, z+radius)

	radiusSq := radius * radius

	for row := minRow; row <= maxRow; row++ {
		for col := minCol; col <= maxCol; col++ {
			for _, entry := range g.cells[row*g.cols+col] {
				if entry.e == exclude {
					continue
				}

				dx := entry.x - x
				dz := entry.z - z
				distSq := dx*dx + dz*dz

				if distSq <= radiusSq {
					dst = append(dst, Neighbor{E: entry.e, DX: dx, DZ: dz, DistSq: distSq, Radius: entry.radius})
					if len(dst) >= MaxQueryResults {
						return dst
					}
				}
			}
		}
	}

	return dst
}

// cellCoords returns the clamped cell column and row for a world position.
func (g *SpatialGrid) cellCoords(x, z float64) (col, row int) {
	col = clampInt(int((x+g.halfWidth)/g.cellSize), 0, g.cols-1)
	row = clampInt(int((z+g.halfWidth)/g.cellSize), 0, g.rows-1)
	return col, row
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
