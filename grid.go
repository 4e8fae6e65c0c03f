package rrt

import (
	"math"

	"github.com/golang/geo/r3"
)

// Lethal is the default cost at or above which a cell is considered an
// obstacle. Grids may carry any cost in [0, 255]; only cost >= Lethal makes
// a cell impassable.
const Lethal = 253

// World is a point in the host's metric world frame. It is a thin alias
// over r3.Vector (Z is always 0 for this 2D planner) so the core speaks the
// same geometry vocabulary the rest of the pack's motion-planning code does.
type World = r3.Vector

// Grid is an immutable occupancy-cost snapshot: dimensions, resolution,
// origin, and a flat cost array. A Planner never mutates a Grid beyond the
// optional Outline() call made once at plan() entry.
type Grid struct {
	NX, NY     int
	Resolution float64
	OriginX    float64
	OriginY    float64
	Cost       []uint8
}

// NewGrid builds a Grid, allocating an all-zero (free) cost array.
func NewGrid(nx, ny int, resolution, originX, originY float64) *Grid {
	return &Grid{
		NX:         nx,
		NY:         ny,
		Resolution: resolution,
		OriginX:    originX,
		OriginY:    originY,
		Cost:       make([]uint8, nx*ny),
	}
}

// InBounds reports whether (x, y) is a valid map cell.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.NX && y < g.NY
}

// GridToIndex converts a map cell to its flat cell index. Total bijection
// on [0, NX) x [0, NY).
func (g *Grid) GridToIndex(x, y int) int {
	return y*g.NX + x
}

// IndexToGrid is the inverse of GridToIndex.
func (g *Grid) IndexToGrid(id int) (x, y int) {
	return id % g.NX, id / g.NX
}

// CostAt returns the cost at cell (x, y). Off-grid cells read as Lethal.
func (g *Grid) CostAt(x, y int) uint8 {
	if !g.InBounds(x, y) {
		return Lethal
	}
	return g.Cost[g.GridToIndex(x, y)]
}

// IsLethal reports whether (x, y) is at or above the lethal threshold.
func (g *Grid) IsLethal(x, y int) bool {
	return g.CostAt(x, y) >= Lethal
}

// WorldToMap converts a world point to map cell indices by floor
// conversion against the grid's origin and resolution. ok is false when the
// resulting cell falls off the grid.
func (g *Grid) WorldToMap(w World) (mx, my int, ok bool) {
	mx = int(math.Floor((w.X - g.OriginX) / g.Resolution))
	my = int(math.Floor((w.Y - g.OriginY) / g.Resolution))
	return mx, my, g.InBounds(mx, my)
}

// MapToWorld converts map cell indices to the world-frame coordinate of the
// cell's center.
func (g *Grid) MapToWorld(mx, my int) World {
	return World{
		X: g.OriginX + (float64(mx)+0.5)*g.Resolution,
		Y: g.OriginY + (float64(my)+0.5)*g.Resolution,
	}
}

// Outline paints the outer border row/column lethal, in place. Intended to
// be called once, at plan() entry, when the host's outline_map option is
// set.
func (g *Grid) Outline() {
	for x := 0; x < g.NX; x++ {
		g.Cost[g.GridToIndex(x, 0)] = Lethal
		g.Cost[g.GridToIndex(x, g.NY-1)] = Lethal
	}
	for y := 0; y < g.NY; y++ {
		g.Cost[g.GridToIndex(0, y)] = Lethal
		g.Cost[g.GridToIndex(g.NX-1, y)] = Lethal
	}
}

// Clone returns a deep copy of the grid so a planner's snapshot can be
// mutated (by Outline) without affecting the host's live grid.
func (g *Grid) Clone() *Grid {
	cp := *g
	cp.Cost = make([]uint8, len(g.Cost))
	copy(cp.Cost, g.Cost)
	return &cp
}

// EdgeCost is the traversal cost of the straight segment between two map
// cells: Euclidean distance scaled by (1 + factor*averageNormalizedCost),
// where averageNormalizedCost is the mean of the two endpoints' cost values
// normalized to [0, 1]. factor is obstacle_factor (spec.md §3/§6): at
// factor=0 this degenerates to pure distance; near factor=1, cells with
// high (but sub-lethal) cost become proportionally more expensive to route
// through, nudging RRT*-family rewiring away from grazing high-cost cells
// even when they remain technically passable.
func (g *Grid) EdgeCost(factor float64, ax, ay, bx, by int) float64 {
	d := Dist(ax, ay, bx, by)
	avgCost := (float64(g.CostAt(ax, ay)) + float64(g.CostAt(bx, by))) / (2 * 255.0)
	return d * (1 + factor*avgCost)
}

// Dist is the Euclidean distance, in cells, between two map cells.
func Dist(ax, ay, bx, by int) float64 {
	dx := float64(bx - ax)
	dy := float64(by - ay)
	return math.Hypot(dx, dy)
}

// DistF is Dist for float-valued cell coordinates, used by the ellipse and
// steering math which interpolate between cells before rounding.
func DistF(ax, ay, bx, by float64) float64 {
	return math.Hypot(bx-ax, by-ay)
}

// Angle is atan2(by-ay, bx-ax), the bearing from a to b.
func Angle(ax, ay, bx, by int) float64 {
	return math.Atan2(float64(by-ay), float64(bx-ax))
}

// LineOfSight rasterizes the segment a-b with a Bresenham walk and reports
// whether every cell it crosses, including both endpoints, is non-lethal.
func (g *Grid) LineOfSight(ax, ay, bx, by int) bool {
	if !g.InBounds(ax, ay) || !g.InBounds(bx, by) {
		return false
	}
	if g.IsLethal(ax, ay) || g.IsLethal(bx, by) {
		return false
	}

	dx := abs(bx - ax)
	dy := -abs(by - ay)
	sx := 1
	if ax >= bx {
		sx = -1
	}
	sy := 1
	if ay >= by {
		sy = -1
	}
	err := dx + dy

	x, y := ax, ay
	for {
		if g.IsLethal(x, y) {
			return false
		}
		if x == bx && y == by {
			return true
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
