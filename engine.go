package rrt

import (
	"math/rand"
)

// engine carries the mutable state of a single plan() call: the grid
// snapshot, the sample set(s), the RNG, and the per-call expansion trace.
// cBest itself lives as a plain local in each run* loop (no goroutine reads
// it concurrently with the serial sample loop, so an atomic would only add
// write-only state — see DESIGN.md). It is created fresh at plan() entry
// and discarded at exit (spec.md §3 "Lifecycle").
type engine struct {
	grid *Grid
	cfg  Config
	rng  *rand.Rand
	nm   *neighborManager

	startX, startY int
	goalX, goalY   int

	trace *ExpansionTrace
}

func newEngine(grid *Grid, cfg Config, seed int64, startX, startY, goalX, goalY int) *engine {
	return &engine{
		grid:   grid,
		cfg:    cfg,
		rng:    rand.New(rand.NewSource(seed)),
		nm:     &neighborManager{nCPU: maxInt(cfg.RewireThreadsNum, 1)},
		startX: startX, startY: startY,
		goalX: goalX, goalY: goalY,
		trace: NewExpansionTrace(),
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// withinGoalReach reports whether (x, y) is within maxDist of the goal and
// has unobstructed line of sight to it, the shared goal-connection test of
// spec.md §4.4/§4.5.
func (e *engine) withinGoalReach(x, y int, maxDist float64) bool {
	if Dist(x, y, e.goalX, e.goalY) > maxDist {
		return false
	}
	return e.grid.LineOfSight(x, y, e.goalX, e.goalY)
}

// chooseParent implements spec.md §4.5's choose-parent rule: among
// neighbors with line-of-sight to newNode, pick the one minimizing
// neighbor.G + dist(neighbor, newNode), tie-broken by smaller ID. Mutates
// newNode's G/PID in place and returns the chosen parent ID; if no neighbor
// beats the steer-assigned parent, newNode is left unchanged and that
// parent's ID is returned.
func chooseParent(grid *Grid, newNode *Node, neighbors []*Node, obstacleFactor float64) int {
	bestID := -2
	bestG := newNode.G
	bestParentID := newNode.PID
	for _, m := range neighbors {
		if m.ID == newNode.PID {
			continue
		}
		if !grid.LineOfSight(m.X, m.Y, newNode.X, newNode.Y) {
			continue
		}
		candidateG := m.G + grid.EdgeCost(obstacleFactor, m.X, m.Y, newNode.X, newNode.Y)
		if candidateG < bestG || (candidateG == bestG && m.ID < bestParentID) {
			bestG = candidateG
			bestParentID = m.ID
			bestID = m.ID
		}
	}
	if bestID != -2 {
		newNode.G = bestG
		newNode.PID = bestParentID
	}
	return bestParentID
}

// rewire implements spec.md §4.5's rewire rule serially: for each neighbor
// m (other than newNode's own parent) with line-of-sight from newNode, if
// routing through newNode strictly improves m's cost, re-parent m onto
// newNode. Descendants of m are not eagerly updated (spec.md §9).
func rewire(grid *Grid, newNode *Node, neighbors []*Node, obstacleFactor float64) {
	for _, m := range neighbors {
		if m.ID == newNode.ID || m.ID == newNode.PID {
			continue
		}
		if !grid.LineOfSight(newNode.X, newNode.Y, m.X, m.Y) {
			continue
		}
		candidateG := newNode.G + grid.EdgeCost(obstacleFactor, newNode.X, newNode.Y, m.X, m.Y)
		if candidateG < m.G {
			m.PID = newNode.ID
			m.G = candidateG
		}
	}
}
