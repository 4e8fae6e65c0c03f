package rrt

import "math"

// runRRTStar implements spec.md §4.5: the base RRT loop augmented with
// neighborhood-based choose-parent and rewire. The full sample budget
// always runs (no early termination on first goal contact) so later
// iterations can keep improving cBest.
func runRRTStar(e *engine, cancel *Cancel) ([]*Node, Stats, error) {
	set := NewSampleSet()
	start := &Node{X: e.startX, Y: e.startY, ID: e.grid.GridToIndex(e.startX, e.startY), PID: -1}
	set.Insert(start)
	e.trace.Append(start)

	sampler := UniformSampler{NX: e.grid.NX, NY: e.grid.NY}

	var bestGoalParent *Node
	cBest := math.Inf(1)
	rewireCount := 0
	iterations := 0

	for i := 0; i < e.cfg.SamplePoints; i++ {
		iterations = i + 1
		if cancel.Done() {
			break
		}

		sx, sy := sampler.Sample(e.rng)
		nearest := e.nm.Nearest(set, sx, sy)
		newNode := Steer(e.grid, set, nearest, sx, sy, e.cfg.SampleMaxD, e.cfg.ObstacleFactor)
		if newNode.ID == invalidID {
			continue
		}

		neighbors := e.nm.Within(set, newNode.X, newNode.Y, e.cfg.OptimizationR)
		chooseParent(e.grid, newNode, neighbors, e.cfg.ObstacleFactor)

		set.Insert(newNode)
		e.trace.Append(newNode)

		rewire(e.grid, newNode, neighbors, e.cfg.ObstacleFactor)
		rewireCount += len(neighbors)

		if e.withinGoalReach(newNode.X, newNode.Y, e.cfg.SampleMaxD) {
			candidate := newNode.G + e.grid.EdgeCost(e.cfg.ObstacleFactor, newNode.X, newNode.Y, e.goalX, e.goalY)
			if candidate < cBest {
				cBest = candidate
				bestGoalParent = newNode
			}
		}
	}

	if bestGoalParent == nil {
		if cancel.Done() {
			return nil, Stats{Iterations: iterations, FinalCBest: cBest, RewireCount: rewireCount}, &CancellationRequested{Iterations: iterations}
		}
		return nil, Stats{Iterations: iterations, FinalCBest: cBest, RewireCount: rewireCount}, &NoPathFound{Iterations: iterations}
	}

	// The goal node is appended to the chain rather than inserted into set, so
	// a tree vertex already sitting on the goal cell is never replaced.
	goalID := e.grid.GridToIndex(e.goalX, e.goalY)
	chain := set.PathTo(bestGoalParent)
	if bestGoalParent.ID != goalID {
		goalNode := &Node{X: e.goalX, Y: e.goalY, ID: goalID, PID: bestGoalParent.ID,
			G: bestGoalParent.G + e.grid.EdgeCost(e.cfg.ObstacleFactor, bestGoalParent.X, bestGoalParent.Y, e.goalX, e.goalY)}
		e.trace.Append(goalNode)
		chain = append(chain, goalNode)
	}
	return chain, Stats{Iterations: iterations, FinalCBest: cBest, RewireCount: rewireCount}, nil
}
