package rrt

import "math"

// runInformedRRT implements spec.md §4.7: identical to RRT* except that
// once a feasible solution exists (cBest < inf), sampling is restricted to
// the informed ellipse with foci start/goal. Falls back to uniform
// sampling while cBest is still infinite.
func runInformedRRT(e *engine, cancel *Cancel) ([]*Node, Stats, error) {
	set := NewSampleSet()
	start := &Node{X: e.startX, Y: e.startY, ID: e.grid.GridToIndex(e.startX, e.startY), PID: -1}
	set.Insert(start)
	e.trace.Append(start)

	uniform := UniformSampler{NX: e.grid.NX, NY: e.grid.NY}
	ellipse := EllipseSampler{
		Grid: e.grid, StartX: e.startX, StartY: e.startY, GoalX: e.goalX, GoalY: e.goalY,
		Fallback: uniform,
	}

	var bestGoalParent *Node
	cBest := math.Inf(1)
	rewireCount := 0
	iterations := 0

	for i := 0; i < e.cfg.SamplePoints; i++ {
		iterations = i + 1
		if cancel.Done() {
			break
		}

		var sx, sy int
		if math.IsInf(cBest, 1) {
			sx, sy = uniform.Sample(e.rng)
		} else {
			sx, sy = ellipse.Sample(e.rng, cBest)
		}

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
