package rrt

// runRRT implements the base loop of spec.md §4.4: grow until the goal is
// reached or the sample budget is exhausted, with no rewiring.
func runRRT(e *engine, cancel *Cancel) ([]*Node, Stats, error) {
	set := NewSampleSet()
	start := &Node{X: e.startX, Y: e.startY, ID: e.grid.GridToIndex(e.startX, e.startY), PID: -1}
	set.Insert(start)
	e.trace.Append(start)

	sampler := UniformSampler{NX: e.grid.NX, NY: e.grid.NY}

	for i := 0; i < e.cfg.SamplePoints; i++ {
		if cancel.Done() {
			return nil, Stats{Iterations: i}, &CancellationRequested{Iterations: i}
		}

		sx, sy := sampler.Sample(e.rng)
		nearest := set.Nearest(sx, sy)
		newNode := Steer(e.grid, set, nearest, sx, sy, e.cfg.SampleMaxD, e.cfg.ObstacleFactor)
		if newNode.ID == invalidID {
			continue
		}

		set.Insert(newNode)
		e.trace.Append(newNode)

		if e.withinGoalReach(newNode.X, newNode.Y, e.cfg.SampleMaxD) {
			goalID := e.grid.GridToIndex(e.goalX, e.goalY)
			goalNode := newNode
			if newNode.ID != goalID {
				goalNode = &Node{X: e.goalX, Y: e.goalY, ID: goalID, PID: newNode.ID,
					G: newNode.G + e.grid.EdgeCost(e.cfg.ObstacleFactor, newNode.X, newNode.Y, e.goalX, e.goalY)}
				set.Insert(goalNode)
				e.trace.Append(goalNode)
			}
			chain := set.PathTo(goalNode)
			return chain, Stats{Iterations: i + 1, FinalCBest: goalNode.G}, nil
		}
	}
	return nil, Stats{Iterations: e.cfg.SamplePoints}, &NoPathFound{Iterations: e.cfg.SamplePoints}
}
