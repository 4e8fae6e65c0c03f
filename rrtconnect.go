package rrt

// extendStatus classifies the outcome of one extend() step, per spec.md
// §4.6.
type extendStatus int

const (
	trapped extendStatus = iota
	advanced
	reached
)

// extend grows tree one step from its nearest vertex toward (tx, ty),
// classifying the result.
func extend(grid *Grid, tree *SampleSet, maxDist, obstacleFactor float64, tx, ty int) (extendStatus, *Node) {
	nearest := tree.Nearest(tx, ty)
	newNode := Steer(grid, tree, nearest, tx, ty, maxDist, obstacleFactor)
	if newNode.ID == invalidID {
		return trapped, nil
	}
	tree.Insert(newNode)
	if newNode.X == tx && newNode.Y == ty {
		return reached, newNode
	}
	return advanced, newNode
}

// connect repeatedly extends tree toward (tx, ty) until it is reached or
// trapped.
func connect(grid *Grid, tree *SampleSet, maxDist, obstacleFactor float64, tx, ty int) (extendStatus, *Node) {
	for {
		status, node := extend(grid, tree, maxDist, obstacleFactor, tx, ty)
		if status != advanced {
			return status, node
		}
	}
}

// runRRTConnect implements spec.md §4.6: two trees rooted at start and
// goal, alternately extended and connected, swapping roles each iteration
// to balance growth.
func runRRTConnect(e *engine, cancel *Cancel) ([]*Node, Stats, error) {
	treeA := NewSampleSet()
	treeB := NewSampleSet()
	startNode := &Node{X: e.startX, Y: e.startY, ID: e.grid.GridToIndex(e.startX, e.startY), PID: -1}
	goalNode := &Node{X: e.goalX, Y: e.goalY, ID: e.grid.GridToIndex(e.goalX, e.goalY), PID: -1}
	treeA.Insert(startNode)
	treeB.Insert(goalNode)
	e.trace.Append(startNode)
	e.trace.Append(goalNode)

	// aIsStart tracks whether treeA is currently rooted at start, so the
	// final concatenation can orient the combined path start->goal
	// regardless of how many times roles have swapped.
	aIsStart := true
	sampler := UniformSampler{NX: e.grid.NX, NY: e.grid.NY}

	iterations := 0
	for i := 0; i < e.cfg.SamplePoints; i++ {
		iterations = i + 1
		if cancel.Done() {
			return nil, Stats{Iterations: iterations}, &CancellationRequested{Iterations: iterations}
		}

		sx, sy := sampler.Sample(e.rng)
		statusA, nodeA := extend(e.grid, treeA, e.cfg.SampleMaxD, e.cfg.ObstacleFactor, sx, sy)
		if nodeA != nil {
			e.trace.Append(nodeA)
		}
		if statusA == trapped {
			treeA, treeB = treeB, treeA
			aIsStart = !aIsStart
			continue
		}

		before := treeB.Len()
		statusB, nodeB := connect(e.grid, treeB, e.cfg.SampleMaxD, e.cfg.ObstacleFactor, nodeA.X, nodeA.Y)
		for _, id := range treeB.order[before:] {
			e.trace.Append(treeB.nodes[id])
		}

		if statusB == reached {
			var startChain, goalChain []*Node
			if aIsStart {
				startChain = treeA.PathTo(nodeA)
				goalChain = treeB.PathTo(nodeB)
			} else {
				startChain = treeB.PathTo(nodeB)
				goalChain = treeA.PathTo(nodeA)
			}
			// goalChain currently runs goal-root -> junction; reverse it so
			// the concatenation runs start -> junction -> goal.
			reversed := make([]*Node, len(goalChain))
			for i, n := range goalChain {
				reversed[len(goalChain)-1-i] = n
			}
			full := append(startChain, reversed[1:]...)
			cost := PathCost(e.grid, e.cfg.ObstacleFactor, full)
			return full, Stats{Iterations: iterations, FinalCBest: cost}, nil
		}

		treeA, treeB = treeB, treeA
		aIsStart = !aIsStart
	}
	return nil, Stats{Iterations: iterations}, &NoPathFound{Iterations: iterations}
}
