package rrt

import (
	"math"
	"sync"

	"go.viam.com/utils"
)

// quickInformedDecay is the geometric decay factor applied to the adaptive
// step each time cBest improves (spec.md §9: "an implementer must choose
// and document one"). 0.98 gives a gentle tightening; combined with the
// one-cell floor this converges the step toward fine-grained steering
// without ever collapsing to zero.
const quickInformedDecay = 0.98

// quickInformedStepFloor is the minimum adaptive step, in cells.
const quickInformedStepFloor = 1.0

// runQuickInformedRRT implements spec.md §4.8 on top of Informed RRT*: once
// a solution exists, samples are drawn from a disk around a random node of
// the incumbent path with probability proportional to prior_r, the
// steering step shrinks geometrically as cBest improves, the ellipse's
// radial component is drawn from a heavy-tailed (Student-t) distribution
// instead of the uniform unit disk, and rewiring is sharded across
// rewire_threads_num workers with a single serial commit phase.
func runQuickInformedRRT(e *engine, cancel *Cancel) ([]*Node, Stats, error) {
	set := NewSampleSet()
	start := &Node{X: e.startX, Y: e.startY, ID: e.grid.GridToIndex(e.startX, e.startY), PID: -1}
	set.Insert(start)
	e.trace.Append(start)

	uniform := UniformSampler{NX: e.grid.NX, NY: e.grid.NY}
	ellipse := EllipseSampler{
		Grid: e.grid, StartX: e.startX, StartY: e.startY, GoalX: e.goalX, GoalY: e.goalY,
		Fallback: uniform,
		Radial:   TDistributionRadial(e.cfg.TDistrFreedom),
	}

	var bestGoalParent *Node
	var bestPath []*Node
	cBest := math.Inf(1)
	step := e.cfg.StepExtendD
	rewireCount := 0
	iterations := 0

	for i := 0; i < e.cfg.SamplePoints; i++ {
		iterations = i + 1
		if cancel.Done() {
			break
		}

		sx, sy := sampleQuickInformed(e, uniform, ellipse, bestPath, cBest)

		nearest := e.nm.Nearest(set, sx, sy)
		newNode := Steer(e.grid, set, nearest, sx, sy, step, e.cfg.ObstacleFactor)
		if newNode.ID == invalidID {
			continue
		}

		neighbors := e.nm.Within(set, newNode.X, newNode.Y, e.cfg.OptimizationR)
		chooseParent(e.grid, newNode, neighbors, e.cfg.ObstacleFactor)
		set.Insert(newNode)
		e.trace.Append(newNode)

		threads := e.cfg.RewireThreadsNum
		if threads <= 1 {
			rewire(e.grid, newNode, neighbors, e.cfg.ObstacleFactor)
			rewireCount += len(neighbors)
		} else {
			rewireCount += parallelRewire(e.grid, newNode, neighbors, threads, e.cfg.ObstacleFactor)
		}

		if e.withinGoalReach(newNode.X, newNode.Y, step) {
			candidate := newNode.G + e.grid.EdgeCost(e.cfg.ObstacleFactor, newNode.X, newNode.Y, e.goalX, e.goalY)
			if candidate < cBest {
				cBest = candidate
				bestGoalParent = newNode
				step = math.Max(step*quickInformedDecay, quickInformedStepFloor)

				goalID := e.grid.GridToIndex(e.goalX, e.goalY)
				goalNode := &Node{X: e.goalX, Y: e.goalY, ID: goalID, PID: bestGoalParent.ID,
					G: candidate}
				bestPath = set.PathTo(bestGoalParent)
				bestPath = append(append([]*Node{}, bestPath...), goalNode)
			}
		}
	}

	if bestGoalParent == nil {
		if cancel.Done() {
			return nil, Stats{Iterations: iterations, FinalCBest: cBest, RewireCount: rewireCount}, &CancellationRequested{Iterations: iterations}
		}
		return nil, Stats{Iterations: iterations, FinalCBest: cBest, RewireCount: rewireCount}, &NoPathFound{Iterations: iterations}
	}

	// bestPath is a snapshot taken when cBest last improved; later rewires may
	// have re-parented its vertices, so the returned chain is re-walked from
	// the goal parent's current parent links.
	goalNode := bestPath[len(bestPath)-1]
	chain := set.PathTo(bestGoalParent)
	if bestGoalParent.ID != goalNode.ID {
		e.trace.Append(goalNode)
		chain = append(chain, goalNode)
	}
	return chain, Stats{Iterations: iterations, FinalCBest: cBest, RewireCount: rewireCount}, nil
}

// sampleQuickInformed chooses, per iteration, whether to draw from the
// prior set around the incumbent path, the (t-distributed) informed
// ellipse, or the uniform fallback, per spec.md §4.8.
func sampleQuickInformed(e *engine, uniform UniformSampler, ellipse EllipseSampler, bestPath []*Node, cBest float64) (int, int) {
	if math.IsInf(cBest, 1) || len(bestPath) == 0 {
		return uniform.Sample(e.rng)
	}
	if e.rng.Float64() < priorSetProbability(e.cfg.PriorSampleSetR, e.grid) {
		prior := PriorSetSampler{Grid: e.grid, Path: bestPath, R: e.cfg.PriorSampleSetR}
		return prior.Sample(e.rng)
	}
	return ellipse.Sample(e.rng, cBest)
}

// priorSetProbability maps the prior-set radius to a sampling probability
// in [0, 0.9]: a larger radius (relative to the grid's diagonal) means the
// prior set covers more of the informed region, so it is drawn from more
// often. Capped below 1 so the ellipse/t-distributed sampler always keeps
// some share of draws, preserving global exploration.
func priorSetProbability(priorR float64, grid *Grid) float64 {
	diag := math.Hypot(float64(grid.NX), float64(grid.NY))
	if diag <= 0 {
		return 0
	}
	p := priorR / diag
	if p > 0.9 {
		p = 0.9
	}
	return p
}

// parallelRewire shards neighbors across threads workers (by index mod
// threads), each producing proposals into its own buffer with no
// cross-worker sharing, then reconciles them in a single serial commit
// phase that applies the minimum-g proposal per neighbor, subject to
// strict improvement over that neighbor's current g (spec.md §4.8/§5).
func parallelRewire(grid *Grid, newNode *Node, neighbors []*Node, threads int, obstacleFactor float64) int {
	type proposal struct {
		neighborID int
		g          float64
	}

	shards := make([][]*Node, threads)
	for i, m := range neighbors {
		shard := i % threads
		shards[shard] = append(shards[shard], m)
	}

	buffers := make([][]proposal, threads)
	var wg sync.WaitGroup
	for w := 0; w < threads; w++ {
		w := w
		wg.Add(1)
		utils.PanicCapturingGo(func() {
			defer wg.Done()
			var local []proposal
			for _, m := range shards[w] {
				if m.ID == newNode.ID || m.ID == newNode.PID {
					continue
				}
				if !grid.LineOfSight(newNode.X, newNode.Y, m.X, m.Y) {
					continue
				}
				g := newNode.G + grid.EdgeCost(obstacleFactor, newNode.X, newNode.Y, m.X, m.Y)
				local = append(local, proposal{neighborID: m.ID, g: g})
			}
			buffers[w] = local
		})
	}
	wg.Wait()

	// Single-threaded commit: for each neighborID, keep the minimum
	// proposed g across all shards before deciding whether it beats the
	// neighbor's current (possibly-since-updated) g.
	best := make(map[int]float64)
	for _, buf := range buffers {
		for _, p := range buf {
			if cur, ok := best[p.neighborID]; !ok || p.g < cur {
				best[p.neighborID] = p.g
			}
		}
	}

	byID := make(map[int]*Node, len(neighbors))
	for _, m := range neighbors {
		byID[m.ID] = m
	}

	count := 0
	for id, g := range best {
		m := byID[id]
		if g < m.G {
			m.PID = newNode.ID
			m.G = g
			count++
		}
	}
	return count
}
