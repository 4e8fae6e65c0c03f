package rrt

import (
	"sync"
)

// parallelNeighborThreshold mirrors the teacher's nearestNeighbor design
// (go.viam.com/rdk/motionplan/armplanning): below this many candidates, a
// serial scan is both simpler and faster than paying goroutine setup cost;
// above it, the scan is sharded across nCPU workers.
const parallelNeighborThreshold = 1000

// neighborManager performs nearest-vertex and within-radius neighborhood
// queries over a SampleSet, switching between a serial scan and an
// nCPU-sharded parallel scan depending on tree size, the way
// daoran-rdk/motionplan/armplanning/cBiRRT.go's neighborManager does for
// configuration-space nodes.
type neighborManager struct {
	nCPU int
}

func (nm *neighborManager) workers() int {
	if nm.nCPU < 1 {
		return 1
	}
	return nm.nCPU
}

// Nearest returns the vertex in set closest to (x, y).
func (nm *neighborManager) Nearest(set *SampleSet, x, y int) *Node {
	if set.Len() < parallelNeighborThreshold || nm.workers() == 1 {
		return set.Nearest(x, y)
	}

	all := make([]*Node, 0, set.Len())
	set.Each(func(n *Node) { all = append(all, n) })

	shards := nm.workers()
	results := make([]*Node, shards)
	var wg sync.WaitGroup
	chunk := (len(all) + shards - 1) / shards
	for w := 0; w < shards; w++ {
		lo := w * chunk
		hi := lo + chunk
		if hi > len(all) {
			hi = len(all)
		}
		if lo >= hi {
			continue
		}
		wg.Add(1)
		go func(lo, hi, w int) {
			defer wg.Done()
			var best *Node
			bestDist := 0.0
			for _, n := range all[lo:hi] {
				d := Dist(x, y, n.X, n.Y)
				if best == nil || d < bestDist {
					best, bestDist = n, d
				}
			}
			results[w] = best
		}(lo, hi, w)
	}
	wg.Wait()

	var best *Node
	bestDist := 0.0
	for _, n := range results {
		if n == nil {
			continue
		}
		d := Dist(x, y, n.X, n.Y)
		if best == nil || d < bestDist {
			best, bestDist = n, d
		}
	}
	return best
}

// Within returns every vertex in set within radius r of (x, y). It always
// uses the serial SampleSet.Within scan, whatever nCPU is; Quick-Informed's
// sharded rewire happens afterwards, over the returned slice (see
// parallelRewire in quickinformedrrt.go).
func (nm *neighborManager) Within(set *SampleSet, x, y int, r float64) []*Node {
	return set.Within(x, y, r)
}
