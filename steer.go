package rrt

import "math"

// invalidID marks the steer() sentinel: an attempted extension that failed
// collision-checking, or landed on a cell already present in the tree.
const invalidID = -1

// Steer projects sample toward nearest, capped at maxDist, and validates
// the segment with LineOfSight. It returns the sentinel node
// ({ID: invalidID}) when the segment is blocked or when the target cell
// already has a vertex (rewire is the only path allowed to reinsert an
// existing ID).
func Steer(g *Grid, set *SampleSet, nearest *Node, sampleX, sampleY int, maxDist, obstacleFactor float64) *Node {
	tx, ty := sampleX, sampleY
	d := Dist(nearest.X, nearest.Y, sampleX, sampleY)
	if d > maxDist {
		ux := float64(sampleX-nearest.X) / d
		uy := float64(sampleY-nearest.Y) / d
		tx = nearest.X + int(math.Round(ux*maxDist))
		ty = nearest.Y + int(math.Round(uy*maxDist))
	}

	if !g.LineOfSight(nearest.X, nearest.Y, tx, ty) {
		return &Node{ID: invalidID}
	}

	id := g.GridToIndex(tx, ty)
	if set.Has(id) {
		return &Node{ID: invalidID}
	}

	return &Node{
		X:   tx,
		Y:   ty,
		ID:  id,
		PID: nearest.ID,
		G:   nearest.G + g.EdgeCost(obstacleFactor, nearest.X, nearest.Y, tx, ty),
	}
}
