package rrt

// ExtractPath walks goalNode's parent chain in set back to its root,
// reverses it, and converts each cell to world coordinates. The trailing
// waypoint is replaced with the exact goal world pose to avoid quantization
// drift (spec.md §4.9).
func ExtractPath(grid *Grid, set *SampleSet, goalNode *Node, goalWorld World) []World {
	chain := set.PathTo(goalNode)
	path := make([]World, len(chain))
	for i, n := range chain {
		path[i] = grid.MapToWorld(n.X, n.Y)
	}
	if len(path) > 0 {
		path[len(path)-1] = goalWorld
	}
	return path
}

// PathCost sums the edge costs along a cell-space parent chain, per
// spec.md §4.5's "path extraction recomputes by summing edge lengths" rule
// — descendants of a rewired node are not eagerly updated, so their stored
// g values are not trustworthy on their own.
func PathCost(grid *Grid, obstacleFactor float64, chain []*Node) float64 {
	total := 0.0
	for i := 1; i < len(chain); i++ {
		total += grid.EdgeCost(obstacleFactor, chain[i-1].X, chain[i-1].Y, chain[i].X, chain[i].Y)
	}
	return total
}
