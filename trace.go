package rrt

// ExpansionTrace is the ordered sequence of every accepted tree vertex, in
// discovery order, used only for visualization (spec.md §3): it has no
// algorithmic role and callers must not rely on its order for correctness
// of the returned path.
type ExpansionTrace struct {
	Nodes []Node
}

// NewExpansionTrace returns an empty trace.
func NewExpansionTrace() *ExpansionTrace {
	return &ExpansionTrace{}
}

// Append records a snapshot of n's current fields.
func (t *ExpansionTrace) Append(n *Node) {
	t.Nodes = append(t.Nodes, *n)
}

// Len is the number of recorded vertices.
func (t *ExpansionTrace) Len() int {
	return len(t.Nodes)
}

// Stats is the supplemental per-run telemetry described in SPEC_FULL.md §12:
// useful for the asymptotic-optimality testable property and for the demo
// table, without altering the core (path, expansion) contract.
type Stats struct {
	Iterations  int
	FinalCBest  float64
	RewireCount int
}
