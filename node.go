package rrt

// Node is a single tree vertex. Identity is by ID (cell index); equality
// and map-keying always compare IDs, never coordinates directly.
type Node struct {
	X, Y int
	G    float64 // accumulated cost from the root of its tree
	H    float64 // heuristic placeholder; unused by sampling planners
	ID   int
	PID  int // parent cell index, -1 denotes root/unparented
}

// Less gives the lexicographic (g, id) tie-break spec.md's data model
// requires wherever nodes must be ordered.
func (n *Node) Less(o *Node) bool {
	if n.G != o.G {
		return n.G < o.G
	}
	return n.ID < o.ID
}

// SampleSet is the tree store: a mapping from cell ID to Node, doubling as
// both the open and closed list of spec.md §3. Insertion is idempotent on
// ID; a later Insert with the same ID replaces the prior node, which is how
// rewire updates a vertex's parent/cost in place.
type SampleSet struct {
	nodes map[int]*Node
	// order records discovery order for traversal/iteration where a
	// deterministic (though spec-unspecified) order is convenient, e.g. when
	// building the expansion trace.
	order []int
}

// NewSampleSet creates an empty tree store.
func NewSampleSet() *SampleSet {
	return &SampleSet{nodes: make(map[int]*Node)}
}

// Get looks up a node by cell ID.
func (s *SampleSet) Get(id int) (*Node, bool) {
	n, ok := s.nodes[id]
	return n, ok
}

// Has reports whether a cell ID already has a vertex.
func (s *SampleSet) Has(id int) bool {
	_, ok := s.nodes[id]
	return ok
}

// Insert adds or replaces the node at n.ID.
func (s *SampleSet) Insert(n *Node) {
	if _, exists := s.nodes[n.ID]; !exists {
		s.order = append(s.order, n.ID)
	}
	s.nodes[n.ID] = n
}

// Len is the number of vertices in the tree.
func (s *SampleSet) Len() int {
	return len(s.nodes)
}

// Each iterates every vertex; order is the spec-unspecified discovery
// order recorded at Insert time, stable across a single plan() call.
func (s *SampleSet) Each(fn func(n *Node)) {
	for _, id := range s.order {
		fn(s.nodes[id])
	}
}

// Within returns every vertex whose center lies within radius r of (x, y),
// in insertion order. Linear scan: correctness, not throughput, is
// spec.md's stated concern for nearest-neighbor/neighborhood queries.
// Iterating s.order rather than ranging the map directly keeps the result
// order reproducible once a Config.Seed fixes insertion order (spec.md
// §8.4): ranging a Go map directly would make any downstream tie-break
// over this slice nondeterministic even with a fixed seed.
func (s *SampleSet) Within(x, y int, r float64) []*Node {
	var out []*Node
	for _, id := range s.order {
		n := s.nodes[id]
		if Dist(x, y, n.X, n.Y) <= r {
			out = append(out, n)
		}
	}
	return out
}

// Nearest returns the vertex closest (Euclidean, in cells) to (x, y),
// ties broken by earliest insertion. Iterates s.order rather than ranging
// the map directly for the same reproducibility reason as Within.
func (s *SampleSet) Nearest(x, y int) *Node {
	var best *Node
	bestDist := 0.0
	for _, id := range s.order {
		n := s.nodes[id]
		d := Dist(x, y, n.X, n.Y)
		if best == nil || d < bestDist {
			best = n
			bestDist = d
		}
	}
	return best
}

// PathTo walks the parent chain from n back to its root, returning vertices
// ordered start-to-n. Guards against a malformed chain exceeding Len()
// steps, the cycle-safety invariant of spec.md §3/§7.
func (s *SampleSet) PathTo(n *Node) []*Node {
	var rev []*Node
	cur := n
	for i := 0; cur != nil; i++ {
		if i > s.Len() {
			panic("gridrrt: sample set invariant violated: parent chain did not terminate")
		}
		rev = append(rev, cur)
		if cur.PID == -1 {
			break
		}
		parent, ok := s.Get(cur.PID)
		if !ok {
			panic("gridrrt: sample set invariant violated: dangling parent id")
		}
		cur = parent
	}
	out := make([]*Node, len(rev))
	for i, v := range rev {
		out[len(rev)-1-i] = v
	}
	return out
}
