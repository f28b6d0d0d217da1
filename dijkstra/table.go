package dijkstra

import "github.com/katalvlaran/pathfinder/graph"

// NewTable returns a fresh distance table for g: one entry per node with
// Distance = Inf and no predecessor. Nodes that are not keys of g get no
// entry; graph.Build guarantees every neighbor is also a key.
//
// Complexity: O(V).
func NewTable(g *graph.Graph) Table {
	nodes := g.Nodes()
	t := make(Table, len(nodes))
	for _, id := range nodes {
		t[id] = Entry{Distance: Inf}
	}

	return t
}

// Distance returns the distance recorded for id, or Inf if id has no entry.
func (t Table) Distance(id string) float64 {
	e, ok := t[id]
	if !ok {
		return Inf
	}

	return e.Distance
}
