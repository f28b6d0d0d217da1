package graph

import (
	"maps"
	"slices"
)

// HasNode reports whether id is a node of g.
func (g *Graph) HasNode(id string) bool {
	_, ok := g.adjacency[id]

	return ok
}

// Nodes returns all node IDs in ascending order.
// Complexity: O(V log V).
func (g *Graph) Nodes() []string {
	return slices.Sorted(maps.Keys(g.adjacency))
}

// Neighbors returns the neighbors of id sorted by ID, or nil if id is not
// a node of g. Sorted output keeps relaxation order deterministic.
func (g *Graph) Neighbors(id string) []Neighbor {
	nb, ok := g.adjacency[id]
	if !ok {
		return nil
	}

	out := make([]Neighbor, 0, len(nb))
	for _, to := range slices.Sorted(maps.Keys(nb)) {
		out = append(out, Neighbor{ID: to, Weight: nb[to]})
	}

	return out
}

// Weight returns the weight of edge {a, b} and whether it exists.
func (g *Graph) Weight(a, b string) (float64, bool) {
	w, ok := g.adjacency[a][b]

	return w, ok
}

// Order returns the number of nodes.
func (g *Graph) Order() int { return len(g.adjacency) }

// Size returns the number of distinct undirected edges.
func (g *Graph) Size() int { return g.edges }

// Edges returns every undirected edge once, with A <= B, sorted by (A, B).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.edges)
	for _, a := range g.Nodes() {
		for _, n := range g.Neighbors(a) {
			if a <= n.ID {
				out = append(out, Edge{A: a, B: n.ID, Weight: n.Weight})
			}
		}
	}

	return out
}
