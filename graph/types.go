// Package graph defines the immutable, undirected, weighted adjacency
// structure consumed by the dijkstra package, together with the builders
// that normalize a flat edge list into it.
//
// A Graph is symmetric: whenever B is a neighbor of A with weight w, A is a
// neighbor of B with the same weight w. Graphs are built once and never
// mutated afterwards, so a single *Graph may be shared by any number of
// concurrent queries.
//
// Errors:
//
//	ErrEmptyNodeID     - an edge or declared node has an empty ID.
//	ErrNegativeWeight  - an edge weight is below zero.
//	ErrNonFiniteWeight - an edge weight is NaN or ±Inf.
package graph

import "errors"

// Sentinel errors returned by Build and FromMap.
var (
	// ErrEmptyNodeID indicates an edge endpoint or declared node with an empty ID.
	ErrEmptyNodeID = errors.New("graph: node ID is empty")

	// ErrNegativeWeight indicates an edge weight below zero.
	ErrNegativeWeight = errors.New("graph: negative edge weight")

	// ErrNonFiniteWeight indicates an edge weight that is NaN or infinite.
	ErrNonFiniteWeight = errors.New("graph: edge weight is not finite")
)

// Edge is an undirected connection between nodes A and B.
// The order of A and B carries no meaning.
type Edge struct {
	A      string
	B      string
	Weight float64
}

// Pair keys the map form of an edge list accepted by FromMap.
type Pair struct {
	A string
	B string
}

// Neighbor is one entry of a node's adjacency, as returned by Graph.Neighbors.
type Neighbor struct {
	ID     string
	Weight float64
}

// Graph is the symmetric adjacency structure:
// adjacency[a][b] == adjacency[b][a] == weight of edge {a, b}.
//
// The zero value is an empty graph. Use Build or FromMap to populate one.
type Graph struct {
	adjacency map[string]map[string]float64
	edges     int // number of distinct unordered pairs
}

// BuildOption configures Build and FromMap.
type BuildOption func(*buildOptions)

type buildOptions struct {
	nodes []string
}

// WithNodes declares nodes that must exist in the graph even if no edge
// touches them. Isolated nodes are otherwise impossible to express with
// an edge list alone.
func WithNodes(ids ...string) BuildOption {
	return func(o *buildOptions) {
		o.nodes = append(o.nodes, ids...)
	}
}
