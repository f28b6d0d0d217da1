package graph

import (
	"cmp"
	"fmt"
	"math"
	"slices"
)

// Build converts a flat list of undirected edges into a symmetric Graph.
//
// For every edge {A, B, w} the weight is stored under both A→B and B→A,
// creating either node's entry if absent. Duplicate pairs are not
// rejected: edges are applied in slice order, so the last weight given for
// a pair overwrites any earlier one in both directions.
//
// Errors (wrapped with the offending edge):
//   - ErrEmptyNodeID if an endpoint or a WithNodes ID is "".
//   - ErrNegativeWeight if a weight is below zero.
//   - ErrNonFiniteWeight if a weight is NaN or ±Inf.
//
// Complexity: O(V + E) time and space.
func Build(edges []Edge, opts ...BuildOption) (*Graph, error) {
	var cfg buildOptions
	for _, opt := range opts {
		opt(&cfg)
	}

	g := &Graph{adjacency: make(map[string]map[string]float64)}

	// 1) Declared nodes first, so isolated nodes get an empty entry.
	for _, id := range cfg.nodes {
		if id == "" {
			return nil, ErrEmptyNodeID
		}
		g.ensure(id)
	}

	// 2) Mirror every edge into both endpoints.
	for _, e := range edges {
		if err := validate(e); err != nil {
			return nil, err
		}
		if _, seen := g.adjacency[e.A][e.B]; !seen {
			g.edges++
		}
		g.ensure(e.A)[e.B] = e.Weight
		g.ensure(e.B)[e.A] = e.Weight
	}

	return g, nil
}

// FromMap builds a Graph from a pair→weight mapping.
//
// Go map iteration order is random, so pairs are applied in sorted order
// (by A, then B). When the same unordered pair is present as both {A, B}
// and {B, A}, the one that sorts last wins.
func FromMap(edges map[Pair]float64, opts ...BuildOption) (*Graph, error) {
	pairs := make([]Pair, 0, len(edges))
	for p := range edges {
		pairs = append(pairs, p)
	}
	slices.SortFunc(pairs, func(x, y Pair) int {
		return cmp.Or(cmp.Compare(x.A, y.A), cmp.Compare(x.B, y.B))
	})

	list := make([]Edge, len(pairs))
	for i, p := range pairs {
		list[i] = Edge{A: p.A, B: p.B, Weight: edges[p]}
	}

	return Build(list, opts...)
}

// ensure returns the neighbor map of id, creating it if absent.
func (g *Graph) ensure(id string) map[string]float64 {
	nb, ok := g.adjacency[id]
	if !ok {
		nb = make(map[string]float64)
		g.adjacency[id] = nb
	}

	return nb
}

func validate(e Edge) error {
	if e.A == "" || e.B == "" {
		return fmt.Errorf("%w: edge %q–%q", ErrEmptyNodeID, e.A, e.B)
	}
	if math.IsNaN(e.Weight) || math.IsInf(e.Weight, 0) {
		return fmt.Errorf("%w: edge %s–%s weight=%v", ErrNonFiniteWeight, e.A, e.B, e.Weight)
	}
	if e.Weight < 0 {
		return fmt.Errorf("%w: edge %s–%s weight=%v", ErrNegativeWeight, e.A, e.B, e.Weight)
	}

	return nil
}
