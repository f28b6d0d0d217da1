package dijkstra

import (
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/pathfinder/graph"
)

// Path rebuilds the shortest path from start to end out of a table
// produced by Solve(g, start).
//
// It returns the node sequence start → … → end and the total distance
// t[end].Distance. When start == end the path is just [start] with
// distance 0.
//
// Errors:
//   - ErrUnknownNode if start or end has no entry in t.
//   - ErrUnreachable if end has an infinite distance. This is checked
//     before walking, so an unreachable end never triggers the walk.
//   - ErrBrokenChain if a predecessor is missing or the links cycle. The
//     walk is bounded by len(t) steps.
//
// Complexity: O(L) where L is the path length.
func Path(t Table, start, end string) ([]string, float64, error) {
	if _, ok := t[start]; !ok {
		return nil, 0, fmt.Errorf("%w: start %q", ErrUnknownNode, start)
	}
	last, ok := t[end]
	if !ok {
		return nil, 0, fmt.Errorf("%w: end %q", ErrUnknownNode, end)
	}
	if !last.Reachable() {
		return nil, 0, fmt.Errorf("%w: %q from %q", ErrUnreachable, end, start)
	}

	// Walk back end → start, then reverse.
	path := []string{end}
	for cur := end; cur != start; {
		if len(path) >= len(t) {
			return nil, 0, fmt.Errorf("%w: cycle reached at %q", ErrBrokenChain, cur)
		}
		prev := t[cur].Predecessor
		if _, known := t[prev]; prev == "" || !known {
			return nil, 0, fmt.Errorf("%w: %q has no predecessor", ErrBrokenChain, cur)
		}
		path = append(path, prev)
		cur = prev
	}
	slices.Reverse(path)

	return path, last.Distance, nil
}

// Result is the outcome of a single start → end query.
type Result struct {
	Path     []string // start → … → end; nil when end is unreachable
	Distance float64  // total weight of Path
	Table    Table    // solved distance table, kept for diagnostics
}

// ShortestPath builds the distance table from start with Solve and
// reconstructs the path to end with Path.
//
// An unknown end is reported before solving. When end is unreachable the
// returned Result still carries the solved Table alongside ErrUnreachable.
func ShortestPath(g *graph.Graph, start, end string, opts ...Option) (Result, error) {
	if g != nil && end != "" && !g.HasNode(end) {
		return Result{}, fmt.Errorf("%w: end %q", ErrUnknownNode, end)
	}

	t, err := Solve(g, start, opts...)
	if err != nil {
		return Result{}, err
	}

	path, dist, err := Path(t, start, end)
	if err != nil {
		if errors.Is(err, ErrUnreachable) {
			return Result{Distance: Inf, Table: t}, err
		}

		return Result{}, err
	}

	return Result{Path: path, Distance: dist, Table: t}, nil
}
