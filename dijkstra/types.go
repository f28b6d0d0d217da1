package dijkstra

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
)

// Sentinel errors returned by Solve, Path and ShortestPath.
var (
	// ErrNilGraph indicates that a nil *graph.Graph was passed to Solve.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrEmptySource indicates that the start node ID is empty.
	ErrEmptySource = errors.New("dijkstra: source node ID is empty")

	// ErrUnknownNode indicates that the start or end node is not in the graph
	// (or, for Path, not in the table).
	ErrUnknownNode = errors.New("dijkstra: node not found in graph")

	// ErrUnreachable indicates that the end node has an infinite distance
	// after solving, so no path exists from the start node.
	ErrUnreachable = errors.New("dijkstra: node is unreachable from source")

	// ErrBrokenChain indicates that a predecessor link is missing or forms a
	// cycle while walking back from the end node. A table produced by Solve
	// never triggers it; hand-edited tables can.
	ErrBrokenChain = errors.New("dijkstra: broken predecessor chain")

	// ErrBadStrategy indicates an unknown Strategy value.
	ErrBadStrategy = errors.New("dijkstra: unknown selection strategy")
)

// Inf is the distance of a node not (yet) reached from the source.
var Inf = math.Inf(1)

// Entry is one row of the distance table.
//
// Distance is the best known distance from the source (Inf if unreached).
// Predecessor is the previous node on that best path, or "" for none
// (the source itself, or an unreached node).
type Entry struct {
	Distance    float64
	Predecessor string
}

// Reachable reports whether the entry holds a finite distance.
func (e Entry) Reachable() bool { return !math.IsInf(e.Distance, 1) }

// Table maps every node ID of a graph to its Entry.
// A Table returned by Solve is owned by the caller; the solver keeps no reference.
type Table map[string]Entry

// Strategy selects how the solver picks the next node to finalize.
type Strategy int

const (
	// StrategyScan re-scans every unvisited node per iteration. O(V²) overall,
	// which is fine for the small graphs this package targets.
	StrategyScan Strategy = iota

	// StrategyHeap keeps a binary min-heap keyed by distance and discards
	// stale entries lazily. O((V + E) log V). Produces the same table as
	// StrategyScan, ties included.
	StrategyHeap
)

// String returns the flag-friendly name of s.
func (s Strategy) String() string {
	switch s {
	case StrategyScan:
		return "scan"
	case StrategyHeap:
		return "heap"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy converts "scan" or "heap" into a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "scan":
		return StrategyScan, nil
	case "heap":
		return StrategyHeap, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrBadStrategy, name)
	}
}

// Options configures Solve and ShortestPath.
//
// Strategy – next-node selection (default StrategyScan).
// Logger   – receives Debug records for finalized nodes and relaxations
// (default discards everything).
type Options struct {
	Strategy Strategy
	Logger   *slog.Logger
}

// Option represents a functional option for configuring Solve.
type Option func(*Options)

// WithStrategy sets the next-node selection strategy.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		o.Strategy = s
	}
}

// WithLogger routes solver tracing to l. A nil l keeps the default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// DefaultOptions returns the defaults used when no Option is passed:
// StrategyScan and a discarding logger.
func DefaultOptions() Options {
	return Options{
		Strategy: StrategyScan,
		Logger:   slog.New(slog.DiscardHandler),
	}
}
