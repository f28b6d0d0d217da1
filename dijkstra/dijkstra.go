package dijkstra

import (
	"container/heap"
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/pathfinder/graph"
)

// Solve computes shortest distances from start to every node of g and
// returns the finished distance table.
//
// The table is allocated by Solve (see NewTable) and handed to the caller;
// calling Solve twice on the same graph yields two independent, identical
// tables.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. start must be non-empty (ErrEmptySource).
//  3. g must contain start (ErrUnknownNode).
//  4. The strategy must be known (ErrBadStrategy).
//
// Nodes unreachable from start keep Distance = Inf and no predecessor;
// that is not an error.
//
// Complexity:
//
//   - StrategyScan: O(V² + E) time, O(V) extra space.
//   - StrategyHeap: O((V + E) log V) time, O(V + E) extra space.
func Solve(g *graph.Graph, start string, opts ...Option) (Table, error) {
	// 1) Build options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs.
	if g == nil {
		return nil, ErrNilGraph
	}
	if start == "" {
		return nil, ErrEmptySource
	}
	if !g.HasNode(start) {
		return nil, fmt.Errorf("%w: source %q", ErrUnknownNode, start)
	}

	// 3) Fresh table and unvisited set.
	r := &runner{
		g:         g,
		log:       cfg.Logger,
		table:     NewTable(g),
		unvisited: make(map[string]struct{}, g.Order()),
	}
	for id := range r.table {
		r.unvisited[id] = struct{}{}
	}
	r.table[start] = Entry{Distance: 0}

	// 4) Main loop.
	switch cfg.Strategy {
	case StrategyScan:
		r.runScan(start)
	case StrategyHeap:
		r.runHeap(start)
	default:
		return nil, fmt.Errorf("%w: %v", ErrBadStrategy, cfg.Strategy)
	}

	return r.table, nil
}

// runner holds the mutable state of a single Solve call.
type runner struct {
	g         *graph.Graph
	log       *slog.Logger
	table     Table
	unvisited map[string]struct{}
	nodes     []string                   // sorted node IDs, scan strategy only
	push      func(id string, d float64) // heap strategy only
}

// runScan relaxes the neighbors of current, finalizes it, then picks the
// unvisited node with the smallest distance by a full linear pass. It stops when
// no unvisited node is left or the smallest remaining distance is Inf.
func (r *runner) runScan(current string) {
	r.nodes = r.g.Nodes()
	for {
		r.relax(current)
		r.finalize(current)

		next, ok := r.nearestUnvisited()
		if !ok {
			return
		}
		current = next
	}
}

// nearestUnvisited returns the unvisited node with minimum finite distance.
// Nodes are walked in sorted order and only a strictly smaller distance
// replaces the candidate, so ties go to the smallest ID.
func (r *runner) nearestUnvisited() (string, bool) {
	best, bestDist := "", math.Inf(1)
	for _, id := range r.nodes {
		if _, open := r.unvisited[id]; !open {
			continue
		}
		if d := r.table[id].Distance; d < bestDist {
			best, bestDist = id, d
		}
	}

	return best, best != ""
}

// runHeap drives the same loop with a min-heap ordered by (distance, ID).
// Each improvement pushes a new item; outdated items are skipped on pop.
func (r *runner) runHeap(start string) {
	pq := nodePQ{{id: start, dist: 0}}
	heap.Init(&pq)
	r.push = func(id string, d float64) {
		heap.Push(&pq, &nodeItem{id: id, dist: d})
	}

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*nodeItem)
		if _, open := r.unvisited[item.id]; !open {
			continue
		}
		if item.dist > r.table[item.id].Distance {
			continue
		}
		r.relax(item.id)
		r.finalize(item.id)
	}
}

// relax tries to improve every neighbor of u through u.
// A neighbor is updated only on a strictly shorter distance, so among
// equal-cost routes the first one found keeps its predecessor.
func (r *runner) relax(u string) {
	du := r.table[u].Distance
	for _, n := range r.g.Neighbors(u) {
		if _, open := r.unvisited[n.ID]; !open {
			continue
		}
		nd := du + n.Weight
		if nd >= r.table[n.ID].Distance {
			continue
		}
		r.table[n.ID] = Entry{Distance: nd, Predecessor: u}
		r.log.Debug("dijkstra: relaxed", "from", u, "to", n.ID, "distance", nd)
		if r.push != nil {
			r.push(n.ID, nd)
		}
	}
}

// finalize removes u from the unvisited set; its distance is now final.
func (r *runner) finalize(u string) {
	delete(r.unvisited, u)
	r.log.Debug("dijkstra: finalized", "node", u, "distance", r.table[u].Distance, "remaining", len(r.unvisited))
}

// nodeItem is a heap entry: a node and the distance it was pushed with.
type nodeItem struct {
	id   string
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by dist, then id.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
