// Package dijkstra computes single-source shortest paths over an undirected
// graph.Graph with non-negative weights, and reconstructs the path between
// a start and an end node.
//
// Overview:
//
//   - NewTable builds the distance table: one Entry per node, Distance = Inf,
//     no predecessor.
//   - Solve sets the start to 0 and repeats: relax the neighbors of the
//     current node, remove it from the unvisited set, pick the unvisited node
//     with the smallest distance. It stops once the unvisited set is empty or
//     only unreachable (Inf) nodes remain.
//   - Path walks predecessor links back from the end node and returns the
//     ordered node sequence plus the total distance.
//   - ShortestPath chains Solve and Path for a single query.
//
// Invariants:
//
//   - Once a node leaves the unvisited set its distance never changes again.
//     This relies on non-negative weights, which graph.Build enforces.
//   - The unvisited set shrinks by exactly one per iteration, so Solve runs
//     at most V iterations.
//   - Unreachable nodes keep Distance = Inf and Predecessor = "".
//
// Selection strategies:
//
//   - StrategyScan (default): linear re-scan of the unvisited nodes, O(V²).
//     Simple and fast enough for small graphs.
//   - StrategyHeap: binary min-heap with lazy deletion, O((V + E) log V).
//
// Both break ties by node ID, so they return identical tables. Among several
// equal-cost paths the one returned is whichever was discovered first; its
// distance is always optimal.
//
// Error handling (sentinel errors, test with errors.Is):
//
//   - ErrNilGraph:     nil graph passed to Solve.
//   - ErrEmptySource:  empty start ID.
//   - ErrUnknownNode:  start or end node not in the graph.
//   - ErrUnreachable:  end node has infinite distance after solving.
//   - ErrBrokenChain:  predecessor chain is missing a link or cycles.
//   - ErrBadStrategy:  unknown Strategy value.
//
// Example usage:
//
//	g, err := graph.Build([]graph.Edge{
//	    {A: "A", B: "B", Weight: 1},
//	    {A: "B", B: "C", Weight: 2},
//	    {A: "A", B: "C", Weight: 4},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	res, err := dijkstra.ShortestPath(g, "A", "C")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Path, res.Distance) // [A B C] 3
//
// Thread safety:
//
//   - Solve allocates all of its state per call and only reads the graph.
//     Concurrent queries on one *graph.Graph are safe.
package dijkstra
