// Package pathfinder computes shortest paths over small, static, weighted,
// undirected graphs with Dijkstra's algorithm.
//
// Everything is organized under these subpackages:
//
//	graph/              — immutable symmetric adjacency structure + builders
//	dijkstra/           — distance table, solver (scan or heap), path reconstruction
//	internal/routefile/ — TOML route-file loading for the command
//	cmd/pathfinder/     — command-line front end
//
// Quick ASCII example:
//
//	    A──1──B
//	     \    │
//	      4   2
//	       \  │
//	         C
//
// The shortest route A→C is A→B→C with total weight 3, beating the direct
// edge of weight 4.
//
//	go install github.com/katalvlaran/pathfinder/cmd/pathfinder@latest
package pathfinder
