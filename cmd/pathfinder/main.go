// Command pathfinder reads a TOML route file, computes the shortest path
// between its start and end nodes, and prints the path followed by the
// total distance.
//
// Usage:
//
//	pathfinder -file route.toml [-start A] [-end C] [-strategy scan|heap] [-sep ""] [-v]
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/pathfinder/dijkstra"
	"github.com/katalvlaran/pathfinder/internal/routefile"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run is main without the process exit, so it can be driven from tests.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("pathfinder", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		file     = fs.String("file", "", "path to the TOML route file (required)")
		start    = fs.String("start", "", "start node, overrides the file")
		end      = fs.String("end", "", "end node, overrides the file")
		strategy = fs.String("strategy", "scan", "next-node selection: scan or heap")
		sep      = fs.String("sep", "", "separator between nodes of the printed path")
		verbose  = fs.Bool("v", false, "debug logging of every solver step")
	)
	if err := fs.Parse(args); err != nil {
		return 2
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	if *file == "" {
		logger.Error("missing -file")
		fs.Usage()
		return 2
	}

	s, err := dijkstra.ParseStrategy(*strategy)
	if err != nil {
		logger.Error("invalid -strategy", "error", err)
		return 2
	}

	rf, err := routefile.Load(*file)
	if err != nil {
		logger.Error("load route file", "error", err)
		return 1
	}
	if *start != "" {
		rf.Start = *start
	}
	if *end != "" {
		rf.End = *end
	}
	if err := rf.Validate(); err != nil {
		logger.Error("invalid route file", "error", err)
		return 1
	}

	g, err := rf.Graph()
	if err != nil {
		logger.Error("build graph", "error", err)
		return 1
	}
	logger.Debug("graph loaded", "nodes", g.Order(), "edges", g.Size(), "strategy", s)

	res, err := dijkstra.ShortestPath(g, rf.Start, rf.End,
		dijkstra.WithStrategy(s),
		dijkstra.WithLogger(logger),
	)
	if err != nil {
		logger.Error("shortest path", "start", rf.Start, "end", rf.End, "error", err)
		return 1
	}

	fmt.Fprintln(stdout, strings.Join(res.Path, *sep))
	fmt.Fprintln(stdout, strconv.FormatFloat(res.Distance, 'g', -1, 64))

	return 0
}
