// Package routefile loads a shortest-path query (graph, start, end) from a
// TOML document.
//
//	start = "A"
//	end   = "C"
//	nodes = ["D"]   # optional isolated nodes
//
//	[[edge]]
//	from   = "A"
//	to     = "B"
//	weight = 1.0
package routefile

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/katalvlaran/pathfinder/graph"
)

// ErrMissingEndpoint indicates that start or end was not provided.
var ErrMissingEndpoint = errors.New("routefile: start and end are required")

// Edge is one [[edge]] table.
type Edge struct {
	From   string  `toml:"from"`
	To     string  `toml:"to"`
	Weight float64 `toml:"weight"`
}

// File is a decoded route file.
type File struct {
	Start string   `toml:"start"`
	End   string   `toml:"end"`
	Nodes []string `toml:"nodes"`
	Edges []Edge   `toml:"edge"`
}

// Load reads and decodes the route file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read route file '%s': %w", path, err)
	}

	return Parse(data)
}

// Parse decodes a route file. Unknown keys are rejected so that typos such
// as "wieght" do not silently become zero weights.
func Parse(data []byte) (*File, error) {
	var f File
	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}

	return &f, nil
}

// Validate checks that both endpoints are set.
func (f *File) Validate() error {
	if f.Start == "" || f.End == "" {
		return fmt.Errorf("%w (start=%q end=%q)", ErrMissingEndpoint, f.Start, f.End)
	}

	return nil
}

// Graph builds the graph described by the file. Edges keep file order, so a
// pair listed twice takes the later weight.
func (f *File) Graph() (*graph.Graph, error) {
	edges := make([]graph.Edge, len(f.Edges))
	for i, e := range f.Edges {
		edges[i] = graph.Edge{A: e.From, B: e.To, Weight: e.Weight}
	}

	g, err := graph.Build(edges, graph.WithNodes(f.Nodes...))
	if err != nil {
		return nil, fmt.Errorf("routefile: %w", err)
	}

	return g, nil
}
