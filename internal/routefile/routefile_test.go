package routefile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathfinder/graph"
	"github.com/katalvlaran/pathfinder/internal/routefile"
)

const triangleTOML = `
start = "A"
end = "C"
nodes = ["D"]

[[edge]]
from = "A"
to = "B"
weight = 1.0

[[edge]]
from = "B"
to = "C"
weight = 2.0

[[edge]]
from = "A"
to = "C"
weight = 4.0
`

func TestParse_Triangle(t *testing.T) {
	f, err := routefile.Parse([]byte(triangleTOML))
	require.NoError(t, err)
	require.NoError(t, f.Validate())
	require.Equal(t, "A", f.Start)
	require.Equal(t, "C", f.End)
	require.Equal(t, []string{"D"}, f.Nodes)
	require.Len(t, f.Edges, 3)
	require.Equal(t, routefile.Edge{From: "B", To: "C", Weight: 2}, f.Edges[1])

	g, err := f.Graph()
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B", "C", "D"}, g.Nodes())
	require.Equal(t, 3, g.Size())
}

func TestParse_UnknownKey(t *testing.T) {
	_, err := routefile.Parse([]byte("start = \"A\"\nend = \"B\"\n[[edge]]\nfrom = \"A\"\nto = \"B\"\nwieght = 1.0\n"))
	require.Error(t, err)
}

func TestParse_Malformed(t *testing.T) {
	_, err := routefile.Parse([]byte("start = "))
	require.Error(t, err)
}

func TestValidate_MissingEndpoint(t *testing.T) {
	f, err := routefile.Parse([]byte(`start = "A"`))
	require.NoError(t, err)
	require.ErrorIs(t, f.Validate(), routefile.ErrMissingEndpoint)
}

func TestGraph_InvalidEdge(t *testing.T) {
	f := &routefile.File{
		Start: "A",
		End:   "B",
		Edges: []routefile.Edge{{From: "A", To: "B", Weight: -3}},
	}
	_, err := f.Graph()
	require.ErrorIs(t, err, graph.ErrNegativeWeight)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "route.toml")
	require.NoError(t, os.WriteFile(path, []byte(triangleTOML), 0o600))

	f, err := routefile.Load(path)
	require.NoError(t, err)
	require.Equal(t, "C", f.End)

	_, err = routefile.Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
