package oracle

import (
	"testing"

	"github.com/corvid-games/waymesh/heuristic"
	"github.com/corvid-games/waymesh/mapgraph"
	"github.com/stretchr/testify/require"
)

func buildGrid5x5(t *testing.T) (*mapgraph.Graph, mapgraph.GridHelper) {
	t.Helper()
	g := mapgraph.NewGraph()
	helper, err := g.CreateGrid(mapgraph.GridConfig{Cols: 5, Rows: 5, CellSize: 10})
	require.NoError(t, err)
	require.NoError(t, g.ConnectAsGrid4(10))
	return g, helper
}

// TestFloydWarshall_AStar_Equivalence covers scenario S5: on a 5x5 grid,
// FW.value(0,24) == A*.value(0,24) for Euclidean, Manhattan, Octile, Zero.
func TestFloydWarshall_AStar_Equivalence(t *testing.T) {
	g, helper := buildGrid5x5(t)
	src := helper.ToNodeID(0, 0)
	dst := helper.ToNodeID(4, 4)

	d := NewDense(Options{Variant: Legacy})
	for _, n := range g.Nodes() {
		for _, e := range n.OutgoingEdges {
			d.AddEdgeWithMapping(n.ID, e.To, e.Weight)
		}
	}
	require.NoError(t, d.Generate())
	fwDist, ok := d.ValueWithMapping(src, dst)
	require.True(t, ok)

	heuristics := map[string]heuristic.Func{
		"euclidean": heuristic.Euclidean,
		"manhattan": heuristic.Manhattan,
		"octile":    heuristic.Octile,
		"zero":      heuristic.Zero,
	}
	for name, h := range heuristics {
		a := NewAStar(g, h)
		cost, _, found := a.FindPath(src, dst)
		require.True(t, found, "heuristic %s should find a path", name)
		require.InDelta(t, fwDist, cost, 1, "heuristic %s mismatched FW distance", name)
	}
}

func TestAStar_SameNode(t *testing.T) {
	g, helper := buildGrid5x5(t)
	n := helper.ToNodeID(2, 2)
	a := NewAStar(g, heuristic.Euclidean)
	cost, path, ok := a.FindPath(n, n)
	require.True(t, ok)
	require.Equal(t, float32(0), cost)
	require.Equal(t, []mapgraph.NodeID{n}, path)
}

func TestAStar_NoPath(t *testing.T) {
	g := mapgraph.NewGraph()
	require.NoError(t, g.AddNode(0, 0, 0))
	require.NoError(t, g.AddNode(1, 100, 100))
	a := NewAStar(g, heuristic.Euclidean)
	_, _, ok := a.FindPath(0, 1)
	require.False(t, ok)
}

func TestAStar_ReconstructsShortestPath(t *testing.T) {
	g := mapgraph.NewGraph()
	require.NoError(t, g.AddNode(0, 0, 0))
	require.NoError(t, g.AddNode(1, 10, 0))
	require.NoError(t, g.AddNode(2, 20, 0))
	require.NoError(t, g.AddEdge(0, 1, 10, true))
	require.NoError(t, g.AddEdge(1, 2, 10, true))
	require.NoError(t, g.AddEdge(0, 2, 100, true))

	a := NewAStar(g, heuristic.Euclidean)
	cost, path, ok := a.FindPath(0, 2)
	require.True(t, ok)
	require.Equal(t, []mapgraph.NodeID{0, 1, 2}, path)
	require.Equal(t, float32(20), cost)
}
