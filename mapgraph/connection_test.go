package mapgraph

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConnectNodes_NilMode(t *testing.T) {
	g := NewGraph()
	require.ErrorIs(t, g.ConnectNodes(nil), ErrNilConnectionMode)
}

func TestConnectNodes_Omnidirectional(t *testing.T) {
	g := NewGraph()
	require.NoError(t, g.AddNode(0, 0, 0))
	require.NoError(t, g.AddNode(1, 10, 0))
	require.NoError(t, g.AddNode(2, 20, 0))
	require.NoError(t, g.AddNode(3, 1000, 1000))

	require.NoError(t, g.ConnectNodes(Omnidirectional{MaxDistance: 15, MaxConnections: 4}))

	edges, ok := g.GetEdges(0)
	require.True(t, ok)
	require.ElementsMatch(t, []NodeID{1}, edges)

	edges, ok = g.GetEdges(1)
	require.True(t, ok)
	require.ElementsMatch(t, []NodeID{0, 2}, edges)

	edges, ok = g.GetEdges(3)
	require.True(t, ok)
	require.Empty(t, edges)
}

func TestConnectNodes_Omnidirectional_MaxConnectionsCap(t *testing.T) {
	g := NewGraph()
	require.NoError(t, g.AddNode(0, 0, 0))
	for i := NodeID(1); i <= 5; i++ {
		require.NoError(t, g.AddNode(i, float32(i)*1, 0))
	}
	require.NoError(t, g.ConnectNodes(Omnidirectional{MaxDistance: 100, MaxConnections: 2}))

	edges, ok := g.GetEdges(0)
	require.True(t, ok)
	require.Len(t, edges, 2)
	require.ElementsMatch(t, []NodeID{1, 2}, edges)
}

func TestConnectNodes_Directional_LeftRightUpDown(t *testing.T) {
	g := NewGraph()
	require.NoError(t, g.AddNode(0, 50, 50)) // center
	require.NoError(t, g.AddNode(1, 40, 50)) // left
	require.NoError(t, g.AddNode(2, 60, 50)) // right
	require.NoError(t, g.AddNode(3, 50, 40)) // up (smaller y)
	require.NoError(t, g.AddNode(4, 50, 60)) // down

	require.NoError(t, g.ConnectNodes(Directional{HorizontalRange: 20, VerticalRange: 20}))

	de, ok := g.GetDirectionalEdges(0)
	require.True(t, ok)
	require.NotNil(t, de.Left)
	require.Equal(t, NodeID(1), *de.Left)
	require.NotNil(t, de.Right)
	require.Equal(t, NodeID(2), *de.Right)
	require.NotNil(t, de.Up)
	require.Equal(t, NodeID(3), *de.Up)
	require.NotNil(t, de.Down)
	require.Equal(t, NodeID(4), *de.Down)

	// reciprocal: node 1 (left neighbour) should see node 0 as its right neighbour.
	de1, ok := g.GetDirectionalEdges(1)
	require.True(t, ok)
	require.NotNil(t, de1.Right)
	require.Equal(t, NodeID(0), *de1.Right)
}

func TestConnectNodes_Directional_OutOfBand(t *testing.T) {
	g := NewGraph()
	require.NoError(t, g.AddNode(0, 0, 0))
	require.NoError(t, g.AddNode(1, -10, 100)) // far outside the perpendicular band

	require.NoError(t, g.ConnectNodes(Directional{HorizontalRange: 20, VerticalRange: 20}))

	de, ok := g.GetDirectionalEdges(0)
	require.True(t, ok)
	require.Nil(t, de.Left)
}

func TestConnectNodes_Building_VerticalRequiresStairPair(t *testing.T) {
	g := NewGraph()
	require.NoError(t, g.AddNode(0, 0, 0))
	require.NoError(t, g.AddNode(1, 0, 10))
	require.NoError(t, g.ConnectNodes(Building{HorizontalRange: 5, FloorHeight: 20}))

	edges, _ := g.GetEdges(0)
	require.Empty(t, edges, "neither node is a stair, no vertical edge should form")

	require.NoError(t, g.SetStairMode(0, StairModeAll))
	require.NoError(t, g.SetStairMode(1, StairModeAll))
	require.NoError(t, g.ConnectNodes(Building{HorizontalRange: 5, FloorHeight: 20}))

	edges, ok := g.GetEdges(0)
	require.True(t, ok)
	require.Contains(t, edges, NodeID(1))
}

func TestConnectNodes_RebuildClearsPreviousEdges(t *testing.T) {
	g := NewGraph()
	require.NoError(t, g.AddNode(0, 0, 0))
	require.NoError(t, g.AddNode(1, 5, 0))
	require.NoError(t, g.ConnectNodes(Omnidirectional{MaxDistance: 100, MaxConnections: 4}))
	edges, _ := g.GetEdges(0)
	require.NotEmpty(t, edges)

	require.NoError(t, g.ConnectNodes(Omnidirectional{MaxDistance: 1, MaxConnections: 4}))
	edges, _ = g.GetEdges(0)
	require.Empty(t, edges)
}
