package mapgraph

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCreateGrid_InvalidConfig(t *testing.T) {
	g := NewGraph()
	_, err := g.CreateGrid(GridConfig{Cols: 0, Rows: 3, CellSize: 10})
	require.ErrorIs(t, err, ErrInvalidGridConfig)

	_, err = g.CreateGrid(GridConfig{Cols: 3, Rows: 3, CellSize: 0})
	require.ErrorIs(t, err, ErrInvalidGridConfig)
}

// TestGridHelper_RoundTrip covers testable property 8: (col,row) <-> NodeId
// conversion round-trips via row*cols+col.
func TestGridHelper_RoundTrip(t *testing.T) {
	g := NewGraph()
	helper, err := g.CreateGrid(GridConfig{Cols: 5, Rows: 4, CellSize: 10})
	require.NoError(t, err)
	require.Equal(t, 20, g.Len())

	for row := 0; row < 4; row++ {
		for col := 0; col < 5; col++ {
			id := helper.ToNodeID(col, row)
			gotCol, gotRow := helper.FromNodeID(id)
			require.Equal(t, col, gotCol)
			require.Equal(t, row, gotRow)
			require.True(t, g.HasNode(id))
		}
	}
}

func TestCreateGrid_NodePositions(t *testing.T) {
	g := NewGraph()
	helper, err := g.CreateGrid(GridConfig{Cols: 3, Rows: 2, CellSize: 10, OriginX: 100, OriginY: 200})
	require.NoError(t, err)

	id := helper.ToNodeID(2, 1)
	x, y, ok := g.GetNodePosition(id)
	require.True(t, ok)
	require.Equal(t, float32(120), x)
	require.Equal(t, float32(210), y)
}

func TestConnectAsGrid4(t *testing.T) {
	g := NewGraph()
	_, err := g.CreateGrid(GridConfig{Cols: 3, Rows: 3, CellSize: 10})
	require.NoError(t, err)
	require.NoError(t, g.ConnectAsGrid4(10))

	// center node (1,1) -> id 4 should connect to its 4 orthogonal neighbours only.
	edges, ok := g.GetEdges(4)
	require.True(t, ok)
	require.Len(t, edges, 4)
	require.ElementsMatch(t, []NodeID{1, 3, 5, 7}, edges)
}

func TestConnectAsGrid8(t *testing.T) {
	g := NewGraph()
	_, err := g.CreateGrid(GridConfig{Cols: 3, Rows: 3, CellSize: 10})
	require.NoError(t, err)
	require.NoError(t, g.ConnectAsGrid8(10))

	edges, ok := g.GetEdges(4)
	require.True(t, ok)
	require.Len(t, edges, 8)
}
