package spatial_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/corvid-games/waymesh/spatial"
)

func bounds() spatial.Rect {
	return spatial.Rect{MinX: 0, MinY: 0, MaxX: 1000, MaxY: 1000}
}

func TestInsert_OutsideBoundary_ReturnsFalse(t *testing.T) {
	idx := spatial.New(bounds())
	require.False(t, idx.Insert(1, -5, -5))
	require.Equal(t, 0, idx.Len())
}

func TestInsert_InsideBoundary_Succeeds(t *testing.T) {
	idx := spatial.New(bounds())
	require.True(t, idx.Insert(1, 10, 10))
	require.Equal(t, 1, idx.Len())
}

// TestRadiusQuery_S6 covers nodes at (10,10), (20,20), (500,500);
// QueryRadius(15,15,50) returns exactly {1,2}.
func TestRadiusQuery_S6(t *testing.T) {
	idx := spatial.New(bounds())
	require.True(t, idx.Insert(1, 10, 10))
	require.True(t, idx.Insert(2, 20, 20))
	require.True(t, idx.Insert(3, 500, 500))

	got := idx.QueryRadius(15, 15, 50, nil)
	require.ElementsMatch(t, []int64{1, 2}, got)
}

func TestQueryRect_BoundaryInclusive(t *testing.T) {
	idx := spatial.New(bounds())
	idx.Insert(1, 100, 100)
	idx.Insert(2, 200, 200)
	idx.Insert(3, 900, 900)

	got := idx.QueryRect(spatial.Rect{MinX: 0, MinY: 0, MaxX: 200, MaxY: 200}, nil)
	require.ElementsMatch(t, []int64{1, 2}, got)
}

func TestSubdivision_ManyPoints_AllFindable(t *testing.T) {
	idx := spatial.New(bounds())
	for i := int64(0); i < 200; i++ {
		x := float32(i % 100 * 9)
		y := float32(i / 100 * 9)
		require.True(t, idx.Insert(i, x, y))
	}
	got := idx.QueryRect(bounds(), nil)
	require.Len(t, got, 200)
}

func TestRemove(t *testing.T) {
	idx := spatial.New(bounds())
	idx.Insert(1, 10, 10)
	idx.Insert(2, 20, 20)
	require.True(t, idx.Remove(1))
	require.False(t, idx.Remove(1)) // idempotent: already gone
	got := idx.QueryRect(bounds(), nil)
	require.ElementsMatch(t, []int64{2}, got)
}

func TestUpdate_MovesPoint(t *testing.T) {
	idx := spatial.New(bounds())
	idx.Insert(1, 10, 10)
	require.True(t, idx.Update(1, 900, 900))
	got := idx.QueryRadius(900, 900, 1, nil)
	require.ElementsMatch(t, []int64{1}, got)
	got = idx.QueryRadius(10, 10, 1, nil)
	require.Empty(t, got)
}

func TestResetWithBoundaries_GutterAllowsHullPoint(t *testing.T) {
	idx := spatial.New(spatial.Rect{})
	idx.ResetWithBoundaries([]spatial.Point{
		{ID: 1, X: 0, Y: 0},
		{ID: 2, X: 100, Y: 100},
	})
	// A point slightly beyond the original hull must still be insertable
	// thanks to the gutter margin.
	require.True(t, idx.Insert(3, -50, -50))
}

func TestQueryRadius_OutsidePointNeverReturned(t *testing.T) {
	idx := spatial.New(bounds())
	idx.Insert(1, 0, 0)
	idx.Insert(2, 999, 999)
	got := idx.QueryRadius(0, 0, 5, nil)
	require.ElementsMatch(t, []int64{1}, got)
}
