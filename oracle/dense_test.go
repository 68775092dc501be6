package oracle

import (
	"testing"

	"github.com/corvid-games/waymesh/mapgraph"
	"github.com/stretchr/testify/require"
)

func buildTriangle(d *Dense) {
	d.AddEdgeWithMapping(0, 1, 5)
	d.AddEdgeWithMapping(1, 2, 5)
	d.AddEdgeWithMapping(0, 2, 20)
}

func TestDense_SelfDistanceAndNext(t *testing.T) {
	for _, variant := range []FWVariant{Legacy, SIMDWidth4, Parallel} {
		d := NewDense(Options{Variant: variant})
		buildTriangle(d)
		require.NoError(t, d.Generate())

		for _, id := range []mapgraph.NodeID{0, 1, 2} {
			v, ok := d.ValueWithMapping(id, id)
			require.True(t, ok)
			require.Equal(t, uint64(0), v, "variant %v", variant)

			n, ok := d.NextWithMapping(id, id)
			require.True(t, ok)
			require.Equal(t, id, n, "variant %v", variant)
		}
	}
}

func TestDense_RelaxesThroughIntermediate(t *testing.T) {
	for _, variant := range []FWVariant{Legacy, SIMDWidth4, Parallel} {
		d := NewDense(Options{Variant: variant})
		buildTriangle(d)
		require.NoError(t, d.Generate())

		v, ok := d.ValueWithMapping(0, 2)
		require.True(t, ok)
		require.Equal(t, uint64(10), v, "variant %v should relax 0->2 via 1", variant)

		nxt, ok := d.NextWithMapping(0, 2)
		require.True(t, ok)
		require.Equal(t, mapgraph.NodeID(1), nxt)

		path, ok := d.SetPathWithMapping(nil, 0, 2)
		require.True(t, ok)
		require.Equal(t, []mapgraph.NodeID{0, 1, 2}, path)
	}
}

func TestDense_NoPath(t *testing.T) {
	d := NewDense(Options{Variant: Legacy})
	d.AddEdgeWithMapping(0, 1, 1)
	d.Resize(3)
	d.AddEdgeWithMapping(2, 2, 0) // register node 2 with no edges to others
	require.NoError(t, d.Generate())

	_, ok := d.ValueWithMapping(0, 2)
	require.False(t, ok)
	require.False(t, d.HasPathWithMapping(0, 2))
}

// TestDense_TriangleInequality covers testable property 7: for any k
// reachable from u and v reachable from k, D[u][v] <= D[u][k] + D[k][v].
func TestDense_TriangleInequality(t *testing.T) {
	d := NewDense(Options{Variant: Legacy})
	edges := []struct {
		u, v mapgraph.NodeID
		w    uint32
	}{
		{0, 1, 4}, {1, 2, 3}, {2, 3, 7}, {0, 3, 100}, {3, 0, 2}, {1, 3, 9},
	}
	for _, e := range edges {
		d.AddEdgeWithMapping(e.u, e.v, e.w)
	}
	require.NoError(t, d.Generate())

	ids := []mapgraph.NodeID{0, 1, 2, 3}
	for _, u := range ids {
		for _, k := range ids {
			dUK, okUK := d.ValueWithMapping(u, k)
			if !okUK {
				continue
			}
			for _, v := range ids {
				dKV, okKV := d.ValueWithMapping(k, v)
				if !okKV {
					continue
				}
				dUV, okUV := d.ValueWithMapping(u, v)
				require.True(t, okUV, "if u->k and k->v both exist, u->v must exist")
				require.LessOrEqual(t, dUV, dUK+dKV)
			}
		}
	}
}

func TestDense_Clean(t *testing.T) {
	d := NewDense(Options{})
	buildTriangle(d)
	require.NoError(t, d.Generate())
	d.Clean()

	_, ok := d.ValueWithMapping(0, 1)
	require.False(t, ok)
}
