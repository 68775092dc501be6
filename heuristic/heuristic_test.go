package heuristic_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/corvid-games/waymesh/heuristic"
)

func TestHeuristics_SamePoint(t *testing.T) {
	p := heuristic.Point{X: 3, Y: 4}
	for name, fn := range map[string]heuristic.Func{
		"euclidean": heuristic.Euclidean,
		"manhattan": heuristic.Manhattan,
		"chebyshev": heuristic.Chebyshev,
		"octile":    heuristic.Octile,
		"zero":      heuristic.Zero,
	} {
		require.InDelta(t, 0, fn(p, p), 1e-6, name)
	}
}

func TestEuclidean_3_4_5Triangle(t *testing.T) {
	a := heuristic.Point{X: 0, Y: 0}
	b := heuristic.Point{X: 3, Y: 4}
	require.InDelta(t, 5.0, heuristic.Euclidean(a, b), 1e-5)
}

func TestManhattan(t *testing.T) {
	a := heuristic.Point{X: 0, Y: 0}
	b := heuristic.Point{X: 3, Y: 4}
	require.InDelta(t, 7.0, heuristic.Manhattan(a, b), 1e-5)
}

func TestChebyshev(t *testing.T) {
	a := heuristic.Point{X: 0, Y: 0}
	b := heuristic.Point{X: 3, Y: 4}
	require.InDelta(t, 4.0, heuristic.Chebyshev(a, b), 1e-5)
}

func TestOctile_AxisAligned_MatchesManhattan(t *testing.T) {
	a := heuristic.Point{X: 0, Y: 0}
	b := heuristic.Point{X: 5, Y: 0}
	require.InDelta(t, 5.0, heuristic.Octile(a, b), 1e-5)
}

func TestOctile_Diagonal(t *testing.T) {
	a := heuristic.Point{X: 0, Y: 0}
	b := heuristic.Point{X: 3, Y: 3}
	require.InDelta(t, 3*1.4142135, heuristic.Octile(a, b), 1e-4)
}

func TestZero_AlwaysZero(t *testing.T) {
	require.Equal(t, float32(0), heuristic.Zero(heuristic.Point{X: 1, Y: 1}, heuristic.Point{X: 100, Y: -100}))
}
