// Package heuristic provides the five named admissible-under-stated-
// movement-assumptions heuristic functions A* selects from, plus the
// function-pointer signature a caller's own heuristic must satisfy.
//
// These formulae are standard (Euclidean/Manhattan/Chebyshev/Octile
// distance, and the always-zero heuristic that degrades A* to Dijkstra)
// and are specified by the engine only as a signature: admissibility for
// a given movement model is the caller's responsibility, not this
// package's. Grounded on the single-file heuristic helper in the pack's
// geo-pathfinding reference (straight-line estimate feeding an A* fCost),
// generalized here to a named, swappable Func value.
package heuristic

import "math"

// Point is the minimal 2D position A* heuristics operate on. It mirrors
// the (x,y) pair on mapgraph.Node without importing mapgraph, keeping
// this package dependency-free.
type Point struct {
	X, Y float32
}

// Func computes an estimated cost from a to b. Custom heuristics supplied
// by a caller must match this signature; the engine never inspects a
// Func's internals, only calls it.
type Func func(a, b Point) float32

// Euclidean is the straight-line distance. Admissible whenever an entity
// may move in any direction at its nominal speed (no grid constraint).
func Euclidean(a, b Point) float32 {
	dx := float64(a.X - b.X)
	dy := float64(a.Y - b.Y)
	return float32(math.Sqrt(dx*dx + dy*dy))
}

// Manhattan is the sum of absolute axis deltas. Admissible for strictly
// 4-directional (grid) movement.
func Manhattan(a, b Point) float32 {
	return absf(a.X-b.X) + absf(a.Y-b.Y)
}

// Chebyshev is the max of absolute axis deltas. Admissible when diagonal
// movement costs the same as axis movement (8-directional, uniform cost).
func Chebyshev(a, b Point) float32 {
	dx, dy := absf(a.X-b.X), absf(a.Y-b.Y)
	if dx > dy {
		return dx
	}
	return dy
}

// Octile is Chebyshev generalized to the usual "diagonal costs sqrt(2)"
// 8-directional movement model: min(dx,dy)*sqrt(2) + |dx-dy|.
func Octile(a, b Point) float32 {
	dx, dy := absf(a.X-b.X), absf(a.Y-b.Y)
	lo, hi := dx, dy
	if lo > hi {
		lo, hi = hi, lo
	}
	const sqrt2 = 1.4142135623730951
	return float32(sqrt2)*lo + (hi - lo)
}

// Zero always returns 0, degrading A* to uniform-cost (Dijkstra-style)
// search. Always admissible; use when no geometric assumption about
// movement holds, or to sanity-check A* against the dense oracle.
func Zero(_, _ Point) float32 {
	return 0
}

func absf(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
