package oracle

import "github.com/corvid-games/waymesh/mapgraph"

// Source is the contract engine.Engine drives its per-tick next-hop lookups
// through. Dense is the only built-in implementation: the movement
// scheduler calls NextWithMapping once per entity per tick, which needs the
// O(1) matrix read Dense gives and which a fresh per-tick AStar.FindPath
// search cannot match at that call frequency. AStar is exposed separately
// for callers who want an on-demand single path rather than a live oracle
// wired into the engine — choosing a precomputation strategy is a
// construction-time decision, not a per-call one. NodeID is
// mapgraph.NodeID throughout; the oracle package assigns each a dense
// internal index lazily.
type Source interface {
	// Resize prepares capacity for n nodes without assigning any ids yet.
	Resize(n int)
	// Clean resets to empty: clears the id<->index mapping and, for Dense,
	// the distance/next matrices.
	Clean()
	// AddEdgeWithMapping lazily assigns internal indices to u and v if
	// unseen, then records a directed edge of weight w.
	AddEdgeWithMapping(u, v mapgraph.NodeID, w uint32)
	// Generate completes the structure so queries below are valid.
	Generate() error
	// ValueWithMapping returns the shortest known distance u->v.
	ValueWithMapping(u, v mapgraph.NodeID) (uint64, bool)
	// HasPathWithMapping reports whether any path connects u to v.
	HasPathWithMapping(u, v mapgraph.NodeID) bool
	// NextWithMapping returns the next hop from u toward v.
	NextWithMapping(u, v mapgraph.NodeID) (mapgraph.NodeID, bool)
	// SetPathWithMapping appends the full node sequence from u to v
	// (inclusive) to out and returns the extended slice.
	SetPathWithMapping(out []mapgraph.NodeID, u, v mapgraph.NodeID) ([]mapgraph.NodeID, bool)
}

// FWVariant selects a Floyd-Warshall implementation strategy.
type FWVariant int

const (
	// Legacy is the classical scalar O(N^3) triple loop.
	Legacy FWVariant = iota
	// SIMDWidth4 unrolls the inner j loop four-wide with a scalar tail.
	SIMDWidth4
	// Parallel partitions the i loop across a worker pool for each fixed k.
	Parallel
)

func (v FWVariant) String() string {
	switch v {
	case Legacy:
		return "legacy"
	case SIMDWidth4:
		return "optimized_simd"
	case Parallel:
		return "optimized_parallel"
	default:
		return "unknown"
	}
}

// Options configures a Dense oracle.
type Options struct {
	Variant FWVariant
	// WorkerCount bounds the Parallel variant's goroutine count. Ignored
	// by Legacy and SIMDWidth4. Defaults to runtime.GOMAXPROCS(0) if <= 0.
	WorkerCount int
}

const infDist = ^uint64(0) // INF sentinel: max uint64, never a real path cost
