// Package oracle answers "what's the next hop from u toward v, and how
// far is it" queries over a mapgraph.Graph's node set, with two
// implementations for two different access patterns:
//
//   - Dense precomputes all-pairs shortest paths with Floyd-Warshall in
//     one of three variants (Legacy scalar, SIMDWidth4, Parallel) and
//     answers queries in O(1) through the Source contract; it must be
//     rebuilt (Generate) after any graph mutation. This is what engine.Engine
//     drives its per-tick next-hop lookups through.
//   - AStar computes a single source->destination path on demand with a
//     binary-heap search, for sparse or frequently-changing graphs where
//     precomputing all pairs would be wasted work. It is a standalone
//     query, not a Source implementation.
//
// Dense uses a row-major id<->index mapping idiom: node ids are assigned
// a dense internal index the first time they are seen by
// AddEdgeWithMapping, mirroring how matrix.Dense backs lvlath's adjacency
// matrix with a flat buffer addressed by row*n+col. AStar keeps no such
// mapping; it reads node ids and edges straight from the graph.
package oracle
