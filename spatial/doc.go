// Package spatial implements SpatialIndex: a quadtree over 2D points
// keyed by an opaque integer identifier (a mapgraph.NodeID or an entity
// id — this package stays dependency-free and takes plain int64 keys).
//
// Overview:
//
//   - Insert/Remove/Update a point by id.
//   - QueryRadius and QueryRect return every id whose point falls inside
//     the query shape; order is unspecified (callers sort if they need
//     determinism — see engine, which iterates entities by id already).
//   - Storage is index-based: quadtree nodes live in a flat, growable
//     arena (a []quadNode) and reference children by arena index, never
//     by pointer, so subdivision never invalidates a caller's handle.
//     This mirrors the flat row-major backing slice the rest of this
//     module's distance matrices use (see oracle.Dense) rather than
//     a classic pointer-linked quad tree.
//
// Failure mode: Insert returns false (silently) when the point falls
// outside the tree's current boundary. Callers that grow their world
// must call ResetWithBoundaries before inserting points outside the
// original bounds; this package never auto-grows the root, by design —
// auto-growing a quadtree root retroactively invalidates every existing
// leaf's quadrant math, which is worse than a cheap, explicit rebuild.
package spatial
