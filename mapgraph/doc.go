// Package mapgraph owns the waypoint graph: nodes with a 2D position and
// an optional stair attribute, their outgoing edges, a derived
// left/right/up/down directional-edge cache, and the three auto-
// connection strategies (Omnidirectional, Directional, Building) that
// populate edges from node positions alone.
//
// Graph is guarded by a pair of sync.RWMutex (one for the node catalog,
// one for edges/directional cache), mirroring core.Graph's muVert /
// muEdgeAdj split — even though the wider engine is documented as
// single-threaded per instance (see the engine package), the lock lets a
// caller safely run read-only queries (GetNodePosition, GetEdges, ...)
// from a render or debug-overlay thread while the owning goroutine
// mutates the graph between ticks.
//
// Node removal is a caller contract: spec forbids removing a node that a
// live entity currently occupies or targets, and this package has no way
// to check that (entity state lives in a sibling package with no import
// back into mapgraph). RemoveNode does enforce the graph-internal half of
// that contract — it refuses to remove a node still referenced by an
// edge, a waiting area, or a directional-edge slot — returning
// ErrNodeInUse rather than leaving dangling references.
package mapgraph
