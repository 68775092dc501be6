// Package waymesh is a self-contained runtime for game waypoint-graph
// pathfinding: build a graph of nodes, auto-connect it under one of three
// strategies, generate an all-pairs shortest-path table (or fall back to
// A*), and tick entities across it one fixed delta at a time.
//
// 🚀 What is waymesh?
//
//	A thread-safe, small-dependency library that brings together:
//
//	  • mapgraph   — nodes, edges, three auto-connection strategies, grids
//	  • oracle     — Floyd-Warshall (legacy/SIMD/parallel) and A*
//	  • stair      — multi-floor admission gating (all/single/direction)
//	  • entity     — per-entity movement state
//	  • engine     — the Facade: register entities, request paths, Tick
//	  • spatial    — a quadtree for radius/rect entity and node queries
//
// ✨ Why choose waymesh?
//
//   - Beginner-friendly — one Engine, five operations, five callbacks
//   - Rock-solid        — mutex-guarded graph and stair state, deterministic tick order
//   - Extensible        — custom heuristics, pluggable Floyd-Warshall variants
//   - Engine-agnostic   — generic over entity id and callback context types
//
// Quick example: three nodes in a line, one entity walking from end to end.
//
//	    0───1───2
//
//	g := mapgraph.NewGraph()
//	g.AddNode(0, 0, 0)
//	g.AddNode(1, 100, 0)
//	g.AddNode(2, 200, 0)
//	g.ConnectNodes(mapgraph.Omnidirectional{MaxDistance: 150, MaxConnections: 4})
//
//	e := engine.New[int, struct{}](g)
//	e.RebuildPaths()
//	e.RegisterEntity(1, 0, 0, 100)
//	e.RequestPath(1, 2)
//	e.Tick(struct{}{}, 0.1)
//
// Dive into SPEC_FULL.md and DESIGN.md for the full component breakdown and
// the decisions behind it.
//
//	go get github.com/corvid-games/waymesh
package waymesh
