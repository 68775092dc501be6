// Package engine is the Facade: it bundles Graph, the DistanceOracle,
// StairRegistry, and the per-entity movement state machines behind the
// public operations a game loop calls once per frame, and fires user
// callbacks as entities reach nodes, complete paths, get blocked, or queue
// at a stair.
//
// Engine is generic over the caller's entity id type and a Context type
// threaded opaquely through every callback, following the same
// type-parameter idiom as the genetic-algorithm Engine[S, F] reference it's
// grounded on.
//
// Scheduling is single-threaded cooperative: Tick is the only entry point
// that advances entity movement, and callers must not call back into the
// Engine from inside a callback.
package engine
