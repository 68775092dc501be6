// Package stair implements the per-stair admission protocol: StairMode.All
// lets unlimited entities through; StairMode.Single lets through at most
// one; StairMode.Direction lets unlimited entities through provided they
// all travel the same Direction. StairMode.None stairs are not registered
// here at all — they have no admission protocol.
//
// StairRegistry is guarded by a single sync.Mutex rather than mapgraph's
// split-lock pattern: unlike Graph, every StairRegistry operation touches
// both the users-count and direction fields of the same stair atomically
// (TryEnter reads both to decide, then writes both on admission), so two
// separate locks would buy nothing but lock-ordering risk.
package stair
