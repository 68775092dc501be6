// Package entity defines the per-entity movement state the engine package
// advances every tick: position, speed, the current/target/next waypoint,
// and the two mutually-exclusive stair-interaction flags (UsingStair,
// WaitingForStair), which must never both be set at once.
package entity

import "github.com/corvid-games/waymesh/mapgraph"

// MovementState classifies what an entity is doing this tick.
type MovementState int

const (
	// Idle: no active path, not occupying or waiting for a stair.
	Idle MovementState = iota
	// Moving: advancing toward NextNode along an edge.
	Moving
	// WaitingForStair: parked at a waiting-area node, retrying admission
	// to WaitingForStair every tick.
	WaitingForStair
	// UsingStair: holds admission on a stair segment, advancing toward it
	// exactly like Moving (stairs are traversed, never teleported across).
	UsingStair
)

func (s MovementState) String() string {
	switch s {
	case Idle:
		return "idle"
	case Moving:
		return "moving"
	case WaitingForStair:
		return "waiting_for_stair"
	case UsingStair:
		return "using_stair"
	default:
		return "unknown"
	}
}

// Entity is one tracked mover. ID is the caller-chosen identifier;
// [engine.Engine] is generic over its type so a caller can key entities
// however its own simulation already does.
type Entity[ID comparable] struct {
	ID    ID
	X, Y  float32
	Speed float32

	State MovementState

	CurrentNode mapgraph.NodeID
	HasCurrent  bool

	TargetNode mapgraph.NodeID
	HasTarget  bool

	NextNode mapgraph.NodeID
	HasNext  bool

	UsingStair    mapgraph.NodeID
	HasUsingStair bool

	WaitingForStair    mapgraph.NodeID
	HasWaitingForStair bool
}

// New returns an Idle entity at (x,y) with no active path.
func New[ID comparable](id ID, x, y, speed float32) *Entity[ID] {
	return &Entity[ID]{ID: id, X: x, Y: y, Speed: speed, State: Idle}
}

// Reset clears path, target, next-hop, and both stair flags, returning the
// entity to Idle at its current position. It does NOT release any held
// stair admission — callers (engine.CancelPath) must do that first and
// pass back the prior stair ids if they need to report them.
func (e *Entity[ID]) Reset() {
	e.State = Idle
	e.HasTarget = false
	e.HasNext = false
	e.HasUsingStair = false
	e.HasWaitingForStair = false
}

// IsMoving reports whether the entity has an active path or stair
// interaction.
func (e *Entity[ID]) IsMoving() bool {
	return e.State != Idle
}
