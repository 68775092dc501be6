package engine

import "errors"

var (
	// ErrEntityNotFound indicates an operation referenced an entity id
	// never registered, or already unregistered.
	ErrEntityNotFound = errors.New("engine: entity not found")

	// ErrDuplicateEntity indicates RegisterEntity was called with an id
	// already in use.
	ErrDuplicateEntity = errors.New("engine: entity id already registered")

	// ErrNoSpawnNode indicates RegisterEntity could not find any graph
	// node to anchor the new entity's current_node to (the graph is empty).
	ErrNoSpawnNode = errors.New("engine: graph has no nodes to spawn an entity at")

	// ErrTargetNotFound indicates RequestPath's target id is not a live
	// graph node.
	ErrTargetNotFound = errors.New("engine: target node not found")
)
