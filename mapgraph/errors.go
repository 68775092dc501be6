package mapgraph

import "errors"

// Sentinel errors for mapgraph operations. Callers should compare with
// errors.Is, matching the convention used throughout this module.
var (
	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("mapgraph: node not found")

	// ErrDuplicateNode indicates AddNode was called with an id already in use.
	ErrDuplicateNode = errors.New("mapgraph: node id already exists")

	// ErrNodeInUse indicates RemoveNode targeted a node still referenced by
	// an edge, a waiting area, or a directional-edge slot.
	ErrNodeInUse = errors.New("mapgraph: node is still referenced by the graph")

	// ErrNilConnectionMode indicates ConnectNodes received a nil ConnectionMode.
	ErrNilConnectionMode = errors.New("mapgraph: connection mode is nil")

	// ErrInvalidGridConfig indicates CreateGrid received non-positive
	// dimensions or cell size.
	ErrInvalidGridConfig = errors.New("mapgraph: grid config must have positive rows, cols, and cell size")
)
