package oracle

import "errors"

var (
	// ErrNotGenerated indicates a query was issued before Generate (or
	// after a mutation invalidated the previous Generate) had run.
	ErrNotGenerated = errors.New("oracle: Generate has not been run since the last mutation")

	// ErrUnknownNode indicates a query referenced a node id never seen by
	// AddEdgeWithMapping.
	ErrUnknownNode = errors.New("oracle: node id not present in this oracle")

	// ErrNoPath indicates u and v are both known but no path connects them.
	ErrNoPath = errors.New("oracle: no path between the given nodes")
)
