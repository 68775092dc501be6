package stair

import (
	"sync"

	"github.com/corvid-games/waymesh/mapgraph"
)

type entry struct {
	mode         mapgraph.StairMode
	usersCount   uint32
	direction    Direction
	hasDirection bool
}

// Registry tracks live admission state for every stair node. Nodes with
// StairMode.None are never registered — TryEnter/Release on an
// unregistered id return ErrUnknownStair.
type Registry struct {
	mu      sync.Mutex
	entries map[mapgraph.NodeID]*entry
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[mapgraph.NodeID]*entry)}
}

// Register begins tracking id under mode. Calling Register again for an
// id already registered resets its state to Idle under the new mode —
// callers should not do this mid-traversal.
func (r *Registry) Register(id mapgraph.NodeID, mode mapgraph.StairMode) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[id] = &entry{mode: mode}
}

// Unregister stops tracking id.
func (r *Registry) Unregister(id mapgraph.NodeID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, id)
}

// TryEnter attempts admission to stair id travelling dir, per the spec
// §4.4 state table. On Admitted, users_count is incremented and, for a
// Direction-mode stair transitioning Idle->Busy-Dir, direction is set.
func (r *Registry) TryEnter(id mapgraph.NodeID, dir Direction) (Admission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[id]
	if !ok {
		return Denied, ErrUnknownStair
	}

	switch e.mode {
	case mapgraph.StairModeAll:
		e.usersCount++
		return Admitted, nil

	case mapgraph.StairModeSingle:
		if e.usersCount >= 1 {
			return Denied, nil
		}
		e.usersCount = 1
		return Admitted, nil

	case mapgraph.StairModeDirection:
		if e.usersCount == 0 {
			e.usersCount = 1
			e.direction = dir
			e.hasDirection = true
			return Admitted, nil
		}
		if e.hasDirection && e.direction == dir {
			e.usersCount++
			return Admitted, nil
		}
		return Denied, nil

	default: // StairModeNone was registered by mistake; treat as unrestricted.
		e.usersCount++
		return Admitted, nil
	}
}

// Release decrements id's users_count; if it reaches 0 the stored
// direction is cleared. Returns ErrNotInUse if users_count is already 0 —
// callers must release at most once per successful TryEnter.
func (r *Registry) Release(id mapgraph.NodeID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[id]
	if !ok {
		return ErrUnknownStair
	}
	if e.usersCount == 0 {
		return ErrNotInUse
	}
	e.usersCount--
	if e.usersCount == 0 {
		e.hasDirection = false
	}
	return nil
}

// State returns a snapshot of id's live admission state.
func (r *Registry) State(id mapgraph.NodeID) (State, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[id]
	if !ok {
		return State{}, false
	}
	return State{UsersCount: e.usersCount, Direction: e.direction, HasDirection: e.hasDirection}, true
}
