package engine

import "github.com/corvid-games/waymesh/mapgraph"

// Callbacks holds the engine's five nullable event hooks. Any of these may
// be left nil (the zero value); Engine checks before calling.
type Callbacks[EntityID comparable, Ctx any] struct {
	OnNodeReached    func(ctx Ctx, entity EntityID, node mapgraph.NodeID)
	OnPathCompleted  func(ctx Ctx, entity EntityID, node mapgraph.NodeID)
	OnPathBlocked    func(ctx Ctx, entity EntityID, node mapgraph.NodeID)
	OnWaitingStarted func(ctx Ctx, entity EntityID, node mapgraph.NodeID)
	OnWaitingEnded   func(ctx Ctx, entity EntityID, node mapgraph.NodeID)
}

func (e *Engine[EntityID, Ctx]) fireNodeReached(ctx Ctx, id EntityID, node mapgraph.NodeID) {
	if e.Callbacks.OnNodeReached != nil {
		e.Callbacks.OnNodeReached(ctx, id, node)
	}
}

func (e *Engine[EntityID, Ctx]) firePathCompleted(ctx Ctx, id EntityID, node mapgraph.NodeID) {
	if e.Callbacks.OnPathCompleted != nil {
		e.Callbacks.OnPathCompleted(ctx, id, node)
	}
}

func (e *Engine[EntityID, Ctx]) firePathBlocked(ctx Ctx, id EntityID, node mapgraph.NodeID) {
	if e.Callbacks.OnPathBlocked != nil {
		e.Callbacks.OnPathBlocked(ctx, id, node)
	}
}

func (e *Engine[EntityID, Ctx]) fireWaitingStarted(ctx Ctx, id EntityID, node mapgraph.NodeID) {
	if e.Callbacks.OnWaitingStarted != nil {
		e.Callbacks.OnWaitingStarted(ctx, id, node)
	}
}

func (e *Engine[EntityID, Ctx]) fireWaitingEnded(ctx Ctx, id EntityID, node mapgraph.NodeID) {
	if e.Callbacks.OnWaitingEnded != nil {
		e.Callbacks.OnWaitingEnded(ctx, id, node)
	}
}
