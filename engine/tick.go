package engine

import (
	"fmt"
	"math"
	"sort"

	"github.com/corvid-games/waymesh/entity"
	"github.com/corvid-games/waymesh/mapgraph"
	"github.com/corvid-games/waymesh/stair"
)

// maxHopsPerTick bounds the per-entity work inside a single Tick call,
// guarding against a misconfigured graph producing a degenerate loop of
// zero-length edges.
const maxHopsPerTick = 64

// Tick advances every registered entity's movement state machine by
// delta seconds. Entities are processed in ascending id order so stair
// admission outcomes are deterministic.
func (e *Engine[EntityID, Ctx]) Tick(ctx Ctx, delta float32) {
	e.muEntities.Lock()
	defer e.muEntities.Unlock()

	ids := make([]EntityID, 0, len(e.entities))
	for id := range e.entities {
		ids = append(ids, id)
	}
	sortEntityIDs(ids)

	for _, id := range ids {
		ent := e.entities[id]
		e.stepEntity(ctx, id, ent, ent.Speed*delta)
	}
}

// sortEntityIDs orders ids for deterministic tick iteration. Comparable
// types aren't necessarily ordered, so this falls back to each id's
// fmt-stringified form when the concrete type has no natural order; for
// the common case (integer ids) it sorts numerically via type assertion.
func sortEntityIDs[EntityID comparable](ids []EntityID) {
	sort.Slice(ids, func(i, j int) bool {
		return lessEntityID(ids[i], ids[j])
	})
}

func lessEntityID[EntityID comparable](a, b EntityID) bool {
	switch av := any(a).(type) {
	case int:
		return av < any(b).(int)
	case int32:
		return av < any(b).(int32)
	case int64:
		return av < any(b).(int64)
	case uint:
		return av < any(b).(uint)
	case uint32:
		return av < any(b).(uint32)
	case uint64:
		return av < any(b).(uint64)
	case string:
		return av < any(b).(string)
	default:
		// No natural order for this id type: compare the fmt-stringified
		// forms so the order does not depend on map iteration.
		return fmt.Sprint(a) < fmt.Sprint(b)
	}
}

func (e *Engine[EntityID, Ctx]) stepEntity(ctx Ctx, id EntityID, ent *entity.Entity[EntityID], budget float32) {
	for hop := 0; hop < maxHopsPerTick; hop++ {
		if !ent.HasTarget {
			ent.State = entity.Idle
			return
		}

		if !ent.HasNext {
			if !e.resolveNextHop(ctx, id, ent) {
				return // idle/blocked/parked-with-no-advance this iteration
			}
			if !ent.HasNext {
				return // just parked or just completed; nothing to advance toward
			}
		}

		nxX, nxY, ok := e.graph.GetNodePosition(ent.NextNode)
		if !ok {
			// Next hop vanished from under us (graph mutated without a
			// RebuildPaths call, a caller contract violation); treat as
			// blocked rather than risk corrupting state.
			ent.HasNext = false
			ent.HasTarget = false
			ent.State = entity.Idle
			e.log.Warnf("tick: %v's next hop %v vanished from the graph", id, ent.NextNode)
			e.firePathBlocked(ctx, id, ent.NextNode)
			return
		}

		dx := nxX - ent.X
		dy := nxY - ent.Y
		dist := float32(math.Hypot(float64(dx), float64(dy)))

		if dist <= budget {
			budget -= dist
			ent.X, ent.Y = nxX, nxY
			e.entitySpatial.Update(e.entityIdx[id], ent.X, ent.Y)

			arrived := ent.NextNode
			ent.CurrentNode = arrived
			ent.HasCurrent = true
			ent.HasNext = false

			if ent.HasUsingStair && ent.UsingStair != arrived {
				_ = e.stairs.Release(ent.UsingStair)
				ent.HasUsingStair = false
			}

			e.fireNodeReached(ctx, id, arrived)

			if ent.HasWaitingForStair {
				// Just reached the waiting-area node; stay parked here
				// and retry admission on a subsequent tick.
				ent.State = entity.WaitingForStair
				return
			}

			if budget <= 0 {
				ent.State = e.stateFor(ent)
				return
			}
			continue // leftover delta this tick: loop for the next hop
		}

		t := budget / dist
		ent.X += dx * t
		ent.Y += dy * t
		e.entitySpatial.Update(e.entityIdx[id], ent.X, ent.Y)
		ent.State = e.stateFor(ent)
		return
	}
}

// resolveNextHop determines ent.NextNode for this iteration: either by
// retrying admission on an already-denied stair, or by querying the
// oracle fresh and handling a newly-encountered stair gate. Returns false
// if the entity has nothing left to advance toward this iteration
// (completed, blocked, stalled, or newly parked).
func (e *Engine[EntityID, Ctx]) resolveNextHop(ctx Ctx, id EntityID, ent *entity.Entity[EntityID]) bool {
	if ent.HasWaitingForStair {
		stairID := ent.WaitingForStair
		dir := e.directionBetween(ent.CurrentNode, stairID)
		adm, err := e.stairs.TryEnter(stairID, dir)
		if err != nil || adm != stair.Admitted {
			return false // stay parked
		}
		ent.HasWaitingForStair = false
		e.fireWaitingEnded(ctx, id, stairID)
		ent.UsingStair = stairID
		ent.HasUsingStair = true
		ent.NextNode = stairID
		ent.HasNext = true
		ent.State = entity.UsingStair
		return true
	}

	if ent.HasCurrent && ent.CurrentNode == ent.TargetNode {
		if ent.HasUsingStair {
			_ = e.stairs.Release(ent.UsingStair)
			ent.HasUsingStair = false
		}
		ent.HasTarget = false
		ent.State = entity.Idle
		e.firePathCompleted(ctx, id, ent.CurrentNode)
		return false
	}

	nextHop, ok := e.oracle.NextWithMapping(ent.CurrentNode, ent.TargetNode)
	if !ok {
		ent.HasTarget = false
		ent.State = entity.Idle
		e.log.Warnf("tick: no path from %v to %v for %v", ent.CurrentNode, ent.TargetNode, id)
		e.firePathBlocked(ctx, id, ent.TargetNode)
		return false
	}

	mode, _ := e.graph.GetStairMode(nextHop)
	if mode != mapgraph.StairModeNone && (!ent.HasUsingStair || ent.UsingStair != nextHop) {
		if ent.HasUsingStair {
			// Leaving the previous stair's node for a new one (e.g. two
			// adjacent stair nodes back to back): release it here, since
			// UsingStair is about to be overwritten by the new admission,
			// and the arrival check in stepEntity only releases the stair
			// still recorded in UsingStair.
			_ = e.stairs.Release(ent.UsingStair)
			ent.HasUsingStair = false
		}
		dir := e.directionBetween(ent.CurrentNode, nextHop)
		adm, err := e.stairs.TryEnter(nextHop, dir)
		if err == nil && adm == stair.Admitted {
			ent.UsingStair = nextHop
			ent.HasUsingStair = true
		} else {
			waitNode, found := e.pickWaitingNodeLocked(nextHop, id)
			if !found {
				e.log.Debugf("tick: %v stalled, stair %v denied and no waiting area", id, nextHop)
				ent.State = e.stateFor(ent) // no waiting area: stall at current node
				return false
			}
			ent.WaitingForStair = nextHop
			ent.HasWaitingForStair = true
			e.log.Debugf("tick: %v waiting at %v for stair %v", id, waitNode, nextHop)
			e.fireWaitingStarted(ctx, id, nextHop)
			nextHop = waitNode
		}
	}

	ent.NextNode = nextHop
	ent.HasNext = true
	ent.State = e.stateFor(ent)
	return true
}

func (e *Engine[EntityID, Ctx]) stateFor(ent *entity.Entity[EntityID]) entity.MovementState {
	switch {
	case ent.HasWaitingForStair:
		return entity.WaitingForStair
	case ent.HasUsingStair:
		return entity.UsingStair
	case ent.HasTarget:
		return entity.Moving
	default:
		return entity.Idle
	}
}

// directionBetween classifies travel from `from` toward `to` by the sign
// of (to.y - from.y); ties (equal y) are treated as Up.
func (e *Engine[EntityID, Ctx]) directionBetween(from, to mapgraph.NodeID) stair.Direction {
	_, fy, _ := e.graph.GetNodePosition(from)
	_, ty, _ := e.graph.GetNodePosition(to)
	if ty-fy <= 0 {
		return stair.Up
	}
	return stair.Down
}

// pickWaitingNodeLocked selects the first node in stairID's waiting area
// not currently occupied (traveled toward or parked at) by another
// entity waiting on the same stair, lowest-index preference, first-come
// linear scan. Caller must hold muEntities.
func (e *Engine[EntityID, Ctx]) pickWaitingNodeLocked(stairID mapgraph.NodeID, exclude EntityID) (mapgraph.NodeID, bool) {
	area, ok := e.graph.GetWaitingArea(stairID)
	if !ok || len(area) == 0 {
		return 0, false
	}
	occupied := make(map[mapgraph.NodeID]bool, len(area))
	for otherID, other := range e.entities {
		if otherID == exclude {
			continue
		}
		if !other.HasWaitingForStair || other.WaitingForStair != stairID {
			continue
		}
		if other.HasCurrent {
			occupied[other.CurrentNode] = true
		}
		if other.HasNext {
			occupied[other.NextNode] = true
		}
	}
	for _, node := range area {
		if !occupied[node] {
			return node, true
		}
	}
	return 0, false
}
