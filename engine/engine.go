package engine

import (
	"sync"

	"github.com/corvid-games/waymesh/entity"
	"github.com/corvid-games/waymesh/mapgraph"
	"github.com/corvid-games/waymesh/oracle"
	"github.com/corvid-games/waymesh/spatial"
	"github.com/corvid-games/waymesh/stair"
	"github.com/corvid-games/waymesh/wlog"
)

// Engine is the Facade: it owns a Graph, a DistanceOracle, a
// StairRegistry, and every registered entity's position and movement
// state, and advances all of it one tick at a time.
//
// EntityID is the caller's entity identifier type; Ctx is threaded
// opaquely through every callback.
type Engine[EntityID comparable, Ctx any] struct {
	log *wlog.Logger

	graph  *mapgraph.Graph
	oracle oracle.Source
	stairs *stair.Registry

	muEntities    sync.RWMutex
	entities      map[EntityID]*entity.Entity[EntityID]
	entitySpatial *spatial.SpatialIndex
	entityIdx     map[EntityID]int64
	idxEntity     map[int64]EntityID
	nextIdx       int64

	Callbacks Callbacks[EntityID, Ctx]
}

// New constructs an Engine bound to graph (which the caller owns and may
// have already populated). RebuildPaths should be called once after the
// graph is populated and before the first RequestPath.
func New[EntityID comparable, Ctx any](graph *mapgraph.Graph, opts ...Option) *Engine[EntityID, Ctx] {
	cfg := newConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	cfg.logger.SetLevel(cfg.logLevel)

	e := &Engine[EntityID, Ctx]{
		log:           cfg.logger,
		graph:         graph,
		oracle:        oracle.NewDense(oracle.Options{Variant: cfg.fwVariant, WorkerCount: cfg.workerCount}),
		stairs:        stair.NewRegistry(),
		entities:      make(map[EntityID]*entity.Entity[EntityID]),
		entitySpatial: spatial.New(spatial.Rect{}),
		entityIdx:     make(map[EntityID]int64),
		idxEntity:     make(map[int64]EntityID),
	}
	e.resetEntitySpatialBoundsLocked()
	return e
}

// Graph returns the underlying graph, for callers that need direct access
// to construction operations (AddNode, ConnectNodes, ...).
func (e *Engine[EntityID, Ctx]) Graph() *mapgraph.Graph {
	return e.graph
}

// RebuildPaths recomputes the DistanceOracle from the graph's current
// edge set and re-synchronises the StairRegistry with the graph's current
// stair nodes. It must be called after any graph mutation and before the
// next RequestPath — this is a testable contract, not a silent refresh.
func (e *Engine[EntityID, Ctx]) RebuildPaths() error {
	e.syncStairs()

	if dense, ok := e.oracle.(*oracle.Dense); ok {
		dense.Clean()
		for _, n := range e.graph.Nodes() {
			dense.AddEdgeWithMapping(n.ID, n.ID, 0) // registers isolated nodes too
			for _, edge := range n.OutgoingEdges {
				dense.AddEdgeWithMapping(n.ID, edge.To, edge.Weight)
			}
		}
	}

	e.muEntities.Lock()
	e.resetEntitySpatialBoundsLocked()
	e.muEntities.Unlock()

	err := e.oracle.Generate()
	if err != nil {
		e.log.Errf("rebuild_paths: generate failed: %v", err)
		return err
	}
	e.log.Infof("rebuild_paths: %d nodes", len(e.graph.Nodes()))
	return nil
}

func (e *Engine[EntityID, Ctx]) syncStairs() {
	for _, n := range e.graph.Nodes() {
		if n.StairMode == mapgraph.StairModeNone {
			e.stairs.Unregister(n.ID)
			continue
		}
		if _, already := e.stairs.State(n.ID); already {
			continue
		}
		e.stairs.Register(n.ID, n.StairMode)
	}
}

// resetEntitySpatialBoundsLocked rebuilds entitySpatial from the graph's
// node extent (plus the standard spatial gutter) and reinserts every
// currently registered entity at its live position. Caller must hold
// muEntities.
func (e *Engine[EntityID, Ctx]) resetEntitySpatialBoundsLocked() {
	nodes := e.graph.Nodes()
	if len(nodes) == 0 {
		e.entitySpatial = spatial.New(spatial.Rect{})
		return
	}
	minX, minY := nodes[0].X, nodes[0].Y
	maxX, maxY := nodes[0].X, nodes[0].Y
	for _, n := range nodes[1:] {
		if n.X < minX {
			minX = n.X
		}
		if n.X > maxX {
			maxX = n.X
		}
		if n.Y < minY {
			minY = n.Y
		}
		if n.Y > maxY {
			maxY = n.Y
		}
	}
	bounds := spatial.Rect{
		MinX: minX - spatial.DefaultGutter, MinY: minY - spatial.DefaultGutter,
		MaxX: maxX + spatial.DefaultGutter, MaxY: maxY + spatial.DefaultGutter,
	}
	e.entitySpatial = spatial.New(bounds)
	for id, ent := range e.entities {
		e.entitySpatial.Insert(e.entityIdx[id], ent.X, ent.Y)
	}
}

// RegisterEntity adds a new entity at (x,y), anchored to the nearest live
// graph node (its initial current_node). Returns ErrDuplicateEntity if id
// is already registered, or ErrNoSpawnNode if the graph has no nodes.
func (e *Engine[EntityID, Ctx]) RegisterEntity(id EntityID, x, y, speed float32) error {
	e.muEntities.Lock()
	defer e.muEntities.Unlock()

	if _, exists := e.entities[id]; exists {
		e.log.Warnf("register_entity: %v already registered", id)
		return ErrDuplicateEntity
	}
	node, ok := e.nearestNodeLocked(x, y)
	if !ok {
		e.log.Errf("register_entity: graph has no nodes to spawn %v at", id)
		return ErrNoSpawnNode
	}

	ent := entity.New(id, x, y, speed)
	ent.CurrentNode = node
	ent.HasCurrent = true
	e.entities[id] = ent

	idx := e.nextIdx
	e.nextIdx++
	e.entityIdx[id] = idx
	e.idxEntity[idx] = id
	e.entitySpatial.Insert(idx, x, y)

	e.log.Debugf("register_entity: %v anchored to node %v", id, node)
	return nil
}

func (e *Engine[EntityID, Ctx]) nearestNodeLocked(x, y float32) (mapgraph.NodeID, bool) {
	nodes := e.graph.Nodes()
	if len(nodes) == 0 {
		return 0, false
	}
	best := nodes[0]
	bestDist := sqDist(x, y, best.X, best.Y)
	for _, n := range nodes[1:] {
		d := sqDist(x, y, n.X, n.Y)
		if d < bestDist {
			best, bestDist = n, d
		}
	}
	return best.ID, true
}

func sqDist(ax, ay, bx, by float32) float32 {
	dx := ax - bx
	dy := ay - by
	return dx*dx + dy*dy
}

// UnregisterEntity removes id, releasing any stair admission it holds and
// balancing any outstanding on_waiting_started with on_waiting_ended.
func (e *Engine[EntityID, Ctx]) UnregisterEntity(ctx Ctx, id EntityID) error {
	e.muEntities.Lock()
	ent, ok := e.entities[id]
	if !ok {
		e.muEntities.Unlock()
		return ErrEntityNotFound
	}
	e.releaseHeldResourcesLocked(ctx, id, ent)

	idx := e.entityIdx[id]
	e.entitySpatial.Remove(idx)
	delete(e.entityIdx, id)
	delete(e.idxEntity, idx)
	delete(e.entities, id)
	e.muEntities.Unlock()
	return nil
}

func (e *Engine[EntityID, Ctx]) releaseHeldResourcesLocked(ctx Ctx, id EntityID, ent *entity.Entity[EntityID]) {
	if ent.HasUsingStair {
		_ = e.stairs.Release(ent.UsingStair)
		ent.HasUsingStair = false
	}
	if ent.HasWaitingForStair {
		e.fireWaitingEnded(ctx, id, ent.WaitingForStair)
		ent.HasWaitingForStair = false
	}
}

// RequestPath sets id's target to target. Returns ErrEntityNotFound or
// ErrTargetNotFound as appropriate.
func (e *Engine[EntityID, Ctx]) RequestPath(id EntityID, target mapgraph.NodeID) error {
	e.muEntities.Lock()
	defer e.muEntities.Unlock()
	ent, ok := e.entities[id]
	if !ok {
		return ErrEntityNotFound
	}
	if !e.graph.HasNode(target) {
		e.log.Warnf("request_path: %v targets unknown node %v", id, target)
		return ErrTargetNotFound
	}
	ent.TargetNode = target
	ent.HasTarget = true
	ent.HasNext = false
	if ent.HasCurrent && ent.CurrentNode == target {
		ent.State = entity.Idle
	} else {
		ent.State = entity.Moving
	}
	return nil
}

// CancelPath clears id's active path (if any), releasing any held stair
// admission and balancing any outstanding waiting callback.
func (e *Engine[EntityID, Ctx]) CancelPath(ctx Ctx, id EntityID) error {
	e.muEntities.Lock()
	defer e.muEntities.Unlock()
	ent, ok := e.entities[id]
	if !ok {
		return ErrEntityNotFound
	}
	e.releaseHeldResourcesLocked(ctx, id, ent)
	ent.Reset()
	return nil
}

// IsMoving reports whether id has an active path or stair interaction.
func (e *Engine[EntityID, Ctx]) IsMoving(id EntityID) bool {
	e.muEntities.RLock()
	defer e.muEntities.RUnlock()
	ent, ok := e.entities[id]
	return ok && ent.IsMoving()
}

// GetCurrentNode returns id's current node, or ok=false if id is unknown
// or has never reached a node (should not happen post-registration).
func (e *Engine[EntityID, Ctx]) GetCurrentNode(id EntityID) (mapgraph.NodeID, bool) {
	e.muEntities.RLock()
	defer e.muEntities.RUnlock()
	ent, ok := e.entities[id]
	if !ok || !ent.HasCurrent {
		return 0, false
	}
	return ent.CurrentNode, true
}

// GetPosition returns id's live (x,y).
func (e *Engine[EntityID, Ctx]) GetPosition(id EntityID) (x, y float32, ok bool) {
	e.muEntities.RLock()
	defer e.muEntities.RUnlock()
	ent, exists := e.entities[id]
	if !exists {
		return 0, 0, false
	}
	return ent.X, ent.Y, true
}

// PositionFull is the snapshot get_position_full returns.
type PositionFull struct {
	X, Y            float32
	CurrentNode     mapgraph.NodeID
	HasCurrentNode  bool
	TargetNode      mapgraph.NodeID
	HasTargetNode   bool
	UsingStair      mapgraph.NodeID
	HasUsingStair   bool
	WaitingForStair mapgraph.NodeID
	HasWaiting      bool
	Speed           float32
}

// GetPositionFull returns the full movement snapshot for id.
func (e *Engine[EntityID, Ctx]) GetPositionFull(id EntityID) (PositionFull, bool) {
	e.muEntities.RLock()
	defer e.muEntities.RUnlock()
	ent, ok := e.entities[id]
	if !ok {
		return PositionFull{}, false
	}
	return PositionFull{
		X: ent.X, Y: ent.Y,
		CurrentNode: ent.CurrentNode, HasCurrentNode: ent.HasCurrent,
		TargetNode: ent.TargetNode, HasTargetNode: ent.HasTarget,
		UsingStair: ent.UsingStair, HasUsingStair: ent.HasUsingStair,
		WaitingForStair: ent.WaitingForStair, HasWaiting: ent.HasWaitingForStair,
		Speed: ent.Speed,
	}, true
}

// GetSpeed returns id's current speed.
func (e *Engine[EntityID, Ctx]) GetSpeed(id EntityID) (float32, bool) {
	e.muEntities.RLock()
	defer e.muEntities.RUnlock()
	ent, ok := e.entities[id]
	if !ok {
		return 0, false
	}
	return ent.Speed, true
}

// SetSpeed updates id's speed.
func (e *Engine[EntityID, Ctx]) SetSpeed(id EntityID, speed float32) error {
	e.muEntities.Lock()
	defer e.muEntities.Unlock()
	ent, ok := e.entities[id]
	if !ok {
		return ErrEntityNotFound
	}
	ent.Speed = speed
	return nil
}

// GetEntitiesInRadius appends every entity id within r of (x,y) to out.
func (e *Engine[EntityID, Ctx]) GetEntitiesInRadius(x, y, r float32, out []EntityID) []EntityID {
	e.muEntities.RLock()
	defer e.muEntities.RUnlock()
	idxs := e.entitySpatial.QueryRadius(x, y, r, nil)
	for _, idx := range idxs {
		out = append(out, e.idxEntity[idx])
	}
	return out
}

// GetEntitiesInRect appends every entity id within the axis-aligned
// rectangle [x,x+w] x [y,y+h] to out.
func (e *Engine[EntityID, Ctx]) GetEntitiesInRect(x, y, w, h float32, out []EntityID) []EntityID {
	e.muEntities.RLock()
	defer e.muEntities.RUnlock()
	rect := spatial.Rect{MinX: x, MinY: y, MaxX: x + w, MaxY: y + h}
	idxs := e.entitySpatial.QueryRect(rect, nil)
	for _, idx := range idxs {
		out = append(out, e.idxEntity[idx])
	}
	return out
}

// GetNodesInRadius delegates to the graph's spatial index.
func (e *Engine[EntityID, Ctx]) GetNodesInRadius(x, y, r float32, out []mapgraph.NodeID) []mapgraph.NodeID {
	return e.graph.GetNodesInRadius(x, y, r, out)
}

// GetEdges delegates to the graph.
func (e *Engine[EntityID, Ctx]) GetEdges(id mapgraph.NodeID) ([]mapgraph.NodeID, bool) {
	return e.graph.GetEdges(id)
}

// GetDirectionalEdges delegates to the graph.
func (e *Engine[EntityID, Ctx]) GetDirectionalEdges(id mapgraph.NodeID) (mapgraph.DirectionalEdges, bool) {
	return e.graph.GetDirectionalEdges(id)
}

// GetNodePosition delegates to the graph.
func (e *Engine[EntityID, Ctx]) GetNodePosition(id mapgraph.NodeID) (x, y float32, ok bool) {
	return e.graph.GetNodePosition(id)
}

// GetStairMode delegates to the graph.
func (e *Engine[EntityID, Ctx]) GetStairMode(id mapgraph.NodeID) (mapgraph.StairMode, bool) {
	return e.graph.GetStairMode(id)
}

// GetStairState returns the live admission state of stair id.
func (e *Engine[EntityID, Ctx]) GetStairState(id mapgraph.NodeID) (stair.State, bool) {
	return e.stairs.State(id)
}
