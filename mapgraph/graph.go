package mapgraph

import (
	"sort"
	"sync"
	"sync/atomic"

	"github.com/corvid-games/waymesh/spatial"
)

// Graph is the mapping NodeID -> Node. Insertion order is not
// significant to correctness but Nodes() iterates in ascending NodeID
// order for deterministic tests.
type Graph struct {
	muNodes sync.RWMutex
	muEdges sync.RWMutex

	nodes  map[NodeID]*Node
	nextID int64 // atomic counter backing AddNodeAuto, mirrors core.Graph's nextEdgeID idiom

	spatialMu sync.Mutex
	spatial   *spatial.SpatialIndex
}

// NewGraph returns an empty Graph.
func NewGraph() *Graph {
	return &Graph{
		nodes:   make(map[NodeID]*Node),
		spatial: spatial.New(spatial.Rect{}),
	}
}

// AddNode inserts a node with caller-supplied id at (x,y). Returns
// ErrDuplicateNode if id is already present.
func (g *Graph) AddNode(id NodeID, x, y float32) error {
	return g.AddNodeWithStairMode(id, x, y, StairModeNone)
}

// AddNodeAuto inserts a node at (x,y) with an engine-assigned id and
// returns it.
func (g *Graph) AddNodeAuto(x, y float32) NodeID {
	for {
		id := NodeID(atomic.AddInt64(&g.nextID, 1) - 1)
		// The only possible failure is ErrDuplicateNode, when a caller
		// already used this id via AddNode; skip it and try the next one.
		if err := g.AddNodeWithStairMode(id, x, y, StairModeNone); err == nil {
			return id
		}
	}
}

// AddNodeWithStairMode inserts a node with an explicit initial stair mode.
func (g *Graph) AddNodeWithStairMode(id NodeID, x, y float32, mode StairMode) error {
	g.muNodes.Lock()
	if _, exists := g.nodes[id]; exists {
		g.muNodes.Unlock()
		return ErrDuplicateNode
	}
	g.nodes[id] = &Node{ID: id, X: x, Y: y, StairMode: mode}
	g.muNodes.Unlock()

	g.reindexSpatial()
	return nil
}

// RemoveNode deletes id. Returns ErrNodeNotFound if absent, or
// ErrNodeInUse if another node's edge, waiting area, or directional cache
// still references id (see package doc for the broader caller contract
// this only partially enforces).
func (g *Graph) RemoveNode(id NodeID) error {
	g.muNodes.Lock()
	defer g.muNodes.Unlock()
	g.muEdges.Lock()
	defer g.muEdges.Unlock()

	if _, exists := g.nodes[id]; !exists {
		return ErrNodeNotFound
	}

	for other, n := range g.nodes {
		if other == id {
			continue
		}
		for _, e := range n.OutgoingEdges {
			if e.To == id {
				return ErrNodeInUse
			}
		}
		for _, w := range n.WaitingArea {
			if w == id {
				return ErrNodeInUse
			}
		}
		if refersTo(n.Directional, id) {
			return ErrNodeInUse
		}
	}

	delete(g.nodes, id)
	g.spatialMu.Lock()
	g.spatial.Remove(int64(id))
	g.spatialMu.Unlock()
	return nil
}

func refersTo(d DirectionalEdges, id NodeID) bool {
	for _, p := range []*NodeID{d.Left, d.Right, d.Up, d.Down} {
		if p != nil && *p == id {
			return true
		}
	}
	return false
}

// SetStairMode changes id's stair mode. Returns ErrNodeNotFound if absent.
func (g *Graph) SetStairMode(id NodeID, mode StairMode) error {
	g.muNodes.Lock()
	defer g.muNodes.Unlock()
	n, ok := g.nodes[id]
	if !ok {
		return ErrNodeNotFound
	}
	n.StairMode = mode
	return nil
}

// SetWaitingArea replaces id's ordered waiting-area node list. Returns
// ErrNodeNotFound if id is absent. Waiting-area entries are not validated
// against the live node set here (they may be set before their targets
// exist, mirroring how edges are only validated at connect time).
func (g *Graph) SetWaitingArea(id NodeID, area []NodeID) error {
	g.muNodes.Lock()
	defer g.muNodes.Unlock()
	n, ok := g.nodes[id]
	if !ok {
		return ErrNodeNotFound
	}
	n.WaitingArea = append([]NodeID(nil), area...)
	return nil
}

// AddEdge adds a directed edge from->to with the given weight, and also
// to->from when bidirectional is true. Returns ErrNodeNotFound if either
// endpoint is absent. A directed edge that already exists is not
// duplicated; it keeps its place and takes the new weight, which keeps the
// auto-connection strategies from producing duplicate edges when two
// nodes both nominate each other as a neighbour.
func (g *Graph) AddEdge(from, to NodeID, weight uint32, bidirectional bool) error {
	g.muNodes.RLock()
	_, fromOK := g.nodes[from]
	_, toOK := g.nodes[to]
	g.muNodes.RUnlock()
	if !fromOK || !toOK {
		return ErrNodeNotFound
	}

	g.muEdges.Lock()
	defer g.muEdges.Unlock()
	g.addDirectedEdgeLocked(from, to, weight)
	if bidirectional {
		g.addDirectedEdgeLocked(to, from, weight)
	}
	return nil
}

// addDirectedEdgeLocked must be called with muEdges held.
func (g *Graph) addDirectedEdgeLocked(from, to NodeID, weight uint32) {
	g.muNodes.RLock()
	n := g.nodes[from]
	g.muNodes.RUnlock()
	for i, e := range n.OutgoingEdges {
		if e.To == to {
			n.OutgoingEdges[i].Weight = weight
			return
		}
	}
	n.OutgoingEdges = append(n.OutgoingEdges, Edge{To: to, Weight: weight})
}

func (g *Graph) hasDirectedEdgeLocked(from, to NodeID) bool {
	n := g.nodes[from]
	for _, e := range n.OutgoingEdges {
		if e.To == to {
			return true
		}
	}
	return false
}

// ClearGraph removes every node and edge. The graph is left usable (an
// empty Graph, not a nil one).
func (g *Graph) ClearGraph() {
	g.muNodes.Lock()
	defer g.muNodes.Unlock()
	g.muEdges.Lock()
	defer g.muEdges.Unlock()
	g.nodes = make(map[NodeID]*Node)
	g.spatialMu.Lock()
	g.spatial = spatial.New(spatial.Rect{})
	g.spatialMu.Unlock()
}

// clearEdgesLocked drops every node's outgoing edges and directional cache
// without touching node existence, stair mode, or waiting areas. Called
// by ConnectNodes, which always rebuilds the full edge set from scratch.
func (g *Graph) clearEdgesLocked() {
	for _, n := range g.nodes {
		n.OutgoingEdges = nil
		n.Directional = DirectionalEdges{}
	}
}

func (g *Graph) reindexSpatial() {
	g.muNodes.RLock()
	pts := make([]spatial.Point, 0, len(g.nodes))
	for id, n := range g.nodes {
		pts = append(pts, spatial.Point{ID: int64(id), X: n.X, Y: n.Y})
	}
	g.muNodes.RUnlock()

	g.spatialMu.Lock()
	g.spatial.ResetWithBoundaries(pts)
	g.spatialMu.Unlock()
}

// --- Queries ---

// GetNode returns a defensive copy of id's Node, or ok==false if absent.
func (g *Graph) GetNode(id NodeID) (Node, bool) {
	g.muNodes.RLock()
	defer g.muNodes.RUnlock()
	n, ok := g.nodes[id]
	if !ok {
		return Node{}, false
	}
	return n.clone(), true
}

// GetNodePosition returns id's (x,y), or ok==false if absent.
func (g *Graph) GetNodePosition(id NodeID) (x, y float32, ok bool) {
	g.muNodes.RLock()
	defer g.muNodes.RUnlock()
	n, exists := g.nodes[id]
	if !exists {
		return 0, 0, false
	}
	return n.X, n.Y, true
}

// GetStairMode returns id's stair mode, or StairModeNone, false if absent.
func (g *Graph) GetStairMode(id NodeID) (StairMode, bool) {
	g.muNodes.RLock()
	defer g.muNodes.RUnlock()
	n, exists := g.nodes[id]
	if !exists {
		return StairModeNone, false
	}
	return n.StairMode, true
}

// GetWaitingArea returns a copy of id's waiting-area list, or ok==false if absent.
func (g *Graph) GetWaitingArea(id NodeID) ([]NodeID, bool) {
	g.muNodes.RLock()
	defer g.muNodes.RUnlock()
	n, exists := g.nodes[id]
	if !exists {
		return nil, false
	}
	return append([]NodeID(nil), n.WaitingArea...), true
}

// GetEdges returns a copy of id's outgoing edge targets, or ok==false if absent.
func (g *Graph) GetEdges(id NodeID) ([]NodeID, bool) {
	g.muEdges.RLock()
	defer g.muEdges.RUnlock()
	n, exists := g.nodes[id]
	if !exists {
		return nil, false
	}
	out := make([]NodeID, len(n.OutgoingEdges))
	for i, e := range n.OutgoingEdges {
		out[i] = e.To
	}
	return out, true
}

// GetOutgoingEdges returns a copy of id's outgoing (to, weight) pairs, or
// ok==false if absent.
func (g *Graph) GetOutgoingEdges(id NodeID) ([]Edge, bool) {
	g.muEdges.RLock()
	defer g.muEdges.RUnlock()
	n, exists := g.nodes[id]
	if !exists {
		return nil, false
	}
	return append([]Edge(nil), n.OutgoingEdges...), true
}

// GetDirectionalEdges returns id's {left,right,up,down} cache, or
// ok==false if absent.
func (g *Graph) GetDirectionalEdges(id NodeID) (DirectionalEdges, bool) {
	g.muEdges.RLock()
	defer g.muEdges.RUnlock()
	n, exists := g.nodes[id]
	if !exists {
		return DirectionalEdges{}, false
	}
	d := n.Directional
	return DirectionalEdges{Left: clonePtr(d.Left), Right: clonePtr(d.Right), Up: clonePtr(d.Up), Down: clonePtr(d.Down)}, true
}

func clonePtr(p *NodeID) *NodeID {
	if p == nil {
		return nil
	}
	id := *p
	return &id
}

// GetNodesInRadius appends every node id within r of (cx,cy) to out and
// returns the extended slice.
func (g *Graph) GetNodesInRadius(cx, cy, r float32, out []NodeID) []NodeID {
	g.spatialMu.Lock()
	ids := g.spatial.QueryRadius(cx, cy, r, nil)
	g.spatialMu.Unlock()
	for _, id := range ids {
		out = append(out, NodeID(id))
	}
	return out
}

// Nodes returns a snapshot slice of all nodes, ordered by ascending
// NodeID for deterministic iteration in tests.
func (g *Graph) Nodes() []Node {
	g.muNodes.RLock()
	defer g.muNodes.RUnlock()
	out := make([]Node, 0, len(g.nodes))
	for _, n := range g.nodes {
		out = append(out, n.clone())
	}
	sortNodesByID(out)
	return out
}

func sortNodesByID(nodes []Node) {
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].ID < nodes[j].ID })
}

// HasNode reports whether id exists.
func (g *Graph) HasNode(id NodeID) bool {
	g.muNodes.RLock()
	defer g.muNodes.RUnlock()
	_, ok := g.nodes[id]
	return ok
}

// Len reports the number of nodes.
func (g *Graph) Len() int {
	g.muNodes.RLock()
	defer g.muNodes.RUnlock()
	return len(g.nodes)
}
