package oracle

import (
	"container/heap"

	"github.com/corvid-games/waymesh/heuristic"
	"github.com/corvid-games/waymesh/mapgraph"
)

// AStar answers on-demand shortest-path queries over a live mapgraph.Graph,
// for sparse or frequently-changing graphs where precomputing all pairs
// with Dense would be wasted work. Unlike Dense it requires no Generate
// step: each FindPath call searches fresh from the graph's current edges.
//
// Ties in the open set are broken by lower h, grounded on la2go's
// geoNode min-heap keyed on fCost (container/heap, Push/Pop by value).
type AStar struct {
	graph     *mapgraph.Graph
	Heuristic heuristic.Func
}

// NewAStar returns an AStar searcher over graph using h. Positions must be
// set on every node reachable from the search for any heuristic other than
// heuristic.Zero.
func NewAStar(graph *mapgraph.Graph, h heuristic.Func) *AStar {
	return &AStar{graph: graph, Heuristic: h}
}

type astarNode struct {
	id     mapgraph.NodeID
	parent mapgraph.NodeID
	hasPar bool
	gCost  float32
	hCost  float32
	fCost  float32
	index  int
}

type nodeHeap []*astarNode

func (h nodeHeap) Len() int            { return len(h) }
func (h nodeHeap) Less(i, j int) bool  { return h[i].fCost < h[j].fCost || (h[i].fCost == h[j].fCost && h[i].hCost < h[j].hCost) }
func (h nodeHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i]; h[i].index = i; h[j].index = j }
func (h *nodeHeap) Push(x any)         { n := x.(*astarNode); n.index = len(*h); *h = append(*h, n) }
func (h *nodeHeap) Pop() any {
	old := *h
	n := len(old)
	node := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return node
}

// FindPath searches src->dst and returns the cost and inclusive node
// sequence, or ok=false if no path exists.
func (a *AStar) FindPath(src, dst mapgraph.NodeID) (cost float32, path []mapgraph.NodeID, ok bool) {
	if src == dst {
		return 0, []mapgraph.NodeID{src}, true
	}

	dstX, dstY, _ := a.graph.GetNodePosition(dst)
	h := func(id mapgraph.NodeID) float32 {
		x, y, posOK := a.graph.GetNodePosition(id)
		if !posOK {
			return 0
		}
		return a.Heuristic(heuristic.Point{X: x, Y: y}, heuristic.Point{X: dstX, Y: dstY})
	}

	open := &nodeHeap{}
	heap.Init(open)
	heap.Push(open, &astarNode{id: src, hCost: h(src), fCost: h(src)})

	best := make(map[mapgraph.NodeID]*astarNode, 64)
	best[src] = (*open)[0]
	closed := make(map[mapgraph.NodeID]bool, 64)

	for open.Len() > 0 {
		current := heap.Pop(open).(*astarNode)
		if closed[current.id] {
			continue
		}
		closed[current.id] = true

		if current.id == dst {
			return current.gCost, reconstructPath(best, current.id), true
		}

		edges, edgeOK := a.graph.GetOutgoingEdges(current.id)
		if !edgeOK {
			continue
		}
		for _, e := range edges {
			if closed[e.To] {
				continue
			}
			g := current.gCost + float32(e.Weight)
			if existing, seen := best[e.To]; seen && g >= existing.gCost {
				continue
			}
			n := &astarNode{id: e.To, parent: current.id, hasPar: true, gCost: g, hCost: h(e.To)}
			n.fCost = n.gCost + n.hCost
			best[e.To] = n
			heap.Push(open, n)
		}
	}
	return 0, nil, false
}

func reconstructPath(best map[mapgraph.NodeID]*astarNode, dst mapgraph.NodeID) []mapgraph.NodeID {
	var rev []mapgraph.NodeID
	cur := dst
	for {
		rev = append(rev, cur)
		n := best[cur]
		if !n.hasPar {
			break
		}
		cur = n.parent
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}
	return rev
}
