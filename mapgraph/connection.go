package mapgraph

import (
	"math"
	"sort"
)

// ConnectionMode is a tagged variant selecting one of the three
// auto-connection strategies. ConnectNodes first clears all existing
// edges, then rebuilds the full edge set under the chosen mode.
type ConnectionMode interface {
	isConnectionMode()
}

// Omnidirectional connects every node to its nearest neighbours within
// MaxDistance, capped at MaxConnections, with bidirectional edges.
type Omnidirectional struct {
	MaxDistance    float32
	MaxConnections int
}

func (Omnidirectional) isConnectionMode() {}

// Directional connects each node to its nearest left/right/up/down
// neighbour within range, populating the directional-edge cache. It
// ignores StairMode entirely (the platformer connection mode).
type Directional struct {
	HorizontalRange float32
	VerticalRange   float32
}

func (Directional) isConnectionMode() {}

// Building connects nodes horizontally like Directional's horizontal
// half, and vertically ONLY between pairs of stair nodes within
// FloorHeight and HorizontalRange of each other.
type Building struct {
	HorizontalRange float32
	FloorHeight     float32
}

func (Building) isConnectionMode() {}

// edgeWeight rounds the Euclidean distance between two positions to the
// nearest integer, round-to-nearest applied consistently across all three
// connection strategies; callers comparing against expected weights should
// tolerate ±1.
func edgeWeight(ax, ay, bx, by float32) uint32 {
	dx := float64(ax - bx)
	dy := float64(ay - by)
	d := math.Sqrt(dx*dx + dy*dy)
	return uint32(math.Round(d))
}

func dist(ax, ay, bx, by float32) float32 {
	dx := ax - bx
	dy := ay - by
	return float32(math.Sqrt(float64(dx*dx + dy*dy)))
}

// ConnectNodes clears all existing edges and directional caches, then
// rebuilds them per mode. Returns ErrNilConnectionMode if mode is nil.
func (g *Graph) ConnectNodes(mode ConnectionMode) error {
	if mode == nil {
		return ErrNilConnectionMode
	}

	g.muNodes.RLock()
	nodes := make([]*Node, 0, len(g.nodes))
	for _, n := range g.nodes {
		nodes = append(nodes, n)
	}
	g.muNodes.RUnlock()
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].ID < nodes[j].ID })

	g.muEdges.Lock()
	defer g.muEdges.Unlock()
	g.clearEdgesLocked()

	switch m := mode.(type) {
	case Omnidirectional:
		g.connectOmnidirectionalLocked(nodes, m)
	case Directional:
		g.connectDirectionalLocked(nodes, m)
	case Building:
		g.connectBuildingLocked(nodes, m)
	}
	return nil
}

type candidate struct {
	id   NodeID
	dist float32
}

func (g *Graph) connectOmnidirectionalLocked(nodes []*Node, m Omnidirectional) {
	for _, a := range nodes {
		cands := make([]candidate, 0, len(nodes))
		for _, b := range nodes {
			if a.ID == b.ID {
				continue
			}
			d := dist(a.X, a.Y, b.X, b.Y)
			if d <= m.MaxDistance {
				cands = append(cands, candidate{id: b.ID, dist: d})
			}
		}
		sort.Slice(cands, func(i, j int) bool { return cands[i].dist < cands[j].dist })
		if m.MaxConnections > 0 && len(cands) > m.MaxConnections {
			cands = cands[:m.MaxConnections]
		}
		for _, c := range cands {
			w := uint32(math.Round(float64(c.dist)))
			g.addDirectedEdgeLocked(a.ID, c.id, w)
			g.addDirectedEdgeLocked(c.id, a.ID, w)
		}
	}
}

// nearestInDirection finds, among nodes other than a, the nearest b
// satisfying axisLess(a,b) (the directional sign test) and bandOK(a,b)
// (the perpendicular-band test), within maxRange (Euclidean distance).
func nearestInDirection(a *Node, nodes []*Node, maxRange float32, axisLess func(a, b *Node) bool, bandOK func(a, b *Node) bool) (*Node, bool) {
	var best *Node
	var bestDist float32
	for _, b := range nodes {
		if b.ID == a.ID {
			continue
		}
		if !axisLess(a, b) {
			continue
		}
		if !bandOK(a, b) {
			continue
		}
		d := dist(a.X, a.Y, b.X, b.Y)
		if d > maxRange {
			continue
		}
		if best == nil || d < bestDist {
			best = b
			bestDist = d
		}
	}
	return best, best != nil
}

// connectDirectionalLocked links each node to its nearest neighbour in
// each of the four compass directions. The perpendicular band for
// left/right is half of HorizontalRange; for up/down it is half of
// VerticalRange, mirroring the primary axis's own range — the natural
// symmetric reading extended to right, up, and down from the left case.
func (g *Graph) connectDirectionalLocked(nodes []*Node, m Directional) {
	for _, a := range nodes {
		left, okL := nearestInDirection(a, nodes, m.HorizontalRange,
			func(a, b *Node) bool { return b.X < a.X },
			func(a, b *Node) bool { return absf32(b.Y-a.Y) <= m.HorizontalRange/2 })
		right, okR := nearestInDirection(a, nodes, m.HorizontalRange,
			func(a, b *Node) bool { return b.X > a.X },
			func(a, b *Node) bool { return absf32(b.Y-a.Y) <= m.HorizontalRange/2 })
		up, okU := nearestInDirection(a, nodes, m.VerticalRange,
			func(a, b *Node) bool { return b.Y < a.Y },
			func(a, b *Node) bool { return absf32(b.X-a.X) <= m.VerticalRange/2 })
		down, okD := nearestInDirection(a, nodes, m.VerticalRange,
			func(a, b *Node) bool { return b.Y > a.Y },
			func(a, b *Node) bool { return absf32(b.X-a.X) <= m.VerticalRange/2 })

		if okL {
			g.linkDirectionalLocked(a, left, setLeft)
		}
		if okR {
			g.linkDirectionalLocked(a, right, setRight)
		}
		if okU {
			g.linkDirectionalLocked(a, up, setUp)
		}
		if okD {
			g.linkDirectionalLocked(a, down, setDown)
		}
	}
}

// connectBuildingLocked connects nodes horizontally exactly as
// Directional's left/right half, then gates vertical edges to stair-node
// pairs within FloorHeight/HorizontalRange.
func (g *Graph) connectBuildingLocked(nodes []*Node, m Building) {
	for _, a := range nodes {
		left, okL := nearestInDirection(a, nodes, m.HorizontalRange,
			func(a, b *Node) bool { return b.X < a.X },
			func(a, b *Node) bool { return absf32(b.Y-a.Y) <= m.HorizontalRange/2 })
		right, okR := nearestInDirection(a, nodes, m.HorizontalRange,
			func(a, b *Node) bool { return b.X > a.X },
			func(a, b *Node) bool { return absf32(b.Y-a.Y) <= m.HorizontalRange/2 })
		if okL {
			g.linkDirectionalLocked(a, left, setLeft)
		}
		if okR {
			g.linkDirectionalLocked(a, right, setRight)
		}
	}

	// Vertical edges: every qualifying stair pair gets a bidirectional
	// edge (not just each node's nearest) — this is a gating predicate
	// over pairs, not a per-node nearest-neighbour pick. The directional
	// up/down cache still only remembers the nearest qualifying partner
	// per node, consistent with Directional.
	for i, a := range nodes {
		if a.StairMode == StairModeNone {
			continue
		}
		var nearestUp, nearestDown *Node
		var nearestUpDist, nearestDownDist float32
		for j, b := range nodes {
			if i == j || b.StairMode == StairModeNone {
				continue
			}
			if absf32(b.Y-a.Y) > m.FloorHeight || absf32(b.X-a.X) > m.HorizontalRange {
				continue
			}
			w := edgeWeight(a.X, a.Y, b.X, b.Y)
			g.addDirectedEdgeLocked(a.ID, b.ID, w)

			d := dist(a.X, a.Y, b.X, b.Y)
			if b.Y < a.Y && (nearestUp == nil || d < nearestUpDist) {
				nearestUp, nearestUpDist = b, d
			}
			if b.Y > a.Y && (nearestDown == nil || d < nearestDownDist) {
				nearestDown, nearestDownDist = b, d
			}
		}
		if nearestUp != nil {
			id := nearestUp.ID
			a.Directional.Up = &id
		}
		if nearestDown != nil {
			id := nearestDown.ID
			a.Directional.Down = &id
		}
	}
}

func setLeft(n *Node, id NodeID)  { n.Directional.Left = &id }
func setRight(n *Node, id NodeID) { n.Directional.Right = &id }
func setUp(n *Node, id NodeID)    { n.Directional.Up = &id }
func setDown(n *Node, id NodeID)  { n.Directional.Down = &id }

// linkDirectionalLocked adds a bidirectional edge between a and b and
// records b in a's cache via setOnA. b's own cache is set only by b's own
// nearest-neighbour pass, so it always names b's nearest neighbour.
func (g *Graph) linkDirectionalLocked(a, b *Node, setOnA func(*Node, NodeID)) {
	w := edgeWeight(a.X, a.Y, b.X, b.Y)
	g.addDirectedEdgeLocked(a.ID, b.ID, w)
	g.addDirectedEdgeLocked(b.ID, a.ID, w)
	setOnA(a, b.ID)
}

func absf32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
