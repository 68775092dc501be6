package spatial

// SpatialIndex is a quadtree keyed by integer id. The zero value is not
// usable; construct with New or ResetWithBoundaries.
type SpatialIndex struct {
	arena []quadNode
	root  int32
	// pos tracks each live id's last-known position so Remove/Update can
	// descend straight to the owning leaf instead of scanning the arena.
	pos map[int64]Point
}

// New constructs a SpatialIndex whose root covers bounds. Points outside
// bounds fail to Insert (return false) until ResetWithBoundaries widens
// the tree.
func New(bounds Rect) *SpatialIndex {
	idx := &SpatialIndex{
		pos: make(map[int64]Point),
	}
	idx.arena = append(idx.arena, newLeaf(bounds))
	idx.root = 0
	return idx
}

// ResetWithBoundaries discards the current tree and rebuilds a root whose
// bounds are the bounding box of points, expanded by DefaultGutter on
// every side, then (re-)inserts every point. Points that were previously
// tracked but are not present in the passed slice are dropped.
func (idx *SpatialIndex) ResetWithBoundaries(points []Point) {
	if len(points) == 0 {
		idx.arena = idx.arena[:0]
		idx.arena = append(idx.arena, newLeaf(Rect{}))
		idx.root = 0
		idx.pos = make(map[int64]Point)
		return
	}

	b := Rect{MinX: points[0].X, MinY: points[0].Y, MaxX: points[0].X, MaxY: points[0].Y}
	for _, p := range points[1:] {
		if p.X < b.MinX {
			b.MinX = p.X
		}
		if p.X > b.MaxX {
			b.MaxX = p.X
		}
		if p.Y < b.MinY {
			b.MinY = p.Y
		}
		if p.Y > b.MaxY {
			b.MaxY = p.Y
		}
	}
	b.MinX -= DefaultGutter
	b.MinY -= DefaultGutter
	b.MaxX += DefaultGutter
	b.MaxY += DefaultGutter

	idx.arena = idx.arena[:0]
	idx.arena = append(idx.arena, newLeaf(b))
	idx.root = 0
	idx.pos = make(map[int64]Point, len(points))

	for _, p := range points {
		idx.Insert(p.ID, p.X, p.Y)
	}
}

// Insert adds id at (x,y). Returns false iff (x,y) falls outside the
// tree's current root boundary; the insert is silently dropped (a
// BoundaryViolation — no error is raised).
func (idx *SpatialIndex) Insert(id int64, x, y float32) bool {
	if !idx.arena[idx.root].bounds.Contains(x, y) {
		return false
	}
	idx.insertInto(idx.root, id, x, y)
	idx.pos[id] = Point{ID: id, X: x, Y: y}
	return true
}

func (idx *SpatialIndex) insertInto(nodeIdx int32, id int64, x, y float32) {
	n := &idx.arena[nodeIdx]
	if !n.isLeaf() {
		child := idx.quadrantOf(nodeIdx, x, y)
		idx.insertInto(child, id, x, y)
		return
	}

	n.ids = append(n.ids, id)
	n.xs = append(n.xs, x)
	n.ys = append(n.ys, y)

	if len(n.ids) > leafCapacity {
		idx.subdivide(nodeIdx)
	}
}

// quadrantOf returns the arena index of the child of nodeIdx that should
// contain (x,y). nodeIdx must already be an internal node.
func (idx *SpatialIndex) quadrantOf(nodeIdx int32, x, y float32) int32 {
	n := &idx.arena[nodeIdx]
	midX, midY := n.bounds.midpoint()
	var q int
	switch {
	case x < midX && y < midY:
		q = quadNW
	case x >= midX && y < midY:
		q = quadNE
	case x < midX && y >= midY:
		q = quadSW
	default:
		q = quadSE
	}
	return n.children[q]
}

// subdivide turns leaf nodeIdx into an internal node with four quadrant
// children and redistributes its points into them. After this call
// nodeIdx's own ids/xs/ys are empty.
func (idx *SpatialIndex) subdivide(nodeIdx int32) {
	bounds := idx.arena[nodeIdx].bounds
	midX, midY := bounds.midpoint()

	quadBounds := [4]Rect{
		quadNW: {bounds.MinX, bounds.MinY, midX, midY},
		quadNE: {midX, bounds.MinY, bounds.MaxX, midY},
		quadSW: {bounds.MinX, midY, midX, bounds.MaxY},
		quadSE: {midX, midY, bounds.MaxX, bounds.MaxY},
	}

	var childIdx [4]int32
	for q := 0; q < 4; q++ {
		idx.arena = append(idx.arena, newLeaf(quadBounds[q]))
		childIdx[q] = int32(len(idx.arena) - 1)
	}

	// Re-fetch after append: the slice may have reallocated.
	ids, xs, ys := idx.arena[nodeIdx].ids, idx.arena[nodeIdx].xs, idx.arena[nodeIdx].ys
	idx.arena[nodeIdx].children = childIdx
	idx.arena[nodeIdx].ids = nil
	idx.arena[nodeIdx].xs = nil
	idx.arena[nodeIdx].ys = nil

	for i, id := range ids {
		child := idx.quadrantOf(nodeIdx, xs[i], ys[i])
		idx.insertInto(child, id, xs[i], ys[i])
	}
}

// Remove deletes id from the tree. Returns false if id was not tracked.
func (idx *SpatialIndex) Remove(id int64) bool {
	p, ok := idx.pos[id]
	if !ok {
		return false
	}
	idx.removeFrom(idx.root, id, p.X, p.Y)
	delete(idx.pos, id)
	return true
}

func (idx *SpatialIndex) removeFrom(nodeIdx int32, id int64, x, y float32) {
	n := &idx.arena[nodeIdx]
	if !n.isLeaf() {
		idx.removeFrom(idx.quadrantOf(nodeIdx, x, y), id, x, y)
		return
	}
	for i, existing := range n.ids {
		if existing == id {
			last := len(n.ids) - 1
			n.ids[i], n.ids[last] = n.ids[last], n.ids[i]
			n.xs[i], n.xs[last] = n.xs[last], n.xs[i]
			n.ys[i], n.ys[last] = n.ys[last], n.ys[i]
			n.ids = n.ids[:last]
			n.xs = n.xs[:last]
			n.ys = n.ys[:last]
			return
		}
	}
}

// Update moves id to (x,y); equivalent to Remove followed by Insert.
// Returns false if the new position is outside the tree's bounds — the
// old position's entry is still removed in that case, since Update is
// literally Remove followed by Insert.
func (idx *SpatialIndex) Update(id int64, x, y float32) bool {
	idx.Remove(id)
	return idx.Insert(id, x, y)
}

// QueryRadius appends every tracked point within r of (cx,cy) to out and
// returns the extended slice. Uses the query's axis-aligned bounding box
// to prune subtrees before the exact squared-distance test.
func (idx *SpatialIndex) QueryRadius(cx, cy, r float32, out []int64) []int64 {
	bbox := Rect{MinX: cx - r, MinY: cy - r, MaxX: cx + r, MaxY: cy + r}
	r2 := r * r
	return idx.queryRadiusNode(idx.root, bbox, cx, cy, r2, out)
}

func (idx *SpatialIndex) queryRadiusNode(nodeIdx int32, bbox Rect, cx, cy, r2 float32, out []int64) []int64 {
	n := &idx.arena[nodeIdx]
	if !n.bounds.Intersects(bbox) {
		return out
	}
	if n.isLeaf() {
		for i, id := range n.ids {
			dx, dy := n.xs[i]-cx, n.ys[i]-cy
			if dx*dx+dy*dy <= r2 {
				out = append(out, id)
			}
		}
		return out
	}
	for _, c := range n.children {
		out = idx.queryRadiusNode(c, bbox, cx, cy, r2, out)
	}
	return out
}

// QueryRect appends every tracked point inside rect to out and returns
// the extended slice.
func (idx *SpatialIndex) QueryRect(rect Rect, out []int64) []int64 {
	return idx.queryRectNode(idx.root, rect, out)
}

func (idx *SpatialIndex) queryRectNode(nodeIdx int32, rect Rect, out []int64) []int64 {
	n := &idx.arena[nodeIdx]
	if !n.bounds.Intersects(rect) {
		return out
	}
	if n.isLeaf() {
		for i, id := range n.ids {
			if rect.Contains(n.xs[i], n.ys[i]) {
				out = append(out, id)
			}
		}
		return out
	}
	for _, c := range n.children {
		out = idx.queryRectNode(c, rect, out)
	}
	return out
}

// Len reports the number of tracked points.
func (idx *SpatialIndex) Len() int {
	return len(idx.pos)
}
