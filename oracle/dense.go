package oracle

import (
	"runtime"
	"sync"

	"github.com/corvid-games/waymesh/mapgraph"
)

// Dense is a precomputed all-pairs-shortest-path oracle backed by a flat
// row-major uint64 distance matrix and a parallel next-hop matrix,
// mirroring matrix.Dense's single flat-slice storage discipline. Generate
// must be called after every batch of AddEdgeWithMapping calls (or after
// any graph mutation) before queries are valid.
type Dense struct {
	opts Options

	ids    map[mapgraph.NodeID]int
	revIDs []mapgraph.NodeID

	n    int
	dist []uint64 // row-major n*n, infDist = unreachable
	next []int32  // row-major n*n, -1 = no next hop

	generated bool
}

// NewDense returns an empty Dense oracle configured by opts.
func NewDense(opts Options) *Dense {
	d := &Dense{opts: opts, ids: make(map[mapgraph.NodeID]int)}
	return d
}

// Resize prepares capacity for n nodes. It does not assign any ids.
func (d *Dense) Resize(n int) {
	if n < 0 {
		n = 0
	}
	if cap(d.revIDs) < n {
		grown := make([]mapgraph.NodeID, len(d.revIDs), n)
		copy(grown, d.revIDs)
		d.revIDs = grown
	}
}

// Clean resets the oracle to empty.
func (d *Dense) Clean() {
	d.ids = make(map[mapgraph.NodeID]int)
	d.revIDs = d.revIDs[:0]
	d.n = 0
	d.dist = nil
	d.next = nil
	d.generated = false
}

func (d *Dense) indexOf(id mapgraph.NodeID) int {
	if idx, ok := d.ids[id]; ok {
		return idx
	}
	idx := len(d.revIDs)
	d.ids[id] = idx
	d.revIDs = append(d.revIDs, id)
	return idx
}

// AddEdgeWithMapping records a directed edge u->v of weight w, lazily
// assigning dense indices to either endpoint if unseen. Only the smaller
// of any duplicate weight is kept (D[u][v] = min(D[u][v], w)).
func (d *Dense) AddEdgeWithMapping(u, v mapgraph.NodeID, w uint32) {
	d.generated = false
	ui := d.indexOf(u)
	vi := d.indexOf(v)
	d.growTo(len(d.revIDs))
	if uint64(w) < d.dist[ui*d.n+vi] {
		d.dist[ui*d.n+vi] = uint64(w)
		d.next[ui*d.n+vi] = int32(vi)
	}
}

// growTo expands the matrices to n*n, preserving existing entries and
// initialising new cells to infDist / no-next / 0-diagonal.
func (d *Dense) growTo(n int) {
	if n <= d.n {
		return
	}
	newDist := make([]uint64, n*n)
	newNext := make([]int32, n*n)
	for i := range newDist {
		newDist[i] = infDist
		newNext[i] = -1
	}
	for i := 0; i < n; i++ {
		newDist[i*n+i] = 0
		newNext[i*n+i] = int32(i)
	}
	for i := 0; i < d.n; i++ {
		for j := 0; j < d.n; j++ {
			newDist[i*n+j] = d.dist[i*d.n+j]
			newNext[i*n+j] = d.next[i*d.n+j]
		}
	}
	d.dist = newDist
	d.next = newNext
	d.n = n
}

// Generate runs Floyd-Warshall with the configured variant, completing the
// distance/next matrices so queries become valid.
func (d *Dense) Generate() error {
	switch d.opts.Variant {
	case SIMDWidth4:
		floydWarshallSIMD4(d.dist, d.next, d.n)
	case Parallel:
		workers := d.opts.WorkerCount
		if workers <= 0 {
			workers = runtime.GOMAXPROCS(0)
		}
		floydWarshallParallel(d.dist, d.next, d.n, workers)
	default:
		floydWarshallLegacy(d.dist, d.next, d.n)
	}
	d.generated = true
	return nil
}

func (d *Dense) ValueWithMapping(u, v mapgraph.NodeID) (uint64, bool) {
	ui, uok := d.ids[u]
	vi, vok := d.ids[v]
	if !uok || !vok || !d.generated {
		return 0, false
	}
	dist := d.dist[ui*d.n+vi]
	return dist, dist != infDist
}

func (d *Dense) HasPathWithMapping(u, v mapgraph.NodeID) bool {
	_, ok := d.ValueWithMapping(u, v)
	return ok
}

func (d *Dense) NextWithMapping(u, v mapgraph.NodeID) (mapgraph.NodeID, bool) {
	ui, uok := d.ids[u]
	vi, vok := d.ids[v]
	if !uok || !vok || !d.generated {
		return 0, false
	}
	nxt := d.next[ui*d.n+vi]
	if nxt < 0 {
		return 0, false
	}
	return d.revIDs[nxt], true
}

// SetPathWithMapping walks the next-hop matrix from u to v, appending the
// full inclusive node sequence to out.
func (d *Dense) SetPathWithMapping(out []mapgraph.NodeID, u, v mapgraph.NodeID) ([]mapgraph.NodeID, bool) {
	if !d.HasPathWithMapping(u, v) {
		return out, false
	}
	cur := u
	out = append(out, cur)
	for cur != v {
		nxt, ok := d.NextWithMapping(cur, v)
		if !ok {
			return out, false
		}
		out = append(out, nxt)
		cur = nxt
	}
	return out, true
}

// floydWarshallLegacy is the classical scalar triple loop, grounded on
// matrix.floydWarshallInPlace's k->i->j order and infDist-skip early-out.
func floydWarshallLegacy(dist []uint64, next []int32, n int) {
	var k, i, j, baseK, baseI int
	var ik, kj, cand uint64
	for k = 0; k < n; k++ {
		baseK = k * n
		for i = 0; i < n; i++ {
			ik = dist[i*n+k]
			if ik == infDist {
				continue
			}
			baseI = i * n
			for j = 0; j < n; j++ {
				kj = dist[baseK+j]
				if kj == infDist {
					continue
				}
				cand = ik + kj
				if cand < dist[baseI+j] {
					dist[baseI+j] = cand
					next[baseI+j] = next[baseI+k]
				}
			}
		}
	}
}

// floydWarshallSIMD4 relaxes the inner j loop four cells at a time, the
// idiomatic Go stand-in for fixed-width SIMD lanes: a Go compiler
// auto-vectorizes such unrolled loops on supporting targets, and the
// unroll still pays off as straight-line scalar code when it doesn't. A
// scalar tail handles the final 0-3 columns.
func floydWarshallSIMD4(dist []uint64, next []int32, n int) {
	const lane = 4
	var k, i, j, baseK, baseI int
	var ik, cand0, cand1, cand2, cand3 uint64
	for k = 0; k < n; k++ {
		baseK = k * n
		for i = 0; i < n; i++ {
			ik = dist[i*n+k]
			if ik == infDist {
				continue
			}
			baseI = i * n
			j = 0
			for ; j+lane <= n; j += lane {
				kj0, kj1, kj2, kj3 := dist[baseK+j], dist[baseK+j+1], dist[baseK+j+2], dist[baseK+j+3]
				if kj0 != infDist {
					cand0 = ik + kj0
					if cand0 < dist[baseI+j] {
						dist[baseI+j] = cand0
						next[baseI+j] = next[baseI+k]
					}
				}
				if kj1 != infDist {
					cand1 = ik + kj1
					if cand1 < dist[baseI+j+1] {
						dist[baseI+j+1] = cand1
						next[baseI+j+1] = next[baseI+k]
					}
				}
				if kj2 != infDist {
					cand2 = ik + kj2
					if cand2 < dist[baseI+j+2] {
						dist[baseI+j+2] = cand2
						next[baseI+j+2] = next[baseI+k]
					}
				}
				if kj3 != infDist {
					cand3 = ik + kj3
					if cand3 < dist[baseI+j+3] {
						dist[baseI+j+3] = cand3
						next[baseI+j+3] = next[baseI+k]
					}
				}
			}
			for ; j < n; j++ { // scalar tail, n not a multiple of 4
				kj := dist[baseK+j]
				if kj == infDist {
					continue
				}
				cand := ik + kj
				if cand < dist[baseI+j] {
					dist[baseI+j] = cand
					next[baseI+j] = next[baseI+k]
				}
			}
		}
	}
}

// floydWarshallParallel partitions the i loop across workers for each
// fixed k, with a sync.WaitGroup barrier between k steps. This is safe
// without additional locking because, within a single k step, every
// worker only reads row k (never written during that step) and writes
// its own disjoint set of rows — the same row-ownership argument the
// scalar variants rely on, just split across goroutines instead of a
// single loop.
func floydWarshallParallel(dist []uint64, next []int32, n int, workers int) {
	if workers < 1 {
		workers = 1
	}
	if n == 0 {
		return
	}
	if workers > n {
		workers = n
	}

	chunk := (n + workers - 1) / workers
	for k := 0; k < n; k++ {
		baseK := k * n
		var wg sync.WaitGroup
		for w := 0; w < workers; w++ {
			lo := w * chunk
			hi := lo + chunk
			if hi > n {
				hi = n
			}
			if lo >= hi {
				continue
			}
			wg.Add(1)
			go func(lo, hi int) {
				defer wg.Done()
				for i := lo; i < hi; i++ {
					ik := dist[i*n+k]
					if ik == infDist {
						continue
					}
					baseI := i * n
					for j := 0; j < n; j++ {
						kj := dist[baseK+j]
						if kj == infDist {
							continue
						}
						cand := ik + kj
						if cand < dist[baseI+j] {
							dist[baseI+j] = cand
							next[baseI+j] = next[baseI+k]
						}
					}
				}
			}(lo, hi)
		}
		wg.Wait()
	}
}
