package sssp

import (
	"math"

	"github.com/katalvlaran/csrgraph/csr"
	"github.com/katalvlaran/csrgraph/csrerr"
)

// DefaultDelta is used when the caller passes delta <= 0.
const DefaultDelta = 1.0

// WeightFunc supplies the weight of edge (u, v). When Run is called with
// weight == nil, every edge is treated as unit weight.
type WeightFunc func(u, v csr.NI) float64

// Result is the payload of an Sssp compute action.
type Result struct {
	Distances []float64 `json:"distances"`
}

// Run computes shortest-path distances from source using delta-stepping:
// nodes are kept in buckets indexed by floor(dist/delta); each bucket is
// drained by repeatedly relaxing "light" edges (weight <= delta) until no
// more insertions land in it, then settled nodes relax their "heavy"
// edges (weight > delta) once, which may seed later buckets.
func Run(g *csr.Graph, source csr.NI, weight WeightFunc, delta float64) (*Result, error) {
	if delta <= 0 {
		delta = DefaultDelta
	}
	if weight == nil {
		weight = func(csr.NI, csr.NI) float64 { return 1.0 }
	}

	n := g.NodeCount()
	if source >= n {
		return nil, csrerr.Wrap(csrerr.ErrOutOfRange, "sssp source %d >= node_count %d", source, n)
	}

	count := csr.AsInt(n)
	dist := make([]float64, count)
	for i := range dist {
		dist[i] = math.Inf(1)
	}
	dist[csr.AsInt(source)] = 0

	buckets := make(map[int][]csr.NI)
	inBucket := make([]int, count)
	for i := range inBucket {
		inBucket[i] = -1
	}

	insert := func(v csr.NI, b int) {
		buckets[b] = append(buckets[b], v)
		inBucket[csr.AsInt(v)] = b
	}
	insert(source, 0)

	relax := func(v csr.NI, d float64) {
		vi := csr.AsInt(v)
		if d >= dist[vi] {
			return
		}
		dist[vi] = d
		newB := int(d / delta)
		if old := inBucket[vi]; old != newB {
			if old >= 0 {
				removeFromBucket(buckets, old, v)
			}
			insert(v, newB)
		}
	}

	for {
		b, ok := smallestNonEmptyBucket(buckets)
		if !ok {
			break
		}

		var settledOrder []csr.NI
		settled := make(map[csr.NI]bool)

		for len(buckets[b]) > 0 {
			frontier := buckets[b]
			buckets[b] = nil
			for _, u := range frontier {
				if inBucket[csr.AsInt(u)] != b {
					continue
				}
				// u is no longer queued: a later improvement within this
				// bucket re-inserts it, so it is relaxed again at its new
				// distance.
				inBucket[csr.AsInt(u)] = -1
				if !settled[u] {
					settled[u] = true
					settledOrder = append(settledOrder, u)
				}

				nbrs, _ := g.OutNeighbors(u)
				du := dist[csr.AsInt(u)]
				for _, v := range nbrs {
					w := weight(u, v)
					if w <= delta {
						relax(v, du+w)
					}
				}
			}
		}
		delete(buckets, b)
		for _, u := range settledOrder {
			inBucket[csr.AsInt(u)] = -1
		}

		for _, u := range settledOrder {
			nbrs, _ := g.OutNeighbors(u)
			du := dist[csr.AsInt(u)]
			for _, v := range nbrs {
				w := weight(u, v)
				if w > delta {
					relax(v, du+w)
				}
			}
		}
	}

	return &Result{Distances: dist}, nil
}

func removeFromBucket(buckets map[int][]csr.NI, b int, v csr.NI) {
	s := buckets[b]
	for i, x := range s {
		if x == v {
			s[i] = s[len(s)-1]
			buckets[b] = s[:len(s)-1]
			return
		}
	}
}

func smallestNonEmptyBucket(buckets map[int][]csr.NI) (int, bool) {
	best := -1
	for k, v := range buckets {
		if len(v) == 0 {
			continue
		}
		if best == -1 || k < best {
			best = k
		}
	}
	if best == -1 {
		return 0, false
	}
	return best, true
}
