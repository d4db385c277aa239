// Package triangle implements the parallel, work-stealing triangle
// counter: the kernel algorithm of this module (spec §4.4). It counts
// the number of unordered triples {u, v, w} with every pair connected,
// exactly once, via the ordering w < v < u.
package triangle

import (
	"runtime"
	"sync/atomic"

	"github.com/katalvlaran/csrgraph/csr"
	"github.com/katalvlaran/csrgraph/csrerr"
	"github.com/katalvlaran/csrgraph/workerpool"
)

// ChunkSize is the compile-time constant of spec §4.4/§6: the number of
// nodes a worker claims per fetch_add on the shared atomic cursor.
const ChunkSize csr.NI = 64

// Count runs the triangle counter with one worker per GOMAXPROCS. See
// CountWithWorkers for the full contract.
func Count(g *csr.Graph) (uint64, error) {
	return CountWithWorkers(g, runtime.GOMAXPROCS(0))
}

// CountWithWorkers runs the triangle counter with an explicit worker
// count. Per spec §8 property 7, the result is independent of workers
// and of ChunkSize — this parameter exists for benchmarking and for
// tests that exercise that determinism claim directly.
//
// Preconditions (spec §4.4): g must be Undirected and Deduplicated
// (sorted, strictly ascending, duplicate-free neighbour slices) —
// otherwise returns ErrLayoutViolation. Degree-ordering (relabel) is not
// required for correctness, only for performance.
//
// Concurrency: workers never mutate graph data; they only atomically
// claim chunks from a shared cursor and, once their chunk loop ends,
// atomically add their partial count into the running total once each
// (spec §5: AcqRel add, SeqCst final read — both implied here by
// sync/atomic.Uint64, which is sequentially consistent on every platform
// this module targets).
func CountWithWorkers(g *csr.Graph, workers int) (uint64, error) {
	if g.Orientation() != csr.Undirected {
		return 0, csrerr.Wrap(csrerr.ErrLayoutViolation, "triangle count requires an Undirected graph, got %s", g.Orientation())
	}
	if g.Layout() != csr.Deduplicated {
		return 0, csrerr.Wrap(csrerr.ErrLayoutViolation, "triangle count requires a Deduplicated graph, got %s", g.Layout())
	}

	nodeCount := g.NodeCount()
	if nodeCount == 0 {
		return 0, nil
	}

	dispatcher := workerpool.NewChunkDispatcher(nodeCount, ChunkSize)
	var total atomic.Uint64

	workerpool.Run(workers, func(workerID int) {
		var local uint64
		for {
			start, end, ok := dispatcher.Next()
			if !ok {
				break
			}
			for u := start; u < end; u++ {
				local += countAtNode(g, u)
			}
		}
		total.Add(local)
	})

	return total.Load(), nil
}

// countAtNode enumerates every triangle {u, v, w} with w < v < u anchored
// at u, per the inner enumeration of spec §4.4.
func countAtNode(g *csr.Graph, u csr.NI) uint64 {
	nbrsU, err := g.Neighbors(u)
	if err != nil {
		return 0
	}

	var triangles uint64
	for _, v := range nbrsU {
		if v >= u {
			// Neighbour slices are sorted ascending: once v >= u no
			// remaining neighbour can satisfy v < u. v == u can only
			// occur for a self-loop, also excluded here.
			break
		}

		nbrsV, err := g.Neighbors(v)
		if err != nil {
			continue
		}

		it := newPutBackIterator(nbrsU)
		for _, w := range nbrsV {
			if w >= v {
				break
			}
			x, ok := it.next()
			for ok && x < w {
				x, ok = it.next()
			}
			if !ok {
				break
			}
			if x == w {
				triangles++
			}
			it.putBack()
		}
	}
	return triangles
}
