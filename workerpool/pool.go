// Package workerpool provides the scoped worker pool and atomic chunk
// dispatcher shared by every parallel kernel (triangle count, PageRank,
// weakly-connected-components): a fixed number of goroutines, spawned and
// joined within one call, claiming contiguous node ranges from a single
// atomic cursor.
package workerpool

import (
	"sync"

	"github.com/katalvlaran/csrgraph/csr"
)

// Run spawns n goroutines, each calling fn(workerID), and blocks until
// every one of them returns. If any worker panics, Run re-panics on the
// calling goroutine with the same value once all workers have been
// joined — the Go analogue of "scoped workers whose exception must
// propagate" (spec §9).
//
// Run never returns early: it is a full barrier, matching the bulk
// synchronous execution model of spec §5 ("the kernel function does not
// return until every worker has joined").
func Run(n int, fn func(workerID int)) {
	if n <= 0 {
		n = 1
	}

	var wg sync.WaitGroup
	var panicOnce sync.Once
	var panicVal interface{}

	wg.Add(n)
	for w := 0; w < n; w++ {
		go func(id int) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					panicOnce.Do(func() { panicVal = r })
				}
			}()
			fn(id)
		}(w)
	}
	wg.Wait()

	if panicVal != nil {
		panic(panicVal)
	}
}

// ChunkDispatcher hands out contiguous, half-open node ranges
// [start, min(start+chunkSize, nodeCount)) from a single shared atomic
// cursor, per spec §4.4's CHUNK_SIZE=64 dispatch rule. Workers repeatedly
// call Next until it reports ok=false.
type ChunkDispatcher struct {
	next      csr.AtomicNI
	nodeCount csr.NI
	chunkSize csr.NI
}

// NewChunkDispatcher creates a dispatcher over [0, nodeCount) with the
// given chunk size.
func NewChunkDispatcher(nodeCount, chunkSize csr.NI) *ChunkDispatcher {
	return &ChunkDispatcher{nodeCount: nodeCount, chunkSize: chunkSize}
}

// Next atomically claims the next chunk. It returns ok=false once the
// cursor has reached or passed nodeCount, at which point the calling
// worker should stop.
func (d *ChunkDispatcher) Next() (start, end csr.NI, ok bool) {
	start = d.next.FetchAdd(d.chunkSize)
	if start >= d.nodeCount {
		return 0, 0, false
	}
	end = start + d.chunkSize
	if end > d.nodeCount {
		end = d.nodeCount
	}
	return start, end, true
}
