package wcc

import (
	"runtime"
	"sync"

	"github.com/katalvlaran/csrgraph/csr"
	"github.com/katalvlaran/csrgraph/csrerr"
	"github.com/katalvlaran/csrgraph/workerpool"
)

// chunkSize mirrors the triangle counter's work-unit size (spec §6,
// CHUNK_SIZE=64), reused here for the initial parallel union pass.
const chunkSize csr.NI = 64

// Result is the payload of a weakly-connected-components compute action.
type Result struct {
	ComponentCount int      `json:"component_count"`
	Component      []csr.NI `json:"component"`
}

// unionFind is a disjoint-set-union structure with union-by-rank and path
// halving. Union is guarded by a single mutex: correctness, not lock-free
// throughput, is the goal for this collaborator kernel (spec §4.5 leaves
// WCC's internals unspecified). find is only called while mu is held, or
// after every worker has joined and access is once again single-threaded.
type unionFind struct {
	mu     sync.Mutex
	parent []csr.NI
	rank   []csr.NI
}

func newUnionFind(n int) *unionFind {
	parent := make([]csr.NI, n)
	for i := range parent {
		parent[i] = csr.NI(i)
	}
	return &unionFind{parent: parent, rank: make([]csr.NI, n)}
}

func (uf *unionFind) find(x csr.NI) csr.NI {
	for uf.parent[x] != x {
		uf.parent[x] = uf.parent[uf.parent[x]] // path halving
		x = uf.parent[x]
	}
	return x
}

func (uf *unionFind) union(x, y csr.NI) {
	uf.mu.Lock()
	defer uf.mu.Unlock()

	rx, ry := uf.find(x), uf.find(y)
	if rx == ry {
		return
	}
	if uf.rank[rx] < uf.rank[ry] {
		rx, ry = ry, rx
	}
	uf.parent[ry] = rx
	if uf.rank[rx] == uf.rank[ry] {
		uf.rank[rx]++
	}
}

// Run computes weakly connected components over the undirected view of
// g. Directed graphs are rejected with ErrInvalidArgument: tracing
// weak connectivity through a directed graph needs both in- and
// out-neighbours unioned, which is only safely available when reverse
// arrays exist, and nothing in this module's scope currently needs that
// case — an explicit, documented restriction rather than a silent one.
func Run(g *csr.Graph, workers int) (*Result, error) {
	if g.Orientation() != csr.Undirected {
		return nil, csrerr.Wrap(csrerr.ErrInvalidArgument, "wcc requires an Undirected graph, got %s", g.Orientation())
	}

	n := g.NodeCount()
	if n == 0 {
		return &Result{}, nil
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	count := csr.AsInt(n)
	uf := newUnionFind(count)

	dispatcher := workerpool.NewChunkDispatcher(n, chunkSize)
	workerpool.Run(workers, func(int) {
		for {
			start, end, ok := dispatcher.Next()
			if !ok {
				return
			}
			for u := start; u < end; u++ {
				nbrs, _ := g.Neighbors(u)
				for _, v := range nbrs {
					if v > u {
						// Each undirected edge appears in both
						// endpoints' neighbour lists; unioning only
						// from the lower-indexed side still reaches
						// every edge exactly once.
						uf.union(u, v)
					}
				}
			}
		}
	})

	component := make([]csr.NI, count)
	rootToComponent := make(map[csr.NI]csr.NI, count)
	var nextComponent csr.NI
	for u := csr.NI(0); u < n; u++ {
		root := uf.find(u)
		id, ok := rootToComponent[root]
		if !ok {
			id = nextComponent
			rootToComponent[root] = id
			nextComponent++
		}
		component[csr.AsInt(u)] = id
	}

	return &Result{ComponentCount: csr.AsInt(nextComponent), Component: component}, nil
}
