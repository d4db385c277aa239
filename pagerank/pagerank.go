package pagerank

import (
	"runtime"

	"github.com/katalvlaran/csrgraph/csr"
	"github.com/katalvlaran/csrgraph/csrerr"
	"github.com/katalvlaran/csrgraph/workerpool"
)

// Defaults mirror the common power-iteration PageRank configuration;
// nothing here is mandated by a numerical reference, only internally
// consistent.
const (
	DefaultDampingFactor = 0.85
	DefaultMaxIterations = 20
	DefaultTolerance     = 1e-4
)

// chunkSize is the same work-unit size used by the triangle counter
// (spec §6, CHUNK_SIZE=64) applied to per-iteration node dispatch.
const chunkSize csr.NI = 64

// Config holds the tunable knobs of a PageRank run. Zero values are
// replaced with the package defaults by Run.
type Config struct {
	DampingFactor float64 `json:"damping_factor,omitempty"`
	MaxIterations int     `json:"max_iterations,omitempty"`
	Tolerance     float64 `json:"tolerance,omitempty"`
	Workers       int     `json:"workers,omitempty"`
}

func (c Config) withDefaults() Config {
	if c.DampingFactor == 0 {
		c.DampingFactor = DefaultDampingFactor
	}
	if c.MaxIterations == 0 {
		c.MaxIterations = DefaultMaxIterations
	}
	if c.Tolerance == 0 {
		c.Tolerance = DefaultTolerance
	}
	if c.Workers <= 0 {
		c.Workers = runtime.GOMAXPROCS(0)
	}
	return c
}

// Result is the payload of a PageRank compute action.
type Result struct {
	Scores        []float64 `json:"scores"`
	RanIterations int       `json:"ran_iterations"`
	Error         float64   `json:"error"`
}

// Run computes PageRank scores by pull-model power iteration: for every
// node v, the next score is derived from the current scores of v's
// in-neighbours divided by their out-degree. Because distinct v's never
// write to each other's slot, the per-iteration pass is embarrassingly
// parallel over the chunk dispatcher with no synchronization beyond the
// barrier between iterations.
//
// A directed graph must carry reverse (in-neighbour) arrays — built by
// the same pass in builder.Build — otherwise ErrInvalidArgument. An
// undirected graph needs none: its in-neighbours are its neighbours.
func Run(g *csr.Graph, cfg Config) (*Result, error) {
	cfg = cfg.withDefaults()

	n := g.NodeCount()
	if n == 0 {
		return &Result{}, nil
	}
	if g.Orientation() == csr.Directed && !g.HasReverse() {
		return nil, csrerr.Wrap(csrerr.ErrInvalidArgument, "pagerank requires in-neighbour arrays on a directed graph")
	}

	count := csr.AsInt(n)
	outDeg := make([]float64, count)
	for u := csr.NI(0); u < n; u++ {
		d, err := g.OutDegree(u)
		if err != nil {
			return nil, err
		}
		outDeg[csr.AsInt(u)] = float64(d)
	}

	nf := float64(count)
	scores := make([]float64, count)
	for i := range scores {
		scores[i] = 1.0 / nf
	}
	next := make([]float64, count)

	ranIterations := 0
	lastDiff := 0.0

	for iter := 0; iter < cfg.MaxIterations; iter++ {
		ranIterations = iter + 1

		danglingSum := 0.0
		for i, d := range outDeg {
			if d == 0 {
				danglingSum += scores[i]
			}
		}
		danglingShare := danglingSum / nf

		dispatcher := workerpool.NewChunkDispatcher(n, chunkSize)
		workerpool.Run(cfg.Workers, func(int) {
			for {
				start, end, ok := dispatcher.Next()
				if !ok {
					return
				}
				for v := start; v < end; v++ {
					inNbrs, _ := g.InNeighbors(v)
					sum := 0.0
					for _, u := range inNbrs {
						sum += scores[csr.AsInt(u)] / outDeg[csr.AsInt(u)]
					}
					next[csr.AsInt(v)] = cfg.DampingFactor*(sum+danglingShare) + (1-cfg.DampingFactor)/nf
				}
			}
		})

		diff := 0.0
		for i := range scores {
			d := next[i] - scores[i]
			if d < 0 {
				d = -d
			}
			diff += d
		}
		scores, next = next, scores
		lastDiff = diff
		if diff < cfg.Tolerance {
			break
		}
	}

	return &Result{Scores: scores, RanIterations: ranIterations, Error: lastDiff}, nil
}
