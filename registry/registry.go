package registry

import (
	"time"

	"github.com/google/uuid"
	"github.com/katalvlaran/csrgraph/csr"
	"github.com/katalvlaran/csrgraph/csrerr"
	"github.com/katalvlaran/csrgraph/pagerank"
	"github.com/katalvlaran/csrgraph/sssp"
	"github.com/katalvlaran/csrgraph/triangle"
	"github.com/katalvlaran/csrgraph/wcc"
)

// Algorithm names the kernel a compute request selects. Only
// TriangleCount is specified by spec §4.4; the rest are the collaborator
// slots of §4.5/§4.10.
type Algorithm string

const (
	TriangleCount Algorithm = "TriangleCount"
	PageRank      Algorithm = "PageRank"
	Wcc           Algorithm = "Wcc"
	Sssp          Algorithm = "Sssp"
)

// SsspConfig carries the per-algorithm config blob for an Sssp request.
type SsspConfig struct {
	Source csr.NI  `json:"source"`
	Delta  float64 `json:"delta,omitempty"`
}

// Request is the tagged union spec §4.5 describes: one Algorithm tag
// plus the config blob relevant to it. Fields for algorithms other than
// the selected one are ignored.
type Request struct {
	Algorithm   Algorithm       `json:"algorithm"`
	PropertyKey string          `json:"property_key"`
	Workers     int             `json:"workers,omitempty"`
	PageRank    pagerank.Config `json:"page_rank,omitempty"`
	Sssp        SsspConfig      `json:"sssp,omitempty"`
}

// Result is the uniform envelope: compute_millis plus exactly one
// populated algorithm-specific payload field, matching which Algorithm
// was requested.
type Result struct {
	PropertyID    string `json:"property_id"`
	ComputeMillis int64  `json:"compute_millis"`

	TriangleCount *uint64          `json:"triangle_count,omitempty"`
	PageRank      *pagerank.Result `json:"pagerank,omitempty"`
	Wcc           *wcc.Result      `json:"wcc,omitempty"`
	Sssp          *sssp.Result     `json:"sssp,omitempty"`
}

// Dispatch runs the requested algorithm against g synchronously on the
// calling goroutine — spec §4.5: "runs the kernel synchronously from the
// RPC handler thread" — and wraps the result in the uniform envelope.
func Dispatch(g *csr.Graph, req Request) (*Result, error) {
	start := time.Now()
	propertyID := req.PropertyKey
	if propertyID == "" {
		// An unnamed property still needs a stable id a later `list`/audit
		// call can reference.
		propertyID = uuid.NewString()
	}
	out := &Result{PropertyID: propertyID}

	switch req.Algorithm {
	case TriangleCount:
		n, err := triangle.Count(g)
		if err != nil {
			return nil, err
		}
		out.TriangleCount = &n

	case PageRank:
		res, err := pagerank.Run(g, req.PageRank)
		if err != nil {
			return nil, err
		}
		out.PageRank = res

	case Wcc:
		res, err := wcc.Run(g, req.Workers)
		if err != nil {
			return nil, err
		}
		out.Wcc = res

	case Sssp:
		res, err := sssp.Run(g, req.Sssp.Source, nil, req.Sssp.Delta)
		if err != nil {
			return nil, err
		}
		out.Sssp = res

	default:
		return nil, csrerr.Wrap(csrerr.ErrInvalidArgument, "registry: unknown algorithm %q", req.Algorithm)
	}

	out.ComputeMillis = time.Since(start).Milliseconds()
	return out, nil
}
