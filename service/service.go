package service

import (
	"fmt"
	"os"
	"time"

	"github.com/katalvlaran/csrgraph/builder"
	"github.com/katalvlaran/csrgraph/catalog"
	"github.com/katalvlaran/csrgraph/csr"
	"github.com/katalvlaran/csrgraph/csrerr"
	"github.com/katalvlaran/csrgraph/input"
	"github.com/katalvlaran/csrgraph/registry"
	"github.com/katalvlaran/csrgraph/relabel"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"
)

// Service implements the four control-plane actions of spec §6 against a
// single in-process catalog. Both the gRPC server (grpc.go) and the
// HTTP/JSON gateway (http.go) are thin transport adapters over this type.
type Service struct {
	catalog *catalog.Catalog

	// computeGroup collapses identical concurrent compute requests (same
	// graph, algorithm, and property key) into a single kernel run, so a
	// burst of duplicate client retries doesn't redundantly recompute
	// against the same graph state.
	computeGroup singleflight.Group
}

// New wires a Service to the given catalog.
func New(c *catalog.Catalog) *Service {
	return &Service{catalog: c}
}

// Create loads an edge file, builds a CSR graph, and registers it under
// graph_name.
func (s *Service) Create(req CreateRequest) (*CreateResponse, error) {
	start := time.Now()

	if req.GraphName == "" {
		return nil, csrerr.Wrap(csrerr.ErrInvalidArgument, "create: graph_name is required")
	}

	layout, err := parseLayout(req.CsrLayout)
	if err != nil {
		return nil, err
	}
	orientation, err := parseOrientation(req.Orientation)
	if err != nil {
		return nil, err
	}

	el, err := loadEdgeList(req.FileFormat, req.Path)
	if err != nil {
		return nil, err
	}

	g, err := builder.Build(el, layout, orientation)
	if err != nil {
		return nil, err
	}

	if err := s.catalog.Create(req.GraphName, g); err != nil {
		return nil, err
	}

	log.Info().Str("graph_name", req.GraphName).
		Uint64("node_count", uint64(csr.AsInt(g.NodeCount()))).
		Uint64("edge_count", uint64(csr.AsInt(g.EdgeCount()))).
		Msg("csrgraph: graph created")

	return &CreateResponse{
		NodeCount:    uint64(csr.AsInt(g.NodeCount())),
		EdgeCount:    uint64(csr.AsInt(g.EdgeCount())),
		CreateMillis: time.Since(start).Milliseconds(),
	}, nil
}

// List returns a summary of every registered graph.
func (s *Service) List() ListResponse {
	return ListResponse{Graphs: s.catalog.List()}
}

// Relabel runs the degree-ordered relabeller on graph_name under the
// catalog's exclusive per-entry lock.
func (s *Service) Relabel(req RelabelRequest) (*RelabelResponse, error) {
	start := time.Now()

	if req.GraphName == "" {
		return nil, csrerr.Wrap(csrerr.ErrInvalidArgument, "relabel: graph_name is required")
	}

	err := s.catalog.Relabel(req.GraphName, func(g *csr.Graph) error {
		return relabel.DegreeOrder(g)
	})
	if err != nil {
		return nil, err
	}

	log.Info().Str("graph_name", req.GraphName).Msg("csrgraph: graph relabelled")
	return &RelabelResponse{RelabelMillis: time.Since(start).Milliseconds()}, nil
}

// Compute dispatches the requested algorithm against graph_name under the
// catalog's shared per-entry lock.
func (s *Service) Compute(req ComputeRequest) (*registry.Result, error) {
	if req.GraphName == "" {
		return nil, csrerr.Wrap(csrerr.ErrInvalidArgument, "compute: graph_name is required")
	}

	key := fmt.Sprintf("%s|%s|%s", req.GraphName, req.Algorithm, req.PropertyKey)
	v, err, _ := s.computeGroup.Do(key, func() (interface{}, error) {
		var out *registry.Result
		err := s.catalog.Lookup(req.GraphName, func(g *csr.Graph) error {
			res, err := registry.Dispatch(g, req.Request)
			if err != nil {
				return err
			}
			out = res
			return nil
		})
		if err != nil {
			return nil, err
		}
		return out, nil
	})
	if err != nil {
		return nil, err
	}
	out := v.(*registry.Result)

	log.Debug().Str("graph_name", req.GraphName).
		Str("algorithm", string(req.Algorithm)).
		Int64("compute_millis", out.ComputeMillis).
		Msg("csrgraph: compute finished")
	return out, nil
}

// loadEdgeList opens path and dispatches to the parser matching format.
func loadEdgeList(format FileFormat, path string) (*input.EdgeList, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, csrerr.Wrap(csrerr.ErrInvalidArgument, "create: cannot open %q: %v", path, err)
	}
	defer f.Close()

	switch format {
	case FormatEdgeList, "":
		return input.ParseEdgeList(f)
	case FormatEdgeListWeighted:
		return input.ParseEdgeListWeighted(f)
	case FormatGraph500:
		return input.ParseGraph500(f)
	default:
		return nil, csrerr.Wrap(csrerr.ErrInvalidArgument, "create: unknown file_format %q", format)
	}
}
