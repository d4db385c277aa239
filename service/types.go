package service

import (
	"strings"

	"github.com/katalvlaran/csrgraph/catalog"
	"github.com/katalvlaran/csrgraph/csr"
	"github.com/katalvlaran/csrgraph/csrerr"
	"github.com/katalvlaran/csrgraph/registry"
)

// FileFormat selects which input package parser Create uses to read Path.
type FileFormat string

const (
	FormatEdgeList         FileFormat = "EdgeList"
	FormatEdgeListWeighted FileFormat = "EdgeListWeighted"
	FormatGraph500         FileFormat = "Graph500"
)

// CreateRequest is the input shape of the `create` action (spec §6).
// CsrLayout defaults to Sorted and Orientation to Directed when empty.
type CreateRequest struct {
	GraphName   string     `json:"graph_name"`
	FileFormat  FileFormat `json:"file_format"`
	Path        string     `json:"path"`
	CsrLayout   string     `json:"csr_layout,omitempty"`
	Orientation string     `json:"orientation,omitempty"`
}

// CreateResponse is the output shape of the `create` action.
type CreateResponse struct {
	NodeCount    uint64 `json:"node_count"`
	EdgeCount    uint64 `json:"edge_count"`
	CreateMillis int64  `json:"create_millis"`
}

// ListResponse is the output shape of the `list` action.
type ListResponse struct {
	Graphs []catalog.Summary `json:"graphs"`
}

// RelabelRequest is the input shape of the `relabel` action.
type RelabelRequest struct {
	GraphName string `json:"graph_name"`
}

// RelabelResponse is the output shape of the `relabel` action.
type RelabelResponse struct {
	RelabelMillis int64 `json:"relabel_millis"`
}

// ComputeRequest is the input shape of the `compute` action: the named
// graph plus the tagged algorithm request of the registry package.
type ComputeRequest struct {
	GraphName string `json:"graph_name"`
	registry.Request
}

// parseLayout maps the wire string to csr.Layout, defaulting to Sorted
// per spec §6.
func parseLayout(s string) (csr.Layout, error) {
	switch strings.ToLower(s) {
	case "", "sorted":
		return csr.Sorted, nil
	case "unsorted":
		return csr.Unsorted, nil
	case "deduplicated":
		return csr.Deduplicated, nil
	default:
		return 0, csrerr.Wrap(csrerr.ErrInvalidArgument, "unknown csr_layout %q", s)
	}
}

// parseOrientation maps the wire string to csr.Orientation, defaulting
// to Directed per spec §6.
func parseOrientation(s string) (csr.Orientation, error) {
	switch strings.ToLower(s) {
	case "", "directed":
		return csr.Directed, nil
	case "undirected":
		return csr.Undirected, nil
	default:
		return 0, csrerr.Wrap(csrerr.ErrInvalidArgument, "unknown orientation %q", s)
	}
}
