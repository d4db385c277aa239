package service_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/csrgraph/catalog"
	"github.com/katalvlaran/csrgraph/csrerr"
	"github.com/katalvlaran/csrgraph/registry"
	"github.com/katalvlaran/csrgraph/service"
	"github.com/stretchr/testify/require"
)

func writeEdgeFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "edges.txt")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestCreate_BuildsAndRegistersGraph(t *testing.T) {
	path := writeEdgeFile(t, "0 1\n1 2\n2 0\n")
	s := service.New(catalog.New())

	res, err := s.Create(service.CreateRequest{
		GraphName:   "g1",
		FileFormat:  service.FormatEdgeList,
		Path:        path,
		CsrLayout:   "Deduplicated",
		Orientation: "Undirected",
	})
	require.NoError(t, err)
	require.EqualValues(t, 3, res.NodeCount)
	require.EqualValues(t, 3, res.EdgeCount)
}

func TestCreate_MissingGraphName(t *testing.T) {
	s := service.New(catalog.New())
	_, err := s.Create(service.CreateRequest{FileFormat: service.FormatEdgeList, Path: "/nonexistent"})
	require.ErrorIs(t, err, csrerr.ErrInvalidArgument)
}

func TestCreate_DuplicateNameRejected(t *testing.T) {
	path := writeEdgeFile(t, "0 1\n")
	s := service.New(catalog.New())
	req := service.CreateRequest{GraphName: "g1", FileFormat: service.FormatEdgeList, Path: path}

	_, err := s.Create(req)
	require.NoError(t, err)
	_, err = s.Create(req)
	require.ErrorIs(t, err, csrerr.ErrGraphExists)
}

func TestList_ReflectsCreatedGraphs(t *testing.T) {
	path := writeEdgeFile(t, "0 1\n")
	s := service.New(catalog.New())
	_, err := s.Create(service.CreateRequest{GraphName: "g1", FileFormat: service.FormatEdgeList, Path: path})
	require.NoError(t, err)

	res := s.List()
	require.Len(t, res.Graphs, 1)
	require.Equal(t, "g1", res.Graphs[0].GraphName)
}

func TestRelabel_UnknownGraph(t *testing.T) {
	s := service.New(catalog.New())
	_, err := s.Relabel(service.RelabelRequest{GraphName: "nope"})
	require.ErrorIs(t, err, csrerr.ErrUnknownGraph)
}

func TestCompute_TriangleCountRoundTrip(t *testing.T) {
	path := writeEdgeFile(t, "0 1\n1 2\n2 0\n")
	s := service.New(catalog.New())
	_, err := s.Create(service.CreateRequest{
		GraphName: "g1", FileFormat: service.FormatEdgeList, Path: path,
		CsrLayout: "Deduplicated", Orientation: "Undirected",
	})
	require.NoError(t, err)

	res, err := s.Compute(service.ComputeRequest{
		GraphName: "g1",
		Request:   registry.Request{Algorithm: registry.TriangleCount, PropertyKey: "p1"},
	})
	require.NoError(t, err)
	require.Equal(t, "p1", res.PropertyID)
	require.EqualValues(t, 1, *res.TriangleCount)
}

func TestCompute_UnknownGraph(t *testing.T) {
	s := service.New(catalog.New())
	_, err := s.Compute(service.ComputeRequest{GraphName: "nope", Request: registry.Request{Algorithm: registry.TriangleCount}})
	require.ErrorIs(t, err, csrerr.ErrUnknownGraph)
}
