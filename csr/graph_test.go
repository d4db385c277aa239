package csr_test

import (
	"testing"

	"github.com/katalvlaran/csrgraph/csr"
	"github.com/katalvlaran/csrgraph/csrerr"
	"github.com/stretchr/testify/require"
)

// buildTriangle hand-crafts the undirected, deduplicated triangle
// 0-1-2 (each node has degree 2) without going through the builder
// package, so csr.Graph's own invariants can be tested in isolation.
func buildTriangle() *csr.Graph {
	offsets := []csr.NI{0, 2, 4, 6}
	targets := []csr.NI{1, 2, 0, 2, 0, 1}
	return csr.New(offsets, targets, nil, nil, csr.Deduplicated, csr.Undirected, 3)
}

func TestGraph_NodeAndEdgeCount(t *testing.T) {
	g := buildTriangle()
	require.Equal(t, csr.NI(3), g.NodeCount())
	require.Equal(t, csr.NI(3), g.EdgeCount())
}

func TestGraph_DegreeAndNeighbors(t *testing.T) {
	g := buildTriangle()
	for u := csr.NI(0); u < 3; u++ {
		d, err := g.Degree(u)
		require.NoError(t, err)
		require.Equal(t, csr.NI(2), d)

		nbrs, err := g.Neighbors(u)
		require.NoError(t, err)
		require.Len(t, nbrs, 2)
		require.True(t, nbrs[0] < nbrs[1], "Deduplicated layout must be strictly ascending")
	}
}

func TestGraph_OutOfRange(t *testing.T) {
	g := buildTriangle()
	_, err := g.Degree(3)
	require.ErrorIs(t, err, csrerr.ErrOutOfRange)

	_, err = g.Neighbors(99)
	require.ErrorIs(t, err, csrerr.ErrOutOfRange)
}

func TestGraph_EmptyGraph(t *testing.T) {
	g := csr.New([]csr.NI{0}, nil, nil, nil, csr.Deduplicated, csr.Undirected, 0)
	require.Equal(t, csr.NI(0), g.NodeCount())
	require.Equal(t, csr.NI(0), g.EdgeCount())
}

func TestGraph_DirectedInNeighborsWithoutReverseIsRejected(t *testing.T) {
	g := csr.New([]csr.NI{0, 1, 1}, []csr.NI{1}, nil, nil, csr.Sorted, csr.Directed, 1)
	_, err := g.InNeighbors(0)
	require.ErrorIs(t, err, csrerr.ErrInvalidArgument)
}

func TestGraph_DirectedReverseArrays(t *testing.T) {
	// 0 -> 1, 0 -> 2
	offsets := []csr.NI{0, 2, 2, 2}
	targets := []csr.NI{1, 2}
	revOffsets := []csr.NI{0, 0, 1, 2}
	revTargets := []csr.NI{0, 0}
	g := csr.New(offsets, targets, revOffsets, revTargets, csr.Sorted, csr.Directed, 2)

	d, err := g.InDegree(1)
	require.NoError(t, err)
	require.Equal(t, csr.NI(1), d)

	nbrs, err := g.InNeighbors(2)
	require.NoError(t, err)
	require.Equal(t, []csr.NI{0}, nbrs)
}

func TestGraph_Rebuild(t *testing.T) {
	g := buildTriangle()
	newOffsets := []csr.NI{0, 2, 4, 6}
	newTargets := []csr.NI{2, 1, 2, 0, 1, 0}
	require.NoError(t, g.Rebuild(newOffsets, newTargets, csr.Sorted))
	require.Equal(t, csr.Sorted, g.Layout())

	newOffsets2 := []csr.NI{0, 1}
	require.ErrorIs(t, g.Rebuild(newOffsets2, newTargets, csr.Sorted), csrerr.ErrInvalidArgument)
}
