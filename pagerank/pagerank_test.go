package pagerank_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/csrgraph/builder"
	"github.com/katalvlaran/csrgraph/csr"
	"github.com/katalvlaran/csrgraph/csrerr"
	"github.com/katalvlaran/csrgraph/input"
	"github.com/katalvlaran/csrgraph/pagerank"
	"github.com/stretchr/testify/require"
)

func TestRun_EmptyGraph(t *testing.T) {
	g, err := builder.Build(&input.EdgeList{}, csr.Deduplicated, csr.Undirected)
	require.NoError(t, err)

	res, err := pagerank.Run(g, pagerank.Config{})
	require.NoError(t, err)
	require.Equal(t, 0, res.RanIterations)
	require.Empty(t, res.Scores)
}

func TestRun_UndirectedRingIsUniform(t *testing.T) {
	el := &input.EdgeList{Pairs: []input.Pair{
		{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 3}, {U: 3, V: 0},
	}}
	g, err := builder.Build(el, csr.Deduplicated, csr.Undirected)
	require.NoError(t, err)

	res, err := pagerank.Run(g, pagerank.Config{MaxIterations: 50, Tolerance: 1e-9})
	require.NoError(t, err)
	require.Len(t, res.Scores, 4)

	sum := 0.0
	for _, s := range res.Scores {
		sum += s
		require.InDelta(t, 0.25, s, 1e-6)
	}
	require.InDelta(t, 1.0, sum, 1e-6)
}

func TestRun_DirectedStarConverges(t *testing.T) {
	el := &input.EdgeList{Pairs: []input.Pair{
		{U: 1, V: 0}, {U: 2, V: 0}, {U: 3, V: 0},
	}}
	g, err := builder.Build(el, csr.Deduplicated, csr.Directed)
	require.NoError(t, err)

	res, err := pagerank.Run(g, pagerank.Config{MaxIterations: 100, Tolerance: 1e-12})
	require.NoError(t, err)
	require.Greater(t, res.Scores[0], res.Scores[1])

	sum := 0.0
	for _, s := range res.Scores {
		sum += s
	}
	require.InDelta(t, 1.0, sum, 1e-3)
}

func TestRun_DirectedWithoutReverseIsRejected(t *testing.T) {
	offsets := []csr.NI{0, 1, 1}
	targets := []csr.NI{1}
	g := csr.New(offsets, targets, nil, nil, csr.Deduplicated, csr.Directed, 1)

	_, err := pagerank.Run(g, pagerank.Config{})
	require.ErrorIs(t, err, csrerr.ErrInvalidArgument)
}

func TestRun_ConvergesWithinMaxIterations(t *testing.T) {
	el := &input.EdgeList{Pairs: []input.Pair{
		{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 0},
	}}
	g, err := builder.Build(el, csr.Deduplicated, csr.Undirected)
	require.NoError(t, err)

	// A zero Tolerance falls back to DefaultTolerance, and the uniform
	// start is already the fixed point of a triangle, so the first pass
	// converges.
	res, err := pagerank.Run(g, pagerank.Config{MaxIterations: 5, Tolerance: 0})
	require.NoError(t, err)
	require.Equal(t, 1, res.RanIterations)
	require.False(t, math.IsNaN(res.Error))
}
