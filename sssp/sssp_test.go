package sssp_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/csrgraph/builder"
	"github.com/katalvlaran/csrgraph/csr"
	"github.com/katalvlaran/csrgraph/csrerr"
	"github.com/katalvlaran/csrgraph/input"
	"github.com/katalvlaran/csrgraph/sssp"
	"github.com/stretchr/testify/require"
)

func build(t *testing.T, edges [][2]csr.NI, orientation csr.Orientation) *csr.Graph {
	t.Helper()
	el := &input.EdgeList{}
	for _, e := range edges {
		el.Pairs = append(el.Pairs, input.Pair{U: e[0], V: e[1]})
	}
	g, err := builder.Build(el, csr.Deduplicated, orientation)
	require.NoError(t, err)
	return g
}

func TestRun_UnweightedIsBFS(t *testing.T) {
	g := build(t, [][2]csr.NI{{0, 1}, {1, 2}, {2, 3}}, csr.Undirected)
	res, err := sssp.Run(g, 0, nil, 1.0)
	require.NoError(t, err)
	require.Equal(t, []float64{0, 1, 2, 3}, res.Distances)
}

func TestRun_WeightedChain(t *testing.T) {
	g := build(t, [][2]csr.NI{{0, 1}, {1, 2}, {0, 2}}, csr.Directed)
	weights := map[[2]csr.NI]float64{
		{0, 1}: 5, {1, 2}: 1, {0, 2}: 3,
	}
	res, err := sssp.Run(g, 0, func(u, v csr.NI) float64 { return weights[[2]csr.NI{u, v}] }, 2.0)
	require.NoError(t, err)
	require.Equal(t, 0.0, res.Distances[0])
	require.Equal(t, 5.0, res.Distances[1])
	require.Equal(t, 3.0, res.Distances[2])
}

func TestRun_UnreachableNodeIsInfinity(t *testing.T) {
	el := &input.EdgeList{Pairs: []input.Pair{{U: 0, V: 1}, {U: 2, V: 3}}}
	g, err := builder.Build(el, csr.Deduplicated, csr.Undirected)
	require.NoError(t, err)

	res, err := sssp.Run(g, 0, nil, 1.0)
	require.NoError(t, err)
	require.True(t, math.IsInf(res.Distances[2], 1))
	require.True(t, math.IsInf(res.Distances[3], 1))
}

func TestRun_SourceOutOfRange(t *testing.T) {
	g := build(t, [][2]csr.NI{{0, 1}}, csr.Undirected)
	_, err := sssp.Run(g, 99, nil, 1.0)
	require.ErrorIs(t, err, csrerr.ErrOutOfRange)
}

func TestRun_SingleNodeGraph(t *testing.T) {
	el := &input.EdgeList{Pairs: []input.Pair{{U: 0, V: 0}}}
	g, err := builder.Build(el, csr.Deduplicated, csr.Undirected)
	require.NoError(t, err)
	res, err := sssp.Run(g, 0, nil, 1.0)
	require.NoError(t, err)
	require.Equal(t, 0.0, res.Distances[0])
}
