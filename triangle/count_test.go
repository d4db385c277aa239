package triangle_test

import (
	"testing"

	"github.com/katalvlaran/csrgraph/builder"
	"github.com/katalvlaran/csrgraph/csr"
	"github.com/katalvlaran/csrgraph/csrerr"
	"github.com/katalvlaran/csrgraph/input"
	"github.com/katalvlaran/csrgraph/relabel"
	"github.com/katalvlaran/csrgraph/triangle"
	"github.com/stretchr/testify/require"
)

func graphFrom(t *testing.T, edges [][2]csr.NI) *csr.Graph {
	t.Helper()
	el := &input.EdgeList{}
	for _, e := range edges {
		el.Pairs = append(el.Pairs, input.Pair{U: e[0], V: e[1]})
	}
	g, err := builder.Build(el, csr.Deduplicated, csr.Undirected)
	require.NoError(t, err)
	return g
}

// Concrete scenarios, spec §8.
func TestCount_TwoDisjointTriangles(t *testing.T) {
	g := graphFrom(t, [][2]csr.NI{{0, 1}, {1, 2}, {2, 0}, {3, 4}, {4, 5}, {5, 3}})
	n, err := triangle.Count(g)
	require.NoError(t, err)
	require.EqualValues(t, 2, n)
}

func TestCount_BowTie(t *testing.T) {
	g := graphFrom(t, [][2]csr.NI{{0, 1}, {1, 2}, {2, 0}, {0, 3}, {3, 4}, {4, 0}})
	n, err := triangle.Count(g)
	require.NoError(t, err)
	require.EqualValues(t, 2, n)
}

func TestCount_DiamondWithChord(t *testing.T) {
	g := graphFrom(t, [][2]csr.NI{{0, 1}, {1, 2}, {0, 2}, {1, 3}, {2, 3}})
	n, err := triangle.Count(g)
	require.NoError(t, err)
	require.EqualValues(t, 2, n)
}

func TestCount_FourCycleNoChord(t *testing.T) {
	g := graphFrom(t, [][2]csr.NI{{0, 1}, {1, 2}, {2, 3}, {3, 0}})
	n, err := triangle.Count(g)
	require.NoError(t, err)
	require.EqualValues(t, 0, n)
}

func TestCount_K4(t *testing.T) {
	g := graphFrom(t, [][2]csr.NI{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}})
	n, err := triangle.Count(g)
	require.NoError(t, err)
	require.EqualValues(t, 4, n)
}

func TestCount_EmptyGraph(t *testing.T) {
	el := &input.EdgeList{}
	g, err := builder.Build(el, csr.Deduplicated, csr.Undirected)
	require.NoError(t, err)
	n, err := triangle.Count(g)
	require.NoError(t, err)
	require.EqualValues(t, 0, n)
}

func TestCount_LayoutViolation(t *testing.T) {
	el := &input.EdgeList{Pairs: []input.Pair{{U: 0, V: 1}}}

	sortedUndirected, err := builder.Build(el, csr.Sorted, csr.Undirected)
	require.NoError(t, err)
	_, err = triangle.Count(sortedUndirected)
	require.ErrorIs(t, err, csrerr.ErrLayoutViolation)

	dedupDirected, err := builder.Build(el, csr.Deduplicated, csr.Directed)
	require.NoError(t, err)
	_, err = triangle.Count(dedupDirected)
	require.ErrorIs(t, err, csrerr.ErrLayoutViolation)
}

// Determinism: independent of worker count and of repeated invocation.
func TestCount_DeterministicAcrossWorkerCounts(t *testing.T) {
	g := graphFrom(t, [][2]csr.NI{
		{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3},
		{3, 4}, {4, 5}, {5, 3}, {5, 6}, {6, 7}, {7, 5},
	})
	want, err := triangle.CountWithWorkers(g, 1)
	require.NoError(t, err)

	for _, workers := range []int{1, 2, 3, 8, 32} {
		got, err := triangle.CountWithWorkers(g, workers)
		require.NoError(t, err)
		require.Equal(t, want, got, "worker count %d diverged", workers)
	}
}

func TestCount_Idempotent(t *testing.T) {
	g := graphFrom(t, [][2]csr.NI{{0, 1}, {1, 2}, {2, 0}})
	first, err := triangle.Count(g)
	require.NoError(t, err)
	second, err := triangle.Count(g)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

// Relabel preserves triangle count (spec §8 property 6).
func TestCount_InvariantUnderRelabel(t *testing.T) {
	g := graphFrom(t, [][2]csr.NI{
		{0, 1}, {1, 2}, {2, 0}, {0, 3}, {3, 4}, {4, 0},
		{5, 6}, {6, 7}, {7, 5},
	})
	before, err := triangle.Count(g)
	require.NoError(t, err)

	require.NoError(t, relabel.DegreeOrder(g))

	after, err := triangle.Count(g)
	require.NoError(t, err)
	require.Equal(t, before, after)
}
