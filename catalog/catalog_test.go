package catalog_test

import (
	"sync"
	"testing"

	"github.com/katalvlaran/csrgraph/builder"
	"github.com/katalvlaran/csrgraph/catalog"
	"github.com/katalvlaran/csrgraph/csr"
	"github.com/katalvlaran/csrgraph/csrerr"
	"github.com/katalvlaran/csrgraph/input"
	"github.com/katalvlaran/csrgraph/relabel"
	"github.com/stretchr/testify/require"
)

func smallGraph(t *testing.T) *csr.Graph {
	t.Helper()
	el := &input.EdgeList{Pairs: []input.Pair{{U: 0, V: 1}, {U: 1, V: 2}}}
	g, err := builder.Build(el, csr.Deduplicated, csr.Undirected)
	require.NoError(t, err)
	return g
}

func TestCreate_DuplicateNameRejected(t *testing.T) {
	c := catalog.New()
	require.NoError(t, c.Create("g1", smallGraph(t)))
	err := c.Create("g1", smallGraph(t))
	require.ErrorIs(t, err, csrerr.ErrGraphExists)
}

func TestLookup_UnknownGraph(t *testing.T) {
	c := catalog.New()
	err := c.Lookup("nope", func(*csr.Graph) error { return nil })
	require.ErrorIs(t, err, csrerr.ErrUnknownGraph)
}

func TestLookup_SeesRegisteredGraph(t *testing.T) {
	c := catalog.New()
	g := smallGraph(t)
	require.NoError(t, c.Create("g1", g))

	var seen *csr.Graph
	require.NoError(t, c.Lookup("g1", func(got *csr.Graph) error {
		seen = got
		return nil
	}))
	require.Same(t, g, seen)
}

func TestRelabel_MutatesInPlace(t *testing.T) {
	c := catalog.New()
	g := smallGraph(t)
	require.NoError(t, c.Create("g1", g))

	require.NoError(t, c.Relabel("g1", func(g *csr.Graph) error {
		return relabel.DegreeOrder(g)
	}))

	d0, err := g.Degree(0)
	require.NoError(t, err)
	d1, err := g.Degree(1)
	require.NoError(t, err)
	require.GreaterOrEqual(t, d0, d1)
}

func TestList_ReportsSummaries(t *testing.T) {
	c := catalog.New()
	require.NoError(t, c.Create("g1", smallGraph(t)))
	require.NoError(t, c.Create("g2", smallGraph(t)))

	rows := c.List()
	require.Len(t, rows, 2)
	names := map[string]bool{}
	for _, r := range rows {
		names[r.GraphName] = true
		require.EqualValues(t, 3, r.NodeCount)
	}
	require.True(t, names["g1"] && names["g2"])
}

func TestDelete_UnknownGraph(t *testing.T) {
	c := catalog.New()
	require.ErrorIs(t, c.Delete("nope"), csrerr.ErrUnknownGraph)
}

func TestConcurrentReadsDoNotRaceWithUnrelatedRelabel(t *testing.T) {
	c := catalog.New()
	require.NoError(t, c.Create("reader", smallGraph(t)))
	require.NoError(t, c.Create("writer", smallGraph(t)))

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 50; i++ {
			_ = c.Lookup("reader", func(*csr.Graph) error { return nil })
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 50; i++ {
			_ = c.Relabel("writer", func(g *csr.Graph) error { return relabel.DegreeOrder(g) })
		}
	}()
	wg.Wait()
}
