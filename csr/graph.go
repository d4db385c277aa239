package csr

import (
	"fmt"

	"github.com/katalvlaran/csrgraph/csrerr"
)

// Graph is the read-only, compressed-sparse-row graph structure. It is
// built once by the builder package, optionally relabelled in place by the
// relabel package, and from then on is safe for any number of concurrent
// readers: no method here acquires a lock or mutates shared state.
//
// offsets has length node_count+1 and is monotonically non-decreasing;
// targets[offsets[u]:offsets[u+1]] is node u's neighbour slice.
type Graph struct {
	layout      Layout
	orientation Orientation

	offsets []NI
	targets []NI

	// reverseOffsets/reverseTargets mirror offsets/targets but hold
	// in-neighbours. Only populated for Directed graphs; nil otherwise.
	reverseOffsets []NI
	reverseTargets []NI

	edgeCount NI
}

// New assembles a Graph from already-computed CSR arrays. It is the single
// constructor used by the builder package; callers elsewhere should not
// need it outside of tests that want to hand-craft a fixture.
func New(offsets, targets []NI, reverseOffsets, reverseTargets []NI, layout Layout, orientation Orientation, edgeCount NI) *Graph {
	return &Graph{
		layout:         layout,
		orientation:    orientation,
		offsets:        offsets,
		targets:        targets,
		reverseOffsets: reverseOffsets,
		reverseTargets: reverseTargets,
		edgeCount:      edgeCount,
	}
}

// NodeCount returns the number of nodes in the graph. Complexity: O(1).
func (g *Graph) NodeCount() NI {
	if len(g.offsets) == 0 {
		return 0
	}
	return NI(len(g.offsets) - 1)
}

// EdgeCount returns the edge count using the contract of spec §4.1: the
// physical length of targets when Directed, or the builder-reported
// undirected edge count otherwise. Complexity: O(1).
func (g *Graph) EdgeCount() NI {
	return g.edgeCount
}

// Layout reports the neighbour-ordering discipline this graph was built
// (or relabelled) with.
func (g *Graph) Layout() Layout { return g.layout }

// Orientation reports whether this graph is Directed or Undirected.
func (g *Graph) Orientation() Orientation { return g.orientation }

// Degree returns offsets[u+1]-offsets[u]. Complexity: O(1).
func (g *Graph) Degree(u NI) (NI, error) {
	if u >= g.NodeCount() {
		return 0, csrerr.Wrap(csrerr.ErrOutOfRange, "Degree(%d) >= node_count(%d)", u, g.NodeCount())
	}
	return g.offsets[u+1] - g.offsets[u], nil
}

// Neighbors returns node u's neighbour slice. The slice aliases the
// graph's internal storage; callers must not mutate it. Complexity: O(1).
func (g *Graph) Neighbors(u NI) ([]NI, error) {
	if u >= g.NodeCount() {
		return nil, csrerr.Wrap(csrerr.ErrOutOfRange, "Neighbors(%d) >= node_count(%d)", u, g.NodeCount())
	}
	return g.targets[g.offsets[u]:g.offsets[u+1]], nil
}

// OutDegree is an alias for Degree, named for symmetry with InDegree on
// Directed graphs. On Undirected graphs it is identical to Degree.
func (g *Graph) OutDegree(u NI) (NI, error) { return g.Degree(u) }

// OutNeighbors is an alias for Neighbors; see OutDegree.
func (g *Graph) OutNeighbors(u NI) ([]NI, error) { return g.Neighbors(u) }

// InDegree returns the in-degree of u. For Undirected graphs this equals
// Degree(u). For Directed graphs it requires the reverse arrays built at
// construction time; if they are absent this returns ErrInvalidArgument.
func (g *Graph) InDegree(u NI) (NI, error) {
	if g.orientation == Undirected {
		return g.Degree(u)
	}
	if u >= g.NodeCount() {
		return 0, csrerr.Wrap(csrerr.ErrOutOfRange, "InDegree(%d) >= node_count(%d)", u, g.NodeCount())
	}
	if g.reverseOffsets == nil {
		return 0, csrerr.Wrap(csrerr.ErrInvalidArgument, "graph was built without reverse (in-neighbour) arrays")
	}
	return g.reverseOffsets[u+1] - g.reverseOffsets[u], nil
}

// InNeighbors returns u's in-neighbour slice. See InDegree for the
// availability contract.
func (g *Graph) InNeighbors(u NI) ([]NI, error) {
	if g.orientation == Undirected {
		return g.Neighbors(u)
	}
	if u >= g.NodeCount() {
		return nil, csrerr.Wrap(csrerr.ErrOutOfRange, "InNeighbors(%d) >= node_count(%d)", u, g.NodeCount())
	}
	if g.reverseOffsets == nil {
		return nil, csrerr.Wrap(csrerr.ErrInvalidArgument, "graph was built without reverse (in-neighbour) arrays")
	}
	return g.reverseTargets[g.reverseOffsets[u]:g.reverseOffsets[u+1]], nil
}

// HasReverse reports whether in-neighbour arrays are available.
func (g *Graph) HasReverse() bool { return g.reverseOffsets != nil || g.orientation == Undirected }

// Rebuild swaps the graph's offsets/targets buffers in place. It is the
// one sanctioned post-construction mutator, used exclusively by the
// relabel package to apply a degree-ordered permutation. Callers MUST
// hold exclusive access (no concurrent readers) while calling this; the
// graph is immutable again as soon as it returns.
//
// The new buffers must have the same lengths as the current ones — a
// relabel permutes and re-sorts node ids, it never changes node_count or
// the total neighbour-slot count.
func (g *Graph) Rebuild(offsets, targets []NI, layout Layout) error {
	if len(offsets) != len(g.offsets) {
		return csrerr.Wrap(csrerr.ErrInvalidArgument, "Rebuild: offsets length %d != %d", len(offsets), len(g.offsets))
	}
	if len(targets) != len(g.targets) {
		return csrerr.Wrap(csrerr.ErrInvalidArgument, "Rebuild: targets length %d != %d", len(targets), len(g.targets))
	}
	g.offsets = offsets
	g.targets = targets
	g.layout = layout
	return nil
}

// String implements fmt.Stringer for diagnostics.
func (g *Graph) String() string {
	return fmt.Sprintf("csr.Graph{nodes=%d edges=%d layout=%s orientation=%s}", g.NodeCount(), g.EdgeCount(), g.layout, g.orientation)
}
