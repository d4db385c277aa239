// Package builder transforms an input.EdgeList into a csr.Graph. It is the
// only writer of CSR storage: once Build returns, the graph is read-only
// until (optionally) handed to the relabel package.
package builder

import (
	"github.com/katalvlaran/csrgraph/csr"
	"github.com/katalvlaran/csrgraph/csrerr"
	"github.com/katalvlaran/csrgraph/input"
)

// Build runs the five-step CSR construction algorithm against el and
// returns the resulting graph.
//
// Steps (spec §4.1):
//  1. Determine node_count = 1 + max(id), or 0 if el is empty.
//  2. Count degrees, doubling undirected non-self-loop edges.
//  3. Prefix-sum degrees into offsets.
//  4. Scatter endpoints into targets using a mutable per-node cursor.
//  5. For Sorted/Deduplicated layouts, sort (and, for Deduplicated,
//     compact) each neighbour slice.
//
// For Directed orientation, in-neighbour arrays are built by running the
// same construction over the reversed edge list, per spec §4.2.
//
// Complexity: O(V + E log D_max) for Sorted/Deduplicated layouts (sorting
// each neighbour slice), O(V + E) for Unsorted.
func Build(el *input.EdgeList, layout csr.Layout, orientation csr.Orientation) (*csr.Graph, error) {
	nodeCount, err := nodeCountOf(el)
	if err != nil {
		return nil, err
	}

	offsets, targets, edgeCount, err := constructCSR(el.Pairs, nodeCount, orientation, layout)
	if err != nil {
		return nil, err
	}

	var revOffsets, revTargets []csr.NI
	if orientation == csr.Directed {
		swapped := make([]input.Pair, len(el.Pairs))
		for i, p := range el.Pairs {
			swapped[i] = input.Pair{U: p.V, V: p.U}
		}
		revOffsets, revTargets, _, err = constructCSR(swapped, nodeCount, csr.Directed, layout)
		if err != nil {
			return nil, err
		}
	}

	return csr.New(offsets, targets, revOffsets, revTargets, layout, orientation, edgeCount), nil
}

// nodeCountOf scans every pair to find 1+max(id), detecting the
// id-exceeds-max-representable-value overflow case.
func nodeCountOf(el *input.EdgeList) (csr.NI, error) {
	if len(el.Pairs) == 0 {
		return 0, nil
	}
	var max csr.NI
	for _, p := range el.Pairs {
		if p.U > max {
			max = p.U
		}
		if p.V > max {
			max = p.V
		}
	}
	if max == csr.MaxNI {
		return 0, csrerr.Wrap(csrerr.ErrIdOverflow, "node id %d is the maximum representable NI value", max)
	}
	return max + 1, nil
}

// constructCSR implements steps 2-5 of Build against an arbitrary pair
// list (used both for the forward graph and, when Directed, for the
// reversed edge list that produces the in-neighbour arrays).
func constructCSR(pairs []input.Pair, nodeCount csr.NI, orientation csr.Orientation, layout csr.Layout) (offsets, targets []csr.NI, edgeCount csr.NI, err error) {
	degree := make([]uint64, nodeCount)
	selfLoops := 0

	for _, p := range pairs {
		degree[p.U]++
		if orientation == csr.Undirected {
			if p.U != p.V {
				degree[p.V]++
			} else {
				selfLoops++
			}
		}
	}

	offsets, err = safeMakeNI(int(nodeCount) + 1)
	if err != nil {
		return nil, nil, 0, err
	}
	var running uint64
	for i := 0; i < int(nodeCount); i++ {
		offsets[i] = csr.NI(running)
		running += degree[i]
	}
	offsets[nodeCount] = csr.NI(running)

	targets, err = safeMakeNI(int(running))
	if err != nil {
		return nil, nil, 0, err
	}

	cursor := make([]csr.NI, nodeCount)
	copy(cursor, offsets[:nodeCount])

	for _, p := range pairs {
		targets[cursor[p.U]] = p.V
		cursor[p.U]++
		if orientation == csr.Undirected && p.U != p.V {
			targets[cursor[p.V]] = p.U
			cursor[p.V]++
		}
	}

	if layout == csr.Sorted || layout == csr.Deduplicated {
		for u := csr.NI(0); u < nodeCount; u++ {
			sortSlice(targets[offsets[u]:offsets[u+1]])
		}
	}

	if layout == csr.Deduplicated {
		offsets, targets = compact(offsets, targets, nodeCount)
	}

	edgeCount = edgeCountOf(pairs, targets, orientation, layout, selfLoops)
	return offsets, targets, edgeCount, nil
}

// edgeCountOf applies the edge-count contract of spec §4.1.
func edgeCountOf(pairs []input.Pair, targets []csr.NI, orientation csr.Orientation, layout csr.Layout, selfLoops int) csr.NI {
	if orientation == csr.Directed {
		return csr.NI(len(targets))
	}
	if layout == csr.Deduplicated {
		return csr.NI((len(targets) + selfLoops) / 2)
	}
	// Sorted/Unsorted undirected: simplify to the number of physical
	// input edge records, as spec §4.1 permits.
	return csr.NI(len(pairs))
}

// safeMakeNI allocates an []csr.NI of length n, turning an allocation
// panic (e.g. "makeslice: len out of range") into csrerr.ErrAllocFailure
// instead of crashing the process.
func safeMakeNI(n int) (s []csr.NI, err error) {
	defer func() {
		if r := recover(); r != nil {
			s = nil
			err = csrerr.Wrap(csrerr.ErrAllocFailure, "allocate %d NI elements: %v", n, r)
		}
	}()
	return make([]csr.NI, n), nil
}
