// Package input holds the raw ingestion container (EdgeList) and the
// text-format parsers that produce one: plain edge lists, weighted edge
// lists, and Graph500-style generator output.
package input

import "github.com/katalvlaran/csrgraph/csr"

// Pair is one raw (src, dst) record as it appeared in the input, before
// any CSR construction, sorting, or deduplication.
type Pair struct {
	U, V csr.NI
}

// EdgeList is a finite ordered sequence of (u, v) pairs. It performs no
// implicit deduplication or sorting — the builder package owns that.
type EdgeList struct {
	Pairs []Pair

	// Weights holds one entry per Pairs index when the source was parsed
	// as EdgeListWeighted; nil otherwise. The CSR builder does not
	// consume it — it exists so collaborator algorithms (e.g. a weighted
	// PageRank variant) can recover edge weights by pair index.
	Weights []float64
}

// New wraps a pre-built slice of pairs, unweighted.
func New(pairs []Pair) *EdgeList {
	return &EdgeList{Pairs: pairs}
}

// NodeCount returns 1 + max(id across all pairs), or 0 if the list is
// empty, per spec §3.
func (e *EdgeList) NodeCount() csr.NI {
	if len(e.Pairs) == 0 {
		return 0
	}
	var max csr.NI
	for _, p := range e.Pairs {
		if p.U > max {
			max = p.U
		}
		if p.V > max {
			max = p.V
		}
	}
	return max + 1
}

// Len returns the number of pairs.
func (e *EdgeList) Len() int { return len(e.Pairs) }
