// Package catalog implements the in-process graph registry the control
// plane operates on: a name-keyed map of *csr.Graph, where relabel
// (exclusive mutation) and compute/read (shared, concurrent) never race
// on the same graph, without serialising access across unrelated graphs
// (spec §4.7, grounded in spec.md §5's closing remark that the catalog
// collaborator owns exclusive-access discipline).
package catalog
