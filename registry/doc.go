// Package registry implements the algorithm registry of spec §4.5: a
// tagged union of compute requests (TriangleCount, PageRank, Wcc, Sssp),
// each dispatched synchronously against an already-looked-up *csr.Graph,
// returning the uniform {compute_millis, payload} envelope spec §6
// describes for the `compute` control-plane action.
package registry
