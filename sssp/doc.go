// Package sssp implements delta-stepping single-source shortest paths:
// the last of the algorithm registry's unspecified collaborator slots
// (spec §4.5/§4.10). Deliberately sequential — correctness of the bucket
// relaxation takes priority over parallelising an algorithm the
// specification leaves entirely open.
//
// CsrGraph carries no edge weights (the kernel this module specifies is
// unweighted triangle counting), so Run accepts an optional weight
// function; when nil, every edge is treated as unit weight and the
// bucket queue degenerates to plain BFS distances.
package sssp
