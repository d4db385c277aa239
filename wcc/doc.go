// Package wcc computes weakly connected components over the undirected
// view of a CsrGraph: another algorithm registry collaborator slot (spec
// §4.5/§4.10). The initial union pass is parallelised over the same
// chunk-dispatch substrate as the triangle counter; path-compressed find
// is grounded in the classic disjoint-set-union structure the teacher
// corpus uses for minimum-spanning-tree construction.
package wcc
