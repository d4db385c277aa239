// Package pagerank implements a synchronous power-iteration PageRank over
// a CsrGraph: one of the algorithm registry's collaborator slots (spec
// §4.5/§4.10), supplied here as a small, real, tested kernel rather than a
// stub, parallelised with the same chunk-dispatch substrate as the
// triangle counter.
package pagerank
