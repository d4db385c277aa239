// Package csr defines the node-identifier type and the compressed-sparse-row
// graph structure at the heart of this module.
//
// Under the hood:
//
//	id_size64.go / id_size32.go — the NI node-identifier type, selected at
//	                              compile time by the size32 build tag, plus
//	                              its atomic counterpart used by the
//	                              parallel triangle counter's chunk dispatch.
//	layout.go                   — the Layout (Unsorted/Sorted/Deduplicated)
//	                              and Orientation (Directed/Undirected) enums.
//	graph.go                    — Graph: the read-only offsets/targets pair,
//	                              safe for unlimited concurrent readers.
//
// Graph is built once by the builder package and, optionally, relabelled
// in place by the relabel package. No other package may mutate it.
package csr
