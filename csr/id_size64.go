//go:build !size32

// Package csr defines the node-identifier type, the CSR layout and
// orientation enums, and the read-only CsrGraph structure.
package csr

import "sync/atomic"

// NI is the node identifier width for this build. Without the size32 build
// tag it is pointer-width (uint64 on every platform this module targets),
// matching the Rust source's "usize" default.
type NI = uint64

// MaxNI is the saturating upper bound for NI.
const MaxNI NI = ^uint64(0)

// AtomicNI is the atomic counterpart of NI, used as the shared cursor of
// the chunk dispatcher. Kept as a distinct named type (instead
// of a bare alias) so call sites read as intent, not as "yet another
// uint64".
type AtomicNI struct {
	v atomic.Uint64
}

// Load reads the current value with acquire semantics via the stdlib's
// typed atomic (atomic.Uint64.Load already implies sequential consistency
// on all supported platforms).
func (a *AtomicNI) Load() NI { return a.v.Load() }

// Store sets the value.
func (a *AtomicNI) Store(val NI) { a.v.Store(val) }

// FetchAdd adds delta and returns the value that existed before the add,
// mirroring Rust's fetch_add(..., AcqRel) semantics used by the chunk
// dispatcher in the parallel triangle counter.
func (a *AtomicNI) FetchAdd(delta NI) NI { return a.v.Add(delta) - delta }
