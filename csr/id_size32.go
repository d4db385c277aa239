//go:build size32

package csr

import "sync/atomic"

// NI is the node identifier width for this build. The size32 build tag
// selects a 32-bit id, halving memory for targets/offsets at the cost of a
// ~4 billion node ceiling.
type NI = uint32

// MaxNI is the saturating upper bound for NI.
const MaxNI NI = ^uint32(0)

// AtomicNI is the atomic counterpart of NI.
type AtomicNI struct {
	v atomic.Uint32
}

// Load reads the current value.
func (a *AtomicNI) Load() NI { return a.v.Load() }

// Store sets the value.
func (a *AtomicNI) Store(val NI) { a.v.Store(val) }

// FetchAdd adds delta and returns the value that existed before the add.
func (a *AtomicNI) FetchAdd(delta NI) NI { return a.v.Add(delta) - delta }
