package csr

// AsInt converts a node id to the platform int type. Safe whenever NI's
// value space fits in int, which holds for every graph this package can
// actually build (offsets/targets are backed by Go slices, themselves
// bounded by int).
func AsInt(n NI) int { return int(n) }

// FromInt converts a non-negative int into a node id.
func FromInt(i int) NI { return NI(i) }
