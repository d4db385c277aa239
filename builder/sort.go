package builder

import "github.com/katalvlaran/csrgraph/csr"

// sortSlice sorts a single node's neighbour slice ascending in place.
func sortSlice(s []csr.NI) {
	csr.SortAscending(s)
}
