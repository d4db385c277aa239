package csr

import "sort"

// niSlice adapts []NI to sort.Interface without the reflection overhead
// of sort.Slice's closures.
type niSlice []NI

func (s niSlice) Len() int           { return len(s) }
func (s niSlice) Less(i, j int) bool { return s[i] < s[j] }
func (s niSlice) Swap(i, j int)      { s[i], s[j] = s[j], s[i] }

// SortAscending sorts a neighbour slice ascending in place. Shared by the
// builder (initial construction) and the relabel package (post-relabel
// re-sort), since both need the identical ordering discipline.
func SortAscending(s []NI) {
	sort.Sort(niSlice(s))
}
