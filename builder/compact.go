package builder

import "github.com/katalvlaran/csrgraph/csr"

// compact removes per-node duplicate neighbours from an already-sorted
// targets array and rewrites offsets to reflect the shrunk slice
// lengths, per spec §4.1 step 5 (a second prefix-sum compaction pass).
func compact(offsets, targets []csr.NI, nodeCount csr.NI) (newOffsets, newTargets []csr.NI) {
	newLen := make([]csr.NI, nodeCount)
	for u := csr.NI(0); u < nodeCount; u++ {
		slice := targets[offsets[u]:offsets[u+1]]
		newLen[u] = csr.NI(dedupSorted(slice))
	}

	newOffsets = make([]csr.NI, nodeCount+1)
	var running csr.NI
	for u := csr.NI(0); u < nodeCount; u++ {
		newOffsets[u] = running
		running += newLen[u]
	}
	newOffsets[nodeCount] = running

	newTargets = make([]csr.NI, running)
	for u := csr.NI(0); u < nodeCount; u++ {
		src := targets[offsets[u] : offsets[u]+newLen[u]]
		copy(newTargets[newOffsets[u]:newOffsets[u+1]], src)
	}
	return newOffsets, newTargets
}

// dedupSorted compacts adjacent duplicates within a sorted slice in
// place and returns the new length; the caller is responsible for only
// reading the first n elements afterward.
func dedupSorted(s []csr.NI) int {
	if len(s) == 0 {
		return 0
	}
	write := 0
	for read := 1; read < len(s); read++ {
		if s[read] != s[write] {
			write++
			s[write] = s[read]
		}
	}
	return write + 1
}
