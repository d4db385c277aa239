package triangle

import "github.com/katalvlaran/csrgraph/csr"

// putBackIterator is a peekable forward cursor over a sorted neighbour
// slice whose position persists across successive calls: the put-back
// iterator of spec §4.4 and §9. Because both operands of an intersection
// are sorted, the scan position in neighbors(u) never needs to rewind
// across successive, monotonically increasing query values — it only
// ever needs to "un-read" the single most recently read element so it
// can be re-examined against the next, larger query.
type putBackIterator struct {
	s   []csr.NI
	pos int
}

// newPutBackIterator wraps s for forward, put-back-capable iteration.
func newPutBackIterator(s []csr.NI) putBackIterator {
	return putBackIterator{s: s}
}

// next returns the next element and advances the cursor, or ok=false at
// end of slice.
func (it *putBackIterator) next() (x csr.NI, ok bool) {
	if it.pos >= len(it.s) {
		return 0, false
	}
	x = it.s[it.pos]
	it.pos++
	return x, true
}

// putBack rewinds the cursor by exactly one element, so the value most
// recently returned by next is returned again on the following call.
func (it *putBackIterator) putBack() {
	if it.pos > 0 {
		it.pos--
	}
}
