package input

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/csrgraph/csr"
)

// ParseGraph500 reads the Graph500 reference generator's "edge list" text
// output: one "src dst" record per line, the same shape as ParseEdgeList,
// but tolerant of a single leading "%%..." header line some generators
// emit before the records begin.
//
// Complexity: O(number of lines).
func ParseGraph500(r io.Reader) (*EdgeList, error) {
	scanner := bufio.NewScanner(r)
	var pairs []Pair

	lineNo := 0
	seenHeader := false
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if !seenHeader && strings.HasPrefix(line, "%%") {
			seenHeader = true
			continue
		}
		seenHeader = true
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, malformed("expected 2 fields", lineNo, line)
		}
		u, err := strconv.ParseUint(fields[0], 10, 64)
		if err != nil {
			return nil, malformed("non-integer src", lineNo, line)
		}
		v, err := strconv.ParseUint(fields[1], 10, 64)
		if err != nil {
			return nil, malformed("non-integer dst", lineNo, line)
		}
		pairs = append(pairs, Pair{U: csr.NI(u), V: csr.NI(v)})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return &EdgeList{Pairs: pairs}, nil
}
