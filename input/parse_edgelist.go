package input

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/csrgraph/csr"
)

// ParseEdgeList reads whitespace-separated "src dst" records, one per
// line. Blank lines and lines starting with '#' are skipped.
//
// Complexity: O(number of lines).
func ParseEdgeList(r io.Reader) (*EdgeList, error) {
	scanner := bufio.NewScanner(r)
	var pairs []Pair

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
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
