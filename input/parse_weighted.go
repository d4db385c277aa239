package input

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/csrgraph/csr"
)

// ParseEdgeListWeighted reads "src dst weight" records, one per line.
// Weights are carried alongside the pairs for collaborator algorithms;
// the CSR builder itself only consumes (src, dst).
//
// Complexity: O(number of lines).
func ParseEdgeListWeighted(r io.Reader) (*EdgeList, error) {
	scanner := bufio.NewScanner(r)
	var pairs []Pair
	var weights []float64

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 3 {
			return nil, malformed("expected 3 fields", lineNo, line)
		}
		u, err := strconv.ParseUint(fields[0], 10, 64)
		if err != nil {
			return nil, malformed("non-integer src", lineNo, line)
		}
		v, err := strconv.ParseUint(fields[1], 10, 64)
		if err != nil {
			return nil, malformed("non-integer dst", lineNo, line)
		}
		w, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return nil, malformed("non-numeric weight", lineNo, line)
		}
		pairs = append(pairs, Pair{U: csr.NI(u), V: csr.NI(v)})
		weights = append(weights, w)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return &EdgeList{Pairs: pairs, Weights: weights}, nil
}
