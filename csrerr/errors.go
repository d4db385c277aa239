// Package csrerr defines the sentinel error kinds shared by every layer of
// the graph kernel: the CSR builder, the read-only graph, the relabeller,
// the triangle counter, the catalog, and the control-plane service.
//
// Policy:
//   - Only sentinel variables are exposed; callers branch with errors.Is.
//   - Sentinels are never wrapped with formatted strings at definition site;
//     call sites attach context via %w (see Wrap).
package csrerr

import (
	"errors"
	"fmt"
)

var (
	// ErrIdOverflow indicates an edge endpoint exceeds the configured NI width.
	ErrIdOverflow = errors.New("csrgraph: node id overflows configured width")

	// ErrAllocFailure indicates allocation of offsets or targets failed.
	ErrAllocFailure = errors.New("csrgraph: allocation failure")

	// ErrOutOfRange indicates a read op received a node id >= node_count.
	ErrOutOfRange = errors.New("csrgraph: node id out of range")

	// ErrUnknownGraph indicates a compute/relabel request named a graph the
	// catalog does not hold.
	ErrUnknownGraph = errors.New("csrgraph: unknown graph")

	// ErrInvalidArgument indicates a malformed action or config.
	ErrInvalidArgument = errors.New("csrgraph: invalid argument")

	// ErrLayoutViolation indicates the triangle counter was invoked on a
	// graph that is not both undirected and deduplicated.
	ErrLayoutViolation = errors.New("csrgraph: layout violation")

	// ErrGraphExists indicates a catalog create request reused a name
	// already present in the catalog.
	ErrGraphExists = errors.New("csrgraph: graph name already exists")
)

// Wrap attaches a contextual message to a sentinel, preserving it for
// errors.Is while adding a deterministic prefix.
func Wrap(sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), sentinel)
}
