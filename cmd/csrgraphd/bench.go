package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/csrgraph/builder"
	"github.com/katalvlaran/csrgraph/csr"
	"github.com/katalvlaran/csrgraph/input"
	"github.com/katalvlaran/csrgraph/relabel"
	"github.com/katalvlaran/csrgraph/triangle"
)

var (
	benchFormat      string
	benchLayout      string
	benchOrientation string
	benchRelabel     bool
)

var benchCmd = &cobra.Command{
	Use:   "bench <path>",
	Short: "Load an edge file, build a CSR graph, and time triangle counting",
	Args:  cobra.ExactArgs(1),
	RunE:  runBench,
}

func init() {
	benchCmd.Flags().StringVar(&benchFormat, "format", "EdgeList", "EdgeList|EdgeListWeighted|Graph500")
	benchCmd.Flags().StringVar(&benchLayout, "layout", "Deduplicated", "Unsorted|Sorted|Deduplicated")
	benchCmd.Flags().StringVar(&benchOrientation, "orientation", "Undirected", "Directed|Undirected")
	benchCmd.Flags().BoolVar(&benchRelabel, "relabel", false, "degree-order the graph before counting")
}

func runBench(cmd *cobra.Command, args []string) error {
	path := args[0]
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	var el *input.EdgeList
	switch benchFormat {
	case "EdgeList":
		el, err = input.ParseEdgeList(f)
	case "EdgeListWeighted":
		el, err = input.ParseEdgeListWeighted(f)
	case "Graph500":
		el, err = input.ParseGraph500(f)
	default:
		return fmt.Errorf("unknown format %q", benchFormat)
	}
	if err != nil {
		return err
	}

	layout, err := parseBenchLayout(benchLayout)
	if err != nil {
		return err
	}
	orientation, err := parseBenchOrientation(benchOrientation)
	if err != nil {
		return err
	}

	buildStart := time.Now()
	g, err := builder.Build(el, layout, orientation)
	if err != nil {
		return err
	}
	buildMillis := time.Since(buildStart).Milliseconds()

	if benchRelabel {
		if err := relabel.DegreeOrder(g); err != nil {
			return err
		}
	}

	countStart := time.Now()
	n, err := triangle.Count(g)
	if err != nil {
		return err
	}
	computeMillis := time.Since(countStart).Milliseconds()

	fmt.Printf("nodes=%d edges=%d build_millis=%d triangle_count=%d compute_millis=%d\n",
		g.NodeCount(), g.EdgeCount(), buildMillis, n, computeMillis)
	return nil
}

func parseBenchLayout(s string) (csr.Layout, error) {
	switch s {
	case "Unsorted":
		return csr.Unsorted, nil
	case "Sorted":
		return csr.Sorted, nil
	case "Deduplicated":
		return csr.Deduplicated, nil
	default:
		return 0, fmt.Errorf("unknown layout %q", s)
	}
}

func parseBenchOrientation(s string) (csr.Orientation, error) {
	switch s {
	case "Directed":
		return csr.Directed, nil
	case "Undirected":
		return csr.Undirected, nil
	default:
		return 0, fmt.Errorf("unknown orientation %q", s)
	}
}
