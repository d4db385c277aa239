package main

import (
	"testing"

	"github.com/katalvlaran/csrgraph/csr"
)

func TestParseBenchLayout(t *testing.T) {
	cases := map[string]csr.Layout{
		"Unsorted":     csr.Unsorted,
		"Sorted":       csr.Sorted,
		"Deduplicated": csr.Deduplicated,
	}
	for in, want := range cases {
		got, err := parseBenchLayout(in)
		if err != nil {
			t.Fatalf("parseBenchLayout(%q): %v", in, err)
		}
		if got != want {
			t.Errorf("parseBenchLayout(%q) = %v, want %v", in, got, want)
		}
	}
	if _, err := parseBenchLayout("bogus"); err == nil {
		t.Error("parseBenchLayout(bogus): expected error")
	}
}

func TestParseBenchOrientation(t *testing.T) {
	if got, err := parseBenchOrientation("Directed"); err != nil || got != csr.Directed {
		t.Errorf("parseBenchOrientation(Directed) = %v, %v", got, err)
	}
	if got, err := parseBenchOrientation("Undirected"); err != nil || got != csr.Undirected {
		t.Errorf("parseBenchOrientation(Undirected) = %v, %v", got, err)
	}
	if _, err := parseBenchOrientation("bogus"); err == nil {
		t.Error("parseBenchOrientation(bogus): expected error")
	}
}
