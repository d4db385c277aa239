package catalog

import (
	"sync"

	"github.com/katalvlaran/csrgraph/csr"
	"github.com/katalvlaran/csrgraph/csrerr"
)

// Entry pairs a graph with its own lock: relabel takes the write side,
// every reader (compute, list-detail) takes the read side. Lock
// granularity is per-entry, not global, so a relabel on one graph never
// blocks a compute running against a different one.
type Entry struct {
	mu    sync.RWMutex
	name  string
	graph *csr.Graph
}

// Summary is the row shape of List: spec §6's `{graph_name, graph_type,
// node_count, edge_count}`.
type Summary struct {
	GraphName string `json:"graph_name"`
	GraphType string `json:"graph_type"`
	NodeCount uint64 `json:"node_count"`
	EdgeCount uint64 `json:"edge_count"`
}

// Catalog is a name -> Entry registry guarded by a top-level RWMutex for
// the map structure itself (insert/delete/list membership), separate
// from each Entry's own lock over its graph pointer.
type Catalog struct {
	mu      sync.RWMutex
	entries map[string]*Entry
}

// New returns an empty catalog.
func New() *Catalog {
	return &Catalog{entries: make(map[string]*Entry)}
}

// Create registers graph under name. Returns ErrGraphExists if name is
// already taken.
func (c *Catalog) Create(name string, graph *csr.Graph) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[name]; exists {
		return csrerr.Wrap(csrerr.ErrGraphExists, "catalog: graph %q already exists", name)
	}
	c.entries[name] = &Entry{name: name, graph: graph}
	return nil
}

// Lookup runs fn with a read lock held on the named entry's graph,
// returning fn's error (or ErrUnknownGraph if name is not registered).
// fn must not retain the *csr.Graph beyond its own call.
func (c *Catalog) Lookup(name string, fn func(g *csr.Graph) error) error {
	e, err := c.get(name)
	if err != nil {
		return err
	}
	e.mu.RLock()
	defer e.mu.RUnlock()
	return fn(e.graph)
}

// Relabel runs fn with a write lock held on the named entry's graph,
// the access discipline an in-place degree-ordered relabel requires
// (spec §4.3: "must not run concurrently with readers").
func (c *Catalog) Relabel(name string, fn func(g *csr.Graph) error) error {
	e, err := c.get(name)
	if err != nil {
		return err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return fn(e.graph)
}

// Delete removes name from the catalog. Returns ErrUnknownGraph if name
// is not registered.
func (c *Catalog) Delete(name string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[name]; !exists {
		return csrerr.Wrap(csrerr.ErrUnknownGraph, "catalog: graph %q not found", name)
	}
	delete(c.entries, name)
	return nil
}

// List returns a Summary for every registered graph. The top-level map is
// read-locked only while the entries are collected, so Create and Delete
// are not held up while counts are read; each entry's own graph lock is
// then taken individually and briefly, so a relabel in progress on an
// entry delays List until that relabel finishes.
func (c *Catalog) List() []Summary {
	c.mu.RLock()
	names := make([]string, 0, len(c.entries))
	entries := make([]*Entry, 0, len(c.entries))
	for name, e := range c.entries {
		names = append(names, name)
		entries = append(entries, e)
	}
	c.mu.RUnlock()

	out := make([]Summary, 0, len(entries))
	for i, e := range entries {
		e.mu.RLock()
		out = append(out, Summary{
			GraphName: names[i],
			GraphType: e.graph.Orientation().String(),
			NodeCount: uint64(csr.AsInt(e.graph.NodeCount())),
			EdgeCount: uint64(csr.AsInt(e.graph.EdgeCount())),
		})
		e.mu.RUnlock()
	}
	return out
}

// get returns the entry for name under the top-level read lock, or
// ErrUnknownGraph.
func (c *Catalog) get(name string) (*Entry, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[name]
	if !ok {
		return nil, csrerr.Wrap(csrerr.ErrUnknownGraph, "catalog: graph %q not found", name)
	}
	return e, nil
}
