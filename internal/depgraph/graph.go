// Package depgraph models compile-order dependencies between design units
// as a directed graph.
//
// Nodes are keyed by normalized (lower-case) design-unit identifiers. A
// node carries a source file only when the unit is actually defined
// somewhere; units that are merely referenced stay file-less. An edge
// (from, to) means "from requires to to be compiled first".
package depgraph

import (
	"sort"
	"strings"
)

// Node holds the attributes of one design unit.
type Node struct {
	// File is the absolute path of the defining source file. Empty for
	// units that are only referenced, never defined.
	File string
}

// Edge is an ordered (consumer, dependency) pair.
type Edge struct {
	From string
	To   string
}

// Graph is a directed graph of design-unit identifiers. Each instance owns
// its storage; the zero value is not usable, construct with New.
type Graph struct {
	nodes map[string]Node
	edges []Edge
	seen  map[Edge]bool
}

// New returns an empty graph.
func New() *Graph {
	return &Graph{
		nodes: make(map[string]Node),
		seen:  make(map[Edge]bool),
	}
}

func normalize(id string) string {
	return strings.ToLower(id)
}

// ensure creates a file-less node unless the id is already present.
func (g *Graph) ensure(id string) {
	if _, ok := g.nodes[id]; !ok {
		g.nodes[id] = Node{}
	}
}

// AddEdge records that from requires to. Missing endpoints are created as
// file-less nodes. Self-loops and duplicate edges are dropped.
func (g *Graph) AddEdge(from, to string) {
	from, to = normalize(from), normalize(to)
	if from == to {
		return
	}
	g.ensure(from)
	g.ensure(to)
	e := Edge{From: from, To: to}
	if g.seen[e] {
		return
	}
	g.seen[e] = true
	g.edges = append(g.edges, e)
}

// RemoveNode deletes a node and every edge touching it.
func (g *Graph) RemoveNode(id string) {
	id = normalize(id)
	delete(g.nodes, id)
	kept := g.edges[:0]
	for _, e := range g.edges {
		if e.From == id || e.To == id {
			delete(g.seen, e)
			continue
		}
		kept = append(kept, e)
	}
	g.edges = kept
}

// Node returns the attributes of id and whether the node exists.
func (g *Graph) Node(id string) (Node, bool) {
	n, ok := g.nodes[normalize(id)]
	return n, ok
}

// NodeIDs returns all node identifiers, sorted.
func (g *Graph) NodeIDs() []string {
	ids := make([]string, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Dependencies returns the targets of id's outgoing edges, in insertion
// order.
func (g *Graph) Dependencies(id string) []string {
	id = normalize(id)
	var deps []string
	for _, e := range g.edges {
		if e.From == id {
			deps = append(deps, e.To)
		}
	}
	return deps
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }
