// # internal/graph/graph.go
package graph

import "sort"

// Graph is the reference graph of one scan: every enumerated file is a key,
// mapped to its in-set reference targets in first-seen order. Built once,
// read-only afterwards.
type Graph struct {
	adjacency map[string][]string
	edgeSet   map[string]map[string]bool
	edges     int
}

// New creates a graph with one entry per enumerated file. Files without
// references keep their empty target list so the detector always sees the
// complete vertex set.
func New(files []string) *Graph {
	g := &Graph{
		adjacency: make(map[string][]string, len(files)),
		edgeSet:   make(map[string]map[string]bool, len(files)),
	}
	for _, f := range files {
		g.adjacency[f] = []string{}
		g.edgeSet[f] = make(map[string]bool)
	}
	return g
}

// AddEdge records from -> to. Edges whose endpoints were not enumerated are
// ignored: library references never become nodes. Duplicates are dropped.
func (g *Graph) AddEdge(from, to string) {
	targets, ok := g.edgeSet[from]
	if !ok {
		return
	}
	if _, known := g.adjacency[to]; !known {
		return
	}
	if targets[to] {
		return
	}
	targets[to] = true
	g.adjacency[from] = append(g.adjacency[from], to)
	g.edges++
}

// Nodes returns the vertex set in sorted order.
func (g *Graph) Nodes() []string {
	nodes := make([]string, 0, len(g.adjacency))
	for n := range g.adjacency {
		nodes = append(nodes, n)
	}
	sort.Strings(nodes)
	return nodes
}

// Targets returns the ordered reference targets of a file. The copy is
// never nil, matching the graph's empty-target-list invariant.
func (g *Graph) Targets(file string) []string {
	out := make([]string, len(g.adjacency[file]))
	copy(out, g.adjacency[file])
	return out
}

func (g *Graph) NodeCount() int { return len(g.adjacency) }

func (g *Graph) EdgeCount() int { return g.edges }
