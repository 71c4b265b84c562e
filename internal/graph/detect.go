// # internal/graph/detect.go
package graph

import "strings"

// Cycle is a closed walk through the graph: consecutive elements are
// connected by an edge and the first element repeats as the last. Length
// counts distinct nodes, so len(Path) == Length+1.
type Cycle struct {
	Path   []string
	Length int
}

// Per-node DFS state. A node is unvisited, on the current traversal stack,
// or fully explored; each node passes through the states at most once.
const (
	white = iota
	gray
	black
)

type frame struct {
	node string
	next int // index of the next outgoing edge to follow
}

// DetectCycles runs a depth-first search from every unvisited node and
// extracts one cycle per back-edge. Structurally identical cycles found
// from different entry points collapse onto one canonical signature and are
// reported once. Distinct cycles sharing nodes are all reported.
//
// The traversal keeps an explicit frame stack instead of recursing, so a
// pathologically long reference chain cannot exhaust the call stack.
func (g *Graph) DetectCycles() []Cycle {
	colors := make(map[string]int, len(g.adjacency))
	seen := make(map[string]bool)
	var cycles []Cycle

	for _, root := range g.Nodes() {
		if colors[root] != white {
			continue
		}

		stack := []frame{{node: root}}
		depth := map[string]int{root: 0}
		colors[root] = gray

		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			targets := g.adjacency[top.node]

			if top.next >= len(targets) {
				colors[top.node] = black
				delete(depth, top.node)
				stack = stack[:len(stack)-1]
				continue
			}

			next := targets[top.next]
			top.next++

			switch colors[next] {
			case gray:
				// Back-edge: the cycle is the stack suffix from the gray
				// node, closed by repeating it.
				start := depth[next]
				path := make([]string, 0, len(stack)-start+1)
				for _, f := range stack[start:] {
					path = append(path, f.node)
				}
				path = append(path, next)

				sig := signature(path)
				if !seen[sig] {
					seen[sig] = true
					cycles = append(cycles, Cycle{Path: path, Length: len(path) - 1})
				}
			case white:
				colors[next] = gray
				depth[next] = len(stack)
				stack = append(stack, frame{node: next})
			}
			// black: already fully explored, nothing to do.
		}
	}

	return cycles
}

// signature canonicalizes a cycle by rotating its node sequence to start at
// the lexicographically smallest member. The same cycle discovered from any
// DFS entry point yields the same signature.
func signature(path []string) string {
	nodes := path[:len(path)-1]
	min := 0
	for i, n := range nodes {
		if n < nodes[min] {
			min = i
		}
	}
	rotated := make([]string, 0, len(nodes))
	rotated = append(rotated, nodes[min:]...)
	rotated = append(rotated, nodes[:min]...)
	return strings.Join(rotated, " -> ")
}
