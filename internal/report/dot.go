// # internal/report/dot.go
package report

import (
	"fmt"
	"strings"

	"cyclescan/internal/graph"
)

// DOT renders the reference graph in Graphviz format with cycle edges and
// cycle members highlighted. Node labels are root-relative paths.
func DOT(root string, g *graph.Graph, rep *Report) string {
	var buf strings.Builder

	buf.WriteString("digraph references {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  node [shape=box, style=rounded, fontname=\"Helvetica\", fontsize=10];\n")
	buf.WriteString("  edge [fontname=\"Helvetica\", fontsize=8, penwidth=1.2];\n")
	buf.WriteString("  splines=polyline;\n")
	buf.WriteString("  overlap=false;\n\n")

	cycleEdges := cycleEdgeSet(rep.Cycles)
	cycleNodes := make(map[string]bool, len(rep.AffectedFiles))
	for _, f := range rep.AffectedFiles {
		cycleNodes[f] = true
	}

	for _, node := range g.Nodes() {
		rel := Relativize(root, node)
		if cycleNodes[rel] {
			buf.WriteString(fmt.Sprintf("  \"%s\" [fillcolor=\"mistyrose\", color=\"red\", style=\"rounded,filled\", penwidth=2.0];\n", rel))
		} else {
			buf.WriteString(fmt.Sprintf("  \"%s\" [color=\"darkslategrey\"];\n", rel))
		}
	}
	buf.WriteString("\n")

	for _, node := range g.Nodes() {
		from := Relativize(root, node)
		for _, target := range g.Targets(node) {
			to := Relativize(root, target)
			if cycleEdges[from+"->"+to] {
				buf.WriteString(fmt.Sprintf("  \"%s\" -> \"%s\" [color=\"red\", penwidth=3.0, label=\"CYCLE\"];\n", from, to))
			} else {
				buf.WriteString(fmt.Sprintf("  \"%s\" -> \"%s\" [color=\"forestgreen\"];\n", from, to))
			}
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

// cycleEdgeSet collects every "from->to" pair that lies on a cycle. The
// closing element already repeats the first, so consecutive pairs cover the
// whole ring.
func cycleEdgeSet(cycles []Cycle) map[string]bool {
	out := make(map[string]bool)
	for _, c := range cycles {
		for i := 0; i+1 < len(c.Path); i++ {
			out[c.Path[i]+"->"+c.Path[i+1]] = true
		}
	}
	return out
}
