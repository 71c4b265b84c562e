// # internal/report/mermaid.go
package report

import (
	"fmt"
	"strings"
	"unicode"

	"cyclescan/internal/graph"
)

// Mermaid renders the reference graph as a flowchart. Cycle members get a
// red node class and cycle edges a thick red link style.
func Mermaid(root string, g *graph.Graph, rep *Report) string {
	var b strings.Builder
	b.WriteString("flowchart LR\n")

	nodes := g.Nodes()
	relNames := make([]string, 0, len(nodes))
	for _, n := range nodes {
		relNames = append(relNames, Relativize(root, n))
	}
	ids := makeIDs(relNames)

	for _, rel := range relNames {
		b.WriteString(fmt.Sprintf("  %s[\"%s\"]\n", ids[rel], escapeLabel(rel)))
	}

	cycleEdges := cycleEdgeSet(rep.Cycles)
	cycleLinks := make([]int, 0)
	linkIndex := 0

	b.WriteString("\n")
	for _, node := range nodes {
		from := Relativize(root, node)
		for _, target := range g.Targets(node) {
			to := Relativize(root, target)
			if cycleEdges[from+"->"+to] {
				b.WriteString(fmt.Sprintf("  %s -->|CYCLE| %s\n", ids[from], ids[to]))
				cycleLinks = append(cycleLinks, linkIndex)
			} else {
				b.WriteString(fmt.Sprintf("  %s --> %s\n", ids[from], ids[to]))
			}
			linkIndex++
		}
	}

	if len(rep.AffectedFiles) > 0 {
		b.WriteString("\n  classDef cycleNode fill:#ffecec,stroke:#cc0000,stroke-width:2px;\n")
		b.WriteString("  class ")
		members := make([]string, 0, len(rep.AffectedFiles))
		for _, f := range rep.AffectedFiles {
			members = append(members, ids[f])
		}
		b.WriteString(strings.Join(members, ","))
		b.WriteString(" cycleNode;\n")
	}
	if len(cycleLinks) > 0 {
		parts := make([]string, 0, len(cycleLinks))
		for _, idx := range cycleLinks {
			parts = append(parts, fmt.Sprintf("%d", idx))
		}
		b.WriteString(fmt.Sprintf("  linkStyle %s stroke:#cc0000,stroke-width:3px;\n", strings.Join(parts, ",")))
	}

	return b.String()
}

func sanitizeID(name string) string {
	if name == "" {
		return "n"
	}
	var b strings.Builder
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			continue
		}
		b.WriteRune('_')
	}
	out := b.String()
	if unicode.IsDigit(rune(out[0])) {
		return "n_" + out
	}
	return out
}

func makeIDs(names []string) map[string]string {
	ids := make(map[string]string, len(names))
	used := make(map[string]int, len(names))
	for _, name := range names {
		base := sanitizeID(name)
		idx := used[base]
		used[base] = idx + 1
		if idx == 0 {
			ids[name] = base
			continue
		}
		ids[name] = fmt.Sprintf("%s_%d", base, idx+1)
	}
	return ids
}

func escapeLabel(s string) string {
	return strings.ReplaceAll(s, "\"", "'")
}
