// # internal/report/markdown.go
package report

import (
	"fmt"
	"strings"
)

// Markdown renders the report as a human-readable document with a summary
// table and one arrow chain per cycle.
func (r *Report) Markdown(root string) string {
	var b strings.Builder

	b.WriteString("# Circular Reference Report\n\n")
	b.WriteString(fmt.Sprintf("**Root:** %s\n\n", root))

	b.WriteString("## Summary\n\n")
	b.WriteString("| Metric | Count |\n")
	b.WriteString("|--------|-------|\n")
	b.WriteString(fmt.Sprintf("| Cycles | %d |\n", r.Count))
	b.WriteString(fmt.Sprintf("| Affected files | %d |\n", len(r.AffectedFiles)))
	b.WriteString("\n")

	if r.Count == 0 {
		b.WriteString("No circular references detected.\n")
		return b.String()
	}

	b.WriteString("## Cycles\n\n")
	for i, c := range r.Cycles {
		b.WriteString(fmt.Sprintf("%d. (%d files) %s\n", i+1, c.Length, strings.Join(c.Path, " -> ")))
	}
	b.WriteString("\n## Affected Files\n\n")
	for _, f := range r.AffectedFiles {
		b.WriteString(fmt.Sprintf("- %s\n", f))
	}

	return b.String()
}
