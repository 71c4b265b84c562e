// # cmd/cyclescan/summary.go
package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"cyclescan/internal/app"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#3B82F6")).
			Bold(true).
			Render

	cycleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F87171")).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#10B981")).
			Bold(true)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#64748B")).
			Italic(true)
)

func renderSummary(result *app.Result) string {
	var b strings.Builder

	b.WriteString(titleStyle("Circular Reference Scan"))
	b.WriteString("\n")
	b.WriteString(statusStyle.Render(fmt.Sprintf("%s | %d files | %d edges | %s",
		result.Root, result.FileCount, result.EdgeCount, result.Duration.Round(time.Millisecond))))
	b.WriteString("\n")
	if result.SkippedFiles > 0 {
		b.WriteString(statusStyle.Render(fmt.Sprintf("%d files skipped (unreadable)", result.SkippedFiles)))
		b.WriteString("\n")
	}

	rep := result.Report
	if rep.Count == 0 {
		b.WriteString(successStyle.Render("No circular references"))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(cycleStyle.Render(fmt.Sprintf("%d cycles, %d files affected", rep.Count, len(rep.AffectedFiles))))
	b.WriteString("\n")
	for _, c := range rep.Cycles {
		b.WriteString(fmt.Sprintf("  %s\n", strings.Join(c.Path, " -> ")))
	}
	return b.String()
}
