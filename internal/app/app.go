// # internal/app/app.go
package app

import (
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"cyclescan/internal/extract"
	"cyclescan/internal/graph"
	"cyclescan/internal/observability"
	"cyclescan/internal/report"
	"cyclescan/internal/resolve"
	"cyclescan/internal/scan"
)

type Options struct {
	Root                  string
	IncludeDependencyDirs bool
	ExcludeDirs           []string
	ExcludeFiles          []string
}

// Result carries the report plus scan-level facts the report payload does
// not include: graph size, best-effort skips, timing.
type Result struct {
	ScanID       string
	Root         string
	Report       *report.Report
	Graph        *graph.Graph
	FileCount    int
	EdgeCount    int
	SkippedFiles int
	Duration     time.Duration
}

// Analyze runs one complete scan: enumerate, extract and resolve per file
// while building the graph, detect cycles, assemble the report. The stages
// are strictly sequential; each consumes the finished output of the one
// before it.
func Analyze(opts Options) (*Result, error) {
	started := time.Now()

	files, enumSkipped, err := scan.Files(opts.Root, scan.Options{
		IncludeDependencyDirs: opts.IncludeDependencyDirs,
		ExcludeDirs:           opts.ExcludeDirs,
		ExcludeFiles:          opts.ExcludeFiles,
	})
	if err != nil {
		return nil, err
	}
	if enumSkipped > 0 {
		observability.SkippedFilesTotal.Add(float64(enumSkipped))
	}

	absRoot, err := filepath.Abs(opts.Root)
	if err != nil {
		return nil, err
	}
	root := filepath.ToSlash(absRoot)

	resolver := resolve.New(root, files)
	g := graph.New(files)

	skipped := enumSkipped
	for _, file := range files {
		content, err := os.ReadFile(filepath.FromSlash(file))
		if err != nil {
			// Best-effort: a file that disappeared or became unreadable
			// mid-scan keeps its node but contributes no edges.
			skipped++
			observability.SkippedFilesTotal.Inc()
			slog.Warn("skipping unreadable file", "path", file, "error", err)
			continue
		}

		fromDir := path.Dir(file)
		for _, ref := range extract.References(content) {
			if target, ok := resolver.Resolve(ref.Text, fromDir); ok {
				g.AddEdge(file, target)
			}
		}
	}

	cycles := g.DetectCycles()
	rep := report.Assemble(root, cycles)

	duration := time.Since(started)
	observability.ScanDuration.Observe(duration.Seconds())
	observability.GraphNodes.Set(float64(g.NodeCount()))
	observability.GraphEdges.Set(float64(g.EdgeCount()))
	observability.CyclesFound.Set(float64(rep.Count))

	return &Result{
		ScanID:       uuid.NewString(),
		Root:         root,
		Report:       rep,
		Graph:        g,
		FileCount:    g.NodeCount(),
		EdgeCount:    g.EdgeCount(),
		SkippedFiles: skipped,
		Duration:     duration,
	}, nil
}
