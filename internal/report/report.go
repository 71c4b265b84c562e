// # internal/report/report.go
package report

import (
	"encoding/json"
	"io"
	"sort"
	"strings"

	"cyclescan/internal/graph"
)

// Cycle is a detected cycle with root-relative paths. The closing element
// repeats the first, so Path always has Length+1 entries.
type Cycle struct {
	Path   []string `json:"path"`
	Length int      `json:"length"`
}

// Report is the terminal aggregate of one scan.
type Report struct {
	Cycles        []Cycle  `json:"cycles"`
	Count         int      `json:"count"`
	AffectedFiles []string `json:"affected_files"`
}

// Assemble relativizes the detector's cycles against root, sorts them
// deterministically and computes the affected-files union. root must be the
// absolute slash-normalized scan root.
func Assemble(root string, cycles []graph.Cycle) *Report {
	rep := &Report{
		Cycles:        make([]Cycle, 0, len(cycles)),
		AffectedFiles: []string{},
	}

	affected := make(map[string]bool)
	for _, c := range cycles {
		rel := make([]string, len(c.Path))
		for i, p := range c.Path {
			rel[i] = Relativize(root, p)
		}
		for _, p := range rel[:len(rel)-1] {
			affected[p] = true
		}
		rep.Cycles = append(rep.Cycles, Cycle{Path: rel, Length: c.Length})
	}

	sort.SliceStable(rep.Cycles, func(i, j int) bool {
		a, b := rep.Cycles[i], rep.Cycles[j]
		if a.Length != b.Length {
			return a.Length < b.Length
		}
		return a.Path[0] < b.Path[0]
	})

	for p := range affected {
		rep.AffectedFiles = append(rep.AffectedFiles, p)
	}
	sort.Strings(rep.AffectedFiles)

	rep.Count = len(rep.Cycles)
	return rep
}

// Relativize strips the scan root prefix from an absolute slash path.
func Relativize(root, p string) string {
	if p == root {
		return "."
	}
	return strings.TrimPrefix(p, strings.TrimSuffix(root, "/")+"/")
}

// WriteJSON serializes the report in the external interface shape.
func (r *Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
