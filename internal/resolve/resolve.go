// # internal/resolve/resolve.go
package resolve

import (
	"path"
	"strings"

	"cyclescan/internal/scan"
)

// Resolver maps raw reference strings onto the enumerated file set. It holds
// no other state: given the same file set, resolution is pure.
type Resolver struct {
	root  string
	known map[string]bool
}

// New builds a resolver over the enumerated files. root and files must be
// absolute slash-normalized paths, as produced by the enumerator.
func New(root string, files []string) *Resolver {
	known := make(map[string]bool, len(files))
	for _, f := range files {
		known[f] = true
	}
	return &Resolver{root: root, known: known}
}

// Resolve maps ref, written in a file under fromDir, to a known file.
// Precedence, first hit wins:
//
//  1. the literal joined path
//  2. the joined path with each supported extension appended
//  3. the joined path as a directory, probing index files
//  4. for references ending in the compiled-output extension, the stripped
//     path retried through 1-3
//
// A miss is not an error; the reference simply produces no edge.
func (r *Resolver) Resolve(ref, fromDir string) (string, bool) {
	base := r.join(ref, fromDir)
	if target, ok := r.probe(base); ok {
		return target, true
	}
	if strings.HasSuffix(ref, scan.CompiledExtension) {
		stripped := strings.TrimSuffix(base, scan.CompiledExtension)
		return r.probe(stripped)
	}
	return "", false
}

func (r *Resolver) probe(base string) (string, bool) {
	if r.known[base] {
		return base, true
	}
	for _, ext := range scan.Extensions {
		if candidate := base + ext; r.known[candidate] {
			return candidate, true
		}
	}
	for _, ext := range scan.Extensions {
		if candidate := base + "/index" + ext; r.known[candidate] {
			return candidate, true
		}
	}
	return "", false
}

func (r *Resolver) join(ref, fromDir string) string {
	if strings.HasPrefix(ref, "/") {
		// Root-relative references resolve against the scan root.
		return path.Join(r.root, ref)
	}
	return path.Join(fromDir, ref)
}
