// # internal/extract/extract.go
package extract

import (
	"regexp"
	"strings"
)

// Kind labels the textual shape a reference was matched by. It is carried
// for diagnostics only; resolution treats all kinds identically.
type Kind string

const (
	KindImport   Kind = "import"
	KindReexport Kind = "reexport"
	KindDynamic  Kind = "dynamic"
	KindRequire  Kind = "require"
)

// RawReference is a module reference lifted verbatim from file text.
type RawReference struct {
	Text string
	Kind Kind
}

// The four reference shapes. Matching is textual rather than syntactic:
// reference-shaped text inside string literals or comments will match too.
// That false-positive mode is the accepted cost of not parsing.
var patterns = []struct {
	kind Kind
	re   *regexp.Regexp
}{
	{KindImport, regexp.MustCompile(`import\s+[\w$*{},\s]+?from\s*['"]([^'"]+)['"]`)},
	{KindReexport, regexp.MustCompile(`export\s+[\w$*{},\s]+?from\s*['"]([^'"]+)['"]`)},
	{KindDynamic, regexp.MustCompile(`import\s*\(\s*['"]([^'"]+)['"]\s*\)`)},
	{KindRequire, regexp.MustCompile(`require\s*\(\s*['"]([^'"]+)['"]\s*\)`)},
}

// References extracts every in-tree module reference from content. Matches
// are collected pattern by pattern in declared order, deduplicated on first
// occurrence, so a require reference always follows the static imports
// regardless of where it sits in the file. References that do not start
// with a relative or root path marker are package imports and are dropped
// here.
func References(content []byte) []RawReference {
	text := string(content)

	var refs []RawReference
	seen := make(map[string]bool)
	for _, p := range patterns {
		for _, m := range p.re.FindAllStringSubmatch(text, -1) {
			ref := m[1]
			if !InTree(ref) {
				continue
			}
			if seen[ref] {
				continue
			}
			seen[ref] = true
			refs = append(refs, RawReference{Text: ref, Kind: p.kind})
		}
	}
	return refs
}

// InTree reports whether ref points inside the project rather than at an
// external package.
func InTree(ref string) bool {
	return strings.HasPrefix(ref, "./") ||
		strings.HasPrefix(ref, "../") ||
		strings.HasPrefix(ref, "/")
}
