// # internal/scan/scan.go
package scan

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gobwas/glob"
)

// Extensions lists the supported source extensions in resolution order.
var Extensions = []string{".ts", ".tsx", ".js", ".jsx"}

// CompiledExtension is the build-output extension references may be written
// against even when the tree only contains sources.
const CompiledExtension = ".js"

// alwaysSkipDirs are never entered regardless of options.
var alwaysSkipDirs = map[string]bool{
	".git":     true,
	"dist":     true,
	"build":    true,
	"coverage": true,
}

const dependencyDir = "node_modules"

type Options struct {
	// IncludeDependencyDirs descends into node_modules when set.
	IncludeDependencyDirs bool
	// ExcludeDirs and ExcludeFiles hold glob patterns matched against the
	// base name, layered on top of the fixed skip list.
	ExcludeDirs  []string
	ExcludeFiles []string
}

// Files walks root and returns every supported source file as an absolute,
// slash-normalized path, plus the number of entries skipped because they
// could not be read. This is the single normalization chokepoint: every
// downstream component compares these strings verbatim.
//
// A missing or non-directory root is a fatal error. Unreadable
// subdirectories are counted, logged, and skipped so a partial tree still
// yields a result.
func Files(root string, opts Options) ([]string, int, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, 0, fmt.Errorf("resolve root %q: %w", root, err)
	}

	info, err := os.Stat(absRoot)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, 0, fmt.Errorf("root does not exist: %s", root)
		}
		return nil, 0, fmt.Errorf("stat root %q: %w", root, err)
	}
	if !info.IsDir() {
		return nil, 0, fmt.Errorf("root is not a directory: %s", root)
	}

	dirGlobs, err := compileGlobs(opts.ExcludeDirs)
	if err != nil {
		return nil, 0, fmt.Errorf("invalid exclude dir pattern: %w", err)
	}
	fileGlobs, err := compileGlobs(opts.ExcludeFiles)
	if err != nil {
		return nil, 0, fmt.Errorf("invalid exclude file pattern: %w", err)
	}

	var files []string
	skipped := 0
	walkErr := filepath.WalkDir(absRoot, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			// Best-effort: an unreadable entry drops out of the scan.
			skipped++
			slog.Warn("skipping unreadable entry", "path", p, "error", err)
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		base := filepath.Base(p)
		if d.IsDir() {
			if p == absRoot {
				return nil
			}
			if alwaysSkipDirs[base] {
				return fs.SkipDir
			}
			if base == dependencyDir && !opts.IncludeDependencyDirs {
				return fs.SkipDir
			}
			for _, g := range dirGlobs {
				if g.Match(base) {
					return fs.SkipDir
				}
			}
			return nil
		}

		if !SupportedPath(p) {
			return nil
		}
		for _, g := range fileGlobs {
			if g.Match(base) {
				return nil
			}
		}

		files = append(files, filepath.ToSlash(p))
		return nil
	})
	if walkErr != nil {
		return nil, 0, fmt.Errorf("walk %q: %w", root, walkErr)
	}

	return files, skipped, nil
}

// SupportedPath reports whether the file extension is in the supported set.
func SupportedPath(p string) bool {
	ext := filepath.Ext(p)
	for _, e := range Extensions {
		if ext == e {
			return true
		}
	}
	return false
}

func compileGlobs(patterns []string) ([]glob.Glob, error) {
	globs := make([]glob.Glob, 0, len(patterns))
	for _, p := range patterns {
		g, err := glob.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("pattern %q: %w", p, err)
		}
		globs = append(globs, g)
	}
	return globs, nil
}
