// # internal/watcher/watcher_test.go
package watcher

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcher(t *testing.T) {
	tmpDir, _ := os.MkdirTemp("", "watchertest")
	defer os.RemoveAll(tmpDir)

	changedFiles := make(chan []string, 8)
	w, err := New(100*time.Millisecond, 600, []string{"exclude_dir"}, []string{"*.skip.ts"}, func(paths []string) {
		changedFiles <- paths
	})
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	if err := w.Watch(tmpDir); err != nil {
		t.Fatal(err)
	}

	// Create a file
	testFile := filepath.Join(tmpDir, "test.ts")
	os.WriteFile(testFile, []byte("export const x = 1"), 0644)

	select {
	case paths := <-changedFiles:
		found := false
		for _, p := range paths {
			if p == testFile {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("Expected to find %s in changed files %v", testFile, paths)
		}
	case <-time.After(2 * time.Second):
		t.Error("Timed out waiting for file change event")
	}

	// Test exclusion
	excludeFile := filepath.Join(tmpDir, "test.skip.ts")
	os.WriteFile(excludeFile, []byte("export const y = 2"), 0644)

	select {
	case paths := <-changedFiles:
		for _, p := range paths {
			if filepath.Base(p) == "test.skip.ts" {
				t.Error("Excluded file triggered event")
			}
		}
	case <-time.After(500 * time.Millisecond):
		// Expected
	}

	// New directory should be recursively watched after create.
	subdir := filepath.Join(tmpDir, "newdir")
	if err := os.MkdirAll(subdir, 0755); err != nil {
		t.Fatal(err)
	}
	subFile := filepath.Join(subdir, "nested.tsx")
	if err := os.WriteFile(subFile, []byte("export const z = 3"), 0644); err != nil {
		t.Fatal(err)
	}

	foundNested := false
	timeout := time.After(2 * time.Second)
	for !foundNested {
		select {
		case paths := <-changedFiles:
			for _, p := range paths {
				if p == subFile {
					foundNested = true
					break
				}
			}
		case <-timeout:
			t.Fatal("timed out waiting for nested file event in newly created directory")
		}
	}
}

func TestWatcher_RenameTriggersChange(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "watcher-rename")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(tmpDir)

	changedFiles := make(chan []string, 8)
	w, err := New(100*time.Millisecond, 600, nil, nil, func(paths []string) {
		changedFiles <- paths
	})
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	if err := w.Watch(tmpDir); err != nil {
		t.Fatal(err)
	}

	oldPath := filepath.Join(tmpDir, "old.js")
	newPath := filepath.Join(tmpDir, "new.js")
	if err := os.WriteFile(oldPath, []byte("module.exports = 1"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := os.Rename(oldPath, newPath); err != nil {
		t.Fatal(err)
	}

	timeout := time.After(2 * time.Second)
	for {
		select {
		case paths := <-changedFiles:
			for _, p := range paths {
				if p == oldPath || p == newPath {
					return
				}
			}
		case <-timeout:
			t.Fatalf("timed out waiting for rename event, old=%s new=%s", oldPath, newPath)
		}
	}
}

func TestWatcher_UnsupportedExtensionsIgnored(t *testing.T) {
	w, err := New(10*time.Millisecond, 600, nil, nil, func([]string) {})
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	if !w.shouldExcludeFile("notes.md") {
		t.Error("expected .md to be excluded")
	}
	if !w.shouldExcludeFile("styles.css") {
		t.Error("expected .css to be excluded")
	}
	if w.shouldExcludeFile("main.ts") {
		t.Error("expected .ts to be watched")
	}
	if w.shouldExcludeFile("app.jsx") {
		t.Error("expected .jsx to be watched")
	}
}

func TestWatcher_ExcludedDirsNotWatched(t *testing.T) {
	w, err := New(10*time.Millisecond, 600, []string{"generated*"}, nil, func([]string) {})
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	for _, dir := range []string{"node_modules", ".git", "dist", "build", "coverage", "generated_api"} {
		if !w.shouldExcludeDir(filepath.Join("proj", dir)) {
			t.Errorf("expected %s to be excluded", dir)
		}
	}
	if w.shouldExcludeDir(filepath.Join("proj", "src")) {
		t.Error("expected src to be watched")
	}
}

func TestWatcher_InvalidExcludePattern(t *testing.T) {
	if _, err := New(10*time.Millisecond, 600, []string{"[bad"}, nil, func([]string) {}); err == nil {
		t.Error("Expected error for invalid glob pattern")
	}
}

func TestWatcher_RateLimitHoldsBatch(t *testing.T) {
	tmpDir := t.TempDir()

	changedFiles := make(chan []string, 8)
	// One rescan per minute: the first flush consumes the only token, the
	// second batch stays pending.
	w, err := New(50*time.Millisecond, 1, nil, nil, func(paths []string) {
		changedFiles <- paths
	})
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	if err := w.Watch(tmpDir); err != nil {
		t.Fatal(err)
	}

	first := filepath.Join(tmpDir, "first.ts")
	os.WriteFile(first, []byte("export const a = 1"), 0644)

	select {
	case <-changedFiles:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for first batch")
	}

	second := filepath.Join(tmpDir, "second.ts")
	os.WriteFile(second, []byte("export const b = 2"), 0644)

	select {
	case paths := <-changedFiles:
		t.Errorf("expected second batch to be throttled, got %v", paths)
	case <-time.After(300 * time.Millisecond):
		// Expected: token bucket is empty.
	}
}
