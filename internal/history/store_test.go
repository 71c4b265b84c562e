// # internal/history/store_test.go
package history

import (
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "scans.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestOpenRejectsEmptyPath(t *testing.T) {
	if _, err := Open("  "); err == nil {
		t.Error("Expected error for empty path")
	}
}

func TestOpenRejectsDirectory(t *testing.T) {
	if _, err := Open(t.TempDir()); err == nil {
		t.Error("Expected error for directory path")
	}
}

func TestOpenCreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deep", "scans.db")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer store.Close()

	if store.Path() != path {
		t.Errorf("Expected path %s, got %s", path, store.Path())
	}
}

func TestSaveAndLoadSnapshots(t *testing.T) {
	store := openTestStore(t)

	base := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	snapshots := []Snapshot{
		{ScanID: "scan-1", Root: "/proj", Timestamp: base, FileCount: 10, EdgeCount: 14, CycleCount: 1, AffectedCount: 3, DurationMS: 42},
		{ScanID: "scan-2", Root: "/proj", Timestamp: base.Add(time.Minute), FileCount: 11, EdgeCount: 15, CycleCount: 0, AffectedCount: 0, DurationMS: 40},
		{ScanID: "scan-other", Root: "/other", Timestamp: base, FileCount: 2, EdgeCount: 1},
	}
	for _, s := range snapshots {
		if err := store.SaveSnapshot(s); err != nil {
			t.Fatalf("SaveSnapshot(%s) failed: %v", s.ScanID, err)
		}
	}

	loaded, err := store.LoadSnapshots("/proj", time.Time{})
	if err != nil {
		t.Fatalf("LoadSnapshots failed: %v", err)
	}
	if len(loaded) != 2 {
		t.Fatalf("Expected 2 snapshots for /proj, got %d", len(loaded))
	}
	if loaded[0].ScanID != "scan-1" || loaded[1].ScanID != "scan-2" {
		t.Errorf("Expected chronological order, got %s then %s", loaded[0].ScanID, loaded[1].ScanID)
	}
	if loaded[0].FileCount != 10 || loaded[0].EdgeCount != 14 || loaded[0].CycleCount != 1 {
		t.Errorf("Unexpected counts in first snapshot: %+v", loaded[0])
	}
	if !loaded[0].Timestamp.Equal(base) {
		t.Errorf("Expected timestamp %v, got %v", base, loaded[0].Timestamp)
	}
}

func TestLoadSnapshotsSinceFilter(t *testing.T) {
	store := openTestStore(t)

	base := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	for i, id := range []string{"old", "mid", "new"} {
		snap := Snapshot{ScanID: id, Root: "/proj", Timestamp: base.Add(time.Duration(i) * time.Hour)}
		if err := store.SaveSnapshot(snap); err != nil {
			t.Fatalf("SaveSnapshot failed: %v", err)
		}
	}

	loaded, err := store.LoadSnapshots("/proj", base.Add(time.Hour))
	if err != nil {
		t.Fatalf("LoadSnapshots failed: %v", err)
	}
	if len(loaded) != 2 {
		t.Fatalf("Expected 2 snapshots at or after cutoff, got %d", len(loaded))
	}
	if loaded[0].ScanID != "mid" || loaded[1].ScanID != "new" {
		t.Errorf("Unexpected snapshots: %s, %s", loaded[0].ScanID, loaded[1].ScanID)
	}
}

func TestSaveSnapshotUpsert(t *testing.T) {
	store := openTestStore(t)

	first := Snapshot{ScanID: "scan-1", Root: "/proj", Timestamp: time.Now().UTC(), CycleCount: 5}
	if err := store.SaveSnapshot(first); err != nil {
		t.Fatalf("SaveSnapshot failed: %v", err)
	}

	first.CycleCount = 0
	if err := store.SaveSnapshot(first); err != nil {
		t.Fatalf("SaveSnapshot upsert failed: %v", err)
	}

	loaded, err := store.LoadSnapshots("/proj", time.Time{})
	if err != nil {
		t.Fatalf("LoadSnapshots failed: %v", err)
	}
	if len(loaded) != 1 {
		t.Fatalf("Expected 1 snapshot after upsert, got %d", len(loaded))
	}
	if loaded[0].CycleCount != 0 {
		t.Errorf("Expected updated cycle count 0, got %d", loaded[0].CycleCount)
	}
}

func TestSaveSnapshotRequiresScanID(t *testing.T) {
	store := openTestStore(t)
	if err := store.SaveSnapshot(Snapshot{Root: "/proj"}); err == nil {
		t.Error("Expected error for empty scan id")
	}
}
