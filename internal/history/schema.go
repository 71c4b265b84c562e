// # internal/history/schema.go
package history

import (
	"database/sql"
	"fmt"
	"time"
)

const SchemaVersion = 1

// Snapshot is one persisted scan result summary.
type Snapshot struct {
	ScanID        string
	Root          string
	Timestamp     time.Time
	FileCount     int
	EdgeCount     int
	CycleCount    int
	AffectedCount int
	SkippedFiles  int
	DurationMS    int64
}

func EnsureSchema(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS scans (
  scan_id        TEXT PRIMARY KEY,
  root           TEXT NOT NULL,
  ts_utc         TEXT NOT NULL,
  file_count     INTEGER NOT NULL,
  edge_count     INTEGER NOT NULL,
  cycle_count    INTEGER NOT NULL,
  affected_count INTEGER NOT NULL,
  skipped_files  INTEGER NOT NULL,
  duration_ms    INTEGER NOT NULL
)`,
		`CREATE INDEX IF NOT EXISTS idx_scans_root_ts ON scans (root, ts_utc)`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	return nil
}
