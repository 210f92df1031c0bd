package domain

import "time"

// SnapshotInfo describes a dataset stored in the local snapshot database
type SnapshotInfo struct {
	Source     string // Path the records were imported from
	Records    int
	ImportedAt time.Time
}

// ImportStats holds statistics from an import operation
type ImportStats struct {
	RecordsRead     int
	RecordsReplaced int
	Duration        time.Duration
}
